package gate

import "errors"

var ErrUnknownAlert = errors.New("alert is not current")
