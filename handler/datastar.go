package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept value sent by DataStar fetch actions.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is set to "true" on every DataStar request.
	DataStarRequestHeader = "Datastar-Request"
)

// Patch modes used by the error toasts and the form alerts.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether the request was issued by DataStar and expects
// an event stream back.
func IsDataStar(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get(DataStarRequestHeader), "true") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader)
}

// NewSSE creates the event stream for a DataStar response.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
