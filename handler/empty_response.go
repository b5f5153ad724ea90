package handler

import "net/http"

type emptyResponse struct{}

func (emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Empty answers 204 No Content, for DataStar requests too: an event stream
// with nothing to patch is never opened.
func Empty() Response {
	return emptyResponse{}
}
