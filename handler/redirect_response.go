package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// redirectResponse handles redirects for both DataStar and regular requests
type redirectResponse struct {
	url  string
	code int
}

// Render performs the redirect, handling both DataStar and regular requests
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
// For DataStar requests, it uses Server-Sent Events to trigger a client-side redirect.
// For regular requests, it performs a standard HTTP redirect.
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}
