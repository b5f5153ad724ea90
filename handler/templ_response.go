package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent represents a templ component interface.
// This matches github.com/a-h/templ.Component without importing it.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch represents a component with its own rendering options
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

// Patch creates a TemplPatch with options for use with TemplMulti
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{
		Component: component,
		Options:   opts,
	}
}

// templResponse wraps a templ component to implement Response
type templResponse struct {
	component TemplComponent
	options   []datastar.PatchElementOption
	status    int
}

// Render outputs component via SSE for DataStar or HTML for regular requests
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component with optional configuration.
// For DataStar requests, it renders via SSE with optional target and patch mode.
// For regular HTTP requests, it renders directly to the response.
//
//	return handler.Templ(
//		feedback.Message("peso", out.Severity, out.Message),
//		handler.WithTarget("#peso-feedback"),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

// TemplWithStatus is Templ with a status code for regular HTTP requests.
// DataStar streams always start with 200 so the client applies the patches.
func TemplWithStatus(status int, component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
		status:    status,
	}
}

// templMultiResponse renders multiple components to different targets
type templMultiResponse struct {
	patches []TemplPatch
	status  int
}

// Render sends multiple SSE patches for DataStar or concatenated HTML
func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti renders multiple components to different targets.
// For DataStar requests, each component is sent as a separate SSE patch with its own options.
// For regular HTTP requests, all components are concatenated in order.
//
//	return handler.TemplMulti(
//		handler.Patch(feedback.Alert(id, msg),
//			handler.WithTarget("#pet-alerts"),
//			handler.WithPatchMode(handler.PatchPrepend)),
//		handler.Patch(feedback.Message("peso", sev, text),
//			handler.WithTarget("#peso-feedback")),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{
		patches: patches,
	}
}

// TemplMultiWithStatus is TemplMulti with a status code for regular HTTP requests.
func TemplMultiWithStatus(status int, patches ...TemplPatch) Response {
	return templMultiResponse{
		patches: patches,
		status:  status,
	}
}
