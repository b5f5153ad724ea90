// Package handler provides typed HTTP handlers and the responses used by the
// vetform HTTP surface.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc:
//
//	check := func(ctx handler.Context, req CheckRequest) handler.Response {
//		return handler.Templ(feedback.Message(req.Field, out.Severity, out.Message),
//			handler.WithTarget("#"+feedback.FeedbackID(req.Field)),
//		)
//	}
//	r.Post("/check", handler.Wrap(check, handler.WithBinders[handler.Context, CheckRequest](bindCheck)))
//
// # Responses
//
// Responses adapt to the request type. For DataStar requests (see IsDataStar)
// Templ and TemplMulti stream element patches over SSE and Redirect issues a
// client-side redirect. For regular requests the same values render plain
// HTML or a 303 redirect.
//
// SSE keeps the stream open for the lifetime of the handler, which lets a
// blocked submission patch the removal of its summary alert later:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		select {
//		case <-g.Released():
//		case <-stream.Done():
//		}
//		return nil
//	})
//
// # Errors
//
// Binders and responses return errors. HTTPError carries a status code and a
// translation key; NewErrorHandler renders any error as a toast for DataStar
// requests and as an error page otherwise.
package handler
