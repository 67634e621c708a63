// Package handler turns typed handler functions into http.HandlerFunc values.
//
// A handler receives a Context and a request value filled by binders (see
// pkg/binder) and returns a Response: JSON, Templ, Redirect, or
// RedirectBack. Binding and rendering errors go to an ErrorHandler;
// NewErrorHandler logs them with the chi request id and answers in JSON or
// plain text.
//
//	type currentRequest struct{}
//
//	h := handler.HandlerFunc[currentRequest](
//		func(ctx handler.Context, _ currentRequest) handler.Response {
//			return handler.JSON(map[string]string{"current_language": locale.GetLocale(ctx)})
//		},
//	)
//	r.Get("/api/languages/current", handler.Wrap(h))
package handler
