package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/langswitch/pkg/logger"
)

func asHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return HTTPError{}, false
}

func statusOf(err error) int {
	if httpErr, ok := asHTTPError(err); ok {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// WantsJSON reports whether the client prefers a JSON answer: an Accept
// header naming application/json or a JSON request body.
func WantsJSON(r *http.Request) bool {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mt, _, _ := mime.ParseMediaType(strings.TrimSpace(part))
		if mt == "application/json" {
			return true
		}
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

// NewErrorHandler logs the error with the request id and answers with JSON
// or plain text depending on what the client asked for. Client errors are
// logged at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Noop()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := statusOf(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(middleware.GetReqID(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if WantsJSON(r) {
			if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.ErrorContext(r.Context(), "failed to render error", logger.Error(renderErr))
			}
			return
		}

		msg := http.StatusText(status)
		if httpErr, ok := asHTTPError(err); ok {
			msg = httpErr.Key
		}
		http.Error(ctx.ResponseWriter(), msg, status)
	}
}
