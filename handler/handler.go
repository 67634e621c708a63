package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/langswitch/pkg/binder"
)

// HandlerFunc handles one request whose input has been bound into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself out. Returning an error hands control to the
// route's ErrorHandler, so Render must not have written anything yet.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from r. See pkg/binder.
type Bind func(r *http.Request, v any) error

// ErrorHandler answers a request whose binding or rendering failed.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc; the first one passed to WithDecorators
// runs outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*route[R])

type route[R any] struct {
	binders    []Bind
	onError    ErrorHandler
	decorators []Decorator[R]
}

// WithBinders runs binders in order against the same value. A binder that
// returns binder.ErrNotApplicable is skipped, so path, query, form and JSON
// binders can be stacked on one route:
//
//	handler.WithBinders[switchRequest](
//		binder.Path(chi.URLParam),
//		binder.Query(),
//		binder.Form(),
//		binder.JSON(),
//	)
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(rt *route[R]) { rt.binders = append(rt.binders, binders...) }
}

// WithErrorHandler replaces the plain-text default. Nil is ignored.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(rt *route[R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(rt *route[R]) { rt.decorators = append(rt.decorators, decorators...) }
}

func plainError(ctx Context, err error) {
	status := http.StatusInternalServerError
	text := http.StatusText(status)
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status, text = httpErr.Code, httpErr.Key
	}
	http.Error(ctx.ResponseWriter(), text, status)
}

// Wrap adapts h to net/http. Bind failures reach the error handler joined
// with ErrBadRequest; a nil Response is reported as ErrNilResponse.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	rt := &route[R]{onError: plainError}
	for _, opt := range opts {
		opt(rt)
	}
	for i := len(rt.decorators) - 1; i >= 0; i-- {
		h = rt.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		if err := rt.bind(r, &req); err != nil {
			rt.onError(ctx, errors.Join(ErrBadRequest, err))
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			rt.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			rt.onError(ctx, err)
		}
	}
}

func (rt *route[R]) bind(r *http.Request, v *R) error {
	for _, b := range rt.binders {
		if err := b(r, v); err != nil && !errors.Is(err, binder.ErrNotApplicable) {
			return err
		}
	}
	return nil
}
