package handler

import (
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithTemplStatus sets the response status (default 200).
func WithTemplStatus(status int) TemplOption {
	return func(t *templResponse) {
		t.status = status
	}
}

// Templ renders a templ component as an HTML response.
//
//	return handler.Templ(language.Switcher(data))
func Templ(component templ.Component, opts ...TemplOption) Response {
	t := templResponse{component: component}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
