package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxFormSize caps urlencoded request bodies.
const DefaultMaxFormSize = 1 << 20

// Form binds `form:"name"` fields from an application/x-www-form-urlencoded
// body. Requests with another content type yield ErrNotApplicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType != "application/x-www-form-urlencoded" {
			return ErrNotApplicable
		}

		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxFormSize)
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		return bindToStruct(v, "form", func(name string) []string { return r.PostForm[name] }, ErrFailedToParseForm)
	}
}
