package binder

import (
	"net/http"
)

// Path binds `path:"name"` fields using extractor, typically chi.URLParam.
//
//	type SwitchRequest struct {
//		Locale string `path:"locale"`
//	}
//
//	r.Post("/language/{locale}", handler.Wrap(h,
//		handler.WithBinders[SwitchRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrFailedToParsePath
		}
		return bindToStruct(v, "path", func(name string) []string {
			if val := extractor(r, name); val != "" {
				return []string{val}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}
