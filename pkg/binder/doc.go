// Package binder fills request structs from path parameters, query strings,
// urlencoded forms, and JSON bodies.
//
// Only tagged fields are bound:
//
//	type SwitchRequest struct {
//		Locale      string `path:"locale" json:"-"`
//		RedirectURL string `query:"redirect_url" form:"redirect_url" json:"redirect_url"`
//	}
//
// Form and JSON return ErrNotApplicable for requests they cannot read, which
// lets handler.Wrap chain binders for endpoints that accept several encodings.
package binder
