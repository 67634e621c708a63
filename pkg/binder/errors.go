package binder

import "errors"

// ErrNotApplicable means the request carries nothing for this binder (other
// content type, empty body). handler.Wrap skips binders that return it.
var ErrNotApplicable = errors.New("binder: not applicable")

var (
	ErrInvalidTarget      = errors.New("binder: target must be a non-nil struct pointer")
	ErrFailedToParseJSON  = errors.New("binder: bad JSON body")
	ErrFailedToParseForm  = errors.New("binder: bad form body")
	ErrFailedToParseQuery = errors.New("binder: bad query string")
	ErrFailedToParsePath  = errors.New("binder: bad path parameter")
)
