package handler

import (
	"errors"
	"net/http"
)

// HTTPError pairs a status code with a stable machine-readable key. The key
// is what JSON error bodies carry in their "error" field.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// ErrNilResponse means a HandlerFunc returned nil.
var ErrNilResponse = errors.New("handler: nil response")
