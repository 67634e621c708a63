package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status  int
	headers http.Header
	body    any
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	for k, vals := range j.headers {
		h[k] = append(h[k], vals...)
	}
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption adjusts a JSON response before it is written.
type JSONOption func(*jsonResponse)

// WithJSONStatus replaces the default 200.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONHeader adds a header; repeated keys accumulate.
func WithJSONHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.headers == nil {
			r.headers = http.Header{}
		}
		r.headers.Add(key, value)
	}
}

// JSON renders v as the response body, without an envelope.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorBody is the JSON shape of error responses.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSONError renders err as {"error": ..., "message": ...}. HTTPError values
// keep their status; anything else is a 500 with a generic message.
func JSONError(err error, opts ...JSONOption) Response {
	status := http.StatusInternalServerError
	body := ErrorBody{
		Error:   ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}

	if httpErr, ok := asHTTPError(err); ok {
		status = httpErr.Code
		body.Error = httpErr.Key
		body.Message = http.StatusText(httpErr.Code)
	}

	return JSON(body, append([]JSONOption{WithJSONStatus(status)}, opts...)...)
}
