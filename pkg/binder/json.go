package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize caps JSON bodies at 1 MiB.
const DefaultMaxJSONSize = 1 << 20

// JSON decodes an application/json body into v; unknown fields are ignored.
// Other content types and empty bodies yield ErrNotApplicable, so one route
// can accept a JSON body, a form post or neither.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt != "application/json" {
			return ErrNotApplicable
		}
		if _, err := structTarget(v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		switch {
		case err != nil:
			return fmt.Errorf("%w: read body: %v", ErrFailedToParseJSON, err)
		case len(body) > DefaultMaxJSONSize:
			return fmt.Errorf("%w: body exceeds %d bytes", ErrFailedToParseJSON, DefaultMaxJSONSize)
		case len(body) == 0:
			return ErrNotApplicable
		}

		if err := json.Unmarshal(body, v); err != nil {
			var se *json.SyntaxError
			if errors.As(err, &se) {
				return fmt.Errorf("%w: malformed JSON at byte %d", ErrFailedToParseJSON, se.Offset)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}
