package ratelimit

import (
	"math"
	"net/http"
	"strconv"
)

// SetHeaders writes the X-RateLimit-* headers for the result and, for a
// rejected attempt, Retry-After in whole seconds (at least 1).
func SetHeaders(w http.ResponseWriter, result *Result) {
	if result == nil {
		return
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

	if !result.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds(result)))
	}
}

// RetryAfterSeconds rounds the wait up to whole seconds, never below 1.
func RetryAfterSeconds(result *Result) int {
	secs := int(math.Ceil(result.RetryAfter().Seconds()))
	return max(1, secs)
}
