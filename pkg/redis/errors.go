package redis

import "errors"

// Sentinel errors returned by Connect and Check. Underlying driver errors are
// joined onto them, so match with errors.Is.
var (
	ErrEmptyConnectionURL = errors.New("redis: connection url is empty")
	ErrInvalidURL         = errors.New("redis: invalid connection url")
	ErrNotReady           = errors.New("redis: server not reachable before deadline")
	ErrHealthcheckFailed  = errors.New("redis: ping failed")
)
