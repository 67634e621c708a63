package session

import "errors"

// Stores and transports return these sentinels; callers match them with
// errors.Is.
var (
	ErrInvalidSession  = errors.New("session: nil session or empty token")
	ErrSessionExpired  = errors.New("session: expired")
	ErrSessionNotFound = errors.New("session: not found")
	ErrTokenGeneration = errors.New("session: cannot generate token")
	ErrStoreFailure    = errors.New("session: store backend failed")
)
