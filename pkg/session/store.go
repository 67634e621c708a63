package session

import (
	"context"
	"time"
)

// Store persists sessions by token. Implementations must return
// ErrSessionNotFound for unknown tokens and ErrSessionExpired for tokens
// whose ExpiresAt has passed; backend failures should wrap ErrStoreFailure.
//
// UpdateActivity is the cheap path used by the throttled activity writes:
// it moves LastActivityAt and ExpiresAt without touching the data map.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	UpdateActivity(ctx context.Context, token string, lastActivity, expiresAt time.Time) error
	Delete(ctx context.Context, token string) error
	// DeleteExpired sweeps expired records. Stores with native TTLs may no-op.
	DeleteExpired(ctx context.Context) error
}
