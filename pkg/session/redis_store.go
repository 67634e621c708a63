package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON documents in Redis. Expiry is delegated to
// Redis itself, so DeleteExpired is a no-op.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the prefix for session keys (default: "session:").
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis backed session store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "session:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}

	err = s.client.SetArgs(ctx, s.key(session.Token), string(data), redis.SetArgs{
		ExpireAt: session.ExpiresAt,
	}).Err()
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Update overwrites an existing session; missing sessions are not recreated.
func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}

	err = s.client.SetArgs(ctx, s.key(session.Token), string(data), redis.SetArgs{
		Mode:     "XX",
		ExpireAt: session.ExpiresAt,
	}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// UpdateActivity rewrites the activity and expiry fields inside a WATCH
// transaction. If the session is written concurrently the touch is dropped,
// so a request's own Update always wins over a background activity write.
func (s *RedisStore) UpdateActivity(ctx context.Context, token string, lastActivity, expiresAt time.Time) error {
	key := s.key(token)
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return errors.Join(ErrStoreFailure, err)
		}

		var session Session
		if err := json.Unmarshal(raw, &session); err != nil {
			return errors.Join(ErrStoreFailure, err)
		}
		session.LastActivityAt = lastActivity
		session.ExpiresAt = expiresAt
		data, err := json.Marshal(&session)
		if err != nil {
			return errors.Join(ErrStoreFailure, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SetArgs(ctx, key, string(data), redis.SetArgs{Mode: "XX", ExpireAt: expiresAt})
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil, errors.Is(err, redis.TxFailedErr):
		return nil
	case errors.Is(err, redis.Nil):
		return ErrSessionNotFound
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrStoreFailure):
		return err
	}
	return errors.Join(ErrStoreFailure, err)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}
