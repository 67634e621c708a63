package session

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind a token. langswitch keeps the
// chosen locale, the flash message and the switch timestamp in Data.
// UserID is only set when an embedding application signs users in; it
// selects the longer authenticated timeouts.
type Session struct {
	ID             uuid.UUID      `json:"id"`
	Token          string         `json:"token"`
	UserID         *uuid.UUID     `json:"user_id,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
	ExpiresAt      time.Time      `json:"expires_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewSession returns a session that expires ttl from now.
func NewSession(token string, userID *uuid.UUID, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		UserID:         userID,
		Data:           map[string]any{},
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
	}
}

func (s *Session) IsAuthenticated() bool { return s != nil && s.UserID != nil }

func (s *Session) IsExpired() bool { return s != nil && time.Now().After(s.ExpiresAt) }

// Touch marks the session as active now.
func (s *Session) Touch() {
	if s != nil {
		s.LastActivityAt = time.Now()
	}
}

func (s *Session) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.Data[key]
	return v, ok
}

// GetString reports false for missing keys, non-string values and "".
func (s *Session) GetString(key string) (string, bool) {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str, str != ""
}

func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = map[string]any{}
	}
	s.Data[key] = value
}

func (s *Session) Delete(key string) {
	if s != nil {
		delete(s.Data, key)
	}
}

// Pop reads and removes key in one step. Flash messages are stored this way.
func (s *Session) Pop(key string) (any, bool) {
	v, ok := s.Get(key)
	if ok {
		delete(s.Data, key)
	}
	return v, ok
}

func (s *Session) clone() *Session {
	cp := *s
	if s.Data != nil {
		cp.Data = maps.Clone(s.Data)
	}
	if s.UserID != nil {
		id := *s.UserID
		cp.UserID = &id
	}
	return &cp
}
