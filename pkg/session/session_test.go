package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langswitch/pkg/session"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("anonymous", func(t *testing.T) {
		sess := session.NewSession("tok", nil, time.Hour)
		assert.NotEqual(t, uuid.Nil, sess.ID)
		assert.Equal(t, "tok", sess.Token)
		assert.False(t, sess.IsAuthenticated())
		assert.False(t, sess.IsExpired())
		assert.NotNil(t, sess.Data)
	})

	t.Run("authenticated", func(t *testing.T) {
		uid := uuid.New()
		sess := session.NewSession("tok", &uid, time.Hour)
		assert.True(t, sess.IsAuthenticated())
		assert.Equal(t, uid, *sess.UserID)
	})

	t.Run("expired", func(t *testing.T) {
		sess := session.NewSession("tok", nil, -time.Second)
		assert.True(t, sess.IsExpired())
	})
}

func TestSession_Data(t *testing.T) {
	t.Parallel()

	sess := session.NewSession("tok", nil, time.Hour)

	_, ok := sess.Get("missing")
	assert.False(t, ok)

	sess.Set("locale", "ja")
	v, ok := sess.GetString("locale")
	assert.True(t, ok)
	assert.Equal(t, "ja", v)

	sess.Set("count", 3)
	_, ok = sess.GetString("count")
	assert.False(t, ok, "non-string values are not returned by GetString")

	sess.Set("empty", "")
	_, ok = sess.GetString("empty")
	assert.False(t, ok, "empty strings count as absent")

	sess.Delete("locale")
	_, ok = sess.Get("locale")
	assert.False(t, ok)
}

func TestSession_Pop(t *testing.T) {
	t.Parallel()

	sess := session.NewSession("tok", nil, time.Hour)
	sess.Set("_flash", "hello")

	v, ok := sess.Pop("_flash")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = sess.Pop("_flash")
	assert.False(t, ok)
}

func TestSession_NilReceiver(t *testing.T) {
	t.Parallel()

	var sess *session.Session
	assert.NotPanics(t, func() {
		sess.Set("k", "v")
		sess.Delete("k")
		sess.Touch()
	})
	_, ok := sess.Get("k")
	assert.False(t, ok)
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsExpired())
}

func TestSession_Touch(t *testing.T) {
	t.Parallel()

	sess := session.NewSession("tok", nil, time.Hour)
	sess.LastActivityAt = time.Now().Add(-time.Hour)
	sess.Touch()
	assert.WithinDuration(t, time.Now(), sess.LastActivityAt, time.Second)
}
