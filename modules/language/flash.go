package language

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/langswitch/pkg/logger"
)

// FlashKey is the session key holding the one-shot flash message.
const FlashKey = "_flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a message shown once after a redirect.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (m *module) flash(ctx context.Context, w http.ResponseWriter, r *http.Request, kind, msg string) {
	if m.sessions == nil {
		return
	}
	err := m.sessions.Set(ctx, w, r, FlashKey, map[string]any{
		"type":    kind,
		"message": msg,
	})
	if err != nil {
		m.log.WarnContext(ctx, "failed to store flash message", logger.Error(err))
	}
}

// popFlash reads and clears the flash message. Values decoded from a JSON
// backed store arrive as map[string]any as well, so one shape covers both.
func (m *module) popFlash(ctx context.Context, r *http.Request) *Flash {
	if m.sessions == nil {
		return nil
	}
	val, ok := m.sessions.Pop(ctx, r, FlashKey)
	if !ok {
		return nil
	}
	data, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	kind, _ := data["type"].(string)
	msg, _ := data["message"].(string)
	if msg == "" {
		return nil
	}
	return &Flash{Type: kind, Message: msg}
}
