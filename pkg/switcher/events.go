package switcher

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/langswitch/pkg/events"
	"github.com/dmitrymomot/langswitch/pkg/logger"
	"github.com/dmitrymomot/langswitch/pkg/session"
)

// Actor identifies the authenticated user behind a change.
type Actor struct {
	ID    string
	Email string
}

// ActorFunc resolves the acting user for a request; nil means a guest.
type ActorFunc func(r *http.Request) *Actor

// SessionActor reports the user id of the authenticated session in the request context.
func SessionActor(r *http.Request) *Actor {
	id, ok := session.UserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &Actor{ID: id}
}

// EventLanguageChanged names the dispatcher and tags audit lines.
const EventLanguageChanged = "language.changed"

// LanguageChanged is dispatched once per successful Switch.
type LanguageChanged struct {
	Previous  string
	New       string
	User      *Actor
	IP        string
	UserAgent string
	At        time.Time
}

// LogLanguageChange returns a listener that writes an audit line for every
// change. It does nothing unless enabled.
func LogLanguageChange(log *slog.Logger, enabled bool) events.Listener[LanguageChanged] {
	if log == nil {
		log = logger.Noop()
	}
	return func(ctx context.Context, evt LanguageChanged) error {
		if !enabled {
			return nil
		}

		userID, userEmail := "guest", "anonymous"
		if evt.User != nil {
			userID = evt.User.ID
			if evt.User.Email != "" {
				userEmail = evt.User.Email
			}
		}

		log.InfoContext(ctx, "Language changed",
			logger.Event(EventLanguageChanged),
			slog.String("previous_language", evt.Previous),
			slog.String("new_language", evt.New),
			logger.UserID(userID),
			slog.String("user_email", userEmail),
			slog.String("timestamp", evt.At.UTC().Format(time.RFC3339Nano)),
			logger.IP(evt.IP),
			slog.String("user_agent", evt.UserAgent),
		)
		return nil
	}
}
