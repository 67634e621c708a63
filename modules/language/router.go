package language

import (
	"log/slog"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/langswitch/handler"
	"github.com/dmitrymomot/langswitch/pkg/logger"
	"github.com/dmitrymomot/langswitch/pkg/messages"
	"github.com/dmitrymomot/langswitch/pkg/session"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// Options configures the language module router.
type Options struct {
	// Sessions stores flash messages for the browser endpoints.
	// Without it the browser endpoints redirect without a message.
	Sessions *session.Manager

	// Messages translates flash and API messages. Defaults to the embedded catalog.
	Messages *messages.Catalog

	Logger       *slog.Logger
	ErrorHandler handler.ErrorHandler

	// Widget renders the switcher fragment. Defaults to Switcher.
	Widget func(WidgetData) templ.Component

	// FallbackURL is the redirect target when the Referer is missing or
	// points to another host. Defaults to "/".
	FallbackURL string
}

type module struct {
	svc      *switcher.Service
	sessions *session.Manager
	msgs     *messages.Catalog
	log      *slog.Logger
	onError  handler.ErrorHandler
	widget   func(WidgetData) templ.Component
	fallback string
}

// Router creates the language module router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(sessions.Middleware, svc.Middleware)
//	r.Mount("/", language.Router(svc, language.Options{Sessions: sessions}))
//
// The JSON API routes are only mounted when the service config enables them.
func Router(svc *switcher.Service, opts Options) chi.Router {
	m := &module{
		svc:      svc,
		sessions: opts.Sessions,
		msgs:     opts.Messages,
		log:      opts.Logger,
		onError:  opts.ErrorHandler,
		widget:   opts.Widget,
		fallback: opts.FallbackURL,
	}
	if m.msgs == nil {
		m.msgs = messages.MustNew()
	}
	if m.log == nil {
		m.log = logger.Noop()
	}
	m.log = m.log.With(logger.Component("language"))
	if m.onError == nil {
		m.onError = handler.NewErrorHandler(m.log)
	}
	if m.widget == nil {
		m.widget = Switcher
	}
	if m.fallback == "" {
		m.fallback = "/"
	}

	r := chi.NewRouter()

	r.Get("/language-switcher", m.handleWidget())
	r.Post("/language-switcher/{locale}", m.handleWebSwitch())

	if svc.Config().API.Enabled {
		r.Route("/api/languages", func(api chi.Router) {
			api.Get("/current", m.handleCurrent())
			api.Get("/supported", m.handleSupported())
			api.Post("/{locale}", m.handleAPISwitch())
		})
	}

	return r
}

// perVisitor marks responses that depend on the visitor's session or
// headers so shared caches never store them.
func perVisitor[R any](next handler.HandlerFunc[R]) handler.HandlerFunc[R] {
	return func(ctx handler.Context, req R) handler.Response {
		h := ctx.ResponseWriter().Header()
		h.Set("Cache-Control", "private, no-store")
		h.Add("Vary", "Cookie")
		h.Add("Vary", "Accept-Language")
		return next(ctx, req)
	}
}
