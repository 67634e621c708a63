package language

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/langswitch/handler"
	"github.com/dmitrymomot/langswitch/pkg/binder"
	"github.com/dmitrymomot/langswitch/pkg/messages"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// switchRequest is shared by the browser and API switch endpoints.
type switchRequest struct {
	Locale      string `path:"locale" json:"-"`
	RedirectURL *string `query:"redirect_url" form:"redirect_url" json:"redirect_url"`
}

func (m *module) switchBinders() handler.WrapOption[switchRequest] {
	return handler.WithBinders[switchRequest](
		binder.Path(chi.URLParam),
		binder.Query(),
		binder.Form(),
		binder.JSON(),
	)
}

func (m *module) handleWebSwitch() http.HandlerFunc {
	return handler.Wrap(m.webSwitch,
		m.switchBinders(),
		handler.WithErrorHandler[switchRequest](m.onError),
	)
}

// webSwitch changes the locale and redirects back with a flash message.
func (m *module) webSwitch(ctx handler.Context, req switchRequest) handler.Response {
	w, r := ctx.ResponseWriter(), ctx.Request()

	target := handler.BackURL(r, m.fallback)
	if req.RedirectURL != nil && handler.IsSafeRedirect(*req.RedirectURL, r) {
		target = *req.RedirectURL
	}

	change, err := m.svc.Switch(w, r, req.Locale)
	switch {
	case err == nil:
		m.flash(ctx, w, r, FlashSuccess, m.msgs.LocalizeContext(ctx, messages.LanguageSwitched, map[string]any{
			"Name": m.svc.Registry().DisplayName(change.New),
			"Code": change.New,
		}))
	case errors.Is(err, switcher.ErrUnsupportedLocale):
		m.flash(ctx, w, r, FlashError, m.msgs.LocalizeContext(ctx, messages.LanguageUnsupported, map[string]any{
			"Code": req.Locale,
		}))
	case errors.Is(err, switcher.ErrRateLimited):
		m.flash(ctx, w, r, FlashError, m.msgs.LocalizeContext(ctx, messages.TooManyAttempts, nil))
	default:
		return failed{err: err}
	}

	return handler.Redirect(target)
}

func (m *module) handleWidget() http.HandlerFunc {
	return handler.Wrap(m.widgetPage,
		handler.WithErrorHandler[struct{}](m.onError),
		handler.WithDecorators[struct{}](perVisitor[struct{}]),
	)
}

func (m *module) widgetPage(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	data := m.widgetData(r)
	data.Flash = m.popFlash(ctx, r)
	return handler.Templ(m.widget(data))
}

func (m *module) widgetData(r *http.Request) WidgetData {
	reg := m.svc.Registry()
	current := m.svc.Current(r)

	data := WidgetData{
		Current: current,
		Label:   m.msgs.LocalizeContext(r.Context(), messages.LanguageButton, nil),
	}
	if reg.IsSupported(current) {
		data.CurrentName = reg.DisplayName(current)
	}
	for _, lang := range reg.Languages() {
		data.Languages = append(data.Languages, WidgetLanguage{
			Code:   lang.Code,
			Name:   lang.Name,
			Active: lang.Code == current,
			Action: "/language-switcher/" + lang.Code,
		})
	}
	return data
}

// failed makes Wrap hand err to the error handler.
type failed struct{ err error }

func (f failed) Render(http.ResponseWriter, *http.Request) error { return f.err }
