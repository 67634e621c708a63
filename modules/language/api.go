package language

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/langswitch/handler"
	"github.com/dmitrymomot/langswitch/pkg/locale"
	"github.com/dmitrymomot/langswitch/pkg/messages"
	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// timestampLayout renders UTC times with microseconds and a Z suffix.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

func timestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

type CurrentResponse struct {
	CurrentLanguage     string           `json:"current_language"`
	CurrentLanguageName string           `json:"current_language_name"`
	Timestamp           string           `json:"timestamp"`
	Metadata            *CurrentMetadata `json:"metadata,omitempty"`
}

type CurrentMetadata struct {
	DetectionMethod  locale.Strategy `json:"detection_method"`
	SessionKey       string          `json:"session_key"`
	DefaultLanguage  string          `json:"default_language"`
	FallbackLanguage string          `json:"fallback_language"`
}

type SupportedResponse struct {
	Languages        []locale.Language  `json:"languages"`
	Count            int                `json:"count"`
	DefaultLanguage  string             `json:"default_language"`
	FallbackLanguage string             `json:"fallback_language"`
	Metadata         *SupportedMetadata `json:"metadata,omitempty"`
}

type SupportedMetadata struct {
	CacheEnabled bool `json:"cache_enabled"`
	CacheTTL     int  `json:"cache_ttl"`
}

type SwitchResponse struct {
	Success          bool   `json:"success"`
	PreviousLanguage string `json:"previous_language"`
	NewLanguage      string `json:"new_language"`
	Message          string `json:"message"`
	Timestamp        string `json:"timestamp"`
	RedirectURL      *string `json:"redirect_url,omitempty"` // echoed when sent, even if empty
}

// UnsupportedResponse is the 400 body of the switch endpoint.
type UnsupportedResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	SupportedLanguages []string `json:"supported_languages"`
}

func (m *module) handleCurrent() http.HandlerFunc {
	return handler.Wrap(m.current,
		handler.WithErrorHandler[struct{}](m.onError),
		handler.WithDecorators[struct{}](perVisitor[struct{}]),
	)
}

func (m *module) current(ctx handler.Context, _ struct{}) handler.Response {
	cfg := m.svc.Config()
	code := m.svc.Current(ctx.Request())

	resp := CurrentResponse{
		CurrentLanguage:     code,
		CurrentLanguageName: m.svc.Registry().DisplayName(code),
		Timestamp:           timestamp(),
	}
	if cfg.API.IncludeMetadata {
		resp.Metadata = &CurrentMetadata{
			DetectionMethod:  cfg.DetectionMethod,
			SessionKey:       cfg.SessionKey,
			DefaultLanguage:  m.svc.Registry().Default(),
			FallbackLanguage: m.svc.Registry().Fallback(),
		}
	}
	return handler.JSON(resp)
}

func (m *module) handleSupported() http.HandlerFunc {
	return handler.Wrap(m.supported,
		handler.WithErrorHandler[struct{}](m.onError),
	)
}

func (m *module) supported(_ handler.Context, _ struct{}) handler.Response {
	cfg := m.svc.Config()
	reg := m.svc.Registry()

	resp := SupportedResponse{
		Languages:        reg.Languages(),
		Count:            reg.Len(),
		DefaultLanguage:  reg.Default(),
		FallbackLanguage: reg.Fallback(),
	}
	if cfg.API.IncludeMetadata {
		resp.Metadata = &SupportedMetadata{
			CacheEnabled: cfg.Cache.Enabled,
			CacheTTL:     cfg.Cache.TTL,
		}
	}

	var opts []handler.JSONOption
	if cfg.Cache.Enabled && cfg.Cache.TTL > 0 {
		opts = append(opts, handler.WithJSONHeader("Cache-Control", fmt.Sprintf("public, max-age=%d", cfg.Cache.TTL)))
	}
	return handler.JSON(resp, opts...)
}

func (m *module) handleAPISwitch() http.HandlerFunc {
	return handler.Wrap(m.apiSwitch,
		m.switchBinders(),
		handler.WithErrorHandler[switchRequest](m.onError),
		handler.WithDecorators[switchRequest](perVisitor[switchRequest]),
	)
}

func (m *module) apiSwitch(ctx handler.Context, req switchRequest) handler.Response {
	w := ctx.ResponseWriter()

	change, err := m.svc.Switch(w, ctx.Request(), req.Locale)

	var unsupported *switcher.UnsupportedLocaleError
	var limited *switcher.RateLimitedError
	switch {
	case errors.As(err, &unsupported):
		return handler.JSON(UnsupportedResponse{
			Error:              m.msgs.LocalizeContext(ctx, messages.UnsupportedLanguageTitle, nil),
			Message:            m.msgs.LocalizeContext(ctx, messages.LanguageUnsupported, map[string]any{"Code": unsupported.Code}),
			SupportedLanguages: unsupported.Supported,
		}, handler.WithJSONStatus(http.StatusBadRequest))

	case errors.As(err, &limited):
		ratelimit.SetHeaders(w, &ratelimit.Result{
			Limit:   limited.Limit,
			ResetAt: time.Now().Add(limited.RetryAfter),
		})
		return handler.JSON(handler.ErrorBody{
			Error:   m.msgs.LocalizeContext(ctx, messages.TooManyRequestsTitle, nil),
			Message: m.msgs.LocalizeContext(ctx, messages.TooManyAttempts, nil),
		}, handler.WithJSONStatus(http.StatusTooManyRequests))

	case err != nil:
		return failed{err: err}
	}

	resp := SwitchResponse{
		Success:          true,
		PreviousLanguage: change.Previous,
		NewLanguage:      change.New,
		Message: m.msgs.LocalizeContext(ctx, messages.LanguageSwitched, map[string]any{
			"Name": change.New,
			"Code": change.New,
		}),
		Timestamp:   timestamp(),
		RedirectURL: redirectParam(ctx.Request(), req),
	}
	return handler.JSON(resp)
}

// redirectParam returns redirect_url as the client sent it. The query and form
// binders skip empty values, so an empty parameter is detected here.
func redirectParam(r *http.Request, req switchRequest) *string {
	if req.RedirectURL != nil {
		return req.RedirectURL
	}
	if r.URL.Query().Has("redirect_url") || r.PostForm.Has("redirect_url") {
		empty := ""
		return &empty
	}
	return nil
}
