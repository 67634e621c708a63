package messages

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/langswitch/pkg/locale"
)

// Message ids shipped with the embedded catalogs.
const (
	LanguageSwitched         = "language_switched"
	LanguageUnsupported      = "language_unsupported"
	TooManyAttempts          = "too_many_attempts"
	UnsupportedLanguageTitle = "unsupported_language_title"
	TooManyRequestsTitle     = "too_many_requests_title"
	LanguageButton           = "language_button"
)

//go:embed locales/*.yaml
var embedded embed.FS

var ErrLoadCatalog = errors.New("messages: failed to load catalog")

// Catalog translates message ids. English is the source language and the
// fallback for ids missing in other catalogs.
type Catalog struct {
	bundle *i18n.Bundle
}

// New builds a catalog from the embedded locales plus any extra YAML files in
// extra (files named <lang>.yaml at the root of the filesystem).
func New(extra ...fs.FS) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if err := loadDir(bundle, embedded, "locales"); err != nil {
		return nil, err
	}
	for _, fsys := range extra {
		if err := loadDir(bundle, fsys, "."); err != nil {
			return nil, err
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// MustNew is like New but panics on error.
func MustNew(extra ...fs.FS) *Catalog {
	c, err := New(extra...)
	if err != nil {
		panic(err)
	}
	return c
}

func loadDir(bundle *i18n.Bundle, fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return errors.Join(ErrLoadCatalog, err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, f); err != nil {
			return errors.Join(ErrLoadCatalog, err)
		}
	}
	return nil
}

// Localize renders id in lang. Missing translations fall back to English and
// then to the id itself, so the result is never empty.
func (c *Catalog) Localize(lang, id string, data map[string]any) string {
	localizer := i18n.NewLocalizer(c.bundle, lang)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: id},
		TemplateData:   data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// LocalizeContext renders id in the request-scoped locale.
func (c *Catalog) LocalizeContext(ctx context.Context, id string, data map[string]any) string {
	return c.Localize(locale.GetLocale(ctx), id, data)
}

// Languages returns the tags that have a catalog.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}
