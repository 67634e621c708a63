package locale

import (
	"maps"
	"slices"
)

// DefaultLocale is used whenever a default or fallback code is not configured.
const DefaultLocale = "en"

// builtinLanguages is the set used when the registry is built from an empty map.
var builtinLanguages = map[string]string{
	"en": "English",
	"ja": "日本語",
	"vi": "Tiếng Việt",
}

// Language describes one supported locale.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsDefault  bool   `json:"is_default"`
	IsFallback bool   `json:"is_fallback"`
}

// Registry is the immutable set of supported locales with designated default and fallback codes.
// It is safe for concurrent use.
type Registry struct {
	names    map[string]string
	codes    []string
	def      string
	fallback string
}

// NewRegistry builds a registry from a code to display name mapping.
// Empty default or fallback values degrade to DefaultLocale.
func NewRegistry(languages map[string]string, def, fallback string) *Registry {
	if len(languages) == 0 {
		languages = builtinLanguages
	}

	names := maps.Clone(languages)
	codes := slices.Sorted(maps.Keys(names))

	if def == "" {
		def = DefaultLocale
	}
	if fallback == "" {
		fallback = DefaultLocale
	}

	return &Registry{
		names:    names,
		codes:    codes,
		def:      def,
		fallback: fallback,
	}
}

// IsSupported reports whether code is a configured locale. Comparison is case-sensitive.
func (r *Registry) IsSupported(code string) bool {
	if code == "" {
		return false
	}
	_, ok := r.names[code]
	return ok
}

// DisplayName returns the configured name for code, or code itself when unknown.
func (r *Registry) DisplayName(code string) string {
	if name, ok := r.names[code]; ok {
		return name
	}
	return code
}

func (r *Registry) Default() string {
	return r.def
}

func (r *Registry) Fallback() string {
	return r.fallback
}

// SupportedCodes returns the configured codes sorted alphabetically.
func (r *Registry) SupportedCodes() []string {
	return slices.Clone(r.codes)
}

// Languages returns every supported locale with its default/fallback flags, sorted by code.
func (r *Registry) Languages() []Language {
	out := make([]Language, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, Language{
			Code:       code,
			Name:       r.names[code],
			IsDefault:  code == r.def,
			IsFallback: code == r.fallback,
		})
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.codes)
}
