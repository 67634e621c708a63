package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/pkg/locale"
)

func newTestRegistry() *locale.Registry {
	return locale.NewRegistry(map[string]string{
		"en": "English",
		"ja": "日本語",
		"vi": "Tiếng Việt",
	}, "en", "en")
}

func TestRegistry_IsSupported(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry()

	tests := []struct {
		code     string
		expected bool
	}{
		{"en", true},
		{"ja", true},
		{"vi", true},
		{"fr", false},
		{"EN", false},
		{"en-US", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, reg.IsSupported(tt.code))
		})
	}
}

func TestRegistry_DisplayName(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry()

	assert.Equal(t, "日本語", reg.DisplayName("ja"))
	assert.Equal(t, "Tiếng Việt", reg.DisplayName("vi"))

	t.Run("unknown codes are returned unchanged", func(t *testing.T) {
		for _, code := range []string{"xx", "fr", "EN", ""} {
			assert.False(t, reg.IsSupported(code))
			assert.Equal(t, code, reg.DisplayName(code))
		}
	})
}

func TestRegistry_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("configured values", func(t *testing.T) {
		reg := locale.NewRegistry(map[string]string{"en": "English", "ja": "日本語"}, "ja", "en")
		assert.Equal(t, "ja", reg.Default())
		assert.Equal(t, "en", reg.Fallback())
	})

	t.Run("empty values degrade to en", func(t *testing.T) {
		reg := locale.NewRegistry(map[string]string{"ja": "日本語"}, "", "")
		assert.Equal(t, locale.DefaultLocale, reg.Default())
		assert.Equal(t, locale.DefaultLocale, reg.Fallback())
	})

	t.Run("empty map uses builtin languages", func(t *testing.T) {
		reg := locale.NewRegistry(nil, "", "")
		assert.Equal(t, []string{"en", "ja", "vi"}, reg.SupportedCodes())
		assert.Equal(t, "English", reg.DisplayName("en"))
	})
}

func TestRegistry_Languages(t *testing.T) {
	t.Parallel()
	reg := locale.NewRegistry(map[string]string{
		"vi": "Tiếng Việt",
		"en": "English",
		"ja": "日本語",
	}, "ja", "en")

	langs := reg.Languages()
	require.Len(t, langs, 3)
	assert.Equal(t, 3, reg.Len())

	assert.Equal(t, locale.Language{Code: "en", Name: "English", IsFallback: true}, langs[0])
	assert.Equal(t, locale.Language{Code: "ja", Name: "日本語", IsDefault: true}, langs[1])
	assert.Equal(t, locale.Language{Code: "vi", Name: "Tiếng Việt"}, langs[2])
}

func TestRegistry_IsolatedFromInput(t *testing.T) {
	t.Parallel()
	input := map[string]string{"en": "English"}
	reg := locale.NewRegistry(input, "en", "en")

	input["fr"] = "Français"
	assert.False(t, reg.IsSupported("fr"), "registry must not observe later changes to the input map")

	codes := reg.SupportedCodes()
	codes[0] = "zz"
	assert.Equal(t, []string{"en"}, reg.SupportedCodes())
}
