package switcher

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/langswitch/pkg/locale"
)

// Languages maps locale codes to display names.
// A YAML document replaces the whole set instead of merging into defaults.
type Languages map[string]string

func (l *Languages) UnmarshalYAML(n *yaml.Node) error {
	m := make(map[string]string)
	if err := n.Decode(&m); err != nil {
		return err
	}
	*l = m
	return nil
}

// Config is the language switcher configuration. Build it once at startup
// and share it by pointer; nothing mutates it afterwards.
type Config struct {
	AppLocale          string          `yaml:"app_locale" env:"LANGSWITCH_APP_LOCALE" envDefault:"en" validate:"required"`
	SupportedLanguages Languages       `yaml:"supported_languages" env:"LANGSWITCH_SUPPORTED_LANGUAGES" envKeyValSeparator:":" envDefault:"en:English,ja:日本語,vi:Tiếng Việt" validate:"required,min=1,dive,keys,required,endkeys,required"`
	DefaultLanguage    string          `yaml:"default_language" env:"LANGSWITCH_DEFAULT_LANGUAGE" envDefault:"en" validate:"required"`
	FallbackLanguage   string          `yaml:"fallback_language" env:"LANGSWITCH_FALLBACK_LANGUAGE" envDefault:"en" validate:"required"`
	DetectionMethod    locale.Strategy `yaml:"detection_method" env:"LANGSWITCH_DETECTION_METHOD" envDefault:"all" validate:"required,oneof=session url header all"`
	SessionKey         string          `yaml:"session_key" env:"LANGSWITCH_SESSION_KEY" envDefault:"locale" validate:"required"`
	URLParameter       string          `yaml:"url_parameter" env:"LANGSWITCH_URL_PARAMETER" envDefault:"locale" validate:"required"`

	Middleware MiddlewareConfig `yaml:"middleware"`
	API        APIConfig        `yaml:"api"`
	Cache      CacheConfig      `yaml:"cache"`
	Security   SecurityConfig   `yaml:"security"`
	Debug      DebugConfig      `yaml:"debug"`
}

type MiddlewareConfig struct {
	StoreInSession bool     `yaml:"store_in_session" env:"LANGSWITCH_STORE_IN_SESSION" envDefault:"true"`
	ExcludePaths   []string `yaml:"exclude_paths" env:"LANGSWITCH_EXCLUDE_PATHS"`
}

type APIConfig struct {
	Enabled         bool `yaml:"enabled" env:"LANGSWITCH_API_ENABLED" envDefault:"true"`
	IncludeMetadata bool `yaml:"include_metadata" env:"LANGSWITCH_API_INCLUDE_METADATA" envDefault:"true"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled" env:"LANGSWITCH_CACHE_ENABLED" envDefault:"true"`
	TTL     int  `yaml:"ttl" env:"LANGSWITCH_CACHE_TTL" envDefault:"3600" validate:"gte=0"` // seconds
}

type SecurityConfig struct {
	RateLimiting RateLimitConfig `yaml:"rate_limiting"`
}

type RateLimitConfig struct {
	Enabled      bool `yaml:"enabled" env:"LANGSWITCH_RATE_LIMIT_ENABLED" envDefault:"false"`
	MaxAttempts  int  `yaml:"max_attempts" env:"LANGSWITCH_RATE_LIMIT_MAX_ATTEMPTS" envDefault:"10" validate:"gte=1"`
	DecayMinutes int  `yaml:"decay_minutes" env:"LANGSWITCH_RATE_LIMIT_DECAY_MINUTES" envDefault:"1" validate:"gte=1"`
}

// Window is the rate limit window length.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.DecayMinutes) * time.Minute
}

type DebugConfig struct {
	LogLanguageChanges bool `yaml:"log_language_changes" env:"LANGSWITCH_LOG_LANGUAGE_CHANGES" envDefault:"false"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		AppLocale: locale.DefaultLocale,
		SupportedLanguages: Languages{
			"en": "English",
			"ja": "日本語",
			"vi": "Tiếng Việt",
		},
		DefaultLanguage:  locale.DefaultLocale,
		FallbackLanguage: locale.DefaultLocale,
		DetectionMethod:  locale.StrategyAll,
		SessionKey:       "locale",
		URLParameter:     "locale",
		Middleware:       MiddlewareConfig{StoreInSession: true},
		API:              APIConfig{Enabled: true, IncludeMetadata: true},
		Cache:            CacheConfig{Enabled: true, TTL: 3600},
		Security: SecurityConfig{RateLimiting: RateLimitConfig{
			MaxAttempts:  10,
			DecayMinutes: 1,
		}},
	}
}

// ConfigError lists every invalid field by its YAML path.
type ConfigError struct {
	Fields map[string]string
}

func (e *ConfigError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+e.Fields[k])
	}
	return "invalid language switcher config: " + strings.Join(msgs, "; ")
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ConfigError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints and that the default and fallback
// languages are supported. Codes that are not well-formed BCP 47 tags are
// reported as well.
func (c *Config) Validate() error {
	cfgErr := &ConfigError{}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Join(ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			cfgErr.add(fieldPath(fe), fieldMessage(fe))
		}
	}

	for code := range c.SupportedLanguages {
		if _, err := language.Parse(code); err != nil {
			cfgErr.add("supported_languages["+code+"]", "is not a valid BCP 47 language tag")
		}
	}

	if c.DefaultLanguage != "" {
		if _, ok := c.SupportedLanguages[c.DefaultLanguage]; !ok {
			cfgErr.add("default_language", fmt.Sprintf("%q is not in supported_languages", c.DefaultLanguage))
		}
	}
	if c.FallbackLanguage != "" {
		if _, ok := c.SupportedLanguages[c.FallbackLanguage]; !ok {
			cfgErr.add("fallback_language", fmt.Sprintf("%q is not in supported_languages", c.FallbackLanguage))
		}
	}

	if len(cfgErr.Fields) > 0 {
		return cfgErr
	}
	return nil
}

// fieldPath turns "Config.security.rate_limiting.max_attempts" into
// "security.rate_limiting.max_attempts".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}

// Registry builds the locale registry described by the config.
func (c *Config) Registry() *locale.Registry {
	return locale.NewRegistry(c.SupportedLanguages, c.DefaultLanguage, c.FallbackLanguage)
}

// Detector builds a detector over the configured registry and application locale.
func (c *Config) Detector() *locale.Detector {
	return locale.NewDetector(c.Registry(), c.AppLocale)
}
