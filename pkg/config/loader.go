package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// parsed holds one value per configuration type, keyed by reflect.Type.
	parsed   sync.Map
	parseMu  sync.Mutex
	dotenvMu sync.Once
)

// Load fills v from the environment. ./.env is read once per process if it
// exists. Each type is parsed on first use and served from memory after
// that, so callers anywhere in the program see the same values.
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := reflect.TypeFor[T]()
	if cached, ok := parsed.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	parseMu.Lock()
	defer parseMu.Unlock()
	if cached, ok := parsed.Load(key); ok {
		*v = cached.(T)
		return nil
	}
	if err := fromEnv(v); err != nil {
		return err
	}
	parsed.Store(key, *v)
	return nil
}

// MustLoad is Load for configuration the program cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// LoadFile is an uncached Load followed by a YAML overlay read from path.
// Keys present in the file win over the environment; an empty path skips
// the overlay.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := fromEnv(v); err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}
	return nil
}

// LoadEnv copies variables from the named .env files (default ./.env) into
// the process environment without overriding ones already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every value parsed by Load. Tests use it between cases.
func ResetCache() {
	parseMu.Lock()
	parsed.Clear()
	parseMu.Unlock()
}

func fromEnv(v any) error {
	dotenvMu.Do(func() { _ = godotenv.Load() })
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
