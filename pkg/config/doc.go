// Package config loads application configuration into plain structs.
//
// Values come from three layers:
//
//  1. `envDefault` struct tags,
//  2. environment variables (with ./.env loaded once through
//     github.com/joho/godotenv),
//  3. an optional YAML file passed to LoadFile, whose keys win over the
//     environment.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and gopkg.in/yaml.v3, so
// a single struct can carry both `env` and `yaml` tags:
//
//	type Config struct {
//	    SessionKey string `env:"SESSION_KEY" envDefault:"locale" yaml:"session_key"`
//	}
//
//	var cfg Config
//	err := config.LoadFile(os.Getenv("APP_CONFIG_FILE"), &cfg)
//
// Load caches the parsed value per type, which suits infrastructure configs
// (HTTP server, Redis) read from several places. ResetCache clears it in tests.
package config
