package config

import "errors"

var (
	ErrNilPointer     = errors.New("config: nil target")
	ErrParsingConfig  = errors.New("config: cannot parse environment")
	ErrLoadingEnvFile = errors.New("config: cannot load .env file")
	ErrReadingFile    = errors.New("config: cannot read config file")
	ErrParsingFile    = errors.New("config: malformed config file")
)
