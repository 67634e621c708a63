package httpserver

import "errors"

var (
	ErrStart          = errors.New("httpserver: listen failed")
	ErrShutdown       = errors.New("httpserver: graceful shutdown incomplete")
	ErrAlreadyRunning = errors.New("httpserver: Run called twice")
)
