package client

import "errors"

var (
	// ErrServerNotRunning is returned when nothing is listening at the server address
	ErrServerNotRunning = errors.New("server not running")

	// ErrNotFound is returned when 404 is returned from the server
	ErrNotFound = errors.New("404 not found")
)
