package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds the whole shutdown sequence; tests override it.
var shutdownTimeout = 10 * time.Second
