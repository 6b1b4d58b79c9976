package server

import "time"

// Page renders read the dataset inline, so the write budget covers one
// source fetch plus templating.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 90 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 15 * time.Second
