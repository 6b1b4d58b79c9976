package remote

import "time"

const (
	sourceName         = "remote"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
