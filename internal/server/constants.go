// Package server provides the local admin HTTP and WebSocket API
package server

import "time"

// Server configuration constants
const (
	// Per-connection inbound message rate limiting
	RateLimitMessages = 10
	RateLimitWindow   = time.Second
)
