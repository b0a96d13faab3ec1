package resilience

import "time"

// Breaker defaults, tuned for a classifier sidecar polled every few
// hundred milliseconds: open quickly, retry the preferred backend after
// a short cooldown.
const (
	DefaultThreshold         = 3
	DefaultResetTimeout      = 10 * time.Second
	DefaultHalfOpenSuccesses = 2
)
