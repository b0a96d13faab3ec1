// Package vision runs the periodic facial expression extraction loop.
package vision

import "time"

// Vision loop constants
const (
	// Period between detection ticks, bounded below by classifier latency
	TickInterval = 400 * time.Millisecond

	// Multiplier applied to the neutral channel when no face is visible
	NeutralDecayFactor = 1.05

	// Buffered samples between extractor and fusion loop
	SampleBuffer = 4
)
