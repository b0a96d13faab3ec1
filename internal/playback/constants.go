// Package playback plays downlink PCM gaplessly and in order.
package playback

// Playback constants
const (
	// Sample rate of synthesized downlink speech
	DefaultSampleRate = 16000

	// Pending chunks between Enqueue and the play loop
	QueueSize = 64

	// Frames per device write
	SinkBlockSize = 1024
)
