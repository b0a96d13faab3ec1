// Package transport implements the duplex session channel: tagged
// binary frames uplink, PCM audio and JSON control messages downlink.
package transport

import "time"

// Frame type tags for uplink binary frames
const (
	TagAudio byte = 0x01
	TagVideo byte = 0x02
)

// Channel sizing and timeouts
const (
	// Outbound frame queue; video frames are coalesced when full
	SendQueueSize = 64

	// Downlink audio buffer between the read loop and playback
	AudioBuffer = 64

	// Event channel buffers
	EventBuffer = 32

	DialTimeout  = 10 * time.Second
	WriteTimeout = 5 * time.Second
)
