// Package session coordinates capture, analysis, transport and playback
// for one conversation.
package session

import "time"

// Session configuration constants
const (
	// Wall-clock interval between video frame uplinks
	DefaultVideoInterval = 500 * time.Millisecond

	// Minimum gap between emotion_update control messages
	DefaultEmotionInterval = time.Second

	// Transcript store configuration
	TranscriptMaxEntries  = 100
	TranscriptEventBuffer = 100

	// Entries returned in a snapshot
	TranscriptTail = 20

	// Admin event feed buffer
	EventBuffer = 64
)
