// Package camera provides platform-agnostic webcam capture
package camera

// Capture constants
const (
	// Frames wider than this are downscaled before uplink
	MaxFrameWidth = 320

	// JPEG re-encode quality for uplink frames
	JPEGQuality = 60

	// Bytes hashed for the cheap change check
	QuickHashBytes = 4096

	// Perceptual hash distance at or below which a frame counts as unchanged
	HammingThreshold = 5
)
