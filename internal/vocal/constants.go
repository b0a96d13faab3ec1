// Package vocal extracts prosodic features from raw microphone blocks.
package vocal

// Analysis constants
const (
	// Gain applied to RMS volume before clamping
	VolumeGain = 4.0

	// Blocks between aggregated feature emissions
	WindowBlocks = 15

	// Rolling buffer length for pitch and volume history
	BufferBlocks = 30

	// Minimum buffered blocks before a window may emit
	MinSamples = 10

	// Volume below which a block counts as silent
	SilenceThreshold = 0.05

	// Scale applied to pitch standard deviation
	PitchVarScale = 5.0

	// Weights for the stress blend
	StressPitchWeight     = 0.3
	StressVariationWeight = 0.4
	StressQuietWeight     = 0.3
)
