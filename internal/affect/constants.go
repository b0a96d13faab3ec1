package affect

// Mapping weights. These are product-tuned values; changing any of them
// changes observed behavior and requires re-validation against the
// recorded interview sessions.
const (
	// Visual anxiety
	VisAnxietyFearful   = 2.0
	VisAnxietySad       = 1.2
	VisAnxietyAngry     = 0.5
	VisAnxietyDisgusted = 0.3

	// Visual confidence
	VisConfidenceHappy      = 1.5
	VisConfidenceNeutral    = 0.4
	VisConfidenceSurprised  = 0.3
	VisConfidenceCalm       = 0.3 // applied to (1 - anxiety)

	// Visual engagement
	VisEngagementNonNeutral = 0.4
	VisEngagementHappy      = 0.4
	VisEngagementSurprised  = 0.3
	VisEngagementTension    = 0.1 // applied to |angry + disgusted|

	// Vocal anxiety
	VocAnxietyPitchVar = 0.4
	VocAnxietyQuiet    = 0.3 // applied to (1 - volume)
	VocAnxietyStress   = 0.3

	// Vocal confidence
	VocConfidenceSteady   = 0.3 // applied to (1 - pitchVariation)
	VocConfidenceVolume   = 0.4
	VocConfidenceSpeaking = 0.3

	// Vocal engagement
	VocEngagementSpeaking = 0.5
	VocEngagementVolume   = 0.3
	VocEngagementPitchVar = 0.2
)

// Fusion weights per channel: fused = AudioWeight*vocal + VisualWeight*facial.
const (
	AudioWeight  = 0.6
	VisualWeight = 0.4
)

// HistoryCap bounds the fused-emotion timeline; oldest points are
// evicted first.
const HistoryCap = 200

// Dominant-state thresholds.
const (
	DominantHigh = 0.7
	DominantLow  = 0.3
)
