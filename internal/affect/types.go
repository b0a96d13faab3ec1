// Package affect maps raw facial and vocal features to a three-channel
// emotional estimate and fuses the two modalities into one vector.
package affect

import "math"

// Vector is a normalized emotional estimate. Every channel is in [0,1]
// and rounded to two decimals; a Vector is immutable once created.
type Vector struct {
	Anxiety    float64 `json:"anxiety"`
	Confidence float64 `json:"confidence"`
	Engagement float64 `json:"engagement"`
}

// Expression is one raw sample from the facial classifier: seven
// channels in [0,1], approximately summing to 1. The upstream model
// guarantees the distribution; it is not re-normalized here.
type Expression struct {
	Angry     float64 `json:"angry"`
	Disgusted float64 `json:"disgusted"`
	Fearful   float64 `json:"fearful"`
	Happy     float64 `json:"happy"`
	Neutral   float64 `json:"neutral"`
	Sad       float64 `json:"sad"`
	Surprised float64 `json:"surprised"`
}

// Channels returns the sample as an ordered slice for shape-agnostic
// smoothing. Order matches FromChannels.
func (e Expression) Channels() []float64 {
	return []float64{e.Angry, e.Disgusted, e.Fearful, e.Happy, e.Neutral, e.Sad, e.Surprised}
}

// FromChannels rebuilds an Expression from an ordered channel slice.
func FromChannels(ch []float64) Expression {
	return Expression{
		Angry:     ch[0],
		Disgusted: ch[1],
		Fearful:   ch[2],
		Happy:     ch[3],
		Neutral:   ch[4],
		Sad:       ch[5],
		Surprised: ch[6],
	}
}

// VocalFeatures is one aggregated sample of vocal measurements, every
// field clamped to [0,1].
type VocalFeatures struct {
	Pitch          float64 `json:"pitch"`
	PitchVariation float64 `json:"pitch_variation"`
	Volume         float64 `json:"volume"`
	SpeakingRate   float64 `json:"speaking_rate"`
	Stress         float64 `json:"stress"`
}

// Neutral is the substitute vector for a missing modality.
func Neutral() Vector {
	return Vector{Anxiety: 0.5, Confidence: 0.5, Engagement: 0.5}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
