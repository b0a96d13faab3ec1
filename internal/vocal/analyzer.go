package vocal

import (
	"math"

	"github.com/SivaBalaji-AR/final-year-project/internal/affect"
)

// Analyzer accumulates per-block pitch and volume measurements and
// emits one aggregated feature sample per window. Not safe for
// concurrent use; each session owns its own instance.
type Analyzer struct {
	blocks  int
	pitches []float64
	volumes []float64
}

// NewAnalyzer creates an empty vocal analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Process folds one capture block into the rolling state. Every
// WindowBlocks blocks, once the buffers hold at least MinSamples
// entries, it emits an aggregated sample and returns ok=true.
func (a *Analyzer) Process(block []int16) (affect.VocalFeatures, bool) {
	if len(block) == 0 {
		return affect.VocalFeatures{}, false
	}

	samples := make([]float64, len(block))
	var sumSq float64
	for i, s := range block {
		v := float64(s) / 32768.0
		samples[i] = v
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / float64(len(samples)))
	volume := clamp01(rms * VolumeGain)
	pitch := pitchOf(samples)

	a.pitches = appendBounded(a.pitches, pitch)
	a.volumes = appendBounded(a.volumes, volume)
	a.blocks++

	if a.blocks%WindowBlocks != 0 || len(a.pitches) < MinSamples {
		return affect.VocalFeatures{}, false
	}
	return a.aggregate(), true
}

// Reset clears all rolling state. Call on stream restart.
func (a *Analyzer) Reset() {
	a.blocks = 0
	a.pitches = nil
	a.volumes = nil
}

func (a *Analyzer) aggregate() affect.VocalFeatures {
	avgPitch := mean(a.pitches)
	avgVolume := mean(a.volumes)
	pitchVar := math.Min(1, math.Sqrt(variance(a.pitches))*PitchVarScale)

	silent := 0
	for _, v := range a.volumes {
		if v < SilenceThreshold {
			silent++
		}
	}
	speakingRate := 1 - float64(silent)/float64(len(a.volumes))

	stress := StressPitchWeight*avgPitch +
		StressVariationWeight*pitchVar +
		StressQuietWeight*(1-avgVolume)

	return affect.VocalFeatures{
		Pitch:          round2(clamp01(avgPitch)),
		PitchVariation: round2(clamp01(pitchVar)),
		Volume:         round2(clamp01(avgVolume)),
		SpeakingRate:   round2(clamp01(speakingRate)),
		Stress:         round2(clamp01(stress)),
	}
}

// pitchOf estimates pitch as the normalized index of the strongest
// spectral bin. Coarse, but stable enough for trend features.
func pitchOf(samples []float64) float64 {
	n := largestPowerOfTwo(len(samples))
	if n < 4 {
		return 0
	}
	return float64(strongestBin(samples)) / float64(n/2)
}

func appendBounded(buf []float64, v float64) []float64 {
	buf = append(buf, v)
	if len(buf) > BufferBlocks {
		buf = buf[len(buf)-BufferBlocks:]
	}
	return buf
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
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
