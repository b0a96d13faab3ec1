// Package smooth provides temporal smoothing for noisy feature vectors:
// an exponential moving average to kill single-frame jitter, followed by
// a short sliding-window mean to soak up burst noise.
package smooth

// Smoother smooths fixed-width channel vectors. It is shape-agnostic:
// the channel count is fixed by the first sample. Not safe for
// concurrent use; each extractor owns its own instance.
type Smoother struct {
	alpha  float64
	window int
	prev   []float64
	recent [][]float64
}

// New creates a smoother with EMA factor alpha and a sliding window of
// the given length. Zero values fall back to the defaults.
func New(alpha float64, window int) *Smoother {
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Smoother{alpha: alpha, window: window}
}

// Apply folds a raw sample into the smoothing state and returns the
// window-averaged value to pass downstream. The first sample after
// creation or Reset passes through unchanged (cold start).
func (s *Smoother) Apply(raw []float64) []float64 {
	smoothed := make([]float64, len(raw))
	if s.prev == nil {
		copy(smoothed, raw)
	} else {
		for i, v := range raw {
			smoothed[i] = s.prev[i]*s.alpha + v*(1-s.alpha)
		}
	}
	s.prev = smoothed

	s.recent = append(s.recent, smoothed)
	if len(s.recent) > s.window {
		s.recent = s.recent[len(s.recent)-s.window:]
	}

	out := make([]float64, len(raw))
	for _, sample := range s.recent {
		for i, v := range sample {
			out[i] += v
		}
	}
	n := float64(len(s.recent))
	for i := range out {
		out[i] /= n
	}
	return out
}

// Last returns the most recent EMA-smoothed sample, or nil before the
// first Apply.
func (s *Smoother) Last() []float64 {
	if s.prev == nil {
		return nil
	}
	out := make([]float64, len(s.prev))
	copy(out, s.prev)
	return out
}

// Reset clears all state. Call on stream restart.
func (s *Smoother) Reset() {
	s.prev = nil
	s.recent = nil
}
