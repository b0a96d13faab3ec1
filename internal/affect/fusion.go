package affect

import (
	"sync"
	"time"
)

// HistoryPoint is one fused vector on the session timeline.
type HistoryPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Anxiety    float64   `json:"anxiety"`
	Confidence float64   `json:"confidence"`
	Engagement float64   `json:"engagement"`
}

// Summary aggregates the recorded timeline for display.
type Summary struct {
	Points        int            `json:"points"`
	AvgAnxiety    float64        `json:"avg_anxiety"`
	AvgConfidence float64        `json:"avg_confidence"`
	AvgEngagement float64        `json:"avg_engagement"`
	DominantTally map[string]int `json:"dominant_tally"`
}

// Engine fuses per-modality vectors with fixed weights and keeps a
// bounded timeline of the results. One Engine per session; the history
// is owned exclusively by the Engine and read via snapshot.
type Engine struct {
	mu      sync.RWMutex
	history []HistoryPoint
	cap     int
	now     func() time.Time
}

// NewEngine creates a fusion engine with the default history bound.
func NewEngine() *Engine {
	return &Engine{cap: HistoryCap, now: time.Now}
}

// Fuse combines the two modality vectors. A missing modality is
// substituted with the neutral default; when both are missing no fusion
// occurs and ok is false (nothing is appended to the history).
func (e *Engine) Fuse(facial, vocal *Vector) (Vector, bool) {
	if facial == nil && vocal == nil {
		return Vector{}, false
	}

	f := Neutral()
	if facial != nil {
		f = *facial
	}
	v := Neutral()
	if vocal != nil {
		v = *vocal
	}

	fused := Vector{
		Anxiety:    round2(AudioWeight*v.Anxiety + VisualWeight*f.Anxiety),
		Confidence: round2(AudioWeight*v.Confidence + VisualWeight*f.Confidence),
		Engagement: round2(AudioWeight*v.Engagement + VisualWeight*f.Engagement),
	}

	e.mu.Lock()
	e.history = append(e.history, HistoryPoint{
		Timestamp:  e.now(),
		Anxiety:    fused.Anxiety,
		Confidence: fused.Confidence,
		Engagement: fused.Engagement,
	})
	if len(e.history) > e.cap {
		e.history = e.history[len(e.history)-e.cap:]
	}
	e.mu.Unlock()

	return fused, true
}

// Dominant classifies the vector into a single label for logging and
// display. Rules are checked in order; the first match wins.
func Dominant(v Vector) string {
	switch {
	case v.Anxiety > DominantHigh:
		return "anxious"
	case v.Confidence > DominantHigh:
		return "confident"
	case v.Engagement > DominantHigh:
		return "engaged"
	case v.Engagement < DominantLow:
		return "disengaged"
	default:
		return "neutral"
	}
}

// History returns a copy of the recorded timeline, oldest first.
func (e *Engine) History() []HistoryPoint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]HistoryPoint, len(e.history))
	copy(out, e.history)
	return out
}

// Latest returns the most recent fused point, if any.
func (e *Engine) Latest() (HistoryPoint, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.history) == 0 {
		return HistoryPoint{}, false
	}
	return e.history[len(e.history)-1], true
}

// Summarize aggregates the timeline: channel averages plus a tally of
// dominant labels.
func (e *Engine) Summarize() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := Summary{DominantTally: make(map[string]int)}
	if len(e.history) == 0 {
		return s
	}

	var a, c, g float64
	for _, p := range e.history {
		a += p.Anxiety
		c += p.Confidence
		g += p.Engagement
		s.DominantTally[Dominant(Vector{Anxiety: p.Anxiety, Confidence: p.Confidence, Engagement: p.Engagement})]++
	}
	n := float64(len(e.history))
	s.Points = len(e.history)
	s.AvgAnxiety = round2(a / n)
	s.AvgConfidence = round2(c / n)
	s.AvgEngagement = round2(g / n)
	return s
}
