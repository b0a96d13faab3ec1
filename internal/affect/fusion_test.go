package affect

import (
	"math"
	"testing"
	"time"
)

func TestFuseBothModalities(t *testing.T) {
	e := NewEngine()
	facial := Vector{Anxiety: 0.2, Confidence: 0.8, Engagement: 0.6}
	vocal := Vector{Anxiety: 0.7, Confidence: 0.3, Engagement: 0.1}

	fused, ok := e.Fuse(&facial, &vocal)
	if !ok {
		t.Fatal("Fuse returned ok=false with both modalities present")
	}

	want := Vector{
		Anxiety:    0.6*0.7 + 0.4*0.2,
		Confidence: 0.6*0.3 + 0.4*0.8,
		Engagement: 0.6*0.1 + 0.4*0.6,
	}
	if math.Abs(fused.Anxiety-want.Anxiety) > 0.005 ||
		math.Abs(fused.Confidence-want.Confidence) > 0.005 ||
		math.Abs(fused.Engagement-want.Engagement) > 0.005 {
		t.Errorf("fused = %+v, want %+v", fused, want)
	}
}

func TestFuseMissingModalitySubstitutesNeutral(t *testing.T) {
	e := NewEngine()
	vocal := Vector{Anxiety: 0.9, Confidence: 0.1, Engagement: 0.5}

	fused, ok := e.Fuse(nil, &vocal)
	if !ok {
		t.Fatal("Fuse returned ok=false with one modality present")
	}

	// fused.c = 0.6*vocal.c + 0.4*0.5
	if math.Abs(fused.Anxiety-(0.6*0.9+0.4*0.5)) > 0.005 {
		t.Errorf("Anxiety = %v, want %v", fused.Anxiety, 0.6*0.9+0.4*0.5)
	}
	if math.Abs(fused.Confidence-(0.6*0.1+0.4*0.5)) > 0.005 {
		t.Errorf("Confidence = %v, want %v", fused.Confidence, 0.6*0.1+0.4*0.5)
	}
}

func TestFuseBothMissingIsNoOp(t *testing.T) {
	e := NewEngine()
	if _, ok := e.Fuse(nil, nil); ok {
		t.Error("Fuse(nil, nil) should not fuse")
	}
	if len(e.History()) != 0 {
		t.Error("no-op fusion must not append a history point")
	}
}

func TestHistoryBound(t *testing.T) {
	e := NewEngine()
	e.cap = 5
	v := Neutral()

	for i := 0; i < 12; i++ {
		e.now = func() time.Time { return time.Unix(int64(i), 0) }
		e.Fuse(&v, &v)
	}

	h := e.History()
	if len(h) != 5 {
		t.Fatalf("history length = %d, want 5", len(h))
	}
	// Oldest evicted first: the survivors are the last five appends.
	if h[0].Timestamp.Unix() != 7 {
		t.Errorf("oldest surviving timestamp = %d, want 7", h[0].Timestamp.Unix())
	}
	for i := 1; i < len(h); i++ {
		if h[i].Timestamp.Before(h[i-1].Timestamp) {
			t.Error("history timestamps not monotonic")
		}
	}
}

func TestDominantFirstRuleWins(t *testing.T) {
	cases := []struct {
		v    Vector
		want string
	}{
		{Vector{Anxiety: 0.8, Confidence: 0.2, Engagement: 0.5}, "anxious"},
		{Vector{Anxiety: 0.8, Confidence: 0.9, Engagement: 0.9}, "anxious"},
		{Vector{Anxiety: 0.3, Confidence: 0.75, Engagement: 0.2}, "confident"},
		{Vector{Anxiety: 0.3, Confidence: 0.5, Engagement: 0.8}, "engaged"},
		{Vector{Anxiety: 0.3, Confidence: 0.5, Engagement: 0.2}, "disengaged"},
		{Vector{Anxiety: 0.5, Confidence: 0.5, Engagement: 0.5}, "neutral"},
		{Vector{Anxiety: 0.7, Confidence: 0.7, Engagement: 0.7}, "neutral"}, // thresholds are strict
	}
	for _, c := range cases {
		if got := Dominant(c.v); got != c.want {
			t.Errorf("Dominant(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	e := NewEngine()
	anxious := Vector{Anxiety: 1, Confidence: 0, Engagement: 0.5}
	calm := Vector{Anxiety: 0, Confidence: 1, Engagement: 0.5}
	e.Fuse(&anxious, &anxious)
	e.Fuse(&calm, &calm)

	s := e.Summarize()
	if s.Points != 2 {
		t.Fatalf("Points = %d, want 2", s.Points)
	}
	if s.AvgAnxiety != 0.5 || s.AvgConfidence != 0.5 {
		t.Errorf("averages = %v/%v, want 0.5/0.5", s.AvgAnxiety, s.AvgConfidence)
	}
	if s.DominantTally["anxious"] != 1 || s.DominantTally["confident"] != 1 {
		t.Errorf("unexpected tally: %v", s.DominantTally)
	}
}
