package vision

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SivaBalaji-AR/final-year-project/internal/affect"
	"github.com/SivaBalaji-AR/final-year-project/internal/metrics"
	"github.com/SivaBalaji-AR/final-year-project/internal/smooth"
	"github.com/SivaBalaji-AR/final-year-project/internal/syncx"
)

// Classifier scores a single JPEG frame. found is false when no face is
// visible, which is a normal outcome rather than an error.
type Classifier interface {
	Detect(ctx context.Context, frame []byte) (affect.Expression, bool, error)
}

// FrameSource produces the current camera frame. changed is false when
// the frame is perceptually identical to the previous one.
type FrameSource interface {
	Frame(ctx context.Context) (data []byte, changed bool, err error)
}

// Sample is one smoothed expression reading.
type Sample struct {
	Expression affect.Expression
	When       time.Time
}

// Extractor polls the camera on a fixed period, classifies frames and
// emits smoothed expression samples. One instance per session.
type Extractor struct {
	cls      Classifier
	frames   FrameSource
	smoother *smooth.Smoother
	interval time.Duration

	detections atomic.Uint64
	misses     atomic.Uint64

	last *syncx.RWGuard[lastSample]

	samples  chan Sample
	firstErr sync.Once
}

type lastSample struct {
	expr affect.Expression
	ok   bool
}

// NewExtractor creates a visual extractor. A zero interval falls back
// to the default tick period.
func NewExtractor(cls Classifier, frames FrameSource, interval time.Duration) *Extractor {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Extractor{
		cls:      cls,
		frames:   frames,
		smoother: smooth.New(smooth.DefaultAlpha, smooth.DefaultWindow),
		interval: interval,
		last:     syncx.NewGuard(lastSample{}),
		samples:  make(chan Sample, SampleBuffer),
	}
}

// Samples returns the output channel. Closed when Run returns.
func (e *Extractor) Samples() <-chan Sample { return e.samples }

// DetectionRate returns detections / (detections + misses), or 0 before
// the first tick.
func (e *Extractor) DetectionRate() float64 {
	d := e.detections.Load()
	m := e.misses.Load()
	if d+m == 0 {
		return 0
	}
	return float64(d) / float64(d+m)
}

// Run drives the detection loop until ctx is done or stopCh closes.
// The classifier call runs inline, so a slow inference naturally skips
// ticks instead of overlapping.
func (e *Extractor) Run(ctx context.Context, stopCh <-chan struct{}) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	defer close(e.samples)

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

func (e *Extractor) tick(ctx context.Context) {
	frame, changed, err := e.frames.Frame(ctx)
	if err != nil {
		slog.Debug("Camera frame error", "error", err)
		return
	}
	if !changed || frame == nil {
		return
	}

	expr, found, err := e.cls.Detect(ctx, frame)
	if err != nil {
		e.firstErr.Do(func() {
			slog.Error("Expression classifier unavailable", "error", err)
		})
		slog.Debug("Detect error", "error", err)
		return
	}

	if !found {
		e.misses.Add(1)
		metrics.VisionMisses.Inc()
		if s, ok := e.decayed(); ok {
			e.emit(s)
		}
		return
	}

	e.detections.Add(1)
	metrics.VisionDetections.Inc()

	windowed := e.smoother.Apply(expr.Channels())
	e.last.Set(lastSample{expr: affect.FromChannels(e.smoother.Last()), ok: true})

	e.emit(affect.FromChannels(windowed))
}

// decayed nudges the last smoothed sample back toward neutrality and
// returns it. Repeated misses compound the decay.
func (e *Extractor) decayed() (affect.Expression, bool) {
	var out affect.Expression
	var ok bool
	e.last.Write(func(s *lastSample) {
		if !s.ok {
			return
		}
		s.expr.Neutral = min(1, s.expr.Neutral*NeutralDecayFactor)
		out, ok = s.expr, true
	})
	return out, ok
}

func (e *Extractor) emit(expr affect.Expression) {
	select {
	case e.samples <- Sample{Expression: expr, When: time.Now()}:
	default:
		slog.Debug("Vision sample dropped, consumer lagging")
	}
}
