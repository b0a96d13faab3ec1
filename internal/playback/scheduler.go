package playback

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SivaBalaji-AR/final-year-project/internal/metrics"
)

// Sink plays normalized mono samples at the scheduler's sample rate.
type Sink interface {
	Play(samples []float32) error
	Close() error
}

type chunk struct {
	samples []float32
	gen     uint64
}

// Scheduler queues PCM chunks and plays each exactly when the previous
// chunk's scheduled end elapses: startAt = max(now, nextPlayTime),
// nextPlayTime = startAt + duration. Chunks arriving in a burst play
// back-to-back with no inserted silence and no overlap.
type Scheduler struct {
	sink       Sink
	sampleRate int
	now        func() time.Time

	mu           sync.Mutex
	nextPlayTime time.Time

	gen       atomic.Uint64
	queue     chan chunk
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a scheduler playing through sink. A zero sampleRate
// falls back to the default.
func New(sink Sink, sampleRate int) *Scheduler {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	s := &Scheduler{
		sink:       sink,
		sampleRate: sampleRate,
		now:        time.Now,
		queue:      make(chan chunk, QueueSize),
		done:       make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Enqueue decodes a 16-bit little-endian PCM chunk and queues it for
// playback. Audio is never dropped; this blocks if the queue is full.
func (s *Scheduler) Enqueue(pcm []byte) {
	if len(pcm) < 2 {
		return
	}
	if len(pcm)%2 != 0 {
		slog.Warn("odd-length PCM chunk, dropping trailing byte")
		pcm = pcm[:len(pcm)-1]
	}
	samples := make([]float32, len(pcm)/2)
	for i := range samples {
		v := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		samples[i] = float32(v) / 32768.0
	}

	select {
	case s.queue <- chunk{samples: samples, gen: s.gen.Load()}:
		metrics.PlaybackQueueDepth.Inc()
	case <-s.done:
	}
}

// Cancel drops all pending chunks and resets the play cursor. Safe at
// any time; a queued-but-unstarted chunk never plays afterwards.
func (s *Scheduler) Cancel() {
	s.gen.Add(1)
	for {
		select {
		case <-s.queue:
			metrics.PlaybackQueueDepth.Dec()
		default:
			s.mu.Lock()
			s.nextPlayTime = time.Time{}
			s.mu.Unlock()
			return
		}
	}
}

// Close cancels pending playback and releases the device.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		s.Cancel()
		close(s.done)
		s.wg.Wait()
		if err := s.sink.Close(); err != nil {
			slog.Warn("playback sink close error", "error", err)
		}
	})
}

// schedule advances the cursor and returns the chunk's start time.
func (s *Scheduler) schedule(dur time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	startAt := s.now()
	if s.nextPlayTime.After(startAt) {
		startAt = s.nextPlayTime
	}
	s.nextPlayTime = startAt.Add(dur)
	return startAt
}

func (s *Scheduler) chunkDuration(n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(s.sampleRate)
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case ch := <-s.queue:
			metrics.PlaybackQueueDepth.Dec()
			if ch.gen != s.gen.Load() {
				continue
			}
			startAt := s.schedule(s.chunkDuration(len(ch.samples)))
			if wait := startAt.Sub(s.now()); wait > 0 {
				t := time.NewTimer(wait)
				select {
				case <-s.done:
					t.Stop()
					return
				case <-t.C:
				}
			}
			// Re-check after the wait so a cancel mid-gap wins
			if ch.gen != s.gen.Load() {
				continue
			}
			if err := s.sink.Play(ch.samples); err != nil {
				slog.Warn("playback error", "error", err)
			}
		}
	}
}
