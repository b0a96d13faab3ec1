package playback

import (
	"math"
	"sync/atomic"
	"testing"
	"time"
)

type recordSink struct{ ch chan []float32 }

func (r *recordSink) Play(s []float32) error { r.ch <- s; return nil }
func (r *recordSink) Close() error           { return nil }

func TestSchedulingLaw(t *testing.T) {
	t0 := time.Now()
	cur := t0
	s := &Scheduler{sampleRate: 16000, now: func() time.Time { return cur }}

	d := s.chunkDuration(16000) // one second of samples
	if d != time.Second {
		t.Fatalf("chunkDuration = %v, want 1s", d)
	}

	// Burst arrival: second chunk starts exactly at the first's end
	a1 := s.schedule(d)
	a2 := s.schedule(d)
	if !a1.Equal(t0) {
		t.Errorf("first chunk startAt = %v, want now", a1)
	}
	if !a2.Equal(a1.Add(d)) {
		t.Errorf("second chunk startAt = %v, want %v (gapless)", a2, a1.Add(d))
	}

	// Late arrival after the queue drained: starts immediately
	cur = t0.Add(5 * time.Second)
	a3 := s.schedule(d)
	if !a3.Equal(cur) {
		t.Errorf("idle-queue startAt = %v, want now", a3)
	}
	if a3.Before(a2.Add(d)) {
		t.Error("chunks must never overlap")
	}
}

func TestEnqueueDecodesPCM16LE(t *testing.T) {
	sink := &recordSink{ch: make(chan []float32, 1)}
	s := New(sink, 16000)
	defer s.Close()

	// 16384 and -32768 little-endian
	s.Enqueue([]byte{0x00, 0x40, 0x00, 0x80})

	select {
	case samples := <-sink.ch:
		if len(samples) != 2 {
			t.Fatalf("got %d samples, want 2", len(samples))
		}
		if math.Abs(float64(samples[0])-0.5) > 1e-6 {
			t.Errorf("samples[0] = %v, want 0.5", samples[0])
		}
		if samples[1] != -1.0 {
			t.Errorf("samples[1] = %v, want -1.0", samples[1])
		}
	case <-time.After(3 * time.Second):
		t.Fatal("chunk never played")
	}
}

type gateSink struct {
	started chan struct{}
	release chan struct{}
	played  atomic.Int32
}

func (g *gateSink) Play(_ []float32) error {
	g.started <- struct{}{}
	<-g.release
	g.played.Add(1)
	return nil
}
func (g *gateSink) Close() error { return nil }

func TestCancelDropsPendingChunks(t *testing.T) {
	sink := &gateSink{started: make(chan struct{}), release: make(chan struct{})}
	s := New(sink, 16000)
	defer s.Close()

	pcm := make([]byte, 32)
	s.Enqueue(pcm)
	<-sink.started // first chunk is mid-play
	s.Enqueue(pcm)
	s.Enqueue(pcm)

	s.Cancel()
	close(sink.release)

	// Queued-but-unstarted chunks must never play after cancel
	time.Sleep(50 * time.Millisecond)
	if n := sink.played.Load(); n != 1 {
		t.Errorf("%d chunks played, want only the in-flight one", n)
	}

	s.mu.Lock()
	reset := s.nextPlayTime.IsZero()
	s.mu.Unlock()
	if !reset {
		t.Error("Cancel must reset the play cursor")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	sink := &recordSink{ch: make(chan []float32, 1)}
	s := New(sink, 16000)
	s.Close()
	s.Close()
}
