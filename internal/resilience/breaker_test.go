package resilience

import (
	"testing"
	"time"
)

func TestBreakerInitialState(t *testing.T) {
	b := New("test", Config{})
	if b.State() != Closed {
		t.Errorf("initial state = %v, want Closed", b.State())
	}
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := New("test", Config{Threshold: 3, ResetTimeout: time.Hour, HalfOpenSuccesses: 2})

	for i := 0; i < 3; i++ {
		b.Failure()
	}

	if b.State() != Open {
		t.Errorf("state = %v, want Open", b.State())
	}
	if err := b.Allow(); err != ErrOpen {
		t.Errorf("Allow() = %v, want ErrOpen", err)
	}
}

func TestBreakerSuccessResetsFailures(t *testing.T) {
	b := New("test", Config{Threshold: 3, ResetTimeout: time.Hour, HalfOpenSuccesses: 2})

	b.Failure()
	b.Failure()
	b.Success()
	b.Failure()
	b.Failure()

	if b.State() != Closed {
		t.Errorf("state = %v, want Closed (failures not consecutive)", b.State())
	}
}

func TestBreakerHalfOpenThenCloses(t *testing.T) {
	b := New("test", Config{Threshold: 1, ResetTimeout: time.Millisecond, HalfOpenSuccesses: 2})
	b.Failure()

	time.Sleep(5 * time.Millisecond)

	if err := b.Allow(); err != nil {
		t.Fatalf("Allow() = %v, want nil after reset timeout", err)
	}
	if b.State() != HalfOpen {
		t.Fatalf("state = %v, want HalfOpen", b.State())
	}

	b.Success()
	b.Success()
	if b.State() != Closed {
		t.Errorf("state = %v, want Closed after half-open successes", b.State())
	}
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := New("test", Config{Threshold: 1, ResetTimeout: time.Millisecond, HalfOpenSuccesses: 2})
	b.Failure()

	time.Sleep(5 * time.Millisecond)
	_ = b.Allow() // transition to half-open

	b.Failure()
	if b.State() != Open {
		t.Errorf("state = %v, want Open after half-open failure", b.State())
	}
}
