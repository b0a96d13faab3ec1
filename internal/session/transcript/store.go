// Package transcript handles bounded in-memory transcript storage
package transcript

import (
	"sync"
	"time"
)

// Entry is one stored transcript line.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
}

// Store implements bounded in-memory transcript storage with a
// non-blocking event feed for live observers.
type Store struct {
	mu       sync.RWMutex
	entries  []Entry
	maxSize  int
	eventsCh chan Entry
}

// NewStore creates a transcript store holding at most maxEntries lines.
func NewStore(maxEntries, eventBuffer int) *Store {
	return &Store{
		entries:  make([]Entry, 0, maxEntries),
		maxSize:  maxEntries,
		eventsCh: make(chan Entry, eventBuffer),
	}
}

// Add stores a transcript line, evicting the oldest beyond the cap.
func (s *Store) Add(role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{
		Timestamp: time.Now(),
		Role:      role,
		Text:      text,
	})
	if len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
}

// Recent returns up to n newest entries, oldest first.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}

// Events returns the channel for live transcript events.
func (s *Store) Events() <-chan Entry {
	return s.eventsCh
}

// Emit sends a transcript event (non-blocking).
func (s *Store) Emit(e Entry) {
	select {
	case s.eventsCh <- e:
	default:
	}
}
