package session

import (
	"github.com/SivaBalaji-AR/final-year-project/internal/affect"
	"github.com/SivaBalaji-AR/final-year-project/internal/session/transcript"
	"github.com/SivaBalaji-AR/final-year-project/internal/transport"
)

// Event is one item on the session's live observer feed.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// EmotionEvent is the payload for fused emotion events.
type EmotionEvent struct {
	affect.Vector
	Dominant string `json:"dominant"`
}

// Snapshot is a point-in-time view of the session for the admin API.
type Snapshot struct {
	SessionID     string                        `json:"session_id"`
	Participant   string                        `json:"participant"`
	Topic         string                        `json:"topic"`
	State         string                        `json:"state"`
	Latest        *affect.HistoryPoint          `json:"latest,omitempty"`
	Dominant      string                        `json:"dominant,omitempty"`
	History       []affect.HistoryPoint         `json:"history"`
	Summary       affect.Summary                `json:"summary"`
	DetectionRate float64                       `json:"detection_rate"`
	Transcript    []transcript.Entry            `json:"transcript"`
	Adaptation    *transport.AdaptationDecision `json:"adaptation,omitempty"`
}
