package transport

import "github.com/SivaBalaji-AR/final-year-project/internal/affect"

// Uplink message types.
type baseMessage struct {
	Type string `json:"type"`
}

type SessionInitMessage struct {
	Type        string `json:"type"`
	SessionID   string `json:"session_id"`
	Participant string `json:"participant"`
	Topic       string `json:"topic"`
}

type EmotionUpdateMessage struct {
	Type       string         `json:"type"`
	Anxiety    float64        `json:"anxiety"`
	Confidence float64        `json:"confidence"`
	Engagement float64        `json:"engagement"`
	Dominant   string         `json:"dominant"`
	Facial     *affect.Vector `json:"facial,omitempty"`
	Vocal      *affect.Vector `json:"vocal,omitempty"`
}

type SessionEndMessage struct {
	Type string `json:"type"`
}

// Downlink message types.
type TranscriptEvent struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Text    string `json:"text"`
	IsFinal bool   `json:"is_final"`
}

type statusMessage struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// AdaptationDecision mirrors the adaptation engine's output. It is
// consumed for display only; difficulty is one of easy, medium, hard.
type AdaptationDecision struct {
	Type       string `json:"type"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
	Difficulty string `json:"difficulty"`
	Tone       string `json:"tone"`
}
