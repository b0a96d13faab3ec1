package transport

// State is the observable connection status. Transitions follow
// connecting -> initializing -> {listening <-> thinking <-> speaking}
// -> {disconnected | error}; the last two are terminal.
type State string

const (
	StateConnecting   State = "connecting"
	StateInitializing State = "initializing"
	StateListening    State = "listening"
	StateThinking     State = "thinking"
	StateSpeaking     State = "speaking"
	StateDisconnected State = "disconnected"
	StateError        State = "error"
)

// AllStates lists every state, for metrics labeling.
func AllStates() []string {
	return []string{
		string(StateConnecting), string(StateInitializing),
		string(StateListening), string(StateThinking), string(StateSpeaking),
		string(StateDisconnected), string(StateError),
	}
}

// Terminal reports whether the state ends the connection instance.
func (s State) Terminal() bool {
	return s == StateDisconnected || s == StateError
}

// canTransition validates a state machine edge.
func canTransition(from, to State) bool {
	if from.Terminal() {
		return false
	}
	if to.Terminal() {
		return true
	}
	switch from {
	case StateConnecting:
		return to == StateInitializing
	case StateInitializing:
		return to == StateListening || to == StateThinking || to == StateSpeaking
	case StateListening, StateThinking, StateSpeaking:
		return to == StateListening || to == StateThinking || to == StateSpeaking
	}
	return false
}

// stateFromStatus maps a server status string, ok=false for unknown.
func stateFromStatus(status string) (State, bool) {
	switch State(status) {
	case StateListening, StateThinking, StateSpeaking:
		return State(status), true
	}
	return "", false
}
