package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/SivaBalaji-AR/final-year-project/internal/affect"
	"github.com/SivaBalaji-AR/final-year-project/internal/metrics"
)

// ErrClosed is returned by send methods after the connection ends.
var ErrClosed = errors.New("transport: connection closed")

type outFrame struct {
	binary  bool
	payload []byte
	msg     any
}

// Client is one duplex session connection. Terminal states are final
// for the instance; reconnecting means dialing a new Client.
type Client struct {
	conn   *websocket.Conn
	cancel context.CancelFunc

	sendCh      chan outFrame
	audioCh     chan []byte
	transcripts chan TranscriptEvent
	adaptations chan AdaptationDecision
	serverErrs  chan string
	states      chan State

	mu    sync.Mutex
	state State

	done      chan struct{}
	closeOnce sync.Once
}

// Dial connects, announces the session and starts the duplex pumps.
func Dial(ctx context.Context, url string, init SessionInitMessage) (*Client, error) {
	c := &Client{
		sendCh:      make(chan outFrame, SendQueueSize),
		audioCh:     make(chan []byte, AudioBuffer),
		transcripts: make(chan TranscriptEvent, EventBuffer),
		adaptations: make(chan AdaptationDecision, EventBuffer),
		serverErrs:  make(chan string, EventBuffer),
		states:      make(chan State, EventBuffer),
		state:       StateConnecting,
		done:        make(chan struct{}),
	}
	metrics.SetTransportState(string(StateConnecting), AllStates())

	dialCtx, cancel := context.WithTimeout(ctx, DialTimeout)
	defer cancel()
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	if err != nil {
		c.mu.Lock()
		c.state = StateError
		c.mu.Unlock()
		metrics.SetTransportState(string(StateError), AllStates())
		return nil, err
	}
	c.conn = conn

	runCtx, runCancel := context.WithCancel(context.Background())
	c.cancel = runCancel

	init.Type = "session_init"
	wctx, wcancel := context.WithTimeout(runCtx, WriteTimeout)
	err = wsjson.Write(wctx, conn, init)
	wcancel()
	if err != nil {
		runCancel()
		_ = conn.Close(websocket.StatusInternalError, "init failed")
		return nil, err
	}
	c.transition(StateInitializing)

	go c.readLoop(runCtx)
	go c.writeLoop(runCtx)
	return c, nil
}

// Audio returns raw downlink PCM chunks in arrival order.
func (c *Client) Audio() <-chan []byte { return c.audioCh }

// Transcripts returns decoded transcript events.
func (c *Client) Transcripts() <-chan TranscriptEvent { return c.transcripts }

// Adaptations returns adaptation decisions for display.
func (c *Client) Adaptations() <-chan AdaptationDecision { return c.adaptations }

// ServerErrors returns server-reported error messages.
func (c *Client) ServerErrors() <-chan string { return c.serverErrs }

// StateChanges returns state transitions as they happen.
func (c *Client) StateChanges() <-chan State { return c.states }

// Done closes when the connection reaches a terminal state.
func (c *Client) Done() <-chan struct{} { return c.done }

// CurrentState returns the connection state.
func (c *Client) CurrentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SendAudio queues one PCM block behind the 0x01 tag. Audio is never
// dropped; this blocks if the queue is full.
func (c *Client) SendAudio(pcm []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	frame := make([]byte, 1+len(pcm))
	frame[0] = TagAudio
	copy(frame[1:], pcm)
	select {
	case c.sendCh <- outFrame{binary: true, payload: frame}:
		metrics.FramesUplinked.WithLabelValues("audio").Inc()
		return nil
	case <-c.done:
		return ErrClosed
	}
}

// SendVideo queues one JPEG frame behind the 0x02 tag. Video is
// droppable: when the queue is full the frame is coalesced away.
func (c *Client) SendVideo(jpeg []byte) error {
	frame := make([]byte, 1+len(jpeg))
	frame[0] = TagVideo
	copy(frame[1:], jpeg)
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.sendCh <- outFrame{binary: true, payload: frame}:
		metrics.FramesUplinked.WithLabelValues("video").Inc()
	default:
		metrics.VideoFramesCoalesced.Inc()
		slog.Debug("send queue full, coalescing video frame")
	}
	return nil
}

// SendEmotion queues a fused emotion update on the control channel.
func (c *Client) SendEmotion(fused affect.Vector, dominant string, facial, vocal *affect.Vector) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	msg := EmotionUpdateMessage{
		Type:       "emotion_update",
		Anxiety:    fused.Anxiety,
		Confidence: fused.Confidence,
		Engagement: fused.Engagement,
		Dominant:   dominant,
		Facial:     facial,
		Vocal:      vocal,
	}
	select {
	case c.sendCh <- outFrame{msg: msg}:
		metrics.FramesUplinked.WithLabelValues("control").Inc()
		return nil
	case <-c.done:
		return ErrClosed
	}
}

// Close announces session end and tears the connection down. Safe to
// call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		wctx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
		_ = wsjson.Write(wctx, c.conn, SessionEndMessage{Type: "session_end"})
		cancel()
		c.terminate(StateDisconnected)
	})
}

// terminate moves to a terminal state and releases the connection.
func (c *Client) terminate(final State) {
	c.mu.Lock()
	already := c.state.Terminal()
	c.mu.Unlock()
	if !already {
		c.transition(final)
	}
	select {
	case <-c.done:
	default:
		close(c.done)
	}
	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (c *Client) fail(err error) {
	select {
	case <-c.done:
		return
	default:
	}
	if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
		c.terminate(StateDisconnected)
		return
	}
	slog.Error("transport error", "error", err)
	c.terminate(StateError)
}

func (c *Client) transition(to State) {
	c.mu.Lock()
	from := c.state
	if !canTransition(from, to) {
		c.mu.Unlock()
		slog.Warn("ignoring invalid state transition", "from", from, "to", to)
		return
	}
	c.state = to
	c.mu.Unlock()

	metrics.SetTransportState(string(to), AllStates())
	select {
	case c.states <- to:
	default:
	}
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		typ, data, err := c.conn.Read(ctx)
		if err != nil {
			c.fail(err)
			return
		}
		if typ == websocket.MessageBinary {
			select {
			case c.audioCh <- data:
			case <-ctx.Done():
				return
			}
			continue
		}
		c.dispatch(data)
	}
}

// dispatch decodes one JSON control frame. A malformed frame is logged
// and dropped; it never tears the connection down.
func (c *Client) dispatch(data []byte) {
	var base baseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		slog.Warn("malformed control frame", "error", err)
		return
	}

	switch base.Type {
	case "transcript":
		var ev TranscriptEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			slog.Warn("malformed transcript", "error", err)
			return
		}
		select {
		case c.transcripts <- ev:
		case <-c.done:
		}
	case "status":
		var msg statusMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("malformed status", "error", err)
			return
		}
		to, ok := stateFromStatus(msg.Status)
		if !ok {
			slog.Warn("unknown status value", "status", msg.Status)
			return
		}
		c.transition(to)
	case "error":
		var msg errorMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("malformed error message", "error", err)
			return
		}
		slog.Warn("server error", "message", msg.Message)
		select {
		case c.serverErrs <- msg.Message:
		default:
		}
	case "adaptation":
		var dec AdaptationDecision
		if err := json.Unmarshal(data, &dec); err != nil {
			slog.Warn("malformed adaptation decision", "error", err)
			return
		}
		select {
		case c.adaptations <- dec:
		case <-c.done:
		}
	default:
		slog.Debug("ignoring unknown control message", "type", base.Type)
	}
}

func (c *Client) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-c.sendCh:
			wctx, cancel := context.WithTimeout(ctx, WriteTimeout)
			var err error
			if f.binary {
				err = c.conn.Write(wctx, websocket.MessageBinary, f.payload)
			} else {
				err = wsjson.Write(wctx, c.conn, f.msg)
			}
			cancel()
			if err != nil {
				c.fail(err)
				return
			}
		}
	}
}
