package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/SivaBalaji-AR/final-year-project/internal/session"
	"github.com/SivaBalaji-AR/final-year-project/internal/session/transcript"
)

type fakeSession struct {
	events chan session.Event
	trans  chan transcript.Entry
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		events: make(chan session.Event, 8),
		trans:  make(chan transcript.Entry, 8),
	}
}

func (f *fakeSession) Snapshot() session.Snapshot {
	return session.Snapshot{SessionID: "s1", State: "listening"}
}
func (f *fakeSession) Events() <-chan session.Event              { return f.events }
func (f *fakeSession) TranscriptEvents() <-chan transcript.Entry { return f.trans }

func TestRateLimiter(t *testing.T) {
	rl := &rateLimiter{}

	for i := 0; i < RateLimitMessages; i++ {
		if !rl.allow() {
			t.Fatalf("message %d should be allowed", i+1)
		}
	}
	if rl.allow() {
		t.Error("message beyond the limit should be denied")
	}

	// Expire the window
	rl.mu.Lock()
	for i := range rl.timestamps {
		rl.timestamps[i] = rl.timestamps[i].Add(-2 * RateLimitWindow)
	}
	rl.mu.Unlock()

	if !rl.allow() {
		t.Error("message after the window should be allowed")
	}
}

func TestHealthAndCORS(t *testing.T) {
	srv := httptest.NewServer(New(newFakeSession()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q, want *", got)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestSessionEndpoint(t *testing.T) {
	srv := httptest.NewServer(New(newFakeSession()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/session")
	if err != nil {
		t.Fatalf("GET /api/session: %v", err)
	}
	defer resp.Body.Close()

	var snap session.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.SessionID != "s1" || snap.State != "listening" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httptest.NewServer(New(newFakeSession()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestWebSocketBroadcast(t *testing.T) {
	sess := newFakeSession()
	s := New(sess)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Wait for registration before broadcasting
	deadline := time.Now().Add(3 * time.Second)
	for {
		s.mu.RLock()
		n := len(s.conns)
		s.mu.RUnlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("connection never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	sess.events <- session.Event{Type: "status", Data: "listening"}

	var evt session.Event
	if err := wsjson.Read(ctx, conn, &evt); err != nil {
		t.Fatalf("read: %v", err)
	}
	if evt.Type != "status" {
		t.Errorf("event type = %q, want status", evt.Type)
	}

	sess.trans <- transcript.Entry{Role: "user", Text: "hi"}
	if err := wsjson.Read(ctx, conn, &evt); err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if evt.Type != "transcript" {
		t.Errorf("event type = %q, want transcript", evt.Type)
	}
}

func TestWebSocketPing(t *testing.T) {
	s := New(newFakeSession())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := wsjson.Write(ctx, conn, map[string]string{"type": "ping"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var reply pongMessage
	if err := wsjson.Read(ctx, conn, &reply); err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Type != "pong" {
		t.Errorf("reply type = %q, want pong", reply.Type)
	}
}
