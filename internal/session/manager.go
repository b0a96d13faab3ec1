package session

import (
	"context"
	"encoding/binary"
	"log/slog"
	"sync"
	"time"

	"github.com/SivaBalaji-AR/final-year-project/internal/affect"
	"github.com/SivaBalaji-AR/final-year-project/internal/audio"
	"github.com/SivaBalaji-AR/final-year-project/internal/camera"
	"github.com/SivaBalaji-AR/final-year-project/internal/metrics"
	"github.com/SivaBalaji-AR/final-year-project/internal/session/transcript"
	"github.com/SivaBalaji-AR/final-year-project/internal/transport"
	"github.com/SivaBalaji-AR/final-year-project/internal/vision"
	"github.com/SivaBalaji-AR/final-year-project/internal/vocal"
)

// Link is the duplex transport surface the session drives.
type Link interface {
	SendAudio(pcm []byte) error
	SendVideo(jpeg []byte) error
	SendEmotion(fused affect.Vector, dominant string, facial, vocal *affect.Vector) error
	Audio() <-chan []byte
	Transcripts() <-chan transport.TranscriptEvent
	Adaptations() <-chan transport.AdaptationDecision
	ServerErrors() <-chan string
	StateChanges() <-chan transport.State
	CurrentState() transport.State
	Done() <-chan struct{}
	Close()
}

// Player queues synthesized speech for gapless playback.
type Player interface {
	Enqueue(pcm []byte)
	Cancel()
	Close()
}

// Mic produces capture blocks and supports half-duplex gating.
type Mic interface {
	Start(ctx context.Context) error
	Output() <-chan audio.Block
	Mute(muted bool)
	Stop()
}

// Visual runs the expression extraction loop.
type Visual interface {
	Run(ctx context.Context, stopCh <-chan struct{})
	Samples() <-chan vision.Sample
	DetectionRate() float64
}

// Config identifies the session and sets its cadences.
type Config struct {
	ID              string
	Participant     string
	Topic           string
	VideoInterval   time.Duration
	EmotionInterval time.Duration
}

// Manager owns all per-session instances. Sessions never share state,
// so several can run concurrently without cross-talk.
type Manager struct {
	cfg      Config
	link     Link
	mic      Mic
	cam      camera.Camera
	visual   Visual
	player   Player
	fusion   *affect.Engine
	analyzer *vocal.Analyzer
	store    *transcript.Store

	mu             sync.RWMutex
	lastFacial     *affect.Vector
	lastVocal      *affect.Vector
	lastAdaptation *transport.AdaptationDecision
	lastEmit       time.Time

	events   chan Event
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New wires a session from its parts. Zero cadences fall back to the
// package defaults.
func New(cfg Config, link Link, mic Mic, cam camera.Camera, visual Visual, player Player) *Manager {
	if cfg.VideoInterval <= 0 {
		cfg.VideoInterval = DefaultVideoInterval
	}
	if cfg.EmotionInterval <= 0 {
		cfg.EmotionInterval = DefaultEmotionInterval
	}
	return &Manager{
		cfg:      cfg,
		link:     link,
		mic:      mic,
		cam:      cam,
		visual:   visual,
		player:   player,
		fusion:   affect.NewEngine(),
		analyzer: vocal.NewAnalyzer(),
		store:    transcript.NewStore(TranscriptMaxEntries, TranscriptEventBuffer),
		events:   make(chan Event, EventBuffer),
		stopCh:   make(chan struct{}),
	}
}

// Events returns the live observer feed.
func (m *Manager) Events() <-chan Event { return m.events }

// TranscriptEvents returns the live transcript feed.
func (m *Manager) TranscriptEvents() <-chan transcript.Entry { return m.store.Events() }

// Start launches the session loops. A mic failure disables the vocal
// modality only; the rest of the session continues.
func (m *Manager) Start(ctx context.Context) error {
	micOK := true
	if err := m.mic.Start(ctx); err != nil {
		slog.Warn("mic unavailable, vocal modality disabled", "error", err)
		micOK = false
	}

	go m.visual.Run(ctx, m.stopCh)

	if micOK {
		m.wg.Add(1)
		go m.micLoop(ctx)
	}
	m.wg.Add(3)
	go m.visionLoop(ctx)
	go m.videoLoop(ctx)
	go m.downlinkLoop(ctx)
	return nil
}

// Stop tears the session down in order: audio capture, video capture,
// playback, transport. Idempotent.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		m.mic.Stop()
		m.cam.Close()
		m.player.Cancel()
		m.player.Close()
		m.link.Close()
	})
	m.wg.Wait()
}

func (m *Manager) micLoop(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case block := <-m.mic.Output():
			if err := m.link.SendAudio(pcmBytes(block.Samples)); err != nil {
				continue
			}
			if features, ok := m.analyzer.Process(block.Samples); ok {
				v := affect.FromVocal(features)
				m.mu.Lock()
				m.lastVocal = &v
				m.mu.Unlock()
				m.fuseAndEmit()
			}
		}
	}
}

func (m *Manager) visionLoop(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case s, ok := <-m.visual.Samples():
			if !ok {
				return
			}
			v := affect.FromExpression(s.Expression)
			m.mu.Lock()
			m.lastFacial = &v
			m.mu.Unlock()
			m.fuseAndEmit()
		}
	}
}

func (m *Manager) videoLoop(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.cfg.VideoInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			frame, changed, err := m.cam.Frame(ctx)
			if err != nil {
				slog.Debug("camera frame error", "error", err)
				continue
			}
			if !changed {
				metrics.VideoFramesCoalesced.Inc()
				continue
			}
			_ = m.link.SendVideo(frame)
		}
	}
}

func (m *Manager) downlinkLoop(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-m.link.Done():
			go m.Stop()
			return
		case pcm := <-m.link.Audio():
			m.player.Enqueue(pcm)
		case ev := <-m.link.Transcripts():
			m.store.Add(ev.Role, ev.Text)
			m.store.Emit(transcript.Entry{Timestamp: time.Now(), Role: ev.Role, Text: ev.Text})
		case dec := <-m.link.Adaptations():
			m.mu.Lock()
			m.lastAdaptation = &dec
			m.mu.Unlock()
			m.emit(Event{Type: "adaptation", Data: dec})
		case msg := <-m.link.ServerErrors():
			m.emit(Event{Type: "server_error", Data: msg})
		case st := <-m.link.StateChanges():
			// Half-duplex: gate the mic while agent speech plays
			m.mic.Mute(st == transport.StateSpeaking)
			m.emit(Event{Type: "status", Data: string(st)})
			if st.Terminal() {
				go m.Stop()
				return
			}
		}
	}
}

// fuseAndEmit runs fusion on the latest modality vectors and, rate
// limited, pushes an emotion_update on the control channel.
func (m *Manager) fuseAndEmit() {
	m.mu.RLock()
	facial, vocalVec := m.lastFacial, m.lastVocal
	m.mu.RUnlock()

	fused, ok := m.fusion.Fuse(facial, vocalVec)
	if !ok {
		return
	}
	metrics.FusionsTotal.Inc()

	m.mu.Lock()
	due := time.Since(m.lastEmit) >= m.cfg.EmotionInterval
	if due {
		m.lastEmit = time.Now()
	}
	m.mu.Unlock()
	if !due {
		return
	}

	dominant := affect.Dominant(fused)
	if err := m.link.SendEmotion(fused, dominant, facial, vocalVec); err == nil {
		m.emit(Event{Type: "emotion", Data: EmotionEvent{Vector: fused, Dominant: dominant}})
	}
}

// Snapshot returns a point-in-time view for the admin API.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:     m.cfg.ID,
		Participant:   m.cfg.Participant,
		Topic:         m.cfg.Topic,
		State:         string(m.link.CurrentState()),
		History:       m.fusion.History(),
		Summary:       m.fusion.Summarize(),
		DetectionRate: m.visual.DetectionRate(),
		Transcript:    m.store.Recent(TranscriptTail),
	}
	if latest, ok := m.fusion.Latest(); ok {
		snap.Latest = &latest
		snap.Dominant = affect.Dominant(affect.Vector{
			Anxiety:    latest.Anxiety,
			Confidence: latest.Confidence,
			Engagement: latest.Engagement,
		})
	}
	m.mu.RLock()
	snap.Adaptation = m.lastAdaptation
	m.mu.RUnlock()
	return snap
}

func (m *Manager) emit(e Event) {
	select {
	case m.events <- e:
	default:
	}
}

func pcmBytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}
