// Package audio handles microphone capture with backpressure
package audio

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gordonklaus/portaudio"

	apperrors "github.com/SivaBalaji-AR/final-year-project/internal/errors"
)

// Block is one fixed-size chunk of mono PCM from the microphone.
type Block struct {
	Samples []int16
	When    time.Time
}

// Capturer captures 16-bit mono audio from the default input device.
// Blocks are dropped rather than blocking the capture loop when the
// consumer lags.
type Capturer struct {
	outCh      chan Block
	sampleRate int
	blockSize  int

	mu      sync.Mutex
	stream  *portaudio.Stream
	cancel  context.CancelFunc
	running bool

	muted atomic.Bool
}

// NewCapturer creates a microphone capturer. Zero arguments fall back
// to the package defaults.
func NewCapturer(sampleRate, blockSize int) (*Capturer, error) {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	if blockSize <= 0 {
		blockSize = BlockSize
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &Capturer{
		outCh:      make(chan Block, ChannelBuffer),
		sampleRate: sampleRate,
		blockSize:  blockSize,
	}, nil
}

// Output returns the channel for receiving audio blocks.
func (c *Capturer) Output() <-chan Block { return c.outCh }

// Mute gates microphone output. Muted blocks are still read from the
// device and discarded so the stream keeps its clock.
func (c *Capturer) Mute(muted bool) { c.muted.Store(muted) }

// Muted reports whether the mic is currently gated.
func (c *Capturer) Muted() bool { return c.muted.Load() }

// Start opens the default input device and begins capture.
func (c *Capturer) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}

	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		return apperrors.Wrap(err, apperrors.MediaAccessDenied, "no input device")
	}

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   dev,
			Channels: 1,
			Latency:  dev.DefaultLowInputLatency,
		},
		SampleRate:      float64(c.sampleRate),
		FramesPerBuffer: c.blockSize,
	}

	buf := make([]int16, c.blockSize)
	stream, err := portaudio.OpenStream(params, buf)
	if err != nil {
		return apperrors.Wrap(err, apperrors.MediaAccessDenied, "open input stream")
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return apperrors.Wrap(err, apperrors.MediaAccessDenied, "start input stream")
	}

	capCtx, cancel := context.WithCancel(ctx)
	c.stream = stream
	c.cancel = cancel
	c.running = true
	slog.Info("started audio capture", "device", dev.Name, "sample_rate", c.sampleRate)

	go func() {
		for {
			select {
			case <-capCtx.Done():
				return
			default:
			}

			if err := stream.Read(); err != nil {
				slog.Debug("audio read error", "error", err)
				return
			}
			if c.muted.Load() {
				continue
			}

			block := Block{
				Samples: append([]int16(nil), buf...),
				When:    time.Now(),
			}
			select {
			case c.outCh <- block:
			default:
				slog.Debug("audio buffer full, dropping block")
			}
		}
	}()

	return nil
}

// Stop ends capture and releases the device.
func (c *Capturer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.cancel()
	_ = c.stream.Stop()
	_ = c.stream.Close()
	c.stream = nil
	c.running = false
	_ = portaudio.Terminate()
}
