package camera

import (
	"bytes"
	"context"
	"crypto/md5"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder
	"os"
	"sync"

	"github.com/corona10/goimagehash"
	"github.com/nfnt/resize"
)

// ErrNoFrame is returned when the platform tool produced no image.
var ErrNoFrame = errors.New("camera: no frame captured")

// Camera captures webcam frames with change detection. Frames are
// downscaled and re-encoded for the uplink wire format.
type Camera interface {
	// Frame returns the current frame as JPEG bytes. changed is false
	// when the frame is perceptually identical to the last changed one;
	// the previous encoded frame is returned in that case.
	Frame(ctx context.Context) (data []byte, changed bool, err error)
	Close()
}

// backend implements platform-specific raw capture
type backend interface {
	captureRaw() []byte
	cleanup()
}

// baseCamera provides shared change detection and frame processing
type baseCamera struct {
	backend
	tempDir string

	mu        sync.Mutex
	lastQuick [16]byte
	lastHash  *goimagehash.ImageHash
	lastFrame []byte
}

func newBase(b backend, tempDir string) *baseCamera {
	return &baseCamera{backend: b, tempDir: tempDir}
}

func (c *baseCamera) Frame(_ context.Context) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw := c.captureRaw()
	if raw == nil {
		return nil, false, ErrNoFrame
	}

	// Cheap byte-level check before decoding
	quick := md5.Sum(raw[:min(len(raw), QuickHashBytes)])
	if quick == c.lastQuick && c.lastFrame != nil {
		return c.lastFrame, false, nil
	}
	c.lastQuick = quick

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false, err
	}
	if img.Bounds().Dx() > MaxFrameWidth {
		img = resize.Resize(MaxFrameWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, false, err
	}
	frame := buf.Bytes()

	hash, err := goimagehash.PerceptionHash(img)
	if err == nil && c.lastHash != nil {
		if dist, derr := hash.Distance(c.lastHash); derr == nil && dist <= HammingThreshold {
			return frame, false, nil
		}
	}
	if err == nil {
		c.lastHash = hash
	}
	c.lastFrame = frame
	return frame, true, nil
}

func (c *baseCamera) Close() {
	c.cleanup()
	if c.tempDir != "" {
		os.RemoveAll(c.tempDir)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
