//go:build darwin

package camera

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

type darwinBackend struct{ tempDir string }

func (d *darwinBackend) captureRaw() []byte {
	tmpFile := filepath.Join(d.tempDir, "frame.jpg")
	// -w: warmup so the sensor auto-exposes before the shot
	cmd := exec.Command("imagesnap", "-w", "0.5", tmpFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Error("imagesnap failed", "error", err, "stderr", stderr.String())
		return nil
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		slog.Error("failed to read camera frame", "error", err)
		return nil
	}
	os.Remove(tmpFile)
	return data
}

func (d *darwinBackend) cleanup() {}

// New creates a platform-specific webcam capturer
func New() Camera {
	tmpDir, err := os.MkdirTemp("", "affect-camera-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&darwinBackend{tempDir: tmpDir}, tmpDir)
}
