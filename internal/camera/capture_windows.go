//go:build windows

package camera

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

type windowsBackend struct{ tempDir string }

func (w *windowsBackend) captureRaw() []byte {
	tmpFile := filepath.Join(w.tempDir, "frame.jpg")
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		slog.Error("ffmpeg not found, webcam capture unavailable")
		return nil
	}
	cmd := exec.Command("ffmpeg", "-f", "vfwcap", "-i", "0",
		"-frames:v", "1", "-y", tmpFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Error("webcam capture failed", "error", err, "stderr", stderr.String())
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

func (w *windowsBackend) cleanup() {}

// New creates a platform-specific webcam capturer
func New() Camera {
	tmpDir, err := os.MkdirTemp("", "affect-camera-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&windowsBackend{tempDir: tmpDir}, tmpDir)
}
