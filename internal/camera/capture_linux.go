//go:build linux

package camera

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

type linuxBackend struct{ tempDir string }

func (l *linuxBackend) captureRaw() []byte {
	tmpFile := filepath.Join(l.tempDir, "frame.jpg")
	// Try ffmpeg first, fall back to fswebcam
	var cmd *exec.Cmd
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		cmd = exec.Command("ffmpeg", "-f", "video4linux2", "-i", "/dev/video0",
			"-frames:v", "1", "-y", tmpFile)
	} else if _, err := exec.LookPath("fswebcam"); err == nil {
		cmd = exec.Command("fswebcam", "--no-banner", tmpFile)
	} else {
		slog.Error("no webcam tool found (install ffmpeg or fswebcam)")
		return nil
	}
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

func (l *linuxBackend) cleanup() {}

// New creates a platform-specific webcam capturer
func New() Camera {
	tmpDir, err := os.MkdirTemp("", "affect-camera-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&linuxBackend{tempDir: tmpDir}, tmpDir)
}
