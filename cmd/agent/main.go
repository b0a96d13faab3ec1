// Affect sensing agent - captures mic and camera, streams to the
// session service and plays synthesized speech back.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SivaBalaji-AR/final-year-project/internal/audio"
	"github.com/SivaBalaji-AR/final-year-project/internal/camera"
	"github.com/SivaBalaji-AR/final-year-project/internal/classifier"
	"github.com/SivaBalaji-AR/final-year-project/internal/config"
	"github.com/SivaBalaji-AR/final-year-project/internal/playback"
	"github.com/SivaBalaji-AR/final-year-project/internal/server"
	"github.com/SivaBalaji-AR/final-year-project/internal/session"
	"github.com/SivaBalaji-AR/final-year-project/internal/transport"
	"github.com/SivaBalaji-AR/final-year-project/internal/vision"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Expression classifier sidecar
	cls, err := classifier.New(cfg.ClassifierAddr, cfg.BackendOrder)
	if err != nil {
		slog.Error("failed to connect to classifier", "addr", cfg.ClassifierAddr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = cls.Close() }()

	// Capture devices
	mic, err := audio.NewCapturer(cfg.SampleRate, cfg.BlockSize)
	if err != nil {
		slog.Error("failed to initialize audio", "error", err)
		os.Exit(1)
	}
	cam := camera.New()

	// Playback
	sink, err := playback.NewDeviceSink(cfg.SampleRate)
	if err != nil {
		slog.Error("failed to open playback device", "error", err)
		os.Exit(1)
	}
	player := playback.New(sink, cfg.SampleRate)

	// Session transport
	link, err := transport.Dial(ctx, cfg.SessionURL, transport.SessionInitMessage{
		SessionID:   cfg.SessionID,
		Participant: cfg.Participant,
		Topic:       cfg.Topic,
	})
	if err != nil {
		slog.Error("failed to connect to session service", "url", cfg.SessionURL, "error", err)
		os.Exit(1)
	}

	extractor := vision.NewExtractor(cls, cam, cfg.VisionInterval)

	sess := session.New(session.Config{
		ID:              cfg.SessionID,
		Participant:     cfg.Participant,
		Topic:           cfg.Topic,
		VideoInterval:   cfg.VideoInterval,
		EmotionInterval: cfg.EmotionInterval,
	}, link, mic, cam, extractor, player)

	if err := sess.Start(ctx); err != nil {
		slog.Error("session start error", "error", err)
		os.Exit(1)
	}

	// Admin/observability server
	adminSrv := server.New(sess)
	httpServer := &http.Server{
		Addr:         cfg.AdminAddr,
		Handler:      adminSrv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("agent starting",
			"admin", cfg.AdminAddr,
			"session", cfg.SessionID,
			"classifier", cfg.ClassifierAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
		}
	}()

	// Exit on signal or when the session transport ends
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down...")
	case <-link.Done():
		slog.Info("session ended", "state", link.CurrentState())
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}

	sess.Stop()
	slog.Info("shutdown complete")
}
