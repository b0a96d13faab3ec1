// Package config handles agent configuration
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	AdminAddr      string
	SessionURL     string
	ClassifierAddr string

	SessionID   string
	Participant string
	Topic       string

	SampleRate int
	BlockSize  int

	VisionInterval  time.Duration
	VideoInterval   time.Duration
	EmotionInterval time.Duration

	BackendOrder []string
	LogLevel     slog.Level
}

func Load() *Config {
	// Optional .env for local development
	_ = godotenv.Load()

	return &Config{
		AdminAddr:      getEnv("ADMIN_ADDR", ":8000"),
		SessionURL:     getEnv("SESSION_URL", "ws://localhost:9000/session"),
		ClassifierAddr: getEnv("CLASSIFIER_ADDR", "localhost:50051"),

		SessionID:   getEnv("SESSION_ID", uuid.NewString()),
		Participant: getEnv("PARTICIPANT", "candidate"),
		Topic:       getEnv("TOPIC", "general"),

		SampleRate: getEnvInt("SAMPLE_RATE", 16000),
		BlockSize:  getEnvInt("BLOCK_SIZE", 1024),

		VisionInterval:  getEnvDuration("VISION_INTERVAL_MS", 400),
		VideoInterval:   getEnvDuration("VIDEO_INTERVAL_MS", 500),
		EmotionInterval: getEnvDuration("EMOTION_INTERVAL_MS", 1000),

		BackendOrder: getEnvList("BACKEND_ORDER", []string{"landmark", "blaze"}),
		LogLevel:     getEnvLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, defMillis int) time.Duration {
	return time.Duration(getEnvInt(key, defMillis)) * time.Millisecond
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				result = append(result, t)
			}
		}
		return result
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return def
}
