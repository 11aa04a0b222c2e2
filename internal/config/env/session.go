package env

import (
	"fmt"
	"os"
	"time"

	"reviewmap_backend/internal/config"
)

const (
	sessionReapIntervalEnvName = "SESSION_REAP_INTERVAL"
)

type sessionConfig struct {
	reapInterval time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	interval := os.Getenv(sessionReapIntervalEnvName)
	if len(interval) == 0 {
		// Чистка выключена, просроченные сессии отфильтровываются при lookup
		return &sessionConfig{reapInterval: 0}, nil
	}

	parsed, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("invalid session reap interval: %w", err)
	}

	return &sessionConfig{reapInterval: parsed}, nil
}

func (cfg *sessionConfig) ReapInterval() time.Duration {
	return cfg.reapInterval
}
