package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewReviewConfigFromYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
review:
  min_rating: 0
  max_rating: 5
  max_title_length: 120
  max_content_length: 4000
`)

	cfg, err := NewReviewConfigFromYAML(path)
	if err != nil {
		t.Fatalf("NewReviewConfigFromYAML error: %v", err)
	}

	if cfg.MinRating() != 0 || cfg.MaxRating() != 5 {
		t.Fatalf("rating bounds mismatch: %d..%d", cfg.MinRating(), cfg.MaxRating())
	}
	if cfg.MaxTitleLength() != 120 {
		t.Fatalf("max title length: got %d want 120", cfg.MaxTitleLength())
	}
	if cfg.MaxContentLength() != 4000 {
		t.Fatalf("max content length: got %d want 4000", cfg.MaxContentLength())
	}
}

func TestNewReviewConfigFromYAML_InvalidBounds(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
review:
  min_rating: 5
  max_rating: 5
`)

	if _, err := NewReviewConfigFromYAML(path); err == nil {
		t.Fatalf("expected error for degenerate rating bounds, got nil")
	}
}

func TestNewReviewConfigFromYAML_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := NewReviewConfigFromYAML("does-not-exist.yaml"); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

func TestNewSessionConfig(t *testing.T) {
	t.Setenv(sessionReapIntervalEnvName, "30m")

	cfg, err := NewSessionConfig()
	if err != nil {
		t.Fatalf("NewSessionConfig error: %v", err)
	}
	if cfg.ReapInterval().Minutes() != 30 {
		t.Fatalf("reap interval: got %v want 30m", cfg.ReapInterval())
	}
}

func TestNewSessionConfig_Disabled(t *testing.T) {
	t.Setenv(sessionReapIntervalEnvName, "")

	cfg, err := NewSessionConfig()
	if err != nil {
		t.Fatalf("NewSessionConfig error: %v", err)
	}
	if cfg.ReapInterval() != 0 {
		t.Fatalf("reap interval: got %v want 0", cfg.ReapInterval())
	}
}

func TestNewSessionConfig_Invalid(t *testing.T) {
	t.Setenv(sessionReapIntervalEnvName, "soon")

	if _, err := NewSessionConfig(); err == nil {
		t.Fatalf("expected error for bad duration, got nil")
	}
}
