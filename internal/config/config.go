package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// QuizRetryMode controls what happens when a learner retries a failed quiz.
type QuizRetryMode string

const (
	// RetryFresh regenerates the quiz, so a retry sees new questions.
	RetryFresh QuizRetryMode = "fresh"
	// RetrySame reuses the held quiz and only resets the answers.
	RetrySame QuizRetryMode = "same"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the base path of the LearnEye service, including /api.
	APIBaseURL string

	// Timeout is the per-request deadline for remote calls.
	Timeout time.Duration

	// DBPath overrides the SQLite session database location. Empty means
	// the XDG default.
	DBPath string

	// QuizRetry selects the quiz retry policy.
	QuizRetry QuizRetryMode

	// LogPath, when set, enables debug logging to that file.
	LogPath string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		APIBaseURL: "http://localhost:8000/api",
		Timeout:    90 * time.Second,
		QuizRetry:  RetryFresh,
	}
}

// Load builds a Config from an optional .env file plus environment
// variables, falling back to defaults for unset values.
func Load() (Config, error) {
	// Missing .env is fine; we only care about a malformed one.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Default()

	if u := os.Getenv("LEARNEYE_API_URL"); u != "" {
		cfg.APIBaseURL = u
	}
	if t := os.Getenv("LEARNEYE_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("parse LEARNEYE_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if p := os.Getenv("LEARNEYE_DB"); p != "" {
		cfg.DBPath = p
	}
	if m := os.Getenv("LEARNEYE_QUIZ_RETRY"); m != "" {
		cfg.QuizRetry = QuizRetryMode(m)
	}
	if p := os.Getenv("LEARNEYE_LOG"); p != "" {
		cfg.LogPath = p
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would misbehave later.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch c.QuizRetry {
	case RetryFresh, RetrySame:
	default:
		return fmt.Errorf("unknown quiz retry mode: %q", c.QuizRetry)
	}
	return nil
}
