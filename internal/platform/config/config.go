package config

import (
	"fmt"
	"strings"

	apperrors "quizterm/internal/platform/errors"
)

const (
	DefaultQuestionsPath = "questions.json"
	DefaultUIMode        = "plain"
	DefaultLogLevel      = "warn"
)

type Config struct {
	QuestionsPath string
	UIMode        string
	LogLevel      string
}

func New(questionsPath, uiMode, logLevel string) (Config, error) {
	cfg := Config{
		QuestionsPath: strings.TrimSpace(questionsPath),
		UIMode:        strings.ToLower(strings.TrimSpace(uiMode)),
		LogLevel:      strings.ToLower(strings.TrimSpace(logLevel)),
	}
	if cfg.QuestionsPath == "" {
		return Config{}, fmt.Errorf("%w: questions path is required", apperrors.ErrInvalidInput)
	}
	if cfg.UIMode == "" {
		cfg.UIMode = DefaultUIMode
	}
	switch cfg.UIMode {
	case "plain", "tui", "auto":
	default:
		return Config{}, fmt.Errorf("%w: ui mode %q (expected plain|tui|auto)", apperrors.ErrInvalidInput, uiMode)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}
