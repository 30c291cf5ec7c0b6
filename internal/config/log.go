package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string

	// Development selects zap's human-readable console encoder.
	Development bool
}

// NewLogConfig creates a LogConfig that only reports warnings and errors.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn"}
}

// ZapLevel returns the configured level.
func (l *LogConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks that the level name is known.
func (l *LogConfig) Validate() error {
	_, err := l.ZapLevel()
	return err
}
