// Package config provides configuration for the chess command-line tool.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Config holds all program configuration.
type Config struct {
	Game    *GameConfig
	Output  *OutputConfig
	Log     *LogConfig
	Metrics *MetricsConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Log:        NewLogConfig(),
		Metrics:    NewMetricsConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and move transcripts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Metrics.Validate()
}

// GameOptions returns the game options the configuration describes.
func (c *Config) GameOptions() []game.Option {
	return []game.Option{
		game.WithFEN(c.Game.StartFEN),
		game.WithParseCache(c.Game.ParseCacheSize),
	}
}
