package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the position games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithParseCacheSize sets how many parsed moves are remembered.
func (b *ConfigBuilder) WithParseCacheSize(size int) *ConfigBuilder {
	b.cfg.Game.ParseCacheSize = size
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithDevelopmentLogging selects the console log encoder.
func (b *ConfigBuilder) WithDevelopmentLogging(enabled bool) *ConfigBuilder {
	b.cfg.Log.Development = enabled
	return b
}

// WithMetricsAddr enables the metrics endpoint on addr.
func (b *ConfigBuilder) WithMetricsAddr(addr string) *ConfigBuilder {
	b.cfg.Metrics.Addr = addr
	return b
}

// WithRankLabelsFromOne selects 1..8 rank labels, or 0..7 when false.
func (b *ConfigBuilder) WithRankLabelsFromOne(enabled bool) *ConfigBuilder {
	b.cfg.Output.RankLabelsFromOne = enabled
	return b
}

// WithLegalMoveCount prints the legal move count after each ply.
func (b *ConfigBuilder) WithLegalMoveCount(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegalMoves = enabled
	return b
}

// WithBoard controls whether the board is printed after each ply.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
