package game

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/stats"
)

// Option configures a Game.
type Option interface {
	apply(*options)
}

// options holds the game configuration.
type options struct {
	fen       string
	cacheSize int
	cache     *notation.Cache
	stats     stats.Collector
	logger    *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		fen:       engine.InitialFEN,
		cacheSize: notation.DefaultCacheSize,
		stats:     stats.NewNoop(),
		logger:    zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithFEN starts the game from the given position instead of the
// standard starting position.
func WithFEN(fen string) Option {
	return optionFunc(func(o *options) {
		o.fen = fen
	})
}

// WithParseCache sets how many parsed moves the game remembers.
// Default is notation.DefaultCacheSize.
func WithParseCache(size int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = size
		o.cache = nil
	})
}

// withSharedCache makes the game use an existing parse cache.
func withSharedCache(c *notation.Cache) Option {
	return optionFunc(func(o *options) {
		o.cache = c
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}
