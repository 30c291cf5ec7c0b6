package game

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Factory creates games that share a logger, a stats collector and a
// parse cache.
type Factory struct {
	opts   []Option
	cache  *notation.Cache
	logger *zap.Logger
	nextID atomic.Int64
}

// NewFactory creates a factory. The options apply to every game it creates.
func NewFactory(opts ...Option) (*Factory, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	cache, err := notation.NewCache(cfg.cacheSize)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "parse cache size %d", cfg.cacheSize)
	}
	return &Factory{opts: opts, cache: cache, logger: cfg.logger}, nil
}

// New creates a game. Options given here override the factory's.
func (f *Factory) New(opts ...Option) (*Game, error) {
	id := f.nextID.Add(1)
	all := make([]Option, 0, len(f.opts)+len(opts)+2)
	all = append(all, f.opts...)
	all = append(all, withSharedCache(f.cache), WithLogger(f.logger.With(zap.Int64("game", id))))
	all = append(all, opts...)
	return New(all...)
}

// Games returns the number of games created so far.
func (f *Factory) Games() int64 {
	return f.nextID.Load()
}
