// Package chessfx provides an fx module for creating chess games.
package chessfx

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/stats"
	"github.com/lgbarn/chess-rules-go/internal/stats/logger"
	promstats "github.com/lgbarn/chess-rules-go/internal/stats/prometheus"
)

// Module provides a *game.Factory.
// Requires a *zap.Logger to be provided. A prometheus.Registerer and a
// *config.Config are used when provided.
var Module = fx.Module("chess",
	fx.Provide(
		newStatsCollector,
		newFactory,
	),
)

// StatsParams holds dependencies for creating the stats collector.
type StatsParams struct {
	fx.In

	Logger     *zap.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

func newStatsCollector(p StatsParams) stats.Collector {
	if p.Registerer != nil {
		return promstats.New(p.Registerer)
	}
	return logger.New(p.Logger.Named("chess"))
}

// Params holds dependencies for creating the game factory.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Config    *config.Config `optional:"true"`
	Lifecycle fx.Lifecycle
}

func newFactory(p Params) (*game.Factory, error) {
	opts := []game.Option{
		game.WithStats(p.Collector),
		game.WithLogger(p.Logger.Named("game")),
	}
	if p.Config != nil {
		if err := p.Config.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, p.Config.GameOptions()...)
	}

	factory, err := game.NewFactory(opts...)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Logger.Debug("game factory stopped", zap.Int64("games", factory.Games()))
			return nil
		},
	})

	return factory, nil
}
