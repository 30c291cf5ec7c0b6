package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/fx/chessfx"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// session holds what a command needs to run games: the fx application that
// provides the game factory, the logger and the optional metrics server.
type session struct {
	app     *fx.App
	factory *game.Factory
	logger  *zap.Logger
	metrics *http.Server
}

// startSession builds the logger, starts the metrics endpoint when one is
// configured, and starts the fx application.
func startSession(ctx context.Context, cfg *config.Config) (*session, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger}

	opts := []fx.Option{
		fx.NopLogger,
		fx.Supply(logger, cfg),
		chessfx.Module,
		fx.Populate(&s.factory),
	}

	if cfg.Metrics.Enabled() {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, fx.Provide(func() prometheus.Registerer { return reg }))

		s.metrics, err = serveMetrics(cfg.Metrics, reg, logger)
		if err != nil {
			return nil, err
		}
	}

	s.app = fx.New(opts...)
	if err := s.app.Err(); err != nil {
		s.stopMetrics(ctx)
		return nil, fmt.Errorf("wiring game factory: %w", err)
	}
	if err := s.app.Start(ctx); err != nil {
		s.stopMetrics(ctx)
		return nil, fmt.Errorf("starting: %w", err)
	}
	return s, nil
}

// close stops the fx application and the metrics server and flushes the log.
func (s *session) close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.app.Stop(ctx)
	s.stopMetrics(ctx)
	_ = s.logger.Sync()
	return err
}

func (s *session) stopMetrics(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.Shutdown(ctx); err != nil {
		s.logger.Warn("metrics server shutdown", zap.Error(err))
	}
}

// serveMetrics serves the registry on the configured address. The listener
// is opened before returning so that a bad address is reported at once.
func serveMetrics(cfg *config.MetricsConfig, reg *prometheus.Registry, logger *zap.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", zap.String("addr", ln.Addr().String()), zap.String("path", cfg.Path))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()
	return srv, nil
}
