package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// newRootCmd builds the command tree. Global flags fill cfg before any
// subcommand runs.
func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "chess",
		Short: "Play and check two-player chess games",
		Long: `Chess enforces the standard rules for two players entering moves in
short algebraic notation: e4, Nf3, exd5, Nbd2, R1a3, e8=Q, O-O, O-O-O.

Examples:
  # Play a game at the terminal
  chess play

  # Check a game and print the move list
  chess replay 1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7#

  # Start from a position
  chess play --fen "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.SetOutput(cmd.OutOrStdout())
			cfg.LogFile = cmd.ErrOrStderr()
			return cfg.Validate()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.Log.Development, "log-dev", cfg.Log.Development, "human-readable console logs")
	flags.StringVar(&cfg.Game.StartFEN, "fen", cfg.Game.StartFEN, "position to start from")
	flags.IntVar(&cfg.Game.ParseCacheSize, "cache-size", cfg.Game.ParseCacheSize, "number of parsed moves to remember")
	flags.StringVar(&cfg.Metrics.Addr, "metrics-addr", cfg.Metrics.Addr, "serve Prometheus metrics on this address (e.g. :2112)")
	flags.BoolVar(&cfg.Output.RankLabelsFromOne, "rank-labels-from-one", cfg.Output.RankLabelsFromOne, "label ranks 1-8 (false labels them 0-7)")
	flags.BoolVar(&cfg.Output.ShowLegalMoves, "show-legal-moves", cfg.Output.ShowLegalMoves, "print the number of legal moves after each move")
	flags.BoolVar(&cfg.Output.ShowBoard, "board", cfg.Output.ShowBoard, "print the board")

	rootCmd.AddCommand(newPlayCmd(cfg), newReplayCmd(cfg), newCheckCmd(cfg))
	return rootCmd
}

// newLogger builds a zap logger writing to cfg.LogFile at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Log.ZapLevel()
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if cfg.Log.Development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	sink := cfg.LogFile
	if sink == nil {
		sink = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), level)
	return zap.New(core), nil
}
