package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

func newReplayCmd(cfg *config.Config) *cobra.Command {
	var (
		format    string
		inputFile string
		width     int
	)

	cmd := &cobra.Command{
		Use:   "replay [moves...]",
		Short: "Check a written game move by move",
		Long: `Replay a game given as a move list, checking every move against the
rules. Move numbers and a trailing result are ignored. Without arguments the
list is read from --file, or from standard input.

The game is written back as a numbered move list, or as JSON with --format json.
The first illegal move stops the replay with an error.

Examples:
  chess replay 1. f3 e5 2. g4 Qh4#
  chess replay --format json --file game.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readMoveList(args, inputFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runReplay(cmd.Context(), cfg, list, format, width)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&inputFile, "file", "", "read the move list from this file (- for standard input)")
	cmd.Flags().IntVar(&width, "width", 80, "maximum line length of the text move list")
	return cmd
}

// readMoveList takes the moves from args, the named file, or in.
func readMoveList(args []string, inputFile string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return notation.SplitMoveList(strings.Join(args, " ")), nil
	}

	var data []byte
	var err error
	switch inputFile {
	case "", "-":
		data, err = io.ReadAll(in)
	default:
		data, err = os.ReadFile(inputFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading move list: %w", err)
	}
	return notation.SplitMoveList(string(data)), nil
}

func runReplay(ctx context.Context, cfg *config.Config, moves []string, format string, width int) (err error) {
	s, err := startSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(ctx); err == nil {
			err = cerr
		}
	}()

	g, err := s.factory.New()
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	out := cfg.OutputFile
	var w output.GameWriter
	switch format {
	case "text":
		w = output.NewTextWriter(out, g, width)
	case "json":
		w = output.NewJSONWriter(out, g)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	for _, text := range moves {
		summary, err := g.Play(text)
		if err != nil {
			_ = w.Close()
			return err
		}
		if err := w.WriteMove(summary); err != nil {
			return fmt.Errorf("writing move: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing game: %w", err)
	}

	if format == "text" && cfg.Output.ShowBoard {
		fmt.Fprint(out, output.RenderBoard(g.Board(), output.WithRankLabelsFromOne(cfg.Output.RankLabelsFromOne)))
	}
	return nil
}
