package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

func newPlayCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game at the terminal",
		Long: `Play a two-player game. The side to move is prompted for a move in
short algebraic notation. Illegal moves are explained and the same side is
asked again. Type "quit" to stop before the game ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), cfg, cmd.InOrStdin())
		},
	}
}

func runPlay(ctx context.Context, cfg *config.Config, in io.Reader) (err error) {
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
	printPosition(out, cfg, g)

	scanner := bufio.NewScanner(in)
	for !g.Over() {
		fmt.Fprintf(out, "%v to move: ", g.ToMove())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" {
			break
		}

		summary, err := g.Play(text)
		if err != nil {
			fmt.Fprintf(out, "Illegal move: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s\n", summary.LongAlgebraic())
		printPosition(out, cfg, g)
	}

	fmt.Fprintln(out, describeResult(g))
	return scanner.Err()
}

// printPosition prints the board and any check, according to cfg.
func printPosition(out io.Writer, cfg *config.Config, g *game.Game) {
	if cfg.Output.ShowBoard {
		fmt.Fprint(out, output.RenderBoard(g.Board(), output.WithRankLabelsFromOne(cfg.Output.RankLabelsFromOne)))
	}
	if g.Status() == chess.Check {
		fmt.Fprintf(out, "%v is in check.\n", g.ToMove())
	}
	if cfg.Output.ShowLegalMoves && !g.Over() {
		fmt.Fprintf(out, "%d legal moves.\n", g.LegalMoveCount())
	}
}

// describeResult explains how the game ended.
func describeResult(g *game.Game) string {
	if winner, ok := g.Winner(); ok {
		return fmt.Sprintf("Checkmate. %v wins (%s).", winner, output.Result(g))
	}
	if g.Status() == chess.Stalemate {
		return fmt.Sprintf("Stalemate. The game is drawn (%s).", output.Result(g))
	}
	return fmt.Sprintf("Game unfinished after %d moves (%s).", g.Ply(), output.Result(g))
}
