package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var (
		workers int
		match   string
		exact   bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check many written games at once",
		Long: `Check every game file against the rules, one game per file, and report
how each one ended. Games are checked in parallel.

A game that reaches the same final position as an earlier file is reported
as its duplicate; with --match moves the games must instead have played the
same moves. The command fails if any game contains an illegal move.

Examples:
  chess check games/*.txt
  chess check --workers 8 --match moves a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashType, ok := hashing.ParseHashType(match)
			if !ok {
				return fmt.Errorf("unknown match %q", match)
			}
			items := make([]worker.WorkItem, 0, len(args))
			for _, name := range args {
				moves, err := readMoveList(nil, name, cmd.InOrStdin())
				if err != nil {
					return err
				}
				items = append(items, worker.WorkItem{Name: name, Moves: moves})
			}
			return runCheck(cmd.Context(), cfg, items,
				processing.WithWorkers(workers),
				processing.WithHashType(hashType),
				processing.WithExactMatch(exact))
		},
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of games checked in parallel")
	cmd.Flags().StringVar(&match, "match", "position", "duplicate games share the final position or the moves")
	cmd.Flags().BoolVar(&exact, "exact", false, "duplicate games must also have the same length")
	return cmd
}

func runCheck(ctx context.Context, cfg *config.Config, items []worker.WorkItem, opts ...processing.CheckerOption) (err error) {
	s, err := startSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(ctx); err == nil {
			err = cerr
		}
	}()

	checker := processing.NewChecker(s.factory, append(opts, processing.WithLogger(s.logger))...)
	reports := checker.Check(items)
	for i := range reports {
		writeReport(cfg.OutputFile, &reports[i])
	}

	summary := processing.Summarize(reports)
	fmt.Fprintf(cfg.OutputFile, "%d games, %d illegal, %d duplicates\n", summary.Games, summary.Invalid, summary.Duplicates)
	if summary.Invalid > 0 {
		return fmt.Errorf("%d of %d games contain an illegal move", summary.Invalid, summary.Games)
	}
	return nil
}

// writeReport writes one line describing r.
func writeReport(w io.Writer, r *processing.Report) {
	switch {
	case !r.Valid():
		fmt.Fprintf(w, "%s: illegal after %d plies: %v\n", r.Name, r.Plies, r.Err)
	case r.DuplicateOf != "":
		fmt.Fprintf(w, "%s: %s in %d plies, duplicate of %s\n", r.Name, r.Result, r.Plies, r.DuplicateOf)
	default:
		fmt.Fprintf(w, "%s: %s in %d plies\n", r.Name, r.Result, r.Plies)
	}
}
