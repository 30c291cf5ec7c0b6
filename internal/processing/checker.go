// Package processing checks batches of written games and reports which are
// legal, how they ended and which repeat an earlier game.
package processing

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Report is the checked outcome of one game.
type Report struct {
	worker.ProcessResult

	// DuplicateOf names the earlier game this one repeats, empty if none.
	DuplicateOf string
}

// Valid reports whether every move of the game was accepted.
func (r *Report) Valid() bool {
	return r.Err == nil
}

// Checker replays games with a game factory, so every game shares its
// configuration, parse cache and metrics.
type Checker struct {
	factory *game.Factory
	hasher  *hashing.GameHasher
	logger  *zap.Logger

	workers    int
	exactMatch bool
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithWorkers sets the number of games checked in parallel.
func WithWorkers(n int) CheckerOption {
	return func(c *Checker) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithHashType selects what two games must share to be duplicates.
func WithHashType(ht hashing.HashType) CheckerOption {
	return func(c *Checker) {
		c.hasher = hashing.NewGameHasher(ht)
	}
}

// WithExactMatch also requires duplicates to have the same length.
func WithExactMatch(exact bool) CheckerOption {
	return func(c *Checker) {
		c.exactMatch = exact
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) CheckerOption {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewChecker creates a Checker that starts every game from factory.
func NewChecker(factory *game.Factory, opts ...CheckerOption) *Checker {
	c := &Checker{
		factory: factory,
		hasher:  hashing.NewGameHasher(hashing.HashFinalPosition),
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckGame replays one game, stopping at the first rejected move.
func (c *Checker) CheckGame(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Name: item.Name, Result: "*"}

	g, err := c.factory.New()
	if err != nil {
		result.Err = err
		return result
	}
	for _, text := range item.Moves {
		if _, err := g.Play(text); err != nil {
			result.Err = err
			break
		}
	}

	result.Plies = g.Ply()
	result.Status = g.Status()
	result.Result = output.Result(g)
	result.Hash = c.hasher.HashGame(g)
	return result
}

// Check replays every game on a worker pool and returns one report per
// game in input order. Duplicates are decided in that order too, so the
// first of two equal games is the original. Games with a rejected move
// are never duplicates. The caller's items are not modified.
func (c *Checker) Check(items []worker.WorkItem) []Report {
	numbered := make([]worker.WorkItem, len(items))
	for i, item := range items {
		item.Index = i
		numbered[i] = item
	}
	pool := worker.NewPool(c.CheckGame, worker.WithWorkers(c.workers), worker.WithBufferSize(2*c.workers))
	results := pool.Run(numbered)

	detector := hashing.NewDuplicateDetector(c.exactMatch)
	reports := make([]Report, len(results))
	for i, r := range results {
		reports[i].ProcessResult = r
		if r.Err != nil {
			c.logger.Info("game rejected", zap.String("game", r.Name), zap.Int("plies", r.Plies), zap.Error(r.Err))
			continue
		}
		sig := hashing.GameSignature{Name: r.Name, Hash: r.Hash, Plies: r.Plies}
		if original, dup := detector.CheckAndAdd(sig); dup {
			reports[i].DuplicateOf = original
			c.logger.Info("duplicate game", zap.String("game", r.Name), zap.String("original", original))
		}
	}

	c.logger.Debug("games checked",
		zap.Int("games", len(reports)),
		zap.Int("unique", detector.UniqueCount()),
		zap.Int("duplicates", detector.DuplicateCount()))
	return reports
}

// Summary counts the reports by outcome.
type Summary struct {
	Games      int
	Invalid    int
	Duplicates int
	Finished   map[chess.CheckStatus]int
}

// Summarize counts reports by outcome.
func Summarize(reports []Report) Summary {
	s := Summary{Games: len(reports), Finished: make(map[chess.CheckStatus]int)}
	for i := range reports {
		r := &reports[i]
		switch {
		case !r.Valid():
			s.Invalid++
		case r.DuplicateOf != "":
			s.Duplicates++
		}
		if r.Status.Terminal() {
			s.Finished[r.Status]++
		}
	}
	return s
}
