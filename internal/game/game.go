// Package game runs a two-player game on top of the rules engine: it takes
// move text from whichever side is to move, resolves and applies it, and
// tracks whose turn it is and whether the game has ended.
//
// Example usage:
//
//	g, err := game.New(game.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := g.Play("e4")
//	if err != nil {
//	    // the move was rejected and the board is unchanged
//	}
//	fmt.Println(summary.LongAlgebraic(), summary.CheckStatus)
package game

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/stats"
)

// Summary describes an accepted move and the position it left behind.
type Summary struct {
	chess.Move

	// Ply is the 1-based half-move number of the move.
	Ply int

	// Pieces is the number of pieces left on the board.
	Pieces int
}

// Game is one game between two players.
// A Game is safe for concurrent use by multiple goroutines.
type Game struct {
	mu         sync.Mutex
	board      *engine.Board
	toMove     chess.Colour
	ply        int
	moveNumber int
	status     chess.CheckStatus
	history    []chess.Move
	startFEN   string

	cache  *notation.Cache
	stats  stats.Collector
	logger *zap.Logger
}

// New creates a game with the given options.
// Without options the game starts from the standard position with White to move.
func New(opts ...Option) (*Game, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	board, toMove, err := engine.NewBoardFromFEN(cfg.fen)
	if err != nil {
		return nil, fmt.Errorf("setting up position: %w", err)
	}

	cache := cfg.cache
	if cache == nil {
		cache, err = notation.NewCache(cfg.cacheSize)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "parse cache size %d", cfg.cacheSize)
		}
	}

	g := &Game{
		board:      board,
		toMove:     toMove,
		moveNumber: fullMoveNumber(cfg.fen),
		status:     board.Status(toMove),
		startFEN:   cfg.fen,
		cache:      cache,
		stats:      cfg.stats,
		logger:     cfg.logger,
	}

	g.logger.Debug("game created",
		zap.String("fen", cfg.fen),
		zap.Stringer("toMove", toMove),
		zap.Stringer("status", g.status),
	)
	return g, nil
}

// ResolveAndValidate resolves text as a move by colour and applies it.
//
// The move is rejected with ErrGameOver once the game has ended and with
// ErrNotYourTurn when colour is not the side to move. Every rejection is
// returned as an *errors.MoveError wrapping the rule that was broken, and
// leaves the game unchanged.
//
// On success the turn passes to the other side and the summary reports
// whether that side is now in check, checkmated or stalemated.
func (g *Game) ResolveAndValidate(text string, colour chess.Colour) (*Summary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.Terminal() {
		return nil, g.reject(text, colour, errors.ErrGameOver)
	}
	if colour != g.toMove {
		return nil, g.reject(text, colour, errors.ErrNotYourTurn)
	}

	start := time.Now()
	move, err := g.resolveAndApply(text, colour)
	g.stats.ObserveHistogram(stats.MetricResolveTime, time.Since(start).Seconds())
	if err != nil {
		return nil, g.reject(text, colour, err)
	}

	g.ply++
	if colour == chess.Black {
		g.moveNumber++
	}
	g.toMove = colour.Opposite()
	g.status = g.board.Status(g.toMove)
	move.CheckStatus = g.status
	g.history = append(g.history, *move)

	pieces := len(g.board.Pieces())
	g.record(move, pieces)

	return &Summary{Move: *move, Ply: g.ply, Pieces: pieces}, nil
}

// fullMoveNumber reads the move number field of fen, defaulting to 1.
func fullMoveNumber(fen string) int {
	parts := strings.Fields(fen)
	if len(parts) < 6 {
		return 1
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Play resolves and applies text as a move by the side to move.
func (g *Game) Play(text string) (*Summary, error) {
	return g.ResolveAndValidate(text, g.ToMove())
}

// resolveAndApply parses text, matches it to a piece and applies it.
func (g *Game) resolveAndApply(text string, colour chess.Colour) (*chess.Move, error) {
	in, err := g.cache.Parse(text)
	if err != nil {
		return nil, err
	}
	resolved, err := notation.Resolve(g.board, in, colour)
	if err != nil {
		return nil, err
	}
	return g.board.Apply(resolved)
}

// reject counts a rejected move and wraps err with the move context.
func (g *Game) reject(text string, colour chess.Colour, err error) error {
	g.stats.IncCounter(stats.MetricMovesRejected, 1)
	g.logger.Debug("move rejected",
		zap.String("move", text),
		zap.Stringer("colour", colour),
		zap.Int("ply", g.ply+1),
		zap.Error(err),
	)
	return &errors.MoveError{
		Err:      err,
		Notation: text,
		Colour:   colour.String(),
		Ply:      g.ply + 1,
	}
}

// record reports an applied move to the stats collector and the log.
func (g *Game) record(move *chess.Move, pieces int) {
	g.stats.IncCounter(stats.MetricMovesApplied, 1)
	g.stats.SetGauge(stats.MetricPiecesOnBoard, int64(pieces))
	if move.CheckStatus == chess.Check || move.CheckStatus == chess.Checkmate {
		g.stats.IncCounter(stats.MetricChecks, 1)
	}

	g.logger.Debug("move applied",
		zap.Int("ply", g.ply),
		zap.String("move", move.Text),
		zap.String("long", move.LongAlgebraic()),
		zap.Stringer("status", move.CheckStatus),
	)

	if move.CheckStatus.Terminal() {
		g.stats.IncCounter(stats.MetricGamesFinished, 1)
		g.logger.Info("game over",
			zap.Stringer("result", move.CheckStatus),
			zap.Stringer("lastMover", move.Colour),
			zap.Int("plies", g.ply),
		)
	}
}

// Board returns the board for display. Callers must not change it.
func (g *Game) Board() *engine.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// MoveNumber returns the full move number of the side to move.
func (g *Game) MoveNumber() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.moveNumber
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ply
}

// Status returns the status of the side to move.
func (g *Game) Status() chess.CheckStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Over reports whether the game has ended by checkmate or stalemate.
func (g *Game) Over() bool {
	return g.Status().Terminal()
}

// Winner returns the side that delivered checkmate. The second result is
// false while the game is running and after a stalemate.
func (g *Game) Winner() (chess.Colour, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != chess.Checkmate {
		return chess.White, false
	}
	return g.toMove.Opposite(), true
}

// History returns the moves applied so far, oldest first.
func (g *Game) History() []chess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// LegalMoveCount counts the legal moves of the side to move. A promotion
// counts once per destination regardless of the piece chosen.
func (g *Game) LegalMoveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for _, p := range g.board.Pieces() {
		if p.Colour == g.toMove {
			n += g.board.LegalMoves(p).Len()
		}
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if g.board.CanCastle(g.toMove, side) == nil {
			n++
		}
	}
	return n
}
