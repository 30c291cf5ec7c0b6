// Package stats provides a unified interface for collecting game metrics.
package stats

// Metric names recorded by a game.
const (
	// Move metrics.
	MetricMovesApplied  = "chess_moves_applied_total"
	MetricMovesRejected = "chess_moves_rejected_total"
	MetricChecks        = "chess_checks_total"
	MetricResolveTime   = "chess_resolve_seconds"

	// Game metrics.
	MetricGamesFinished = "chess_games_finished_total"
	MetricPiecesOnBoard = "chess_pieces_on_board"
)

// Help describes each metric for exporters that need a description.
var Help = map[string]string{
	MetricMovesApplied:  "Moves accepted and applied to a board.",
	MetricMovesRejected: "Moves rejected by the rules engine.",
	MetricChecks:        "Moves that left the opponent in check or checkmate.",
	MetricResolveTime:   "Time taken to resolve and apply one move, in seconds.",
	MetricGamesFinished: "Games that reached checkmate or stalemate.",
	MetricPiecesOnBoard: "Pieces on the board after the last applied move.",
}

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
