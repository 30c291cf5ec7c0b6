package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Piece is a piece standing on a Board. The Board owns every Piece and
// mutates it in place as moves are applied.
type Piece struct {
	Kind   chess.Piece
	Colour chess.Colour
	Square chess.Square

	// HasMoved is consulted for kings and rooks when castling.
	HasMoved bool

	reach
}

// reach holds the squares derived from a piece's position and the current
// occupancy of the board. It is recomputed whenever that occupancy changes
// on a square the piece can see.
type reach struct {
	// Squares the piece could move to, ignoring the safety of its own king.
	moves chess.SquareSet

	// Occupied squares that stop the piece: friendly pieces, and for pawns
	// anything standing in front of them.
	blockers chess.SquareSet

	// Diagonal squares a pawn attacks whether or not they are occupied.
	captures chess.SquareSet

	// For sliders stopped by the enemy king: the ray from the piece up to
	// and including the king's square.
	checkLine chess.SquareSet
}

// Moves returns the reachable destination set.
func (p *Piece) Moves() chess.SquareSet {
	return p.moves
}

// Blockers returns the squares on which the piece's reach is obstructed.
func (p *Piece) Blockers() chess.SquareSet {
	return p.blockers
}

// Captures returns a pawn's diagonal capture squares. It is empty for other kinds.
func (p *Piece) Captures() chess.SquareSet {
	return p.captures
}

// CheckLine returns the ray towards the enemy king when this slider gives check along it.
func (p *Piece) CheckLine() chess.SquareSet {
	return p.checkLine
}

// Threatens reports whether the piece could capture on sq right now.
// Pawns threaten their diagonals even when empty, so they are tested
// against the capture set rather than the destination set.
func (p *Piece) Threatens(sq chess.Square) bool {
	if p.Kind == chess.Pawn {
		return p.captures.Has(sq)
	}
	return p.moves.Has(sq)
}

// sees reports whether a change of occupancy on any of the given squares
// could alter the piece's reach.
func (p *Piece) sees(changed chess.SquareSet) bool {
	return p.moves.Union(p.blockers).Union(p.captures).Intersects(changed)
}

// String returns e.g. "White Knight on g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v on %v", p.Colour, p.Kind, p.Square)
}
