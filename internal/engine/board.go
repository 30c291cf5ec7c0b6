// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board holds the pieces of one game and the rule memory that is not
// visible from piece placement alone.
//
// Every piece's reach is kept consistent with the current occupancy: each
// relocation recomputes the pieces that can see one of the squares whose
// occupancy changed, before any check or legality query is answered.
type Board struct {
	squares [chess.BoardSize * chess.BoardSize]*Piece
	kings   [2]*Piece

	// Square skipped by a pawn on the previous ply's double advance.
	enPassant    chess.Square
	hasEnPassant bool
}

// relocation records one piece movement so that it can be undone exactly.
type relocation struct {
	piece      *Piece
	from, to   chess.Square
	captured   *Piece
	capturedAt chess.Square
	hadMoved   bool
}

// newBoard creates an empty board with no reach computed.
func newBoard() *Board {
	return &Board{enPassant: chess.NoSquare}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := newBoard()
	backRank := []chess.Piece{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for file, kind := range backRank {
			b.put(&Piece{Kind: kind, Colour: colour, Square: chess.Sq(file, colour.HomeRank())})
			b.put(&Piece{Kind: chess.Pawn, Colour: colour, Square: chess.Sq(file, colour.PawnRank())})
		}
	}
	b.recomputeAll()
	return b
}

// At returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) At(sq chess.Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.Index()]
}

// Pieces returns every piece on the board in a1..h8 order.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, 32)
	for _, p := range b.squares {
		if p != nil {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// PiecesOf returns the pieces of the given colour and kind in a1..h8 order.
func (b *Board) PiecesOf(colour chess.Colour, kind chess.Piece) []*Piece {
	var pieces []*Piece
	for _, p := range b.squares {
		if p != nil && p.Colour == colour && p.Kind == kind {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// King returns the king of the given colour.
func (b *Board) King(colour chess.Colour) *Piece {
	return b.kings[colour]
}

// EnPassant returns the en passant target square, if the previous ply was
// a double pawn advance.
func (b *Board) EnPassant() (chess.Square, bool) {
	return b.enPassant, b.hasEnPassant
}

func (b *Board) setEnPassant(sq chess.Square) {
	b.enPassant, b.hasEnPassant = sq, true
}

func (b *Board) clearEnPassant() {
	b.enPassant, b.hasEnPassant = chess.NoSquare, false
}

// put places p on its square during setup.
func (b *Board) put(p *Piece) {
	b.squares[p.Square.Index()] = p
	if p.Kind == chess.King {
		b.kings[p.Colour] = p
	}
}

// validate checks the structural invariants of a freshly set up board.
func (b *Board) validate() error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(b.PiecesOf(colour, chess.King)); n != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	for _, p := range b.Pieces() {
		if p.Kind == chess.Pawn && (p.Square.Rank == 0 || p.Square.Rank == chess.BoardSize-1) {
			return fmt.Errorf("pawn on %v: %w", p.Square, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// recomputeAll computes the reach of every piece from scratch.
func (b *Board) recomputeAll() {
	for _, p := range b.Pieces() {
		p.reach = computeReach(b, p)
	}
}

// recompute refreshes mover and every other piece that can see one of the
// changed squares. Occupancy elsewhere is unchanged, so no other reach can
// be stale.
func (b *Board) recompute(mover *Piece, changed ...chess.Square) {
	set := chess.SetOf(changed...)
	var stale []*Piece
	for _, p := range b.Pieces() {
		if p == mover || p.sees(set) {
			stale = append(stale, p)
		}
	}
	for _, p := range stale {
		p.reach = computeReach(b, p)
	}
}

// relocate moves p to `to`, removing the piece on capturedAt (normally `to`
// itself, the passed pawn for en passant) and recomputing affected reach.
func (b *Board) relocate(p *Piece, to, capturedAt chess.Square) relocation {
	r := relocation{piece: p, from: p.Square, to: to, capturedAt: capturedAt, hadMoved: p.HasMoved}

	if victim := b.At(capturedAt); victim != nil && victim != p {
		r.captured = victim
		b.squares[capturedAt.Index()] = nil
	}
	b.squares[r.from.Index()] = nil
	b.squares[to.Index()] = p
	p.Square = to
	p.HasMoved = true

	b.recompute(p, r.from, to, capturedAt)
	return r
}

// undo reverses a relocation, restoring any captured piece.
func (b *Board) undo(r relocation) {
	p := r.piece
	b.squares[r.to.Index()] = nil
	b.squares[r.from.Index()] = p
	p.Square = r.from
	p.HasMoved = r.hadMoved
	if r.captured != nil {
		b.squares[r.capturedAt.Index()] = r.captured
	}

	b.recompute(p, r.from, r.to, r.capturedAt)
}

// replace swaps the piece on p's square for a new piece of the given kind.
// The square stays occupied by the same colour, so no other reach changes.
func (b *Board) replace(p *Piece, kind chess.Piece) *Piece {
	np := &Piece{Kind: kind, Colour: p.Colour, Square: p.Square, HasMoved: true}
	b.squares[p.Square.Index()] = np
	np.reach = computeReach(b, np)
	return np
}

// PieceState is the observable state of one piece, used to compare boards.
type PieceState struct {
	Kind      chess.Piece
	Colour    chess.Colour
	Square    chess.Square
	HasMoved  bool
	Moves     chess.SquareSet
	Blockers  chess.SquareSet
	Captures  chess.SquareSet
	CheckLine chess.SquareSet
}

// Snapshot is the complete observable state of a board.
type Snapshot struct {
	Pieces       []PieceState
	EnPassant    chess.Square
	HasEnPassant bool
}

// Snapshot captures the board for later comparison.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{EnPassant: b.enPassant, HasEnPassant: b.hasEnPassant}
	for _, p := range b.Pieces() {
		s.Pieces = append(s.Pieces, PieceState{
			Kind:      p.Kind,
			Colour:    p.Colour,
			Square:    p.Square,
			HasMoved:  p.HasMoved,
			Moves:     p.moves,
			Blockers:  p.blockers,
			Captures:  p.captures,
			CheckLine: p.checkLine,
		})
	}
	return s
}
