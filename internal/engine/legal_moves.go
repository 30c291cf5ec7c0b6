package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TryMove reports whether moving p to dest would leave its own king safe.
// The board is returned to its exact prior state whatever the outcome.
func (b *Board) TryMove(p *Piece, dest chess.Square) bool {
	if !b.owns(p) || !p.moves.Has(dest) || b.isKingAt(dest) {
		return false
	}
	r := b.relocate(p, dest, dest)
	defer b.undo(r)
	return !b.IsKingAttacked(p.Colour)
}

// tryEnPassant is TryMove for an en passant capture by pawn p.
func (b *Board) tryEnPassant(p *Piece) bool {
	if !b.CanEnPassant(p, b.enPassant) {
		return false
	}
	r := b.relocate(p, b.enPassant, chess.Sq(b.enPassant.File, p.Square.Rank))
	defer b.undo(r)
	return !b.IsKingAttacked(p.Colour)
}

// CommitMove moves p to dest and keeps the result if its own king is not
// left in check. A destination outside the piece's reachable set is
// rejected before anything is moved.
func (b *Board) CommitMove(p *Piece, dest chess.Square) (*chess.Move, error) {
	r, err := b.commit(p, dest, dest)
	if err != nil {
		return nil, err
	}
	return r.summary(), nil
}

func (b *Board) commit(p *Piece, dest, capturedAt chess.Square) (relocation, error) {
	if !b.owns(p) || !p.moves.Has(dest) || b.isKingAt(dest) {
		return relocation{}, errors.Wrapf(errors.ErrNoSuchMove, "%v to %v", p, dest)
	}
	r := b.relocate(p, dest, capturedAt)
	if b.IsKingAttacked(p.Colour) {
		b.undo(r)
		return relocation{}, errors.ErrMoveLeavesKingInDanger
	}
	return r, nil
}

// owns reports whether p is the piece standing on its square of this board.
func (b *Board) owns(p *Piece) bool {
	return p != nil && b.At(p.Square) == p
}

// isKingAt guards against capturing a king, which only a malformed setup
// could make reachable.
func (b *Board) isKingAt(sq chess.Square) bool {
	p := b.At(sq)
	return p != nil && p.Kind == chess.King
}

// CanEnPassant reports whether pawn p may capture en passant onto dest.
func (b *Board) CanEnPassant(p *Piece, dest chess.Square) bool {
	if !b.hasEnPassant || dest != b.enPassant || p == nil || p.Kind != chess.Pawn || !b.owns(p) {
		return false
	}
	forward := p.Colour.Forward()
	if dest.Rank != p.Square.Rank+forward || abs(dest.File-p.Square.File) != 1 {
		return false
	}
	victim := b.At(chess.Sq(dest.File, p.Square.Rank))
	return victim != nil && victim.Kind == chess.Pawn && victim.Colour != p.Colour
}

// LegalMoves returns the destinations p can move to without leaving its
// own king in check, including an en passant capture. Castling is not a
// destination of the king and is not included.
func (b *Board) LegalMoves(p *Piece) chess.SquareSet {
	var legal chess.SquareSet
	for _, sq := range p.moves.Squares() {
		if b.TryMove(p, sq) {
			legal = legal.Add(sq)
		}
	}
	if b.tryEnPassant(p) {
		legal = legal.Add(b.enPassant)
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// A legal castle always implies a legal king step, so castling is not probed.
func (b *Board) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range b.Pieces() {
		if p.Colour != colour {
			continue
		}
		for _, sq := range p.moves.Squares() {
			if b.TryMove(p, sq) {
				return true
			}
		}
		if b.tryEnPassant(p) {
			return true
		}
	}
	return false
}

// summary describes a committed relocation as an applied move. Callers
// override Class for special moves.
func (r relocation) summary() *chess.Move {
	class := chess.PieceMove
	if r.piece.Kind == chess.Pawn {
		class = chess.PawnMove
	}
	m := &chess.Move{
		Class:      class,
		Colour:     r.piece.Colour,
		Piece:      r.piece.Kind,
		From:       r.from,
		To:         r.to,
		CapturedAt: chess.NoSquare,
	}
	if r.captured != nil {
		m.Captured = r.captured.Kind
		m.CapturedAt = r.capturedAt
	}
	return m
}
