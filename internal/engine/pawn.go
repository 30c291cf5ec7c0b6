package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// applyPawnMove applies a pawn advance or capture, promoting when the pawn
// lands on the last rank.
func (b *Board) applyPawnMove(p *Piece, to chess.Square, promotion chess.Piece) (*chess.Move, error) {
	if p.Kind != chess.Pawn {
		return b.applyPieceMove(p, to)
	}

	promoting := to.Rank == p.Colour.LastRank()
	switch {
	case promoting && promotion == chess.Empty:
		return nil, errors.ErrMissingPromotionChoice
	case promoting && !promotion.IsPromotion():
		return nil, errors.Wrapf(errors.ErrInvalidNotation, "cannot promote to %v", promotion)
	case !promoting && promotion != chess.Empty:
		return nil, errors.Wrapf(errors.ErrInvalidNotation, "promotion only on rank %d", p.Colour.LastRank()+1)
	}

	r, err := b.commit(p, to, to)
	if err != nil {
		return nil, err
	}
	move := r.summary()

	// A double advance leaves the skipped square open to en passant for one ply.
	if abs(to.Rank-r.from.Rank) == 2 {
		b.setEnPassant(r.from.Offset(0, p.Colour.Forward()))
	} else {
		b.clearEnPassant()
	}

	if promoting {
		b.replace(p, promotion)
		move.Class = chess.PawnMoveWithPromotion
		move.Promoted = promotion
	}
	return move, nil
}

// applyEnPassant captures the pawn that has just advanced two squares past p.
// The captured pawn is removed from its own square, not from the destination.
func (b *Board) applyEnPassant(p *Piece, to chess.Square) (*chess.Move, error) {
	if !b.CanEnPassant(p, to) {
		return nil, errors.ErrNoEnPassantOpportunity
	}

	r := b.relocate(p, to, chess.Sq(to.File, p.Square.Rank))
	if b.IsKingAttacked(p.Colour) {
		b.undo(r)
		return nil, errors.ErrMoveLeavesKingInDanger
	}
	b.clearEnPassant()

	move := r.summary()
	move.Class = chess.EnPassantPawnMove
	return move, nil
}
