package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Intent is a fully resolved move: the piece to move and what to do with it.
type Intent struct {
	// Text is the notation the intent was resolved from, if any.
	Text string

	Class     chess.MoveClass
	Piece     *Piece
	To        chess.Square
	Promotion chess.Piece
}

// Apply applies a resolved move to the board and updates the en passant
// memory. A rejected move leaves the board unchanged.
func (b *Board) Apply(in Intent) (*chess.Move, error) {
	if !b.owns(in.Piece) {
		return nil, errors.ErrNoCandidatePiece
	}

	var (
		move *chess.Move
		err  error
	)
	switch in.Class {
	case chess.KingsideCastle:
		move, err = b.applyCastle(in.Piece, chess.Kingside)
	case chess.QueensideCastle:
		move, err = b.applyCastle(in.Piece, chess.Queenside)
	case chess.EnPassantPawnMove:
		move, err = b.applyEnPassant(in.Piece, in.To)
	case chess.PawnMove, chess.PawnMoveWithPromotion:
		move, err = b.applyPawnMove(in.Piece, in.To, in.Promotion)
	case chess.PieceMove:
		move, err = b.applyPieceMove(in.Piece, in.To)
	default:
		err = errors.Wrapf(errors.ErrNoSuchMove, "unknown move class %v", in.Class)
	}
	if err != nil {
		return nil, err
	}
	move.Text = in.Text
	return move, nil
}

// applyPieceMove applies a move or capture by any piece but a pawn.
func (b *Board) applyPieceMove(p *Piece, to chess.Square) (*chess.Move, error) {
	if p.Kind == chess.Pawn {
		return b.applyPawnMove(p, to, chess.Empty)
	}
	r, err := b.commit(p, to, to)
	if err != nil {
		return nil, err
	}
	b.clearEnPassant()
	return r.summary(), nil
}
