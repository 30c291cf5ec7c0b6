package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Files involved in castling on each side.
const (
	kingsideRookFile  = 7
	queensideRookFile = 0
	kingsideKingTo    = 6
	queensideKingTo   = 2
	kingsideRookTo    = 5
	queensideRookTo   = 3
)

// castleRookFile returns the file of the rook that castles on the given side.
func castleRookFile(side chess.CastleSide) int {
	if side == chess.Kingside {
		return kingsideRookFile
	}
	return queensideRookFile
}

// castleTransitFiles returns the files between king and rook that must be
// empty. All but the queenside knight file must also be unattacked.
func castleTransitFiles(side chess.CastleSide) []int {
	if side == chess.Kingside {
		return []int{5, 6}
	}
	return []int{1, 2, 3}
}

// CanCastle reports why the king of the given colour may not castle on
// side, or nil if it may.
func (b *Board) CanCastle(colour chess.Colour, side chess.CastleSide) error {
	_, err := b.castlingRook(b.King(colour), side)
	return err
}

// castlingRook checks every castling precondition and returns the rook.
func (b *Board) castlingRook(king *Piece, side chess.CastleSide) (*Piece, error) {
	if king == nil || king.Kind != chess.King {
		return nil, errors.ErrNoCandidatePiece
	}
	if king.HasMoved {
		return nil, errors.ErrCastleKingAlreadyMoved
	}
	if b.IsKingAttacked(king.Colour) {
		return nil, errors.Wrap(errors.ErrCastleBlockedOrAttacked, "king is in check")
	}

	rank := king.Square.Rank
	for _, file := range castleTransitFiles(side) {
		sq := chess.Sq(file, rank)
		if b.At(sq) != nil {
			return nil, errors.Wrapf(errors.ErrCastleBlockedOrAttacked, "%v is occupied", sq)
		}
		if side == chess.Queenside && file == 1 {
			continue
		}
		if b.IsSquareAttacked(sq, king.Colour.Opposite()) {
			return nil, errors.Wrapf(errors.ErrCastleBlockedOrAttacked, "%v is attacked", sq)
		}
	}

	rook := b.At(chess.Sq(castleRookFile(side), rank))
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
		return nil, errors.ErrCastleRookUnavailable
	}
	return rook, nil
}

// applyCastle moves the king two squares towards the rook and the rook to
// the square the king crossed.
func (b *Board) applyCastle(king *Piece, side chess.CastleSide) (*chess.Move, error) {
	rook, err := b.castlingRook(king, side)
	if err != nil {
		return nil, err
	}

	rank := king.Square.Rank
	kingTo, rookTo := chess.Sq(kingsideKingTo, rank), chess.Sq(kingsideRookTo, rank)
	if side == chess.Queenside {
		kingTo, rookTo = chess.Sq(queensideKingTo, rank), chess.Sq(queensideRookTo, rank)
	}

	kr := b.relocate(king, kingTo, kingTo)
	rr := b.relocate(rook, rookTo, rookTo)
	if b.IsKingAttacked(king.Colour) {
		b.undo(rr)
		b.undo(kr)
		return nil, errors.ErrMoveLeavesKingInDanger
	}
	b.clearEnPassant()

	move := kr.summary()
	move.Class = side.Class()
	return move, nil
}
