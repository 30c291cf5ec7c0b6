package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the given colour is in check and has no way
// out of it.
//
// A king step to safety refutes mate. Otherwise, against a single checker,
// a capture of the checker or an interposition on a slider's check line
// refutes mate, provided the defending move is itself legal. Against a
// double check only the king can move, since no single capture or block
// deals with both checkers.
func (b *Board) IsCheckmate(colour chess.Colour) bool {
	if !b.IsKingAttacked(colour) {
		return false
	}

	king := b.King(colour)
	for _, sq := range king.moves.Squares() {
		if b.TryMove(king, sq) {
			return false
		}
	}

	checkers := b.Attackers(king.Square, colour.Opposite())
	if len(checkers) != 1 {
		return true
	}
	checker := checkers[0]

	for _, defender := range b.Pieces() {
		if defender.Colour != colour || defender.Kind == chess.King {
			continue
		}
		if defender.Threatens(checker.Square) && b.TryMove(defender, checker.Square) {
			return false
		}
		if checker.Kind.IsSlider() {
			for _, sq := range defender.moves.Squares() {
				if checker.checkLine.Has(sq) && b.TryMove(defender, sq) {
					return false
				}
			}
		}
		if checker.Kind == chess.Pawn && b.enPassantVictim() == checker && b.tryEnPassant(defender) {
			return false
		}
	}
	return true
}

// enPassantVictim returns the pawn that may be captured en passant, if any.
func (b *Board) enPassantVictim() *Piece {
	if !b.hasEnPassant {
		return nil
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if b.enPassant.Rank != colour.PawnRank()+colour.Forward() {
			continue
		}
		p := b.At(b.enPassant.Offset(0, colour.Forward()))
		if p != nil && p.Kind == chess.Pawn && p.Colour == colour {
			return p
		}
	}
	return nil
}

// IsStalemate returns true if the given colour is not in check but has no legal move.
func (b *Board) IsStalemate(colour chess.Colour) bool {
	return !b.IsKingAttacked(colour) && !b.HasLegalMoves(colour)
}

// Status classifies the position from the point of view of colour, the side to move.
func (b *Board) Status(colour chess.Colour) chess.CheckStatus {
	if b.IsKingAttacked(colour) {
		if b.IsCheckmate(colour) {
			return chess.Checkmate
		}
		return chess.Check
	}
	if !b.HasLegalMoves(colour) {
		return chess.Stalemate
	}
	return chess.NoCheck
}
