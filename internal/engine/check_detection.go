package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsKingAttacked returns true if the given colour's king is in check.
func (b *Board) IsKingAttacked(colour chess.Colour) bool {
	king := b.King(colour)
	if king == nil {
		return false
	}
	return b.IsSquareAttacked(king.Square, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour threatens sq.
func (b *Board) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	for _, p := range b.squares {
		if p != nil && p.Colour == byColour && p.Threatens(sq) {
			return true
		}
	}
	return false
}

// Attackers returns the pieces of byColour that threaten sq.
func (b *Board) Attackers(sq chess.Square, byColour chess.Colour) []*Piece {
	var attackers []*Piece
	for _, p := range b.squares {
		if p != nil && p.Colour == byColour && p.Threatens(sq) {
			attackers = append(attackers, p)
		}
	}
	return attackers
}
