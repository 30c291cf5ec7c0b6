package chess

import "strings"

// Move is the summary of a move that has been applied to a board.
type Move struct {
	// The move text as entered (e.g., "Nf3", "e4", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Side that made the move.
	Colour Colour

	// The piece being moved.
	Piece Piece

	// Source and destination squares. For castling these are the king's squares.
	From Square
	To   Square

	// The piece captured (Empty if no capture) and the square it stood on,
	// which differs from To only for en passant.
	Captured   Piece
	CapturedAt Square

	// The piece promoted to (Empty if not a promotion).
	Promoted Piece

	// Status of the opponent after this move.
	CheckStatus CheckStatus
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// LongAlgebraic describes the move with explicit squares, e.g. "Ng1-f3",
// "e5xd6 e.p." or "e7-e8=Q". It is used for logs and the CLI transcript.
func (m *Move) LongAlgebraic() string {
	switch m.Class {
	case KingsideCastle:
		return Kingside.String()
	case QueensideCastle:
		return Queenside.String()
	}

	var b strings.Builder
	if m.Piece != Pawn {
		b.WriteByte(m.Piece.Letter())
	}
	b.WriteString(m.From.String())
	if m.IsCapture() {
		b.WriteByte('x')
	} else {
		b.WriteByte('-')
	}
	b.WriteString(m.To.String())
	if m.Promoted != Empty {
		b.WriteByte('=')
		b.WriteByte(m.Promoted.Letter())
	}
	if m.Class == EnPassantPawnMove {
		b.WriteString(" e.p.")
	}
	switch m.CheckStatus {
	case Check:
		b.WriteByte('+')
	case Checkmate:
		b.WriteByte('#')
	}
	return b.String()
}
