// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// LastRank returns the rank index on which pawns of this colour promote.
func (c Colour) LastRank() int {
	return c.Opposite().HomeRank()
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// IsPromotion reports whether a pawn may promote to p.
func (p Piece) IsPromotion() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceFromLetter converts an uppercase SAN piece letter to a piece.
// Pawns have no letter in SAN, so 'P' is not accepted.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return Empty
	}
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "PawnMove"
	case PawnMoveWithPromotion:
		return "PawnMoveWithPromotion"
	case EnPassantPawnMove:
		return "EnPassantPawnMove"
	case PieceMove:
		return "PieceMove"
	case KingsideCastle:
		return "KingsideCastle"
	case QueensideCastle:
		return "QueensideCastle"
	}
	return "Unknown"
}

// CastleSide selects the wing a king castles towards.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// Class returns the move class for castling on this side.
func (s CastleSide) Class() MoveClass {
	if s == Kingside {
		return KingsideCastle
	}
	return QueensideCastle
}

// CheckStatus describes the position of the side to move after a move.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a check status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "NoCheck"
}

// Terminal reports whether the status ends the game.
func (s CheckStatus) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)
