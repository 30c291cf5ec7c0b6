// Package notation reads short algebraic move notation and resolves it
// against a board to a concrete move.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Unset marks a file or rank that the notation did not give.
const Unset = -1

// Intent is a parsed move that has not yet been matched to a piece.
type Intent struct {
	// The move text as entered.
	Text string

	// Castling moves carry only the side; every other field is unused.
	Castle bool
	Side   chess.CastleSide

	// Kind of the piece to move, Pawn when no piece letter was given.
	Piece chess.Piece

	// Destination. File or Rank is Unset when the text did not name it,
	// and a rank digit outside 1..8 is kept as given so it can be rejected
	// as out of bounds.
	To chess.Square

	// Disambiguators taken from the source square, Unset when absent.
	FromFile int
	FromRank int

	// Piece to promote to, Empty when none was given.
	Promotion chess.Piece
}

// HasDisambiguator reports whether the notation named any part of the source square.
func (in Intent) HasDisambiguator() bool {
	return in.FromFile != Unset || in.FromRank != Unset
}

// isCol returns true if c is a file letter.
func isCol(c byte) bool {
	return c >= chess.ColBase && c < chess.ColBase+chess.BoardSize
}

// isDigit returns true if c is a decimal digit. Digits outside 1..8 are
// accepted here and rejected later as an out of bounds destination.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isCastlingChar returns true if c can spell a castling token.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isIgnored returns true for capture, check and promotion marks, which
// carry no information the board cannot supply.
func isIgnored(c byte) bool {
	return c == 'x' || c == '+' || c == '#' || c == '='
}

// parseCastling recognises "O-O", "O-O-O" and their zero-digit forms.
func parseCastling(text string) (chess.CastleSide, bool) {
	switch strings.TrimRight(text, "+#") {
	case "O-O", "0-0":
		return chess.Kingside, true
	case "O-O-O", "0-0-0":
		return chess.Queenside, true
	}
	return chess.Kingside, false
}

// Parse reads a move in short algebraic notation.
//
// An optional leading piece letter names the kind to move. The remaining
// characters are scanned left to right: the first file letter sets the
// destination file, and a second one turns the first into a source file
// disambiguator and becomes the destination file. Rank digits behave the
// same way. A piece letter after the destination is a promotion choice.
func Parse(text string) (Intent, error) {
	in := Intent{
		Text:     text,
		Piece:    chess.Pawn,
		To:       chess.NoSquare,
		FromFile: Unset,
		FromRank: Unset,
	}
	if text == "" {
		return in, errors.Wrap(errors.ErrInvalidNotation, "empty move")
	}

	if side, ok := parseCastling(text); ok {
		in.Castle, in.Side, in.Piece = true, side, chess.King
		return in, nil
	}
	if isCastlingChar(text[0]) && strings.Contains(text, "-") {
		return in, errors.Wrapf(errors.ErrInvalidNotation, "bad castling token %q", text)
	}

	pos := 0
	currentChar := func() byte {
		if pos >= len(text) {
			return 0
		}
		return text[pos]
	}
	advance := func() {
		if pos < len(text) {
			pos++
		}
	}

	if piece := chess.PieceFromLetter(currentChar()); piece != chess.Empty {
		in.Piece = piece
		advance()
	}

	files, ranks := 0, 0
	for ; pos < len(text); advance() {
		c := currentChar()
		switch {
		case isCol(c):
			files++
			if files > 2 {
				return in, errors.Wrapf(errors.ErrInvalidNotation, "too many files in %q", text)
			}
			if files == 2 {
				in.FromFile = in.To.File
			}
			in.To.File = int(c) - chess.ColBase
		case isDigit(c):
			ranks++
			if ranks > 2 {
				return in, errors.Wrapf(errors.ErrInvalidNotation, "too many ranks in %q", text)
			}
			if ranks == 2 {
				in.FromRank = in.To.Rank
			}
			in.To.Rank = int(c) - chess.RankBase
		case chess.PieceFromLetter(c) != chess.Empty:
			if in.Piece != chess.Pawn {
				return in, errors.Wrapf(errors.ErrInvalidNotation, "only pawns promote: %q", text)
			}
			promotion := chess.PieceFromLetter(c)
			if !promotion.IsPromotion() || in.Promotion != chess.Empty {
				return in, errors.Wrapf(errors.ErrInvalidNotation, "bad promotion in %q", text)
			}
			in.Promotion = promotion
		case isIgnored(c):
		default:
			return in, errors.Wrapf(errors.ErrInvalidNotation, "unexpected %q in %q", c, text)
		}
	}
	return in, nil
}
