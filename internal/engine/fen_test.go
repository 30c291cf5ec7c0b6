package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		toMove  chess.Colour
		checkFn func(*Board) bool
	}{
		{
			name:   "initial position",
			fen:    InitialFEN,
			toMove: chess.White,
			checkFn: func(b *Board) bool {
				king := b.At(chess.MustSquare("e1"))
				return king == b.King(chess.White) &&
					!king.HasMoved &&
					b.At(chess.MustSquare("e8")) == b.King(chess.Black) &&
					len(b.Pieces()) == 32
			},
		},
		{
			name:   "after 1.e4",
			fen:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			toMove: chess.Black,
			checkFn: func(b *Board) bool {
				sq, ok := b.EnPassant()
				return ok && sq == chess.MustSquare("e3") && b.At(chess.MustSquare("e2")) == nil
			},
		},
		{
			name:   "en passant square without a pawn beyond it",
			fen:    "4k3/8/8/8/8/8/4P3/4K3 b - e3 0 1",
			toMove: chess.Black,
			checkFn: func(b *Board) bool {
				_, ok := b.EnPassant()
				return !ok
			},
		},
		{
			name:   "no castling rights",
			fen:    "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			toMove: chess.White,
			checkFn: func(b *Board) bool {
				for _, p := range b.Pieces() {
					if (p.Kind == chess.King || p.Kind == chess.Rook) && !p.HasMoved {
						return false
					}
				}
				return true
			},
		},
		{
			name:   "one castling right",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w q - 0 1",
			toMove: chess.White,
			checkFn: func(b *Board) bool {
				return b.King(chess.White).HasMoved &&
					!b.King(chess.Black).HasMoved &&
					!b.At(chess.MustSquare("a8")).HasMoved &&
					b.At(chess.MustSquare("h8")).HasMoved
			},
		},
		{
			name:   "placement only",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R",
			toMove: chess.White,
			checkFn: func(b *Board) bool {
				return !b.King(chess.White).HasMoved && !b.At(chess.MustSquare("h8")).HasMoved
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			if toMove != tt.toMove {
				t.Errorf("NewBoardFromFEN() to move = %v; want %v", toMove, tt.toMove)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too long", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"non-ASCII letter ending in a piece byte", "4\u014b3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"pawn on the back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestConvertFENCharToPiece(t *testing.T) {
	tests := []struct {
		c    byte
		want chess.Piece
	}{
		{'K', chess.King}, {'q', chess.Queen}, {'R', chess.Rook},
		{'n', chess.Knight}, {'B', chess.Bishop}, {'p', chess.Pawn},
		{'x', chess.Empty},
	}
	for _, tt := range tests {
		if got := ConvertFENCharToPiece(tt.c); got != tt.want {
			t.Errorf("ConvertFENCharToPiece(%q) = %v; want %v", tt.c, got, tt.want)
		}
	}
}
