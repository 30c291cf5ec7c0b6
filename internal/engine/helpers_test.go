package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// squares builds a SquareSet from square names.
func squares(names ...string) chess.SquareSet {
	var set chess.SquareSet
	for _, n := range names {
		set = set.Add(chess.MustSquare(n))
	}
	return set
}

// boardFromFEN sets up a board or fails the test.
func boardFromFEN(t testing.TB, fen string) *Board {
	t.Helper()
	b, _, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return b
}

// intentFor builds an intent from coordinate notation such as "e2e4",
// "e1g1" for castling or "a7a8q" for promotion.
func intentFor(t testing.TB, b *Board, coord string) Intent {
	t.Helper()
	if len(coord) < 4 {
		t.Fatalf("bad coordinate move %q", coord)
	}
	from, to := chess.MustSquare(coord[:2]), chess.MustSquare(coord[2:4])
	p := b.At(from)
	if p == nil {
		t.Fatalf("no piece on %v for %q", from, coord)
	}

	in := Intent{Text: coord, Piece: p, To: to, Class: chess.PieceMove}
	switch {
	case p.Kind == chess.King && to.File-from.File == 2:
		in.Class = chess.KingsideCastle
	case p.Kind == chess.King && from.File-to.File == 2:
		in.Class = chess.QueensideCastle
	case p.Kind == chess.Pawn && from.File != to.File && b.At(to) == nil:
		in.Class = chess.EnPassantPawnMove
	case p.Kind == chess.Pawn && len(coord) == 5:
		in.Class = chess.PawnMoveWithPromotion
		in.Promotion = chess.PieceFromLetter(coord[4] - 'a' + 'A')
	case p.Kind == chess.Pawn:
		in.Class = chess.PawnMove
	}
	return in
}

// play applies each coordinate move in turn or fails the test.
func play(t testing.TB, b *Board, coords ...string) *chess.Move {
	t.Helper()
	var last *chess.Move
	for _, c := range coords {
		m, err := b.Apply(intentFor(t, b, c))
		if err != nil {
			t.Fatalf("Apply(%q) failed: %v", c, err)
		}
		last = m
	}
	return last
}
