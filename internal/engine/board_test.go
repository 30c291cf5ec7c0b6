package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()
	if n := len(b.Pieces()); n != 32 {
		t.Fatalf("len(Pieces()) = %d; want 32", n)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := b.King(colour)
		want := chess.Sq(4, colour.HomeRank())
		if king == nil || king.Square != want {
			t.Errorf("King(%v) = %v; want on %v", colour, king, want)
		}
		if n := len(b.PiecesOf(colour, chess.Pawn)); n != 8 {
			t.Errorf("len(PiecesOf(%v, Pawn)) = %d; want 8", colour, n)
		}
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("EnPassant() reported a target on the initial board")
	}
	if b.IsKingAttacked(chess.White) || b.IsKingAttacked(chess.Black) {
		t.Error("a king is attacked on the initial board")
	}
}

func TestBoard_MatchesFENSetup(t *testing.T) {
	fromFEN := boardFromFEN(t, InitialFEN)
	testutil.AssertEqual(t, fromFEN.Snapshot(), NewInitialBoard().Snapshot())
}

func TestTryMove_LeavesBoardUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		to    string
		legal bool
	}{
		{"quiet move", InitialFEN, "g1", "f3", true},
		{"pawn double step", InitialFEN, "e2", "e4", true},
		{"capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", true},
		{"pinned piece", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "e2", "c3", false},
		{"king into check", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1", "e2", false},
		{"king captures defended piece", "4k3/8/8/8/8/3r4/3r4/4K3 w - - 0 1", "e1", "d2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromFEN(t, tt.fen)
			before := b.Snapshot()

			got := b.TryMove(b.At(chess.MustSquare(tt.from)), chess.MustSquare(tt.to))
			if got != tt.legal {
				t.Errorf("TryMove(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.legal)
			}
			testutil.AssertEqual(t, b.Snapshot(), before)
		})
	}
}

func TestCommitMove_RejectedLeavesBoardUnchanged(t *testing.T) {
	b := boardFromFEN(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	before := b.Snapshot()

	_, err := b.CommitMove(b.At(chess.MustSquare("e2")), chess.MustSquare("c3"))
	testutil.AssertErrorIs(t, err, errors.ErrMoveLeavesKingInDanger)
	testutil.AssertEqual(t, b.Snapshot(), before)

	_, err = b.CommitMove(b.At(chess.MustSquare("e2")), chess.MustSquare("e4"))
	testutil.AssertErrorIs(t, err, errors.ErrNoSuchMove)
	testutil.AssertEqual(t, b.Snapshot(), before)
}

func TestCommitMove_Capture(t *testing.T) {
	b := boardFromFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	m, err := b.CommitMove(b.At(chess.MustSquare("e4")), chess.MustSquare("d5"))
	testutil.AssertNoError(t, err)

	if m.Captured != chess.Pawn || m.CapturedAt != chess.MustSquare("d5") {
		t.Errorf("CommitMove() captured %v at %v; want Pawn at d5", m.Captured, m.CapturedAt)
	}
	if n := len(b.PiecesOf(chess.Black, chess.Pawn)); n != 0 {
		t.Errorf("black pawns = %d; want 0", n)
	}
	if p := b.At(chess.MustSquare("d5")); p == nil || !p.HasMoved {
		t.Errorf("At(d5) = %v; want a moved white pawn", p)
	}
}

// Reach maintained move by move must equal reach computed from scratch.
func TestRecompute_MatchesFullRecompute(t *testing.T) {
	games := []struct {
		name   string
		fen    string
		coords []string
	}{
		{
			name:   "open game",
			fen:    InitialFEN,
			coords: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f8c5", "d2d4", "e5d4"},
		},
		{
			name:   "pawn fronts opened and closed",
			fen:    InitialFEN,
			coords: []string{"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5a5", "d2d4", "c7c6"},
		},
		{
			name:   "en passant and promotion",
			fen:    "4k3/1P6/8/8/5p2/8/4P3/4K3 w - - 0 1",
			coords: []string{"e2e4", "f4e3", "b7b8n", "e3e2"},
		},
		{
			name:   "castling both ways",
			fen:    testutil.CastlingFEN,
			coords: []string{"e1c1", "e8g8", "d2d4", "f8e8"},
		},
	}
	for _, g := range games {
		t.Run(g.name, func(t *testing.T) {
			b := boardFromFEN(t, g.fen)
			for _, c := range g.coords {
				play(t, b, c)
				got := b.Snapshot()
				b.recomputeAll()
				testutil.AssertEqual(t, got, b.Snapshot())
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	b := boardFromFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	s := b.Snapshot()
	if len(s.Pieces) != 3 {
		t.Fatalf("len(Snapshot().Pieces) = %d; want 3", len(s.Pieces))
	}
	rook := s.Pieces[1]
	if rook.Kind != chess.Rook || rook.Square != chess.MustSquare("h1") || rook.HasMoved {
		t.Errorf("Snapshot().Pieces[1] = %+v; want unmoved rook on h1", rook)
	}
	if s.HasEnPassant {
		t.Error("Snapshot().HasEnPassant = true; want false")
	}
}
