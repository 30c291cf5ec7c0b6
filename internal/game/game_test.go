package game

import (
	stderrors "errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/stats"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// playAll plays every move of list and fails on the first rejection.
func playAll(t *testing.T, g *Game, list string) []*Summary {
	t.Helper()
	var out []*Summary
	for _, text := range testutil.Moves(list) {
		s, err := g.Play(text)
		if err != nil {
			t.Fatalf("Play(%q) error = %v", text, err)
		}
		out = append(out, s)
	}
	return out
}

func newGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(opts...)
	testutil.AssertNoError(t, err)
	return g
}

func TestNew_Defaults(t *testing.T) {
	g := newGame(t)
	if g.ToMove() != chess.White {
		t.Errorf("ToMove() = %v; want White", g.ToMove())
	}
	if g.Ply() != 0 {
		t.Errorf("Ply() = %d; want 0", g.Ply())
	}
	if g.Status() != chess.NoCheck || g.Over() {
		t.Errorf("Status() = %v, Over() = %v; want NoCheck, false", g.Status(), g.Over())
	}
	if n := len(g.Board().Pieces()); n != 32 {
		t.Errorf("len(Board().Pieces()) = %d; want 32", n)
	}
	if n := g.LegalMoveCount(); n != 20 {
		t.Errorf("LegalMoveCount() = %d; want 20", n)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(WithFEN("not a fen"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

	_, err = New(WithParseCache(0))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNew_FromFEN(t *testing.T) {
	g := newGame(t, WithFEN(testutil.StalemateFEN))
	if g.ToMove() != chess.Black || g.Status() != chess.Stalemate {
		t.Errorf("ToMove(), Status() = %v, %v; want Black, Stalemate", g.ToMove(), g.Status())
	}
	_, err := g.Play("Kb8")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestGame_Opening(t *testing.T) {
	g := newGame(t)
	summaries := playAll(t, g, "1. e4 e5 2. Nf3")

	want := []string{"e2-e4", "e7-e5", "Ng1-f3"}
	for i, s := range summaries {
		if got := s.LongAlgebraic(); got != want[i] {
			t.Errorf("move %d = %s; want %s", i+1, got, want[i])
		}
		if s.Ply != i+1 {
			t.Errorf("move %d Ply = %d; want %d", i+1, s.Ply, i+1)
		}
		if s.Pieces != 32 || s.CheckStatus != chess.NoCheck {
			t.Errorf("move %d Pieces, CheckStatus = %d, %v; want 32, NoCheck", i+1, s.Pieces, s.CheckStatus)
		}
	}
	if g.ToMove() != chess.Black {
		t.Errorf("ToMove() = %v; want Black", g.ToMove())
	}
	if got := len(g.History()); got != 3 {
		t.Errorf("len(History()) = %d; want 3", got)
	}
	if g.MoveNumber() != 2 {
		t.Errorf("MoveNumber() = %d; want 2", g.MoveNumber())
	}
	if g.StartFEN() != testutil.InitialFEN {
		t.Errorf("StartFEN() = %q; want the initial position", g.StartFEN())
	}
}

func TestGame_Checkmates(t *testing.T) {
	tests := []struct {
		name   string
		moves  string
		winner chess.Colour
	}{
		{"fool's mate", testutil.FoolsMate, chess.Black},
		{"scholar's mate", testutil.ScholarsMate, chess.White},
		{
			"opera game",
			"1. e4 e5 2. Nf3 d6 3. d4 Bg4 4. dxe5 Bxf3 5. Qxf3 dxe5 6. Bc4 Nf6 7. Qb3 Qe7 " +
				"8. Nc3 c6 9. Bg5 b5 10. Nxb5 cxb5 11. Bxb5+ Nbd7 12. O-O-O Rd8 13. Rxd7 Rxd7 " +
				"14. Rd1 Qe6 15. Bxd7+ Nxd7 16. Qb8+ Nxb8 17. Rd8#",
			chess.White,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t)
			moves := testutil.Moves(tt.moves)
			summaries := playAll(t, g, tt.moves)

			last := summaries[len(summaries)-1]
			if last.CheckStatus != chess.Checkmate {
				t.Errorf("last move CheckStatus = %v; want Checkmate", last.CheckStatus)
			}
			if prev := summaries[len(summaries)-2]; prev.CheckStatus == chess.Checkmate {
				t.Errorf("move %q already reported checkmate", moves[len(moves)-2])
			}
			if !g.Over() {
				t.Error("Over() = false after checkmate")
			}
			winner, ok := g.Winner()
			if !ok || winner != tt.winner {
				t.Errorf("Winner() = %v, %v; want %v, true", winner, ok, tt.winner)
			}

			_, err := g.Play("a3")
			testutil.AssertErrorIs(t, err, errors.ErrGameOver)
		})
	}
}

func TestGame_Stalemate(t *testing.T) {
	g := newGame(t, WithFEN("k7/8/1K6/8/8/8/8/2Q5 w - - 0 1"))
	s, err := g.Play("Qc7")
	testutil.AssertNoError(t, err)

	if s.CheckStatus != chess.Stalemate || !g.Over() {
		t.Errorf("CheckStatus, Over() = %v, %v; want Stalemate, true", s.CheckStatus, g.Over())
	}
	if _, ok := g.Winner(); ok {
		t.Error("Winner() reported a winner after stalemate")
	}
}

func TestGame_Check(t *testing.T) {
	g := newGame(t)
	summaries := playAll(t, g, "1. e4 f5 2. Qh5+")
	if got := summaries[2].CheckStatus; got != chess.Check {
		t.Errorf("Qh5+ CheckStatus = %v; want Check", got)
	}
	if g.Status() != chess.Check || g.Over() {
		t.Errorf("Status(), Over() = %v, %v; want Check, false", g.Status(), g.Over())
	}

	_, err := g.Play("a6")
	testutil.AssertErrorIs(t, err, errors.ErrMoveLeavesKingInDanger)
	_, err = g.Play("g6")
	testutil.AssertNoError(t, err)
}

func TestGame_NotYourTurn(t *testing.T) {
	g := newGame(t)
	_, err := g.ResolveAndValidate("e5", chess.Black)
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)

	_, err = g.ResolveAndValidate("e4", chess.White)
	testutil.AssertNoError(t, err)
	_, err = g.ResolveAndValidate("d4", chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)
}

func TestGame_RejectionContext(t *testing.T) {
	g := newGame(t)
	playAll(t, g, "1. e4 e5")

	before := g.Board().Snapshot()
	_, err := g.Play("Nd2")

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("Play(Nd2) error = %T; want *errors.MoveError", err)
	}
	if moveErr.Notation != "Nd2" || moveErr.Colour != "White" || moveErr.Ply != 3 {
		t.Errorf("MoveError = {%q, %q, %d}; want {\"Nd2\", \"White\", 3}", moveErr.Notation, moveErr.Colour, moveErr.Ply)
	}
	testutil.AssertErrorIs(t, err, errors.ErrDestinationUnreachable)
	testutil.AssertTrue(t, errors.IsRuleViolation(err))

	testutil.AssertEqual(t, g.Board().Snapshot(), before)
	if g.Ply() != 2 || g.ToMove() != chess.White {
		t.Errorf("Ply(), ToMove() = %d, %v; want 2, White", g.Ply(), g.ToMove())
	}
}

func TestGame_RuleErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want error
	}{
		{"invalid notation", testutil.InitialFEN, "Zz9", errors.ErrInvalidNotation},
		{"no candidate", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "Qd4", errors.ErrNoCandidatePiece},
		{"ambiguous", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nd2", errors.ErrAmbiguousMove},
		{"out of bounds", testutil.InitialFEN, "e9", errors.ErrDestinationOutOfBounds},
		{"missing promotion", testutil.PromotionFEN, "a8", errors.ErrMissingPromotionChoice},
		{"castle blocked", testutil.InitialFEN, "O-O", errors.ErrCastleBlockedOrAttacked},
		{"castle without rook", "4k3/8/8/8/8/8/8/4K3 w", "O-O-O", errors.ErrCastleRookUnavailable},
		{"castling right lost", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "O-O", errors.ErrCastleKingAlreadyMoved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, WithFEN(tt.fen))
			_, err := g.Play(tt.text)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestGame_SpecialMoves(t *testing.T) {
	g := newGame(t)
	summaries := playAll(t, g, "1. e4 Nf6 2. e5 d5 3. exd6 e6 4. dxc7 Qxc7 5. Nf3 Bd6 6. Be2 O-O 7. O-O")

	ep := summaries[4]
	if ep.Class != chess.EnPassantPawnMove || ep.CapturedAt != chess.MustSquare("d5") {
		t.Errorf("exd6 = %v capturing on %v; want en passant on d5", ep.Class, ep.CapturedAt)
	}
	if got := summaries[len(summaries)-1].Class; got != chess.KingsideCastle {
		t.Errorf("O-O Class = %v; want KingsideCastle", got)
	}
	if p := g.Board().At(chess.MustSquare("g1")); p == nil || p.Kind != chess.King {
		t.Errorf("g1 = %v; want the white king", p)
	}
	if p := g.Board().At(chess.MustSquare("f8")); p == nil || p.Kind != chess.Rook {
		t.Errorf("f8 = %v; want the black rook", p)
	}
}

func TestGame_Promotion(t *testing.T) {
	g := newGame(t)
	summaries := playAll(t, g, "1. e4 d5 2. exd5 c6 3. dxc6 Nf6 4. cxb7 Nbd7 5. bxa8=Q")

	last := summaries[len(summaries)-1]
	if last.Promoted != chess.Queen || last.Captured != chess.Rook {
		t.Errorf("bxa8=Q Promoted, Captured = %v, %v; want Queen, Rook", last.Promoted, last.Captured)
	}
	if p := g.Board().At(chess.MustSquare("a8")); p == nil || p.Kind != chess.Queen || p.Colour != chess.White {
		t.Errorf("a8 = %v; want a white queen", p)
	}
}

func TestGame_Stats(t *testing.T) {
	mem := stats.NewMemory()
	g := newGame(t, WithStats(mem))

	playAll(t, g, "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6")
	_, _ = g.Play("Ke3")
	playAll(t, g, "4. Qxf7#")

	checks := []struct {
		name string
		got  int64
		want int64
	}{
		{stats.MetricMovesApplied, mem.Counter(stats.MetricMovesApplied), 7},
		{stats.MetricMovesRejected, mem.Counter(stats.MetricMovesRejected), 1},
		{stats.MetricChecks, mem.Counter(stats.MetricChecks), 1},
		{stats.MetricGamesFinished, mem.Counter(stats.MetricGamesFinished), 1},
		{stats.MetricPiecesOnBoard, mem.Gauge(stats.MetricPiecesOnBoard), 31},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d; want %d", c.name, c.got, c.want)
		}
	}
	if got := mem.Observations(stats.MetricResolveTime); got != 8 {
		t.Errorf("%s observations = %d; want 8", stats.MetricResolveTime, got)
	}
}

func TestGame_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := newGame(t, WithLogger(zap.New(core)))

	playAll(t, g, testutil.FoolsMate)

	if n := logs.FilterMessage("move applied").Len(); n != 4 {
		t.Errorf("%d \"move applied\" entries; want 4", n)
	}
	over := logs.FilterMessage("game over").All()
	if len(over) != 1 {
		t.Fatalf("%d \"game over\" entries; want 1", len(over))
	}
	if over[0].Level != zapcore.InfoLevel {
		t.Errorf("game over level = %v; want info", over[0].Level)
	}
	if got := over[0].ContextMap()["result"]; got != "Checkmate" {
		t.Errorf("game over result = %v; want Checkmate", got)
	}
}

func TestFactory(t *testing.T) {
	mem := stats.NewMemory()
	f, err := NewFactory(WithStats(mem))
	testutil.AssertNoError(t, err)

	first, err := f.New()
	testutil.AssertNoError(t, err)
	second, err := f.New(WithFEN(testutil.PromotionFEN))
	testutil.AssertNoError(t, err)

	playAll(t, first, "1. e4")
	playAll(t, second, "1. a8=Q+")

	if f.Games() != 2 {
		t.Errorf("Games() = %d; want 2", f.Games())
	}
	if got := mem.Counter(stats.MetricMovesApplied); got != 2 {
		t.Errorf("shared %s = %d; want 2", stats.MetricMovesApplied, got)
	}
	if first.cache != second.cache {
		t.Error("games from one factory do not share the parse cache")
	}

	_, err = NewFactory(WithParseCache(-1))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
