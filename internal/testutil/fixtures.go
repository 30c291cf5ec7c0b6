package testutil

import (
	"strings"
	"unicode"
)

// Positions used across the test suites, as FEN strings.
const (
	InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Both sides may castle either way with nothing in between.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// White to play exd6 en passant after 1...d7-d5.
	EnPassantFEN = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"

	// White pawn on a7 ready to promote.
	PromotionFEN = "7k/P7/8/8/8/8/8/4K3 w - - 0 1"

	// Black to move and stalemated.
	StalemateFEN = "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"
)

// Move sequences used across the test suites.
const (
	FoolsMate    = "1. f3 e5 2. g4 Qh4#"
	ScholarsMate = "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7#"
)

// Moves splits a move list into its move tokens, dropping move numbers
// such as "1." and "12...".
func Moves(list string) []string {
	var moves []string
	for _, tok := range strings.Fields(list) {
		if isMoveNumber(tok) {
			continue
		}
		moves = append(moves, tok)
	}
	return moves
}

func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
