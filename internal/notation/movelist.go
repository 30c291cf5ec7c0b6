package notation

import "strings"

// results are the game termination markers a move list may end with.
var results = map[string]bool{"1-0": true, "0-1": true, "1/2-1/2": true, "*": true}

// SplitMoveList splits a written game such as "1. e4 e5 2. Nf3 Nc6 1-0"
// into its moves. Move numbers ("1.", "12...") and result markers are
// dropped, and a number written against its move ("1.e4") is removed.
func SplitMoveList(list string) []string {
	var moves []string
	for _, tok := range strings.Fields(list) {
		if results[tok] {
			continue
		}
		tok = stripMoveNumber(tok)
		if tok != "" {
			moves = append(moves, tok)
		}
	}
	return moves
}

// stripMoveNumber removes a leading "N." or "N..." from tok.
func stripMoveNumber(tok string) string {
	i := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	if i == 0 || i == len(tok) || tok[i] != '.' {
		return tok
	}
	return strings.TrimLeft(tok[i:], ".")
}
