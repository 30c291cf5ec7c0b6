package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// writeGames writes each move list to its own file in a temporary
// directory and returns the paths.
func writeGames(t *testing.T, games ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(games))
	for i, moves := range games {
		paths[i] = filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(paths[i], []byte(moves+"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestCheck(t *testing.T) {
	paths := writeGames(t,
		testutil.FoolsMate+" 0-1",
		"1. e4 e5 2. Nf3 Nc6",
		"1. Nf3 e5 2. e4 Nc6 *",
	)
	got, err := run(t, "", append([]string{"check", "--workers", "2"}, paths...)...)
	testutil.AssertNoError(t, err)

	want := paths[0] + ": 0-1 in 4 plies\n" +
		paths[1] + ": * in 4 plies\n" +
		paths[2] + ": * in 4 plies, duplicate of " + paths[1] + "\n" +
		"3 games, 0 illegal, 1 duplicates\n"
	testutil.AssertEqual(t, got, want)
}

func TestCheck_MatchMoves(t *testing.T) {
	paths := writeGames(t, "1. e4 e5 2. Nf3 Nc6", "1. Nf3 e5 2. e4 Nc6")
	got, err := run(t, "", append([]string{"check", "--match", "moves"}, paths...)...)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, got, "2 games, 0 illegal, 0 duplicates\n")
}

func TestCheck_IllegalGame(t *testing.T) {
	paths := writeGames(t, "1. e4 e5", "1. e4 e5 2. Ke3")
	got, err := run(t, "", append([]string{"check"}, paths...)...)
	if err == nil {
		t.Fatal("check with an illegal game succeeded; want an error")
	}
	testutil.AssertContains(t, err.Error(), "1 of 2 games")
	testutil.AssertContains(t, got, paths[1]+": illegal after 2 plies: ply 3")
	testutil.AssertContains(t, got, "2 games, 1 illegal, 0 duplicates\n")
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no files", []string{"check"}},
		{"missing file", []string{"check", filepath.Join(t.TempDir(), "missing.txt")}},
		{"unknown match", []string{"check", "--match", "headers", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, "e4", tt.args...); err == nil {
				t.Errorf("%v succeeded; want an error", tt.args)
			}
		})
	}
}
