package notation

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestSplitMoveList(t *testing.T) {
	tests := []struct {
		list string
		want []string
	}{
		{"", nil},
		{"e4", []string{"e4"}},
		{"1. e4 e5 2. Nf3", []string{"e4", "e5", "Nf3"}},
		{"1.e4 e5 2.Nf3 Nc6 1-0", []string{"e4", "e5", "Nf3", "Nc6"}},
		{"12... O-O 13. Rxd7 *", []string{"O-O", "Rxd7"}},
		{"1. f3 e5 2. g4 Qh4# 0-1", []string{"f3", "e5", "g4", "Qh4#"}},
		{"0-0-0 1/2-1/2", []string{"0-0-0"}},
	}
	for _, tt := range tests {
		t.Run(tt.list, func(t *testing.T) {
			testutil.AssertEqual(t, SplitMoveList(tt.list), tt.want)
		})
	}
}
