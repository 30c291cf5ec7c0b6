package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, map[string]int{"a": 1}, map[string]int{"a": 1}, cmp.AllowUnexported())
	AssertNoError(t, nil)
	AssertContains(t, "hello world", "world")
	AssertTrue(t, true)
	AssertFalse(t, false, "flag %d", 1)

	wrapped := fmt.Errorf("outer: %w", errSentinel)
	AssertErrorIs(t, wrapped, errSentinel)
}

var errSentinel = fmt.Errorf("sentinel")

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []any{"simple"}, "simple"},
		{"format", []any{"value is %d", 42}, "value is 42"},
		{"non-string", []any{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestMoves(t *testing.T) {
	tests := []struct {
		list string
		want []string
	}{
		{"", nil},
		{FoolsMate, []string{"f3", "e5", "g4", "Qh4#"}},
		{"12... Nxe4 13. O-O", []string{"Nxe4", "O-O"}},
		{"e4 e5", []string{"e4", "e5"}},
	}
	for _, tt := range tests {
		AssertEqual(t, Moves(tt.list), tt.want)
	}
}
