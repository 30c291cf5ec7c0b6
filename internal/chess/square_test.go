package chess

import (
	"testing"
)

func TestSquare_Valid(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(-1, 0), false},
		{Sq(0, 8), false},
		{NoSquare, false},
	}
	for _, tt := range tests {
		if got := tt.sq.Valid(); got != tt.want {
			t.Errorf("%#v.Valid() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name   string
		want   Square
		wantOK bool
	}{
		{"a1", Sq(0, 0), true},
		{"e4", Sq(4, 3), true},
		{"h8", Sq(7, 7), true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"e", NoSquare, false},
		{"", NoSquare, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSquare(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
			if ok && got.String() != tt.name {
				t.Errorf("String() = %q; want %q", got.String(), tt.name)
			}
		})
	}
}

func TestSquare_Offset(t *testing.T) {
	e4 := MustSquare("e4")
	if got := e4.Offset(1, 2); got != MustSquare("f6") {
		t.Errorf("e4.Offset(1, 2) = %v; want f6", got)
	}
	if got := MustSquare("h1").Offset(1, 0); got.Valid() {
		t.Errorf("h1.Offset(1, 0) = %v; want off-board", got)
	}
}

func TestSquareSet(t *testing.T) {
	s := SetOf(MustSquare("e4"), MustSquare("a1"), MustSquare("h8"), NoSquare)

	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d; want 3", got)
	}
	if !s.Has(MustSquare("e4")) {
		t.Error("Has(e4) = false; want true")
	}
	if s.Has(MustSquare("e5")) {
		t.Error("Has(e5) = true; want false")
	}
	if s.Has(NoSquare) {
		t.Error("Has(NoSquare) = true; want false")
	}
	if got := s.String(); got != "{a1 e4 h8}" {
		t.Errorf("String() = %q; want %q", got, "{a1 e4 h8}")
	}

	other := SetOf(MustSquare("h8"), MustSquare("b2"))
	if !s.Intersects(other) {
		t.Error("Intersects() = false; want true")
	}
	if s.Intersects(SetOf(MustSquare("b2"))) {
		t.Error("Intersects({b2}) = true; want false")
	}
	if got := s.Union(other).Len(); got != 4 {
		t.Errorf("Union().Len() = %d; want 4", got)
	}
	if !SquareSet(0).Empty() {
		t.Error("Empty() = false for zero set")
	}
}
