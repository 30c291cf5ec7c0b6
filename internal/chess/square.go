package chess

import (
	"math/bits"
	"strings"
)

// Square is a coordinate on the board. File and Rank are zero based,
// so a1 is {0, 0} and h8 is {7, 7}.
type Square struct {
	File int
	Rank int
}

// NoSquare is an off-board sentinel square.
var NoSquare = Square{File: -1, Rank: -1}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// Index returns the 0..63 index of a valid square (a1=0, b1=1, ..., h8=63).
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// String returns the algebraic name of the square, or "-" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	sq := Square{File: int(name[0]) - ColBase, Rank: int(name[1]) - RankBase}
	if !sq.Valid() {
		return NoSquare, false
	}
	return sq, true
}

// MustSquare parses an algebraic square and panics on failure.
// It is intended for constants and test fixtures.
func MustSquare(name string) Square {
	sq, ok := ParseSquare(name)
	if !ok {
		panic("chess: invalid square " + name)
	}
	return sq
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

// SetOf builds a set from the given squares, ignoring off-board ones.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq.Index())
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	return s&(1<<uint(sq.Index())) != 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return s | o
}

// Intersects reports whether the sets share a square.
func (s SquareSet) Intersects(o SquareSet) bool {
	return s&o != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether the set has no squares.
func (s SquareSet) Empty() bool {
	return s == 0
}

// Squares returns the members in a1..h8 order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		idx := bits.TrailingZeros64(m)
		out = append(out, Square{File: idx % BoardSize, Rank: idx / BoardSize})
	}
	return out
}

// String lists the squares, e.g. "{e3 e4}".
func (s SquareSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sq := range s.Squares() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sq.String())
	}
	b.WriteByte('}')
	return b.String()
}
