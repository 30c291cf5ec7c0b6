package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing a game transcript as it is played.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteMove records one accepted move.
	WriteMove(s *game.Summary) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close writes the game result and any pending output.
	Close() error
}

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2",
// or "*" while the game is running.
func Result(g *game.Game) string {
	if winner, ok := g.Winner(); ok {
		if winner == chess.White {
			return "1-0"
		}
		return "0-1"
	}
	if g.Status() == chess.Stalemate {
		return "1/2-1/2"
	}
	return "*"
}

// lineWriter writes space separated tokens, wrapping lines that would
// exceed the maximum length.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

// write writes a token, adding a space or a line break before it as needed.
func (o *lineWriter) write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// newLine ends the current line.
func (o *lineWriter) newLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

func (o *lineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}

// TextWriter echoes the accepted moves as a numbered move list, e.g.
// "1. e4 e5 2. Nf3", followed by the result.
type TextWriter struct {
	g          *game.Game
	out        *lineWriter
	moveNumber int
}

var _ GameWriter = (*TextWriter)(nil)

// NewTextWriter creates a text writer for g. Lines are wrapped at maxLineLength
// characters, 80 when zero.
func NewTextWriter(w io.Writer, g *game.Game, maxLineLength int) *TextWriter {
	return &TextWriter{g: g, out: newLineWriter(w, maxLineLength), moveNumber: g.MoveNumber()}
}

// WriteMove writes the move, preceded by its number when White moved or
// when the list starts with a Black move.
func (tw *TextWriter) WriteMove(s *game.Summary) error {
	switch {
	case s.Colour == chess.White:
		tw.out.write(fmt.Sprintf("%d.", tw.moveNumber))
	case !tw.out.needsSpace:
		tw.out.write(fmt.Sprintf("%d...", tw.moveNumber))
	}
	tw.out.write(s.Text)
	if s.Colour == chess.Black {
		tw.moveNumber++
	}
	return tw.out.err
}

// Flush is a no-op; moves are written immediately.
func (tw *TextWriter) Flush() error {
	return tw.out.err
}

// Close writes the result and ends the line.
func (tw *TextWriter) Close() error {
	tw.out.write(Result(tw.g))
	tw.out.newLine()
	return tw.out.err
}
