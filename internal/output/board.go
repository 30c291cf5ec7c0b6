// Package output renders boards and writes game transcripts.
package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const (
	rankSeparator = "  +---+---+---+---+---+---+---+---+\n"
	fileLabels    = "    a   b   c   d   e   f   g   h\n"
)

// renderOptions controls board rendering.
type renderOptions struct {
	rankLabelsFromOne bool
}

// RenderOption configures RenderBoard.
type RenderOption func(*renderOptions)

// WithRankLabelsFromOne labels ranks 8 down to 1 when true, or 7 down to 0
// when false. Default is true.
func WithRankLabelsFromOne(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.rankLabelsFromOne = enabled
	}
}

// RenderBoard draws the board as text with rank 8 at the top. White pieces
// are uppercase letters, Black pieces lowercase, and empty squares blank.
func RenderBoard(board *engine.Board, opts ...RenderOption) string {
	o := renderOptions{rankLabelsFromOne: true}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString(rankSeparator)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		label := byte('0' + rank)
		if o.rankLabelsFromOne {
			label++
		}
		sb.WriteByte(label)
		sb.WriteString(" |")
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(pieceChar(board.At(chess.Sq(file, rank))))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
		sb.WriteString(rankSeparator)
	}
	sb.WriteString(fileLabels)
	return sb.String()
}

// pieceChar returns the letter shown for p.
func pieceChar(p *engine.Piece) byte {
	if p == nil {
		return ' '
	}
	c := p.Kind.Letter()
	if p.Colour == chess.Black {
		c += 'a' - 'A'
	}
	return c
}
