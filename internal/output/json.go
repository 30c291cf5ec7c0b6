package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`
}

// JSONMove represents an accepted move in JSON format. Text is the move as
// entered; the other fields describe what the rules engine made of it.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
	Long       string `json:"long"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Status     string `json:"status,omitempty"`
}

// MoveToJSON converts an accepted move to JSON form.
func MoveToJSON(s *game.Summary, moveNumber int) JSONMove {
	jm := JSONMove{
		Ply:        s.Ply,
		MoveNumber: moveNumber,
		Color:      strings.ToLower(s.Colour.String()),
		Text:       s.Text,
		Long:       s.LongAlgebraic(),
		From:       s.From.String(),
		To:         s.To.String(),
		Piece:      s.Piece.String(),
	}
	if s.Captured != chess.Empty {
		jm.Captured = s.Captured.String()
	}
	if s.Promoted != chess.Empty {
		jm.Promotion = s.Promoted.String()
	}
	if s.CheckStatus != chess.NoCheck {
		jm.Status = s.CheckStatus.String()
	}
	return jm
}

// JSONWriter buffers the moves of a game and writes the whole game as one
// JSON document on Close.
type JSONWriter struct {
	w          io.Writer
	g          *game.Game
	moves      []JSONMove
	moveNumber int
}

var _ GameWriter = (*JSONWriter)(nil)

// NewJSONWriter creates a JSON writer for g.
func NewJSONWriter(w io.Writer, g *game.Game) *JSONWriter {
	return &JSONWriter{w: w, g: g, moves: make([]JSONMove, 0), moveNumber: g.MoveNumber()}
}

// WriteMove buffers a move for JSON output.
func (jw *JSONWriter) WriteMove(s *game.Summary) error {
	jw.moves = append(jw.moves, MoveToJSON(s, jw.moveNumber))
	if s.Colour == chess.Black {
		jw.moveNumber++
	}
	return nil
}

// Flush is a no-op; the game is written as a whole on Close.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close writes the game.
func (jw *JSONWriter) Close() error {
	out := &JSONGame{
		InitialFEN: jw.g.StartFEN(),
		Moves:      jw.moves,
		PlyCount:   len(jw.moves),
		Result:     Result(jw.g),
		Status:     jw.g.Status().String(),
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
