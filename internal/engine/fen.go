package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN sets up a board from a FEN string and returns it with the
// side to move. Only the placement field is required; the castling field
// decides which kings and rooks count as unmoved, and the en passant field
// is honoured when a pawn really stands beyond that square. Clock fields are
// accepted and ignored.
func NewBoardFromFEN(fen string) (*Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := newBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}
	if err := board.validate(); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	parseCastlingRights(board, parts)
	parseEnPassant(board, parts, toMove)
	board.recomputeAll()

	if board.IsKingAttacked(toMove.Opposite()) {
		return nil, chess.White, fmt.Errorf("%v is in check with %v to move: %w", toMove.Opposite(), toMove, errors.ErrInvalidFEN)
	}
	return board, toMove, nil
}

// MustBoardFromFEN is NewBoardFromFEN for fixtures known to be valid.
func MustBoardFromFEN(fen string) (*Board, chess.Colour) {
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board, toMove
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := chess.Empty
			if c <= unicode.MaxASCII {
				piece = ConvertFENCharToPiece(byte(c))
			}
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.put(&Piece{Kind: piece, Colour: colour, Square: chess.Sq(file, rank)})
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights marks every king and rook as moved except those the
// castling field keeps eligible. Without the field, pieces on their home
// squares are assumed unmoved.
func parseCastlingRights(board *Board, parts []string) {
	if len(parts) < 3 {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			markCastling(board, colour, chess.Kingside)
			markCastling(board, colour, chess.Queenside)
		}
		return
	}

	for _, p := range board.Pieces() {
		if p.Kind == chess.King || p.Kind == chess.Rook {
			p.HasMoved = true
		}
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			markCastling(board, chess.White, chess.Kingside)
		case 'Q':
			markCastling(board, chess.White, chess.Queenside)
		case 'k':
			markCastling(board, chess.Black, chess.Kingside)
		case 'q':
			markCastling(board, chess.Black, chess.Queenside)
		}
	}
}

// markCastling marks the king and rook for one castling right as unmoved,
// provided both stand on their home squares.
func markCastling(board *Board, colour chess.Colour, side chess.CastleSide) {
	home := colour.HomeRank()
	king := board.At(chess.Sq(4, home))
	rook := board.At(chess.Sq(castleRookFile(side), home))
	if king == nil || king.Kind != chess.King || king.Colour != colour {
		return
	}
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
		return
	}
	king.HasMoved = false
	rook.HasMoved = false
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *Board, parts []string, toMove chess.Colour) {
	if len(parts) < 4 || parts[3] == "-" {
		return
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return
	}
	mover := toMove.Opposite()
	if sq.Rank != mover.PawnRank()+mover.Forward() {
		return
	}
	if p := board.At(sq.Offset(0, mover.Forward())); p != nil && p.Kind == chess.Pawn && p.Colour == mover {
		board.setEnPassant(sq)
	}
}
