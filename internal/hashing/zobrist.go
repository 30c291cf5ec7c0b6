package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys, generated once from a fixed seed so that hashes are stable
// between runs.
var (
	pieceKeys     [2][chess.NumPieceValues][numSquares]uint64
	castlingKeys  [2][2]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	r := rand.New(rand.NewSource(5))
	next := func() uint64 { return uint64(r.Int63())<<32 ^ uint64(r.Int63()) }

	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = next()
			}
		}
	}
	for colour := range castlingKeys {
		for side := range castlingKeys[colour] {
			castlingKeys[colour][side] = next()
		}
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = next()
	}
	blackToMove = next()
}

// Hash returns the Zobrist hash of the position: piece placement, the side
// to move, the castling rights still held and the en passant file.
func Hash(board *engine.Board, toMove chess.Colour) uint64 {
	if board == nil {
		return 0
	}

	var hash uint64
	for _, p := range board.Pieces() {
		hash ^= pieceKeys[p.Colour][p.Kind][p.Square.Index()]
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if hasCastlingRight(board, colour, side) {
				hash ^= castlingKeys[colour][side]
			}
		}
	}
	if sq, ok := board.EnPassant(); ok {
		hash ^= enPassantKeys[sq.File]
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// hasCastlingRight reports whether the king and the rook for side are both
// unmoved on their home squares.
func hasCastlingRight(board *engine.Board, colour chess.Colour, side chess.CastleSide) bool {
	king := board.King(colour)
	if king == nil || king.HasMoved || king.Square != chess.Sq(4, colour.HomeRank()) {
		return false
	}
	rookFile := chess.BoardSize - 1
	if side == chess.Queenside {
		rookFile = 0
	}
	rook := board.At(chess.Sq(rookFile, colour.HomeRank()))
	return rook != nil && rook.Kind == chess.Rook && rook.Colour == colour && !rook.HasMoved
}
