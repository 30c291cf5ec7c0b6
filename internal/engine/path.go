package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// reacher computes a piece's reach from the current occupancy of the board.
type reacher func(board *Board, p *Piece) reach

// reachers is indexed by piece kind.
var reachers = [chess.NumPieceValues]reacher{
	chess.Pawn:   pawnReach,
	chess.Knight: knightReach,
	chess.Bishop: bishopReach,
	chess.Rook:   rookReach,
	chess.Queen:  queenReach,
	chess.King:   kingReach,
}

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs        = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	pawnCaptureDfs = []int{-1, 1}
)

// computeReach returns the reach of p on the board as it stands.
func computeReach(board *Board, p *Piece) reach {
	return reachers[p.Kind](board, p)
}

// tryAdd classifies sq for a knight, king or slider and reports whether
// the square is empty, i.e. whether a ray may continue past it.
func tryAdd(board *Board, p *Piece, r *reach, sq chess.Square) bool {
	occupant := board.At(sq)
	if occupant == nil {
		r.moves = r.moves.Add(sq)
		return true
	}
	if occupant.Colour != p.Colour {
		r.moves = r.moves.Add(sq)
	} else {
		r.blockers = r.blockers.Add(sq)
	}
	return false
}

func stepReach(board *Board, p *Piece, offsets [][2]int) reach {
	var r reach
	for _, off := range offsets {
		sq := p.Square.Offset(off[0], off[1])
		if sq.Valid() {
			tryAdd(board, p, &r, sq)
		}
	}
	return r
}

func knightReach(board *Board, p *Piece) reach {
	return stepReach(board, p, knightOffsets)
}

func kingReach(board *Board, p *Piece) reach {
	return stepReach(board, p, kingOffsets)
}

// slideReach walks each ray until it leaves the board or meets a piece.
func slideReach(board *Board, p *Piece, dirs [][2]int) reach {
	var r reach
	for _, dir := range dirs {
		var line chess.SquareSet
		for sq := p.Square.Offset(dir[0], dir[1]); sq.Valid(); sq = sq.Offset(dir[0], dir[1]) {
			line = line.Add(sq)
			if tryAdd(board, p, &r, sq) {
				continue
			}
			if stop := board.At(sq); stop.Kind == chess.King && stop.Colour != p.Colour {
				r.checkLine = line
			}
			break
		}
	}
	return r
}

func bishopReach(board *Board, p *Piece) reach {
	return slideReach(board, p, diagonalDirs)
}

func rookReach(board *Board, p *Piece) reach {
	return slideReach(board, p, straightDirs)
}

func queenReach(board *Board, p *Piece) reach {
	return slideReach(board, p, allDirs)
}

// pawnReach keeps forward moves and diagonal captures apart: a pawn only
// advances onto empty squares and only moves diagonally to capture.
func pawnReach(board *Board, p *Piece) reach {
	var r reach
	forward := p.Colour.Forward()

	advance := func(sq chess.Square) bool {
		if !sq.Valid() {
			return false
		}
		if board.At(sq) != nil {
			r.blockers = r.blockers.Add(sq)
			return false
		}
		r.moves = r.moves.Add(sq)
		return true
	}

	one := p.Square.Offset(0, forward)
	if advance(one) && p.Square.Rank == p.Colour.PawnRank() {
		advance(one.Offset(0, forward))
	}

	for _, df := range pawnCaptureDfs {
		diag := p.Square.Offset(df, forward)
		if !diag.Valid() {
			continue
		}
		r.captures = r.captures.Add(diag)
		occupant := board.At(diag)
		switch {
		case occupant == nil:
		case occupant.Colour != p.Colour:
			r.moves = r.moves.Add(diag)
		default:
			r.blockers = r.blockers.Add(diag)
		}
	}
	return r
}
