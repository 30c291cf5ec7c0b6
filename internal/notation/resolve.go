package notation

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Resolve matches a parsed move to the single piece of the given colour that
// can make it.
//
// Checks run in a fixed order: a pawn reaching the last rank must name its
// promotion; an en passant capture is recognised before any other filtering;
// then the candidates of the named kind are narrowed by the disambiguators,
// the destination must be on the board, at least one candidate must reach it
// and exactly one may remain.
func Resolve(board *engine.Board, in Intent, colour chess.Colour) (engine.Intent, error) {
	if in.Castle {
		king := board.King(colour)
		if king == nil {
			return engine.Intent{}, errors.ErrNoCandidatePiece
		}
		return engine.Intent{Text: in.Text, Class: in.Side.Class(), Piece: king, To: king.Square}, nil
	}

	if err := checkPromotion(in, colour); err != nil {
		return engine.Intent{}, err
	}

	candidates := filterCandidates(board.PiecesOf(colour, in.Piece), in)

	if in.Piece == chess.Pawn {
		pawn, err := enPassantCandidate(board, candidates, in.To)
		if err != nil {
			return engine.Intent{}, err
		}
		if pawn != nil {
			return engine.Intent{Text: in.Text, Class: chess.EnPassantPawnMove, Piece: pawn, To: in.To}, nil
		}
	}

	if len(candidates) == 0 {
		return engine.Intent{}, errors.Wrapf(errors.ErrNoCandidatePiece, "no %v %v for %q", colour, in.Piece, in.Text)
	}
	if !in.To.Valid() {
		return engine.Intent{}, errors.ErrDestinationOutOfBounds
	}

	var reaching []*engine.Piece
	for _, p := range candidates {
		if p.Moves().Has(in.To) {
			reaching = append(reaching, p)
		}
	}
	switch len(reaching) {
	case 0:
		return engine.Intent{}, errors.Wrapf(errors.ErrDestinationUnreachable, "%v", in.To)
	case 1:
	default:
		return engine.Intent{}, errors.Wrapf(errors.ErrAmbiguousMove, "%d pieces reach %v", len(reaching), in.To)
	}

	out := engine.Intent{Text: in.Text, Class: chess.PieceMove, Piece: reaching[0], To: in.To}
	if in.Piece == chess.Pawn {
		out.Class = chess.PawnMove
		if in.Promotion != chess.Empty {
			out.Class = chess.PawnMoveWithPromotion
			out.Promotion = in.Promotion
		}
	}
	return out, nil
}

// checkPromotion rejects a pawn move to the last rank without a promotion
// choice, and a promotion choice on any other rank.
func checkPromotion(in Intent, colour chess.Colour) error {
	if in.Piece != chess.Pawn {
		return nil
	}
	lastRank := in.To.Rank == colour.LastRank()
	switch {
	case lastRank && in.Promotion == chess.Empty:
		return errors.ErrMissingPromotionChoice
	case !lastRank && in.Promotion != chess.Empty:
		return errors.Wrapf(errors.ErrInvalidNotation, "%q promotes off the last rank", in.Text)
	}
	return nil
}

// filterCandidates keeps the pieces standing on the disambiguating file and rank.
func filterCandidates(pieces []*engine.Piece, in Intent) []*engine.Piece {
	var out []*engine.Piece
	for _, p := range pieces {
		if in.FromFile != Unset && p.Square.File != in.FromFile {
			continue
		}
		if in.FromRank != Unset && p.Square.Rank != in.FromRank {
			continue
		}
		out = append(out, p)
	}
	return out
}

// enPassantCandidate returns the pawn that captures en passant onto dest.
// Two pawns able to make the capture are reported as ambiguous.
func enPassantCandidate(board *engine.Board, pawns []*engine.Piece, dest chess.Square) (*engine.Piece, error) {
	var found []*engine.Piece
	for _, p := range pawns {
		if board.CanEnPassant(p, dest) {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrAmbiguousMove, "%d pawns capture en passant on %v", len(found), dest)
	}
}
