// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the rule violations a move can be rejected with and a structured
// wrapper that preserves the move context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rejected moves.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoCandidatePiece indicates no piece of the named kind can make the move.
	ErrNoCandidatePiece = errors.New("the piece you want to move does not exist")

	// ErrAmbiguousMove indicates two or more pieces match the move.
	ErrAmbiguousMove = errors.New("two or more pieces can't be disambiguated")

	// ErrDestinationOutOfBounds indicates a destination off the board or missing.
	ErrDestinationOutOfBounds = errors.New("the destination square is out of bounds or unspecified")

	// ErrDestinationUnreachable indicates no candidate piece reaches the destination.
	ErrDestinationUnreachable = errors.New("the destination square cannot be reached")

	// ErrMissingPromotionChoice indicates a pawn reaching the last rank without a promotion piece.
	ErrMissingPromotionChoice = errors.New("no promotion piece for the pawn was specified")

	// ErrMoveLeavesKingInDanger indicates the move would leave the mover's king in check.
	ErrMoveLeavesKingInDanger = errors.New("the move would leave the king in check")

	// ErrCastleBlockedOrAttacked indicates occupied or attacked squares prevent castling.
	ErrCastleBlockedOrAttacked = errors.New("cannot castle, the squares between are not clear or are attacked")

	// ErrCastleKingAlreadyMoved indicates the king has moved before.
	ErrCastleKingAlreadyMoved = errors.New("cannot castle, the king has already moved")

	// ErrCastleRookUnavailable indicates the castling rook is missing or has moved.
	ErrCastleRookUnavailable = errors.New("cannot castle, there is no unmoved rook to castle with")

	// ErrNoEnPassantOpportunity indicates an en passant capture that is not available.
	ErrNoEnPassantOpportunity = errors.New("there is no en passant opportunity on the board")

	// ErrNoSuchMove indicates a destination outside the piece's reachable set.
	ErrNoSuchMove = errors.New("no such move")

	// ErrInvalidNotation indicates move text that does not follow the notation grammar.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameOver indicates a move submitted after the game has ended.
	ErrGameOver = errors.New("the game is over")

	// ErrNotYourTurn indicates a move submitted for the colour not to move.
	ErrNotYourTurn = errors.New("it is not this colour's turn")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rule error with the move context: the text entered,
// the colour that entered it and the ply it was entered at.
type MoveError struct {
	Err      error  // The underlying error
	Notation string // The move text that caused the error
	Colour   string // Side that submitted the move
	Ply      int    // 1-based ply the move was submitted for (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsRuleViolation reports whether err is a rejection the player can correct by
// entering a different move, as opposed to a turn-order or setup problem.
func IsRuleViolation(err error) bool {
	for _, sentinel := range []error{
		ErrNoCandidatePiece, ErrAmbiguousMove, ErrDestinationOutOfBounds,
		ErrDestinationUnreachable, ErrMissingPromotionChoice, ErrMoveLeavesKingInDanger,
		ErrCastleBlockedOrAttacked, ErrCastleKingAlreadyMoved, ErrCastleRookUnavailable,
		ErrNoEnPassantOpportunity, ErrNoSuchMove, ErrInvalidNotation,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
