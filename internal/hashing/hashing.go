// Package hashing provides duplicate detection for chess games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameSignature identifies a finished or abandoned game.
type GameSignature struct {
	// Name of the game, usually the file it was read from.
	Name string
	// Hash of the final position or of the move sequence.
	Hash uint64
	// Plies is the number of half-moves played.
	Plies int
}

// DuplicateDetector remembers the signatures it has seen. It is not safe for
// concurrent use.
type DuplicateDetector struct {
	seen map[uint64][]GameSignature
	// exactMatch also requires the ply counts to agree.
	exactMatch bool
	unique     int
	duplicates int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		seen:       make(map[uint64][]GameSignature),
		exactMatch: exactMatch,
	}
}

// CheckAndAdd checks sig against the games seen so far. A duplicate returns
// the name of the first matching game and true; anything else is added and
// returns false.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (string, bool) {
	for _, earlier := range d.seen[sig.Hash] {
		if !d.exactMatch || earlier.Plies == sig.Plies {
			d.duplicates++
			return earlier.Name, true
		}
	}
	d.seen[sig.Hash] = append(d.seen[sig.Hash], sig)
	d.unique++
	return "", false
}

// DuplicateCount returns how many games repeated an earlier one.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicates
}

// UniqueCount returns how many distinct games have been seen.
func (d *DuplicateDetector) UniqueCount() int {
	return d.unique
}

// Reset forgets every game seen.
func (d *DuplicateDetector) Reset() {
	clear(d.seen)
	d.unique, d.duplicates = 0, 0
}

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFinalPosition hashes only the final position
	HashFinalPosition HashType = iota
	// HashMoveSequence hashes the moves played, in long algebraic form
	HashMoveSequence
)

// ParseHashType maps "position" and "moves" to a HashType.
func ParseHashType(s string) (HashType, bool) {
	switch s {
	case "position":
		return HashFinalPosition, true
	case "moves":
		return HashMoveSequence, true
	}
	return HashFinalPosition, false
}

// GameHasher provides different hashing strategies for games.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashGame generates a hash for the game based on the hash type.
func (gh *GameHasher) HashGame(g *game.Game) uint64 {
	if gh.hashType == HashMoveSequence {
		return hashMoveSequence(g.History())
	}
	return Hash(g.Board(), g.ToMove())
}

// hashMoveSequence hashes the long algebraic moves, so that "Nf3" and
// "Ngf3" for the same move hash alike.
func hashMoveSequence(moves []chess.Move) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for i := range moves {
		for _, c := range moves[i].LongAlgebraic() {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}
	return hash
}
