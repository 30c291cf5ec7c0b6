package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// StartFEN is the position games start from.
	StartFEN string

	// ParseCacheSize is how many parsed moves are remembered.
	ParseCacheSize int
}

// NewGameConfig creates a GameConfig for the standard starting position.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN:       engine.InitialFEN,
		ParseCacheSize: notation.DefaultCacheSize,
	}
}

// Validate checks that the start position can be set up and the cache size is usable.
func (g *GameConfig) Validate() error {
	if g.ParseCacheSize <= 0 {
		return fmt.Errorf("parse cache size (%d) must be positive: %w", g.ParseCacheSize, errors.ErrInvalidConfig)
	}
	if _, _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
