package config

// OutputConfig holds settings related to board and transcript output.
type OutputConfig struct {
	// RankLabelsFromOne labels ranks 1..8 instead of 0..7.
	RankLabelsFromOne bool

	// ShowLegalMoves prints the number of legal moves after each ply.
	ShowLegalMoves bool

	// ShowBoard prints the board after each ply.
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		RankLabelsFromOne: true,
		ShowBoard:         true,
	}
}
