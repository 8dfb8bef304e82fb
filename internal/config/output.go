package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Color enables ANSI colours in board diagrams
	Color bool

	// ShowBoard prints a diagram of the position
	ShowBoard bool

	// ListMoves prints the legal moves of the position
	ListMoves bool

	// JSON reports the position, perft and verification as one JSON document
	JSON bool

	// ExportSuite names a format (toml, yaml, epd) in which to print the
	// perft suite instead of running it
	ExportSuite string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Color: true,
	}
}
