package config

import (
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the variant.
func (b *ConfigBuilder) WithVariant(variant chess.Variant) *ConfigBuilder {
	b.cfg.Variant = variant
	return b
}

// WithSeed sets the Chess960 setup number.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithFEN sets the starting FEN.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithMoves sets the moves played from the starting position.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithPerft sets the perft depth and whether to divide.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithSuite selects a perft suite file.
func (b *ConfigBuilder) WithSuite(path string) *ConfigBuilder {
	b.cfg.Perft.SuiteFile = path
	return b
}

// WithVerify enables reference verification to the given depth.
func (b *ConfigBuilder) WithVerify(depth int) *ConfigBuilder {
	b.cfg.Perft.Verify = true
	b.cfg.Perft.VerifyDepth = depth
	return b
}

// WithBoard enables the board diagram.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMoveList enables listing legal moves.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = enabled
	return b
}

// WithJSON enables JSON output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithColor enables or disables coloured output.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
