package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// fileConfig mirrors the TOML config file. Pointer fields distinguish
// "absent" from a zero value so only keys present in the file override
// the defaults.
type fileConfig struct {
	Variant   *string `toml:"variant"`
	Seed      *uint64 `toml:"seed"`
	FEN       *string `toml:"fen"`
	Moves     *string `toml:"moves"`
	Workers   *int    `toml:"workers"`
	Verbosity *int    `toml:"verbosity"`

	Output struct {
		Color     *bool `toml:"color"`
		ShowBoard *bool `toml:"board"`
		ListMoves *bool `toml:"moves"`
		JSON      *bool `toml:"json"`
	} `toml:"output"`

	Perft struct {
		Depth       *int    `toml:"depth"`
		Divide      *bool   `toml:"divide"`
		Suite       *string `toml:"suite"`
		Verify      *bool   `toml:"verify"`
		VerifyDepth *int    `toml:"verify_depth"`
	} `toml:"perft"`
}

// LoadFile overlays the settings of a TOML config file onto cfg. Unknown
// keys are rejected.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		perr := &errors.ParseError{Err: errors.ErrInvalidConfig, Input: path, Got: err.Error()}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
			perr.Got = tomlErr.Message
		}
		return perr
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return &errors.ParseError{
			Err:   errors.ErrInvalidConfig,
			Input: path,
			Field: undecoded[0].String(),
			Got:   "unknown key",
		}
	}
	return c.apply(&fc, path)
}

func (c *Config) apply(fc *fileConfig, path string) error {
	if fc.Variant != nil {
		variant, ok := chess.ParseVariant(*fc.Variant)
		if !ok {
			return &errors.ParseError{
				Err:   fmt.Errorf("%w: %w", errors.ErrInvalidConfig, errors.ErrInvalidVariant),
				Input: path,
				Field: "variant",
				Got:   *fc.Variant,
			}
		}
		c.Variant = variant
	}
	setUint64(&c.Seed, fc.Seed)
	setString(&c.FEN, fc.FEN)
	setString(&c.Moves, fc.Moves)
	setInt(&c.Workers, fc.Workers)
	setInt(&c.Verbosity, fc.Verbosity)

	setBool(&c.Output.Color, fc.Output.Color)
	setBool(&c.Output.ShowBoard, fc.Output.ShowBoard)
	setBool(&c.Output.ListMoves, fc.Output.ListMoves)
	setBool(&c.Output.JSON, fc.Output.JSON)

	setInt(&c.Perft.Depth, fc.Perft.Depth)
	setBool(&c.Perft.Divide, fc.Perft.Divide)
	setString(&c.Perft.SuiteFile, fc.Perft.Suite)
	setBool(&c.Perft.Verify, fc.Perft.Verify)
	setInt(&c.Perft.VerifyDepth, fc.Perft.VerifyDepth)
	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setUint64(dst *uint64, src *uint64) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
