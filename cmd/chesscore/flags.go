// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

var (
	// Position options
	fenString   = flag.String("fen", "", "Start from this FEN instead of the initial position")
	variantName = flag.String("variant", "standard", "Variant: standard, chess960, atomic")
	seed        = flag.Uint64("seed", 518, "Chess960 setup number (taken modulo 960)")
	backRank    = flag.String("backrank", "", "Chess960 back rank such as \"BBQNNRKR\"; selects chess960 and its setup number")
	playMoves   = flag.String("play", "", "Moves to play first, e.g. \"e2e4 e7e5\"")

	// Output options
	listMoves   = flag.Bool("moves", false, "List the legal moves")
	showBoard   = flag.Bool("board", false, "Print a board diagram")
	noColor     = flag.Bool("nocolor", false, "Disable coloured board output")
	jsonOutput  = flag.Bool("json", false, "Report in JSON format")
	exportSuite = flag.String("export", "", "Print the perft suite in this format (toml, yaml, epd) instead of running it")

	// Perft options
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divide      = flag.Bool("divide", false, "Break the perft count down by root move")
	workers     = flag.Int("workers", 1, "Worker goroutines for perft and suites")
	suiteFile   = flag.String("suite", "", "Run a perft suite file (.toml, .yaml, .epd) or \"default\"")
	verify      = flag.Bool("verify", false, "Compare legal moves with reference generators (standard only)")
	verifyDepth = flag.Int("verify-depth", 0, "Plies below the position to verify")

	// Program options
	configFile = flag.String("config", "", "TOML configuration file")
	logFile    = flag.String("l", "", "Write diagnostics to this file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summaries, 2 commentary")
	version    = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("h", false, "Show help")
)

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overlays the flags in set onto cfg, so flags override the
// config file and the config file overrides the defaults.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if err := applyPositionFlags(cfg, set); err != nil {
		return err
	}
	applyOutputFlags(cfg, set)
	applyPerftFlags(cfg, set)
	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	return nil
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config, set map[string]bool) error {
	if set["variant"] {
		variant, ok := chess.ParseVariant(*variantName)
		if !ok {
			return fmt.Errorf("-variant %q: %w", *variantName, errors.ErrInvalidVariant)
		}
		cfg.Variant = variant
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["backrank"] {
		rank, ok := chess.ParseBackRank(*backRank)
		if !ok {
			return fmt.Errorf("-backrank %q: %w", *backRank, errors.ErrInvalidConfig)
		}
		index, ok := engine.Chess960Index(rank)
		if !ok {
			return fmt.Errorf("-backrank %s is not a Chess960 setup: %w", rank, errors.ErrInvalidConfig)
		}
		cfg.Variant = chess.Chess960
		cfg.Seed = uint64(index)
	}
	if set["fen"] {
		cfg.FEN = *fenString
	}
	if set["play"] {
		cfg.Moves = *playMoves
	}
	return nil
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["moves"] {
		cfg.Output.ListMoves = *listMoves
	}
	if set["board"] {
		cfg.Output.ShowBoard = *showBoard
	}
	if set["nocolor"] {
		cfg.Output.Color = !*noColor
	}
	if set["json"] {
		cfg.Output.JSON = *jsonOutput
	}
	if set["export"] {
		cfg.Output.ExportSuite = *exportSuite
	}
}

// applyPerftFlags configures perft, suite and verification settings.
func applyPerftFlags(cfg *config.Config, set map[string]bool) {
	if set["perft"] {
		cfg.Perft.Depth = *perftDepth
	}
	if set["divide"] {
		cfg.Perft.Divide = *divide
	}
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["suite"] {
		cfg.Perft.SuiteFile = *suiteFile
	}
	if set["verify"] {
		cfg.Perft.Verify = *verify
	}
	if set["verify-depth"] {
		cfg.Perft.VerifyDepth = *verifyDepth
	}
}
