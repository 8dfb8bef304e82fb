package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/crosscheck"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/suite"
)

// run performs everything cfg asks for, writing results to cfg.OutputFile
// and diagnostics to cfg.LogFile.
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.Perft.SuiteFile != "" {
		return runSuite(ctx, cfg)
	}

	g, err := setupGame(cfg)
	if err != nil {
		return err
	}
	if cfg.Output.JSON {
		return reportJSON(ctx, cfg, g)
	}
	return reportText(ctx, cfg, g)
}

// setupGame builds the starting position and plays any requested moves.
func setupGame(cfg *config.Config) (*game.Game, error) {
	var g *game.Game
	if cfg.FEN != "" {
		var err error
		if g, err = game.FromFEN(cfg.FEN, cfg.Variant); err != nil {
			return nil, err
		}
	} else {
		g = game.New(cfg.Variant, cfg.Seed)
	}
	cfg.Logf(2, "start: %s (%s)\n", g.FEN(), cfg.Variant)

	if err := g.PlayText(cfg.Moves); err != nil {
		return nil, err
	}
	if len(g.History) > 0 {
		cfg.Logf(2, "played %d moves (%d distinct positions): %s\n", len(g.History), g.DistinctPositions(), g.MoveText())
	}
	return g, nil
}

func reportText(ctx context.Context, cfg *config.Config, g *game.Game) error {
	w := cfg.OutputFile

	if cfg.Output.ShowBoard {
		if err := output.NewBoardPrinter(cfg.Output.Color).Print(w, g.Position); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	if index, ok := output.Chess960Index(g.Position); ok {
		fmt.Fprintf(w, "Chess960 setup: %d (%s)\n", index, g.Position.BackRank(chess.White))
	}
	if state, over := g.Status(); over {
		fmt.Fprintf(w, "Result: %s %s\n", state.Result(), state)
	} else if engine.CanClaimFiftyMoves(g.Position) {
		fmt.Fprintf(w, "Draw claimable: fifty-move rule\n")
	}
	if cfg.Output.ListMoves {
		moves := g.LegalMoves()
		fmt.Fprintf(w, "Legal moves (%d):\n", len(moves))
		output.WriteMoves(w, g.Position, moves, output.DefaultLineLength)
	}

	if cfg.Perft.Depth > 0 {
		if err := runPerft(ctx, cfg, g); err != nil {
			return err
		}
	}
	if cfg.Perft.Verify {
		return runVerify(ctx, cfg, g)
	}
	return nil
}

func runPerft(ctx context.Context, cfg *config.Config, g *game.Game) error {
	w := cfg.OutputFile
	depth := cfg.Perft.Depth
	start := time.Now()

	if cfg.Perft.Divide {
		results, err := engine.ParallelPerftDivide(ctx, g.Position, depth, cfg.Workers)
		if err != nil {
			return err
		}
		divide := make(map[string]uint64, len(results))
		for _, result := range results {
			divide[result.Label] += result.Nodes
		}
		output.WriteDivide(w, divide)
	} else {
		nodes, err := engine.ParallelPerft(ctx, g.Position, depth, cfg.Workers)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "perft(%d) = %d\n", depth, nodes)
	}
	cfg.Logf(1, "perft %d took %s on %d workers\n", depth, time.Since(start).Round(time.Millisecond), cfg.Workers)
	return nil
}

func runVerify(ctx context.Context, cfg *config.Config, g *game.Game) error {
	failures, checked, err := crosscheck.Walk(ctx, g.Position, cfg.Perft.VerifyDepth, crosscheck.References()...)
	if err != nil {
		return err
	}
	output.WriteCrosscheck(cfg.OutputFile, checked, failures)
	if len(failures) > 0 {
		return fmt.Errorf("%d positions disagree with the reference generators", len(failures))
	}
	return nil
}

func reportJSON(ctx context.Context, cfg *config.Config, g *game.Game) error {
	state, over := g.Status()
	report := output.PositionToJSON(g.Position, state, over)
	if len(g.History) > 0 {
		report.History = g.HistoryText()
	}

	if depth := cfg.Perft.Depth; depth > 0 {
		perft := &output.JSONPerft{Depth: depth}
		results, err := engine.ParallelPerftDivide(ctx, g.Position, depth, cfg.Workers)
		if err != nil {
			return err
		}
		if cfg.Perft.Divide {
			perft.Divide = make(map[string]uint64, len(results))
		}
		for _, result := range results {
			perft.Nodes += result.Nodes
			if perft.Divide != nil {
				perft.Divide[result.Label] += result.Nodes
			}
		}
		report.Perft = perft
	}

	var verifyErr error
	if cfg.Perft.Verify {
		failures, checked, err := crosscheck.Walk(ctx, g.Position, cfg.Perft.VerifyDepth, crosscheck.References()...)
		if err != nil {
			return err
		}
		report.Crosscheck = &output.JSONCrosscheck{Positions: checked}
		for _, failure := range failures {
			report.Crosscheck.Disagree = append(report.Crosscheck.Disagree, failure.FEN)
		}
		if len(failures) > 0 {
			verifyErr = fmt.Errorf("%d positions disagree with the reference generators", len(failures))
		}
	}

	if err := output.WriteJSON(cfg.OutputFile, report); err != nil {
		return err
	}
	return verifyErr
}

// runSuite runs (or exports) a perft suite file, or the built-in suite
// when the file is named "default".
func runSuite(ctx context.Context, cfg *config.Config) error {
	var s *suite.Suite
	if cfg.Perft.SuiteFile == "default" {
		s = suite.Default()
	} else {
		var err error
		if s, err = suite.Load(cfg.Perft.SuiteFile); err != nil {
			return err
		}
	}
	cfg.Logf(2, "suite %s: %d cases\n", s.Name, len(s.Cases))

	if format := cfg.Output.ExportSuite; format != "" {
		return suite.Encode(cfg.OutputFile, s, suite.Format(format))
	}

	report, err := suite.Run(ctx, s, cfg.Workers)
	if err != nil {
		return err
	}
	output.WriteSuiteReport(cfg.OutputFile, report)
	if report.Failures > 0 {
		return fmt.Errorf("suite %s: %d of %d checks failed", s.Name, report.Failures, len(report.Results))
	}
	return nil
}
