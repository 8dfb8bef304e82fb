package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// testConfig returns a builder writing output to out and discarding logs.
func testConfig(out *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLog(&bytes.Buffer{}).
		WithColor(false)
}

func TestRun_Default(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), testConfig(&out).Build()); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	testutil.AssertEqual(t, out.String(), "FEN: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1\n")
}

func TestRun_BoardAndMoves(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).
		WithFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1").
		WithBoard(true).
		WithMoveList(true).
		Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	got := out.String()
	testutil.AssertContains(t, got, "1 . . . . K . . R \n")
	testutil.AssertContains(t, got, "Legal moves (15):")
	testutil.AssertContains(t, got, "e1g1")
}

func TestRun_PlayToCheckmate(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithMoves("f2f3 e7e5 g2g4 d8h4").WithMoveList(true).Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	testutil.AssertContains(t, out.String(), "Result: 0-1 Checkmate (Black wins)")
	testutil.AssertContains(t, out.String(), "Legal moves (0):")
}

func TestRun_IllegalMove(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithMoves("e2e5").Build()
	err := run(context.Background(), cfg)
	if !errors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("run() error = %v, want ErrIllegalMove", err)
	}
}

func TestRun_Perft(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithPerft(3, false).WithWorkers(2).Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	testutil.AssertContains(t, out.String(), "perft(3) = 8902\n")
}

func TestRun_Divide(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithPerft(2, true).WithWorkers(3).Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	got := out.String()
	testutil.AssertContains(t, got, "e2e4: 20\n")
	testutil.AssertContains(t, got, "Moves: 20\nNodes: 400\n")
}

func TestRun_Chess960Seed(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithVariant(chess.Chess960).WithSeed(960).Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	testutil.AssertEqual(t, out.String(),
		"FEN: bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w KFkf - 0 1\n"+
			"Chess960 setup: 0 (BBQNNRKR)\n")
}

func TestRun_Chess960CastlingText(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/8/RK6 w Q - 0 1"

	var out bytes.Buffer
	cfg := testConfig(&out).WithVariant(chess.Chess960).WithFEN(fen).WithPerft(2, true).WithWorkers(2).Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	got := out.String()
	testutil.AssertContains(t, got, "b1a1: ")
	testutil.AssertContains(t, got, "b1c1: ")
	testutil.AssertContains(t, got, "Moves: 12\nNodes: 53\n")

	out.Reset()
	cfg = testConfig(&out).WithVariant(chess.Chess960).WithFEN(fen).WithMoves("b1a1").Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	testutil.AssertContains(t, out.String(), "FEN: 4k3/8/8/8/8/8/8/2KR4 b - - 1 1\n")
}

func TestRun_FiftyMoveClaim(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithFEN("4k3/8/8/8/8/8/8/R3K3 w - - 120 90").Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	testutil.AssertContains(t, out.String(), "Draw claimable: fifty-move rule\n")
}

func TestRun_Verify(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithVerify(1).Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v\n%s", err, out.String())
	}
	testutil.AssertContains(t, out.String(), "21 positions agree")
}

func TestRun_VerifyRejectsVariant(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithVariant(chess.Atomic).WithVerify(0).Build()
	if err := run(context.Background(), cfg); !errors.Is(err, errors.ErrInvalidVariant) {
		t.Errorf("run() error = %v, want ErrInvalidVariant", err)
	}
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).
		WithJSON(true).
		WithMoves("e2e4").
		WithPerft(2, true).
		WithVerify(0).
		Build()
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	var report output.JSONPosition
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("Unmarshal() error: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, report.History, []string{"e2e4"})
	testutil.AssertEqual(t, report.ToMove, "Black")
	testutil.AssertEqual(t, len(report.Moves), 20)
	testutil.AssertEqual(t, report.Perft.Nodes, uint64(600))
	testutil.AssertEqual(t, len(report.Perft.Divide), 20)
	testutil.AssertEqual(t, report.Crosscheck.Positions, 1)
}

func TestRun_Suite(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithSuite("testdata/tiny.yaml").WithWorkers(2).Build()
	err := run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 checks failed") {
		t.Errorf("run() error = %v, want one failed check", err)
	}
	testutil.AssertContains(t, out.String(), "FAIL (want 21)")
}

func TestRun_SuiteExport(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithSuite("default").Build()
	cfg.Output.ExportSuite = "epd"
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 7)
	testutil.AssertContains(t, lines[0], ";D3 8902")
}

func TestRun_SuiteMissing(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out).WithSuite("testdata/absent.toml").Build()
	if err := run(context.Background(), cfg); err == nil {
		t.Error("run() with a missing suite returned no error")
	}
}
