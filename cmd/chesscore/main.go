// chesscore is a move generator and rules engine for Standard, Chess960
// and Atomic chess, with perft and reference verification.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chesscore-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			fatalf("Error loading config: %v\n", err)
		}
	}
	if err := applyFlags(cfg, setFlags()); err != nil {
		fatalf("Error: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v\n", err)
	}

	logClose := setupLogFile(cfg)
	defer logClose()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: %v\n", err)
		stop()
		logClose()
		os.Exit(1)
	}
}

// setupLogFile points cfg.LogFile at the -l file, if given, and returns a
// function closing it.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fatalf("Error creating log file %s: %v\n", *logFile, err)
	}
	cfg.LogFile = file
	return func() {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Legal moves, perft and rules checks for standard, chess960 and atomic chess.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chesscore -board -moves\n")
	fmt.Fprintf(os.Stderr, "  chesscore -variant chess960 -seed 0 -perft 4 -divide -workers 4\n")
	fmt.Fprintf(os.Stderr, "  chesscore -backrank BBQNNRKR -moves -perft 3 -divide\n")
	fmt.Fprintf(os.Stderr, "  chesscore -variant atomic -play \"e2e4 d7d5 e4d5\" -board\n")
	fmt.Fprintf(os.Stderr, "  chesscore -suite default -workers 8\n")
	fmt.Fprintf(os.Stderr, "  chesscore -fen \"<fen>\" -verify -verify-depth 2\n")
}
