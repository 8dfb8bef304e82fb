package engine

import (
	"context"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each branch is explored on its own clone; Perft(pos, 0) is 1.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		next := pos.Clone()
		makeMove(next, mv)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by
// MoveText.
func PerftDivide(pos *chess.Position, depth int) map[string]uint64 {
	divide := make(map[string]uint64)
	if depth <= 0 {
		return divide
	}
	for _, mv := range LegalMoves(pos) {
		next := pos.Clone()
		makeMove(next, mv)
		divide[MoveText(pos, mv)] += Perft(next, depth-1)
	}
	return divide
}

// ParallelPerft computes Perft with the root moves spread over a worker
// pool. Cancelling ctx abandons root moves that have not started yet.
func ParallelPerft(ctx context.Context, pos *chess.Position, depth, workers int) (uint64, error) {
	results, err := ParallelPerftDivide(ctx, pos, depth, workers)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var nodes uint64
	for _, result := range results {
		nodes += result.Nodes
	}
	return nodes, nil
}

// ParallelPerftDivide is PerftDivide on a worker pool, returning one result
// per root move in generation order.
func ParallelPerftDivide(ctx context.Context, pos *chess.Position, depth, workers int) ([]worker.ProcessResult, error) {
	if depth <= 0 {
		return nil, ctx.Err()
	}

	moves := LegalMoves(pos)
	items := make([]worker.WorkItem, len(moves))
	for i, mv := range moves {
		next := pos.Clone()
		makeMove(next, mv)
		items[i] = worker.WorkItem{Position: next, Move: mv, Depth: depth - 1, Label: MoveText(pos, mv), Index: i}
	}
	return worker.Run(ctx, items, workers, PerftItem)
}

// PerftItem is the worker.ProcessFunc that counts a work item's subtree.
func PerftItem(_ context.Context, item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Label: item.Label,
		Depth: item.Depth,
		Nodes: Perft(item.Position, item.Depth),
	}
}
