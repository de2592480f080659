package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to depth. Each
// promotion choice is a separate node.
func Perft(board *chess.Board, depth int) uint64 {
	return perft(board, depth, nil, nil)
}

// perft counts leaves below board. A non-nil stopped is polled at interior
// nodes; once it reports true the search unwinds with a partial count.
func perft(board *chess.Board, depth int, leaves *hashing.PositionSet, stopped func() bool) uint64 {
	if depth <= 0 {
		if leaves != nil {
			leaves.Add(board)
		}
		return 1
	}

	moves := ExpandPromotions(AllLegalMoves(board))
	if depth == 1 && leaves == nil {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		if stopped != nil && depth > 1 && stopped() {
			break
		}
		child := *board
		applyLegalMove(&child, m)
		nodes += perft(&child, depth-1, leaves, stopped)
	}
	return nodes
}

// PerftOptions configures PerftDivide.
type PerftOptions struct {
	Workers     int
	CountUnique bool // also count distinct leaf positions; disables the depth-1 shortcut
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftReport is the result of PerftDivide.
type PerftReport struct {
	Depth        int
	Nodes        uint64
	Divide       []DivideEntry
	UniqueLeaves int
	Workers      int // goroutines the search ran on
}

// PerftDivide runs perft with the root moves spread over a worker pool and
// reports the node count under each root move, sorted by UCI text.
func PerftDivide(board *chess.Board, depth int, opts PerftOptions) PerftReport {
	report, _ := PerftDivideContext(context.Background(), board, depth, opts)
	return report
}

// PerftDivideContext is PerftDivide with cancellation. When ctx is done the
// pool is stopped, root moves not yet searched are skipped and searches in
// progress unwind. The partial report is returned with ctx's error.
func PerftDivideContext(ctx context.Context, board *chess.Board, depth int, opts PerftOptions) (PerftReport, error) {
	report := PerftReport{Depth: depth}
	if depth <= 0 {
		report.Nodes = 1
		report.UniqueLeaves = 1
		return report, nil
	}

	var leaves *hashing.PositionSet
	if opts.CountUnique {
		leaves = hashing.NewPositionSet(PositionKey)
	}

	moves := ExpandPromotions(AllLegalMoves(board))

	var pool *worker.Pool
	pool = worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: perft(&item.Board, item.Depth, leaves, pool.IsStopped),
		}
	}, worker.WithWorkers(opts.Workers), worker.WithBufferSize(len(moves)))
	report.Workers = pool.NumWorkers()

	if ctx.Err() != nil {
		pool.Stop()
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()
	pool.Start()

	go func() {
		for i, m := range moves {
			if pool.IsStopped() {
				break
			}
			child := *board
			applyLegalMove(&child, m)
			pool.Submit(worker.WorkItem{Board: child, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	searched := make([]bool, len(moves))
	divide := make([]DivideEntry, len(moves))
	for res := range pool.Results() {
		divide[res.Index] = DivideEntry{Move: res.Move, Nodes: res.Nodes}
		searched[res.Index] = true
		report.Nodes += res.Nodes
	}
	for i, entry := range divide {
		if searched[i] {
			report.Divide = append(report.Divide, entry)
		}
	}

	sort.Slice(report.Divide, func(i, j int) bool {
		return report.Divide[i].Move.UCI() < report.Divide[j].Move.UCI()
	})
	if leaves != nil {
		report.UniqueLeaves = leaves.Len()
	}
	if err := ctx.Err(); err != nil {
		return report, errors.Wrapf(err, "perft depth %d", depth)
	}
	return report, nil
}
