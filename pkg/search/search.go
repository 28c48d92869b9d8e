// Package search implements iterative-deepening principal-variation
// search with quiescence extension over pkg/board, consulting pkg/eval
// at leaves and pkg/search's own transposition table and move ordering
// at every node (spec.md §4.6).
package search

import (
	"context"
	"time"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/eval"
)

// PlyMax bounds search recursion depth; beyond it a node returns its
// static evaluation rather than recursing further (spec.md §4.6).
const PlyMax = 128

// DepthMax bounds the iterative-deepening depth ceiling (spec.md §4.6).
const DepthMax = 64

// nodesPerAbortCheck amortizes the cost of checking the clock: the abort
// flag is only reconsidered every this-many visited nodes (spec.md §5).
const nodesPerAbortCheck = 2000

// InfoFunc receives one principal-variation line every time the root's
// alpha bound is raised during a search (spec.md §4.6, §6). A nil
// InfoFunc disables PV reporting.
type InfoFunc func(PV)

// Limits bounds a single search call: a wall-clock budget and a depth
// ceiling (spec.md §4.6, §6).
type Limits struct {
	BudgetMS   int
	DepthLimit int
}

// Engine drives iterative deepening over a Board, owning the
// transposition table and history table for the lifetime of a game
// (spec.md §4.5, §4.6, §5). Not safe for concurrent use.
type Engine struct {
	Eval eval.Evaluator
	TT   *TranspositionTable
	Hist *HistoryTable
}

// NewEngine returns an Engine with a fresh history table over the given
// evaluator and transposition table.
func NewEngine(e eval.Evaluator, tt *TranspositionTable) *Engine {
	return &Engine{Eval: e, TT: tt, Hist: NewHistoryTable()}
}

// run holds the mutable state of a single top-level Search call: node
// counter, abort flag, deadline, and the board/tables it searches over
// (spec.md §4.6, §5, "Design notes" — owned by the search, not globals).
type run struct {
	ctx  context.Context
	b    *board.Board
	tt   *TranspositionTable
	hist *HistoryTable
	eval eval.Evaluator
	info InfoFunc

	nodes   uint64
	aborted bool

	start      time.Time
	budget     time.Duration
	iterDepth  int
	depthLimit int

	lastRootPV PV
}

// Search runs iterative deepening on b under limits, reporting one PV
// line per root alpha raise via info (may be nil), and returns the
// principal variation of the last iteration that completed (or, if none
// completed, the best partial result observed at the root before abort)
// (spec.md §4.6, §5).
func (e *Engine) Search(ctx context.Context, b *board.Board, limits Limits, info InfoFunc) PV {
	e.TT.NewGeneration()
	e.Hist.Reset()

	depthLimit := limits.DepthLimit
	if depthLimit <= 0 || depthLimit > DepthMax {
		depthLimit = DepthMax
	}
	budget := time.Duration(limits.BudgetMS) * time.Millisecond

	r := &run{
		ctx:        ctx,
		b:          b,
		tt:         e.TT,
		hist:       e.Hist,
		eval:       e.Eval,
		info:       info,
		start:      time.Now(),
		budget:     budget,
		depthLimit: depthLimit,
	}

	var best PV
	for depth := 1; depth <= depthLimit; depth++ {
		r.iterDepth = depth
		r.nodes = 0
		r.aborted = false

		var pv []board.Move
		score := r.alphaBeta(eval.MinScore, eval.MaxScore, 0, depth, &pv)

		if r.aborted {
			break
		}
		best = PV{Depth: depth, Moves: pv, Score: score, Nodes: r.nodes, Time: time.Since(r.start)}

		if time.Since(r.start) > (budget*6)/10 {
			break
		}
	}
	if best.Moves == nil && r.lastRootPV.Moves != nil {
		best = r.lastRootPV
	}
	return best
}

// checkAbort is called on every node visit (spec.md §4.6 step 4 /
// quiescence step 1): it increments the node counter and, every
// nodesPerAbortCheck visits, reconsiders the abort flag against the
// clock, the depth ceiling, and context cancellation.
func (r *run) checkAbort() {
	r.nodes++
	if r.nodes%nodesPerAbortCheck != 0 {
		return
	}
	if r.ctx != nil && r.ctx.Err() != nil {
		r.aborted = true
		return
	}
	if time.Since(r.start) >= r.budget || r.iterDepth >= r.depthLimit {
		r.aborted = true
	}
}

// reportRootPV emits one info line for the current iteration's root PV,
// recording it as the fallback best move if the iteration itself is
// later aborted before completing (spec.md §4.6, §6).
func (r *run) reportRootPV(depth int, score eval.Score, pv []board.Move) {
	line := PV{Depth: depth, Moves: pv, Score: score, Nodes: r.nodes, Time: time.Since(r.start)}
	r.lastRootPV = line
	if r.info != nil {
		r.info(line)
	}
}
