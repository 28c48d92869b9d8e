package search

import (
	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/eval"
)

// razorMarginPerDepth and futilityMargin are the centipawn margins used by
// razoring and futility pruning respectively (spec.md §4.6).
const (
	razorMarginPerDepth eval.Score = 150
	futilityMargin      eval.Score = 100
)

// nullMoveReduction is the fixed depth reduction R applied to the
// verification search after a null move (spec.md §4.6).
const nullMoveReduction = 3

// lateMoveThreshold is the move count after which late-move reduction
// becomes eligible (spec.md §4.6).
const lateMoveThreshold = 4

// evaluate returns the static evaluation from the side-to-move's
// perspective, negamax-style (spec.md §4.3's evaluator is White-relative;
// the search negates for Black here rather than inside the evaluator).
func (r *run) evaluate() eval.Score {
	return eval.Unit(r.b.Turn()) * r.eval.Evaluate(r.ctx, r.b)
}

// alphaBeta is iterative-deepening principal-variation search with
// quiescence extension, null-move pruning, razoring, futility pruning,
// late-move reductions, check extensions, and transposition-table
// probing (spec.md §4.6). Precondition: beta > alpha. Returns a value in
// [eval.MinScore, eval.MaxScore].
func (r *run) alphaBeta(alpha, beta eval.Score, ply, depth int, pv *[]board.Move) eval.Score {
	if r.aborted {
		return 0
	}
	if ply > 0 && r.b.IsDraw() {
		return 0
	}
	if depth <= 0 {
		return r.quiescence(alpha, beta, ply, pv)
	}

	r.checkAbort()
	if r.aborted {
		return 0
	}
	if ply > 0 {
		*pv = (*pv)[:0]
	}
	if ply >= PlyMax-1 {
		return eval.Crop(r.evaluate())
	}

	hash := r.b.Hash()
	var hintMove board.Move
	var hasHint bool
	if move, score, entryDepth, bound, ok := r.tt.Probe(hash, ply); ok {
		hintMove, hasHint = move, true
		if entryDepth >= depth && ttValueUsable(bound, score, alpha, beta) {
			return score
		}
	}

	inCheck := r.b.IsInCheck(r.b.Turn())
	staticEval := r.evaluate()
	var childPV []board.Move

	// Razoring: if the static eval is far below alpha at shallow depth,
	// confirm with a quiescence probe before committing to a full search.
	if depth <= 3 && !inCheck && staticEval+razorMarginPerDepth*eval.Score(depth) < alpha {
		razorAlpha := alpha - razorMarginPerDepth*eval.Score(depth)
		var qpv []board.Move
		if score := r.quiescence(razorAlpha, razorAlpha+1, ply, &qpv); score <= razorAlpha {
			return score
		}
	}

	// Null-move pruning: skip the side to move's turn and see if the
	// opponent still can't catch up even with a free move.
	if depth > 3 && !inCheck && alpha == beta-1 && staticEval >= beta &&
		!r.b.LastMoveWasNull() && r.b.HasNonPawnMaterial(r.b.Turn()) {
		r.b.MakeNullMove()
		var nullPV []board.Move
		score := -r.alphaBeta(-beta, -beta+1, ply+1, depth-nullMoveReduction, &nullPV)
		r.b.UnmakeNullMove()

		if !r.aborted && score >= beta {
			clamped := score
			if clamped > eval.Mate-eval.Score(PlyMax) {
				clamped = beta
			}
			r.tt.Store(hash, ply, board.Move{}, clamped, depth, LowerBound)
			return clamped
		}
	}

	newDepth := depth - 1
	if inCheck {
		newDepth++
	}

	var list board.MoveList
	r.b.GenerateMoves(&list)
	OrderMoves(&list, hintMove, hasHint, r.hist)

	bestValue := eval.MinScore
	var bestMove board.Move
	hasBestMove := false
	moveCount := 0

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsCastle() && !r.b.IsCastlePathSafe(m) {
			continue
		}

		mover := r.b.Turn()
		r.b.MakeMove(m)
		if r.b.MoveLeavesMoverInCheck(mover) {
			r.b.UnmakeMove()
			continue
		}
		moveCount++

		var score eval.Score
		reduced := false
		if moveCount == 1 {
			score = -r.alphaBeta(-beta, -alpha, ply+1, newDepth, &childPV)
		} else {
			// Futility pruning: a quiet move at the shallowest extended
			// depth that can't plausibly reach alpha even with a free
			// pawn of margin is skipped outright.
			if !inCheck && newDepth == 1 && !m.IsTactical() && alpha == beta-1 && staticEval+futilityMargin < alpha {
				r.b.UnmakeMove()
				continue
			}

			reduction := 0
			if !inCheck && newDepth > 1 && moveCount > lateMoveThreshold && !m.IsTactical() && alpha == beta-1 && staticEval < alpha {
				reduction = 1
				reduced = true
			}

			score = -r.alphaBeta(-alpha-1, -alpha, ply+1, newDepth-reduction, &childPV)
			if !r.aborted && score > alpha && reduced {
				score = -r.alphaBeta(-alpha-1, -alpha, ply+1, newDepth, &childPV)
			}
			if !r.aborted && score > alpha && score < beta {
				score = -r.alphaBeta(-beta, -alpha, ply+1, newDepth, &childPV)
			}
		}

		r.b.UnmakeMove()
		if r.aborted {
			return 0
		}

		if score >= beta {
			if !m.IsTactical() {
				r.hist.Record(m, depth)
			}
			r.tt.Store(hash, ply, m, score, depth, LowerBound)
			return score
		}
		if score > bestValue {
			bestValue = score
			if score > alpha {
				alpha = score
				bestMove = m
				hasBestMove = true
				*pv = append((*pv)[:0], m)
				*pv = append(*pv, childPV...)
				if ply == 0 {
					r.reportRootPV(depth, alpha, *pv)
				}
			}
		}
	}

	if moveCount == 0 {
		if inCheck {
			return -eval.Mate + eval.Score(ply)
		}
		return 0
	}

	if hasBestMove {
		if !bestMove.IsTactical() {
			r.hist.Record(bestMove, depth)
		}
		r.tt.Store(hash, ply, bestMove, bestValue, depth, ExactBound)
	} else {
		r.tt.Store(hash, ply, board.Move{}, bestValue, depth, UpperBound)
	}
	return bestValue
}

// ttValueUsable reports whether a transposition entry's stored value can
// resolve the current (alpha, beta) window outright, per the bound
// semantics of spec.md §4.5.
func ttValueUsable(bound Bound, value, alpha, beta eval.Score) bool {
	switch bound {
	case UpperBound:
		return value <= alpha
	case LowerBound:
		return value >= beta
	case ExactBound:
		return value <= alpha || value >= beta
	default:
		return false
	}
}
