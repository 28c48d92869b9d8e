package search

import (
	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/eval"
)

// quiescence extends the search past the nominal depth limit by
// exploring only captures and promotions, until the position is
// tactically quiet (spec.md §4.6). It does not probe the transposition
// table, check-extend, or apply the full pruning stack — only the
// stand-pat cutoff.
func (r *run) quiescence(alpha, beta eval.Score, ply int, pv *[]board.Move) eval.Score {
	if r.aborted {
		return 0
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

	best := eval.Crop(r.evaluate())
	if best >= beta {
		return best
	}
	if best > alpha {
		alpha = best
	}

	var list board.MoveList
	r.b.GenerateMoves(&list)
	OrderMoves(&list, board.Move{}, false, r.hist)

	var childPV []board.Move
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !m.IsTactical() {
			continue
		}

		mover := r.b.Turn()
		r.b.MakeMove(m)
		if r.b.MoveLeavesMoverInCheck(mover) {
			r.b.UnmakeMove()
			continue
		}

		score := -r.quiescence(-beta, -alpha, ply+1, &childPV)
		r.b.UnmakeMove()
		if r.aborted {
			return 0
		}

		if score >= beta {
			return score
		}
		if score > best {
			best = score
			if score > alpha {
				alpha = score
				*pv = append((*pv)[:0], m)
				*pv = append(*pv, childPV...)
			}
		}
	}
	return best
}
