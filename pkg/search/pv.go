package search

import (
	"fmt"
	"time"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/eval"
)

// PV is the principal variation found by one iterative-deepening
// iteration (spec.md §4.6).
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%d score=%v nodes=%d time=%v pv=%s", p.Depth, p.Score, p.Nodes, p.Time, board.FormatMoves(p.Moves))
}
