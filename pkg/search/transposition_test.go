package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/eval"
	"github.com/vesper-chess/xadrez/pkg/search"
)

func TestTranspositionTableProbeMiss(t *testing.T) {
	tt := search.NewTranspositionTable(1 << 16)
	_, _, _, _, ok := tt.Probe(board.ZobristKey(1234), 0)
	assert.False(t, ok)
}

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	tt := search.NewTranspositionTable(1 << 16)

	hash := board.ZobristKey(0xabc123)
	m := board.Move{Piece: board.NewPiece(board.White, board.Queen), From: board.NewSquare(6, 3), To: board.G8}
	tt.Store(hash, 0, m, eval.Score(250), 6, search.ExactBound)

	move, score, depth, bound, ok := tt.Probe(hash, 0)
	assert.True(t, ok)
	assert.Equal(t, m, move)
	assert.Equal(t, eval.Score(250), score)
	assert.Equal(t, 6, depth)
	assert.Equal(t, search.ExactBound, bound)
}

func TestTranspositionTablePreservesBestMoveWhenOverwritingSameKey(t *testing.T) {
	tt := search.NewTranspositionTable(1 << 16)

	hash := board.ZobristKey(7)
	m := board.Move{Piece: board.NewPiece(board.White, board.Rook), From: board.A1, To: board.A8}
	tt.Store(hash, 0, m, eval.Score(10), 3, search.LowerBound)
	tt.Store(hash, 0, board.Move{}, eval.Score(20), 4, search.LowerBound)

	move, _, depth, _, ok := tt.Probe(hash, 0)
	assert.True(t, ok)
	assert.Equal(t, 4, depth)
	assert.Equal(t, m, move, "a null best_move on a same-key write should not clobber the prior one")
}

func TestTranspositionTableMateScoreRoundTripsAcrossPly(t *testing.T) {
	tt := search.NewTranspositionTable(1 << 16)

	hash := board.ZobristKey(99)
	mateIn2 := eval.Mate - 4
	tt.Store(hash, 3, board.Move{}, mateIn2, 5, search.ExactBound)

	_, score, _, _, ok := tt.Probe(hash, 3)
	assert.True(t, ok)
	assert.Equal(t, mateIn2, score, "probing at the same ply the entry was stored at must round-trip exactly")
}
