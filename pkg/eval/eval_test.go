package eval_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/board/fen"
	"github.com/vesper-chess/xadrez/pkg/eval"
)

func newBoard(t *testing.T, position string) *board.Board {
	t.Helper()
	b := board.NewBoard(board.NewZobristTable(3))
	require.NoError(t, fen.Decode(b, position))
	return b
}

func TestInitialPositionIsBalanced(t *testing.T) {
	b := newBoard(t, fen.Initial)
	assert.Equal(t, eval.Score(0), eval.Material(b))
	assert.Equal(t, eval.Score(0), eval.Standard{}.Evaluate(context.Background(), b))
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.Equal(t, eval.QueenValue, eval.Material(b))
}

func TestPhaseDecreasesAsOfficersComeOff(t *testing.T) {
	full := newBoard(t, fen.Initial)
	bare := newBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	assert.Equal(t, eval.PhaseTotal, eval.Phase(full))
	assert.Equal(t, 0, eval.Phase(bare))
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	b := newBoard(t, fen.Initial)

	a := eval.NewRandom(eval.Standard{}, 20, 42)
	c := eval.NewRandom(eval.Standard{}, 20, 42)

	assert.Equal(t, a.Evaluate(context.Background(), b), c.Evaluate(context.Background(), b))
}

func TestRandomZeroLimitIsNoOp(t *testing.T) {
	b := newBoard(t, fen.Initial)
	r := eval.NewRandom(eval.Standard{}, 0, 1)
	assert.Equal(t, eval.Standard{}.Evaluate(context.Background(), b), r.Evaluate(context.Background(), b))
}
