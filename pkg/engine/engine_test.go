package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-chess/xadrez/pkg/board/fen"
	"github.com/vesper-chess/xadrez/pkg/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(context.Background(), "test", "tester", engine.Options{HashBytes: 1 << 20, Seed: 7})
}

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, fen.Initial, e.Position())
}

func TestApplyMovePlaysPseudoLegalMove(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ApplyMove(context.Background(), "e2e4"))
	assert.Contains(t, e.Position(), "b KQkq e3")
}

func TestApplyMoveRejectsIllegalMove(t *testing.T) {
	e := newEngine(t)
	err := e.ApplyMove(context.Background(), "e2e5")
	assert.Error(t, err)
}

func TestApplyMoveRejectsMalformedText(t *testing.T) {
	e := newEngine(t)
	err := e.ApplyMove(context.Background(), "zz")
	assert.Error(t, err)
}

func TestUndoLastRestoresPriorPosition(t *testing.T) {
	e := newEngine(t)
	before := e.Position()

	require.NoError(t, e.ApplyMove(context.Background(), "e2e4"))
	require.NoError(t, e.UndoLast(context.Background()))

	assert.Equal(t, before, e.Position())
}

func TestUndoLastWithNoHistoryFails(t *testing.T) {
	e := newEngine(t)
	assert.Error(t, e.UndoLast(context.Background()))
}

func TestNewGameResetsToGivenPosition(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ApplyMove(context.Background(), "e2e4"))

	scholarsMate := "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 1"
	require.NoError(t, e.NewGame(context.Background(), scholarsMate))
	assert.Equal(t, scholarsMate, e.Position())
}

func TestSearchPlaysMateInOne(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.NewGame(context.Background(), "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 1"))

	var lines []string
	best, err := e.Search(context.Background(), 3000, 4, func(line string) {
		lines = append(lines, line)
	})
	require.NoError(t, err)
	assert.Equal(t, "f3f7", best)
}
