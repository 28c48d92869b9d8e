package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/board/fen"
)

func TestPawnCenterBonus(t *testing.T) {
	assert.Equal(t, 20, pawnCenterBonus(board.NewSquare(3, 3), board.White)) // d4
	assert.Equal(t, 20, pawnCenterBonus(board.NewSquare(4, 3), board.White)) // e4
	assert.Equal(t, 10, pawnCenterBonus(board.NewSquare(3, 2), board.White)) // d3
	assert.Equal(t, 0, pawnCenterBonus(board.NewSquare(3, 4), board.White))  // d5, not a bonus square for White

	assert.Equal(t, 20, pawnCenterBonus(board.NewSquare(3, 4), board.Black)) // d5
	assert.Equal(t, 10, pawnCenterBonus(board.NewSquare(4, 5), board.Black)) // e6
}

func newTestBoard(t *testing.T, position string) *board.Board {
	t.Helper()
	b := board.NewBoard(board.NewZobristTable(3))
	require.NoError(t, fen.Decode(b, position))
	return b
}

func TestRookOpeningTermOpenFile(t *testing.T) {
	b := newTestBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.Equal(t, 10, rookOpeningTerm(b, board.A1, board.White), "an empty file is open")
}

func TestRookOpeningTermSemiOpenFile(t *testing.T) {
	b := newTestBoard(t, "4k2r/7p/8/8/8/8/8/4K2R w - - 0 1")
	assert.Equal(t, 5, rookOpeningTerm(b, board.H1, board.White), "only enemy pawns on the file is semi-open")
}

func TestRookOpeningTermBlockedFileScoresNothing(t *testing.T) {
	b := newTestBoard(t, "4k3/8/8/8/8/8/P7/R3K3 w - - 0 1")
	assert.Equal(t, 0, rookOpeningTerm(b, board.A1, board.White), "a friendly pawn on the file earns no bonus")
}

func TestRookOpeningTermOffBackRankScoresNothing(t *testing.T) {
	b := newTestBoard(t, "4k3/8/8/8/8/8/8/4K1R1 w - - 0 1")
	assert.Equal(t, 0, rookOpeningTerm(b, board.NewSquare(6, 3), board.White), "off the back rank, no open-file bonus applies")
}

func TestRookEndgameTermCountsEnemyPawnsOnSeventh(t *testing.T) {
	b := newTestBoard(t, "4k3/p1p5/8/8/8/8/4R3/4K3 w - - 0 1")
	sq := board.NewSquare(4, 6)
	assert.Equal(t, 6, rookEndgameTerm(b, sq, board.White), "+3 per enemy pawn on the rook's 7th rank")
}

func TestQueenPieceSquareIsHalvedAndEndgameOnly(t *testing.T) {
	center := board.NewSquare(3, 3)
	mg, eg := pieceSquareComponents(newTestBoard(t, "4k3/8/8/3Q4/8/8/8/4K3 w - - 0 1"), board.Queen, center, board.White)
	assert.Equal(t, 0, mg, "the queen gets no opening centralization term")
	assert.Equal(t, pstLookup(&queenPST, center, board.White)/2, eg)
}
