package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/search"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	var list board.MoveList
	quiet := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.B1, To: board.NewSquare(2, 2)}
	capture := board.Move{Piece: board.NewPiece(board.White, board.Bishop), From: board.NewSquare(2, 3), To: board.NewSquare(5, 6), Captured: board.NewPiece(board.Black, board.Pawn)}
	ttMove := board.Move{Piece: board.NewPiece(board.White, board.Pawn), From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}

	for _, m := range []board.Move{quiet, capture, ttMove} {
		list.Add(m)
	}

	hist := search.NewHistoryTable()
	search.OrderMoves(&list, ttMove, true, hist)

	assert.True(t, list.At(0).Equals(ttMove))
}

func TestOrderMovesPrefersHigherValueVictim(t *testing.T) {
	var list board.MoveList
	takesPawn := board.Move{Piece: board.NewPiece(board.White, board.Rook), From: board.A1, To: board.NewSquare(0, 6), Captured: board.NewPiece(board.Black, board.Pawn)}
	takesQueen := board.Move{Piece: board.NewPiece(board.White, board.Rook), From: board.A1, To: board.A8, Captured: board.NewPiece(board.Black, board.Queen)}

	list.Add(takesPawn)
	list.Add(takesQueen)

	hist := search.NewHistoryTable()
	search.OrderMoves(&list, board.Move{}, false, hist)

	assert.True(t, list.At(0).Equals(takesQueen), "capturing the queen should sort ahead of capturing a pawn")
}

func TestMVVLVAPrefersLeastValuableAttackerForTiedVictim(t *testing.T) {
	pawnTakesRook := board.Move{Piece: board.NewPiece(board.White, board.Pawn), From: board.NewSquare(1, 5), To: board.NewSquare(0, 6), Captured: board.NewPiece(board.Black, board.Rook)}
	queenTakesRook := board.Move{Piece: board.NewPiece(board.White, board.Queen), From: board.A1, To: board.NewSquare(0, 6), Captured: board.NewPiece(board.Black, board.Rook)}

	assert.Greater(t, search.MVVLVA(pawnTakesRook), search.MVVLVA(queenTakesRook),
		"against the same victim, the cheaper attacker should score higher")
}

func TestMVVLVAPromotionSubtractsFiveFromInnerTerm(t *testing.T) {
	plain := board.Move{Piece: board.NewPiece(board.White, board.Pawn), From: board.NewSquare(1, 6), To: board.A8, Captured: board.NewPiece(board.Black, board.Rook)}
	promoting := plain
	promoting.Promotion = board.NewPiece(board.White, board.Queen)

	assert.Equal(t, search.MVVLVA(plain)-5*10_000, search.MVVLVA(promoting),
		"a promoting capture subtracts 5 from the inner (victim,attacker) term before scaling")
}

func TestOrderMovesQuietMovesByHistoryScore(t *testing.T) {
	var list board.MoveList
	a := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.B1, To: board.NewSquare(2, 2)}
	b := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.G1, To: board.NewSquare(5, 2)}

	list.Add(a)
	list.Add(b)

	hist := search.NewHistoryTable()
	hist.Record(b, 4)
	search.OrderMoves(&list, board.Move{}, false, hist)

	assert.True(t, list.At(0).Equals(b), "the move with the higher history score should sort first")
}

func TestHistoryTableGeneralizesAcrossOriginSquare(t *testing.T) {
	hist := search.NewHistoryTable()
	fromB1 := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.B1, To: board.NewSquare(3, 1)}
	fromF3 := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.NewSquare(5, 2), To: board.NewSquare(3, 1)}

	hist.Record(fromB1, 4)

	assert.Equal(t, hist.Score(fromB1), hist.Score(fromF3),
		"history is keyed by piece and destination only, not by origin square")
}

func TestHistoryTableAgesOnOverflow(t *testing.T) {
	hist := search.NewHistoryTable()
	m := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.B1, To: board.NewSquare(2, 2)}

	for i := 0; i < 2000; i++ {
		hist.Record(m, 9)
	}
	assert.LessOrEqual(t, hist.Score(m), int32(9000), "counters must be aged down once the overflow threshold is crossed")
}

func TestHistoryTableReset(t *testing.T) {
	hist := search.NewHistoryTable()
	m := board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.B1, To: board.NewSquare(2, 2)}
	hist.Record(m, 4)
	hist.Reset()
	assert.Equal(t, int32(0), hist.Score(m))
}
