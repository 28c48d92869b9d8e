package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/board/fen"
)

func newBoard(t *testing.T, position string) *board.Board {
	t.Helper()
	b := board.NewBoard(board.NewZobristTable(7))
	require.NoError(t, fen.Decode(b, position))
	return b
}

func TestPerftInitialPosition(t *testing.T) {
	b := newBoard(t, fen.Initial)

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.nodes, b.Perft(tt.depth), "depth %d", tt.depth)
	}
}

// Kiwipete: a classic perft stress position exercising castling, en
// passant, and promotions together.
func TestPerftKiwipete(t *testing.T) {
	b := newBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.nodes, b.Perft(tt.depth), "depth %d", tt.depth)
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := newBoard(t, fen.Initial)

	before := fen.Encode(b)
	beforeHash := b.Hash()

	var list board.MoveList
	b.GenerateMoves(&list)
	require.Equal(t, 20, list.Len())

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		b.MakeMove(m)
		b.UnmakeMove()
		assert.Equal(t, before, fen.Encode(b), "move %v did not round-trip", m)
		assert.Equal(t, beforeHash, b.Hash(), "move %v left hash drift", m)
	}
}

func TestEnPassantCapture(t *testing.T) {
	b := newBoard(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	from, _ := board.ParseSquare("e5")
	to, _ := board.ParseSquare("f6")
	victim, _ := board.ParseSquare("f5")

	var list board.MoveList
	b.GenerateMoves(&list)

	var ep board.Move
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From == from && m.To == to && m.IsEnPassant() {
			ep = m
			found = true
		}
	}
	require.True(t, found, "expected an en passant capture to be generated")
	assert.Equal(t, victim, ep.EPVictim)

	b.MakeMove(ep)
	assert.True(t, b.At(victim).IsEmpty())
	assert.Equal(t, board.NewPiece(board.White, board.Pawn), b.At(to))
	b.UnmakeMove()
	assert.Equal(t, board.NewPiece(board.Black, board.Pawn), b.At(victim))
}

func TestCastlingUpdatesRookAndRights(t *testing.T) {
	b := newBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	kingSideCastle := board.Move{Piece: board.NewPiece(board.White, board.King), From: board.E1, To: board.G1}
	b.MakeMove(kingSideCastle)

	assert.Equal(t, board.NewPiece(board.White, board.Rook), b.At(board.F1))
	assert.True(t, b.At(board.H1).IsEmpty())
	assert.False(t, b.Castling().IsAllowed(board.WhiteKingSideCastle))
	assert.False(t, b.Castling().IsAllowed(board.WhiteQueenSideCastle))
	assert.True(t, b.Castling().IsAllowed(board.BlackKingSideCastle))

	b.UnmakeMove()
	assert.Equal(t, board.NewPiece(board.White, board.Rook), b.At(board.H1))
	assert.True(t, b.Castling().IsAllowed(board.WhiteKingSideCastle))
}

func TestFiftyMoveRule(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 99 60")
	assert.False(t, b.IsFiftyMoveDraw())

	b.MakeMove(board.Move{Piece: board.NewPiece(board.White, board.King), From: board.E1, To: board.D1})
	assert.True(t, b.IsFiftyMoveDraw())
}

func TestThreefoldRepetition(t *testing.T) {
	b := newBoard(t, fen.Initial)

	shuffle := func() {
		b.MakeMove(board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.NewSquare(1, 0), To: board.NewSquare(2, 2)})
		b.MakeMove(board.Move{Piece: board.NewPiece(board.Black, board.Knight), From: board.NewSquare(1, 7), To: board.NewSquare(2, 5)})
		b.MakeMove(board.Move{Piece: board.NewPiece(board.White, board.Knight), From: board.NewSquare(2, 2), To: board.NewSquare(1, 0)})
		b.MakeMove(board.Move{Piece: board.NewPiece(board.Black, board.Knight), From: board.NewSquare(2, 5), To: board.NewSquare(1, 7)})
	}

	assert.False(t, b.IsThreefoldRepetition())
	shuffle()
	assert.False(t, b.IsThreefoldRepetition())
	shuffle()
	assert.True(t, b.IsThreefoldRepetition())
}

func TestIsInCheck(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.True(t, b.IsInCheck(board.White))
	assert.False(t, b.IsInCheck(board.Black))
}

func TestHasNonPawnMaterial(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/4P3/4K2R w K - 0 1")
	assert.True(t, b.HasNonPawnMaterial(board.White))
	assert.False(t, b.HasNonPawnMaterial(board.Black))
}
