package board

import "math/rand"

// ZobristKey is a 64-bit position fingerprint (spec.md §4.2).
type ZobristKey uint64

// ZobristTable holds the random words used to compute ZobristKeys. Shared
// by all Boards/Positions created from the same seed — see
// herohde-morlock/pkg/board/zobrist.go for the equivalent bitboard-table
// shape this is adapted from.
type ZobristTable struct {
	pieces    [2][6][64]ZobristKey // [color][pieceType-1][to8x8 square]
	castling  [4]ZobristKey        // one word per castling right flag
	enpassant [64]ZobristKey       // one word per target square
	turn      ZobristKey           // XORed in when Black is to move
}

// NewZobristTable builds a table from a deterministic seed so that two
// engine instances started with the same seed produce identical keys
// (required by the round-trip and perft tests in spec.md §8).
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))
	zt := &ZobristTable{}

	for c := 0; c < 2; c++ {
		for t := 0; t < 6; t++ {
			for sq := 0; sq < 64; sq++ {
				zt.pieces[c][t][sq] = ZobristKey(r.Uint64())
			}
		}
	}
	for i := range zt.castling {
		zt.castling[i] = ZobristKey(r.Uint64())
	}
	for sq := range zt.enpassant {
		zt.enpassant[sq] = ZobristKey(r.Uint64())
	}
	zt.turn = ZobristKey(r.Uint64())

	return zt
}

func (zt *ZobristTable) pieceWord(p Piece, sq64 int) ZobristKey {
	c := 0
	if p.Color() == Black {
		c = 1
	}
	return zt.pieces[c][p.Type()-1][sq64]
}

// FullHash recomputes the Zobrist key for the board from scratch.
// MakeMove and MakeNullMove store its result as board.hash (unmake
// restores the saved key), and the debug assertions check that the
// stored key still matches it bit for bit (spec.md §4.2, §9).
func (zt *ZobristTable) FullHash(b *Board) ZobristKey {
	var key ZobristKey

	for i := 0; i < 64; i++ {
		sq := FromIndex64(i)
		p := b.squares[sq]
		if !p.IsEmpty() && !p.IsBorder() {
			key ^= zt.pieceWord(p, i)
		}
	}

	castlingRights := []Castling{WhiteKingSideCastle, WhiteQueenSideCastle, BlackKingSideCastle, BlackQueenSideCastle}
	for i, right := range castlingRights {
		if b.castling.IsAllowed(right) {
			key ^= zt.castling[i]
		}
	}

	if b.epSquare != 0 {
		key ^= zt.enpassant[b.epSquare.To8x8()]
	}
	if b.turn == Black {
		key ^= zt.turn
	}
	return key
}
