// Package board implements the 12x12 mailbox chess position: move
// generation, make/unmake with incremental history, attack detection, and
// draw-rule tests (spec.md §3, §4.1).
package board

import "fmt"

// HistoryMax bounds the make/unmake history stack (spec.md §3).
const HistoryMax = 1024

// historyFrame snapshots everything a single UnmakeMove needs to restore
// that MakeMove does not trivially reverse by replaying the move backwards.
type historyFrame struct {
	move   Move
	isNull bool // true for MakeNullMove frames (spec.md §9 Open Question 2)

	castling       Castling
	halfmoveClock  int
	fullmoveNumber int
	epSquare       Square
	hash           ZobristKey
}

// Placement places a single piece for board setup (by FEN decoding, test
// fixtures, etc).
type Placement struct {
	Square Square
	Piece  Piece
}

// Board is a chess position plus the metadata and history needed to make,
// unmake, and test draws on it (spec.md §3). Not safe for concurrent use —
// the search owns a Board exclusively for the duration of a call (§5).
type Board struct {
	zt *ZobristTable

	squares  [NumSquares12]Piece
	turn     Color
	castling Castling
	epSquare Square // 0 when absent

	halfmoveClock  int
	fullmoveNumber int

	kingSq [2]Square // indexed by Color

	hash ZobristKey

	history      [HistoryMax]historyFrame
	historyIndex int
}

// NewBoard returns an empty board (all interior squares Empty, all padding
// squares Border) bound to the given Zobrist table.
func NewBoard(zt *ZobristTable) *Board {
	b := &Board{zt: zt}
	for sq := Square(0); sq < NumSquares12; sq++ {
		b.squares[sq] = Border
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			b.squares[NewSquare(file, rank)] = Empty
		}
	}
	return b
}

// Setup places pieces on an otherwise-empty board and establishes game
// metadata. Used by the FEN decoder and by tests constructing positions
// directly.
func (b *Board) Setup(placements []Placement, turn Color, castling Castling, ep Square, halfmoveClock, fullmoveNumber int) error {
	for sq := Square(0); sq < NumSquares12; sq++ {
		if !b.squares[sq].IsBorder() {
			b.squares[sq] = Empty
		}
	}
	b.kingSq = [2]Square{}

	for _, p := range placements {
		if !p.Square.IsOnBoard() || b.squares[p.Square].IsBorder() {
			return fmt.Errorf("invalid placement square: %v", p.Square)
		}
		if !b.squares[p.Square].IsEmpty() {
			return fmt.Errorf("duplicate placement: %v", p.Square)
		}
		b.squares[p.Square] = p.Piece
		if p.Piece.Type() == King {
			b.kingSq[p.Piece.Color()] = p.Square
		}
	}
	if b.kingSq[White] == 0 || b.kingSq[Black] == 0 {
		return fmt.Errorf("missing king")
	}

	b.turn = turn
	b.castling = castling
	b.epSquare = ep
	b.halfmoveClock = halfmoveClock
	b.fullmoveNumber = fullmoveNumber
	b.historyIndex = 0
	b.hash = b.zt.FullHash(b)
	return nil
}

func (b *Board) Turn() Color               { return b.turn }
func (b *Board) Castling() Castling        { return b.castling }
func (b *Board) EnPassant() Square         { return b.epSquare }
func (b *Board) HalfmoveClock() int        { return b.halfmoveClock }
func (b *Board) FullmoveNumber() int       { return b.fullmoveNumber }
func (b *Board) Hash() ZobristKey          { return b.hash }
func (b *Board) KingSquare(c Color) Square { return b.kingSq[c] }
func (b *Board) HistoryIndex() int         { return b.historyIndex }

// At returns the piece occupying sq (Empty, Border, or a real piece).
func (b *Board) At(sq Square) Piece {
	return b.squares[sq]
}

// LastMove returns the move that led to the current position, if any.
func (b *Board) LastMove() (Move, bool) {
	if b.historyIndex == 0 {
		return Move{}, false
	}
	f := b.history[b.historyIndex-1]
	return f.move, !f.isNull
}

// LastMoveWasNull reports whether the immediately preceding ply was a
// null move (spec.md §9 Open Question 2 — an explicit flag, not a
// sentinel move value, so that a real "no previous ply" and "previous
// ply was null" are distinguishable). Consulted by the search's
// null-move pruning to avoid making two null moves in a row.
func (b *Board) LastMoveWasNull() bool {
	return b.historyIndex > 0 && b.history[b.historyIndex-1].isNull
}

func (b *Board) put(sq Square, p Piece) {
	b.squares[sq] = p
	if p.Type() == King {
		b.kingSq[p.Color()] = sq
	}
}

func (b *Board) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s += b.squares[NewSquare(file, rank)].String()
		}
		s += "\n"
	}
	return s
}
