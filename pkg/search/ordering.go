package search

import (
	"sort"

	"github.com/vesper-chess/xadrez/pkg/board"
)

// ttMoveBonus separates the transposition table's suggested move — always
// ordered first — from every other move (spec.md §4.4).
const ttMoveBonus int32 = 100_000_000

// mvvLvaScale is the multiplier applied to the (victim, attacker) term so
// it always outranks any history score (spec.md §4.4).
const mvvLvaScale int32 = 10_000

// MVVLVA scores a capture by Most Valuable Victim, Least Valuable
// Attacker: `(victim_type·6 + 5 − attacker_type) · 10⁴`, with 5 subtracted
// from the inner expression first when the move is also a promotion
// (spec.md §4.4).
func MVVLVA(m board.Move) int32 {
	victim := int32(m.Captured.Type())
	attacker := int32(m.Piece.Type())
	inner := victim*6 + 5 - attacker
	if m.IsPromotion() {
		inner -= 5
	}
	return inner * mvvLvaScale
}

// historyOverflow is the counter ceiling from spec.md §4.4: once any
// counter exceeds this, every counter is divided by 8 rather than
// letting quiet-move scores grow without bound across a long game.
const historyOverflow int32 = 9000

// historyPieceCount and historyDestCount size the history table to
// spec.md §3's literal shape: one counter per (piece_index, dest_8x8)
// pair, 12 × 64, generalizing a quiet move's score across every origin
// square the piece could have moved from.
const (
	historyPieceCount = 12
	historyDestCount  = 64
)

// HistoryTable tracks how often a quiet move of a given piece to a given
// destination has raised alpha or caused a beta cutoff (spec.md §3,
// §4.4).
type HistoryTable struct {
	scores [historyPieceCount][historyDestCount]int32
}

func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

// pieceIndex maps (color, piece type 1..6) to 0..11, with Black offset by
// 6 (spec.md §4.4).
func pieceIndex(p board.Piece) int {
	idx := int(p.Type()) - 1
	if p.Color() == board.Black {
		idx += 6
	}
	return idx
}

func (h *HistoryTable) Score(m board.Move) int32 {
	return h.scores[pieceIndex(m.Piece)][m.To.To8x8()]
}

// Reset zeroes every counter. Run once at the start of each top-level
// search call (spec.md §4.6).
func (h *HistoryTable) Reset() {
	*h = HistoryTable{}
}

// Record credits a quiet move that raised alpha or caused a beta cutoff,
// adding depth to its counter (spec.md §4.4). If any counter then
// exceeds historyOverflow, every counter is divided by 8.
func (h *HistoryTable) Record(m board.Move, depth int) {
	i, j := pieceIndex(m.Piece), m.To.To8x8()
	h.scores[i][j] += int32(depth)
	if h.scores[i][j] > historyOverflow {
		h.age()
	}
}

func (h *HistoryTable) age() {
	for i := range h.scores {
		for j := range h.scores[i] {
			h.scores[i][j] /= 8
		}
	}
}

// OrderMoves scores every move in list for sorting: the transposition
// table's move first, captures next by MVV/LVA, then every other move
// (including non-capture promotions) by history score (spec.md §4.4).
func OrderMoves(list *board.MoveList, ttMove board.Move, hasTTMove bool, hist *HistoryTable) {
	n := list.Len()
	for i := 0; i < n; i++ {
		m := list.At(i)
		switch {
		case hasTTMove && m.Equals(ttMove):
			m.Score = ttMoveBonus
		case m.IsCapture():
			m.Score = MVVLVA(m)
		default:
			m.Score = hist.Score(m)
		}
		list.Set(i, m)
	}

	moves := list.Slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}
