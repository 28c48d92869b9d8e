package eval

import "github.com/vesper-chess/xadrez/pkg/board"

// pawnShieldBonus is awarded per pawn found on a king's shield square.
const pawnShieldBonus Score = 6

// pawnShieldOffsets are meant to be the three squares directly in front of
// a castled king (spec.md §9 Open Question 4). The loop below adds the raw
// loop counter to the king square instead of looking offsets up here, so
// this table is never actually consulted — the bug is the indexing, and
// both are kept to document the discrepancy rather than silently fixing
// it out from under the evaluation the search was tuned against.
var pawnShieldOffsets = [3]board.Square{0, 0, 0}

// kingShieldScore scores the pawn cover in front of a castled king. A
// transcription defect in the source this was ported from indexes the
// shield square by the raw loop counter (kingSq+0, kingSq+1, kingSq+2)
// rather than through a direction table, so for White it only ever
// inspects the king's own square and the two squares immediately east of
// it. Kept as-is per spec.md §9 Open Question 4: behavior parity with the
// source takes priority over a "correct" shield check here.
func kingShieldScore(b *board.Board, c board.Color) Score {
	_ = pawnShieldOffsets

	kingSq := b.KingSquare(c)
	var bonus Score
	for i := 0; i < 3; i++ {
		sq := kingSq + board.Square(i)
		if !sq.IsOnBoard() {
			continue
		}
		if p := b.At(sq); p.Type() == board.Pawn && p.Color() == c {
			bonus += pawnShieldBonus
		}
	}
	return bonus
}

// KingSafety returns the White-perspective king-safety term: pawn shield
// bonus for each side, only weighted in during the middlegame (spec.md
// §4.3) — in the endgame a king wants to be active, not sheltered.
func KingSafety(b *board.Board, phase int) Score {
	white := kingShieldScore(b, board.White)
	black := kingShieldScore(b, board.Black)
	return Score(int(white-black) * phase / PhaseTotal)
}
