package board

// IsFiftyMoveDraw reports whether the fifty-move rule applies: 100 plies
// (50 full moves by each side) without a pawn move or capture (spec.md
// §4.1).
func (b *Board) IsFiftyMoveDraw() bool {
	return b.halfmoveClock >= 100
}

// IsThreefoldRepetition reports whether the current position has
// occurred at least twice before since the last irreversible move
// (spec.md §9 Open Question 1: the literal source tests repetitions > 1,
// i.e. three total occurrences including the current one, not the
// first repeat).
func (b *Board) IsThreefoldRepetition() bool {
	count := 0
	limit := b.halfmoveClock
	if limit > b.historyIndex {
		limit = b.historyIndex
	}
	for i := 2; i <= limit; i += 2 {
		frame := b.history[b.historyIndex-i]
		if frame.hash == b.hash {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// IsDraw reports whether the position is drawn by the fifty-move rule or
// repetition. Stalemate is decided by the search, which has the move
// list; insufficient-material draws are not detected.
func (b *Board) IsDraw() bool {
	return b.IsFiftyMoveDraw() || b.IsThreefoldRepetition()
}

// HasNonPawnMaterial reports whether color c holds any piece other than
// its king and pawns. The search uses this to withhold null-move pruning
// in pawn/king-only endgames, where zugzwang makes the null-move
// assumption unsound (spec.md §4.6).
func (b *Board) HasNonPawnMaterial(c Color) bool {
	for sq := Square(0); sq < NumSquares12; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() || p.IsBorder() || p.Color() != c {
			continue
		}
		if t := p.Type(); t != King && t != Pawn {
			return true
		}
	}
	return false
}
