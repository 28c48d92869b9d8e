package board

// Perft counts the leaf nodes of the legal move tree below the current
// position to the given depth. Used by cmd/perft and by the board
// package's own tests to validate move generation against known node
// counts (spec.md §8).
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list MoveList
	b.GenerateMoves(&list)

	mover := b.turn
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsCastle() && !b.IsCastlePathSafe(m) {
			continue
		}
		b.MakeMove(m)
		if !b.MoveLeavesMoverInCheck(mover) {
			nodes += b.Perft(depth - 1)
		}
		b.UnmakeMove()
	}
	return nodes
}
