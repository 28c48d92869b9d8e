package board

// IsSquareAttacked reports whether any piece of color `by` attacks sq
// (spec.md §4.1). Checked in the order the spec lists: pawn, knight,
// rook/queen rays, bishop/queen rays, king — grounded on
// Mgrdich-TermChess/internal/engine/attacks.go's offset-scan idiom,
// translated to the 12x12 mailbox's border-stops-the-scan style instead
// of explicit file/rank bounds checks.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawn attacks: a pawn of color `by` attacks from the two squares
	// diagonally behind sq, from that pawn's own forward direction.
	var p1, p2 Square
	if by == White {
		p1, p2 = sq+dirSW, sq+dirSE
	} else {
		p1, p2 = sq+dirNW, sq+dirNE
	}
	if piece := b.squares[p1]; piece.Type() == Pawn && piece.Color() == by {
		return true
	}
	if piece := b.squares[p2]; piece.Type() == Pawn && piece.Color() == by {
		return true
	}

	for _, off := range knightOffsets {
		piece := b.squares[sq+off]
		if piece.Type() == Knight && piece.Color() == by {
			return true
		}
	}

	for _, dir := range rookDirections {
		if b.rayAttacked(sq, dir, by, Rook) {
			return true
		}
	}
	for _, dir := range bishopDirections {
		if b.rayAttacked(sq, dir, by, Bishop) {
			return true
		}
	}

	for _, off := range kingOffsets {
		piece := b.squares[sq+off]
		if piece.Type() == King && piece.Color() == by {
			return true
		}
	}
	return false
}

// rayAttacked slides from sq in dir, stopping at the border or the first
// occupied square. slideType is Rook for orthogonal rays or Bishop for
// diagonal rays; Queen attacks either way.
func (b *Board) rayAttacked(sq, dir Square, by Color, slideType PieceType) bool {
	for cur := sq + dir; ; cur += dir {
		piece := b.squares[cur]
		if piece.IsBorder() {
			return false
		}
		if piece.IsEmpty() {
			continue
		}
		if piece.Color() == by && (piece.Type() == slideType || piece.Type() == Queen) {
			return true
		}
		return false
	}
}

// IsInCheck reports whether color c's king is currently attacked.
func (b *Board) IsInCheck(c Color) bool {
	return b.IsSquareAttacked(b.kingSq[c], c.Opponent())
}
