package board

// MakeMove applies a pseudo-legal move to the board, pushing enough state
// onto the history stack for UnmakeMove to reverse it exactly (spec.md
// §4.1). It does not check legality — callers must follow with
// MoveLeavesMoverInCheck (or equivalent) and Unmake the move if illegal.
func (b *Board) MakeMove(m Move) {
	frame := historyFrame{
		move:           m,
		castling:       b.castling,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		epSquare:       b.epSquare,
		hash:           b.hash,
	}
	b.history[b.historyIndex] = frame
	b.historyIndex++

	mover := b.turn

	b.put(m.From, Empty)
	if m.IsEnPassant() {
		b.put(m.EPVictim, Empty)
	}

	placed := m.Piece
	if m.IsPromotion() {
		placed = m.Promotion
	}
	b.put(m.To, placed)

	if rookFrom, rookTo, ok := m.CastlingRookMove(); ok {
		rook := b.squares[rookFrom]
		b.put(rookFrom, Empty)
		b.put(rookTo, rook)
	}

	b.castling = b.updatedCastlingRights(m)

	if m.Piece.Type() == Pawn && abs16(int16(m.To-m.From)) == 24 {
		b.epSquare = (m.From + m.To) / 2
	} else {
		b.epSquare = 0
	}

	if m.Piece.Type() == Pawn || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if mover == Black {
		b.fullmoveNumber++
	}
	b.turn = mover.Opponent()

	b.hash = b.zt.FullHash(b)
	b.assertInvariants()
}

// UnmakeMove reverses the most recent MakeMove (or MakeNullMove).
func (b *Board) UnmakeMove() {
	if b.LastMoveWasNull() {
		b.UnmakeNullMove()
		return
	}
	b.historyIndex--
	frame := b.history[b.historyIndex]
	m := frame.move

	b.turn = b.turn.Opponent()
	mover := b.turn

	if rookFrom, rookTo, ok := m.CastlingRookMove(); ok {
		rook := b.squares[rookTo]
		b.put(rookTo, Empty)
		b.put(rookFrom, rook)
	}

	b.put(m.From, m.Piece)
	if m.IsEnPassant() {
		b.put(m.To, Empty)
		b.put(m.EPVictim, NewPiece(mover.Opponent(), Pawn))
	} else {
		b.put(m.To, m.Captured)
	}

	b.castling = frame.castling
	b.epSquare = frame.epSquare
	b.halfmoveClock = frame.halfmoveClock
	b.fullmoveNumber = frame.fullmoveNumber
	b.hash = frame.hash
	b.assertInvariants()
}

// MakeNullMove passes the turn without moving a piece, used by the
// search's null-move pruning (spec.md §4.6). The en passant target is
// always cleared, since no pawn just moved.
func (b *Board) MakeNullMove() {
	frame := historyFrame{
		isNull:         true,
		castling:       b.castling,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		epSquare:       b.epSquare,
		hash:           b.hash,
	}
	b.history[b.historyIndex] = frame
	b.historyIndex++

	if b.turn == Black {
		b.fullmoveNumber++
	}
	b.turn = b.turn.Opponent()
	b.epSquare = 0
	b.hash = b.zt.FullHash(b)
	b.assertInvariants()
}

// UnmakeNullMove reverses the most recent MakeNullMove.
func (b *Board) UnmakeNullMove() {
	b.historyIndex--
	frame := b.history[b.historyIndex]

	b.turn = b.turn.Opponent()
	b.castling = frame.castling
	b.epSquare = frame.epSquare
	b.halfmoveClock = frame.halfmoveClock
	b.fullmoveNumber = frame.fullmoveNumber
	b.hash = frame.hash
	b.assertInvariants()
}

// updatedCastlingRights returns the castling rights remaining after m,
// clearing rights on king moves, rook moves off their origin square, and
// captures landing on a corner rook square (spec.md §4.1).
func (b *Board) updatedCastlingRights(m Move) Castling {
	rights := b.castling

	switch m.Piece.Type() {
	case King:
		if m.Piece.Color() == White {
			rights = rights.Without(WhiteKingSideCastle | WhiteQueenSideCastle)
		} else {
			rights = rights.Without(BlackKingSideCastle | BlackQueenSideCastle)
		}
	case Rook:
		rights = rights.Without(rookOriginRight(m.From))
	}
	rights = rights.Without(rookOriginRight(m.To))

	return rights
}

func rookOriginRight(sq Square) Castling {
	switch sq {
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	default:
		return 0
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// MoveLeavesMoverInCheck reports whether, with m already made, the side
// that just moved (the opposite of the current side to move) is in
// check — i.e. whether m was illegal. Castling additionally requires the
// king's origin, transit, and destination squares to be unattacked; the
// caller is expected to have validated that separately before calling
// MakeMove; this only re-checks the destination, which suffices once the
// transit squares were pre-checked by IsCastlePathSafe.
func (b *Board) MoveLeavesMoverInCheck(mover Color) bool {
	return b.IsInCheck(mover)
}

// IsCastlePathSafe reports whether none of a castle's origin, transit, and
// destination squares are attacked by the opponent — required before
// MakeMove is called for a castling move (spec.md §4.1).
func (b *Board) IsCastlePathSafe(m Move) bool {
	opp := m.Piece.Color().Opponent()
	step := Square(1)
	if m.To < m.From {
		step = -1
	}
	for sq := m.From; ; sq += step {
		if b.IsSquareAttacked(sq, opp) {
			return false
		}
		if sq == m.To {
			return true
		}
	}
}
