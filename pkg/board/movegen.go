package board

// MaxMovesPerPosition bounds the pseudo-legal move count in any reachable
// chess position with generous headroom; used to size the per-ply move
// buffer (spec.md "Design notes": stack-allocated arenas, no per-node
// allocation).
const MaxMovesPerPosition = 256

// MoveList is a pre-allocated, reusable move buffer. The search keeps one
// per ply on its own call stack rather than allocating a fresh slice at
// every node.
type MoveList struct {
	moves [MaxMovesPerPosition]Move
	count int
}

func (ml *MoveList) Reset() {
	ml.count = 0
}

func (ml *MoveList) add(m Move) {
	if ml.count < MaxMovesPerPosition {
		ml.moves[ml.count] = m
		ml.count++
	}
}

// Add appends m to the list. Exported for callers (tests, the ordering
// layer) that build move lists directly rather than via GenerateMoves.
func (ml *MoveList) Add(m Move) {
	ml.add(m)
}

func (ml *MoveList) Len() int {
	return ml.count
}

func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Slice returns the generated moves as a slice backed by the list's own
// array — valid only until the next Reset/GenerateMoves call.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateMoves fills list with every pseudo-legal move for the side to
// move (spec.md §4.1). Moves may leave the mover's own king in check;
// legality is decided after the move is made, by MoveLeavesMoverInCheck
// (with IsCastlePathSafe checked beforehand for castles).
func (b *Board) GenerateMoves(list *MoveList) {
	list.Reset()
	turn := b.turn

	for sq := Square(0); sq < NumSquares12; sq++ {
		piece := b.squares[sq]
		if piece.IsEmpty() || piece.IsBorder() || piece.Color() != turn {
			continue
		}
		switch piece.Type() {
		case Pawn:
			b.generatePawnMoves(list, sq, turn)
		case Knight:
			b.generateStepMoves(list, sq, piece, knightOffsets[:])
		case King:
			b.generateStepMoves(list, sq, piece, kingOffsets[:])
		case Bishop:
			b.generateSlideMoves(list, sq, piece, bishopDirections[:])
		case Rook:
			b.generateSlideMoves(list, sq, piece, rookDirections[:])
		case Queen:
			b.generateSlideMoves(list, sq, piece, bishopDirections[:])
			b.generateSlideMoves(list, sq, piece, rookDirections[:])
		}
	}
	b.generateCastles(list)
}

func (b *Board) generatePawnMoves(list *MoveList, sq Square, turn Color) {
	piece := NewPiece(turn, Pawn)

	forward, startRank, promoRank := dirNorth, 1, 7
	capNE, capNW := dirNE, dirNW
	if turn == Black {
		forward, startRank, promoRank = dirSouth, 6, 0
		capNE, capNW = dirSE, dirSW
	}

	for _, capDir := range [2]Square{capNE, capNW} {
		to := sq + capDir
		if !to.IsOnBoard() {
			continue
		}
		target := b.squares[to]
		switch {
		case !target.IsBorder() && !target.IsEmpty() && target.Color() != turn:
			b.addPawnMove(list, piece, sq, to, target, to.Rank() == promoRank, 0)
		case to == b.epSquare && b.epSquare != 0:
			victim := to - forward
			b.addPawnMove(list, piece, sq, to, NewPiece(turn.Opponent(), Pawn), false, victim)
		}
	}

	one := sq + forward
	if b.squares[one].IsEmpty() {
		b.addPawnMove(list, piece, sq, one, Empty, one.Rank() == promoRank, 0)

		if sq.Rank() == startRank {
			two := one + forward
			if b.squares[two].IsEmpty() {
				list.add(Move{Piece: piece, From: sq, To: two})
			}
		}
	}
}

func (b *Board) addPawnMove(list *MoveList, piece Piece, from, to Square, captured Piece, promotes bool, epVictim Square) {
	if promotes {
		color := piece.Color()
		for _, t := range promotionOrder {
			list.add(Move{Piece: piece, From: from, To: to, Captured: captured, Promotion: NewPiece(color, t)})
		}
		return
	}
	list.add(Move{Piece: piece, From: from, To: to, Captured: captured, EPVictim: epVictim})
}

func (b *Board) generateStepMoves(list *MoveList, sq Square, piece Piece, offsets []Square) {
	for _, off := range offsets {
		to := sq + off
		target := b.squares[to]
		if target.IsBorder() {
			continue
		}
		if target.IsEmpty() || target.Color() != piece.Color() {
			list.add(Move{Piece: piece, From: sq, To: to, Captured: target})
		}
	}
}

func (b *Board) generateSlideMoves(list *MoveList, sq Square, piece Piece, dirs []Square) {
	for _, dir := range dirs {
		for to := sq + dir; ; to += dir {
			target := b.squares[to]
			if target.IsBorder() {
				break
			}
			if target.IsEmpty() {
				list.add(Move{Piece: piece, From: sq, To: to})
				continue
			}
			if target.Color() != piece.Color() {
				list.add(Move{Piece: piece, From: sq, To: to, Captured: target})
			}
			break
		}
	}
}

func (b *Board) generateCastles(list *MoveList) {
	switch b.turn {
	case White:
		if b.castling.IsAllowed(WhiteKingSideCastle) &&
			b.squares[F1].IsEmpty() && b.squares[G1].IsEmpty() &&
			b.squares[H1] == NewPiece(White, Rook) {
			list.add(Move{Piece: NewPiece(White, King), From: E1, To: G1})
		}
		if b.castling.IsAllowed(WhiteQueenSideCastle) &&
			b.squares[B1].IsEmpty() && b.squares[C1].IsEmpty() && b.squares[D1].IsEmpty() &&
			b.squares[A1] == NewPiece(White, Rook) {
			list.add(Move{Piece: NewPiece(White, King), From: E1, To: C1})
		}
	case Black:
		if b.castling.IsAllowed(BlackKingSideCastle) &&
			b.squares[F8].IsEmpty() && b.squares[G8].IsEmpty() &&
			b.squares[H8] == NewPiece(Black, Rook) {
			list.add(Move{Piece: NewPiece(Black, King), From: E8, To: G8})
		}
		if b.castling.IsAllowed(BlackQueenSideCastle) &&
			b.squares[B8].IsEmpty() && b.squares[C8].IsEmpty() && b.squares[D8].IsEmpty() &&
			b.squares[A8] == NewPiece(Black, Rook) {
			list.add(Move{Piece: NewPiece(Black, King), From: E8, To: C8})
		}
	}
}
