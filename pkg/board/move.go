package board

import "fmt"

// Move is an immutable-after-creation record of a pseudo-legal move,
// as generated by Board.GenerateMoves (spec.md §3). Score is the one
// mutable field: the ordering layer fills it in before a sort and the
// search consults it, but it plays no role in move identity (Equals,
// String) or application (MakeMove/UnmakeMove).
type Move struct {
	Piece     Piece
	From, To  Square
	Captured  Piece // Empty if not a capture
	Promotion Piece // Empty if not a promotion
	EPVictim  Square // square of the captured pawn for an en passant move, else 0

	Score int32 // ordering scratch value; see pkg/search/ordering.go
}

func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

func (m Move) IsTactical() bool {
	return m.IsCapture() || m.IsPromotion()
}

func (m Move) IsEnPassant() bool {
	return m.EPVictim != 0
}

// IsWhiteKingSideCastle reports whether the move is White's O-O, judged
// purely by origin/destination against the fixed king squares (spec.md
// §3).
func (m Move) IsWhiteKingSideCastle() bool {
	return m.From == E1 && m.To == G1 && m.Piece.Type() == King
}

func (m Move) IsWhiteQueenSideCastle() bool {
	return m.From == E1 && m.To == C1 && m.Piece.Type() == King
}

func (m Move) IsBlackKingSideCastle() bool {
	return m.From == E8 && m.To == G8 && m.Piece.Type() == King
}

func (m Move) IsBlackQueenSideCastle() bool {
	return m.From == E8 && m.To == C8 && m.Piece.Type() == King
}

func (m Move) IsCastle() bool {
	return m.IsWhiteKingSideCastle() || m.IsWhiteQueenSideCastle() || m.IsBlackKingSideCastle() || m.IsBlackQueenSideCastle()
}

// CastlingRookMove returns the rook's from/to squares for a castle move.
func (m Move) CastlingRookMove() (from, to Square, ok bool) {
	switch {
	case m.IsWhiteKingSideCastle():
		return H1, F1, true
	case m.IsWhiteQueenSideCastle():
		return A1, D1, true
	case m.IsBlackKingSideCastle():
		return H8, F8, true
	case m.IsBlackQueenSideCastle():
		return A8, D8, true
	default:
		return 0, 0, false
	}
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the move in long algebraic notation: "e2e4", "g7g8q".
func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion.Type())
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// ParseMoveText parses long algebraic notation ("e2e4", "g7g8q") into its
// origin, destination, and (if present) promotion piece type (spec.md
// §6). It does not validate that the move is legal or even pseudo-legal
// in any position — callers match the result against a generated move
// list to recover the full Move record.
func ParseMoveText(s string) (from, to Square, promotion PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, NoPieceType, fmt.Errorf("invalid move text: %q", s)
	}
	from, err = ParseSquare(s[0:2])
	if err != nil {
		return 0, 0, NoPieceType, fmt.Errorf("invalid move text %q: %w", s, err)
	}
	to, err = ParseSquare(s[2:4])
	if err != nil {
		return 0, 0, NoPieceType, fmt.Errorf("invalid move text %q: %w", s, err)
	}
	if len(s) == 5 {
		p, ok := ParsePieceLetter(rune(s[4]))
		if !ok {
			return 0, 0, NoPieceType, fmt.Errorf("invalid promotion piece in move text: %q", s)
		}
		promotion = p.Type()
	}
	return from, to, promotion, nil
}

// FormatMoves renders a slice of moves space-separated, as used in PV
// info lines (spec.md §4.6).
func FormatMoves(moves []Move) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
