package board

// PieceType identifies a kind of chess piece, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return " "
	}
}

// Piece is a signed piece code: positive values are White pieces (the
// PieceType's own value), negative values are Black pieces (the negated
// PieceType value). Empty is zero. Border is a distinguished sentinel that
// can never collide with a real piece code (see spec.md §3, §9 Open
// Question 5 — color inversion is exactly negation of this encoding).
type Piece int8

const (
	Empty  Piece = 0
	Border Piece = 100
)

// NewPiece builds the signed piece code for a color/type pair.
func NewPiece(c Color, t PieceType) Piece {
	if c == Black {
		return Piece(-t)
	}
	return Piece(t)
}

// Type returns the piece's kind, ignoring color. Empty and Border both
// report NoPieceType.
func (p Piece) Type() PieceType {
	switch {
	case p == Empty || p == Border:
		return NoPieceType
	case p < 0:
		return PieceType(-p)
	default:
		return PieceType(p)
	}
}

// Color returns the piece's color. Empty and Border report NoColor.
func (p Piece) Color() Color {
	switch {
	case p > 0 && p != Border:
		return White
	case p < 0:
		return Black
	default:
		return NoColor
	}
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

func (p Piece) IsBorder() bool {
	return p == Border
}

// Invert returns the piece with its color flipped (spec.md §9 Open
// Question 5). UnmakeMove does not call it: it rebuilds an en passant
// victim directly as a pawn of the opposite color to the mover.
func (p Piece) Invert() Piece {
	return -p
}

func (p Piece) String() string {
	switch {
	case p == Empty:
		return "."
	case p == Border:
		return "X"
	case p.Color() == White:
		switch p.Type() {
		case Pawn:
			return "P"
		case Knight:
			return "N"
		case Bishop:
			return "B"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		}
	}
	return p.Type().String()
}

// ParsePieceLetter parses a FEN-style piece letter ("P".."K", "p".."k").
func ParsePieceLetter(r rune) (Piece, bool) {
	var t PieceType
	switch r {
	case 'P', 'p':
		t = Pawn
	case 'N', 'n':
		t = Knight
	case 'B', 'b':
		t = Bishop
	case 'R', 'r':
		t = Rook
	case 'Q', 'q':
		t = Queen
	case 'K', 'k':
		t = King
	default:
		return Empty, false
	}
	if r >= 'a' && r <= 'z' {
		return NewPiece(Black, t), true
	}
	return NewPiece(White, t), true
}
