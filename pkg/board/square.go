package board

import "fmt"

// Square indexes a 12x12 mailbox board (spec.md §3). The usable 8x8 board
// lives at rows and columns 2..9; the two-wide border on every side lets
// knight and king move generation probe off-board without bounds checks —
// the border sentinel (Piece.Border) stops the scan instead.
type Square int16

const boardWidth = 12

// NumSquares12 is the size of the padded mailbox array.
const NumSquares12 = boardWidth * boardWidth

// NewSquare returns the mailbox index for the given 0-based file (0=a..7=h)
// and rank (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	return Square((rank+2)*boardWidth + (file + 2))
}

// To8x8 converts a mailbox index to a 0..63 index (a1=0 .. h8=63), per
// spec.md §3's conversion formula.
func (s Square) To8x8() int {
	return (int(s)/boardWidth-2)*8 + (int(s)%boardWidth - 2)
}

// FromIndex64 builds a Square from a 0..63 index (a1=0 .. h8=63).
func FromIndex64(i int) Square {
	return NewSquare(i%8, i/8)
}

// File returns the 0-based file (0=a..7=h) of a square known to be on the
// usable board.
func (s Square) File() int {
	return int(s)%boardWidth - 2
}

// Rank returns the 0-based rank (0=rank1..7=rank8) of a square known to be
// on the usable board.
func (s Square) Rank() int {
	return int(s)/boardWidth - 2
}

// IsOnBoard reports whether the index falls within the padded 12x12 array.
func (s Square) IsOnBoard() bool {
	return s >= 0 && s < NumSquares12
}

func (s Square) String() string {
	f, r := s.File(), s.Rank()
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(f), '1'+byte(r))
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	f := str[0]
	r := str[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	return NewSquare(int(f-'a'), int(r-'1')), nil
}

// Fixed squares used for castling-path and king-shield computations.
var (
	E1 = NewSquare(4, 0)
	G1 = NewSquare(6, 0)
	C1 = NewSquare(2, 0)
	A1 = NewSquare(0, 0)
	H1 = NewSquare(7, 0)
	F1 = NewSquare(5, 0)
	D1 = NewSquare(3, 0)
	B1 = NewSquare(1, 0)

	E8 = NewSquare(4, 7)
	G8 = NewSquare(6, 7)
	C8 = NewSquare(2, 7)
	A8 = NewSquare(0, 7)
	H8 = NewSquare(7, 7)
	F8 = NewSquare(5, 7)
	D8 = NewSquare(3, 7)
	B8 = NewSquare(1, 7)
)

// Direction offsets on the 12-wide mailbox.
const (
	dirNorth Square = boardWidth
	dirSouth Square = -boardWidth
	dirEast  Square = 1
	dirWest  Square = -1

	dirNE Square = boardWidth + 1
	dirNW Square = boardWidth - 1
	dirSE Square = -boardWidth + 1
	dirSW Square = -boardWidth - 1
)

// rookDirections are the four orthogonal slide directions (rook/queen).
var rookDirections = [4]Square{dirNorth, dirSouth, dirEast, dirWest}

// bishopDirections are the four diagonal slide directions (bishop/queen).
var bishopDirections = [4]Square{dirNE, dirNW, dirSE, dirSW}

// kingOffsets are the eight adjacent-square deltas (king, and queen is the
// union of rook+bishop directions so needs no offset list of its own).
var kingOffsets = [8]Square{dirNorth, dirSouth, dirEast, dirWest, dirNE, dirNW, dirSE, dirSW}

// knightOffsets are the eight L-jump deltas on the 12-wide mailbox.
var knightOffsets = [8]Square{25, 23, 14, 10, -10, -14, -23, -25}
