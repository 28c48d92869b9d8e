// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vesper-chess/xadrez/pkg/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string and applies it to b via Setup.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(b *board.Board, s string) error {
	// A FEN record contains six space-separated fields.
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return fmt.Errorf("invalid number of sections in FEN: %q", s)
	}

	// (1) Piece placement, from white's perspective: rank 8 down to rank 1,
	// file a through file h within each rank.
	placements, err := parsePlacement(parts[0])
	if err != nil {
		return fmt.Errorf("invalid piece placement in FEN %q: %w", s, err)
	}

	// (2) Active color: "w" or "b".
	turn, ok := parseColor(parts[1])
	if !ok {
		return fmt.Errorf("invalid active color in FEN: %q", s)
	}

	// (3) Castling availability: "-", or one or more of "KQkq".
	castling, ok := parseCastling(parts[2])
	if !ok {
		return fmt.Errorf("invalid castling rights in FEN: %q", s)
	}

	// (4) En passant target square, or "-".
	var ep board.Square
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return fmt.Errorf("invalid en passant square in FEN %q: %w", s, err)
		}
		ep = sq
	}

	// (5) Halfmove clock since the last pawn move or capture.
	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}

	// (6) Fullmove number, starting at 1 and incremented after Black's move.
	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	return b.Setup(placements, turn, castling, ep, halfmove, fullmove)
}

func parsePlacement(field string) ([]board.Placement, error) {
	var placements []board.Placement

	rank, file := 7, 0
	for _, r := range field {
		switch {
		case r == '/':
			if file != 8 {
				return nil, fmt.Errorf("rank did not fill all 8 files")
			}
			rank--
			file = 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		default:
			p, ok := board.ParsePieceLetter(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece letter %q", r)
			}
			if rank < 0 || file > 7 {
				return nil, fmt.Errorf("piece placement out of range")
			}
			placements = append(placements, board.Placement{Square: board.NewSquare(file, rank), Piece: p})
			file++
		}
	}
	if rank != 0 || file != 8 {
		return nil, fmt.Errorf("wrong number of ranks or files")
	}
	return placements, nil
}

// Encode renders the board's current position as a FEN string.
func Encode(b *board.Board) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < 8; file++ {
			p := b.At(board.NewSquare(file, rank))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(pieceLetter(p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if b.EnPassant() != 0 {
		ep = b.EnPassant().String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(b.Turn()), printCastling(b.Castling()), ep, b.HalfmoveClock(), b.FullmoveNumber())
}

func parseCastling(s string) (board.Castling, bool) {
	var ret board.Castling
	if s == "-" {
		return ret, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == 0 {
		return "-"
	}
	ret := ""
	if c.IsAllowed(board.WhiteKingSideCastle) {
		ret += "K"
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		ret += "Q"
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		ret += "k"
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		ret += "q"
	}
	return ret
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func pieceLetter(p board.Piece) rune {
	var r rune
	switch p.Type() {
	case board.Pawn:
		r = 'p'
	case board.Knight:
		r = 'n'
	case board.Bishop:
		r = 'b'
	case board.Rook:
		r = 'r'
	case board.Queen:
		r = 'q'
	case board.King:
		r = 'k'
	}
	if p.Color() == board.White {
		r = unicode.ToUpper(r)
	}
	return r
}
