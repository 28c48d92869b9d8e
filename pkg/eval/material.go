package eval

import "github.com/vesper-chess/xadrez/pkg/board"

// Nominal centipawn piece values (spec.md §4.3). The pawn is valued at 90
// rather than the traditional 100 to leave headroom for the positional
// terms below to meaningfully outweigh it.
const (
	PawnValue   Score = 90
	KnightValue Score = 300
	BishopValue Score = 330
	RookValue   Score = 500
	QueenValue  Score = 900
	KingValue   Score = 20000
)

// NominalValue returns the absolute centipawn value of a piece type.
func NominalValue(t board.PieceType) Score {
	switch t {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	case board.King:
		return KingValue
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of playing m: the value of
// whatever is captured, plus the value added by promoting a pawn.
func NominalValueGain(m board.Move) Score {
	var gain Score
	if m.IsCapture() {
		gain += NominalValue(m.Captured.Type())
	}
	if m.IsPromotion() {
		gain += NominalValue(m.Promotion.Type()) - PawnValue
	}
	return gain
}

// Material returns the material balance of the position from White's
// perspective.
func Material(b *board.Board) Score {
	var score Score
	for sq := board.Square(0); sq < board.NumSquares12; sq++ {
		p := b.At(sq)
		if p.IsEmpty() || p.IsBorder() {
			continue
		}
		v := NominalValue(p.Type())
		if p.Color() == board.Black {
			v = -v
		}
		score += v
	}
	return score
}
