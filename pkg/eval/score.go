package eval

import (
	"fmt"

	"github.com/vesper-chess/xadrez/pkg/board"
)

// Score is a signed position or move score in centipawns. Positive favors
// White. Mate scores are encoded near the extremes of the range so that
// MateDistance can recover the distance to mate from a stored score
// (spec.md §4.5, §4.6).
type Score int32

const (
	MinScore Score = -1000000
	MaxScore Score = 1000000
	NegInf         = MinScore - 1
	Inf            = MaxScore + 1

	// Mate is the magnitude of a checkmate score: a checkmated side to
	// move scores -Mate, before ply-distance adjustment.
	Mate Score = MaxScore - 1000
)

func (s Score) String() string {
	if d, ok := s.MateDistance(); ok {
		return fmt.Sprintf("mate %d", d)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// MateDistance returns the number of full moves to deliver (positive) or
// receive (negative) mate, if s encodes a mate score.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= Mate-1000:
		plies := int(Mate - s)
		return (plies + 1) / 2, true
	case s <= -Mate+1000:
		plies := int(s + Mate)
		return -((plies + 1) / 2), true
	default:
		return 0, false
	}
}

// IsMate reports whether s encodes a forced mate in either direction.
func (s Score) IsMate() bool {
	_, ok := s.MateDistance()
	return ok
}

// Unit returns the signed unit for the color: +1 for White, -1 for Black.
func Unit(c board.Color) Score {
	return Score(c.Unit())
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
