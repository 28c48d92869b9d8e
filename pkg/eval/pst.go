package eval

import "github.com/vesper-chess/xadrez/pkg/board"

// PhaseTotal is the maximum game phase weight, reached with all officers
// still on the board; interpolation between the opening and endgame
// tables below is phase/PhaseTotal (spec.md §4.3, §9 Open Question 3:
// pawns carry zero phase weight).
const PhaseTotal = 24

var phaseWeight = [7]int{
	board.NoPieceType: 0,
	board.Pawn:        0,
	board.Knight:      1,
	board.Bishop:      1,
	board.Rook:        2,
	board.Queen:       4,
	board.King:        0,
}

// Phase returns the current game phase in [0, PhaseTotal], PhaseTotal at
// the start of the game and 0 once all officers are off the board.
func Phase(b *board.Board) int {
	phase := 0
	for sq := board.Square(0); sq < board.NumSquares12; sq++ {
		p := b.At(sq)
		if p.IsEmpty() || p.IsBorder() {
			continue
		}
		phase += phaseWeight[p.Type()]
	}
	if phase > PhaseTotal {
		phase = PhaseTotal
	}
	return phase
}

// pst64 tables are written a8..h1, matching how a board diagram reads
// top to bottom, left to right — rank 8 first, file a first.
type pst64 = [64]int

var (
	pawnMG = pst64{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEG = pst64{
		0, 0, 0, 0, 0, 0, 0, 0,
		80, 80, 80, 80, 80, 80, 80, 80,
		50, 50, 50, 50, 50, 50, 50, 50,
		30, 30, 30, 30, 30, 30, 30, 30,
		20, 20, 20, 20, 20, 20, 20, 20,
		10, 10, 10, 10, 10, 10, 10, 10,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = pst64{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPST = pst64{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPST = pst64{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	queenPST = pst64{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMG = pst64{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
	kingEG = pst64{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

func pstLookup(table *pst64, sq board.Square, c board.Color) int {
	idx64 := sq.To8x8()
	rank, file := idx64/8, idx64%8
	if c == board.White {
		rank = 7 - rank
	}
	return table[rank*8+file]
}

// pawnCenterBonus rewards the two classic center squares beyond what the
// advancement table already gives them, mirrored by color (spec.md §4.3):
// +20 on d4/e4 (White) or d5/e5 (Black), +10 on d3/e3 (White) or d6/e6
// (Black). Opening term only — it plays no part in the endgame score.
func pawnCenterBonus(sq board.Square, c board.Color) int {
	file := sq.File()
	if file != 3 && file != 4 {
		return 0
	}
	rank := sq.Rank()
	if c == board.Black {
		rank = 7 - rank
	}
	switch rank {
	case 3:
		return 20
	case 2:
		return 10
	default:
		return 0
	}
}

// rookOpeningTerm scores a rook still on its own back rank by the pawns
// ahead of it on its file: +10 if the file holds no pawns at all (open),
// +5 if only enemy pawns block it (semi-open) (spec.md §4.3).
func rookOpeningTerm(b *board.Board, sq board.Square, c board.Color) int {
	backRank := 0
	if c == board.Black {
		backRank = 7
	}
	if sq.Rank() != backRank {
		return 0
	}

	file := sq.File()
	hasOwnPawn, hasEnemyPawn := false, false
	for r := 0; r < 8; r++ {
		s := board.NewSquare(file, r)
		if s == sq {
			continue
		}
		p := b.At(s)
		if p.Type() != board.Pawn {
			continue
		}
		if p.Color() == c {
			hasOwnPawn = true
		} else {
			hasEnemyPawn = true
		}
	}
	switch {
	case !hasOwnPawn && !hasEnemyPawn:
		return 10
	case !hasOwnPawn && hasEnemyPawn:
		return 5
	default:
		return 0
	}
}

// rookEndgameTerm rewards a rook that has reached the 7th rank (counted
// from its own side) with +3 per enemy pawn still sitting on that rank
// (spec.md §4.3).
func rookEndgameTerm(b *board.Board, sq board.Square, c board.Color) int {
	seventh := 6
	if c == board.Black {
		seventh = 1
	}
	if sq.Rank() != seventh {
		return 0
	}

	count := 0
	for f := 0; f < 8; f++ {
		p := b.At(board.NewSquare(f, seventh))
		if p.Type() == board.Pawn && p.Color() != c {
			count++
		}
	}
	return count * 3
}

// pieceSquareComponents returns the opening and endgame positional values
// of a single piece occupying sq, from its own color's perspective, before
// phase interpolation (spec.md §4.3).
func pieceSquareComponents(b *board.Board, t board.PieceType, sq board.Square, c board.Color) (mg, eg int) {
	switch t {
	case board.Pawn:
		return pstLookup(&pawnMG, sq, c) + pawnCenterBonus(sq, c), pstLookup(&pawnEG, sq, c)
	case board.Knight:
		v := pstLookup(&knightPST, sq, c)
		return v, v
	case board.Bishop:
		v := pstLookup(&bishopPST, sq, c)
		return v, v
	case board.Rook:
		base := pstLookup(&rookPST, sq, c)
		return base + rookOpeningTerm(b, sq, c), base + rookEndgameTerm(b, sq, c)
	case board.Queen:
		// Material + half the centralization table in endgame only
		// (spec.md §4.3) — the opening score gets no queen PST term.
		return 0, pstLookup(&queenPST, sq, c) / 2
	case board.King:
		return pstLookup(&kingMG, sq, c), pstLookup(&kingEG, sq, c)
	default:
		return 0, 0
	}
}

// PieceSquareScore sums the phase-interpolated piece-square value of every
// piece on the board, from White's perspective.
func PieceSquareScore(b *board.Board) Score {
	phase := Phase(b)

	var score int
	for sq := board.Square(0); sq < board.NumSquares12; sq++ {
		p := b.At(sq)
		if p.IsEmpty() || p.IsBorder() {
			continue
		}
		mg, eg := pieceSquareComponents(b, p.Type(), sq, p.Color())
		v := (mg*phase + eg*(PhaseTotal-phase)) / PhaseTotal
		if p.Color() == board.Black {
			v = -v
		}
		score += v
	}
	return Score(score)
}
