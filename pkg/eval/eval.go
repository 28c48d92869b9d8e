// Package eval contains static position evaluation: material, piece-square
// tables, and king safety, phase-interpolated between opening and endgame
// weights (spec.md §4.3).
package eval

import (
	"context"

	"github.com/vesper-chess/xadrez/pkg/board"
)

// Evaluator is a static position evaluator, returning a score from White's
// perspective in centipawns.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Standard is the engine's default evaluator: material balance plus
// phase-interpolated piece-square placement and king safety.
type Standard struct{}

func (Standard) Evaluate(ctx context.Context, b *board.Board) Score {
	phase := Phase(b)

	score := Material(b) + PieceSquareScore(b) + KingSafety(b, phase)
	return Crop(score)
}

// MaterialOnly is a cheap evaluator that only sums piece values, useful as
// a baseline for tests and for comparison runs.
type MaterialOnly struct{}

func (MaterialOnly) Evaluate(ctx context.Context, b *board.Board) Score {
	return Crop(Material(b))
}
