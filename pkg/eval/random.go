package eval

import (
	"context"
	"math/rand"

	"github.com/vesper-chess/xadrez/pkg/board"
)

// Random wraps another Evaluator and adds a small amount of noise to its
// score, from -limit/2 up to limit-1-limit/2 centipawns. A limit of zero
// disables the noise entirely. Used to de-correlate otherwise identical
// engine instances in self-play testing.
type Random struct {
	inner Evaluator
	rand  *rand.Rand
	limit int
}

func NewRandom(inner Evaluator, limit int, seed int64) Random {
	return Random{
		inner: inner,
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	base := n.inner.Evaluate(ctx, b)
	if n.limit <= 0 {
		return base
	}
	return base + Score(n.rand.Intn(n.limit)-n.limit/2)
}
