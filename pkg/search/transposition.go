package search

import (
	"math/bits"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/eval"
)

// Bound records whether a stored score is exact or was cut off by alpha
// or beta (spec.md §4.5).
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound       // score is a fail-high; true value is >= score
	UpperBound       // score is a fail-low; true value is <= score
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "?"
	}
}

// ttEntry is one transposition table slot; four of them make a bucket.
type ttEntry struct {
	hash       uint64
	move       board.Move
	score      eval.Score
	depth      int16
	bound      Bound
	generation uint8
	used       bool
}

// bucketWidth is the number of entries probed/replaced together. A small
// bucket beats a single slot's replacement rate without the cost of a
// fully associative table (spec.md §4.5).
const bucketWidth = 4

type ttBucket struct {
	entries [bucketWidth]ttEntry
}

// TranspositionTable caches search results keyed by Zobrist hash, with
// four-way bucketed, generation-aware replacement (spec.md §4.5). Not
// safe for concurrent use — the search owns it for the duration of a
// call, consistent with the single-threaded model of spec.md §5.
type TranspositionTable struct {
	buckets    []ttBucket
	mask       uint64
	generation uint8
	used       int
}

// NewTranspositionTable allocates a table sized to the largest power of
// two number of buckets that fits within sizeBytes.
func NewTranspositionTable(sizeBytes uint64) *TranspositionTable {
	const bucketSize = uint64(bucketWidth) * 40 // conservative per-entry estimate
	n := sizeBytes / bucketSize
	if n == 0 {
		n = 1
	}
	pow := uint64(1) << (63 - bits.LeadingZeros64(n))

	return &TranspositionTable{
		buckets: make([]ttBucket, pow),
		mask:    pow - 1,
	}
}

// NewGeneration starts a new search generation: older entries become
// preferentially replaceable without needing to be cleared.
func (t *TranspositionTable) NewGeneration() {
	t.generation++
}

// Size returns the table's footprint in bytes.
func (t *TranspositionTable) Size() uint64 {
	return uint64(len(t.buckets)) * bucketWidth * 40
}

// Used returns the fraction of slots ever written, in [0,1].
func (t *TranspositionTable) Used() float64 {
	total := len(t.buckets) * bucketWidth
	if total == 0 {
		return 0
	}
	return float64(t.used) / float64(total)
}

// Probe looks up hash at ply, un-adjusting any mate score back to
// root-relative terms (spec.md §4.5).
func (t *TranspositionTable) Probe(hash board.ZobristKey, ply int) (move board.Move, score eval.Score, depth int, bound Bound, ok bool) {
	bucket := &t.buckets[uint64(hash)&t.mask]
	for i := range bucket.entries {
		e := &bucket.entries[i]
		if e.used && e.hash == uint64(hash) {
			e.generation = t.generation
			return e.move, adjustScoreFromTT(e.score, ply), int(e.depth), e.bound, true
		}
	}
	return board.Move{}, 0, 0, 0, false
}

// Store writes an entry into hash's bucket, adjusting a mate score to be
// ply-independent before storage (spec.md §4.5). Replacement reuses the
// slot already holding hash, else an empty slot, else prefers a slot
// from an earlier generation over one from the current generation, then
// the shallowest entry.
func (t *TranspositionTable) Store(hash board.ZobristKey, ply int, move board.Move, score eval.Score, depth int, bound Bound) {
	bucket := &t.buckets[uint64(hash)&t.mask]

	var victim *ttEntry
	for i := range bucket.entries {
		e := &bucket.entries[i]
		if !e.used {
			victim = e
			break
		}
		if e.hash == uint64(hash) {
			victim = e
			break
		}
		if victim == nil || replacementPriority(e, t.generation) < replacementPriority(victim, t.generation) {
			victim = e
		}
	}

	sameKey := victim.used && victim.hash == uint64(hash)
	if !victim.used {
		t.used++
	}
	victim.hash = uint64(hash)
	if move != (board.Move{}) || !sameKey {
		victim.move = move
	}
	victim.score = adjustScoreToTT(score, ply)
	victim.depth = int16(depth)
	victim.bound = bound
	victim.generation = t.generation
	victim.used = true
}

// replacementPriority ranks an existing entry's worth keeping: entries
// from the current generation and with greater search depth are worth
// more, and so are less likely to be evicted.
func replacementPriority(e *ttEntry, generation uint8) int {
	sameGen := 0
	if e.generation == generation {
		sameGen = 1
	}
	return sameGen*1000 + int(e.depth)
}

// adjustScoreToTT converts a mate score measured from the root into one
// measured from the current search node, so the same stored value
// is correct however deep in the tree it is later probed from.
func adjustScoreToTT(score eval.Score, ply int) eval.Score {
	if d, ok := score.MateDistance(); ok {
		if d > 0 {
			return score + eval.Score(ply)
		}
		return score - eval.Score(ply)
	}
	return score
}

// adjustScoreFromTT reverses adjustScoreToTT for a probe at ply.
func adjustScoreFromTT(score eval.Score, ply int) eval.Score {
	if d, ok := score.MateDistance(); ok {
		if d > 0 {
			return score - eval.Score(ply)
		}
		return score + eval.Score(ply)
	}
	return score
}
