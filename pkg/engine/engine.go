// Package engine is the outward-facing facade over board, eval, and
// search: it owns the live position plus the engine-lifetime
// transposition and history tables, and exposes the collaborator API of
// spec.md §6 (new_game, set_position/apply_move, search, undo_last).
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/board/fen"
	"github.com/vesper-chess/xadrez/pkg/eval"
	"github.com/vesper-chess/xadrez/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// defaultHashBytes is the transposition table footprint used when the
// caller doesn't configure one (spec.md §4.5's 500,000-bucket reference
// size, at the table's own per-bucket byte estimate).
const defaultHashBytes = 500_000 * 4 * 40

// Options configure an Engine at construction (spec.md §4.6, §6).
type Options struct {
	// HashBytes is the transposition table size. Zero selects
	// defaultHashBytes.
	HashBytes uint64
	// NoiseCP adds centipawn-scale randomness to leaf evaluation, mainly
	// useful for decorrelating self-play test games. Zero disables it.
	NoiseCP int
	// Seed is the Zobrist table's random seed. Engines sharing a seed
	// produce identical hashes for identical positions.
	Seed int64
}

// Engine encapsulates game state, search, and evaluation behind the
// synchronous API the wire-protocol adapter drives (spec.md §5: the
// search owns the board exclusively and nothing here may suspend).
type Engine struct {
	name, author string

	zt *board.ZobristTable
	se *search.Engine

	mu sync.Mutex
	b  *board.Board
}

// New returns an Engine reset to the standard starting position.
func New(ctx context.Context, name, author string, opts Options) *Engine {
	if opts.HashBytes == 0 {
		opts.HashBytes = defaultHashBytes
	}

	zt := board.NewZobristTable(opts.Seed)
	var ev eval.Evaluator = eval.Standard{}
	if opts.NoiseCP > 0 {
		ev = eval.NewRandom(eval.Standard{}, opts.NoiseCP, opts.Seed)
	}

	e := &Engine{
		name:   name,
		author: author,
		zt:     zt,
		se:     search.NewEngine(ev, search.NewTranspositionTable(opts.HashBytes)),
	}
	_ = e.NewGame(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, hash=%v bytes, noise=%vcp", e.Name(), opts.HashBytes, opts.NoiseCP)
	return e
}

// Name returns the engine's name and version, as reported to the
// collaborator (spec.md §6).
func (e *Engine) Name() string {
	return fmt.Sprintf("%s %s", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

// NewGame resets the position to the given FEN. The transposition and
// history tables persist across games, per spec.md §6's "optional: keep
// TT across games".
func (e *Engine) NewGame(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := board.NewBoard(e.zt)
	if err := fen.Decode(b, position); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.b = b

	logw.Infof(ctx, "New game: %v", position)
	return nil
}

// SetPosition is an alias for NewGame matching spec.md §6's naming of
// the collaborator API (FEN parsing is delegated to pkg/board/fen).
func (e *Engine) SetPosition(ctx context.Context, position string) error {
	return e.NewGame(ctx, position)
}

// ApplyMove parses text as long algebraic notation and plays it if it
// names a pseudo-legal move that does not leave the mover in check
// (spec.md §6). Engine state is unchanged on any error.
func (e *Engine) ApplyMove(ctx context.Context, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	from, to, promotion, err := board.ParseMoveText(text)
	if err != nil {
		return err
	}

	var list board.MoveList
	e.b.GenerateMoves(&list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From != from || m.To != to || m.Promotion.Type() != promotion {
			continue
		}
		if m.IsCastle() && !e.b.IsCastlePathSafe(m) {
			return fmt.Errorf("illegal move: %v", text)
		}

		mover := e.b.Turn()
		e.b.MakeMove(m)
		if e.b.MoveLeavesMoverInCheck(mover) {
			e.b.UnmakeMove()
			return fmt.Errorf("illegal move: %v", text)
		}

		logw.Infof(ctx, "Move %v: %v", m, e.b)
		return nil
	}
	return fmt.Errorf("invalid move: %v", text)
}

// UndoLast pops one ply, if any has been played (spec.md §6).
func (e *Engine) UndoLast(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.b.HistoryIndex() == 0 {
		return fmt.Errorf("no move to take back")
	}
	e.b.UnmakeMove()

	logw.Infof(ctx, "Takeback: %v", e.b)
	return nil
}

// Search runs iterative deepening for the given time budget and depth
// limit and returns the long-algebraic text of the best move found
// (spec.md §6). info is called each time the root's alpha is raised
// with a formatted info line, matching spec.md §6's wire
// output: "<depth> <centipawn_score> <elapsed_seconds> <nodes> <pv...>".
func (e *Engine) Search(ctx context.Context, budgetMS, depthLimit int, info func(string)) (string, error) {
	e.mu.Lock()
	b := e.b
	e.mu.Unlock()

	logw.Infof(ctx, "Search %v, budgetMS=%v, depthLimit=%v", b, budgetMS, depthLimit)

	limits := search.Limits{BudgetMS: budgetMS, DepthLimit: depthLimit}
	pv := e.se.Search(ctx, b, limits, func(line search.PV) {
		if info != nil {
			info(formatInfoLine(line))
		}
	})

	logw.Infof(ctx, "Search done: %v", pv)
	if len(pv.Moves) == 0 {
		return "", nil
	}
	return pv.Moves[0].String(), nil
}

// Board returns the live board. Callers must not mutate it concurrently
// with a Search call in progress (spec.md §5).
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b
}

// Position renders the current position as FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.b)
}

func formatInfoLine(pv search.PV) string {
	cp := int(pv.Score)
	return fmt.Sprintf("%d %d %.4f %d %s", pv.Depth, cp, pv.Time.Seconds(), pv.Nodes, board.FormatMoves(pv.Moves))
}
