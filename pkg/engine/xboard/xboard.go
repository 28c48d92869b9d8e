// Package xboard contains a driver for using the engine under the
// XBoard/CECP line protocol (spec.md §6).
//
// See: https://www.gnu.org/software/xboard/engine-intf.html
package xboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/logw"

	"github.com/vesper-chess/xadrez/pkg/board/fen"
	"github.com/vesper-chess/xadrez/pkg/engine"
)

const ProtocolName = "xboard"

// defaultBudgetMS is used for "go" when the adapter has received neither
// "st" nor "time" (spec.md §6).
const defaultBudgetMS = 5000

// Driver implements an XBoard/CECP driver for an engine. The protocol,
// and the search it drives, are synchronous: a "go" line blocks the
// driver until the search returns (spec.md §5 — the search owns the
// board exclusively; nothing here may suspend mid-search).
type Driver struct {
	e   *engine.Engine
	out chan<- string

	forced bool
	post   bool

	stSeconds  int // "st N": fixed per-move budget, in seconds. 0 = unset.
	sdDepth    int // "sd N": depth ceiling. 0 = unset (use engine default).
	clockCenti int // "time N": remaining clock, in centiseconds. 0 = unset.
}

// NewDriver starts a driver reading commands from in and returns it
// along with the channel it writes engine output to. The driver closes
// out when in closes or a "quit" command is received.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{e: e, out: out}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.out)

	logw.Infof(ctx, "XBoard protocol initialized")

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "xboard", "protover":
			// Handshake noise the adapter doesn't need to act on.

		case "new":
			d.forced = true
			d.stSeconds, d.sdDepth, d.clockCenti = 0, 0, 0
			if err := d.e.NewGame(ctx, fen.Initial); err != nil {
				logw.Errorf(ctx, "new failed: %v", err)
			}

		case "force":
			d.forced = true

		case "post":
			d.post = true

		case "nopost":
			d.post = false

		case "st":
			if n, ok := atoiArg(ctx, cmd, args); ok {
				d.stSeconds = n
			}

		case "sd":
			if n, ok := atoiArg(ctx, cmd, args); ok {
				d.sdDepth = n
			}

		case "time":
			if n, ok := atoiArg(ctx, cmd, args); ok {
				d.clockCenti = n
			}

		case "undo":
			if err := d.e.UndoLast(ctx); err != nil {
				logw.Errorf(ctx, "undo failed: %v", err)
			}

		case "go":
			d.forced = false
			d.runSearch(ctx)

		case "quit":
			logw.Infof(ctx, "Driver closed")
			return

		case "level", "otim", "result", "hard", "easy", "random", "accepted", "rejected", "computer":
			// Acknowledged but not meaningful to a fixed-strength, non-pondering engine.

		default:
			// Any other line is attempted as a long-algebraic move
			// (spec.md §6). It is applied whether or not the engine is
			// forced to sit out; only the reply move is gated on force.
			if err := d.e.ApplyMove(ctx, cmd); err != nil {
				d.out <- fmt.Sprintf("Illegal move: %v", cmd)
				continue
			}
			d.runSearch(ctx)
		}
	}
	logw.Infof(ctx, "Input stream broken. Exiting")
}

// runSearch does nothing while the engine is forced to sit out.
// Otherwise it blocks until the search completes, reporting info lines
// as they are produced (if posting is enabled), then applies the chosen
// move to the live position and reports it (spec.md §6).
func (d *Driver) runSearch(ctx context.Context) {
	if d.forced {
		return
	}

	budgetMS, depthLimit := d.limits()
	best, err := d.e.Search(ctx, budgetMS, depthLimit, func(line string) {
		if d.post {
			d.out <- line
		}
	})
	if err != nil {
		logw.Errorf(ctx, "search failed: %v", err)
		return
	}
	if best == "" {
		// No legal move: checkmate or stalemate. Nothing to play.
		return
	}
	if err := d.e.ApplyMove(ctx, best); err != nil {
		logw.Errorf(ctx, "search returned unplayable move %v: %v", best, err)
		return
	}
	d.out <- fmt.Sprintf("move %v", best)
}

// limits derives the search budget from "st", else "time" (remaining
// clock in centiseconds, apportioned as total·10/30 per spec.md §6),
// else defaultBudgetMS, and the depth ceiling from "sd" (0 = no limit).
func (d *Driver) limits() (budgetMS, depthLimit int) {
	switch {
	case d.stSeconds > 0:
		budgetMS = d.stSeconds * 1000
	case d.clockCenti > 0:
		budgetMS = d.clockCenti * 10 / 30
	default:
		budgetMS = defaultBudgetMS
	}
	return budgetMS, d.sdDepth
}

func atoiArg(ctx context.Context, cmd string, args []string) (int, bool) {
	if len(args) == 0 {
		logw.Errorf(ctx, "%v: missing argument", cmd)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		logw.Errorf(ctx, "%v: invalid argument %q", cmd, args[0])
		return 0, false
	}
	return n, true
}
