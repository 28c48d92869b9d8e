package xboard_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-chess/xadrez/pkg/engine"
	"github.com/vesper-chess/xadrez/pkg/engine/xboard"
)

func drain(t *testing.T, out <-chan string, timeout time.Duration) []string {
	t.Helper()
	var lines []string
	deadline := time.After(timeout)
	for {
		select {
		case line, ok := <-out:
			if !ok {
				return lines
			}
			lines = append(lines, line)
		case <-deadline:
			return lines
		}
	}
}

func newDriver(t *testing.T) (chan string, <-chan string) {
	t.Helper()
	e := engine.New(context.Background(), "test", "tester", engine.Options{HashBytes: 1 << 20, Seed: 3})
	in := make(chan string, 16)
	_, out := xboard.NewDriver(context.Background(), e, in)
	return in, out
}

func TestGoAfterMateInOnePositionRepliesMove(t *testing.T) {
	in, out := newDriver(t)

	in <- "force"
	in <- "new"
	// Replay the scholar's-mate setup one move at a time so the driver's
	// own board, not a FEN shortcut, reaches the mating position.
	for _, m := range []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1f3", "a7a6"} {
		in <- m
	}
	in <- "go"
	close(in)

	lines := drain(t, out, 5*time.Second)
	require.NotEmpty(t, lines)
	assert.Equal(t, "move f3f7", lines[len(lines)-1])
}

func TestUnforcedMoveLineTriggersReply(t *testing.T) {
	in, out := newDriver(t)

	in <- "e2e4"
	close(in)

	lines := drain(t, out, 5*time.Second)
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "move "))
}

func TestIllegalMoveIsReportedAndIgnored(t *testing.T) {
	in, out := newDriver(t)

	in <- "force"
	in <- "e2e5"
	in <- "quit"
	close(in)

	lines := drain(t, out, 2*time.Second)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Illegal move")
}

func TestPostEnablesInfoLines(t *testing.T) {
	in, out := newDriver(t)

	in <- "force"
	in <- "post"
	in <- "st 1"
	in <- "go"
	close(in)

	lines := drain(t, out, 5*time.Second)
	require.True(t, len(lines) > 1, "expected info lines before the final move line")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "move "))
}
