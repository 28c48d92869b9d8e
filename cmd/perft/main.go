// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/seekerror/logw"

	"github.com/vesper-chess/xadrez/pkg/board"
	"github.com/vesper-chess/xadrez/pkg/board/fen"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	b := board.NewBoard(board.NewZobristTable(0))
	if err := fen.Decode(b, *position); err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := run(b, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func run(b *board.Board, depth int, d bool) uint64 {
	if !d {
		return b.Perft(depth)
	}

	var list board.MoveList
	b.GenerateMoves(&list)

	mover := b.Turn()
	var total uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsCastle() && !b.IsCastlePathSafe(m) {
			continue
		}
		b.MakeMove(m)
		if !b.MoveLeavesMoverInCheck(mover) {
			count := b.Perft(depth - 1)
			fmt.Printf("%v: %v\n", m, count)
			total += count
		}
		b.UnmakeMove()
	}
	return total
}
