package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"

	"github.com/vesper-chess/xadrez/pkg/engine"
	"github.com/vesper-chess/xadrez/pkg/engine/xboard"
)

var (
	hashMB = flag.Int("hash", 64, "Transposition table size in MB")
	noise  = flag.Int("noise", 0, "Evaluation noise in centipawns (zero if deterministic)")
	seed   = flag.Int64("seed", 1, "Zobrist table random seed")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: xadrez [options]

xadrez is a simple XBoard chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "xadrez", "vesper-chess", engine.Options{
		HashBytes: uint64(*hashMB) << 20,
		NoiseCP:   *noise,
		Seed:      *seed,
	})

	in := engine.ReadStdinLines(ctx)
	_, out := xboard.NewDriver(ctx, e, in)

	engine.WriteStdoutLines(ctx, out)
	logw.Infof(ctx, "xadrez exiting")
}
