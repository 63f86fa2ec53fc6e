package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/N3kTarinka/the-snake/internal/config"
	"github.com/N3kTarinka/the-snake/internal/snake"
)

type runStats struct {
	seed   int64
	ticks  int
	eaten  int
	maxLen int
	final  snake.Snapshot
	board  string
}

func main() {
	var seed int64
	var ticks int
	var keys string
	var turnEvery int
	var verbose bool

	flag.Int64Var(&seed, "seed", 42, "RNG seed")
	flag.IntVar(&ticks, "ticks", 500, "ticks to simulate")
	flag.StringVar(&keys, "keys", "", `key script, e.g. "R3,D2,L5" (key then ticks to run)`)
	flag.IntVar(&turnEvery, "turn-every", 7, "press a random key every N ticks once the script ends (0 = never)")
	flag.BoolVar(&verbose, "v", false, "print a line per tick")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if turnEvery < 0 {
		fmt.Println("error: -turn-every must be >= 0")
		return
	}
	script, err := parseScript(keys)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	var trace io.Writer
	if verbose {
		trace = os.Stdout
	}
	stats := run(seed, ticks, keyFeed(script), turnEvery, trace)
	printReport(os.Stdout, stats)
}

// run plays ticks ticks on the default board. feed supplies one key per tick
// while it lasts; after that a random key is pressed every turnEvery ticks.
func run(seed int64, ticks int, feed []snake.Key, turnEvery int, trace io.Writer) runStats {
	cfg := config.Default()
	g := snake.New(cfg.Grid(), snake.NewRand(seed))
	pilot := snake.NewRand(seed + 1)

	stats := runStats{seed: seed, ticks: ticks, maxLen: g.Snake().Len()}
	for i := 0; i < ticks; i++ {
		key := snake.KeyNone
		switch {
		case i < len(feed):
			key = feed[i]
		case turnEvery > 0 && (i-len(feed))%turnEvery == turnEvery-1:
			key = snake.Key(1 + pilot.Intn(4))
		}
		var events []snake.Event
		if key != snake.KeyNone {
			events = append(events, snake.KeyEvent(key))
		}

		before := g.Snake().Len()
		g.Step(events)
		snap := g.Snapshot()
		if snap.Len == before+1 {
			stats.eaten++
		}
		stats.maxLen = max(stats.maxLen, snap.Len)
		if trace != nil {
			fmt.Fprintf(trace, "[T=%04d] key=%-5s dir=%-5s head=%-7s len=%-3d food=%-7s resets=%d\n",
				snap.Tick, key, snap.Dir, snap.Head, snap.Len, snap.Food, snap.Resets)
		}
	}
	stats.final = g.Snapshot()
	stats.board = g.String()
	return stats
}

func printReport(w io.Writer, s runStats) {
	fmt.Fprintf(w, "=== Headless Snake Report ===\n")
	fmt.Fprintf(w, "seed=%d ticks=%d\n\n", s.seed, s.ticks)
	fmt.Fprintf(w, "food eaten : %d\n", s.eaten)
	fmt.Fprintf(w, "resets     : %d\n", s.final.Resets)
	fmt.Fprintf(w, "max length : %d\n", s.maxLen)
	fmt.Fprintf(w, "final      : head=%s dir=%s len=%d food=%s\n\n",
		s.final.Head, s.final.Dir, s.final.Len, s.final.Food)
	fmt.Fprint(w, s.board)
}
