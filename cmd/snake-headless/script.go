package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/N3kTarinka/the-snake/internal/snake"
)

// scriptStep presses key and then lets the game run for ticks ticks.
type scriptStep struct {
	key   snake.Key
	ticks int
}

var scriptKeys = map[byte]snake.Key{
	'U': snake.KeyUp,
	'D': snake.KeyDown,
	'L': snake.KeyLeft,
	'R': snake.KeyRight,
}

// parseScript reads a comma separated list like "R3,D2,L5".
func parseScript(s string) ([]scriptStep, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var steps []scriptStep
	for _, field := range strings.Split(s, ",") {
		field = strings.ToUpper(strings.TrimSpace(field))
		if len(field) < 2 {
			return nil, fmt.Errorf("script step %q: want key letter and tick count", field)
		}
		key, ok := scriptKeys[field[0]]
		if !ok {
			return nil, fmt.Errorf("script step %q: unknown key %q (use U, D, L, R)", field, field[0])
		}
		n, err := strconv.Atoi(field[1:])
		if err != nil {
			return nil, fmt.Errorf("script step %q: %w", field, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("script step %q: tick count must be > 0", field)
		}
		steps = append(steps, scriptStep{key: key, ticks: n})
	}
	return steps, nil
}

// keyFeed expands steps into one key (or KeyNone) per tick.
func keyFeed(steps []scriptStep) []snake.Key {
	var feed []snake.Key
	for _, st := range steps {
		feed = append(feed, st.key)
		for i := 1; i < st.ticks; i++ {
			feed = append(feed, snake.KeyNone)
		}
	}
	return feed
}
