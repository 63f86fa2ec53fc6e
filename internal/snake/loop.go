package snake

import (
	"time"

	"github.com/N3kTarinka/the-snake/internal/config"
)

// InputSource returns the events that arrived since the last poll. It must
// not block; no pending input is an empty slice.
type InputSource interface {
	Poll() []Event
}

// Clock blocks until the next tick boundary.
type Clock interface {
	Tick()
}

// Presenter is implemented by canvases that buffer a frame until shown.
type Presenter interface {
	Show()
}

// TickerClock paces the loop at a fixed rate.
type TickerClock struct {
	t *time.Ticker
}

// NewTickerClock ticks rate times per second.
func NewTickerClock(rate int) *TickerClock {
	return &TickerClock{t: time.NewTicker(time.Second / time.Duration(rate))}
}

func (c *TickerClock) Tick() { <-c.t.C }

// Stop releases the ticker.
func (c *TickerClock) Stop() { c.t.Stop() }

// Run drives g until in reports a quit: wait for the tick, poll, update,
// draw. A frame is only drawn after a complete update.
func Run(g *Game, in InputSource, out Canvas, clk Clock, p config.Palette) {
	for {
		clk.Tick()
		if !g.Step(in.Poll()) {
			return
		}
		g.Render(out, p)
		if pr, ok := out.(Presenter); ok {
			pr.Show()
		}
	}
}
