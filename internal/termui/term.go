// Package termui runs the game in a terminal using tcell. Each board cell is
// two columns wide so cells come out roughly square.
package termui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/N3kTarinka/the-snake/internal/config"
	"github.com/N3kTarinka/the-snake/internal/snake"
)

const eventBuffer = 100

// Terminal is an input source and canvas backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// Open initialises the controlling terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// Start forwards screen events to Poll until Close.
func (t *Terminal) Start() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}()
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

// keyPress is the part of *tcell.EventKey the game reads.
type keyPress interface {
	Key() tcell.Key
	Rune() rune
}

// Poll drains every event that arrived since the last call without blocking.
func (t *Terminal) Poll() []snake.Event {
	var out []snake.Event
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case keyPress:
				if e, ok := translate(ev.Key(), ev.Rune()); ok {
					out = append(out, e)
				}
			}
		default:
			return out
		}
	}
}

func translate(k tcell.Key, r rune) (snake.Event, bool) {
	switch k {
	case tcell.KeyUp:
		return snake.KeyEvent(snake.KeyUp), true
	case tcell.KeyDown:
		return snake.KeyEvent(snake.KeyDown), true
	case tcell.KeyLeft:
		return snake.KeyEvent(snake.KeyLeft), true
	case tcell.KeyRight:
		return snake.KeyEvent(snake.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return snake.QuitEvent(), true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return snake.KeyEvent(snake.KeyUp), true
		case 's', 'S':
			return snake.KeyEvent(snake.KeyDown), true
		case 'a', 'A':
			return snake.KeyEvent(snake.KeyLeft), true
		case 'd', 'D':
			return snake.KeyEvent(snake.KeyRight), true
		case 'q', 'Q':
			return snake.QuitEvent(), true
		}
	}
	return snake.Event{}, false
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (t *Terminal) Fill(c color.Color) {
	t.screen.SetStyle(tcell.StyleDefault.Background(toTcell(c)))
	t.screen.Clear()
}

func (t *Terminal) DrawCell(x, y int, c color.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	t.screen.SetContent(2*x, y, ' ', nil, style)
	t.screen.SetContent(2*x+1, y, ' ', nil, style)
}

func (t *Terminal) Show() { t.screen.Show() }

// Run plays g in the terminal until the player quits.
func Run(g *snake.Game, cfg config.Config) error {
	t, err := Open()
	if err != nil {
		return err
	}
	defer t.Close()
	t.Start()

	clk := snake.NewTickerClock(cfg.TickRate)
	defer clk.Stop()

	snake.Run(g, t, t, clk, cfg.Palette)
	return nil
}
