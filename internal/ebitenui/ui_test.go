package ebitenui

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/N3kTarinka/the-snake/internal/config"
	"github.com/N3kTarinka/the-snake/internal/grid"
	"github.com/N3kTarinka/the-snake/internal/snake"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	cfg := config.Default()
	return New(snake.New(cfg.Grid(), snake.NewRand(1)), cfg)
}

func TestTranslateKeys(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyF, ebiten.KeyA, ebiten.KeyQ}
	got := translateKeys(nil, keys)
	want := []snake.Event{
		snake.KeyEvent(snake.KeyUp),
		snake.KeyEvent(snake.KeyLeft),
		snake.QuitEvent(),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAdvanceStepsOncePerTick(t *testing.T) {
	u := newTestUI(t)

	for i := 1; i < framesPerTick; i++ {
		if err := u.advance(nil); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if tick := u.game.Snapshot().Tick; tick != 0 {
			t.Fatalf("frame %d: game ticked early (tick %d)", i, tick)
		}
	}
	if err := u.advance(nil); err != nil {
		t.Fatal(err)
	}
	if tick := u.game.Snapshot().Tick; tick != 1 {
		t.Errorf("Tick = %d after %d frames, want 1", tick, framesPerTick)
	}
}

func TestAdvanceAppliesQueuedKeys(t *testing.T) {
	u := newTestUI(t)
	start := u.game.Snake().Direction()
	turn := ebiten.KeyArrowUp
	want := grid.Up
	if start == grid.Up || start == grid.Down {
		turn, want = ebiten.KeyArrowLeft, grid.Left
	}

	if err := u.advance([]ebiten.Key{turn}); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < framesPerTick; i++ {
		if err := u.advance(nil); err != nil {
			t.Fatal(err)
		}
	}
	if got := u.game.Snake().Direction(); got != want {
		t.Errorf("Direction() = %v, want %v", got, want)
	}
	if len(u.pending) != 0 {
		t.Errorf("%d events left queued after the tick", len(u.pending))
	}
}

func TestAdvanceQuitTerminates(t *testing.T) {
	u := newTestUI(t)
	var err error
	for i := 0; i < framesPerTick; i++ {
		keys := []ebiten.Key(nil)
		if i == 0 {
			keys = []ebiten.Key{ebiten.KeyQ}
		}
		err = u.advance(keys)
	}
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("err = %v, want ebiten.Termination", err)
	}
}

func TestLayoutKeepsAspect(t *testing.T) {
	u := newTestUI(t)
	w, h := u.Layout(1280, 720)
	if w != 960 || h != 720 {
		t.Errorf("Layout(1280, 720) = %d, %d; want 960, 720", w, h)
	}
	if u.scaleFactor != 1.5 {
		t.Errorf("scaleFactor = %v, want 1.5", u.scaleFactor)
	}
}

func TestCanvasRect(t *testing.T) {
	c := screenCanvas{cell: 30}
	x, y, size := c.rect(2, 3)
	if x != 60 || y != 90 || size != 30 {
		t.Errorf("rect(2, 3) = %v, %v, %v; want 60, 90, 30", x, y, size)
	}
}

func TestCopyBoard(t *testing.T) {
	u := newTestUI(t)
	var copied string
	u.copyBoard = func(s string) error {
		copied = s
		return nil
	}
	u.copy()
	if copied != u.game.String() {
		t.Errorf("copied %q, want the board text", copied)
	}
}
