package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/N3kTarinka/the-snake/internal/snake"
)

// Arrow keys and WASD steer; Q quits. Esc is handled in Update because it
// first leaves the maximised window.
var keyEvents = map[ebiten.Key]snake.Event{
	ebiten.KeyArrowUp:    snake.KeyEvent(snake.KeyUp),
	ebiten.KeyW:          snake.KeyEvent(snake.KeyUp),
	ebiten.KeyArrowDown:  snake.KeyEvent(snake.KeyDown),
	ebiten.KeyS:          snake.KeyEvent(snake.KeyDown),
	ebiten.KeyArrowLeft:  snake.KeyEvent(snake.KeyLeft),
	ebiten.KeyA:          snake.KeyEvent(snake.KeyLeft),
	ebiten.KeyArrowRight: snake.KeyEvent(snake.KeyRight),
	ebiten.KeyD:          snake.KeyEvent(snake.KeyRight),
	ebiten.KeyQ:          snake.QuitEvent(),
}

// translateKeys appends the game events for the pressed keys to dst, in order.
func translateKeys(dst []snake.Event, keys []ebiten.Key) []snake.Event {
	for _, k := range keys {
		if ev, ok := keyEvents[k]; ok {
			dst = append(dst, ev)
		}
	}
	return dst
}
