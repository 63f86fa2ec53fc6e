// Package ebitenui runs the game in a desktop window.
package ebitenui

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/N3kTarinka/the-snake/internal/config"
	"github.com/N3kTarinka/the-snake/internal/snake"
)

// framesPerTick is how many ebiten updates make one game tick. Keys are
// collected every frame and handed to the game together on the tick.
const framesPerTick = 6

// UI adapts a snake.Game to ebiten.Game.
type UI struct {
	game *snake.Game
	cfg  config.Config

	frame        int
	pending      []snake.Event
	keys         []ebiten.Key
	scaleFactor  float64
	isFullscreen bool

	copyBoard func(string) error
}

// New wraps g for display with cfg's geometry and palette.
func New(g *snake.Game, cfg config.Config) *UI {
	return &UI{
		game:        g,
		cfg:         cfg,
		scaleFactor: 1.0,
		copyBoard:   clipboard.WriteAll,
	}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(u *UI) error {
	ebiten.SetWindowSize(u.cfg.ScreenWidth, u.cfg.ScreenHeight)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(u.cfg.TickRate * framesPerTick)
	if err := ebiten.RunGame(u); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (u *UI) Update() error {
	// Toggle maximized with F key
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		u.isFullscreen = !u.isFullscreen
		if u.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			u.restoreWindow()
		}
	}

	// Esc leaves the maximized window first, then quits.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if u.isFullscreen {
			u.isFullscreen = false
			u.restoreWindow()
		} else {
			u.pending = append(u.pending, snake.QuitEvent())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		u.copy()
	}

	u.keys = inpututil.AppendJustPressedKeys(u.keys[:0])
	return u.advance(u.keys)
}

// advance queues this frame's keys and steps the game on every
// framesPerTick-th frame.
func (u *UI) advance(keys []ebiten.Key) error {
	u.pending = translateKeys(u.pending, keys)
	u.frame++
	if u.frame%framesPerTick != 0 {
		return nil
	}
	events := u.pending
	u.pending = u.pending[:0]
	if !u.game.Step(events) {
		return ebiten.Termination
	}
	return nil
}

func (u *UI) copy() {
	if err := u.copyBoard(u.game.String()); err != nil {
		log.Printf("copy board: %v", err)
	}
}

func (u *UI) restoreWindow() {
	ebiten.RestoreWindow()
	ebiten.SetWindowSize(u.cfg.ScreenWidth, u.cfg.ScreenHeight)
}

func (u *UI) Draw(screen *ebiten.Image) {
	c := screenCanvas{dst: screen, cell: float64(u.cfg.CellSize) * u.scaleFactor}
	u.game.Render(c, u.cfg.Palette)
	if u.cfg.ShowGrid {
		c.gridLines(u.cfg.GridWidth(), u.cfg.GridHeight(), u.cfg.Palette.GridLine)
	}
}

// Layout fits the board into the window keeping square cells.
func (u *UI) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	scaleX := float64(outsideWidth) / float64(u.cfg.ScreenWidth)
	scaleY := float64(outsideHeight) / float64(u.cfg.ScreenHeight)
	u.scaleFactor = math.Min(scaleX, scaleY)
	return int(float64(u.cfg.ScreenWidth) * u.scaleFactor), int(float64(u.cfg.ScreenHeight) * u.scaleFactor)
}

// screenCanvas draws whole cells onto an ebiten image.
type screenCanvas struct {
	dst  *ebiten.Image
	cell float64 // cell side in screen pixels
}

func (c screenCanvas) Fill(col color.Color) { c.dst.Fill(col) }

func (c screenCanvas) DrawCell(x, y int, col color.Color) {
	px, py, size := c.rect(x, y)
	vector.DrawFilledRect(c.dst, px, py, size, size, col, false)
}

func (c screenCanvas) rect(x, y int) (px, py, size float32) {
	return float32(float64(x) * c.cell), float32(float64(y) * c.cell), float32(c.cell)
}

func (c screenCanvas) gridLines(w, h int, col color.Color) {
	width := float32(float64(w) * c.cell)
	height := float32(float64(h) * c.cell)
	for x := 0; x < w; x++ {
		vector.DrawFilledRect(c.dst, float32(float64(x)*c.cell), 0, 1, height, col, false)
	}
	for y := 0; y < h; y++ {
		vector.DrawFilledRect(c.dst, 0, float32(float64(y)*c.cell), width, 1, col, false)
	}
}
