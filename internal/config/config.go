// Package config holds the settings fixed at process start: canvas geometry,
// tick rate, RNG seed and colours.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/N3kTarinka/the-snake/internal/grid"
)

const (
	screenWidth  = 640
	screenHeight = 480
	cellSize     = 20
	tickRate     = 10
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Palette is the set of colours a frame is drawn with.
type Palette struct {
	Background color.RGBA
	Snake      color.RGBA
	Food       color.RGBA
	GridLine   color.RGBA
}

// DefaultPalette is black background, green snake, red food.
func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Black,
		Snake:      colornames.Lime,
		Food:       colornames.Red,
		GridLine:   color.RGBA{40, 40, 48, 255},
	}
}

// Config is passed to the front ends at start-up.
type Config struct {
	ScreenWidth  int   // canvas width in pixels
	ScreenHeight int   // canvas height in pixels
	CellSize     int   // side of one square cell in pixels
	TickRate     int   // simulation ticks per second
	Seed         int64 // RNG seed; 0 means seed from the clock
	ShowGrid     bool  // draw cell boundaries
	Palette      Palette
}

// Default returns the 640x480 canvas of 20px cells ticking 10 times a second.
func Default() Config {
	return Config{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		CellSize:     cellSize,
		TickRate:     tickRate,
		Palette:      DefaultPalette(),
	}
}

// GridWidth is the board width in cells.
func (c Config) GridWidth() int { return c.ScreenWidth / c.CellSize }

// GridHeight is the board height in cells.
func (c Config) GridHeight() int { return c.ScreenHeight / c.CellSize }

// Grid returns the board described by the canvas and cell size.
func (c Config) Grid() grid.Grid { return grid.New(c.GridWidth(), c.GridHeight()) }

// Validate rejects geometry that would leave a partial or empty board.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: canvas %dx%d must be positive", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalid, c.CellSize)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: cell size %d does not divide canvas %dx%d",
			ErrInvalid, c.CellSize, c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalid, c.TickRate)
	}
	return nil
}

// RegisterFlags binds the start-up knobs to fs. Geometry and colours are not
// exposed.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 seeds from the clock)")
	fs.IntVar(&c.TickRate, "tps", c.TickRate, "ticks per second")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines")
}
