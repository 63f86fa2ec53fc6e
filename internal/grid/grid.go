// Package grid defines the toroidal board the snake lives on.
// Coordinates wrap at every edge, so any step from a valid cell lands on a
// valid cell.
package grid

import "fmt"

// Cell is one grid-aligned position. X grows to the right, Y grows downward.
type Cell struct {
	X int
	Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four unit moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order, used for uniform random picks.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the (dx, dy) offset of one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Wrap reduces coord into [0, dimension). Negative inputs wrap from the far edge.
func Wrap(coord, dimension int) int {
	m := coord % dimension
	if m < 0 {
		m += dimension
	}
	return m
}

// Grid is a Width x Height torus of cells.
type Grid struct {
	Width  int
	Height int
}

// New returns a width x height grid.
func New(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Size is the number of cells on the board.
func (g Grid) Size() int { return g.Width * g.Height }

// Center returns the middle cell, rounding down on even sizes.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap maps any cell onto the board.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: Wrap(c.X, g.Width), Y: Wrap(c.Y, g.Height)}
}

// Step moves c one cell in direction d, wrapping at the edges.
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return g.Wrap(Cell{X: c.X + dx, Y: c.Y + dy})
}

// Cells returns every cell on the board, column by column.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
