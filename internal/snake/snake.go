// Package snake is the game core: the snake, the food, key mapping and the
// per-tick update. It has no knowledge of windows or terminals; front ends
// feed it Events and give it a Canvas to draw on.
package snake

import "github.com/N3kTarinka/the-snake/internal/grid"

// Snake is an ordered body, head first, moving one cell per tick.
// The body is never empty and its cells are distinct except at the moment a
// self-collision is detected.
type Snake struct {
	grid grid.Grid
	rng  Rand
	body []grid.Cell
	dir  grid.Direction
}

// NewSnake returns a one-cell snake at the centre of g heading in a random
// direction.
func NewSnake(g grid.Grid, rng Rand) *Snake {
	s := &Snake{grid: g, rng: rng}
	s.Reset()
	return s
}

// Head returns body[0].
func (s *Snake) Head() grid.Cell { return s.body[0] }

// Body returns the cells head first. The slice is owned by the snake and is
// only valid until the next Advance or Reset.
func (s *Snake) Body() []grid.Cell { return s.body }

// Len is the number of body cells.
func (s *Snake) Len() int { return len(s.body) }

// Direction is the direction of the next Advance.
func (s *Snake) Direction() grid.Direction { return s.dir }

// SetDirection changes the heading unconditionally. Reversal is rejected by
// MapKey before this is called.
func (s *Snake) SetDirection(d grid.Direction) { s.dir = d }

// NextHead is the cell the head moves into on the next Advance.
func (s *Snake) NextHead() grid.Cell {
	return s.grid.Step(s.Head(), s.dir)
}

// Advance prepends the next head and drops the tail unless grow is set.
func (s *Snake) Advance(grow bool) {
	head := s.NextHead()
	s.body = append(s.body, grid.Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
	if !grow {
		s.body = s.body[:len(s.body)-1]
	}
}

// SelfCollision reports whether the head overlaps any other body cell.
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies reports whether c is part of the body.
func (s *Snake) Occupies(c grid.Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// Reset shrinks the snake to a single cell at the grid centre and picks a new
// random heading.
func (s *Snake) Reset() {
	s.body = []grid.Cell{s.grid.Center()}
	s.dir = grid.Directions[s.rng.Intn(len(grid.Directions))]
}
