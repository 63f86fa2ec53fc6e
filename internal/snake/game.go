package snake

import (
	"image/color"
	"strings"

	"github.com/N3kTarinka/the-snake/internal/config"
	"github.com/N3kTarinka/the-snake/internal/grid"
)

// Canvas is the render sink a frame is drawn onto. x and y are cell
// coordinates, not pixels.
type Canvas interface {
	Fill(c color.Color)
	DrawCell(x, y int, c color.Color)
}

// Game owns the snake and the food and advances them one tick at a time.
type Game struct {
	grid   grid.Grid
	snake  *Snake
	food   *Food
	tick   uint64
	resets int
}

// New starts a game on g with a fresh snake and food drawn from rng.
func New(g grid.Grid, rng Rand) *Game {
	s := NewSnake(g, rng)
	return &Game{
		grid:  g,
		snake: s,
		food:  NewFood(g, rng, s.Body()),
	}
}

func (g *Game) Grid() grid.Grid { return g.grid }
func (g *Game) Snake() *Snake   { return g.snake }
func (g *Game) Food() *Food     { return g.food }

// Step runs one tick: apply the polled events, then update. It returns false
// without updating when the events contain a quit request.
func (g *Game) Step(events []Event) bool {
	if !g.HandleInput(events) {
		return false
	}
	g.Update()
	return true
}

// HandleInput applies key events in order. Each key is checked against the
// heading the snake last moved in, so two quick turns within one tick cannot
// fold the snake back onto itself. Returns false on quit.
func (g *Game) HandleInput(events []Event) bool {
	moving := g.snake.Direction()
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			return false
		case EventKey:
			if d, ok := MapKey(ev.Key, moving); ok {
				g.snake.SetDirection(d)
			}
		}
	}
	return true
}

// Update eats or moves, then resets the snake if it ran into itself.
// Collision is checked after growth, so eating does not save a snake whose
// new head lands on its body.
func (g *Game) Update() {
	if g.snake.Head() == g.food.Position() {
		// The cell the head is about to enter is excluded too, so the food
		// never lands under the grown body.
		body := g.snake.Body()
		occupied := make([]grid.Cell, 0, len(body)+1)
		occupied = append(occupied, body...)
		occupied = append(occupied, g.snake.NextHead())
		g.food.RandomizePosition(occupied)
		g.snake.Advance(true)
	} else {
		g.snake.Advance(false)
	}

	if g.snake.SelfCollision() {
		g.snake.Reset()
		g.food.RandomizePosition(g.snake.Body())
		g.resets++
	}
	g.tick++
}

// Render draws the background, every body cell and the food.
func (g *Game) Render(c Canvas, p config.Palette) {
	c.Fill(p.Background)
	for _, cell := range g.snake.Body() {
		c.DrawCell(cell.X, cell.Y, p.Snake)
	}
	food := g.food.Position()
	c.DrawCell(food.X, food.Y, p.Food)
}

// Snapshot captures the observable state after the last tick.
type Snapshot struct {
	Tick   uint64
	Len    int
	Head   grid.Cell
	Dir    grid.Direction
	Food   grid.Cell
	Resets int
}

// Snapshot returns the current state for reports and determinism checks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Len:    g.snake.Len(),
		Head:   g.snake.Head(),
		Dir:    g.snake.Direction(),
		Food:   g.food.Position(),
		Resets: g.resets,
	}
}

// String renders the board as text, one row per line:
// '#' for the snake, '*' for food and '.' for empty cells.
func (g *Game) String() string {
	rows := make([][]byte, g.grid.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", g.grid.Width))
	}
	food := g.food.Position()
	rows[food.Y][food.X] = '*'
	for _, c := range g.snake.Body() {
		rows[c.Y][c.X] = '#'
	}
	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
