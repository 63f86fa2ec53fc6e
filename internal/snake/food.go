package snake

import "github.com/N3kTarinka/the-snake/internal/grid"

// Food is the single cell the snake eats to grow.
type Food struct {
	grid grid.Grid
	rng  Rand
	pos  grid.Cell
}

// NewFood places food on a random cell not in occupied.
func NewFood(g grid.Grid, rng Rand, occupied []grid.Cell) *Food {
	f := &Food{grid: g, rng: rng}
	f.RandomizePosition(occupied)
	return f
}

// Position returns the food cell.
func (f *Food) Position() grid.Cell { return f.pos }

// RandomizePosition moves the food to a uniformly chosen free cell. When the
// board is full the food stays where it is.
func (f *Food) RandomizePosition(occupied []grid.Cell) {
	taken := make(map[grid.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}
	free := make([]grid.Cell, 0, max(f.grid.Size()-len(taken), 0))
	for _, c := range f.grid.Cells() {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return
	}
	f.pos = free[f.rng.Intn(len(free))]
}
