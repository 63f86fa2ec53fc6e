package grid

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		coord, dim, want int
	}{
		{0, 32, 0},
		{31, 32, 31},
		{32, 32, 0},
		{33, 32, 1},
		{-1, 32, 31},
		{-32, 32, 0},
		{-33, 32, 31},
		{65, 24, 17},
	}
	for _, tt := range tests {
		if got := Wrap(tt.coord, tt.dim); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.coord, tt.dim, got, tt.want)
		}
	}
}

func TestStepWrapsEveryEdge(t *testing.T) {
	g := New(32, 24)
	tests := []struct {
		name string
		from Cell
		dir  Direction
		want Cell
	}{
		{"right edge", Cell{31, 12}, Right, Cell{0, 12}},
		{"left edge", Cell{0, 12}, Left, Cell{31, 12}},
		{"top edge", Cell{5, 0}, Up, Cell{5, 23}},
		{"bottom edge", Cell{5, 23}, Down, Cell{5, 0}},
		{"interior", Cell{16, 12}, Right, Cell{17, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Step(tt.from, tt.dir)
			if got != tt.want {
				t.Errorf("Step(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
			if !g.Contains(got) {
				t.Errorf("Step result %v is off the board", got)
			}
		})
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("opposite of opposite of %v is %v", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("deltas of %v and its opposite do not cancel", d)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := New(32, 24).Center(); got != (Cell{16, 12}) {
		t.Errorf("Center() = %v, want (16,12)", got)
	}
	if got := New(5, 3).Center(); got != (Cell{2, 1}) {
		t.Errorf("Center() = %v, want (2,1)", got)
	}
}

func TestCellsCoversBoardOnce(t *testing.T) {
	g := New(4, 3)
	cells := g.Cells()
	if len(cells) != g.Size() {
		t.Fatalf("len(Cells()) = %d, want %d", len(cells), g.Size())
	}
	seen := make(map[Cell]bool)
	for _, c := range cells {
		if !g.Contains(c) {
			t.Errorf("cell %v is off the board", c)
		}
		if seen[c] {
			t.Errorf("cell %v listed twice", c)
		}
		seen[c] = true
	}
}
