package grid

import (
	"image"
	"testing"
)

func TestLayoutCellAt(t *testing.T) {
	g, _ := New(3, 2, white)
	l := Layout{CellSize: 50, Gap: 2, OriginX: 10, OriginY: 20}

	cases := []struct {
		name     string
		x, y     float64
		row, col int
		ok       bool
	}{
		{"first_cell_corner", 10, 20, 0, 0, true},
		{"first_cell_inside", 59, 69, 0, 0, true},
		{"gap_after_first", 61, 30, 0, 0, false},
		{"second_col", 62, 20, 0, 1, true},
		{"last_cell", 10 + 2*52 + 49, 20 + 52 + 49, 1, 2, true},
		{"right_of_grid", 10 + 3*52, 20, 0, 0, false},
		{"below_grid", 10, 20 + 2*52, 0, 0, false},
		{"left_of_origin", 9, 20, 0, 0, false},
		{"above_origin", 10, 19.5, 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row, col, ok := l.CellAt(g, c.x, c.y)
			if ok != c.ok {
				t.Fatalf("expected ok=%v, got %v", c.ok, ok)
			}
			if ok && (row != c.row || col != c.col) {
				t.Fatalf("expected (%d,%d), got (%d,%d)", c.row, c.col, row, col)
			}
		})
	}
}

func TestLayoutEmptyGrid(t *testing.T) {
	g, _ := New(0, 0, white)
	l := Layout{CellSize: 10}
	if _, _, ok := l.CellAt(g, 1, 1); ok {
		t.Fatalf("empty grid has no cells to hit")
	}
	if w, h := l.Size(g); w != 0 || h != 0 {
		t.Fatalf("expected 0x0, got %dx%d", w, h)
	}
}

func TestLayoutRects(t *testing.T) {
	g, _ := New(4, 3, white)
	l := Layout{CellSize: 8, Gap: 1}
	if got, want := l.CellRect(2, 3), image.Rect(27, 18, 35, 26); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if w, h := l.Size(g); w != 35 || h != 26 {
		t.Fatalf("expected 35x26, got %dx%d", w, h)
	}
}
