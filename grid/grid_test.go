package grid

import (
	"errors"
	"image/color"
	"testing"
)

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

func TestNewBuildsRowMajorCells(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
	}{
		{"single", 1, 1},
		{"wide", 5, 1},
		{"tall", 1, 4},
		{"square", 3, 3},
		{"rect", 7, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := New(c.cols, c.rows, white)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Len() != c.cols*c.rows {
				t.Fatalf("expected %d cells, got %d", c.cols*c.rows, g.Len())
			}
			for i, cell := range g.Cells() {
				if cell.Row != i/c.cols || cell.Col != i%c.cols {
					t.Fatalf("cell %d at (%d,%d) is not row-major", i, cell.Row, cell.Col)
				}
				if cell.Color != white || cell.Painted || cell.Toggled {
					t.Fatalf("cell %d not initialised: %+v", i, cell)
				}
			}
		})
	}
}

func TestNewInvalidDimensionsYieldsEmptyGrid(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
	}{
		{"zero_cols", 0, 3},
		{"zero_rows", 3, 0},
		{"negative", -1, 4},
		{"both", -2, -2},
		{"over_max_cells", MaxCells + 1, 1},
		{"product_over_max", 1 << 11, 1 << 10},
		{"product_overflows", 1 << 32, 1 << 32},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := New(c.cols, c.rows, white)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
			if g == nil || !g.Empty() || g.Len() != 0 {
				t.Fatalf("expected empty grid, got %+v", g)
			}
		})
	}
}

func TestBuildParsesInputs(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows string
		wantLen    int
		wantErr    bool
	}{
		{"valid", "4", "3", 12, false},
		{"spaces", " 2 ", "2", 4, false},
		{"missing_cols", "", "3", 0, true},
		{"missing_rows", "3", "", 0, true},
		{"non_numeric", "abc", "3", 0, true},
		{"partial_number", "3px", "3", 9, false},
		{"decimal", "2.5", "3", 6, false},
		{"plus_sign", "+2", "2", 4, false},
		{"sign_only", "-", "3", 0, true},
		{"zero", "0", "3", 0, true},
		{"negative", "3", "-1", 0, true},
		{"negative_decimal", "-0.5", "3", 0, true},
		{"too_many_cells", "100000", "100000", 0, true},
		{"overflowing_product", "4294967296", "4294967296", 0, true},
		{"beyond_int", "99999999999999999999", "2", 0, true},
		{"at_limit", "1024", "1024", MaxCells, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := Build(c.cols, c.rows, white)
			if c.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", c.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
			if g.Len() != c.wantLen {
				t.Fatalf("expected %d cells, got %d", c.wantLen, g.Len())
			}
			if c.wantErr && !g.Empty() {
				t.Fatalf("invalid input must give an empty grid")
			}
		})
	}
}

func TestAtAndIndexBounds(t *testing.T) {
	g, _ := New(3, 2, white)
	if idx := g.Index(1, 2); idx != 5 {
		t.Fatalf("expected index 5, got %d", idx)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, ok := g.At(p[0], p[1]); ok {
			t.Fatalf("expected (%d,%d) out of range", p[0], p[1])
		}
	}
	c, ok := g.At(1, 1)
	if !ok || c.Row != 1 || c.Col != 1 {
		t.Fatalf("unexpected cell %+v ok=%v", c, ok)
	}
	c.Toggled = true
	if !g.Cells()[g.Index(1, 1)].Toggled {
		t.Fatalf("At must return a pointer into the arena")
	}
}

func TestFillAndResetStroke(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	g, _ := New(2, 2, white)
	for i := range g.Cells() {
		g.Cells()[i].Toggled = true
	}
	g.Fill(red)
	for _, c := range g.Cells() {
		if c.Color != red || !c.Painted || c.Toggled {
			t.Fatalf("unexpected cell after fill: %+v", c)
		}
	}
	if g.PaintedCount() != 4 {
		t.Fatalf("expected 4 painted, got %d", g.PaintedCount())
	}

	g.Fill(white)
	if g.PaintedCount() != 0 {
		t.Fatalf("filling with the default should leave nothing painted")
	}

	g.Cells()[0].Toggled = true
	g.ResetStroke()
	if g.Cells()[0].Toggled {
		t.Fatalf("ResetStroke should clear flags")
	}
}

func TestNilGridIsEmpty(t *testing.T) {
	var g *Grid
	if !g.Empty() {
		t.Fatalf("nil grid should be empty")
	}
	g.Fill(white)
	g.ResetStroke()
	if _, ok := g.At(0, 0); ok {
		t.Fatalf("nil grid has no cells")
	}
}
