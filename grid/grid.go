// Package grid holds the paintable cell arena and the builder that creates it
// from row and column counts.
package grid

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "grid")

// ErrInvalidDimensions is returned when a column or row count is missing,
// non-numeric, zero or negative, or the grid would exceed MaxCells. Callers
// show an empty grid, not a failure.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// MaxCells bounds cols*rows.
const MaxCells = 1 << 20

// Cell is one paintable square.
type Cell struct {
	Row int
	Col int
	// Color is the logical display color. Renderers read it; the toggle rule
	// compares against it.
	Color color.RGBA
	// Painted is false for cells holding the grid default.
	Painted bool
	// Toggled marks a cell already changed by the current stroke.
	Toggled bool
}

// Grid is a row-major arena of cells. A grid is never resized; rebuilding
// means building a new Grid.
type Grid struct {
	cols  int
	rows  int
	def   color.RGBA
	cells []Cell
}

// New builds a cols x rows grid with every cell set to def. A non-positive
// count, or more than MaxCells cells, yields an empty grid together with
// ErrInvalidDimensions.
func New(cols, rows int, def color.RGBA) (*Grid, error) {
	if cols <= 0 || rows <= 0 || cols > MaxCells/rows {
		log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Info("empty grid: invalid dimensions")
		return &Grid{def: def}, fmt.Errorf("grid: new %dx%d: %w", cols, rows, ErrInvalidDimensions)
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		def:   def,
		cells: make([]Cell, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[y*cols+x] = Cell{Row: y, Col: x, Color: def}
		}
	}
	log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Debug("grid built")
	return g, nil
}

// ParseDimensions reads the column and row inputs as positive integers.
func ParseDimensions(cols, rows string) (int, int, error) {
	c, err := parseCount(cols)
	if err != nil {
		return 0, 0, fmt.Errorf("grid: columns %q: %w", cols, err)
	}
	r, err := parseCount(rows)
	if err != nil {
		return 0, 0, fmt.Errorf("grid: rows %q: %w", rows, err)
	}
	return c, r, nil
}

// parseCount reads the leading integer of s, so "3px" is 3 and "2.5" is 2.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, ErrInvalidDimensions
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil || v <= 0 {
		return 0, ErrInvalidDimensions
	}
	return v, nil
}

// Build parses the raw inputs and builds the grid. Invalid input returns an
// empty grid and an error wrapping ErrInvalidDimensions.
func Build(cols, rows string, def color.RGBA) (*Grid, error) {
	c, r, err := ParseDimensions(cols, rows)
	if err != nil {
		log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Info("empty grid: invalid dimensions")
		return &Grid{def: def}, err
	}
	return New(c, r, def)
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Len is the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g == nil || len(g.cells) == 0 }

// Default is the unpainted color cells start with.
func (g *Grid) Default() color.RGBA { return g.def }

// Index returns the arena index of (row, col), or -1 when out of range.
func (g *Grid) Index(row, col int) int {
	if g == nil || row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return -1
	}
	return row*g.cols + col
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) (*Cell, bool) {
	idx := g.Index(row, col)
	if idx < 0 {
		return nil, false
	}
	return &g.cells[idx], true
}

// Cells exposes the arena in row-major order. The slice aliases the grid.
func (g *Grid) Cells() []Cell {
	if g == nil {
		return nil
	}
	return g.cells
}

// ResetStroke clears every Toggled flag.
func (g *Grid) ResetStroke() {
	if g == nil {
		return
	}
	for i := range g.cells {
		g.cells[i].Toggled = false
	}
}

// Fill sets every cell to c and clears every Toggled flag.
func (g *Grid) Fill(c color.RGBA) {
	if g == nil {
		return
	}
	for i := range g.cells {
		g.cells[i].Color = c
		g.cells[i].Painted = c != g.def
		g.cells[i].Toggled = false
	}
}

// PaintedCount returns how many cells differ from the default.
func (g *Grid) PaintedCount() int {
	n := 0
	for i := range g.Cells() {
		if g.cells[i].Painted {
			n++
		}
	}
	return n
}
