package grid

import (
	"image"
	"math"
)

// Layout places a grid on a surface: square cells of CellSize pixels with Gap
// pixels between them, starting at (OriginX, OriginY).
type Layout struct {
	CellSize int
	Gap      int
	OriginX  float64
	OriginY  float64
}

func (l Layout) pitch() int { return l.CellSize + l.Gap }

// CellAt maps a surface point to the cell under it. Points on a gap or off the
// grid report ok=false. It is a constant-time query.
func (l Layout) CellAt(g *Grid, x, y float64) (row, col int, ok bool) {
	if g.Empty() || l.CellSize <= 0 {
		return 0, 0, false
	}
	lx := x - l.OriginX
	ly := y - l.OriginY
	if lx < 0 || ly < 0 {
		return 0, 0, false
	}
	p := float64(l.pitch())
	col = int(math.Floor(lx / p))
	row = int(math.Floor(ly / p))
	if col >= g.Cols() || row >= g.Rows() {
		return 0, 0, false
	}
	if lx-float64(col)*p >= float64(l.CellSize) || ly-float64(row)*p >= float64(l.CellSize) {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect is the pixel rectangle of (row, col) relative to the origin.
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := col * l.pitch()
	y := row * l.pitch()
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// Size is the pixel extent of the whole grid.
func (l Layout) Size(g *Grid) (w, h int) {
	if g.Empty() {
		return 0, 0
	}
	w = g.Cols()*l.pitch() - l.Gap
	h = g.Rows()*l.pitch() - l.Gap
	return w, h
}
