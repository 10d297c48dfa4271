// Package paint implements the stroke state machine: a pointer press starts a
// stroke, moves toggle each crossed cell at most once, and release, leaving the
// window or a drag-end all finish it.
package paint

import (
	"image/color"

	"github.com/milk9111/pixelmap/grid"
	"github.com/milk9111/pixelmap/palette"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "paint")

type State int

const (
	Idle State = iota
	Painting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Painting:
		return "Painting"
	default:
		return "Unknown"
	}
}

// Controller owns the stroke state for one attached grid at a time.
type Controller struct {
	palette *palette.Palette
	grid    *grid.Grid

	strokeActive bool
	activeColor  color.RGBA
	toggled      int

	// OnChange, if set, is called once for every cell a stroke toggles.
	OnChange func(c grid.Cell)
}

func NewController(p *palette.Palette) *Controller {
	return &Controller{palette: p}
}

// Attach registers a freshly built grid. Any stroke in progress is dropped
// together with the previous grid.
func (c *Controller) Attach(g *grid.Grid) {
	c.strokeActive = false
	c.toggled = 0
	c.grid = g
	c.grid.ResetStroke()
	if g.Empty() {
		log.Debug("attached empty grid")
		return
	}
	log.WithFields(logrus.Fields{"cols": g.Cols(), "rows": g.Rows()}).Debug("attached grid")
}

func (c *Controller) Grid() *grid.Grid { return c.grid }

func (c *Controller) State() State {
	if c.strokeActive {
		return Painting
	}
	return Idle
}

// ActiveColor is the color snapshot taken when the current stroke started.
func (c *Controller) ActiveColor() color.RGBA { return c.activeColor }

// PointerDown starts a stroke on (row, col). Presses outside the grid are
// ignored. A press while already painting continues the current stroke.
func (c *Controller) PointerDown(row, col int) {
	cell, ok := c.grid.At(row, col)
	if !ok {
		return
	}
	if !c.strokeActive {
		c.strokeActive = true
		c.activeColor = c.palette.Active()
		c.toggled = 0
		log.WithFields(logrus.Fields{
			"row":   row,
			"col":   col,
			"color": palette.Hex(c.activeColor),
		}).Debug("stroke start")
	}
	c.toggle(cell)
}

// PointerMove handles the pointer moving over (row, col) while a button is
// held. ok=false means nothing paintable is under the pointer.
func (c *Controller) PointerMove(row, col int, ok bool) {
	if !c.strokeActive || !ok {
		return
	}
	cell, found := c.grid.At(row, col)
	if !found {
		return
	}
	c.toggle(cell)
}

// PointerUp ends the stroke wherever the button is released.
func (c *Controller) PointerUp() { c.endStroke("up") }

// PointerLeave ends a stroke when the pointer leaves the window mid-gesture.
func (c *Controller) PointerLeave() {
	if !c.strokeActive {
		return
	}
	c.endStroke("leave")
}

// DragEnd ends the stroke on a platform drag-end signal.
func (c *Controller) DragEnd() { c.endStroke("drag-end") }

func (c *Controller) endStroke(reason string) {
	if c.strokeActive {
		log.WithFields(logrus.Fields{"reason": reason, "toggled": c.toggled}).Debug("stroke end")
	}
	c.strokeActive = false
	c.toggled = 0
	c.grid.ResetStroke()
}

// toggle applies the paint-on/paint-off rule to a cell not yet touched by the
// current stroke.
func (c *Controller) toggle(cell *grid.Cell) {
	if cell.Toggled {
		return
	}
	if cell.Color == c.activeColor {
		cell.Color = c.grid.Default()
		cell.Painted = false
	} else {
		cell.Color = c.activeColor
		cell.Painted = c.activeColor != c.grid.Default()
	}
	cell.Toggled = true
	c.toggled++
	if c.OnChange != nil {
		c.OnChange(*cell)
	}
}

// Fill paints every cell with the active palette color and ends any stroke in
// progress. Without a grid it does nothing.
func (c *Controller) Fill() {
	if c.grid.Empty() {
		return
	}
	c.endStroke("fill")
	col := c.palette.Active()
	c.grid.Fill(col)
	log.WithField("color", palette.Hex(col)).Info("filled grid")
}

// Apply sets each cell for which colors reports ok and ends any stroke in
// progress, like Fill.
func (c *Controller) Apply(colors func(row, col int) (color.RGBA, bool)) int {
	if c.grid.Empty() || colors == nil {
		return 0
	}
	c.endStroke("apply")
	n := 0
	cells := c.grid.Cells()
	for i := range cells {
		col, ok := colors(cells[i].Row, cells[i].Col)
		if !ok {
			continue
		}
		cells[i].Color = col
		cells[i].Painted = col != c.grid.Default()
		n++
	}
	return n
}
