package paint

// Pointer is one frame of sampled pointer state.
type Pointer struct {
	X, Y float64
	// Pressed is true while the paint button is held.
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// InWindow is false once the cursor is outside the drawable surface.
	InWindow bool
	// Focused is false when the window lost focus, which is how a platform
	// drag or other grab shows up.
	Focused bool
	// Blocked is true when another widget owns the pointer this frame.
	Blocked bool
}

// HitFunc maps a surface point to a cell.
type HitFunc func(x, y float64) (row, col int, ok bool)

// Feed drives the controller from one frame of pointer state.
func (c *Controller) Feed(p Pointer, hit HitFunc) {
	if c.strokeActive && !p.Focused {
		c.DragEnd()
		return
	}
	if c.strokeActive && !p.InWindow {
		c.PointerLeave()
		return
	}
	if p.JustReleased {
		c.PointerUp()
	}

	var (
		row, col int
		ok       bool
	)
	if p.InWindow && !p.Blocked && hit != nil {
		row, col, ok = hit(p.X, p.Y)
	}

	if p.JustPressed {
		if ok {
			c.PointerDown(row, col)
		}
		return
	}
	if p.Pressed {
		c.PointerMove(row, col, ok)
	}
}
