package main

import (
	"image/color"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pixelmap/paint"
	"golang.org/x/image/colornames"
)

// samplePointer reads this frame's mouse state. Clicks on widgets are
// marked blocked so the panel never paints the grid under it.
func (g *Game) samplePointer() paint.Pointer {
	mx, my := ebiten.CursorPosition()
	return paint.Pointer{
		X:            float64(mx),
		Y:            float64(my),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		InWindow:     mx >= 0 && my >= 0 && mx < g.width && my < g.height,
		Focused:      ebiten.IsFocused(),
		Blocked:      ebuiinput.UIHovered,
	}
}

func (g *Game) hit(x, y float64) (int, int, bool) {
	return g.layout.CellAt(g.ctrl.Grid(), x, y)
}

func (g *Game) updateCanvas() {
	p := g.samplePointer()
	g.ctrl.Feed(p, g.hit)

	g.hoverOK = false
	if p.InWindow && !p.Blocked {
		g.hoverRow, g.hoverCol, g.hoverOK = g.hit(p.X, p.Y)
	}
}

func (g *Game) drawCanvas(screen *ebiten.Image) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}

	gr := g.ctrl.Grid()
	if gr.Empty() {
		ebitenutil.DebugPrintAt(screen, "Empty: enter positive columns and rows, then Create Map",
			int(g.layout.OriginX), int(g.layout.OriginY))
		return
	}

	size := float64(g.layout.CellSize)
	for _, cell := range gr.Cells() {
		r := g.layout.CellRect(cell.Row, cell.Col)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(g.layout.OriginX+float64(r.Min.X), g.layout.OriginY+float64(r.Min.Y))
		op.ColorScale.ScaleWithColor(cell.Color)
		screen.DrawImage(g.pixel, op)
	}

	if g.hoverOK {
		r := g.layout.CellRect(g.hoverRow, g.hoverCol)
		outline := colornames.Orange
		if g.ctrl.State() == paint.Painting {
			outline = colornames.Deepskyblue
		}
		vector.StrokeRect(screen,
			float32(g.layout.OriginX)+float32(r.Min.X), float32(g.layout.OriginY)+float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), 2, outline, false)
	}
}
