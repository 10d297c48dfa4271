// Package export turns a grid into an image file and hands it to the
// platform for download.
package export

import (
	"image"
	"image/color"

	"github.com/milk9111/pixelmap/grid"
	"golang.org/x/image/draw"
)

type RenderOptions struct {
	Layout grid.Layout
	// GridLines draws a one pixel line of GridLineColor along every cell edge.
	GridLines     bool
	GridLineColor color.RGBA
	// Background shows through gaps. It defaults to the grid default color.
	Background *color.RGBA
}

// Render rasterizes g. An empty grid renders as a single background pixel.
func Render(g *grid.Grid, opts RenderOptions) *image.RGBA {
	bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if g != nil {
		bg = g.Default()
	}
	if opts.Background != nil {
		bg = *opts.Background
	}

	w, h := opts.Layout.Size(g)
	if w <= 0 || h <= 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, bg)
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for _, cell := range g.Cells() {
		r := opts.Layout.CellRect(cell.Row, cell.Col)
		draw.Draw(img, r, image.NewUniform(cell.Color), image.Point{}, draw.Src)
	}

	if opts.GridLines {
		line := image.NewUniform(opts.GridLineColor)
		for _, cell := range g.Cells() {
			r := opts.Layout.CellRect(cell.Row, cell.Col)
			edges := []image.Rectangle{
				image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
				image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
				image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
				image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
			}
			for _, e := range edges {
				draw.Draw(img, e, line, image.Point{}, draw.Src)
			}
		}
	}
	return img
}

// Scale resizes img by an integer factor with nearest-neighbour sampling so
// cell edges stay sharp.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
