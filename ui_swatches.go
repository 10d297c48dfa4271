package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixelmap/palette"
)

const swatchColumns = 4

func buildSwatchGrid() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 40),
		),
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(swatchColumns),
				widget.GridLayoutOpts.Spacing(4, 4),
			),
		),
	)
}

// fillSwatches replaces the buttons in container with one per swatch. The
// button label is drawn in whichever of black or white reads on the swatch.
func fillSwatches(container *widget.Container, fontFace *text.Face, swatches []palette.Swatch, onSelected func(palette.Swatch)) {
	container.RemoveChildren()
	for _, s := range swatches {
		s := s
		fg := palette.LabelColor(s.Color)
		btn := widget.NewButton(
			widget.ButtonOpts.Image(shadedButtonImage(s.Color)),
			widget.ButtonOpts.Text(s.Name, fontFace, &widget.ButtonTextColor{
				Idle:     fg,
				Hover:    fg,
				Pressed:  fg,
				Disabled: color.Gray{Y: 128},
			}),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(50, 32),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onSelected != nil {
					onSelected(s)
				}
			}),
		)
		container.AddChild(btn)
	}
}
