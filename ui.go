package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixelmap/palette"
	"golang.org/x/image/font/gofont/goregular"
)

// BuildEditorUI lays out the left control panel. The canvas to its right is
// drawn directly by Game.
func BuildEditorUI(cb editorCallbacks, pal *palette.Palette, patterns []string, cols, rows string) (*ebitenui.UI, *LeftPanelUI) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newPixelMapTheme(&fontFace, pal.Active())

	leftPanel := buildLeftPanelUI(ui.PrimaryTheme, &fontFace, cb, pal, patterns, cols, rows)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel.Container)

	ui.Container = root
	return ui, leftPanel
}
