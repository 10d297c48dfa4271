package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixelmap/palette"
)

// editorCallbacks are the panel actions, wired to Game methods.
type editorCallbacks struct {
	onCreate       func(cols, rows string)
	onColorEntered func(hex string)
	onSwatch       func(palette.Swatch)
	onFill         func()
	onApplyPattern func(name string)
	onSave         func()
}

// LeftPanelUI is the composed left panel and the widgets Game updates.
type LeftPanelUI struct {
	Container *widget.Container

	fontFace        *text.Face
	colsInput       *widget.TextInput
	rowsInput       *widget.TextInput
	colorInput      *widget.TextInput
	colorText       *widget.Text
	colorPreview    *widget.Container
	swatches        *widget.Container
	onSwatch        func(palette.Swatch)
	patternList     *widget.List
	emptyText       *widget.Text
	statusText      *widget.Text
	selectedPattern string
}

func (p *LeftPanelUI) SetSelectedColor(c color.RGBA) {
	if p == nil {
		return
	}
	hex := palette.Hex(c)
	p.colorText.Label = "Selected Color: " + hex
	p.colorPreview.SetBackgroundImage(solidNineSlice(c))
}

// SetEmpty shows or hides the empty indicator.
func (p *LeftPanelUI) SetEmpty(empty bool) {
	if p == nil {
		return
	}
	if empty {
		p.emptyText.GetWidget().Visibility = widget.Visibility_Show
	} else {
		p.emptyText.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (p *LeftPanelUI) SetStatus(s string) {
	if p == nil {
		return
	}
	p.statusText.Label = s
}

func (p *LeftPanelUI) SetSwatches(swatches []palette.Swatch) {
	if p == nil {
		return
	}
	fillSwatches(p.swatches, p.fontFace, swatches, p.onSwatch)
	p.Container.RequestRelayout()
}

// SetPatterns replaces the pattern list, keeping the selection when the
// pattern still exists.
func (p *LeftPanelUI) SetPatterns(names []string) {
	if p == nil {
		return
	}
	entries := make([]any, 0, len(names))
	for _, n := range names {
		entries = append(entries, n)
	}
	p.patternList.SetEntries(entries)
	for _, n := range names {
		if n == p.selectedPattern {
			p.patternList.SetSelectedEntry(n)
			return
		}
	}
	p.selectedPattern = ""
}
