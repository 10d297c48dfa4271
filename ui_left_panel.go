package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixelmap/palette"
)

func buildLeftPanelUI(theme *widget.Theme, fontFace *text.Face, cb editorCallbacks, pal *palette.Palette, patterns []string, cols, rows string) *LeftPanelUI {
	panel := &LeftPanelUI{fontFace: fontFace}

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
			),
		),
	)
	panel.Container = leftPanel

	addMapSection(panel, theme, fontFace, cb, cols, rows)
	addColorSection(panel, theme, fontFace, cb, pal)
	addPatternSection(panel, theme, fontFace, cb, patterns)

	leftPanel.AddChild(newButton(theme, fontFace, "Save JPG", cb.onSave))

	panel.statusText = widget.NewText(
		widget.TextOpts.Text("", fontFace, color.Gray{Y: 200}),
	)
	leftPanel.AddChild(panel.statusText)
	return panel
}

func addMapSection(panel *LeftPanelUI, theme *widget.Theme, fontFace *text.Face, cb editorCallbacks, cols, rows string) {
	create := func(string) {
		if cb.onCreate != nil {
			cb.onCreate(panel.colsInput.GetText(), panel.rowsInput.GetText())
		}
	}

	panel.Container.AddChild(newSectionLabel(fontFace, "Columns"))
	panel.colsInput = newTextField(fontFace, 200, cols, create)
	panel.Container.AddChild(panel.colsInput)

	panel.Container.AddChild(newSectionLabel(fontFace, "Rows"))
	panel.rowsInput = newTextField(fontFace, 200, rows, create)
	panel.Container.AddChild(panel.rowsInput)

	row := newRow(8)
	row.AddChild(newButton(theme, fontFace, "Create Map", func() { create("") }))
	panel.emptyText = widget.NewText(
		widget.TextOpts.Text("Empty", fontFace, color.RGBA{255, 120, 120, 255}),
	)
	panel.emptyText.GetWidget().Visibility = widget.Visibility_Hide
	row.AddChild(panel.emptyText)
	panel.Container.AddChild(row)
}

func addColorSection(panel *LeftPanelUI, theme *widget.Theme, fontFace *text.Face, cb editorCallbacks, pal *palette.Palette) {
	initial := ""
	if c, ok := pal.Picked(); ok {
		initial = palette.Hex(c)
	}

	panel.Container.AddChild(newSectionLabel(fontFace, "Color (#RRGGBB)"))
	panel.colorInput = newTextField(fontFace, 200, initial, cb.onColorEntered)
	panel.Container.AddChild(panel.colorInput)

	row := newRow(8)
	panel.colorPreview = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(20, 20),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(pal.Active())),
	)
	panel.colorText = widget.NewText(
		widget.TextOpts.Text("Selected Color: "+palette.Hex(pal.Active()), fontFace, color.White),
	)
	row.AddChild(panel.colorPreview)
	row.AddChild(panel.colorText)
	panel.Container.AddChild(row)

	panel.onSwatch = func(s palette.Swatch) {
		panel.colorInput.SetText(palette.Hex(s.Color))
		if cb.onSwatch != nil {
			cb.onSwatch(s)
		}
	}
	panel.swatches = buildSwatchGrid()
	fillSwatches(panel.swatches, fontFace, pal.Swatches(), panel.onSwatch)
	panel.Container.AddChild(panel.swatches)

	panel.Container.AddChild(newButton(theme, fontFace, "Fill", cb.onFill))
}

func addPatternSection(panel *LeftPanelUI, theme *widget.Theme, fontFace *text.Face, cb editorCallbacks, patterns []string) {
	panel.Container.AddChild(newSectionLabel(fontFace, "Patterns"))

	entries := make([]any, 0, len(patterns))
	for _, n := range patterns {
		entries = append(entries, n)
	}
	panel.patternList = widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if name, ok := e.(string); ok {
				return name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if name, ok := args.Entry.(string); ok {
				panel.selectedPattern = name
			}
		}),
	)
	panel.patternList.GetWidget().MinHeight = 120
	panel.Container.AddChild(panel.patternList)

	panel.Container.AddChild(newButton(theme, fontFace, "Apply Pattern", func() {
		if panel.selectedPattern == "" || cb.onApplyPattern == nil {
			return
		}
		cb.onApplyPattern(panel.selectedPattern)
	}))
}
