package main

import (
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pixelmap/palette"
)

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// typing reports whether a text input has focus, in which case the keys
// belong to it.
func (g *Game) typing() bool {
	if g.ui == nil {
		return false
	}
	_, ok := g.ui.GetFocusedWidget().(*widget.TextInput)
	return ok
}

func (g *Game) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHelp = !g.showHelp
		if g.showHelp {
			g.ctrl.DragEnd()
		}
	}
	if g.showHelp {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.showHelp = false
		}
		return
	}
	if g.typing() || !ctrlHeld() {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.fill()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyColor()
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.pasteColor()
	}
}

func (g *Game) copyColor() {
	hex := palette.Hex(g.palette.Active())
	if !g.clip.WriteText(hex) {
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Copied " + hex)
}

func (g *Game) pasteColor() {
	text, ok := g.clip.ReadText()
	if !ok {
		g.setStatus("Clipboard unavailable")
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	g.pickColor(text)
}
