package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	panelBackground = color.RGBA{40, 40, 40, 255}
	controlBase     = color.RGBA{180, 180, 180, 255}
	labelColor      = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
)

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// mix blends c toward target in Lab space. t=0 is c, t=1 is target.
func mix(c, target color.RGBA, t float64) color.RGBA {
	a, _ := colorful.MakeColor(c)
	b, _ := colorful.MakeColor(target)
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return color.RGBA{r, g, bl, 255}
}

var (
	whiteRGBA = color.RGBA{255, 255, 255, 255}
	blackRGBA = color.RGBA{0, 0, 0, 255}
)

// newPixelMapTheme derives control shades from a neutral base and list
// highlights from accent, the color picked at startup.
func newPixelMapTheme(fontFace *text.Face, accent color.RGBA) *widget.Theme {
	listBackground := mix(controlBase, whiteRGBA, 0.4)
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            color.Black,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: mix(accent, whiteRGBA, 0.75),
				SelectedBackground:  mix(accent, whiteRGBA, 0.55),
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(listBackground),
				Mask: solidNineSlice(listBackground),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:    shadedButtonImage(controlBase),
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}

// shadedButtonImage is a flat button in c, lighter on hover and darker when
// pressed.
func shadedButtonImage(c color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(c),
		Hover:   solidNineSlice(mix(c, whiteRGBA, 0.15)),
		Pressed: solidNineSlice(mix(c, blackRGBA, 0.2)),
	}
}
