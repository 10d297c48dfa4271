package palette

import (
	"image/color"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "palette")

// Swatch is a named preset color offered next to the hex input.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette holds the currently picked color. The color input writes it; strokes
// and fills only read it. It is independent of any grid, so a pick survives
// rebuilds.
type Palette struct {
	def      color.RGBA
	picked   color.RGBA
	isPicked bool
	swatches []Swatch
}

// New returns a palette with the given default (unpainted) color and initial
// pick. An empty picked value starts the palette unset.
func New(defaultColor, picked string) (*Palette, error) {
	def, err := ParseHex(defaultColor)
	if err != nil {
		return nil, err
	}
	p := &Palette{def: def}
	if err := p.SetPicked(picked); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPicked is the color input's "set picked color" call. The empty string
// unsets the pick; an unparsable value is rejected and the pick is unchanged.
func (p *Palette) SetPicked(hex string) error {
	if strings.TrimSpace(hex) == "" {
		p.isPicked = false
		p.picked = color.RGBA{}
		log.Debug("picked color cleared")
		return nil
	}
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	p.picked = c
	p.isPicked = true
	log.WithField("color", Hex(c)).Debug("picked color set")
	return nil
}

// Picked returns the picked color and whether one is set.
func (p *Palette) Picked() (color.RGBA, bool) {
	return p.picked, p.isPicked
}

// Active is the color a stroke or fill uses: the pick, or the default when
// nothing is picked.
func (p *Palette) Active() color.RGBA {
	if p.isPicked {
		return p.picked
	}
	return p.def
}

// Default is the unpainted cell color.
func (p *Palette) Default() color.RGBA { return p.def }

// SetDefault changes the unpainted color used by grids built afterwards.
func (p *Palette) SetDefault(c color.RGBA) { p.def = c }

func (p *Palette) Swatches() []Swatch { return p.swatches }

// SetSwatches replaces the preset list.
func (p *Palette) SetSwatches(s []Swatch) {
	p.swatches = append([]Swatch(nil), s...)
}
