package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"upper", "#1A2B3C", color.RGBA{0x1a, 0x2b, 0x3c, 0xff}, false},
		{"lower", "#ff0000", color.RGBA{0xff, 0, 0, 0xff}, false},
		{"no_hash", "00FF00", color.RGBA{0, 0xff, 0, 0xff}, false},
		{"short", "#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"padded", "  #000000 ", color.RGBA{0, 0, 0, 0xff}, false},
		{"empty", "", color.RGBA{}, true},
		{"five_digits", "#12345", color.RGBA{}, true},
		{"trailing", "#1234567", color.RGBA{}, true},
		{"not_hex", "#GGGGGG", color.RGBA{}, true},
		{"name", "red", color.RGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseHex(c.in)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, in := range []string{"#000000", "#FFFFFF", "#1A2B3C", "#FF0000"} {
		c := MustParseHex(in)
		if got := Hex(c); got != in {
			t.Fatalf("expected %s, got %s", in, got)
		}
	}
}

func TestLabelColor(t *testing.T) {
	if LabelColor(MustParseHex("#FFFFFF")) != color.Black {
		t.Fatalf("expected black label on white")
	}
	if LabelColor(MustParseHex("#000000")) != color.White {
		t.Fatalf("expected white label on black")
	}
}

func TestPaletteActiveFallsBackToDefault(t *testing.T) {
	p, err := New("#FFFFFF", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := p.Picked(); ok {
		t.Fatalf("expected no pick")
	}
	if p.Active() != p.Default() {
		t.Fatalf("expected default %v, got %v", p.Default(), p.Active())
	}

	if err := p.SetPicked("#FF0000"); err != nil {
		t.Fatalf("SetPicked: %v", err)
	}
	if got := Hex(p.Active()); got != "#FF0000" {
		t.Fatalf("expected #FF0000, got %s", got)
	}

	if err := p.SetPicked(""); err != nil {
		t.Fatalf("SetPicked empty: %v", err)
	}
	if p.Active() != p.Default() {
		t.Fatalf("expected unset pick to fall back to default")
	}
}

func TestPaletteRejectsBadPick(t *testing.T) {
	p, err := New("#FFFFFF", "#000000")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.SetPicked("#nothex"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if got := Hex(p.Active()); got != "#000000" {
		t.Fatalf("pick should be unchanged, got %s", got)
	}
}

func TestNewRejectsBadDefault(t *testing.T) {
	if _, err := New("white", "#000000"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestSwatchesAreCopied(t *testing.T) {
	p, _ := New("#FFFFFF", "#000000")
	src := []Swatch{{Name: "Red", Color: MustParseHex("#FF0000")}}
	p.SetSwatches(src)
	src[0].Name = "changed"
	if p.Swatches()[0].Name != "Red" {
		t.Fatalf("swatches should not alias the caller's slice")
	}
}
