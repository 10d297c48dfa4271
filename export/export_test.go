package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/pixelmap/grid"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	grey  = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
)

func paintedGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 2, white)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	c, _ := g.At(1, 2)
	c.Color = red
	c.Painted = true
	return g
}

func TestRender(t *testing.T) {
	g := paintedGrid(t)

	tests := []struct {
		name  string
		opts  RenderOptions
		w, h  int
		probe map[image.Point]color.RGBA
	}{
		{
			name: "plain",
			opts: RenderOptions{Layout: grid.Layout{CellSize: 4}},
			w:    12, h: 8,
			probe: map[image.Point]color.RGBA{
				{0, 0}:  white,
				{9, 5}:  red,
				{11, 7}: red,
				{7, 5}:  white,
			},
		},
		{
			name: "gap shows background",
			opts: RenderOptions{Layout: grid.Layout{CellSize: 4, Gap: 1}, Background: &grey},
			w:    14, h: 9,
			probe: map[image.Point]color.RGBA{
				{4, 0}:  grey,
				{0, 4}:  grey,
				{10, 5}: red,
				{0, 0}:  white,
			},
		},
		{
			name: "grid lines",
			opts: RenderOptions{Layout: grid.Layout{CellSize: 4}, GridLines: true, GridLineColor: grey},
			w:    12, h: 8,
			probe: map[image.Point]color.RGBA{
				{0, 0}:  grey,
				{8, 4}:  grey,
				{9, 5}:  red,
				{1, 1}:  white,
				{11, 7}: grey,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Render(g, tt.opts)
			if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
				t.Fatalf("size = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), tt.w, tt.h)
			}
			for p, want := range tt.probe {
				if got := img.RGBAAt(p.X, p.Y); got != want {
					t.Fatalf("pixel %v = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	g, _ := grid.New(0, 4, red)
	img := Render(g, RenderOptions{Layout: grid.Layout{CellSize: 10}})
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("size = %v, want 1x1", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != red {
		t.Fatalf("pixel = %v, want %v", got, red)
	}

	img = Render(nil, RenderOptions{Layout: grid.Layout{CellSize: 10}})
	if got := img.RGBAAt(0, 0); got != white {
		t.Fatalf("nil grid pixel = %v, want %v", got, white)
	}
}

func TestScale(t *testing.T) {
	img := Render(paintedGrid(t), RenderOptions{Layout: grid.Layout{CellSize: 1}})
	scaled := Scale(img, 3)
	if scaled.Bounds().Dx() != 9 || scaled.Bounds().Dy() != 6 {
		t.Fatalf("scaled size = %v", scaled.Bounds())
	}
	r, g, b, _ := scaled.At(8, 5).RGBA()
	if r>>8 != 0xff || g != 0 || b != 0 {
		t.Fatalf("scaled corner not red: %d %d %d", r>>8, g>>8, b>>8)
	}
	if Scale(img, 1) != image.Image(img) {
		t.Fatalf("factor 1 should return the input")
	}
}

func TestEncodeJPEG(t *testing.T) {
	img := Render(paintedGrid(t), RenderOptions{Layout: grid.Layout{CellSize: 8}})
	for _, q := range []int{-5, 1, 90, 250} {
		var buf bytes.Buffer
		if err := EncodeJPEG(&buf, img, q); err != nil {
			t.Fatalf("quality %d: %v", q, err)
		}
		decoded, err := jpeg.Decode(&buf)
		if err != nil {
			t.Fatalf("quality %d: decode: %v", q, err)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Fatalf("quality %d: bounds %v, want %v", q, decoded.Bounds(), img.Bounds())
		}
	}
}

type recordingDownloader struct {
	name string
	data []byte
	err  error
}

func (r *recordingDownloader) Download(_ context.Context, name string, data []byte) (string, error) {
	r.name = name
	r.data = data
	return "memory://" + name, r.err
}

func TestExporter(t *testing.T) {
	rec := &recordingDownloader{}
	e := &Exporter{
		Filename:   "",
		Quality:    90,
		Render:     RenderOptions{Layout: grid.Layout{CellSize: 8}},
		Downloader: rec,
	}
	where, err := e.Export(context.Background(), paintedGrid(t))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if rec.name != DefaultFilename || where != "memory://"+DefaultFilename {
		t.Fatalf("name = %q where = %q", rec.name, where)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(rec.data))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 24 || cfg.Height != 16 {
		t.Fatalf("exported %dx%d, want 24x16", cfg.Width, cfg.Height)
	}

	e.Scale = 3
	if _, err := e.Export(context.Background(), paintedGrid(t)); err != nil {
		t.Fatalf("scaled Export: %v", err)
	}
	cfg, err = jpeg.DecodeConfig(bytes.NewReader(rec.data))
	if err != nil {
		t.Fatalf("decode scaled config: %v", err)
	}
	if cfg.Width != 72 || cfg.Height != 48 {
		t.Fatalf("scaled export %dx%d, want 72x48", cfg.Width, cfg.Height)
	}
	e.Scale = 0

	rec.err = errors.New("denied")
	if _, err := e.Export(context.Background(), paintedGrid(t)); !errors.Is(err, rec.err) {
		t.Fatalf("expected wrapped download error, got %v", err)
	}

	e.Downloader = nil
	if _, err := e.Export(context.Background(), paintedGrid(t)); !errors.Is(err, ErrNoDownloader) {
		t.Fatalf("expected ErrNoDownloader, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", DefaultFilename},
		{"  ", DefaultFilename},
		{"map.jpg", "map.jpg"},
		{"Map.JPEG", "Map.JPEG"},
		{"level", "level.jpg"},
		{"../../etc/map.jpg", "map.jpg"},
		{"shot.png", "shot.png.jpg"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirDownloader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := NewDownloader(dir)

	where, err := d.Download(context.Background(), "map.jpg", []byte("one"))
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if where != filepath.Join(dir, "map.jpg") {
		t.Fatalf("where = %q", where)
	}
	if _, err := d.Download(context.Background(), "map.jpg", []byte("two")); err != nil {
		t.Fatalf("second Download: %v", err)
	}
	data, err := os.ReadFile(where)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "two" {
		t.Fatalf("content = %q, want overwrite", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only map.jpg in dir, got %d entries", len(entries))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.Download(ctx, "map.jpg", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
