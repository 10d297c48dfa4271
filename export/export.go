package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	"github.com/milk9111/pixelmap/grid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "export")

// DefaultFilename is the name the download is offered under.
const DefaultFilename = "map.jpg"

// ErrNoDownloader is returned by Exporter.Export without a Downloader.
var ErrNoDownloader = errors.New("no downloader configured")

// Downloader delivers an encoded file to the user. It returns where the file
// ended up, for display.
type Downloader interface {
	Download(ctx context.Context, name string, data []byte) (string, error)
}

// EncodeJPEG writes img as a JPEG. Quality is clamped to 1-100.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("export: encode jpeg: %w", err)
	}
	return nil
}

// Exporter captures a grid and triggers the download.
type Exporter struct {
	Filename string
	Quality  int
	Render   RenderOptions
	// Scale enlarges the rendered image by a whole factor. Zero or one keeps
	// CellSize pixels per cell.
	Scale      int
	Downloader Downloader
}

// Export renders g, encodes it and downloads it. It returns the location the
// Downloader reported.
func (e *Exporter) Export(ctx context.Context, g *grid.Grid) (string, error) {
	if e.Downloader == nil {
		return "", ErrNoDownloader
	}
	name := sanitizeFilename(e.Filename)

	img := Scale(Render(g, e.Render), e.Scale)
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, img, e.Quality); err != nil {
		return "", err
	}

	where, err := e.Downloader.Download(ctx, name, buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("export: download %s: %w", name, err)
	}
	log.WithFields(logrus.Fields{
		"file":  where,
		"bytes": buf.Len(),
		"w":     img.Bounds().Dx(),
		"h":     img.Bounds().Dy(),
	}).Info("exported map")
	return where, nil
}

// sanitizeFilename keeps only the base name and forces a .jpg extension.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultFilename
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return name
	}
	return name + ".jpg"
}
