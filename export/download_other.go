//go:build !js
// +build !js

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirDownloader writes downloads into Dir, replacing an existing file.
type DirDownloader struct {
	Dir string
}

// NewDownloader returns the platform downloader. On desktop it saves into dir.
func NewDownloader(dir string) Downloader {
	if dir == "" {
		dir = "."
	}
	return &DirDownloader{Dir: dir}
}

func (d *DirDownloader) Download(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	tmp, err := os.CreateTemp(d.Dir, ".pixelmap-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename into place: %w", err)
	}
	return path, nil
}
