//go:build js
// +build js

package export

import (
	"context"
	"syscall/js"
)

// BrowserDownloader offers the file through a temporary object URL and a
// clicked anchor, the way a page-initiated download works.
type BrowserDownloader struct{}

// NewDownloader returns the platform downloader. In the browser the directory
// is ignored.
func NewDownloader(string) Downloader {
	return BrowserDownloader{}
}

func (BrowserDownloader) Download(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	global := js.Global()
	doc := global.Get("document")

	buf := global.Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)
	blob := global.Get("Blob").New([]any{buf}, map[string]any{"type": "image/jpeg"})
	url := global.Get("URL").Call("createObjectURL", blob)
	defer global.Get("URL").Call("revokeObjectURL", url)

	link := doc.Call("createElement", "a")
	link.Set("href", url)
	link.Set("download", name)
	body := doc.Get("body")
	body.Call("appendChild", link)
	link.Call("click")
	body.Call("removeChild", link)
	return name, nil
}
