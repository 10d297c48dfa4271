//go:build !js
// +build !js

package main

import "golang.design/x/clipboard"

type clipboardAccess interface {
	ReadText() (string, bool)
	WriteText(s string) bool
}

type systemClipboard struct{}

// newClipboard falls back to a no-op clipboard when the system one cannot be
// opened, e.g. on a headless X server.
func newClipboard() clipboardAccess {
	if err := clipboard.Init(); err != nil {
		log.WithError(err).Info("clipboard disabled")
		return noClipboard{}
	}
	return systemClipboard{}
}

func (systemClipboard) ReadText() (string, bool) {
	return string(clipboard.Read(clipboard.FmtText)), true
}

func (systemClipboard) WriteText(s string) bool {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}

type noClipboard struct{}

func (noClipboard) ReadText() (string, bool) { return "", false }
func (noClipboard) WriteText(string) bool { return false }
