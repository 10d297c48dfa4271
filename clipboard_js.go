//go:build js
// +build js

package main

type clipboardAccess interface {
	ReadText() (string, bool)
	WriteText(s string) bool
}

// The browser clipboard API is asynchronous and permission gated, so the
// hotkeys report it as unavailable.
func newClipboard() clipboardAccess { return noClipboard{} }

type noClipboard struct{}

func (noClipboard) ReadText() (string, bool) { return "", false }
func (noClipboard) WriteText(string) bool { return false }
