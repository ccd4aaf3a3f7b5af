package backend

import (
	"testing"

	"github.com/rook-computer/guibridge/internal/gui"
)

func TestClipboardRoundTrip(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"", ""},
		{"héllo wörld", "héllo wörld"},
		{"ab\x00cd", "abcd"},
		{"\x00lead", "lead"},
		{"a\x00\x00b\x00", "ab"},
	}
	for _, tt := range tests {
		f := newFakeHost()
		c := Clipboard{Host: f}
		c.Set(tt.in)
		got, ok := c.Get()
		if !ok || got != tt.want {
			t.Errorf("Set(%q) then Get() = %q, %t; want %q", tt.in, got, ok, tt.want)
		}
	}
}

func TestClipboardEmptyHost(t *testing.T) {
	c := Clipboard{Host: newFakeHost()}
	if _, ok := c.Get(); ok {
		t.Error("empty host clipboard reported text")
	}
	var detached Clipboard
	detached.Set("x")
	if _, ok := detached.Get(); ok {
		t.Error("clipboard without host reported text")
	}
}

func TestContextUsesClipboardBridge(t *testing.T) {
	f := newFakeHost()
	_, ctx := newTestRenderer(f)

	ctx.SetClipboardText("copy\x00me")
	if f.clipboard != "copyme" {
		t.Errorf("host clipboard = %q", f.clipboard)
	}
	f.clipboard = "pasted"
	if got, ok := ctx.ClipboardText(); !ok || got != "pasted" {
		t.Errorf("ClipboardText() = %q, %t", got, ok)
	}
	var _ gui.ClipboardBackend = Clipboard{}
}
