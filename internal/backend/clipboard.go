package backend

import (
	"strings"

	"github.com/rook-computer/guibridge/internal/host"
)

// Clipboard adapts the host clipboard to gui.ClipboardBackend. Hosts store
// NUL-terminated text, so embedded NUL bytes are stripped before a set.
type Clipboard struct {
	Host host.Clipboard
}

func (c Clipboard) Get() (string, bool) {
	if c.Host == nil {
		return "", false
	}
	return c.Host.ClipboardText()
}

func (c Clipboard) Set(text string) {
	if c.Host == nil {
		return
	}
	c.Host.SetClipboardText(cString(text))
}

// cString removes NUL bytes one at a time until the text is a valid C string.
func cString(text string) string {
	for {
		i := strings.IndexByte(text, 0)
		if i < 0 {
			return text
		}
		text = text[:i] + text[i+1:]
	}
}
