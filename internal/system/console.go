// Package system controls the Linux virtual terminal the framebuffer host
// draws over: console graphics mode and the text cursor.
package system

import (
	"errors"
	"fmt"
	"os"
)

const (
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

var ErrNoConsole = errors.New("system: no console")

// DefaultConsolePaths prefers the controlling tty, then the active VT.
var DefaultConsolePaths = []string{"/dev/tty", "/dev/tty0"}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console switches a VT to graphics mode for the lifetime of a host and
// restores it afterwards.
type Console struct {
	Paths  []string
	Logger logger

	graphics bool
}

func NewConsole() *Console {
	return &Console{Paths: DefaultConsolePaths}
}

// Enter hides the text cursor and switches the console to KD_GRAPHICS.
// Both steps are attempted; the first error is returned.
func (c *Console) Enter() error {
	cursorErr := writeVT(c.Paths, escHideCursor)
	c.log("hide cursor", cursorErr)
	modeErr := setMode(c.Paths, kdGraphics)
	c.log("KD_GRAPHICS", modeErr)
	if modeErr == nil {
		c.graphics = true
	}
	return errors.Join(cursorErr, modeErr)
}

// Restore undoes Enter. It is a no-op when graphics mode was never set.
func (c *Console) Restore() error {
	var modeErr error
	if c.graphics {
		modeErr = setMode(c.Paths, kdText)
		c.log("KD_TEXT", modeErr)
		if modeErr == nil {
			c.graphics = false
		}
	}
	cursorErr := writeVT(c.Paths, escShowCursor)
	c.log("show cursor", cursorErr)
	return errors.Join(modeErr, cursorErr)
}

// Graphics reports whether the console is currently in graphics mode.
func (c *Console) Graphics() bool { return c.graphics }

func (c *Console) log(what string, err error) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s failed: %v", what, err)
	} else {
		c.Logger.Infof("tty", "%s ok", what)
	}
}

// writeVT writes s to the first path that accepts it.
func writeVT(paths []string, s string) error {
	var lastErr error
	for _, p := range paths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return ErrNoConsole
	}
	return fmt.Errorf("%w: write VT: %w", ErrNoConsole, lastErr)
}
