//go:build !linux

package system

import (
	"fmt"
	"runtime"
)

const (
	kdText     = 0x00
	kdGraphics = 0x01
)

func setMode(paths []string, mode int) error {
	return fmt.Errorf("%w: console modes unsupported on %s", ErrNoConsole, runtime.GOOS)
}
