//go:build !linux

package input

import (
	"context"
	"fmt"
	"runtime"
)

// Start reports ErrNoDevice; evdev exists only on Linux.
func (d *Device) Start(ctx context.Context) error {
	d.infof("evdev unavailable on %s", runtime.GOOS)
	return fmt.Errorf("%w: evdev unsupported on %s", ErrNoDevice, runtime.GOOS)
}
