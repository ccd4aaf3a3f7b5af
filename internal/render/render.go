// Package render is a software implementation of the host texture and
// immediate-mode primitive API, drawing into an offscreen RGBA canvas that a
// Presenter puts on screen.
package render

import (
	"context"
	"image"

	"github.com/rook-computer/guibridge/internal/host"
)

// Presenter shows a finished canvas.
type Presenter interface {
	Start(ctx context.Context) error
	Stop() error
	// SetCursor configures the software cursor drawn over the canvas.
	SetCursor(visible bool, shape host.MouseCursor)
	Present(canvas *image.RGBA, mouseX, mouseY int) error
}

// NoopPresenter discards frames. Used when no display is attached.
type NoopPresenter struct {
	Frames int
}

func (n *NoopPresenter) Start(ctx context.Context) error                { return nil }
func (n *NoopPresenter) Stop() error                                    { return nil }
func (n *NoopPresenter) SetCursor(visible bool, shape host.MouseCursor) {}
func (n *NoopPresenter) Present(canvas *image.RGBA, x, y int) error {
	n.Frames++
	return nil
}
