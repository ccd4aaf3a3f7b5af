package render

import (
	"context"
	"image"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/guibridge/internal/host"
)

// FBPresenter scales the logical canvas onto a Linux framebuffer device and
// overlays the software cursor.
type FBPresenter struct {
	Path  string
	fbDev *fb.Device

	running       atomic.Bool
	cursorVisible bool
	cursorShape   host.MouseCursor

	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewFBPresenter(path string) *FBPresenter {
	if path == "" {
		path = "/dev/fb0"
	}
	return &FBPresenter{Path: path, cursorVisible: true, cursorShape: host.MouseCursorArrow}
}

func (p *FBPresenter) Start(ctx context.Context) error {
	dev, err := fb.Open(p.Path)
	if err != nil {
		return err
	}
	p.fbDev = dev
	if p.Logger != nil {
		b := dev.Bounds()
		p.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", p.Path, b.Dx(), b.Dy())
	}
	p.running.Store(true)
	return nil
}

func (p *FBPresenter) Stop() error {
	if !p.running.Swap(false) {
		return nil
	}
	if p.fbDev != nil {
		p.fbDev.Close()
	}
	return nil
}

func (p *FBPresenter) SetCursor(visible bool, shape host.MouseCursor) {
	p.cursorVisible = visible
	p.cursorShape = shape
}

// Present blits canvas to the framebuffer. mouseX and mouseY are canvas
// coordinates.
func (p *FBPresenter) Present(canvas *image.RGBA, mouseX, mouseY int) error {
	if !p.running.Load() || p.fbDev == nil {
		return nil
	}
	present(p.fbDev, canvas, mouseX, mouseY, p.cursorVisible, p.cursorShape)
	return nil
}

// present scales canvas over dst and draws the cursor at its scaled position.
func present(dst xdraw.Image, canvas *image.RGBA, mouseX, mouseY int, cursorVisible bool, shape host.MouseCursor) {
	bounds := dst.Bounds()
	src := canvas.Bounds()
	if bounds.Empty() || src.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, bounds, canvas, src, xdraw.Src, nil)
	if !cursorVisible {
		return
	}
	x := bounds.Min.X + (mouseX-src.Min.X)*bounds.Dx()/src.Dx()
	y := bounds.Min.Y + (mouseY-src.Min.Y)*bounds.Dy()/src.Dy()
	drawCursor(dst, x, y, shape)
}
