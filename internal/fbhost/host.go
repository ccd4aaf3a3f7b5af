// Package fbhost is a host.Host for bare Linux consoles: GUI geometry is
// rasterized in software, presented on the framebuffer and driven by evdev.
package fbhost

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rook-computer/guibridge/internal/host"
	"github.com/rook-computer/guibridge/internal/input"
	"github.com/rook-computer/guibridge/internal/render"
	"github.com/rook-computer/guibridge/internal/system"
)

const defaultFrameTime = float32(1.0 / 60)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Host composes the software rasterizer, the evdev input device and a
// presenter. Drawing and polling happen on the frame thread.
type Host struct {
	*render.Rasterizer
	*input.Device

	Presenter render.Presenter
	Console   *system.Console
	Logger    logger

	now       func() time.Time
	lastFrame time.Time
	frameTime float32

	cursorVisible bool
	cursorShape   host.MouseCursor

	clipboard    string
	hasClipboard bool
}

// New creates a host with a width x height canvas. A nil presenter discards
// frames; a nil device reads no input.
func New(width, height int, presenter render.Presenter, in *input.Device) *Host {
	if presenter == nil {
		presenter = &render.NoopPresenter{}
	}
	raster := render.NewRasterizer(width, height)
	if in == nil {
		in = input.NewDevice("", raster.Width(), raster.Height())
	}
	in.SetScreenSize(raster.Width(), raster.Height())
	return &Host{
		Rasterizer:    raster,
		Device:        in,
		Presenter:     presenter,
		now:           time.Now,
		frameTime:     defaultFrameTime,
		cursorVisible: true,
		cursorShape:   host.MouseCursorDefault,
	}
}

// Start takes over the console and opens the presenter and input devices.
// Console and input failures are logged and tolerated; a presenter failure
// is returned.
func (h *Host) Start(ctx context.Context) error {
	if h.Console != nil {
		h.Console.Logger = h.Logger
		if err := h.Console.Enter(); err != nil {
			h.errorf("console: %v", err)
		}
	}
	if err := h.Presenter.Start(ctx); err != nil {
		if h.Console != nil {
			_ = h.Console.Restore()
		}
		return err
	}
	h.Device.Logger = h.Logger
	if err := h.Device.Start(ctx); err != nil {
		if !errors.Is(err, input.ErrNoDevice) {
			h.stopPresenter()
			return err
		}
		h.errorf("%v; running without input", err)
	}
	h.presentCursor()
	h.infof("started %dx%d", h.ScreenWidth(), h.ScreenHeight())
	return nil
}

// Stop releases input, presenter and console in reverse order.
func (h *Host) Stop() error {
	inErr := h.Device.Stop()
	return errors.Join(inErr, h.stopPresenter())
}

func (h *Host) stopPresenter() error {
	err := h.Presenter.Stop()
	if h.Console != nil {
		err = errors.Join(err, h.Console.Restore())
	}
	return err
}

// BeginFrame measures the frame time, polls input and clears the canvas.
func (h *Host) BeginFrame() {
	now := h.now()
	if !h.lastFrame.IsZero() {
		if dt := float32(now.Sub(h.lastFrame).Seconds()); dt > 0 {
			h.frameTime = dt
		}
	}
	h.lastFrame = now
	h.Device.Poll()
	h.Clear(render.ClearColor)
}

// EndFrame flushes pending geometry and presents the canvas.
func (h *Host) EndFrame() error {
	h.DrawRenderBatchActive()
	return h.Presenter.Present(h.Canvas(), h.MouseX(), h.MouseY())
}

func (h *Host) ScreenWidth() int              { return h.Rasterizer.Width() }
func (h *Host) ScreenHeight() int             { return h.Rasterizer.Height() }
func (h *Host) WindowScaleDPI() host.Vec2     { return host.Vec2{X: 1, Y: 1} }
func (h *Host) FrameTime() float32            { return h.frameTime }
func (h *Host) IsWindowFocused() bool         { return true }
func (h *Host) IsWindowHighDPI() bool         { return false }
func (h *Host) CursorVisible() bool           { return h.cursorVisible }
func (h *Host) CursorShape() host.MouseCursor { return h.cursorShape }
func (h *Host) ClipboardText() (string, bool) { return h.clipboard, h.hasClipboard }
func (h *Host) SetClipboardText(text string)  { h.clipboard, h.hasClipboard = cString(text), true }

func (h *Host) SetMouseCursor(c host.MouseCursor) {
	h.cursorShape = c
	h.presentCursor()
}

func (h *Host) ShowCursor() {
	h.cursorVisible = true
	h.presentCursor()
}

func (h *Host) HideCursor() {
	h.cursorVisible = false
	h.presentCursor()
}

func (h *Host) presentCursor() {
	h.Presenter.SetCursor(h.cursorVisible, h.cursorShape)
}

// cString keeps text up to the first NUL, as a C string would.
func cString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func (h *Host) infof(format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Infof("fbhost", format, args...)
	}
}

func (h *Host) errorf(format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Errorf("fbhost", format, args...)
	}
}
