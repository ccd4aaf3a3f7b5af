// Package backend bridges a gui.Platform to a host.Host. Each frame Update
// feeds window metrics and input into the GUI, and Render replays the GUI's
// draw data through the host's immediate-mode primitives.
package backend

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
)

const (
	PlatformName = "guibridge"

	// GamepadDeadZone is the stick magnitude treated as rest.
	GamepadDeadZone = 0.2
)

var (
	ErrFontTexture     = errors.New("backend: font texture upload failed")
	ErrIndexOutOfRange = errors.New("backend: draw command index out of range")
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

type Option func(*Renderer)

func WithLogger(l Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Renderer owns the per-context backend state: the last cursor pushed to the
// host, the previous frame's modifier/focus state and the font texture.
// It must be used from the thread that owns the host window.
type Renderer struct {
	ctx    gui.Platform
	host   host.Host
	logger Logger

	currentCursor gui.MouseCursor
	lastFrame     FrameState
	fontTexture   host.Texture2D
}

// New configures ctx for this backend and uploads the font atlas.
func New(ctx gui.Platform, h host.Host, opts ...Option) (*Renderer, error) {
	KeyboardMap()

	r := &Renderer{
		ctx:           ctx,
		host:          h,
		logger:        noopLogger{},
		currentCursor: gui.MouseCursorArrow,
		lastFrame:     NewFrameState(h),
	}
	for _, opt := range opts {
		opt(r)
	}

	ctx.SetPlatformName(PlatformName)
	ctx.AddBackendFlags(gui.BackendFlagsHasGamepad | gui.BackendFlagsHasSetMousePos | gui.BackendFlagsHasMouseCursors)
	ctx.SetMousePos(gui.Vec2{})
	ctx.SetClipboardBackend(Clipboard{Host: h})

	if err := r.ReloadFonts(); err != nil {
		return nil, err
	}
	return r, nil
}

// FontTexture is the host texture currently bound to the GUI font atlas.
func (r *Renderer) FontTexture() host.Texture2D { return r.fontTexture }

// LastFrame returns the focus and modifier state recorded by the last Update.
func (r *Renderer) LastFrame() FrameState { return r.lastFrame }

// Update pushes display metrics and this frame's input into the GUI. Call it
// before the application builds GUI content.
func (r *Renderer) Update() {
	r.updateDisplay()
	r.updateMouseCursor()
	r.processEvents()
}

func (r *Renderer) updateDisplay() {
	scale := r.host.WindowScaleDPI()
	r.ctx.SetDisplay(
		gui.Vec2{X: float32(r.host.ScreenWidth()), Y: float32(r.host.ScreenHeight())},
		gui.Vec2{X: scale.X, Y: scale.Y},
		r.host.FrameTime(),
	)
}

func (r *Renderer) updateMouseCursor() {
	st := r.ctx.State()
	if !st.HasBackendFlags(gui.BackendFlagsHasMouseCursors) {
		return
	}
	cursor := r.ctx.MouseCursor()
	if cursor == r.currentCursor && !st.MouseDrawCursor {
		return
	}
	r.currentCursor = cursor

	if st.MouseDrawCursor || cursor == gui.MouseCursorNone {
		r.host.HideCursor()
		return
	}
	r.host.ShowCursor()
	if !st.HasConfigFlags(gui.ConfigFlagsNoMouseCursorChange) {
		r.host.SetMouseCursor(hostCursor(cursor))
	}
}

func (r *Renderer) processEvents() {
	st := r.ctx.State()
	sink := r.ctx
	h := r.host
	last := &r.lastFrame

	if focused := h.IsWindowFocused(); focused != last.WindowFocused {
		sink.AddFocusEvent(focused)
		last.WindowFocused = focused
	}

	modifiers := [...]struct {
		state       *bool
		key         gui.Key
		left, right host.KeyboardKey
	}{
		{&last.Ctrl, gui.KeyModCtrl, host.KeyLeftControl, host.KeyRightControl},
		{&last.Shift, gui.KeyModShift, host.KeyLeftShift, host.KeyRightShift},
		{&last.Alt, gui.KeyModAlt, host.KeyLeftAlt, host.KeyRightAlt},
		{&last.Super, gui.KeyModSuper, host.KeyLeftSuper, host.KeyRightSuper},
	}
	for _, m := range modifiers {
		down := h.IsKeyDown(m.left) || h.IsKeyDown(m.right)
		if down != *m.state {
			sink.AddKeyEvent(m.key, down)
			*m.state = down
		}
	}

	for _, m := range KeyboardMap() {
		if h.IsKeyReleased(m.Host) {
			sink.AddKeyEvent(m.GUI, false)
		} else if h.IsKeyPressed(m.Host) {
			sink.AddKeyEvent(m.GUI, true)
		}
	}

	if st.WantCaptureKeyboard {
		for c := h.CharPressed(); c != 0; c = h.CharPressed() {
			sink.AddInputCharacter(c)
		}
	}

	if !st.WantSetMousePos {
		sink.AddMousePosEvent(gui.Vec2{X: float32(h.MouseX()), Y: float32(h.MouseY())})
	}

	for _, b := range mouseButtons {
		if h.IsMouseButtonPressed(b.host) {
			sink.AddMouseButtonEvent(b.gui, true)
		} else if h.IsMouseButtonReleased(b.host) {
			sink.AddMouseButtonEvent(b.gui, false)
		}
	}

	wheel := h.MouseWheelMoveV()
	sink.AddMouseWheelEvent(gui.Vec2{X: wheel.X, Y: wheel.Y})

	if st.HasConfigFlags(gui.ConfigFlagsNavEnableGamepad) && h.IsGamepadAvailable(0) {
		r.processGamepad()
	}
}

func (r *Renderer) processGamepad() {
	sink := r.ctx
	h := r.host

	for _, b := range gamepadButtons {
		if h.IsGamepadButtonPressed(0, b.host) {
			sink.AddKeyEvent(b.gui, true)
		} else if h.IsGamepadButtonReleased(0, b.host) {
			sink.AddKeyEvent(b.gui, false)
		}
	}

	for _, s := range gamepadSticks {
		v := h.GamepadAxisMovement(0, s.axis)
		neg, negActive := stickMagnitude(-v)
		pos, posActive := stickMagnitude(v)
		sink.AddKeyAnalogEvent(s.neg, negActive, neg)
		sink.AddKeyAnalogEvent(s.pos, posActive, pos)
	}
}

// stickMagnitude reports how far v goes past the dead zone in the positive
// direction.
func stickMagnitude(v float32) (float32, bool) {
	if v > GamepadDeadZone {
		return v - GamepadDeadZone, true
	}
	return 0, false
}

// Render replays the frame's draw data. It returns an error only for
// malformed draw data; an empty frame is not an error.
func (r *Renderer) Render() error {
	scale := gui.Vec2{X: 1, Y: 1}
	if r.host.IsWindowHighDPI() {
		scale = r.ctx.State().DisplayFramebufferScale
	}

	data := r.ctx.Render()
	fbWidth := data.DisplaySize.X * data.FramebufferScale.X
	fbHeight := data.DisplaySize.Y * data.FramebufferScale.Y
	if !(fbWidth > 0 && fbHeight > 0) || len(data.Lists) == 0 {
		return nil
	}

	h := r.host
	h.DrawRenderBatchActive()
	h.DisableBackfaceCulling()
	defer func() {
		h.SetTexture(0)
		h.DisableScissorTest()
		h.EnableBackfaceCulling()
	}()

	targetHeight := data.DisplaySize.Y * scale.Y
	for li, list := range data.Lists {
		for ci := range list.Commands {
			cmd := &list.Commands[ci]
			switch cmd.Kind {
			case gui.DrawCmdElements:
				r.enableScissor(cmd.Params.ClipRect, data.DisplayPos, scale, targetHeight)
				if err := r.renderTriangles(list, cmd); err != nil {
					return fmt.Errorf("draw list %d command %d: %w", li, ci, err)
				}
				h.DrawRenderBatchActive()
			case gui.DrawCmdResetRenderState:
				h.SetTexture(0)
			case gui.DrawCmdRawCallback:
				if cmd.Callback != nil {
					cmd.Callback(list, cmd)
				}
			default:
				return fmt.Errorf("draw list %d command %d: unknown kind %v", li, ci, cmd.Kind)
			}
		}
	}
	return nil
}

// enableScissor converts a GUI clip rect into bottom-left-origin framebuffer
// pixels.
func (r *Renderer) enableScissor(clip gui.Vec4, origin, scale gui.Vec2, targetHeight float32) {
	x := clip.X - origin.X
	y := clip.Y - origin.Y
	w := clip.Z - clip.X
	h := clip.W - clip.Y

	r.host.EnableScissorTest()
	r.host.Scissor(
		int(x*scale.X),
		int(targetHeight-float32(math.Floor(float64(y+h)))*scale.Y),
		int(w*scale.X),
		int(h*scale.Y),
	)
}

func (r *Renderer) renderTriangles(list *gui.DrawList, cmd *gui.DrawCmd) error {
	if cmd.Count < 3 {
		return nil
	}
	p := cmd.Params
	if p.IdxOffset < 0 || p.IdxOffset+cmd.Count > len(list.IdxBuffer) {
		return fmt.Errorf("%w: indices [%d,%d) of %d", ErrIndexOutOfRange, p.IdxOffset, p.IdxOffset+cmd.Count, len(list.IdxBuffer))
	}
	for _, idx := range list.IdxBuffer[p.IdxOffset : p.IdxOffset+cmd.Count] {
		if v := p.VtxOffset + int(idx); v < 0 || v >= len(list.VtxBuffer) {
			return fmt.Errorf("%w: vertex %d of %d", ErrIndexOutOfRange, v, len(list.VtxBuffer))
		}
	}

	h := r.host
	h.Begin(host.Triangles)
	h.SetTexture(uint32(p.TextureID))
	for _, idx := range list.IdxBuffer[p.IdxOffset : p.IdxOffset+cmd.Count] {
		v := list.VtxBuffer[p.VtxOffset+int(idx)]
		h.Color4ub(v.Col[0], v.Col[1], v.Col[2], v.Col[3])
		h.TexCoord2f(v.UV.X, v.UV.Y)
		h.Vertex2f(v.Pos.X, v.Pos.Y)
	}
	h.End()
	return nil
}

// ReloadFonts rasterizes the GUI font atlas and uploads it as a new host
// texture. On failure the previous texture stays bound.
func (r *Renderer) ReloadFonts() error {
	atlas := r.ctx.Fonts()
	if atlas == nil {
		return fmt.Errorf("%w: context has no font atlas", ErrFontTexture)
	}
	pixels, width, height, err := atlas.BuildRGBA32()
	if err != nil {
		return fmt.Errorf("%w: build atlas: %w", ErrFontTexture, err)
	}
	size := width * height * 4
	if width <= 0 || height <= 0 || len(pixels) < size {
		return fmt.Errorf("%w: atlas %dx%d with %d bytes", ErrFontTexture, width, height, len(pixels))
	}

	img := r.host.GenImageColor(width, height, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	copy(img.Data[:size], pixels[:size])
	tex, err := r.host.LoadTextureFromImage(img)
	r.host.UnloadImage(img)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFontTexture, err)
	}

	old := r.fontTexture
	r.fontTexture = tex
	atlas.SetTexID(gui.TextureID(tex.ID))
	if old.ID != 0 {
		r.host.UnloadTexture(old)
	}
	r.logger.Infof("backend", "font atlas uploaded %dx%d as texture %d", width, height, tex.ID)
	return nil
}
