//go:build cimgui

package imguictx

import (
	"errors"
	"unsafe"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/rook-computer/guibridge/internal/gui"
)

var ErrEmptyAtlas = errors.New("imguictx: font atlas has no pixels")

// Context owns one Dear ImGui context. Every event handed to it is forwarded
// to ImGui's IO and also recorded, so NewFrame can report what this frame
// received.
type Context struct {
	io        *imgui.IO
	fonts     *fontAtlas
	platform  string
	clipboard gui.ClipboardBackend
	events    []gui.Event
	frame     int
	layoutErr error
}

var _ gui.Platform = (*Context)(nil)

// New creates and activates an ImGui context.
func New() *Context {
	imgui.CreateContext()
	io := imgui.CurrentIO()
	return &Context{io: io, fonts: &fontAtlas{atlas: io.Fonts()}}
}

// Destroy releases the ImGui context. The Context must not be used after.
func (c *Context) Destroy() { imgui.DestroyContext() }

func (c *Context) SetPlatformName(name string) { c.platform = name }

// SetClipboardBackend keeps the bridge for application code.
// TODO: route ImGui's PlatformIO clipboard callbacks through it once the
// binding exposes Go setters for them.
func (c *Context) SetClipboardBackend(backend gui.ClipboardBackend) { c.clipboard = backend }
func (c *Context) Clipboard() gui.ClipboardBackend                  { return c.clipboard }
func (c *Context) Fonts() gui.FontAtlas                             { return c.fonts }
func (c *Context) FrameCount() int                                  { return c.frame }
func (c *Context) DisplaySize() gui.Vec2                            { return vec2(c.io.DisplaySize()) }
func (c *Context) MouseCursor() gui.MouseCursor                     { return gui.MouseCursor(imgui.CurrentMouseCursor()) }
func (c *Context) SetMousePos(pos gui.Vec2)                         { c.io.SetMousePos(imVec2(pos)) }

func (c *Context) AddBackendFlags(flags gui.BackendFlags) {
	f := c.io.BackendFlags()
	if flags&gui.BackendFlagsHasGamepad != 0 {
		f |= imgui.BackendFlagsHasGamepad
	}
	if flags&gui.BackendFlagsHasMouseCursors != 0 {
		f |= imgui.BackendFlagsHasMouseCursors
	}
	if flags&gui.BackendFlagsHasSetMousePos != 0 {
		f |= imgui.BackendFlagsHasSetMousePos
	}
	c.io.SetBackendFlags(f)
}

// AddConfigFlags enables GUI configuration flags on the ImGui IO.
func (c *Context) AddConfigFlags(flags gui.ConfigFlags) {
	f := c.io.ConfigFlags()
	if flags&gui.ConfigFlagsNavEnableKeyboard != 0 {
		f |= imgui.ConfigFlagsNavEnableKeyboard
	}
	if flags&gui.ConfigFlagsNavEnableGamepad != 0 {
		f |= imgui.ConfigFlagsNavEnableGamepad
	}
	if flags&gui.ConfigFlagsNoMouseCursorChange != 0 {
		f |= imgui.ConfigFlagsNoMouseCursorChange
	}
	c.io.SetConfigFlags(f)
}

func (c *Context) State() gui.PlatformState {
	s := gui.PlatformState{
		PlatformName:            c.platform,
		DisplayFramebufferScale: vec2(c.io.DisplayFramebufferScale()),
		MouseDrawCursor:         c.io.MouseDrawCursor(),
		WantCaptureKeyboard:     c.io.WantCaptureKeyboard(),
		WantSetMousePos:         c.io.WantSetMousePos(),
	}
	bf := c.io.BackendFlags()
	if bf&imgui.BackendFlagsHasGamepad != 0 {
		s.BackendFlags |= gui.BackendFlagsHasGamepad
	}
	if bf&imgui.BackendFlagsHasMouseCursors != 0 {
		s.BackendFlags |= gui.BackendFlagsHasMouseCursors
	}
	if bf&imgui.BackendFlagsHasSetMousePos != 0 {
		s.BackendFlags |= gui.BackendFlagsHasSetMousePos
	}
	cf := c.io.ConfigFlags()
	if cf&imgui.ConfigFlagsNavEnableKeyboard != 0 {
		s.ConfigFlags |= gui.ConfigFlagsNavEnableKeyboard
	}
	if cf&imgui.ConfigFlagsNavEnableGamepad != 0 {
		s.ConfigFlags |= gui.ConfigFlagsNavEnableGamepad
	}
	if cf&imgui.ConfigFlagsNoMouseCursorChange != 0 {
		s.ConfigFlags |= gui.ConfigFlagsNoMouseCursorChange
	}
	return s
}

func (c *Context) SetDisplay(size, framebufferScale gui.Vec2, deltaTime float32) {
	c.io.SetDisplaySize(imVec2(size))
	c.io.SetDisplayFramebufferScale(imVec2(framebufferScale))
	if deltaTime <= 0 {
		// ImGui asserts on a non-positive delta.
		deltaTime = 1.0 / 60
	}
	c.io.SetDeltaTime(deltaTime)
}

func (c *Context) AddFocusEvent(focused bool) {
	c.io.AddFocusEvent(focused)
	c.record(gui.Event{Kind: gui.EventFocus, Down: focused})
}

func (c *Context) AddKeyEvent(key gui.Key, down bool) {
	var analog float32
	if down {
		analog = 1
	}
	if k, ok := imguiKey(key); ok {
		c.io.AddKeyEvent(k, down)
	}
	c.record(gui.Event{Kind: gui.EventKey, Key: key, Down: down, Analog: analog})
}

func (c *Context) AddKeyAnalogEvent(key gui.Key, down bool, value float32) {
	if k, ok := imguiKey(key); ok {
		c.io.AddKeyAnalogEvent(k, down, value)
	}
	c.record(gui.Event{Kind: gui.EventKey, Key: key, Down: down, Analog: value})
}

func (c *Context) AddInputCharacter(r rune) {
	if r == 0 {
		return
	}
	c.io.AddInputCharacter(uint32(r))
	c.record(gui.Event{Kind: gui.EventText, Char: r})
}

func (c *Context) AddMousePosEvent(pos gui.Vec2) {
	c.io.AddMousePosEvent(pos.X, pos.Y)
	c.record(gui.Event{Kind: gui.EventMousePos, Pos: pos})
}

func (c *Context) AddMouseButtonEvent(button gui.MouseButton, down bool) {
	c.io.AddMouseButtonEvent(int32(button), down)
	c.record(gui.Event{Kind: gui.EventMouseButton, Button: button, Down: down})
}

func (c *Context) AddMouseWheelEvent(wheel gui.Vec2) {
	c.io.AddMouseWheelEvent(wheel.X, wheel.Y)
	c.record(gui.Event{Kind: gui.EventMouseWheel, Pos: wheel})
}

func (c *Context) record(ev gui.Event) { c.events = append(c.events, ev) }

// NewFrame starts an ImGui frame and returns the events forwarded since the
// previous one.
func (c *Context) NewFrame() []gui.Event {
	c.frame++
	imgui.NewFrame()
	events := c.events
	c.events = nil
	return events
}

// Render ends the ImGui frame and copies its draw data. A list whose buffers
// cannot be decoded is dropped; LayoutErr reports the last such failure.
func (c *Context) Render() *gui.DrawData {
	imgui.Render()
	dd := imgui.CurrentDrawData()
	out := &gui.DrawData{
		DisplayPos:       vec2(dd.DisplayPos()),
		DisplaySize:      vec2(dd.DisplaySize()),
		FramebufferScale: vec2(dd.FramebufferScale()),
	}

	var l vertexLayout
	l.stride, l.pos, l.uv, l.col = imgui.VertexBufferLayout()
	idxSize := imgui.IndexBufferLayout()

	c.layoutErr = nil
	for _, list := range dd.CommandLists() {
		converted, err := convertList(list, l, idxSize)
		if err != nil {
			c.layoutErr = err
			continue
		}
		out.Lists = append(out.Lists, converted)
	}
	return out
}

// LayoutErr is the decoding failure of the last Render, if any.
func (c *Context) LayoutErr() error { return c.layoutErr }

func convertList(list *imgui.DrawList, l vertexLayout, idxSize int) (*gui.DrawList, error) {
	vtxPtr, vtxBytes := list.GetVertexBuffer()
	idxPtr, idxBytes := list.GetIndexBuffer()

	out := &gui.DrawList{}
	var err error
	if out.VtxBuffer, err = decodeVertices(rawBytes(vtxPtr, vtxBytes), l); err != nil {
		return nil, err
	}
	if out.IdxBuffer, err = decodeIndices(rawBytes(idxPtr, idxBytes), idxSize); err != nil {
		return nil, err
	}

	for _, cmd := range list.Commands() {
		if cmd.HasUserCallback() {
			out.Commands = append(out.Commands, gui.DrawCmd{
				Kind:     gui.DrawCmdRawCallback,
				Callback: func(*gui.DrawList, *gui.DrawCmd) { cmd.CallUserCallback(list) },
			})
			continue
		}
		clip := cmd.ClipRect()
		out.Commands = append(out.Commands, gui.DrawCmd{
			Kind:  gui.DrawCmdElements,
			Count: int(cmd.ElemCount()),
			Params: gui.DrawCmdParams{
				ClipRect:  gui.Vec4{X: clip.X, Y: clip.Y, Z: clip.Z, W: clip.W},
				TextureID: guiTextureID(cmd.TextureId()),
				VtxOffset: int(cmd.VtxOffset()),
				IdxOffset: int(cmd.IdxOffset()),
			},
		})
	}
	return out, nil
}

func rawBytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// fontAtlas exposes ImGui's font atlas as a gui.FontAtlas.
type fontAtlas struct {
	atlas *imgui.FontAtlas
}

func (f *fontAtlas) BuildRGBA32() ([]byte, int, int, error) {
	pixels, w, h, bpp := f.atlas.GetTextureDataAsRGBA32()
	if pixels == nil || w <= 0 || h <= 0 || bpp != 4 {
		return nil, 0, 0, ErrEmptyAtlas
	}
	n := int(w) * int(h) * 4
	out := make([]byte, n)
	copy(out, rawBytes(pixels, n))
	return out, int(w), int(h), nil
}

func (f *fontAtlas) SetTexID(id gui.TextureID) { f.atlas.SetTexID(imguiTextureID(id)) }
func (f *fontAtlas) TexID() gui.TextureID      { return guiTextureID(f.atlas.TexID()) }

// Image shows a backend texture as an ImGui image widget.
func Image(img gui.Image) {
	imgui.Image(imguiTextureID(img.TextureID), imVec2(img.Size))
}

func imguiTextureID(id gui.TextureID) imgui.TextureID { return imgui.TextureID(id) }
func guiTextureID(id imgui.TextureID) gui.TextureID   { return gui.TextureID(id) }

func vec2(v imgui.Vec2) gui.Vec2   { return gui.Vec2{X: v.X, Y: v.Y} }
func imVec2(v gui.Vec2) imgui.Vec2 { return imgui.Vec2{X: v.X, Y: v.Y} }
