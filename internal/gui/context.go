package gui

// TextureID is an opaque handle the renderer backend resolves to a host texture.
type TextureID uint64

// FontAtlas is the glyph texture owned by the GUI.
type FontAtlas interface {
	// BuildRGBA32 rasterizes the atlas into tightly packed RGBA8 pixels.
	BuildRGBA32() (pixels []byte, width, height int, err error)
	SetTexID(id TextureID)
	TexID() TextureID
}

// ClipboardBackend is registered by the platform backend so the GUI can
// copy and paste through the host.
type ClipboardBackend interface {
	Get() (string, bool)
	Set(text string)
}

// Image is the payload of an image widget: a texture and its display size.
type Image struct {
	TextureID TextureID
	Size      Vec2
}

// Context holds one GUI instance: its IO, fonts, clipboard hook and the
// draw data of the current frame.
type Context struct {
	io          IO
	fonts       FontAtlas
	clipboard   ClipboardBackend
	mouseCursor MouseCursor
	lists       []*DrawList
	frame       int
}

func NewContext(fonts FontAtlas) *Context {
	return &Context{
		io: IO{
			DisplayFramebufferScale: Vec2{1, 1},
			DeltaTime:               1.0 / 60.0,
		},
		fonts:       fonts,
		mouseCursor: MouseCursorArrow,
	}
}

func (c *Context) IO() *IO          { return &c.io }
func (c *Context) Fonts() FontAtlas { return c.fonts }

// MouseCursor returns the cursor shape the GUI wants for this frame.
func (c *Context) MouseCursor() MouseCursor       { return c.mouseCursor }
func (c *Context) SetMouseCursor(cur MouseCursor) { c.mouseCursor = cur }

func (c *Context) SetPlatformName(name string) { c.io.BackendPlatformName = name }

func (c *Context) SetClipboardBackend(backend ClipboardBackend) { c.clipboard = backend }

// ClipboardText reads through the registered backend. It reports false when
// no backend is registered or the host has no text.
func (c *Context) ClipboardText() (string, bool) {
	if c.clipboard == nil {
		return "", false
	}
	return c.clipboard.Get()
}

func (c *Context) SetClipboardText(text string) {
	if c.clipboard == nil {
		return
	}
	c.clipboard.Set(text)
}

// NewFrame starts a frame: the input queue is consumed by the GUI and any
// draw lists left from the previous frame are dropped.
func (c *Context) NewFrame() []Event {
	c.frame++
	c.lists = c.lists[:0]
	return c.io.DrainEvents()
}

func (c *Context) FrameCount() int { return c.frame }

// AddDrawList queues a list for this frame's draw data.
func (c *Context) AddDrawList(list *DrawList) {
	if list == nil {
		return
	}
	c.lists = append(c.lists, list)
}

// Render finalizes the frame and returns its draw data. The queued lists are
// handed over and not returned again.
func (c *Context) Render() *DrawData {
	data := &DrawData{
		DisplaySize:      c.io.DisplaySize,
		FramebufferScale: c.io.DisplayFramebufferScale,
		Lists:            c.lists,
	}
	c.lists = nil
	return data
}
