package gui

// EventSink receives translated input, one call per event.
type EventSink interface {
	AddFocusEvent(focused bool)
	AddKeyEvent(key Key, down bool)
	AddKeyAnalogEvent(key Key, down bool, value float32)
	AddInputCharacter(c rune)
	AddMousePosEvent(pos Vec2)
	AddMouseButtonEvent(button MouseButton, down bool)
	AddMouseWheelEvent(wheel Vec2)
}

// PlatformState is what a platform backend reads back from the GUI each frame.
type PlatformState struct {
	PlatformName            string
	BackendFlags            BackendFlags
	ConfigFlags             ConfigFlags
	DisplayFramebufferScale Vec2
	MouseDrawCursor         bool
	WantCaptureKeyboard     bool
	WantSetMousePos         bool
}

func (s PlatformState) HasBackendFlags(flags BackendFlags) bool { return s.BackendFlags&flags == flags }
func (s PlatformState) HasConfigFlags(flags ConfigFlags) bool   { return s.ConfigFlags&flags == flags }

// Platform is the side of a GUI library that a platform/renderer backend
// drives. *Context implements it; bindings to other GUI libraries adapt to it.
type Platform interface {
	EventSink

	SetPlatformName(name string)
	AddBackendFlags(flags BackendFlags)
	SetClipboardBackend(backend ClipboardBackend)
	SetDisplay(size, framebufferScale Vec2, deltaTime float32)
	SetMousePos(pos Vec2)
	State() PlatformState

	// MouseCursor is the shape requested for this frame.
	MouseCursor() MouseCursor
	Fonts() FontAtlas
	// Render finalizes the frame and hands over its draw data.
	Render() *DrawData
}

var _ Platform = (*Context)(nil)

func (c *Context) AddFocusEvent(focused bool)                   { c.io.AddFocusEvent(focused) }
func (c *Context) AddKeyEvent(key Key, down bool)               { c.io.AddKeyEvent(key, down) }
func (c *Context) AddInputCharacter(r rune)                     { c.io.AddInputCharacter(r) }
func (c *Context) AddMousePosEvent(pos Vec2)                    { c.io.AddMousePosEvent(pos) }
func (c *Context) AddMouseWheelEvent(wheel Vec2)                { c.io.AddMouseWheelEvent(wheel) }
func (c *Context) AddBackendFlags(flags BackendFlags)           { c.io.BackendFlags |= flags }
func (c *Context) SetMousePos(pos Vec2)                         { c.io.MousePos = pos }
func (c *Context) AddMouseButtonEvent(b MouseButton, down bool) { c.io.AddMouseButtonEvent(b, down) }

func (c *Context) AddKeyAnalogEvent(key Key, down bool, value float32) {
	c.io.AddKeyAnalogEvent(key, down, value)
}

func (c *Context) SetDisplay(size, framebufferScale Vec2, deltaTime float32) {
	c.io.DisplaySize = size
	c.io.DisplayFramebufferScale = framebufferScale
	c.io.DeltaTime = deltaTime
}

func (c *Context) State() PlatformState {
	return PlatformState{
		PlatformName:            c.io.BackendPlatformName,
		BackendFlags:            c.io.BackendFlags,
		ConfigFlags:             c.io.ConfigFlags,
		DisplayFramebufferScale: c.io.DisplayFramebufferScale,
		MouseDrawCursor:         c.io.MouseDrawCursor,
		WantCaptureKeyboard:     c.io.WantCaptureKeyboard,
		WantSetMousePos:         c.io.WantSetMousePos,
	}
}
