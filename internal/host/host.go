// Package host describes the game-framework surface the GUI backend drives:
// window metrics, polled input, cursor and clipboard, textures and the
// immediate-mode primitive API. Constants follow raylib numbering.
package host

import (
	"errors"
	"image/color"
)

type Vec2 struct{ X, Y float32 }

type Window interface {
	ScreenWidth() int
	ScreenHeight() int
	WindowScaleDPI() Vec2
	// FrameTime is the duration of the last frame in seconds.
	FrameTime() float32
	IsWindowFocused() bool
	IsWindowHighDPI() bool
}

// Keyboard reports key state for the current frame. Pressed and released are
// edges observed since the previous frame.
type Keyboard interface {
	IsKeyDown(key KeyboardKey) bool
	IsKeyPressed(key KeyboardKey) bool
	IsKeyReleased(key KeyboardKey) bool
	// CharPressed pops the next queued character, or 0 when the queue is empty.
	CharPressed() rune
}

type Mouse interface {
	MouseX() int
	MouseY() int
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonReleased(button MouseButton) bool
	MouseWheelMoveV() Vec2
}

type Gamepad interface {
	IsGamepadAvailable(gamepad int) bool
	IsGamepadButtonPressed(gamepad int, button GamepadButton) bool
	IsGamepadButtonReleased(gamepad int, button GamepadButton) bool
	GamepadAxisMovement(gamepad int, axis GamepadAxis) float32
}

type Cursor interface {
	ShowCursor()
	HideCursor()
	SetMouseCursor(cursor MouseCursor)
}

// Clipboard stores text the way a C host does: only the part before the
// first NUL byte survives.
type Clipboard interface {
	ClipboardText() (string, bool)
	SetClipboardText(text string)
}

// ErrTextureCreate is returned when the host could not create a texture.
var ErrTextureCreate = errors.New("host: texture creation failed")

// Image is a CPU-side RGBA8 pixel buffer.
type Image struct {
	Data   []byte
	Width  int
	Height int
}

type Texture2D struct {
	ID     uint32
	Width  int
	Height int
}

// RenderTexture2D is an offscreen render target; Texture holds its color buffer.
type RenderTexture2D struct {
	ID      uint32
	Texture Texture2D
}

type Textures interface {
	// GenImageColor allocates a width*height*4 image filled with c.
	GenImageColor(width, height int, c color.RGBA) *Image
	LoadTextureFromImage(img *Image) (Texture2D, error)
	UnloadImage(img *Image)
	UnloadTexture(tex Texture2D)
}

type PrimitiveMode int

const (
	Lines     PrimitiveMode = 0x0001
	Triangles PrimitiveMode = 0x0004
	Quads     PrimitiveMode = 0x0007
)

// Immediate is the low-level batched primitive API (rlgl).
type Immediate interface {
	DrawRenderBatchActive()
	EnableBackfaceCulling()
	DisableBackfaceCulling()
	EnableScissorTest()
	DisableScissorTest()
	// Scissor takes framebuffer pixels with a bottom-left origin.
	Scissor(x, y, width, height int)
	Begin(mode PrimitiveMode)
	End()
	SetTexture(id uint32)
	Color4ub(r, g, b, a uint8)
	TexCoord2f(u, v float32)
	Vertex2f(x, y float32)
}

// Host is everything the GUI backend needs from the framework.
type Host interface {
	Window
	Keyboard
	Mouse
	Gamepad
	Cursor
	Clipboard
	Textures
	Immediate
}
