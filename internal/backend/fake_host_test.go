package backend

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
)

// fakeHost is a scripted host.Host that records every mutating call.
type fakeHost struct {
	width, height int
	dpi           host.Vec2
	frameTime     float32
	focused       bool
	highDPI       bool

	down     map[host.KeyboardKey]bool
	pressed  map[host.KeyboardKey]bool
	released map[host.KeyboardKey]bool
	chars    []rune

	mouseX, mouseY int
	mousePressed   map[host.MouseButton]bool
	mouseReleased  map[host.MouseButton]bool
	wheel          host.Vec2

	gamepad     bool
	padPressed  map[host.GamepadButton]bool
	padReleased map[host.GamepadButton]bool
	axes        map[host.GamepadAxis]float32

	clipboard    string
	hasClipboard bool

	textureFail bool
	nextTexID   uint32
	images      int
	uploaded    []byte
	unloaded    []uint32

	calls []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		width: 640, height: 480,
		dpi:           host.Vec2{X: 1, Y: 1},
		frameTime:     1.0 / 60,
		focused:       true,
		down:          map[host.KeyboardKey]bool{},
		pressed:       map[host.KeyboardKey]bool{},
		released:      map[host.KeyboardKey]bool{},
		mousePressed:  map[host.MouseButton]bool{},
		mouseReleased: map[host.MouseButton]bool{},
		padPressed:    map[host.GamepadButton]bool{},
		padReleased:   map[host.GamepadButton]bool{},
		axes:          map[host.GamepadAxis]float32{},
		nextTexID:     10,
	}
}

// nextFrame clears per-frame edges the way a host does between frames.
func (f *fakeHost) nextFrame() {
	f.pressed = map[host.KeyboardKey]bool{}
	f.released = map[host.KeyboardKey]bool{}
	f.mousePressed = map[host.MouseButton]bool{}
	f.mouseReleased = map[host.MouseButton]bool{}
	f.padPressed = map[host.GamepadButton]bool{}
	f.padReleased = map[host.GamepadButton]bool{}
	f.wheel = host.Vec2{}
	f.calls = nil
}

func (f *fakeHost) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeHost) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeHost) ScreenWidth() int                      { return f.width }
func (f *fakeHost) ScreenHeight() int                     { return f.height }
func (f *fakeHost) WindowScaleDPI() host.Vec2             { return f.dpi }
func (f *fakeHost) FrameTime() float32                    { return f.frameTime }
func (f *fakeHost) IsWindowFocused() bool                 { return f.focused }
func (f *fakeHost) IsWindowHighDPI() bool                 { return f.highDPI }
func (f *fakeHost) IsKeyDown(k host.KeyboardKey) bool     { return f.down[k] }
func (f *fakeHost) IsKeyPressed(k host.KeyboardKey) bool  { return f.pressed[k] }
func (f *fakeHost) IsKeyReleased(k host.KeyboardKey) bool { return f.released[k] }

func (f *fakeHost) CharPressed() rune {
	if len(f.chars) == 0 {
		return 0
	}
	c := f.chars[0]
	f.chars = f.chars[1:]
	return c
}

func (f *fakeHost) MouseX() int                                   { return f.mouseX }
func (f *fakeHost) MouseY() int                                   { return f.mouseY }
func (f *fakeHost) IsMouseButtonPressed(b host.MouseButton) bool  { return f.mousePressed[b] }
func (f *fakeHost) IsMouseButtonReleased(b host.MouseButton) bool { return f.mouseReleased[b] }
func (f *fakeHost) MouseWheelMoveV() host.Vec2                    { return f.wheel }

func (f *fakeHost) IsGamepadAvailable(g int) bool { return g == 0 && f.gamepad }
func (f *fakeHost) IsGamepadButtonPressed(g int, b host.GamepadButton) bool {
	return g == 0 && f.padPressed[b]
}
func (f *fakeHost) IsGamepadButtonReleased(g int, b host.GamepadButton) bool {
	return g == 0 && f.padReleased[b]
}
func (f *fakeHost) GamepadAxisMovement(g int, a host.GamepadAxis) float32 { return f.axes[a] }

func (f *fakeHost) ShowCursor()                       { f.record("ShowCursor") }
func (f *fakeHost) HideCursor()                       { f.record("HideCursor") }
func (f *fakeHost) SetMouseCursor(c host.MouseCursor) { f.record("SetMouseCursor %s", c) }

func (f *fakeHost) ClipboardText() (string, bool) { return f.clipboard, f.hasClipboard }
func (f *fakeHost) SetClipboardText(text string) {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	f.clipboard, f.hasClipboard = text, true
}

func (f *fakeHost) GenImageColor(w, h int, c color.RGBA) *host.Image {
	f.images++
	data := make([]byte, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = c.R, c.G, c.B, c.A
	}
	return &host.Image{Data: data, Width: w, Height: h}
}

func (f *fakeHost) LoadTextureFromImage(img *host.Image) (host.Texture2D, error) {
	if f.textureFail {
		return host.Texture2D{}, host.ErrTextureCreate
	}
	f.nextTexID++
	f.uploaded = append([]byte(nil), img.Data...)
	return host.Texture2D{ID: f.nextTexID, Width: img.Width, Height: img.Height}, nil
}

func (f *fakeHost) UnloadImage(*host.Image)        { f.images-- }
func (f *fakeHost) UnloadTexture(t host.Texture2D) { f.unloaded = append(f.unloaded, t.ID) }

func (f *fakeHost) DrawRenderBatchActive()     { f.record("DrawRenderBatchActive") }
func (f *fakeHost) EnableBackfaceCulling()     { f.record("EnableBackfaceCulling") }
func (f *fakeHost) DisableBackfaceCulling()    { f.record("DisableBackfaceCulling") }
func (f *fakeHost) EnableScissorTest()         { f.record("EnableScissorTest") }
func (f *fakeHost) DisableScissorTest()        { f.record("DisableScissorTest") }
func (f *fakeHost) Scissor(x, y, w, h int)     { f.record("Scissor %d %d %d %d", x, y, w, h) }
func (f *fakeHost) Begin(m host.PrimitiveMode) { f.record("Begin %d", m) }
func (f *fakeHost) End()                       { f.record("End") }
func (f *fakeHost) SetTexture(id uint32)       { f.record("SetTexture %d", id) }
func (f *fakeHost) Color4ub(r, g, b, a uint8)  { f.record("Color4ub %d %d %d %d", r, g, b, a) }
func (f *fakeHost) TexCoord2f(u, v float32)    { f.record("TexCoord2f %g %g", u, v) }
func (f *fakeHost) Vertex2f(x, y float32)      { f.record("Vertex2f %g %g", x, y) }

// fakeAtlas is a fixed 2x2 atlas.
type fakeAtlas struct {
	id   gui.TextureID
	fail error
}

func (a *fakeAtlas) BuildRGBA32() ([]byte, int, int, error) {
	if a.fail != nil {
		return nil, 0, 0, a.fail
	}
	return []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}, 2, 2, nil
}

func (a *fakeAtlas) SetTexID(id gui.TextureID) { a.id = id }
func (a *fakeAtlas) TexID() gui.TextureID      { return a.id }

func newTestRenderer(f *fakeHost) (*Renderer, *gui.Context) {
	ctx := gui.NewContext(&fakeAtlas{})
	r, err := New(ctx, f)
	if err != nil {
		panic(err)
	}
	f.calls = nil
	return r, ctx
}
