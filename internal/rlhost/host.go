//go:build raylib

// Package rlhost implements host.Host on top of raylib through raylib-go.
// All calls must come from the thread that opened the window.
package rlhost

import (
	"context"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rook-computer/guibridge/internal/host"
)

type Options struct {
	Width, Height int32
	Title         string
	FPS           int32
	HighDPI       bool
}

// Host is a raylib window. The zero value is not usable; call Open.
type Host struct {
	opts  Options
	clear color.RGBA
}

// Open creates the raylib window.
func Open(opts Options, clear color.RGBA) *Host {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	rl.SetExitKey(rl.KeyNull)
	if opts.FPS > 0 {
		rl.SetTargetFPS(opts.FPS)
	}
	return &Host{opts: opts, clear: clear}
}

func (h *Host) ShouldClose() bool  { return rl.WindowShouldClose() }
func (h *Host) ScreenWidth() int   { return int(rl.GetScreenWidth()) }
func (h *Host) ScreenHeight() int  { return int(rl.GetScreenHeight()) }
func (h *Host) FrameTime() float32 { return rl.GetFrameTime() }

// Start is a no-op; the window is created by Open.
func (h *Host) Start(ctx context.Context) error { return nil }

// Stop closes the window.
func (h *Host) Stop() error {
	rl.CloseWindow()
	return nil
}

func (h *Host) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(h.clear)
}

func (h *Host) EndFrame() error {
	rl.EndDrawing()
	return nil
}

func (h *Host) WindowScaleDPI() host.Vec2 {
	v := rl.GetWindowScaleDPI()
	return host.Vec2{X: v.X, Y: v.Y}
}

func (h *Host) IsWindowFocused() bool { return rl.IsWindowFocused() }
func (h *Host) IsWindowHighDPI() bool { return rl.IsWindowState(rl.FlagWindowHighdpi) }

func (h *Host) IsKeyDown(k host.KeyboardKey) bool     { return rl.IsKeyDown(int32(k)) }
func (h *Host) IsKeyPressed(k host.KeyboardKey) bool  { return rl.IsKeyPressed(int32(k)) }
func (h *Host) IsKeyReleased(k host.KeyboardKey) bool { return rl.IsKeyReleased(int32(k)) }
func (h *Host) CharPressed() rune                     { return rune(rl.GetCharPressed()) }

func (h *Host) MouseX() int { return int(rl.GetMouseX()) }
func (h *Host) MouseY() int { return int(rl.GetMouseY()) }

func (h *Host) IsMouseButtonPressed(b host.MouseButton) bool {
	return rl.IsMouseButtonPressed(rl.MouseButton(b))
}

func (h *Host) IsMouseButtonReleased(b host.MouseButton) bool {
	return rl.IsMouseButtonReleased(rl.MouseButton(b))
}

func (h *Host) MouseWheelMoveV() host.Vec2 {
	v := rl.GetMouseWheelMoveV()
	return host.Vec2{X: v.X, Y: v.Y}
}

func (h *Host) IsGamepadAvailable(g int) bool { return rl.IsGamepadAvailable(int32(g)) }

func (h *Host) IsGamepadButtonPressed(g int, b host.GamepadButton) bool {
	return rl.IsGamepadButtonPressed(int32(g), int32(b))
}

func (h *Host) IsGamepadButtonReleased(g int, b host.GamepadButton) bool {
	return rl.IsGamepadButtonReleased(int32(g), int32(b))
}

func (h *Host) GamepadAxisMovement(g int, a host.GamepadAxis) float32 {
	return rl.GetGamepadAxisMovement(int32(g), int32(a))
}

func (h *Host) ShowCursor()                       { rl.ShowCursor() }
func (h *Host) HideCursor()                       { rl.HideCursor() }
func (h *Host) SetMouseCursor(c host.MouseCursor) { rl.SetMouseCursor(int32(c)) }

// ClipboardText reports false when the system clipboard is empty.
func (h *Host) ClipboardText() (string, bool) {
	text := rl.GetClipboardText()
	return text, text != ""
}

func (h *Host) SetClipboardText(text string) { rl.SetClipboardText(text) }

// GenImageColor allocates the pixels in Go memory; LoadTextureFromImage
// hands them to raylib only for the upload.
func (h *Host) GenImageColor(w, ht int, c color.RGBA) *host.Image {
	data := make([]byte, w*ht*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = c.R, c.G, c.B, c.A
	}
	return &host.Image{Data: data, Width: w, Height: ht}
}

func (h *Host) LoadTextureFromImage(img *host.Image) (host.Texture2D, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Data) < img.Width*img.Height*4 {
		return host.Texture2D{}, fmt.Errorf("%w: bad image", host.ErrTextureCreate)
	}
	rlImg := rl.NewImage(img.Data, int32(img.Width), int32(img.Height), 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(rlImg)
	if tex.ID == 0 {
		return host.Texture2D{}, fmt.Errorf("%w: raylib returned texture 0", host.ErrTextureCreate)
	}
	return host.Texture2D{ID: tex.ID, Width: int(tex.Width), Height: int(tex.Height)}, nil
}

func (h *Host) UnloadImage(img *host.Image) {
	if img != nil {
		img.Data = nil
	}
}

func (h *Host) UnloadTexture(t host.Texture2D) {
	rl.UnloadTexture(rl.Texture2D{
		ID:      t.ID,
		Width:   int32(t.Width),
		Height:  int32(t.Height),
		Mipmaps: 1,
		Format:  rl.UncompressedR8g8b8a8,
	})
}

func (h *Host) DrawRenderBatchActive()     { rl.DrawRenderBatchActive() }
func (h *Host) EnableBackfaceCulling()     { rl.EnableBackfaceCulling() }
func (h *Host) DisableBackfaceCulling()    { rl.DisableBackfaceCulling() }
func (h *Host) EnableScissorTest()         { rl.EnableScissorTest() }
func (h *Host) DisableScissorTest()        { rl.DisableScissorTest() }
func (h *Host) Begin(m host.PrimitiveMode) { rl.Begin(int32(m)) }
func (h *Host) End()                       { rl.End() }
func (h *Host) SetTexture(id uint32)       { rl.SetTexture(id) }
func (h *Host) Color4ub(r, g, b, a uint8)  { rl.Color4ub(r, g, b, a) }
func (h *Host) TexCoord2f(u, v float32)    { rl.TexCoord2f(u, v) }
func (h *Host) Vertex2f(x, y float32)      { rl.Vertex2f(x, y) }

func (h *Host) Scissor(x, y, w, ht int) {
	rl.Scissor(int32(x), int32(y), int32(w), int32(ht))
}

var _ host.Host = (*Host)(nil)
