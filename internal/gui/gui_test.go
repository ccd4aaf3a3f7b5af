package gui

import (
	"reflect"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{Key7, "7"},
		{KeyF11, "F11"},
		{KeyKeypad4, "Keypad4"},
		{KeyGamepadL2, "GamepadL2"},
		{KeyModSuper, "ModSuper"},
		{Key(9999), "Key(9999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestEventQueue(t *testing.T) {
	var io IO
	io.AddKeyEvent(KeyA, true)
	io.AddInputCharacter(0)
	io.AddInputCharacter('x')
	io.AddMouseWheelEvent(Vec2{0, 1})

	if n := len(io.Events()); n != 3 {
		t.Fatalf("queued %d events, want 3", n)
	}
	got := io.DrainEvents()
	want := []Event{
		{Kind: EventKey, Key: KeyA, Down: true, Analog: 1},
		{Kind: EventText, Char: 'x'},
		{Kind: EventMouseWheel, Pos: Vec2{0, 1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if len(io.Events()) != 0 {
		t.Error("queue not cleared after drain")
	}
}

func TestContextRenderHandsOverLists(t *testing.T) {
	ctx := NewContext(nil)
	ctx.IO().DisplaySize = Vec2{320, 200}
	ctx.IO().DisplayFramebufferScale = Vec2{2, 2}
	ctx.AddDrawList(&DrawList{})
	ctx.AddDrawList(nil)

	data := ctx.Render()
	if len(data.Lists) != 1 {
		t.Fatalf("lists = %d, want 1", len(data.Lists))
	}
	if data.DisplaySize != (Vec2{320, 200}) || data.FramebufferScale != (Vec2{2, 2}) {
		t.Errorf("draw data metrics = %v %v", data.DisplaySize, data.FramebufferScale)
	}
	if again := ctx.Render(); len(again.Lists) != 0 {
		t.Errorf("second render returned %d lists", len(again.Lists))
	}
}

func TestBuilderMergesCommands(t *testing.T) {
	b := NewDrawListBuilder(Vec4{0, 0, 100, 100}, 1, Vec2{0, 0})
	white := [4]uint8{255, 255, 255, 255}
	b.AddRectFilled(Vec2{0, 0}, Vec2{10, 10}, white)
	b.AddRectFilled(Vec2{10, 10}, Vec2{20, 20}, white)
	b.AddImage(2, Vec2{0, 0}, Vec2{5, 5}, Vec2{0, 0}, Vec2{1, 1}, white)
	b.PushClipRect(Vec4{50, -10, 200, 50})
	b.AddImage(2, Vec2{0, 0}, Vec2{5, 5}, Vec2{0, 0}, Vec2{1, 1}, white)
	b.PopClipRect()
	b.AddResetRenderState()

	l := b.List()
	if len(l.VtxBuffer) != 16 || len(l.IdxBuffer) != 24 {
		t.Fatalf("buffers = %d vtx, %d idx", len(l.VtxBuffer), len(l.IdxBuffer))
	}
	if len(l.Commands) != 4 {
		t.Fatalf("commands = %d, want 4", len(l.Commands))
	}
	first := l.Commands[0]
	if first.Count != 12 || first.Params.TextureID != 1 || first.Params.IdxOffset != 0 {
		t.Errorf("first command = %+v", first)
	}
	img := l.Commands[1]
	if img.Params.TextureID != 2 || img.Params.VtxOffset != 8 || img.Params.IdxOffset != 12 || img.Count != 6 {
		t.Errorf("image command = %+v", img)
	}
	// Indices restart at zero relative to each command's vertex offset.
	if got := l.IdxBuffer[12:18]; !reflect.DeepEqual(got, []DrawIdx{0, 1, 2, 0, 2, 3}) {
		t.Errorf("image indices = %v", got)
	}
	if clip := l.Commands[2].Params.ClipRect; clip != (Vec4{50, 0, 100, 50}) {
		t.Errorf("pushed clip = %v", clip)
	}
	if l.Commands[3].Kind != DrawCmdResetRenderState {
		t.Errorf("last command = %v", l.Commands[3].Kind)
	}
}

type fixedGlyphs struct{}

func (fixedGlyphs) Glyph(r rune) (Glyph, bool) {
	if r == ' ' {
		return Glyph{Advance: 4}, true
	}
	if r < 'a' || r > 'z' {
		return Glyph{}, false
	}
	return Glyph{Advance: 8, X1: 7, Y1: 12, U1: 0.1, V1: 0.1}, true
}
func (fixedGlyphs) LineHeight() float32 { return 14 }
func (fixedGlyphs) WhitePixelUV() Vec2  { return Vec2{} }

func TestBuilderAddText(t *testing.T) {
	b := NewDrawListBuilder(Vec4{0, 0, 100, 100}, 1, Vec2{})
	end := b.AddText(fixedGlyphs{}, Vec2{2, 3}, [4]uint8{0, 0, 0, 255}, "ab c\nd")
	if end != (Vec2{10, 17}) {
		t.Errorf("pen = %v", end)
	}
	l := b.List()
	if len(l.Commands) != 1 || l.Commands[0].Count != 4*6 {
		t.Errorf("commands = %+v", l.Commands)
	}
	if l.VtxBuffer[0].Pos != (Vec2{2, 3}) {
		t.Errorf("first glyph at %v", l.VtxBuffer[0].Pos)
	}
}
