package backend

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rook-computer/guibridge/internal/fontatlas"
	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
)

func eventsOfKind(events []gui.Event, kind gui.EventKind) []gui.Event {
	var out []gui.Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func keyEvents(events []gui.Event, key gui.Key) []gui.Event {
	var out []gui.Event
	for _, e := range events {
		if e.Kind == gui.EventKey && e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

func TestNewConfiguresContext(t *testing.T) {
	f := newFakeHost()
	atlas := &fakeAtlas{}
	ctx := gui.NewContext(atlas)
	r, err := New(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	io := ctx.IO()
	want := gui.BackendFlagsHasGamepad | gui.BackendFlagsHasSetMousePos | gui.BackendFlagsHasMouseCursors
	if !io.HasBackendFlags(want) {
		t.Errorf("backend flags = %b, want %b set", io.BackendFlags, want)
	}
	if io.BackendPlatformName != PlatformName {
		t.Errorf("platform name = %q", io.BackendPlatformName)
	}
	if atlas.TexID() != gui.TextureID(r.FontTexture().ID) || r.FontTexture().ID == 0 {
		t.Errorf("atlas tex id %d, font texture %d", atlas.TexID(), r.FontTexture().ID)
	}
	if f.images != 0 {
		t.Errorf("%d images leaked after font upload", f.images)
	}
	if !r.LastFrame().WindowFocused {
		t.Error("initial frame state should copy host focus")
	}
}

func TestDisplaySync(t *testing.T) {
	f := newFakeHost()
	f.width, f.height = 800, 600
	f.dpi = host.Vec2{X: 1.5, Y: 2}
	f.frameTime = 0.25
	r, ctx := newTestRenderer(f)
	r.Update()

	io := ctx.IO()
	if io.DisplaySize != (gui.Vec2{X: 800, Y: 600}) {
		t.Errorf("display size = %v", io.DisplaySize)
	}
	if io.DisplayFramebufferScale != (gui.Vec2{X: 1.5, Y: 2}) {
		t.Errorf("framebuffer scale = %v", io.DisplayFramebufferScale)
	}
	if io.DeltaTime != 0.25 {
		t.Errorf("delta time = %v", io.DeltaTime)
	}
}

func TestModifierEventsOnlyOnChange(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)

	f.down[host.KeyLeftControl] = true
	f.down[host.KeyRightShift] = true
	r.Update()
	events := ctx.IO().DrainEvents()
	if got := keyEvents(events, gui.KeyModCtrl); len(got) != 1 || !got[0].Down {
		t.Fatalf("ctrl events = %v", got)
	}
	if got := keyEvents(events, gui.KeyModShift); len(got) != 1 || !got[0].Down {
		t.Fatalf("shift events = %v", got)
	}

	for i := 0; i < 3; i++ {
		f.nextFrame()
		r.Update()
		events = ctx.IO().DrainEvents()
		for _, k := range []gui.Key{gui.KeyModCtrl, gui.KeyModShift, gui.KeyModAlt, gui.KeyModSuper} {
			if got := keyEvents(events, k); len(got) != 0 {
				t.Errorf("frame %d: unchanged modifier %s emitted %v", i, k, got)
			}
		}
	}

	f.nextFrame()
	delete(f.down, host.KeyLeftControl)
	f.down[host.KeyRightControl] = true
	r.Update()
	if got := keyEvents(ctx.IO().DrainEvents(), gui.KeyModCtrl); len(got) != 0 {
		t.Errorf("switching ctrl side emitted %v", got)
	}

	f.nextFrame()
	f.down = map[host.KeyboardKey]bool{}
	r.Update()
	events = ctx.IO().DrainEvents()
	if got := keyEvents(events, gui.KeyModCtrl); len(got) != 1 || got[0].Down {
		t.Errorf("ctrl release events = %v", got)
	}
	if last := r.LastFrame(); last.Ctrl || last.Shift {
		t.Errorf("frame state not updated: %+v", last)
	}
}

func TestFocusEventOnChange(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)

	r.Update()
	if got := eventsOfKind(ctx.IO().DrainEvents(), gui.EventFocus); len(got) != 0 {
		t.Fatalf("focus unchanged but got %v", got)
	}
	f.focused = false
	r.Update()
	got := eventsOfKind(ctx.IO().DrainEvents(), gui.EventFocus)
	if len(got) != 1 || got[0].Down {
		t.Fatalf("focus lost events = %v", got)
	}
}

func TestKeyPressAndReleaseNeverBoth(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)

	f.pressed[host.KeyA] = true
	f.released[host.KeyA] = true
	f.pressed[host.KeyF5] = true
	f.released[host.KeyEnter] = true
	r.Update()
	events := ctx.IO().DrainEvents()

	for _, m := range KeyboardMap() {
		got := keyEvents(events, m.GUI)
		if len(got) > 1 {
			t.Errorf("%s: %d events in one frame", m.GUI, len(got))
		}
	}
	if got := keyEvents(events, gui.KeyA); len(got) != 1 || got[0].Down {
		t.Errorf("A events = %v, want a single release", got)
	}
	if got := keyEvents(events, gui.KeyF5); len(got) != 1 || !got[0].Down {
		t.Errorf("F5 events = %v", got)
	}
	if got := keyEvents(events, gui.KeyEnter); len(got) != 1 || got[0].Down {
		t.Errorf("Enter events = %v", got)
	}
}

func TestTextInputOnlyWhenCapturing(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)

	f.chars = []rune("hé!")
	r.Update()
	if got := eventsOfKind(ctx.IO().DrainEvents(), gui.EventText); len(got) != 0 {
		t.Fatalf("text forwarded without keyboard capture: %v", got)
	}

	ctx.IO().WantCaptureKeyboard = true
	r.Update()
	got := eventsOfKind(ctx.IO().DrainEvents(), gui.EventText)
	var text []rune
	for _, e := range got {
		text = append(text, e.Char)
	}
	if string(text) != "hé!" {
		t.Errorf("text = %q", string(text))
	}
	if len(f.chars) != 0 {
		t.Errorf("char queue not drained: %q", string(f.chars))
	}
}

func TestMouseEvents(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)

	f.mouseX, f.mouseY = 12, 34
	f.mousePressed[host.MouseButtonLeft] = true
	f.mouseReleased[host.MouseButtonBack] = true
	r.Update()
	events := ctx.IO().DrainEvents()

	pos := eventsOfKind(events, gui.EventMousePos)
	if len(pos) != 1 || pos[0].Pos != (gui.Vec2{X: 12, Y: 34}) {
		t.Errorf("mouse pos = %v", pos)
	}
	buttons := eventsOfKind(events, gui.EventMouseButton)
	want := []gui.Event{
		{Kind: gui.EventMouseButton, Button: gui.MouseButtonLeft, Down: true},
		{Kind: gui.EventMouseButton, Button: gui.MouseButtonExtra2, Down: false},
	}
	if !reflect.DeepEqual(buttons, want) {
		t.Errorf("buttons = %v, want %v", buttons, want)
	}
	wheel := eventsOfKind(events, gui.EventMouseWheel)
	if len(wheel) != 1 || wheel[0].Pos != (gui.Vec2{}) {
		t.Errorf("zero wheel should still be sent once, got %v", wheel)
	}

	f.nextFrame()
	f.wheel = host.Vec2{X: -1, Y: 2}
	ctx.IO().WantSetMousePos = true
	r.Update()
	events = ctx.IO().DrainEvents()
	if got := eventsOfKind(events, gui.EventMousePos); len(got) != 0 {
		t.Errorf("mouse pos sent while GUI sets it: %v", got)
	}
	if got := eventsOfKind(events, gui.EventMouseButton); len(got) != 0 {
		t.Errorf("unchanged buttons emitted %v", got)
	}
	if got := eventsOfKind(events, gui.EventMouseWheel); len(got) != 1 || got[0].Pos != (gui.Vec2{X: -1, Y: 2}) {
		t.Errorf("wheel = %v", got)
	}
}

func approx(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestGamepadDeadZone(t *testing.T) {
	tests := []struct {
		value                float32
		negActive, posActive bool
		neg, pos             float32
	}{
		{0.25, false, true, 0, 0.05},
		{0.1, false, false, 0, 0},
		{-0.1, false, false, 0, 0},
		{-0.9, true, false, 0.7, 0},
		{0.2, false, false, 0, 0},
	}
	for _, tt := range tests {
		f := newFakeHost()
		f.gamepad = true
		r, ctx := newTestRenderer(f)
		ctx.IO().ConfigFlags |= gui.ConfigFlagsNavEnableGamepad
		f.axes[host.GamepadAxisLeftX] = tt.value
		r.Update()
		events := ctx.IO().DrainEvents()

		neg := keyEvents(events, gui.KeyGamepadLStickLeft)
		pos := keyEvents(events, gui.KeyGamepadLStickRight)
		if len(neg) != 1 || len(pos) != 1 {
			t.Fatalf("value %v: neg %v pos %v", tt.value, neg, pos)
		}
		if neg[0].Down != tt.negActive || !approx(neg[0].Analog, tt.neg) {
			t.Errorf("value %v: negative = (%t, %v), want (%t, %v)", tt.value, neg[0].Down, neg[0].Analog, tt.negActive, tt.neg)
		}
		if pos[0].Down != tt.posActive || !approx(pos[0].Analog, tt.pos) {
			t.Errorf("value %v: positive = (%t, %v), want (%t, %v)", tt.value, pos[0].Down, pos[0].Analog, tt.posActive, tt.pos)
		}
	}
}

func TestGamepadRequiresNavFlagAndDevice(t *testing.T) {
	f := newFakeHost()
	f.gamepad = true
	f.padPressed[host.GamepadButtonRightFaceDown] = true
	r, ctx := newTestRenderer(f)

	r.Update()
	for _, e := range eventsOfKind(ctx.IO().DrainEvents(), gui.EventKey) {
		if e.Key.IsGamepad() {
			t.Fatalf("gamepad event without nav flag: %v", e)
		}
	}

	ctx.IO().ConfigFlags |= gui.ConfigFlagsNavEnableGamepad
	f.gamepad = false
	r.Update()
	for _, e := range eventsOfKind(ctx.IO().DrainEvents(), gui.EventKey) {
		if e.Key.IsGamepad() {
			t.Fatalf("gamepad event without device: %v", e)
		}
	}

	f.gamepad = true
	r.Update()
	got := keyEvents(ctx.IO().DrainEvents(), gui.KeyGamepadFaceDown)
	if len(got) != 1 || !got[0].Down {
		t.Errorf("face down = %v", got)
	}
}

func TestCursorReconciliation(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)

	ctx.SetMouseCursor(gui.MouseCursorHand)
	r.Update()
	want := []string{"ShowCursor", "SetMouseCursor pointing-hand"}
	if !reflect.DeepEqual(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}

	f.calls = nil
	r.Update()
	if len(f.calls) != 0 {
		t.Errorf("second update mutated cursor: %v", f.calls)
	}

	ctx.SetMouseCursor(gui.MouseCursorNone)
	r.Update()
	if !reflect.DeepEqual(f.calls, []string{"HideCursor"}) {
		t.Errorf("none cursor calls = %v", f.calls)
	}

	f.calls = nil
	ctx.SetMouseCursor(gui.MouseCursorTextInput)
	ctx.IO().MouseDrawCursor = true
	r.Update()
	r.Update()
	if !reflect.DeepEqual(f.calls, []string{"HideCursor", "HideCursor"}) {
		t.Errorf("software cursor calls = %v", f.calls)
	}
}

func TestCursorShapeChangeDisabled(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	ctx.IO().ConfigFlags |= gui.ConfigFlagsNoMouseCursorChange

	ctx.SetMouseCursor(gui.MouseCursorResizeEW)
	r.Update()
	if !reflect.DeepEqual(f.calls, []string{"ShowCursor"}) {
		t.Errorf("calls = %v", f.calls)
	}
}

func TestCursorWithoutCapabilityIsNoop(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	ctx.IO().BackendFlags &^= gui.BackendFlagsHasMouseCursors

	ctx.SetMouseCursor(gui.MouseCursorHand)
	r.Update()
	if len(f.calls) != 0 {
		t.Errorf("calls = %v", f.calls)
	}
}

func triangleList(count int, clip gui.Vec4, tex gui.TextureID) *gui.DrawList {
	return &gui.DrawList{
		VtxBuffer: []gui.DrawVert{
			{Pos: gui.Vec2{X: 0, Y: 0}, UV: gui.Vec2{X: 0, Y: 0}, Col: [4]uint8{255, 0, 0, 255}},
			{Pos: gui.Vec2{X: 10, Y: 0}, UV: gui.Vec2{X: 1, Y: 0}, Col: [4]uint8{0, 255, 0, 255}},
			{Pos: gui.Vec2{X: 0, Y: 10}, UV: gui.Vec2{X: 0, Y: 1}, Col: [4]uint8{0, 0, 255, 128}},
		},
		IdxBuffer: []gui.DrawIdx{0, 1, 2},
		Commands: []gui.DrawCmd{{
			Kind:   gui.DrawCmdElements,
			Count:  count,
			Params: gui.DrawCmdParams{ClipRect: clip, TextureID: tex},
		}},
	}
}

func TestRenderElements(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	ctx.AddDrawList(triangleList(3, gui.Vec4{X: 10, Y: 20, Z: 110, W: 220}, 5))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"DrawRenderBatchActive",
		"DisableBackfaceCulling",
		"EnableScissorTest",
		"Scissor 10 260 100 200",
		"Begin 4",
		"SetTexture 5",
		"Color4ub 255 0 0 255", "TexCoord2f 0 0", "Vertex2f 0 0",
		"Color4ub 0 255 0 255", "TexCoord2f 1 0", "Vertex2f 10 0",
		"Color4ub 0 0 255 128", "TexCoord2f 0 1", "Vertex2f 0 10",
		"End",
		"DrawRenderBatchActive",
		"SetTexture 0",
		"DisableScissorTest",
		"EnableBackfaceCulling",
	}
	if !reflect.DeepEqual(f.calls, want) {
		t.Errorf("calls:\n%v\nwant:\n%v", f.calls, want)
	}
}

func TestRenderScissorHighDPI(t *testing.T) {
	f := newFakeHost()
	f.dpi = host.Vec2{X: 2, Y: 2}
	f.highDPI = true
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	ctx.AddDrawList(triangleList(3, gui.Vec4{X: 10, Y: 20, Z: 110, W: 220}, 5))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if f.calls[3] != "Scissor 20 520 200 400" {
		t.Errorf("scissor = %q", f.calls[3])
	}

	f.highDPI = false
	f.calls = nil
	ctx.AddDrawList(triangleList(3, gui.Vec4{X: 10, Y: 20, Z: 110, W: 220}, 5))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if f.calls[3] != "Scissor 10 260 100 200" {
		t.Errorf("scissor without high dpi = %q", f.calls[3])
	}
}

func TestRenderSkipsDegenerateBatch(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	ctx.AddDrawList(triangleList(2, gui.Vec4{Z: 640, W: 480}, 5))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	for _, prefix := range []string{"Begin", "Vertex2f", "End"} {
		if n := f.count(prefix); n != 0 {
			t.Errorf("%s called %d times for a 2-index batch", prefix, n)
		}
	}
}

func TestRenderSkipsEmptyFramebuffer(t *testing.T) {
	f := newFakeHost()
	f.width, f.height = 0, 480
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	ctx.AddDrawList(triangleList(3, gui.Vec4{Z: 640, W: 480}, 5))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if len(f.calls) != 0 {
		t.Errorf("calls = %v, want none", f.calls)
	}
}

func TestRenderSkipsWithoutLists(t *testing.T) {
	f := newFakeHost()
	r, _ := newTestRenderer(f)
	r.Update()
	f.calls = nil

	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if len(f.calls) != 0 {
		t.Errorf("calls = %v, want none", f.calls)
	}
}

func TestRenderResetAndCallback(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	var called *gui.DrawList
	list := &gui.DrawList{Commands: []gui.DrawCmd{
		{Kind: gui.DrawCmdResetRenderState},
		{Kind: gui.DrawCmdRawCallback, Callback: func(l *gui.DrawList, cmd *gui.DrawCmd) {
			called = l
			f.record("callback")
		}},
	}}
	ctx.AddDrawList(list)
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"DrawRenderBatchActive",
		"DisableBackfaceCulling",
		"SetTexture 0",
		"callback",
		"SetTexture 0",
		"DisableScissorTest",
		"EnableBackfaceCulling",
	}
	if !reflect.DeepEqual(f.calls, want) {
		t.Errorf("calls = %v, want %v", f.calls, want)
	}
	if called != list {
		t.Error("callback did not receive its draw list")
	}
}

func TestRenderVertexOffset(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	list := triangleList(3, gui.Vec4{Z: 640, W: 480}, 7)
	list.VtxBuffer = append([]gui.DrawVert{{Pos: gui.Vec2{X: 99, Y: 99}}}, list.VtxBuffer...)
	list.IdxBuffer = append([]gui.DrawIdx{9, 9}, list.IdxBuffer...)
	list.Commands[0].Params.VtxOffset = 1
	list.Commands[0].Params.IdxOffset = 2
	ctx.AddDrawList(list)
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if n := f.count("Vertex2f 99"); n != 0 {
		t.Errorf("offset vertex drawn %d times", n)
	}
	if n := f.count("Vertex2f"); n != 3 {
		t.Errorf("drew %d vertices, want 3", n)
	}
}

func TestRenderRejectsOutOfRangeIndex(t *testing.T) {
	f := newFakeHost()
	r, ctx := newTestRenderer(f)
	r.Update()
	f.calls = nil

	list := triangleList(3, gui.Vec4{Z: 640, W: 480}, 5)
	list.IdxBuffer[2] = 40
	ctx.AddDrawList(list)
	err := r.Render()
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
	if f.count("Begin") != 0 {
		t.Error("partial batch started for malformed command")
	}
	n := len(f.calls)
	if n < 3 || f.calls[n-3] != "SetTexture 0" || f.calls[n-2] != "DisableScissorTest" || f.calls[n-1] != "EnableBackfaceCulling" {
		t.Errorf("state not restored: %v", f.calls)
	}
}

func TestReloadFonts(t *testing.T) {
	f := newFakeHost()
	atlas := &fakeAtlas{}
	ctx := gui.NewContext(atlas)
	r, err := New(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	first := r.FontTexture()
	if want, _, _, _ := atlas.BuildRGBA32(); !reflect.DeepEqual(f.uploaded, want) {
		t.Errorf("uploaded %v, want %v", f.uploaded, want)
	}

	if err := r.ReloadFonts(); err != nil {
		t.Fatal(err)
	}
	second := r.FontTexture()
	if second.ID == first.ID {
		t.Fatal("reload kept the old texture")
	}
	if atlas.TexID() != gui.TextureID(second.ID) {
		t.Errorf("atlas tex id = %d, want %d", atlas.TexID(), second.ID)
	}
	if !reflect.DeepEqual(f.unloaded, []uint32{first.ID}) {
		t.Errorf("unloaded = %v, want [%d]", f.unloaded, first.ID)
	}

	f.textureFail = true
	err = r.ReloadFonts()
	if !errors.Is(err, ErrFontTexture) || !errors.Is(err, host.ErrTextureCreate) {
		t.Fatalf("err = %v", err)
	}
	if r.FontTexture() != second || atlas.TexID() != gui.TextureID(second.ID) {
		t.Error("failed reload replaced the active texture")
	}
	if f.images != 0 {
		t.Errorf("%d images leaked", f.images)
	}
}

func TestReloadFontsAfterSizeChange(t *testing.T) {
	f := newFakeHost()
	atlas := fontatlas.New(nil, 12)
	r, err := New(gui.NewContext(atlas), f)
	if err != nil {
		t.Fatal(err)
	}
	first := r.FontTexture()

	atlas.SetSize(32)
	if err := r.ReloadFonts(); err != nil {
		t.Fatal(err)
	}
	second := r.FontTexture()
	if second.Width != fontatlas.AtlasWidth || second.Height <= first.Height {
		t.Errorf("texture after resize = %dx%d, was %dx%d", second.Width, second.Height, first.Width, first.Height)
	}
	if len(f.uploaded) != second.Width*second.Height*4 {
		t.Errorf("uploaded %d bytes for %dx%d", len(f.uploaded), second.Width, second.Height)
	}
	if !reflect.DeepEqual(f.unloaded, []uint32{first.ID}) {
		t.Errorf("unloaded = %v, want [%d]", f.unloaded, first.ID)
	}
	if atlas.TexID() != gui.TextureID(second.ID) {
		t.Errorf("atlas tex id = %d, want %d", atlas.TexID(), second.ID)
	}
}

func TestNewFailsOnAtlasError(t *testing.T) {
	f := newFakeHost()
	boom := errors.New("boom")
	_, err := New(gui.NewContext(&fakeAtlas{fail: boom}), f)
	if !errors.Is(err, ErrFontTexture) || !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
