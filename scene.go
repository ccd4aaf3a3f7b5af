package main

import (
	"fmt"
	"image"

	"github.com/rook-computer/guibridge/internal/fontatlas"
	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/render/layout"
)

var (
	panelColor  = [4]uint8{0x2C, 0x2C, 0x36, 0xFF}
	textColor   = [4]uint8{0xE6, 0xE6, 0xE6, 0xFF}
	accentColor = [4]uint8{0x4F, 0xC3, 0xF7, 0xC0}
	white       = [4]uint8{0xFF, 0xFF, 0xFF, 0xFF}
)

const (
	margin     = 24
	markerSize = 12
)

// scene draws the diagnostic screen: font atlas, QR texture, input status and a
// marker under the pointer. Hovering the panels exercises cursor shapes.
type scene struct {
	atlas          *fontatlas.Atlas
	atlasW, atlasH int
	qr             gui.Image

	mouse   gui.Vec2
	lastKey gui.Key
	text    []rune
	events  int
}

// newScene takes the atlas the draw list builder shapes text with. A nil
// atlas is allowed when the GUI lays out its own text.
func newScene(atlas *fontatlas.Atlas) *scene {
	s := &scene{atlas: atlas, lastKey: gui.KeyNone}
	if atlas == nil {
		return s
	}
	if _, w, h, err := atlas.BuildRGBA32(); err == nil {
		s.atlasW, s.atlasH = w, h
	}
	return s
}

// apply folds one event into the scene and reports whether it asks to quit.
func (s *scene) apply(ev gui.Event) bool {
	s.events++
	switch ev.Kind {
	case gui.EventMousePos:
		s.mouse = ev.Pos
	case gui.EventKey:
		if ev.Down {
			s.lastKey = ev.Key
		}
		return ev.Down && ev.Key == gui.KeyEscape
	case gui.EventText:
		s.text = append(s.text, ev.Char)
		if len(s.text) > 32 {
			s.text = s.text[len(s.text)-32:]
		}
	}
	return false
}

func (s *scene) build(ctx *gui.Context) {
	io := ctx.IO()
	screen := image.Rect(0, 0, int(io.DisplaySize.X), int(io.DisplaySize.Y))
	b := gui.NewDrawListBuilder(rectVec4(screen), s.atlas.TexID(), s.atlas.WhitePixelUV())

	cols := layout.Columns(layout.Inset(screen, margin), 2)
	left := layout.Rows(cols[0], 2)
	atlasPanel := layout.Inset(left[0], margin/2)
	qrPanel := layout.Inset(left[1], margin/2)
	statusPanel := layout.Inset(cols[1], margin/2)

	for _, p := range []image.Rectangle{atlasPanel, qrPanel, statusPanel} {
		b.AddRectFilled(vec2(p.Min), vec2(p.Max), panelColor)
	}

	if s.atlasW > 0 && s.atlasH > 0 {
		dst := layout.Center(atlasPanel, min(s.atlasW, atlasPanel.Dx()), min(s.atlasH, atlasPanel.Dy()))
		b.PushClipRect(rectVec4(atlasPanel))
		b.AddImage(s.atlas.TexID(), vec2(dst.Min), vec2(dst.Max), gui.Vec2{X: 0, Y: 0}, gui.Vec2{X: 1, Y: 1}, white)
		b.PopClipRect()
	}
	if s.qr.TextureID != 0 {
		dst := layout.FitSquare(qrPanel)
		b.AddImage(s.qr.TextureID, vec2(dst.Min), vec2(dst.Max), gui.Vec2{X: 0, Y: 0}, gui.Vec2{X: 1, Y: 1}, white)
	}

	b.PushClipRect(rectVec4(statusPanel))
	pen := vec2(statusPanel.Min)
	pen.X += 8
	pen.Y += 8
	b.AddText(s.atlas, pen, textColor, s.status(io.BackendPlatformName, ctx.FrameCount(), io.DisplaySize, io.DisplayFramebufferScale.X))
	b.PopClipRect()

	mx, my := int(s.mouse.X), int(s.mouse.Y)
	marker := image.Rect(mx-markerSize/2, my-markerSize/2, mx+markerSize/2, my+markerSize/2)
	b.AddRectFilled(vec2(marker.Min), vec2(marker.Max), accentColor)

	ctx.AddDrawList(b.List())
	ctx.SetMouseCursor(s.cursorAt(image.Pt(mx, my), statusPanel, qrPanel))
	// Typing over the status panel belongs to the GUI.
	io.WantCaptureKeyboard = image.Pt(mx, my).In(statusPanel)
}

func (s *scene) cursorAt(p image.Point, textArea, clickArea image.Rectangle) gui.MouseCursor {
	switch {
	case p.In(textArea):
		return gui.MouseCursorTextInput
	case p.In(clickArea):
		return gui.MouseCursorHand
	}
	return gui.MouseCursorArrow
}

func (s *scene) status(platform string, frame int, display gui.Vec2, scale float32) string {
	return fmt.Sprintf("backend %s\nframe %d\ndisplay %.0fx%.0f scale %.1f\nmouse %.0f,%.0f\nlast key %s\nevents %d\ntext %q\n\nEsc quits",
		platform, frame,
		display.X, display.Y, scale,
		s.mouse.X, s.mouse.Y, s.lastKey, s.events, string(s.text))
}

func vec2(p image.Point) gui.Vec2 { return gui.Vec2{X: float32(p.X), Y: float32(p.Y)} }

func rectVec4(r image.Rectangle) gui.Vec4 {
	return gui.Vec4{X: float32(r.Min.X), Y: float32(r.Min.Y), Z: float32(r.Max.X), W: float32(r.Max.Y)}
}
