package gui

import "fmt"

type DrawIdx uint16

// DrawVert is one vertex of GUI geometry. Col is RGBA.
type DrawVert struct {
	Pos Vec2
	UV  Vec2
	Col [4]uint8
}

type DrawCmdKind int

const (
	// DrawCmdElements draws Count indices as a triangle list.
	DrawCmdElements DrawCmdKind = iota
	// DrawCmdResetRenderState asks the backend to restore its render state.
	DrawCmdResetRenderState
	// DrawCmdRawCallback hands control to user code.
	DrawCmdRawCallback
)

func (k DrawCmdKind) String() string {
	switch k {
	case DrawCmdElements:
		return "elements"
	case DrawCmdResetRenderState:
		return "reset-render-state"
	case DrawCmdRawCallback:
		return "raw-callback"
	}
	return fmt.Sprintf("DrawCmdKind(%d)", int(k))
}

type DrawCmdParams struct {
	ClipRect  Vec4
	TextureID TextureID
	VtxOffset int
	IdxOffset int
}

type DrawCallback func(list *DrawList, cmd *DrawCmd)

// DrawCmd is a closed variant; Kind selects which fields are meaningful.
type DrawCmd struct {
	Kind DrawCmdKind

	// DrawCmdElements
	Count  int
	Params DrawCmdParams

	// DrawCmdRawCallback
	Callback DrawCallback
}

type DrawList struct {
	VtxBuffer []DrawVert
	IdxBuffer []DrawIdx
	Commands  []DrawCmd
}

type DrawData struct {
	DisplayPos       Vec2
	DisplaySize      Vec2
	FramebufferScale Vec2
	Lists            []*DrawList
}

func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.VtxBuffer)
	}
	return n
}

func (d *DrawData) TotalIdxCount() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.IdxBuffer)
	}
	return n
}

// Glyph describes one rasterized glyph inside a font atlas. X0..Y1 are
// offsets from the pen position at the top of the line.
type Glyph struct {
	Advance        float32
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// GlyphSource is implemented by atlases that can place text.
type GlyphSource interface {
	Glyph(r rune) (Glyph, bool)
	LineHeight() float32
	// WhitePixelUV points at an opaque texel used for untextured fills.
	WhitePixelUV() Vec2
}

const maxVtxPerCmd = 1 << 16

// DrawListBuilder appends primitives to a DrawList, merging consecutive
// primitives that share a clip rect and texture into one Elements command.
type DrawListBuilder struct {
	list      *DrawList
	clipStack []Vec4
	texture   TextureID
	whiteUV   Vec2
}

// NewDrawListBuilder starts a list with the given clip rect. fillTexture and
// whiteUV are used by untextured primitives.
func NewDrawListBuilder(clip Vec4, fillTexture TextureID, whiteUV Vec2) *DrawListBuilder {
	return &DrawListBuilder{
		list:      &DrawList{},
		clipStack: []Vec4{clip},
		texture:   fillTexture,
		whiteUV:   whiteUV,
	}
}

func (b *DrawListBuilder) List() *DrawList { return b.list }

func (b *DrawListBuilder) clip() Vec4 { return b.clipStack[len(b.clipStack)-1] }

// PushClipRect intersects r with the current clip rect.
func (b *DrawListBuilder) PushClipRect(r Vec4) {
	cur := b.clip()
	r.X = max(r.X, cur.X)
	r.Y = max(r.Y, cur.Y)
	r.Z = min(r.Z, cur.Z)
	r.W = min(r.W, cur.W)
	b.clipStack = append(b.clipStack, r)
}

func (b *DrawListBuilder) PopClipRect() {
	if len(b.clipStack) > 1 {
		b.clipStack = b.clipStack[:len(b.clipStack)-1]
	}
}

// current returns the Elements command new geometry goes into, opening a new
// one when clip, texture or vertex budget changed.
func (b *DrawListBuilder) current(tex TextureID, addVtx int) *DrawCmd {
	l := b.list
	if n := len(l.Commands); n > 0 {
		cmd := &l.Commands[n-1]
		if cmd.Kind == DrawCmdElements && cmd.Params.ClipRect == b.clip() && cmd.Params.TextureID == tex &&
			len(l.VtxBuffer)-cmd.Params.VtxOffset+addVtx <= maxVtxPerCmd {
			return cmd
		}
	}
	l.Commands = append(l.Commands, DrawCmd{
		Kind: DrawCmdElements,
		Params: DrawCmdParams{
			ClipRect:  b.clip(),
			TextureID: tex,
			VtxOffset: len(l.VtxBuffer),
			IdxOffset: len(l.IdxBuffer),
		},
	})
	return &l.Commands[len(l.Commands)-1]
}

func (b *DrawListBuilder) quad(tex TextureID, min, max, uvMin, uvMax Vec2, col [4]uint8) {
	cmd := b.current(tex, 4)
	base := DrawIdx(len(b.list.VtxBuffer) - cmd.Params.VtxOffset)
	b.list.VtxBuffer = append(b.list.VtxBuffer,
		DrawVert{Pos: min, UV: uvMin, Col: col},
		DrawVert{Pos: Vec2{max.X, min.Y}, UV: Vec2{uvMax.X, uvMin.Y}, Col: col},
		DrawVert{Pos: max, UV: uvMax, Col: col},
		DrawVert{Pos: Vec2{min.X, max.Y}, UV: Vec2{uvMin.X, uvMax.Y}, Col: col},
	)
	b.list.IdxBuffer = append(b.list.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
	cmd.Count += 6
}

func (b *DrawListBuilder) AddRectFilled(min, max Vec2, col [4]uint8) {
	b.quad(b.texture, min, max, b.whiteUV, b.whiteUV, col)
}

func (b *DrawListBuilder) AddImage(tex TextureID, min, max, uvMin, uvMax Vec2, col [4]uint8) {
	b.quad(tex, min, max, uvMin, uvMax, col)
}

// AddText places text with its top-left corner at pos and returns the pen
// position after the last glyph.
func (b *DrawListBuilder) AddText(src GlyphSource, pos Vec2, col [4]uint8, text string) Vec2 {
	pen := pos
	for _, r := range text {
		if r == '\n' {
			pen.X = pos.X
			pen.Y += src.LineHeight()
			continue
		}
		g, ok := src.Glyph(r)
		if !ok {
			if g, ok = src.Glyph('?'); !ok {
				continue
			}
		}
		if g.X1 > g.X0 && g.Y1 > g.Y0 {
			b.quad(b.texture,
				Vec2{pen.X + g.X0, pen.Y + g.Y0}, Vec2{pen.X + g.X1, pen.Y + g.Y1},
				Vec2{g.U0, g.V0}, Vec2{g.U1, g.V1}, col)
		}
		pen.X += g.Advance
	}
	return pen
}

func (b *DrawListBuilder) AddResetRenderState() {
	b.list.Commands = append(b.list.Commands, DrawCmd{Kind: DrawCmdResetRenderState})
}

func (b *DrawListBuilder) AddCallback(fn DrawCallback) {
	b.list.Commands = append(b.list.Commands, DrawCmd{Kind: DrawCmdRawCallback, Callback: fn})
}
