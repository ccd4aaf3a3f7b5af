package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/rook-computer/guibridge/internal/host"
	"github.com/rook-computer/guibridge/internal/render/layout"
)

// WhiteTextureID is bound whenever texture 0 is requested.
const WhiteTextureID uint32 = 1

var ErrTextureSize = errors.New("render: invalid texture size")

type vertex struct {
	x, y  float32
	u, v  float32
	col   [4]uint8
	texID uint32
}

// Rasterizer draws host immediate-mode primitives into an RGBA canvas.
// It is not safe for concurrent drawing; the mutex only guards texture
// registration and canvas swaps against the presenter.
type Rasterizer struct {
	mu       sync.Mutex
	canvas   *image.RGBA
	textures map[uint32]*image.NRGBA
	nextID   uint32

	mode    host.PrimitiveMode
	texture uint32
	color   [4]uint8
	u, v    float32
	pending []vertex // vertices of the open Begin/End block
	batch   []vertex // closed triangles waiting for a flush

	scissorOn bool
	scissor   image.Rectangle
	cullBack  bool

	drawCalls int
}

// NewRasterizer allocates a canvas of the given size.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{
		canvas:   image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
		textures: map[uint32]*image.NRGBA{},
		nextID:   WhiteTextureID + 1,
		texture:  WhiteTextureID,
		color:    [4]uint8{0xFF, 0xFF, 0xFF, 0xFF},
		cullBack: true,
	}
	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	white.Pix[0], white.Pix[1], white.Pix[2], white.Pix[3] = 0xFF, 0xFF, 0xFF, 0xFF
	r.textures[WhiteTextureID] = white
	return r
}

func (r *Rasterizer) Canvas() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canvas
}

func (r *Rasterizer) Width() int  { return r.canvas.Rect.Dx() }
func (r *Rasterizer) Height() int { return r.canvas.Rect.Dy() }

// Clear fills the whole canvas and resets the per-frame draw call counter.
func (r *Rasterizer) Clear(c color.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	draw.Draw(r.canvas, r.canvas.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	r.drawCalls = 0
}

// Snapshot copies the canvas. It may be called from any goroutine; a copy
// taken mid-frame holds whole flushed batches only.
func (r *Rasterizer) Snapshot() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := image.NewRGBA(r.canvas.Rect)
	copy(out.Pix, r.canvas.Pix)
	return out
}

// DrawCalls counts flushes that drew at least one triangle since the last Clear.
func (r *Rasterizer) DrawCalls() int { return r.drawCalls }

// TextureCount reports live textures, including the white default.
func (r *Rasterizer) TextureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.textures)
}

func (r *Rasterizer) GenImageColor(w, h int, c color.RGBA) *host.Image {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	data := make([]byte, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = c.R, c.G, c.B, c.A
	}
	return &host.Image{Data: data, Width: w, Height: h}
}

func (r *Rasterizer) LoadTextureFromImage(img *host.Image) (host.Texture2D, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return host.Texture2D{}, fmt.Errorf("%w: %w: empty image", host.ErrTextureCreate, ErrTextureSize)
	}
	if img.Width > MaxTextureSize || img.Height > MaxTextureSize {
		return host.Texture2D{}, fmt.Errorf("%w: %w: %dx%d exceeds %d", host.ErrTextureCreate, ErrTextureSize, img.Width, img.Height, MaxTextureSize)
	}
	size := img.Width * img.Height * 4
	if len(img.Data) < size {
		return host.Texture2D{}, fmt.Errorf("%w: %w: %d bytes for %dx%d", host.ErrTextureCreate, ErrTextureSize, len(img.Data), img.Width, img.Height)
	}

	tex := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(tex.Pix, img.Data[:size])

	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.textures[id] = tex
	return host.Texture2D{ID: id, Width: img.Width, Height: img.Height}, nil
}

func (r *Rasterizer) UnloadImage(img *host.Image) {
	if img != nil {
		img.Data = nil
	}
}

// UnloadTexture frees a texture. The white default cannot be unloaded.
func (r *Rasterizer) UnloadTexture(t host.Texture2D) {
	if t.ID == WhiteTextureID {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.textures, t.ID)
}

func (r *Rasterizer) DrawRenderBatchActive() { r.flush() }

func (r *Rasterizer) EnableBackfaceCulling() {
	r.flush()
	r.cullBack = true
}

func (r *Rasterizer) DisableBackfaceCulling() {
	r.flush()
	r.cullBack = false
}

func (r *Rasterizer) EnableScissorTest() {
	r.flush()
	r.scissorOn = true
}

func (r *Rasterizer) DisableScissorTest() {
	r.flush()
	r.scissorOn = false
}

// Scissor takes a rectangle with a bottom-left origin, like GL.
func (r *Rasterizer) Scissor(x, y, w, h int) {
	r.flush()
	r.scissor = layout.FromBottomLeft(x, y, w, h, r.Height())
}

func (r *Rasterizer) Begin(mode host.PrimitiveMode) {
	r.mode = mode
	r.pending = r.pending[:0]
}

func (r *Rasterizer) End() {
	switch r.mode {
	case host.Triangles:
		n := len(r.pending) / 3 * 3
		r.batch = append(r.batch, r.pending[:n]...)
	case host.Quads:
		for i := 0; i+3 < len(r.pending); i += 4 {
			q := r.pending[i : i+4]
			r.batch = append(r.batch, q[0], q[1], q[2], q[0], q[2], q[3])
		}
	}
	// Lines are not rasterized.
	r.pending = r.pending[:0]
}

func (r *Rasterizer) SetTexture(id uint32) {
	if id == 0 {
		id = WhiteTextureID
	}
	r.texture = id
}

func (r *Rasterizer) Color4ub(red, green, blue, alpha uint8) {
	r.color = [4]uint8{red, green, blue, alpha}
}

func (r *Rasterizer) TexCoord2f(u, v float32) { r.u, r.v = u, v }

func (r *Rasterizer) Vertex2f(x, y float32) {
	r.pending = append(r.pending, vertex{x: x, y: y, u: r.u, v: r.v, col: r.color, texID: r.texture})
}

func (r *Rasterizer) flush() {
	if len(r.batch) < 3 {
		r.batch = r.batch[:0]
		return
	}
	clip := r.canvas.Rect
	if r.scissorOn {
		clip = clip.Intersect(r.scissor)
	}

	r.mu.Lock()
	drawn := false
	for i := 0; i+2 < len(r.batch); i += 3 {
		tex := r.textures[r.batch[i].texID]
		if tex == nil {
			tex = r.textures[WhiteTextureID]
		}
		if r.fillTriangle(r.batch[i], r.batch[i+1], r.batch[i+2], tex, clip) {
			drawn = true
		}
	}
	r.mu.Unlock()

	if drawn {
		r.drawCalls++
	}
	r.batch = r.batch[:0]
}
