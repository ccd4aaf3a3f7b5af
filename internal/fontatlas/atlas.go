// Package fontatlas rasterizes a small printable-ASCII font atlas for the
// GUI. The atlas is RGBA8: white color with glyph coverage in alpha, plus an
// opaque white block used for untextured fills.
package fontatlas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/guibridge/internal/gui"
)

const (
	FirstRune = 0x20
	LastRune  = 0x7E

	// AtlasWidth is fixed; the height grows with the glyph rows.
	AtlasWidth = 256

	whiteSize = 2
	padding   = 1
)

var ErrGlyphTooLarge = errors.New("fontatlas: glyph does not fit atlas width")

// Source names the parser that produced the face.
type Source string

const (
	SourceOpenType Source = "opentype"
	SourceTrueType Source = "truetype"
	SourceBasic    Source = "basicfont"
)

type Atlas struct {
	ttf  []byte
	size float64

	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	mu         sync.Mutex
	source     Source
	face       font.Face
	pixels     []byte
	width      int
	height     int
	glyphs     map[rune]gui.Glyph
	lineHeight float32
	white      gui.Vec2
	texID      gui.TextureID
}

// New returns an atlas for the given font bytes at size points. nil ttf
// selects Go Regular.
func New(ttf []byte, size float64) *Atlas {
	if ttf == nil {
		ttf = goregular.TTF
	}
	if size <= 0 {
		size = 16
	}
	return &Atlas{ttf: ttf, size: size}
}

// SetSize changes the point size. The next BuildRGBA32 rasterizes again.
func (a *Atlas) SetSize(size float64) {
	if size <= 0 {
		size = 16
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if size == a.size {
		return
	}
	a.size = size
	a.invalidate()
}

// SetFont swaps the font bytes; nil selects Go Regular. The next BuildRGBA32
// rasterizes again.
func (a *Atlas) SetFont(ttf []byte) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ttf = ttf
	a.invalidate()
}

// Size returns the point size.
func (a *Atlas) Size() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.size
}

// invalidate drops the face and the cached pixels. The texture id stays until
// the backend uploads the rebuilt atlas. Callers hold mu.
func (a *Atlas) invalidate() {
	a.face = nil
	a.source = ""
	a.pixels = nil
	a.width, a.height = 0, 0
	a.glyphs = nil
	a.lineHeight = 0
	a.white = gui.Vec2{}
}

// loadFace tries opentype, then truetype, then falls back to the built-in
// bitmap face.
func (a *Atlas) loadFace() (font.Face, Source) {
	fnt, err := opentype.Parse(a.ttf)
	if err == nil {
		face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: a.size, DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, SourceOpenType
		}
		err = ferr
	}
	a.errorf("opentype face failed, trying truetype: %v", err)

	tt, terr := truetype.Parse(a.ttf)
	if terr == nil {
		return truetype.NewFace(tt, &truetype.Options{Size: a.size, DPI: 72, Hinting: font.HintingFull}), SourceTrueType
	}
	a.errorf("truetype parse failed, using basicfont: %v", terr)
	return basicfont.Face7x13, SourceBasic
}

// BuildRGBA32 rasterizes the atlas. The result is cached until SetSize or
// SetFont changes the face.
func (a *Atlas) BuildRGBA32() ([]byte, int, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pixels != nil {
		return a.pixels, a.width, a.height, nil
	}
	if a.face == nil {
		a.face, a.source = a.loadFace()
	}
	if err := a.build(); err != nil {
		return nil, 0, 0, err
	}
	a.infof("built %dx%d atlas from %s face, %d glyphs", a.width, a.height, a.source, len(a.glyphs))
	return a.pixels, a.width, a.height, nil
}

type placement struct {
	r       rune
	dr      image.Rectangle // bounds relative to the baseline origin
	advance fixed.Int26_6
	at      image.Point
}

func (a *Atlas) build() error {
	m := a.face.Metrics()
	ascent := m.Ascent.Ceil()
	a.lineHeight = float32(m.Height.Ceil())
	if a.lineHeight <= 0 {
		a.lineHeight = float32(ascent + m.Descent.Ceil())
	}

	// First pass: measure and pack into rows.
	var places []placement
	x, y, rowH := whiteSize+padding, 0, whiteSize
	for r := rune(FirstRune); r <= LastRune; r++ {
		dr, _, _, advance, ok := a.face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if w+padding > AtlasWidth {
			return fmt.Errorf("%w: %q is %dpx wide", ErrGlyphTooLarge, r, w)
		}
		if x+w > AtlasWidth {
			x, y, rowH = 0, y+rowH+padding, 0
		}
		places = append(places, placement{r: r, dr: dr, advance: advance, at: image.Pt(x, y)})
		x += w + padding
		rowH = max(rowH, h)
	}
	height := y + rowH + padding

	img := image.NewNRGBA(image.Rect(0, 0, AtlasWidth, height))
	draw.Draw(img, image.Rect(0, 0, whiteSize, whiteSize), image.White, image.Point{}, draw.Src)

	// Second pass: render each glyph with its top-left at the packed position.
	glyphs := make(map[rune]gui.Glyph, len(places))
	fw, fh := float32(AtlasWidth), float32(height)
	for _, p := range places {
		dot := fixed.P(p.at.X-p.dr.Min.X, p.at.Y-p.dr.Min.Y)
		dr, mask, maskp, _, ok := a.face.Glyph(dot, p.r)
		if ok && mask != nil {
			draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
		}
		glyphs[p.r] = gui.Glyph{
			Advance: float32(p.advance) / 64,
			X0:      float32(p.dr.Min.X),
			Y0:      float32(ascent + p.dr.Min.Y),
			X1:      float32(p.dr.Max.X),
			Y1:      float32(ascent + p.dr.Max.Y),
			U0:      float32(p.at.X) / fw,
			V0:      float32(p.at.Y) / fh,
			U1:      float32(p.at.X+p.dr.Dx()) / fw,
			V1:      float32(p.at.Y+p.dr.Dy()) / fh,
		}
	}

	a.pixels = img.Pix
	a.width, a.height = AtlasWidth, height
	a.glyphs = glyphs
	a.white = gui.Vec2{X: float32(whiteSize) / 2 / fw, Y: float32(whiteSize) / 2 / fh}
	return nil
}

func (a *Atlas) SetTexID(id gui.TextureID) {
	a.mu.Lock()
	a.texID = id
	a.mu.Unlock()
}

func (a *Atlas) TexID() gui.TextureID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.texID
}

// Source reports which parser produced the face; empty before the first build.
func (a *Atlas) Source() Source {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.source
}

func (a *Atlas) Glyph(r rune) (gui.Glyph, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	g, ok := a.glyphs[r]
	return g, ok
}

func (a *Atlas) LineHeight() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lineHeight
}

func (a *Atlas) WhitePixelUV() gui.Vec2 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.white
}

func (a *Atlas) infof(format string, args ...interface{}) {
	if a.Logger != nil {
		a.Logger.Infof("fontatlas", format, args...)
	}
}

func (a *Atlas) errorf(format string, args ...interface{}) {
	if a.Logger != nil {
		a.Logger.Errorf("fontatlas", format, args...)
	}
}
