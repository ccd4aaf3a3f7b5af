package backend

import (
	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
)

// TextureLike is any host texture that can be shown in an image widget.
type TextureLike interface {
	ID() uint32
	Width() int
	Height() int
}

type texture2D struct{ t host.Texture2D }

func (t texture2D) ID() uint32  { return t.t.ID }
func (t texture2D) Width() int  { return t.t.Width }
func (t texture2D) Height() int { return t.t.Height }

type renderTexture2D struct{ t host.RenderTexture2D }

func (t renderTexture2D) ID() uint32  { return t.t.Texture.ID }
func (t renderTexture2D) Width() int  { return t.t.Texture.Width }
func (t renderTexture2D) Height() int { return t.t.Texture.Height }

func Texture(t host.Texture2D) TextureLike             { return texture2D{t} }
func RenderTexture(t host.RenderTexture2D) TextureLike { return renderTexture2D{t} }

// ImageFor returns an image widget payload at the texture's own size.
func ImageFor(t TextureLike) gui.Image {
	return ImageScaled(t, t.Width(), t.Height())
}

func ImageScaled(t TextureLike, width, height int) gui.Image {
	return gui.Image{
		TextureID: gui.TextureID(t.ID()),
		Size:      gui.Vec2{X: float32(width), Y: float32(height)},
	}
}
