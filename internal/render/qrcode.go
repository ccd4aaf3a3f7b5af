package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/guibridge/internal/host"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("render: qr code: %w", err)
	}
	return qrCode.Image(sizePx), nil
}

// LoadImageTexture converts img to RGBA8 and uploads it through t.
func LoadImageTexture(t host.Textures, img image.Image) (host.Texture2D, error) {
	if img == nil {
		return host.Texture2D{}, fmt.Errorf("%w: nil image", host.ErrTextureCreate)
	}
	b := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)

	hostImg := t.GenImageColor(b.Dx(), b.Dy(), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	copy(hostImg.Data, rgba.Pix)
	tex, err := t.LoadTextureFromImage(hostImg)
	t.UnloadImage(hostImg)
	return tex, err
}
