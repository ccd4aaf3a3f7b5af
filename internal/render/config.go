package render

import "image/color"

// Global render configuration for the software host.
var (
	// ClearColor fills the canvas at the start of every frame.
	ClearColor = color.RGBA{R: 0x1E, G: 0x1E, B: 0x24, A: 0xFF}

	// CursorFill and CursorOutline color the software cursor sprite.
	CursorFill    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	CursorOutline = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}

	// Logical canvas size; scaled to the framebuffer on present.
	CanvasWidth  = 1280
	CanvasHeight = 720

	// MaxTextureSize bounds either side of an uploaded texture.
	MaxTextureSize = 8192
)
