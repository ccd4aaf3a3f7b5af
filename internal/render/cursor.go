package render

import (
	"image"
	"image/draw"

	"github.com/rook-computer/guibridge/internal/host"
)

// Cursor sprites: '#' outline, '.' fill. hot is the hotspot within the sprite.
type sprite struct {
	rows []string
	hot  image.Point
}

var (
	arrowSprite = sprite{rows: []string{
		"#",
		"##",
		"#.#",
		"#..#",
		"#...#",
		"#....#",
		"#.....#",
		"#......#",
		"#.......#",
		"#....####",
		"#..#..#",
		"#.# #..#",
		"##  #..#",
		"     ##",
	}}
	beamSprite = sprite{rows: []string{
		"###.###",
		"   #",
		"   #",
		"   #",
		"   #",
		"   #",
		"   #",
		"   #",
		"   #",
		"   #",
		"###.###",
	}, hot: image.Pt(3, 5)}
	crossSprite = sprite{rows: []string{
		"    #",
		"    #",
		"    #",
		"    #",
		"#### ####",
		"    #",
		"    #",
		"    #",
		"    #",
	}, hot: image.Pt(4, 4)}
)

func spriteFor(shape host.MouseCursor) sprite {
	switch shape {
	case host.MouseCursorIBeam:
		return beamSprite
	case host.MouseCursorCrosshair, host.MouseCursorResizeAll, host.MouseCursorResizeEW,
		host.MouseCursorResizeNS, host.MouseCursorResizeNWSE, host.MouseCursorResizeNESW,
		host.MouseCursorNotAllowed:
		return crossSprite
	default:
		return arrowSprite
	}
}

func drawCursor(dst draw.Image, x, y int, shape host.MouseCursor) {
	s := spriteFor(shape)
	bounds := dst.Bounds()
	for row, line := range s.rows {
		for col, ch := range line {
			p := image.Pt(x+col-s.hot.X, y+row-s.hot.Y)
			if !p.In(bounds) {
				continue
			}
			switch ch {
			case '#':
				dst.Set(p.X, p.Y, CursorOutline)
			case '.':
				dst.Set(p.X, p.Y, CursorFill)
			}
		}
	}
}
