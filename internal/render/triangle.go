package render

import (
	"image"
	"math"
)

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeft reports whether the edge p->q of a clockwise triangle owns the
// pixel centers lying exactly on it, so shared edges are filled once.
func topLeft(p, q vertex) bool {
	dx, dy := q.x-p.x, q.y-p.y
	return dy < 0 || (dy == 0 && dx > 0)
}

func covered(w float32, owns bool) bool {
	return w > 0 || (w == 0 && owns)
}

// fillTriangle rasterizes one triangle sampling pixel centers. Positive area
// is clockwise on screen; negative area is culled when back-face culling is on.
// It reports whether the triangle was considered for drawing.
func (r *Rasterizer) fillTriangle(a, b, c vertex, tex *image.NRGBA, clip image.Rectangle) bool {
	area := edge(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 || (area < 0 && r.cullBack) {
		return false
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}
	ownBC, ownCA, ownAB := topLeft(b, c), topLeft(c, a), topLeft(a, b)

	minX := int(math.Floor(float64(min(a.x, b.x, c.x))))
	minY := int(math.Floor(float64(min(a.y, b.y, c.y))))
	maxX := int(math.Ceil(float64(max(a.x, b.x, c.x))))
	maxY := int(math.Ceil(float64(max(a.y, b.y, c.y))))
	box := image.Rect(minX, minY, maxX, maxY).Intersect(clip)
	if box.Empty() {
		return true
	}

	tw, th := tex.Rect.Dx(), tex.Rect.Dy()
	inv := 1 / area
	for y := box.Min.Y; y < box.Max.Y; y++ {
		py := float32(y) + 0.5
		for x := box.Min.X; x < box.Max.X; x++ {
			px := float32(x) + 0.5
			w0 := edge(b.x, b.y, c.x, c.y, px, py)
			w1 := edge(c.x, c.y, a.x, a.y, px, py)
			w2 := edge(a.x, a.y, b.x, b.y, px, py)
			if !covered(w0, ownBC) || !covered(w1, ownCA) || !covered(w2, ownAB) {
				continue
			}
			w0, w1, w2 = w0*inv, w1*inv, w2*inv

			u := w0*a.u + w1*b.u + w2*c.u
			v := w0*a.v + w1*b.v + w2*c.v
			tx := clampInt(int(u*float32(tw)), 0, tw-1)
			ty := clampInt(int(v*float32(th)), 0, th-1)
			ti := tex.PixOffset(tx, ty)

			var src [4]float32
			for k := 0; k < 4; k++ {
				vc := w0*float32(a.col[k]) + w1*float32(b.col[k]) + w2*float32(c.col[k])
				src[k] = vc * float32(tex.Pix[ti+k]) / (255 * 255)
			}
			r.blend(x, y, src)
		}
	}
	return true
}

// blend composites a straight-alpha color in [0,1] over the canvas pixel.
func (r *Rasterizer) blend(x, y int, src [4]float32) {
	i := r.canvas.PixOffset(x, y)
	p := r.canvas.Pix[i : i+4 : i+4]
	sa := src[3]
	if sa <= 0 {
		return
	}
	for k := 0; k < 3; k++ {
		p[k] = toByte(src[k]*sa*255 + float32(p[k])*(1-sa))
	}
	p[3] = toByte(sa*255 + float32(p[3])*(1-sa))
}

func toByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
