// Package layout has integer rectangle helpers shared by the rasterizer's
// scissor conversion and the diagnostic screen.
package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// FromBottomLeft converts a rectangle given by its bottom-left corner in a
// y-up space of the given height into top-left image coordinates.
// Negative sizes are treated as empty.
func FromBottomLeft(x, y, w, h, height int) image.Rectangle {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	top := height - (y + h)
	return image.Rect(x, top, x+w, top+h)
}

// Inset shrinks rect by paddingPx on all sides. The result never inverts.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if 2*paddingPx >= rect.Dx() || 2*paddingPx >= rect.Dy() {
		c := image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
		return image.Rectangle{Min: c, Max: c}
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
}

// Columns splits rect into n equal columns, the last one taking the remainder.
func Columns(rect image.Rectangle, n int) []image.Rectangle {
	rect = Normalize(rect)
	if n <= 0 {
		return nil
	}
	out := make([]image.Rectangle, n)
	step := rect.Dx() / n
	x := rect.Min.X
	for i := range out {
		right := x + step
		if i == n-1 {
			right = rect.Max.X
		}
		out[i] = image.Rect(x, rect.Min.Y, right, rect.Max.Y)
		x = right
	}
	return out
}

// Rows splits rect into n equal rows, the last one taking the remainder.
func Rows(rect image.Rectangle, n int) []image.Rectangle {
	rect = Normalize(rect)
	if n <= 0 {
		return nil
	}
	out := make([]image.Rectangle, n)
	step := rect.Dy() / n
	y := rect.Min.Y
	for i := range out {
		bottom := y + step
		if i == n-1 {
			bottom = rect.Max.Y
		}
		out[i] = image.Rect(rect.Min.X, y, rect.Max.X, bottom)
		y = bottom
	}
	return out
}

// FitSquare returns the largest square centered in rect.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	return Center(rect, size, size)
}

// Center places a widthPx x heightPx rectangle in the middle of rect,
// clamping the size to rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = max(0, min(widthPx, rect.Dx()))
	heightPx = max(0, min(heightPx, rect.Dy()))
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}
