// Package imguictx drives a Dear ImGui context from cimgui-go through the
// gui.Platform surface, so the backend can render it on any host. The
// binding needs cgo and is only built with the cimgui build tag; the buffer
// decoding below is plain Go.
package imguictx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/rook-computer/guibridge/internal/gui"
)

var ErrLayout = errors.New("imguictx: unsupported buffer layout")

// vertexLayout describes ImDrawVert: the stride and the byte offsets of
// pos (2 float32), uv (2 float32) and col (packed RGBA8).
type vertexLayout struct {
	stride, pos, uv, col int
}

func (l vertexLayout) valid() bool {
	return l.stride > 0 &&
		l.pos >= 0 && l.pos+8 <= l.stride &&
		l.uv >= 0 && l.uv+8 <= l.stride &&
		l.col >= 0 && l.col+4 <= l.stride
}

// decodeVertices copies a raw vertex buffer. Trailing bytes that do not
// form a whole vertex are ignored.
func decodeVertices(raw []byte, l vertexLayout) ([]gui.DrawVert, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: vertex %+v", ErrLayout, l)
	}
	n := len(raw) / l.stride
	out := make([]gui.DrawVert, n)
	for i := range out {
		v := raw[i*l.stride : (i+1)*l.stride]
		out[i] = gui.DrawVert{
			Pos: readVec2(v[l.pos:]),
			UV:  readVec2(v[l.uv:]),
		}
		copy(out[i].Col[:], v[l.col:l.col+4])
	}
	return out, nil
}

// decodeIndices copies a raw index buffer of 16 or 32 bit indices.
func decodeIndices(raw []byte, size int) ([]gui.DrawIdx, error) {
	switch size {
	case 2:
		out := make([]gui.DrawIdx, len(raw)/2)
		for i := range out {
			out[i] = gui.DrawIdx(binary.NativeEndian.Uint16(raw[i*2:]))
		}
		return out, nil
	case 4:
		out := make([]gui.DrawIdx, len(raw)/4)
		for i := range out {
			idx := binary.NativeEndian.Uint32(raw[i*4:])
			if idx > math.MaxUint16 {
				return nil, fmt.Errorf("%w: index %d exceeds 16 bits", ErrLayout, idx)
			}
			out[i] = gui.DrawIdx(idx)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d byte indices", ErrLayout, size)
}

func readVec2(b []byte) gui.Vec2 {
	return gui.Vec2{
		X: math.Float32frombits(binary.NativeEndian.Uint32(b)),
		Y: math.Float32frombits(binary.NativeEndian.Uint32(b[4:])),
	}
}
