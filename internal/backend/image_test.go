package backend

import (
	"testing"

	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
)

func TestImageFor(t *testing.T) {
	tex := host.Texture2D{ID: 7, Width: 64, Height: 32}
	rt := host.RenderTexture2D{ID: 3, Texture: host.Texture2D{ID: 9, Width: 128, Height: 16}}

	tests := []struct {
		name string
		got  gui.Image
		want gui.Image
	}{
		{"texture", ImageFor(Texture(tex)), gui.Image{TextureID: 7, Size: gui.Vec2{X: 64, Y: 32}}},
		{"render texture", ImageFor(RenderTexture(rt)), gui.Image{TextureID: 9, Size: gui.Vec2{X: 128, Y: 16}}},
		{"scaled", ImageScaled(Texture(tex), 10, 20), gui.Image{TextureID: 7, Size: gui.Vec2{X: 10, Y: 20}}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}
