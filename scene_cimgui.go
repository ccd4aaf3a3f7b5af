//go:build cimgui

package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/rook-computer/guibridge/internal/imguictx"
)

// buildImgui shows the diagnostic status and the QR texture in an ImGui window.
func (s *scene) buildImgui(ctx *imguictx.Context) {
	if imgui.Begin("guibridge") {
		st := ctx.State()
		imgui.Text(s.status(st.PlatformName, ctx.FrameCount(), ctx.DisplaySize(), st.DisplayFramebufferScale.X))
		if s.qr.TextureID != 0 {
			imguictx.Image(s.qr)
		}
	}
	imgui.End()
}
