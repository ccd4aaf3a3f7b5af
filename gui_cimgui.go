//go:build cimgui

package main

import (
	"fmt"

	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/config"
	"github.com/rook-computer/guibridge/internal/imguictx"
)

func newGUI(name string, cfg config.Config, logger app.Logger) (*frontend, error) {
	switch name {
	case "native":
		return newNativeGUI(cfg, logger), nil
	case "cimgui":
		logger.Infof("main", "creating Dear ImGui context")
		ctx := imguictx.New()
		ctx.AddConfigFlags(configFlags(cfg))
		s := newScene(nil)
		return &frontend{
			ctx:   ctx,
			scene: s,
			build: func() {
				s.buildImgui(ctx)
				if err := ctx.LayoutErr(); err != nil {
					logger.Errorf("imgui", "previous frame draw data: %v", err)
				}
			},
			close: ctx.Destroy,
		}, nil
	}
	return nil, fmt.Errorf("unknown gui %q", name)
}
