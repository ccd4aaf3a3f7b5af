//go:build raylib

package main

import (
	"fmt"

	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/config"
	"github.com/rook-computer/guibridge/internal/render"
	"github.com/rook-computer/guibridge/internal/rlhost"
)

func newHost(name string, cfg config.Config, logger app.Logger) (app.FrameHost, error) {
	switch name {
	case "fb":
		return newFBHost(cfg, logger), nil
	case "raylib":
		logger.Infof("main", "opening raylib window %dx%d", render.CanvasWidth, render.CanvasHeight)
		return rlhost.Open(rlhost.Options{
			Width:   int32(render.CanvasWidth),
			Height:  int32(render.CanvasHeight),
			Title:   "guibridge-diag",
			FPS:     int32(cfg.FPS),
			HighDPI: true,
		}, render.ClearColor), nil
	}
	return nil, fmt.Errorf("unknown host %q", name)
}
