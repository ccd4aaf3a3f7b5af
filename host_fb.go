package main

import (
	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/config"
	"github.com/rook-computer/guibridge/internal/fbhost"
	"github.com/rook-computer/guibridge/internal/input"
	"github.com/rook-computer/guibridge/internal/render"
	"github.com/rook-computer/guibridge/internal/system"
)

func newFBHost(cfg config.Config, logger app.Logger) *fbhost.Host {
	presenter := render.NewFBPresenter(cfg.FBDevice)
	presenter.Logger = logger
	h := fbhost.New(render.CanvasWidth, render.CanvasHeight, presenter, input.NewDevice(cfg.InputGlob, 0, 0))
	h.Console = system.NewConsole()
	h.Logger = logger
	return h
}
