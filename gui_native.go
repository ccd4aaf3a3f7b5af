package main

import (
	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/config"
	"github.com/rook-computer/guibridge/internal/fontatlas"
	"github.com/rook-computer/guibridge/internal/gui"
)

// frontend is the GUI the diagnostic binary drives: the context handed to the backend,
// the scene it draws and the per-frame build step.
type frontend struct {
	ctx   app.GUI
	scene *scene
	build func()
	close func()
}

func configFlags(cfg config.Config) gui.ConfigFlags {
	flags := gui.ConfigFlagsNavEnableKeyboard | gui.ConfigFlagsNavEnableGamepad
	if cfg.NoCursorChange {
		flags |= gui.ConfigFlagsNoMouseCursorChange
	}
	return flags
}

func newNativeGUI(cfg config.Config, logger app.Logger) *frontend {
	atlas := fontatlas.New(nil, 16)
	atlas.Logger = logger
	ctx := gui.NewContext(atlas)
	ctx.IO().ConfigFlags |= configFlags(cfg)
	s := newScene(atlas)
	return &frontend{
		ctx:   ctx,
		scene: s,
		build: func() { s.build(ctx) },
		close: func() {},
	}
}
