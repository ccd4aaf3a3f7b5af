//go:build !cimgui

package main

import (
	"fmt"

	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/config"
)

func newGUI(name string, cfg config.Config, logger app.Logger) (*frontend, error) {
	switch name {
	case "native":
		return newNativeGUI(cfg, logger), nil
	case "cimgui":
		return nil, fmt.Errorf("gui %q requires building with -tags cimgui", name)
	}
	return nil, fmt.Errorf("unknown gui %q", name)
}
