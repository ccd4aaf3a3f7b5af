//go:build !raylib

package main

import (
	"fmt"

	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/config"
)

func newHost(name string, cfg config.Config, logger app.Logger) (app.FrameHost, error) {
	switch name {
	case "fb":
		return newFBHost(cfg, logger), nil
	case "raylib":
		return nil, fmt.Errorf("host %q requires building with -tags raylib", name)
	}
	return nil, fmt.Errorf("unknown host %q", name)
}
