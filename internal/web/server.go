// Package web serves a small diagnostics API next to the frame loop: the
// current state snapshot, a PNG of the last rendered canvas and an exit hook.
package web

import "context"

type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

type NoopServer struct{}

func (n *NoopServer) Start(ctx context.Context) error { return nil }
func (n *NoopServer) Stop() error                     { return nil }
