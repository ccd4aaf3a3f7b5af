// Package app runs the per-frame loop that ties a host, the GUI context and
// the backend renderer together.
package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rook-computer/guibridge/internal/backend"
	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
	"github.com/rook-computer/guibridge/internal/state"
)

const DefaultFPS = 30

// FrameHost is a host with a lifecycle and explicit frame boundaries.
type FrameHost interface {
	host.Host
	Start(ctx context.Context) error
	Stop() error
	BeginFrame()
	EndFrame() error
}

// GUI is a context the frame loop drives: the backend-facing platform
// surface plus frame start, which returns the events queued since the last
// frame.
type GUI interface {
	gui.Platform
	NewFrame() []gui.Event
}

type App struct {
	Store    *state.Store
	Host     FrameHost
	GUI      GUI
	Renderer *backend.Renderer
	Logger   Logger

	// Build submits the frame's GUI content. OnEvents sees the events the
	// backend queued this frame before Build runs.
	Build    func()
	OnEvents func(events []gui.Event)
	// OnStop runs after the last frame while the host is still up.
	OnStop func()

	FPS       int
	MaxFrames uint64 // 0 runs until Exit or cancellation

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, h FrameHost, ctx GUI, r *backend.Renderer) *App {
	return &App{Store: store, Host: h, GUI: ctx, Renderer: r, Logger: NoopLogger{}, FPS: DefaultFPS, exitCh: make(chan error, 1)}
}

// Exit requests the loop to stop after the current frame. Only the first
// call has an effect; its error is returned by Run.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Run starts the host and ticks frames at FPS until ctx is done, Exit is
// called, MaxFrames is reached or the host window asks to close.
func (app *App) Run(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	fps := app.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	if err := app.Host.Start(ctx); err != nil {
		app.Logger.Errorf("app", "host start error: %v", err)
		app.Store.Fail(err)
		return err
	}
	defer func() {
		if app.OnStop != nil {
			app.OnStop()
		}
		if err := app.Host.Stop(); err != nil {
			app.Logger.Errorf("app", "host stop error: %v", err)
		}
	}()

	app.Store.UpdateHost(state.HostInfo{
		Name:        app.GUI.State().PlatformName,
		Width:       app.Host.ScreenWidth(),
		Height:      app.Host.ScreenHeight(),
		FontTexture: app.Renderer.FontTexture().ID,
	})
	app.Store.SetPhase(state.RUNNING)
	app.Logger.Infof("app", "running at %d fps", fps)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	lastBeat := time.Now()

	for {
		if err := app.Frame(); err != nil {
			app.Logger.Errorf("app", "frame error: %v", err)
			app.Store.Fail(err)
			return err
		}

		snap := app.Store.Snapshot()
		if app.MaxFrames > 0 && snap.Frame.Frames >= app.MaxFrames {
			app.Exit(nil)
		}
		if closer, ok := app.Host.(interface{ ShouldClose() bool }); ok && closer.ShouldClose() {
			app.Exit(nil)
		}
		if time.Since(lastBeat) >= time.Second {
			lastBeat = time.Now()
			app.Logger.Infof("app", "heartbeat frames=%d events=%d drawCalls=%d dt=%.4f",
				snap.Frame.Frames, snap.Frame.Events, snap.Frame.DrawCalls, snap.Frame.FrameTime)
		}

		select {
		case err := <-app.exitCh:
			return app.finish(err)
		default:
		}
		select {
		case <-ctx.Done():
			app.Store.SetPhase(state.STOPPED)
			return ctx.Err()
		case err := <-app.exitCh:
			return app.finish(err)
		case <-ticker.C:
		}
	}
}

func (app *App) finish(err error) error {
	if err != nil {
		app.Store.Fail(err)
	} else {
		app.Store.SetPhase(state.STOPPED)
	}
	app.Logger.Infof("app", "stopped after %d frames", app.Store.Snapshot().Frame.Frames)
	return err
}

// Frame runs one update, build, render and present cycle. A render error
// drops the frame's geometry but keeps the loop alive; a present error is
// returned.
func (app *App) Frame() error {
	app.Host.BeginFrame()
	app.Renderer.Update()
	events := app.GUI.NewFrame()
	if app.OnEvents != nil && len(events) > 0 {
		app.OnEvents(events)
	}
	if app.Build != nil {
		app.Build()
	}
	if err := app.Renderer.Render(); err != nil {
		app.Logger.Errorf("app", "render error: %v", err)
	}
	if err := app.Host.EndFrame(); err != nil {
		return fmt.Errorf("app: end frame: %w", err)
	}

	drawCalls := 0
	if dc, ok := app.Host.(interface{ DrawCalls() int }); ok {
		drawCalls = dc.DrawCalls()
	}
	app.Store.RecordFrame(len(events), drawCalls, app.Host.FrameTime())
	return nil
}
