// Command guibridge-diag drives the GUI backend on a real host and draws a
// diagnostic scene: the font atlas, a QR code texture and a pointer marker.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/guibridge/internal/app"
	"github.com/rook-computer/guibridge/internal/backend"
	"github.com/rook-computer/guibridge/internal/config"
	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
	"github.com/rook-computer/guibridge/internal/render"
	"github.com/rook-computer/guibridge/internal/state"
	"github.com/rook-computer/guibridge/internal/web"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}
	webCfg, err := web.DefaultServerConfigFromEnv("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Flags
	debug := flag.Bool("debug", cfg.Debug, "enable debug logging to ./guibridge-debug.log")
	stdioLog := flag.String("stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	fbDevice := flag.String("fb", cfg.FBDevice, "framebuffer device")
	inputGlob := flag.String("input", cfg.InputGlob, "glob of evdev input devices")
	fps := flag.Int("fps", cfg.FPS, "frames per second")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until Esc or a signal)")
	qr := flag.String("qr", "guibridge", "payload of the QR code texture")
	hostName := flag.String("host", "fb", "host backend: fb, or raylib when built with -tags raylib")
	guiName := flag.String("gui", "native", "GUI library: native, or cimgui when built with -tags cimgui")
	listen := flag.String("listen", webCfg.ListenAddr, "diagnostics HTTP listen address, empty disables; also configurable via "+web.EnvListenAddr)
	noCursorChange := flag.Bool("no-cursor-change", cfg.NoCursorChange, "never change the host cursor shape")
	flag.Parse()

	cfg.Debug, cfg.StdioLog, cfg.FBDevice, cfg.InputGlob, cfg.FPS = *debug, *stdioLog, *fbDevice, *inputGlob, *fps
	cfg.NoCursorChange = *noCursorChange
	webCfg.ListenAddr = *listen
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Best-effort: keep crash output readable while the console is in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile("./guibridge-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	h, err := newHost(*hostName, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "host error:", err)
		return 1
	}

	fe, err := newGUI(*guiName, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gui error:", err)
		return 1
	}
	defer fe.close()

	renderer, err := backend.New(fe.ctx, h, backend.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "backend error:", err)
		return 1
	}

	scene := fe.scene
	var textures []host.Texture2D
	if img, err := render.GenerateQRCodeImage(*qr, 128); err != nil {
		logger.Errorf("main", "qr code: %v", err)
	} else if img != nil {
		tex, err := render.LoadImageTexture(h, img)
		if err != nil {
			logger.Errorf("main", "qr texture: %v", err)
		} else {
			textures = append(textures, tex)
			scene.qr = backend.ImageFor(backend.Texture(tex))
		}
	}

	a := app.New(state.NewStore(), h, fe.ctx, renderer)
	a.Logger = logger
	a.FPS = cfg.FPS
	a.MaxFrames = *frames
	a.Build = fe.build
	a.OnStop = func() {
		for _, tex := range textures {
			h.UnloadTexture(tex)
		}
	}
	a.OnEvents = func(events []gui.Event) {
		for _, ev := range events {
			if cfg.Debug {
				logger.Infof("event", "%v", ev)
			}
			if scene.apply(ev) {
				a.Exit(nil)
			}
		}
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv web.Server = &web.NoopServer{}
	if webCfg.ListenAddr != "" {
		hs := web.NewHTTPServer(webCfg, web.APIV1Deps{
			Snapshot: a.Store.Snapshot,
			Frame:    frameSource(h),
			Exit: func(context.Context) error {
				a.Exit(nil)
				return nil
			},
		})
		hs.Logger = logger
		srv = hs
	}
	if err := srv.Start(sigCtx); err != nil {
		logger.Errorf("main", "web server: %v", err)
	}
	defer srv.Stop()

	if err := a.Run(sigCtx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		return 1
	}
	snap := a.Store.Snapshot()
	fmt.Printf("guibridge-diag: %s after %d frames, %d events\n", snap.Phase, snap.Frame.Frames, snap.Frame.Events)
	return 0
}

// frameSource captures the canvas of hosts that render in software.
func frameSource(h app.FrameHost) func() image.Image {
	snap, ok := h.(interface{ Snapshot() *image.RGBA })
	if !ok {
		return nil
	}
	return func() image.Image {
		if img := snap.Snapshot(); img != nil {
			return img
		}
		return nil
	}
}
