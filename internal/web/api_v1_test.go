package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rook-computer/guibridge/internal/state"
)

func TestStatus(t *testing.T) {
	store := state.NewStore()
	store.UpdateHost(state.HostInfo{Name: "fb", Width: 320, Height: 200, FontTexture: 2})
	store.SetPhase(state.RUNNING)
	store.RecordFrame(3, 1, 0.016)

	mux := NewDefaultMux(APIV1Deps{Snapshot: store.Snapshot})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	var got statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Phase != "RUNNING" || got.Host.Name != "fb" || got.Host.Width != 320 {
		t.Errorf("status = %+v", got)
	}
	if got.Frame.Frames != 1 || got.Frame.Events != 3 || got.Frame.DrawCalls != 1 {
		t.Errorf("frame = %+v", got.Frame)
	}
	if got.Uptime == "" {
		t.Error("uptime missing for a running store")
	}
}

func TestStatusResponseCarriesError(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := newStatusResponse(state.State{Phase: state.ERROR, Err: "boom"}, now)
	if resp.Error != "boom" || resp.Phase != "ERROR" || resp.Uptime != "" {
		t.Errorf("response = %+v", resp)
	}
	if !resp.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v", resp.Timestamp)
	}
}

func TestFramePNG(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 4, 2))
	canvas.Set(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	var frame image.Image
	mux := NewDefaultMux(APIV1Deps{Frame: func() image.Image { return frame }})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("before first frame: code = %d", rec.Code)
	}

	frame = canvas
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("code = %d, content type = %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != canvas.Bounds() {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0xFFFF {
		t.Errorf("pixel (1,1) red = %#x", r)
	}
}

func TestExit(t *testing.T) {
	calls := 0
	var fail error
	mux := NewDefaultMux(APIV1Deps{Exit: func(ctx context.Context) error {
		calls++
		return fail
	}})

	tests := []struct {
		method string
		fail   error
		want   int
	}{
		{http.MethodGet, nil, http.StatusMethodNotAllowed},
		{http.MethodPost, nil, http.StatusAccepted},
		{http.MethodPost, errors.New("busy"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		fail = tt.fail
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/v1/exit", nil))
		if rec.Code != tt.want {
			t.Errorf("%s /exit (fail=%v) = %d, want %d", tt.method, tt.fail, rec.Code, tt.want)
		}
	}
	if calls != 2 {
		t.Errorf("exit hook called %d times, want 2", calls)
	}
}

func TestUnconfiguredHooks(t *testing.T) {
	mux := NewDefaultMux(APIV1Deps{})
	for _, path := range []string{"/api/v1/status", "/api/v1/frame.png"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotImplemented {
			t.Errorf("GET %s = %d, want 501", path, rec.Code)
		}
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /missing = %d", rec.Code)
	}
}

func TestDevCORS(t *testing.T) {
	h := WithDevCORS(NewDefaultMux(APIV1Deps{}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/status", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow origin = %q", got)
	}
}

func TestServerConfigFromLookup(t *testing.T) {
	env := map[string]string{EnvDevMode: "yes"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	if _, err := serverConfigFromLookup(lookup, ""); err == nil {
		t.Error("invalid dev mode accepted")
	}

	env = map[string]string{EnvDevMode: "true"}
	cfg, err := serverConfigFromLookup(lookup, ":8080")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":8080" || !cfg.DevMode {
		t.Errorf("cfg = %+v", cfg)
	}

	env = map[string]string{EnvListenAddr: ""}
	if cfg, _ := serverConfigFromLookup(lookup, ":8080"); cfg.ListenAddr != "" {
		t.Errorf("explicit empty listen addr not honored: %+v", cfg)
	}
}

func TestHTTPServerLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, APIV1Deps{Snapshot: state.NewStore().Snapshot})
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Get("http://" + s.ListenAddr() + "/api/v1/status")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status code = %d", resp.StatusCode)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("stop: %v", err)
	}
	if err := s.Start(ctx); err == nil {
		t.Error("restart after stop succeeded")
	}
}
