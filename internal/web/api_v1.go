package web

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"time"

	"github.com/rook-computer/guibridge/internal/state"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	Phase     string        `json:"phase"`
	Uptime    string        `json:"uptime,omitempty"`
	Error     string        `json:"error,omitempty"`
	Host      hostResponse  `json:"host"`
	Frame     frameResponse `json:"frame"`
	Timestamp time.Time     `json:"timestamp"`
}

type hostResponse struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FontTexture uint32 `json:"fontTexture"`
}

type frameResponse struct {
	Frames    uint64  `json:"frames"`
	Events    uint64  `json:"events"`
	DrawCalls int     `json:"drawCalls"`
	FrameTime float32 `json:"frameTime"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	mux.HandleFunc("/exit", func(w http.ResponseWriter, r *http.Request) { handleExit(w, r, deps) })
	return mux
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "guibridge diagnostics")
	fmt.Fprintln(w, "GET  /api/v1/status")
	fmt.Fprintln(w, "GET  /api/v1/frame.png")
	fmt.Fprintln(w, "POST /api/v1/exit")
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Snapshot == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "status not configured")
		return
	}
	writeJSON(w, http.StatusOK, newStatusResponse(deps.Snapshot(), time.Now()))
}

func newStatusResponse(s state.State, now time.Time) statusResponse {
	resp := statusResponse{
		Phase: s.Phase.String(),
		Host: hostResponse{
			Name:        s.Host.Name,
			Width:       s.Host.Width,
			Height:      s.Host.Height,
			FontTexture: s.Host.FontTexture,
		},
		Frame: frameResponse{
			Frames:    s.Frame.Frames,
			Events:    s.Frame.Events,
			DrawCalls: s.Frame.DrawCalls,
			FrameTime: s.Frame.FrameTime,
		},
		Timestamp: now.UTC(),
	}
	if !s.Started.IsZero() {
		resp.Uptime = now.Sub(s.Started).Truncate(time.Millisecond).String()
	}
	resp.Error = s.Err
	return resp
}

func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Frame == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "frame capture not configured")
		return
	}
	img := deps.Frame()
	if img == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "no_frame", "no frame rendered yet")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_ = png.Encode(w, img)
}

func handleExit(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Exit == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "exit not configured")
		return
	}
	if err := deps.Exit(r.Context()); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "exit_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
