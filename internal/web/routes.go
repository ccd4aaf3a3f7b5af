package web

import (
	"context"
	"image"
	"net/http"

	"github.com/rook-computer/guibridge/internal/state"
)

// APIV1Deps are the frame loop hooks the API reads from. Nil hooks answer
// 501 Not Implemented.
type APIV1Deps struct {
	Snapshot func() state.State
	Frame    func() image.Image
	Exit     func(ctx context.Context) error
}

// RegisterAPIV1 registers the API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps APIV1Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// NewDefaultMux builds the mux served by HTTPServer: /api/v1/* for the API
// and a plain-text index at /.
func NewDefaultMux(deps APIV1Deps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	mux.HandleFunc("/", handleIndex)
	return mux
}
