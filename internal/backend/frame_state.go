package backend

import "github.com/rook-computer/guibridge/internal/host"

// FrameState is what the previous frame reported for the focus and modifier
// channels. Only changes against it produce events.
type FrameState struct {
	WindowFocused bool
	Ctrl          bool
	Shift         bool
	Alt           bool
	Super         bool
}

func NewFrameState(w host.Window) FrameState {
	return FrameState{WindowFocused: w.IsWindowFocused()}
}
