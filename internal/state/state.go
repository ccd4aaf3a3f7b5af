// Package state holds the frame loop's shared status: its lifecycle phase
// and running counters read by the heartbeat logger.
package state

import (
	"sync"
	"time"
)

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	STOPPED
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "BOOTING"
	case RUNNING:
		return "RUNNING"
	case STOPPED:
		return "STOPPED"
	case ERROR:
		return "ERROR"
	}
	return "UNKNOWN"
}

type FrameInfo struct {
	Frames    uint64
	Events    uint64 // GUI events queued by the backend, cumulative
	DrawCalls int    // host draw calls in the last frame
	FrameTime float32
}

type HostInfo struct {
	Name          string
	Width, Height int
	FontTexture   uint32
}

type State struct {
	Phase   Phase
	Started time.Time
	Err     string
	Host    HostInfo
	Frame   FrameInfo
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	if phase == RUNNING && store.state.Started.IsZero() {
		store.state.Started = time.Now()
	}
	store.mu.Unlock()
}

// Fail moves the store to ERROR and records err.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}

func (store *Store) UpdateHost(info HostInfo) {
	store.mu.Lock()
	store.state.Host = info
	store.mu.Unlock()
}

// RecordFrame counts one finished frame.
func (store *Store) RecordFrame(events, drawCalls int, frameTime float32) {
	store.mu.Lock()
	store.state.Frame.Frames++
	store.state.Frame.Events += uint64(events)
	store.state.Frame.DrawCalls = drawCalls
	store.state.Frame.FrameTime = frameTime
	store.mu.Unlock()
}
