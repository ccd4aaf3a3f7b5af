// Package input reads Linux evdev devices and turns their events into the
// polled per-frame keyboard, mouse and gamepad state a host exposes.
package input

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

const DefaultGlob = "/dev/input/event*"

var ErrNoDevice = errors.New("input: no input devices")

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Device merges every matching evdev node into one State. Readers run on
// their own goroutines; Poll applies what they queued on the caller's thread.
type Device struct {
	*State

	Glob   string
	Logger logger

	events  chan Event
	removed chan int
	cancel  context.CancelFunc
	group   *errgroup.Group
	once    sync.Once
}

func NewDevice(glob string, width, height int) *Device {
	if glob == "" {
		glob = DefaultGlob
	}
	return &Device{
		State:   NewState(width, height),
		Glob:    glob,
		events:  make(chan Event, 1024),
		removed: make(chan int, 16),
	}
}

// Poll starts a new frame and applies every event queued since the last call.
func (d *Device) Poll() {
	d.BeginFrame()
	// Events before removals: a reader's last event must not re-register
	// a removed pad.
events:
	for {
		select {
		case ev := <-d.events:
			d.Apply(ev)
		default:
			break events
		}
	}
	for {
		select {
		case id := <-d.removed:
			d.RemoveDevice(id)
		default:
			return
		}
	}
}

// Stop cancels the readers and waits for them to exit.
func (d *Device) Stop() error {
	var err error
	d.once.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		if d.group != nil {
			err = d.group.Wait()
		}
	})
	return err
}

func (d *Device) infof(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Infof("input", format, args...)
	}
}

func (d *Device) errorf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Errorf("input", format, args...)
	}
}
