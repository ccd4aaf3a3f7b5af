package gui

import "fmt"

type Vec2 struct{ X, Y float32 }

// Vec4 holds a rectangle as (min x, min y, max x, max y) when used as a clip rect.
type Vec4 struct{ X, Y, Z, W float32 }

type EventKind int

const (
	EventFocus EventKind = iota
	EventKey
	EventText
	EventMousePos
	EventMouseButton
	EventMouseWheel
)

func (k EventKind) String() string {
	switch k {
	case EventFocus:
		return "focus"
	case EventKey:
		return "key"
	case EventText:
		return "text"
	case EventMousePos:
		return "mouse-pos"
	case EventMouseButton:
		return "mouse-button"
	case EventMouseWheel:
		return "mouse-wheel"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one queued input event. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// EventFocus, EventKey, EventMouseButton
	Down bool

	// EventKey
	Key    Key
	Analog float32

	// EventText
	Char rune

	// EventMousePos, EventMouseWheel
	Pos Vec2

	// EventMouseButton
	Button MouseButton
}

func (e Event) String() string {
	switch e.Kind {
	case EventFocus:
		return fmt.Sprintf("focus(%t)", e.Down)
	case EventKey:
		if e.Key.IsGamepad() {
			return fmt.Sprintf("key(%s, %t, %.3f)", e.Key, e.Down, e.Analog)
		}
		return fmt.Sprintf("key(%s, %t)", e.Key, e.Down)
	case EventText:
		return fmt.Sprintf("text(%q)", e.Char)
	case EventMousePos:
		return fmt.Sprintf("mouse-pos(%.1f, %.1f)", e.Pos.X, e.Pos.Y)
	case EventMouseButton:
		return fmt.Sprintf("mouse-button(%d, %t)", e.Button, e.Down)
	case EventMouseWheel:
		return fmt.Sprintf("mouse-wheel(%.2f, %.2f)", e.Pos.X, e.Pos.Y)
	}
	return e.Kind.String()
}

// IO is the per-context configuration and input channel shared between the
// GUI and its platform backend.
type IO struct {
	DisplaySize             Vec2
	DisplayFramebufferScale Vec2
	DeltaTime               float32

	BackendFlags        BackendFlags
	ConfigFlags         ConfigFlags
	BackendPlatformName string

	// MousePos is the position the GUI wants the OS cursor moved to when
	// WantSetMousePos is set.
	MousePos        Vec2
	MouseDrawCursor bool

	WantCaptureKeyboard bool
	WantTextInput       bool
	WantSetMousePos     bool

	events []Event
}

func (io *IO) AddFocusEvent(focused bool) {
	io.events = append(io.events, Event{Kind: EventFocus, Down: focused})
}

func (io *IO) AddKeyEvent(key Key, down bool) {
	var analog float32
	if down {
		analog = 1
	}
	io.events = append(io.events, Event{Kind: EventKey, Key: key, Down: down, Analog: analog})
}

func (io *IO) AddKeyAnalogEvent(key Key, down bool, value float32) {
	io.events = append(io.events, Event{Kind: EventKey, Key: key, Down: down, Analog: value})
}

// AddInputCharacter queues text input. Zero is ignored.
func (io *IO) AddInputCharacter(c rune) {
	if c == 0 {
		return
	}
	io.events = append(io.events, Event{Kind: EventText, Char: c})
}

func (io *IO) AddMousePosEvent(pos Vec2) {
	io.events = append(io.events, Event{Kind: EventMousePos, Pos: pos})
}

func (io *IO) AddMouseButtonEvent(button MouseButton, down bool) {
	io.events = append(io.events, Event{Kind: EventMouseButton, Button: button, Down: down})
}

func (io *IO) AddMouseWheelEvent(wheel Vec2) {
	io.events = append(io.events, Event{Kind: EventMouseWheel, Pos: wheel})
}

// Events returns the queued events without consuming them.
func (io *IO) Events() []Event { return io.events }

// DrainEvents returns the queued events and clears the queue.
func (io *IO) DrainEvents() []Event {
	events := io.events
	io.events = nil
	return events
}

func (io *IO) HasBackendFlags(flags BackendFlags) bool { return io.BackendFlags&flags == flags }
func (io *IO) HasConfigFlags(flags ConfigFlags) bool   { return io.ConfigFlags&flags == flags }
