package input

import (
	"github.com/rook-computer/guibridge/internal/host"
)

// AbsInfo is the reported range of an absolute axis.
type AbsInfo struct {
	Min, Max int32
}

// Caps describes a device as queried at open time.
type Caps struct {
	Name    string
	Gamepad bool
	Abs     map[uint16]AbsInfo
}

// defaultAbs is assumed for gamepad axes without a reported range.
var defaultAbs = AbsInfo{Min: -32767, Max: 32767}

// State is the per-frame input snapshot built from evdev events. Edges
// (pressed, released, wheel) last until the next BeginFrame. It is not safe
// for concurrent use; Device feeds it from the frame thread.
type State struct {
	width, height int

	devices map[int]Caps

	keyDown     [host.MaxKeyboardKey]bool
	keyPressed  [host.MaxKeyboardKey]bool
	keyReleased [host.MaxKeyboardKey]bool
	capsLock    bool
	chars       []rune

	mouseX, mouseY int
	mouseDown      [host.MouseButtonCount]bool
	mousePressed   [host.MouseButtonCount]bool
	mouseReleased  [host.MouseButtonCount]bool
	wheel          host.Vec2

	gamepads   int
	padDown    [host.GamepadButtonCount]bool
	padPressed [host.GamepadButtonCount]bool
	padRelease [host.GamepadButtonCount]bool
	axes       [host.GamepadAxisCount]float32
}

func NewState(width, height int) *State {
	return &State{width: width, height: height, devices: map[int]Caps{}}
}

// SetScreenSize bounds the pointer position.
func (s *State) SetScreenSize(width, height int) {
	s.width, s.height = width, height
	s.mouseX, s.mouseY = s.clampX(s.mouseX), s.clampY(s.mouseY)
}

// AddDevice registers the capabilities of device id.
func (s *State) AddDevice(id int, caps Caps) {
	if s.devices == nil {
		s.devices = map[int]Caps{}
	}
	if old, ok := s.devices[id]; ok && old.Gamepad {
		s.gamepads--
	}
	s.devices[id] = caps
	if caps.Gamepad {
		s.gamepads++
	}
}

// RemoveDevice forgets device id, e.g. after it was unplugged.
func (s *State) RemoveDevice(id int) {
	if caps, ok := s.devices[id]; ok {
		if caps.Gamepad {
			s.gamepads--
		}
		delete(s.devices, id)
	}
}

// BeginFrame clears the previous frame's edges, wheel motion and any typed
// characters nobody dequeued.
func (s *State) BeginFrame() {
	s.chars = s.chars[:0]
	s.keyPressed = [host.MaxKeyboardKey]bool{}
	s.keyReleased = [host.MaxKeyboardKey]bool{}
	s.mousePressed = [host.MouseButtonCount]bool{}
	s.mouseReleased = [host.MouseButtonCount]bool{}
	s.padPressed = [host.GamepadButtonCount]bool{}
	s.padRelease = [host.GamepadButtonCount]bool{}
	s.wheel = host.Vec2{}
}

// Apply folds one event into the state.
func (s *State) Apply(ev Event) {
	switch ev.Type {
	case evKey:
		s.applyKey(ev)
	case evRel:
		s.applyRel(ev)
	case evAbs:
		s.applyAbs(ev)
	}
}

func (s *State) applyKey(ev Event) {
	if k, ok := keyCodes()[ev.Code]; ok {
		s.setKey(k, ev.Value)
		return
	}
	down := ev.Value != 0
	if b, ok := mouseCodes[ev.Code]; ok {
		setButton(s.mouseDown[:], s.mousePressed[:], s.mouseReleased[:], int(b), down)
		return
	}
	if b, ok := gamepadCodes[ev.Code]; ok {
		if caps := s.devices[ev.Device]; !caps.Gamepad {
			caps.Gamepad = true
			s.AddDevice(ev.Device, caps)
		}
		setButton(s.padDown[:], s.padPressed[:], s.padRelease[:], int(b), down)
	}
}

// setKey handles press (1), repeat (2) and release (0).
func (s *State) setKey(k host.KeyboardKey, value int32) {
	switch value {
	case 0:
		if s.keyDown[k] {
			s.keyReleased[k] = true
		}
		s.keyDown[k] = false
		return
	case 1:
		if !s.keyDown[k] {
			s.keyPressed[k] = true
			if k == host.KeyCapsLock {
				s.capsLock = !s.capsLock
			}
		}
		s.keyDown[k] = true
	}

	if s.keyDown[host.KeyLeftControl] || s.keyDown[host.KeyRightControl] ||
		s.keyDown[host.KeyLeftAlt] || s.keyDown[host.KeyRightAlt] {
		return
	}
	pair, ok := usChars()[k]
	if !ok {
		return
	}
	shift := s.keyDown[host.KeyLeftShift] || s.keyDown[host.KeyRightShift]
	if k >= host.KeyA && k <= host.KeyZ && s.capsLock {
		shift = !shift
	}
	c := pair[0]
	if shift {
		c = pair[1]
	}
	s.chars = append(s.chars, c)
}

func setButton(down, pressed, released []bool, i int, isDown bool) {
	if isDown && !down[i] {
		pressed[i] = true
	}
	if !isDown && down[i] {
		released[i] = true
	}
	down[i] = isDown
}

func (s *State) applyRel(ev Event) {
	switch ev.Code {
	case relX:
		s.mouseX = s.clampX(s.mouseX + int(ev.Value))
	case relY:
		s.mouseY = s.clampY(s.mouseY + int(ev.Value))
	case relWheel:
		s.wheel.Y += float32(ev.Value)
	case relHWheel:
		s.wheel.X += float32(ev.Value)
	}
}

func (s *State) applyAbs(ev Event) {
	caps := s.devices[ev.Device]
	info, ok := caps.Abs[ev.Code]

	if !caps.Gamepad {
		// Touchscreens and tablets: map the axis range onto the screen.
		if !ok || info.Max <= info.Min {
			info = AbsInfo{Min: 0, Max: int32(max(s.width, s.height) - 1)}
		}
		switch ev.Code {
		case absX:
			s.mouseX = s.clampX(scaleAbs(ev.Value, info, s.width))
		case absY:
			s.mouseY = s.clampY(scaleAbs(ev.Value, info, s.height))
		}
		return
	}

	switch ev.Code {
	case absHat0X:
		setButton(s.padDown[:], s.padPressed[:], s.padRelease[:], int(host.GamepadButtonLeftFaceLeft), ev.Value < 0)
		setButton(s.padDown[:], s.padPressed[:], s.padRelease[:], int(host.GamepadButtonLeftFaceRight), ev.Value > 0)
		return
	case absHat0Y:
		setButton(s.padDown[:], s.padPressed[:], s.padRelease[:], int(host.GamepadButtonLeftFaceUp), ev.Value < 0)
		setButton(s.padDown[:], s.padPressed[:], s.padRelease[:], int(host.GamepadButtonLeftFaceDown), ev.Value > 0)
		return
	}
	axis, isAxis := gamepadAxes[ev.Code]
	if !isAxis {
		return
	}
	if !ok || info.Max <= info.Min {
		info = defaultAbs
	}
	s.axes[axis] = normalizeAxis(ev.Value, info)
}

// normalizeAxis maps v from info onto [-1, 1].
func normalizeAxis(v int32, info AbsInfo) float32 {
	f := 2*float32(v-info.Min)/float32(info.Max-info.Min) - 1
	return min(max(f, -1), 1)
}

func scaleAbs(v int32, info AbsInfo, size int) int {
	if size <= 1 {
		return 0
	}
	return int(int64(v-info.Min) * int64(size-1) / int64(info.Max-info.Min))
}

func (s *State) clampX(x int) int { return clamp(x, s.width) }
func (s *State) clampY(y int) int { return clamp(y, s.height) }

func clamp(v, size int) int {
	if v < 0 || size <= 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

func (s *State) IsKeyDown(k host.KeyboardKey) bool     { return inKeys(k) && s.keyDown[k] }
func (s *State) IsKeyPressed(k host.KeyboardKey) bool  { return inKeys(k) && s.keyPressed[k] }
func (s *State) IsKeyReleased(k host.KeyboardKey) bool { return inKeys(k) && s.keyReleased[k] }

func inKeys(k host.KeyboardKey) bool { return k >= 0 && k < host.MaxKeyboardKey }

// CharPressed dequeues one typed character, 0 when none are left.
func (s *State) CharPressed() rune {
	if len(s.chars) == 0 {
		return 0
	}
	c := s.chars[0]
	s.chars = s.chars[1:]
	return c
}

func (s *State) MouseX() int { return s.mouseX }
func (s *State) MouseY() int { return s.mouseY }

func (s *State) IsMouseButtonDown(b host.MouseButton) bool {
	return b >= 0 && b < host.MouseButtonCount && s.mouseDown[b]
}

func (s *State) IsMouseButtonPressed(b host.MouseButton) bool {
	return b >= 0 && b < host.MouseButtonCount && s.mousePressed[b]
}

func (s *State) IsMouseButtonReleased(b host.MouseButton) bool {
	return b >= 0 && b < host.MouseButtonCount && s.mouseReleased[b]
}

func (s *State) MouseWheelMoveV() host.Vec2 { return s.wheel }

// IsGamepadAvailable reports a gamepad in slot 0; evdev pads are merged
// into a single slot.
func (s *State) IsGamepadAvailable(gamepad int) bool { return gamepad == 0 && s.gamepads > 0 }

func (s *State) IsGamepadButtonPressed(gamepad int, b host.GamepadButton) bool {
	return s.IsGamepadAvailable(gamepad) && b >= 0 && b < host.GamepadButtonCount && s.padPressed[b]
}

func (s *State) IsGamepadButtonReleased(gamepad int, b host.GamepadButton) bool {
	return s.IsGamepadAvailable(gamepad) && b >= 0 && b < host.GamepadButtonCount && s.padRelease[b]
}

func (s *State) GamepadAxisMovement(gamepad int, axis host.GamepadAxis) float32 {
	if !s.IsGamepadAvailable(gamepad) || axis < 0 || axis >= host.GamepadAxisCount {
		return 0
	}
	return s.axes[axis]
}
