package backend

import (
	"sync"

	"github.com/rook-computer/guibridge/internal/gui"
	"github.com/rook-computer/guibridge/internal/host"
)

// KeyMapping pairs a host key code with the GUI key it drives.
type KeyMapping struct {
	Host host.KeyboardKey
	GUI  gui.Key
}

// KeyboardMap returns the host-to-GUI key table. It is built on first use
// and must not be modified.
var KeyboardMap = sync.OnceValue(func() []KeyMapping {
	m := []KeyMapping{
		{host.KeyApostrophe, gui.KeyApostrophe},
		{host.KeyComma, gui.KeyComma},
		{host.KeyMinus, gui.KeyMinus},
		{host.KeyPeriod, gui.KeyPeriod},
		{host.KeySlash, gui.KeySlash},
		{host.KeySemicolon, gui.KeySemicolon},
		{host.KeyEqual, gui.KeyEqual},
		{host.KeySpace, gui.KeySpace},
		{host.KeyEscape, gui.KeyEscape},
		{host.KeyEnter, gui.KeyEnter},
		{host.KeyTab, gui.KeyTab},
		{host.KeyBackspace, gui.KeyBackspace},
		{host.KeyInsert, gui.KeyInsert},
		{host.KeyDelete, gui.KeyDelete},
		{host.KeyRight, gui.KeyRightArrow},
		{host.KeyLeft, gui.KeyLeftArrow},
		{host.KeyDown, gui.KeyDownArrow},
		{host.KeyUp, gui.KeyUpArrow},
		{host.KeyPageUp, gui.KeyPageUp},
		{host.KeyPageDown, gui.KeyPageDown},
		{host.KeyHome, gui.KeyHome},
		{host.KeyEnd, gui.KeyEnd},
		{host.KeyCapsLock, gui.KeyCapsLock},
		{host.KeyScrollLock, gui.KeyScrollLock},
		{host.KeyNumLock, gui.KeyNumLock},
		{host.KeyPrintScreen, gui.KeyPrintScreen},
		{host.KeyPause, gui.KeyPause},
		{host.KeyLeftShift, gui.KeyLeftShift},
		{host.KeyLeftControl, gui.KeyLeftCtrl},
		{host.KeyLeftAlt, gui.KeyLeftAlt},
		{host.KeyLeftSuper, gui.KeyLeftSuper},
		{host.KeyRightShift, gui.KeyRightShift},
		{host.KeyRightControl, gui.KeyRightCtrl},
		{host.KeyRightAlt, gui.KeyRightAlt},
		{host.KeyRightSuper, gui.KeyRightSuper},
		{host.KeyKbMenu, gui.KeyMenu},
		{host.KeyLeftBracket, gui.KeyLeftBracket},
		{host.KeyBackslash, gui.KeyBackslash},
		{host.KeyRightBracket, gui.KeyRightBracket},
		{host.KeyGrave, gui.KeyGraveAccent},
		{host.KeyKpDecimal, gui.KeyKeypadDecimal},
		{host.KeyKpDivide, gui.KeyKeypadDivide},
		{host.KeyKpMultiply, gui.KeyKeypadMultiply},
		{host.KeyKpSubtract, gui.KeyKeypadSubtract},
		{host.KeyKpAdd, gui.KeyKeypadAdd},
		{host.KeyKpEnter, gui.KeyKeypadEnter},
		{host.KeyKpEqual, gui.KeyKeypadEqual},
	}
	// Contiguous ranges share the same ordering on both sides.
	for i := 0; i < 10; i++ {
		m = append(m,
			KeyMapping{host.KeyZero + host.KeyboardKey(i), gui.Key0 + gui.Key(i)},
			KeyMapping{host.KeyKp0 + host.KeyboardKey(i), gui.KeyKeypad0 + gui.Key(i)})
	}
	for i := 0; i < 26; i++ {
		m = append(m, KeyMapping{host.KeyA + host.KeyboardKey(i), gui.KeyA + gui.Key(i)})
	}
	for i := 0; i < 12; i++ {
		m = append(m, KeyMapping{host.KeyF1 + host.KeyboardKey(i), gui.KeyF1 + gui.Key(i)})
	}
	return m
})

// LookupKey translates a single host key.
func LookupKey(k host.KeyboardKey) (gui.Key, bool) {
	key, ok := keyIndex()[k]
	return key, ok
}

var keyIndex = sync.OnceValue(func() map[host.KeyboardKey]gui.Key {
	table := KeyboardMap()
	index := make(map[host.KeyboardKey]gui.Key, len(table))
	for _, m := range table {
		index[m.Host] = m.GUI
	}
	return index
})

// MouseCursorMap is indexed by gui.MouseCursor ordinal.
var MouseCursorMap = [gui.MouseCursorCount]host.MouseCursor{
	gui.MouseCursorArrow:      host.MouseCursorArrow,
	gui.MouseCursorTextInput:  host.MouseCursorIBeam,
	gui.MouseCursorResizeAll:  host.MouseCursorResizeAll,
	gui.MouseCursorResizeNS:   host.MouseCursorResizeNS,
	gui.MouseCursorResizeEW:   host.MouseCursorResizeEW,
	gui.MouseCursorResizeNESW: host.MouseCursorResizeNESW,
	gui.MouseCursorResizeNWSE: host.MouseCursorResizeNWSE,
	gui.MouseCursorHand:       host.MouseCursorPointingHand,
	gui.MouseCursorNotAllowed: host.MouseCursorNotAllowed,
}

// hostCursor maps a GUI cursor, falling back to the default shape for
// anything outside the table.
func hostCursor(c gui.MouseCursor) host.MouseCursor {
	if c < 0 || int(c) >= len(MouseCursorMap) {
		return host.MouseCursorDefault
	}
	return MouseCursorMap[c]
}

var mouseButtons = [gui.MouseButtonCount]struct {
	host host.MouseButton
	gui  gui.MouseButton
}{
	{host.MouseButtonLeft, gui.MouseButtonLeft},
	{host.MouseButtonRight, gui.MouseButtonRight},
	{host.MouseButtonMiddle, gui.MouseButtonMiddle},
	{host.MouseButtonForward, gui.MouseButtonExtra1},
	{host.MouseButtonBack, gui.MouseButtonExtra2},
}

var gamepadButtons = [...]struct {
	host host.GamepadButton
	gui  gui.Key
}{
	{host.GamepadButtonLeftFaceUp, gui.KeyGamepadDpadUp},
	{host.GamepadButtonLeftFaceRight, gui.KeyGamepadDpadRight},
	{host.GamepadButtonLeftFaceDown, gui.KeyGamepadDpadDown},
	{host.GamepadButtonLeftFaceLeft, gui.KeyGamepadDpadLeft},
	{host.GamepadButtonRightFaceUp, gui.KeyGamepadFaceUp},
	{host.GamepadButtonRightFaceRight, gui.KeyGamepadFaceRight},
	{host.GamepadButtonRightFaceDown, gui.KeyGamepadFaceDown},
	{host.GamepadButtonRightFaceLeft, gui.KeyGamepadFaceLeft},
	{host.GamepadButtonLeftTrigger1, gui.KeyGamepadL1},
	{host.GamepadButtonLeftTrigger2, gui.KeyGamepadL2},
	{host.GamepadButtonRightTrigger1, gui.KeyGamepadR1},
	{host.GamepadButtonRightTrigger2, gui.KeyGamepadR2},
	{host.GamepadButtonLeftThumb, gui.KeyGamepadL3},
	{host.GamepadButtonRightThumb, gui.KeyGamepadR3},
	{host.GamepadButtonMiddleRight, gui.KeyGamepadStart},
	{host.GamepadButtonMiddleLeft, gui.KeyGamepadBack},
}

var gamepadSticks = [...]struct {
	axis     host.GamepadAxis
	neg, pos gui.Key
}{
	{host.GamepadAxisLeftX, gui.KeyGamepadLStickLeft, gui.KeyGamepadLStickRight},
	{host.GamepadAxisLeftY, gui.KeyGamepadLStickUp, gui.KeyGamepadLStickDown},
	{host.GamepadAxisRightX, gui.KeyGamepadRStickLeft, gui.KeyGamepadRStickRight},
	{host.GamepadAxisRightY, gui.KeyGamepadRStickUp, gui.KeyGamepadRStickDown},
}
