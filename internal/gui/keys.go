package gui

import "strconv"

// Key identifies a keyboard key, gamepad input or modifier in the GUI input
// protocol.
type Key int

const (
	KeyNone Key = iota

	KeyTab
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftSuper
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual

	// Gamepad keys, named after the Xbox layout.
	KeyGamepadStart
	KeyGamepadBack
	KeyGamepadFaceLeft
	KeyGamepadFaceRight
	KeyGamepadFaceUp
	KeyGamepadFaceDown
	KeyGamepadDpadLeft
	KeyGamepadDpadRight
	KeyGamepadDpadUp
	KeyGamepadDpadDown
	KeyGamepadL1
	KeyGamepadR1
	KeyGamepadL2
	KeyGamepadR2
	KeyGamepadL3
	KeyGamepadR3
	KeyGamepadLStickLeft
	KeyGamepadLStickRight
	KeyGamepadLStickUp
	KeyGamepadLStickDown
	KeyGamepadRStickLeft
	KeyGamepadRStickRight
	KeyGamepadRStickUp
	KeyGamepadRStickDown

	// Modifier state keys. These are reported as aggregate left+right state.
	KeyModCtrl
	KeyModShift
	KeyModAlt
	KeyModSuper

	keyCount
)

// KeyCount is the number of defined keys, KeyNone included.
const KeyCount = int(keyCount)

var keyNames = map[Key]string{
	KeyNone: "None", KeyTab: "Tab", KeyLeftArrow: "LeftArrow", KeyRightArrow: "RightArrow",
	KeyUpArrow: "UpArrow", KeyDownArrow: "DownArrow", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyHome: "Home", KeyEnd: "End", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyBackspace: "Backspace", KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Escape",
	KeyLeftCtrl: "LeftCtrl", KeyLeftShift: "LeftShift", KeyLeftAlt: "LeftAlt", KeyLeftSuper: "LeftSuper",
	KeyRightCtrl: "RightCtrl", KeyRightShift: "RightShift", KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper",
	KeyMenu: "Menu", KeyApostrophe: "Apostrophe", KeyComma: "Comma", KeyMinus: "Minus",
	KeyPeriod: "Period", KeySlash: "Slash", KeySemicolon: "Semicolon", KeyEqual: "Equal",
	KeyLeftBracket: "LeftBracket", KeyBackslash: "Backslash", KeyRightBracket: "RightBracket",
	KeyGraveAccent: "GraveAccent", KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock",
	KeyNumLock: "NumLock", KeyPrintScreen: "PrintScreen", KeyPause: "Pause",
	KeyKeypadDecimal: "KeypadDecimal", KeyKeypadDivide: "KeypadDivide", KeyKeypadMultiply: "KeypadMultiply",
	KeyKeypadSubtract: "KeypadSubtract", KeyKeypadAdd: "KeypadAdd", KeyKeypadEnter: "KeypadEnter",
	KeyKeypadEqual: "KeypadEqual",
	KeyGamepadStart: "GamepadStart", KeyGamepadBack: "GamepadBack",
	KeyGamepadFaceLeft: "GamepadFaceLeft", KeyGamepadFaceRight: "GamepadFaceRight",
	KeyGamepadFaceUp: "GamepadFaceUp", KeyGamepadFaceDown: "GamepadFaceDown",
	KeyGamepadDpadLeft: "GamepadDpadLeft", KeyGamepadDpadRight: "GamepadDpadRight",
	KeyGamepadDpadUp: "GamepadDpadUp", KeyGamepadDpadDown: "GamepadDpadDown",
	KeyGamepadL1: "GamepadL1", KeyGamepadR1: "GamepadR1", KeyGamepadL2: "GamepadL2", KeyGamepadR2: "GamepadR2",
	KeyGamepadL3: "GamepadL3", KeyGamepadR3: "GamepadR3",
	KeyGamepadLStickLeft: "GamepadLStickLeft", KeyGamepadLStickRight: "GamepadLStickRight",
	KeyGamepadLStickUp: "GamepadLStickUp", KeyGamepadLStickDown: "GamepadLStickDown",
	KeyGamepadRStickLeft: "GamepadRStickLeft", KeyGamepadRStickRight: "GamepadRStickRight",
	KeyGamepadRStickUp: "GamepadRStickUp", KeyGamepadRStickDown: "GamepadRStickDown",
	KeyModCtrl: "ModCtrl", KeyModShift: "ModShift", KeyModAlt: "ModAlt", KeyModSuper: "ModSuper",
}

func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= KeyKeypad0 && k <= KeyKeypad9:
		return "Keypad" + strconv.Itoa(int(k-KeyKeypad0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// IsGamepad reports whether k is one of the gamepad keys.
func (k Key) IsGamepad() bool {
	return k >= KeyGamepadStart && k <= KeyGamepadRStickDown
}

// IsModifier reports whether k is one of the aggregate modifier keys.
func (k Key) IsModifier() bool {
	return k >= KeyModCtrl && k <= KeyModSuper
}

// MouseButton is a mouse button index in the GUI input protocol.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonExtra1
	MouseButtonExtra2
)

// MouseButtonCount is the number of mouse buttons the protocol tracks.
const MouseButtonCount = 5

// MouseCursor is the cursor shape requested by the GUI.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorNotAllowed
)

// MouseCursorCount is the number of visible cursor shapes.
const MouseCursorCount = 9

func (c MouseCursor) String() string {
	switch c {
	case MouseCursorNone:
		return "None"
	case MouseCursorArrow:
		return "Arrow"
	case MouseCursorTextInput:
		return "TextInput"
	case MouseCursorResizeAll:
		return "ResizeAll"
	case MouseCursorResizeNS:
		return "ResizeNS"
	case MouseCursorResizeEW:
		return "ResizeEW"
	case MouseCursorResizeNESW:
		return "ResizeNESW"
	case MouseCursorResizeNWSE:
		return "ResizeNWSE"
	case MouseCursorHand:
		return "Hand"
	case MouseCursorNotAllowed:
		return "NotAllowed"
	}
	return "MouseCursor(" + strconv.Itoa(int(c)) + ")"
}

// BackendFlags advertise what the platform backend supports.
type BackendFlags uint32

const (
	BackendFlagsHasGamepad BackendFlags = 1 << iota
	BackendFlagsHasMouseCursors
	BackendFlagsHasSetMousePos
)

// ConfigFlags are set by the application to configure the GUI.
type ConfigFlags uint32

const (
	ConfigFlagsNavEnableKeyboard ConfigFlags = 1 << iota
	ConfigFlagsNavEnableGamepad
	ConfigFlagsNoMouseCursorChange
)
