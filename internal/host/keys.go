package host

// KeyboardKey uses raylib (GLFW) key codes.
type KeyboardKey int32

const (
	KeyNull KeyboardKey = 0

	KeyApostrophe   KeyboardKey = 39
	KeyComma        KeyboardKey = 44
	KeyMinus        KeyboardKey = 45
	KeyPeriod       KeyboardKey = 46
	KeySlash        KeyboardKey = 47
	KeyZero         KeyboardKey = 48
	KeyOne          KeyboardKey = 49
	KeyTwo          KeyboardKey = 50
	KeyThree        KeyboardKey = 51
	KeyFour         KeyboardKey = 52
	KeyFive         KeyboardKey = 53
	KeySix          KeyboardKey = 54
	KeySeven        KeyboardKey = 55
	KeyEight        KeyboardKey = 56
	KeyNine         KeyboardKey = 57
	KeySemicolon    KeyboardKey = 59
	KeyEqual        KeyboardKey = 61
	KeyA            KeyboardKey = 65
	KeyB            KeyboardKey = 66
	KeyC            KeyboardKey = 67
	KeyD            KeyboardKey = 68
	KeyE            KeyboardKey = 69
	KeyF            KeyboardKey = 70
	KeyG            KeyboardKey = 71
	KeyH            KeyboardKey = 72
	KeyI            KeyboardKey = 73
	KeyJ            KeyboardKey = 74
	KeyK            KeyboardKey = 75
	KeyL            KeyboardKey = 76
	KeyM            KeyboardKey = 77
	KeyN            KeyboardKey = 78
	KeyO            KeyboardKey = 79
	KeyP            KeyboardKey = 80
	KeyQ            KeyboardKey = 81
	KeyR            KeyboardKey = 82
	KeyS            KeyboardKey = 83
	KeyT            KeyboardKey = 84
	KeyU            KeyboardKey = 85
	KeyV            KeyboardKey = 86
	KeyW            KeyboardKey = 87
	KeyX            KeyboardKey = 88
	KeyY            KeyboardKey = 89
	KeyZ            KeyboardKey = 90
	KeyLeftBracket  KeyboardKey = 91
	KeyBackslash    KeyboardKey = 92
	KeyRightBracket KeyboardKey = 93
	KeyGrave        KeyboardKey = 96

	KeySpace        KeyboardKey = 32
	KeyEscape       KeyboardKey = 256
	KeyEnter        KeyboardKey = 257
	KeyTab          KeyboardKey = 258
	KeyBackspace    KeyboardKey = 259
	KeyInsert       KeyboardKey = 260
	KeyDelete       KeyboardKey = 261
	KeyRight        KeyboardKey = 262
	KeyLeft         KeyboardKey = 263
	KeyDown         KeyboardKey = 264
	KeyUp           KeyboardKey = 265
	KeyPageUp       KeyboardKey = 266
	KeyPageDown     KeyboardKey = 267
	KeyHome         KeyboardKey = 268
	KeyEnd          KeyboardKey = 269
	KeyCapsLock     KeyboardKey = 280
	KeyScrollLock   KeyboardKey = 281
	KeyNumLock      KeyboardKey = 282
	KeyPrintScreen  KeyboardKey = 283
	KeyPause        KeyboardKey = 284
	KeyF1           KeyboardKey = 290
	KeyF2           KeyboardKey = 291
	KeyF3           KeyboardKey = 292
	KeyF4           KeyboardKey = 293
	KeyF5           KeyboardKey = 294
	KeyF6           KeyboardKey = 295
	KeyF7           KeyboardKey = 296
	KeyF8           KeyboardKey = 297
	KeyF9           KeyboardKey = 298
	KeyF10          KeyboardKey = 299
	KeyF11          KeyboardKey = 300
	KeyF12          KeyboardKey = 301
	KeyLeftShift    KeyboardKey = 340
	KeyLeftControl  KeyboardKey = 341
	KeyLeftAlt      KeyboardKey = 342
	KeyLeftSuper    KeyboardKey = 343
	KeyRightShift   KeyboardKey = 344
	KeyRightControl KeyboardKey = 345
	KeyRightAlt     KeyboardKey = 346
	KeyRightSuper   KeyboardKey = 347
	KeyKbMenu       KeyboardKey = 348

	KeyKp0        KeyboardKey = 320
	KeyKp1        KeyboardKey = 321
	KeyKp2        KeyboardKey = 322
	KeyKp3        KeyboardKey = 323
	KeyKp4        KeyboardKey = 324
	KeyKp5        KeyboardKey = 325
	KeyKp6        KeyboardKey = 326
	KeyKp7        KeyboardKey = 327
	KeyKp8        KeyboardKey = 328
	KeyKp9        KeyboardKey = 329
	KeyKpDecimal  KeyboardKey = 330
	KeyKpDivide   KeyboardKey = 331
	KeyKpMultiply KeyboardKey = 332
	KeyKpSubtract KeyboardKey = 333
	KeyKpAdd      KeyboardKey = 334
	KeyKpEnter    KeyboardKey = 335
	KeyKpEqual    KeyboardKey = 336
)

// MaxKeyboardKey bounds key codes for array-backed key state.
const MaxKeyboardKey = 512

type MouseButton int32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonSide
	MouseButtonExtra
	MouseButtonForward
	MouseButtonBack
)

const MouseButtonCount = 7

type GamepadButton int32

const (
	GamepadButtonUnknown GamepadButton = iota
	GamepadButtonLeftFaceUp
	GamepadButtonLeftFaceRight
	GamepadButtonLeftFaceDown
	GamepadButtonLeftFaceLeft
	GamepadButtonRightFaceUp
	GamepadButtonRightFaceRight
	GamepadButtonRightFaceDown
	GamepadButtonRightFaceLeft
	GamepadButtonLeftTrigger1
	GamepadButtonLeftTrigger2
	GamepadButtonRightTrigger1
	GamepadButtonRightTrigger2
	GamepadButtonMiddleLeft
	GamepadButtonMiddle
	GamepadButtonMiddleRight
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
)

const GamepadButtonCount = 18

type GamepadAxis int32

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

const GamepadAxisCount = 6

type MouseCursor int32

const (
	MouseCursorDefault MouseCursor = iota
	MouseCursorArrow
	MouseCursorIBeam
	MouseCursorCrosshair
	MouseCursorPointingHand
	MouseCursorResizeEW
	MouseCursorResizeNS
	MouseCursorResizeNWSE
	MouseCursorResizeNESW
	MouseCursorResizeAll
	MouseCursorNotAllowed
)

func (c MouseCursor) String() string {
	names := [...]string{"default", "arrow", "ibeam", "crosshair", "pointing-hand",
		"resize-ew", "resize-ns", "resize-nwse", "resize-nesw", "resize-all", "not-allowed"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}
