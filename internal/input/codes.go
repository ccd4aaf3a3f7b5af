package input

import (
	"sync"

	"github.com/rook-computer/guibridge/internal/host"
)

// Linux input-event-codes.h
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	relX      = 0x00
	relY      = 0x01
	relHWheel = 0x06
	relWheel  = 0x08

	absX     = 0x00
	absY     = 0x01
	absZ     = 0x02
	absRX    = 0x03
	absRY    = 0x04
	absRZ    = 0x05
	absHat0X = 0x10
	absHat0Y = 0x11
	absCount = 0x40

	keyCapsLock = 58

	btnLeft    = 0x110
	btnRight   = 0x111
	btnMiddle  = 0x112
	btnSide    = 0x113
	btnExtra   = 0x114
	btnForward = 0x115
	btnBack    = 0x116

	btnSouth  = 0x130
	btnEast   = 0x131
	btnNorth  = 0x133
	btnWest   = 0x134
	btnTL     = 0x136
	btnTR     = 0x137
	btnTL2    = 0x138
	btnTR2    = 0x139
	btnSelect = 0x13a
	btnStart  = 0x13b
	btnMode   = 0x13c
	btnThumbL = 0x13d
	btnThumbR = 0x13e

	btnDpadUp    = 0x220
	btnDpadDown  = 0x221
	btnDpadLeft  = 0x222
	btnDpadRight = 0x223

	keyMax = 0x2ff
)

// Event is one decoded input_event record tagged with the index of the
// device that produced it.
type Event struct {
	Device int
	Type   uint16
	Code   uint16
	Value  int32
}

// keyCodes maps evdev key codes to host keys.
var keyCodes = sync.OnceValue(func() map[uint16]host.KeyboardKey {
	m := map[uint16]host.KeyboardKey{
		1:  host.KeyEscape,
		11: host.KeyZero,
		12: host.KeyMinus,
		13: host.KeyEqual,
		14: host.KeyBackspace,
		15: host.KeyTab,
		26: host.KeyLeftBracket,
		27: host.KeyRightBracket,
		28: host.KeyEnter,
		29: host.KeyLeftControl,
		39: host.KeySemicolon,
		40: host.KeyApostrophe,
		41: host.KeyGrave,
		42: host.KeyLeftShift,
		43: host.KeyBackslash,
		51: host.KeyComma,
		52: host.KeyPeriod,
		53: host.KeySlash,
		54: host.KeyRightShift,
		55: host.KeyKpMultiply,
		56: host.KeyLeftAlt,
		57: host.KeySpace,
		58: host.KeyCapsLock,
		69: host.KeyNumLock,
		70: host.KeyScrollLock,
		71: host.KeyKp7,
		72: host.KeyKp8,
		73: host.KeyKp9,
		74: host.KeyKpSubtract,
		75: host.KeyKp4,
		76: host.KeyKp5,
		77: host.KeyKp6,
		78: host.KeyKpAdd,
		79: host.KeyKp1,
		80: host.KeyKp2,
		81: host.KeyKp3,
		82: host.KeyKp0,
		83: host.KeyKpDecimal,
		87: host.KeyF11,
		88: host.KeyF12,
		96: host.KeyKpEnter,
		97: host.KeyRightControl,
		98: host.KeyKpDivide,
		99: host.KeyPrintScreen,

		100: host.KeyRightAlt,
		102: host.KeyHome,
		103: host.KeyUp,
		104: host.KeyPageUp,
		105: host.KeyLeft,
		106: host.KeyRight,
		107: host.KeyEnd,
		108: host.KeyDown,
		109: host.KeyPageDown,
		110: host.KeyInsert,
		111: host.KeyDelete,
		117: host.KeyKpEqual,
		119: host.KeyPause,
		125: host.KeyLeftSuper,
		126: host.KeyRightSuper,
		127: host.KeyKbMenu,
	}
	// KEY_1..KEY_9
	for i := 0; i < 9; i++ {
		m[uint16(2+i)] = host.KeyOne + host.KeyboardKey(i)
	}
	for code, letters := range map[uint16]string{16: "QWERTYUIOP", 30: "ASDFGHJKL", 44: "ZXCVBNM"} {
		for i, c := range letters {
			m[code+uint16(i)] = host.KeyboardKey(c)
		}
	}
	// KEY_F1..KEY_F10
	for i := 0; i < 10; i++ {
		m[uint16(59+i)] = host.KeyF1 + host.KeyboardKey(i)
	}
	return m
})

// usChars is the US layout: unshifted and shifted rune per host key.
var usChars = sync.OnceValue(func() map[host.KeyboardKey][2]rune {
	m := map[host.KeyboardKey][2]rune{
		host.KeySpace:        {' ', ' '},
		host.KeyApostrophe:   {'\'', '"'},
		host.KeyComma:        {',', '<'},
		host.KeyMinus:        {'-', '_'},
		host.KeyPeriod:       {'.', '>'},
		host.KeySlash:        {'/', '?'},
		host.KeySemicolon:    {';', ':'},
		host.KeyEqual:        {'=', '+'},
		host.KeyLeftBracket:  {'[', '{'},
		host.KeyBackslash:    {'\\', '|'},
		host.KeyRightBracket: {']', '}'},
		host.KeyGrave:        {'`', '~'},
		host.KeyKpDecimal:    {'.', '.'},
		host.KeyKpDivide:     {'/', '/'},
		host.KeyKpMultiply:   {'*', '*'},
		host.KeyKpSubtract:   {'-', '-'},
		host.KeyKpAdd:        {'+', '+'},
		host.KeyKpEqual:      {'=', '='},
	}
	shiftedDigits := ")!@#$%^&*("
	for i := 0; i < 10; i++ {
		m[host.KeyZero+host.KeyboardKey(i)] = [2]rune{rune('0' + i), rune(shiftedDigits[i])}
		m[host.KeyKp0+host.KeyboardKey(i)] = [2]rune{rune('0' + i), rune('0' + i)}
	}
	for c := 'A'; c <= 'Z'; c++ {
		m[host.KeyboardKey(c)] = [2]rune{c + ('a' - 'A'), c}
	}
	return m
})

var mouseCodes = map[uint16]host.MouseButton{
	btnLeft:    host.MouseButtonLeft,
	btnRight:   host.MouseButtonRight,
	btnMiddle:  host.MouseButtonMiddle,
	btnSide:    host.MouseButtonSide,
	btnExtra:   host.MouseButtonExtra,
	btnForward: host.MouseButtonForward,
	btnBack:    host.MouseButtonBack,
}

var gamepadCodes = map[uint16]host.GamepadButton{
	btnSouth:     host.GamepadButtonRightFaceDown,
	btnEast:      host.GamepadButtonRightFaceRight,
	btnNorth:     host.GamepadButtonRightFaceUp,
	btnWest:      host.GamepadButtonRightFaceLeft,
	btnTL:        host.GamepadButtonLeftTrigger1,
	btnTR:        host.GamepadButtonRightTrigger1,
	btnTL2:       host.GamepadButtonLeftTrigger2,
	btnTR2:       host.GamepadButtonRightTrigger2,
	btnSelect:    host.GamepadButtonMiddleLeft,
	btnStart:     host.GamepadButtonMiddleRight,
	btnMode:      host.GamepadButtonMiddle,
	btnThumbL:    host.GamepadButtonLeftThumb,
	btnThumbR:    host.GamepadButtonRightThumb,
	btnDpadUp:    host.GamepadButtonLeftFaceUp,
	btnDpadDown:  host.GamepadButtonLeftFaceDown,
	btnDpadLeft:  host.GamepadButtonLeftFaceLeft,
	btnDpadRight: host.GamepadButtonLeftFaceRight,
}

var gamepadAxes = map[uint16]host.GamepadAxis{
	absX:  host.GamepadAxisLeftX,
	absY:  host.GamepadAxisLeftY,
	absRX: host.GamepadAxisRightX,
	absRY: host.GamepadAxisRightY,
	absZ:  host.GamepadAxisLeftTrigger,
	absRZ: host.GamepadAxisRightTrigger,
}
