//go:build cimgui

package imguictx

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/rook-computer/guibridge/internal/gui"
)

var keys = map[gui.Key]imgui.Key{
	gui.KeyTab:                imgui.KeyTab,
	gui.KeyLeftArrow:          imgui.KeyLeftArrow,
	gui.KeyRightArrow:         imgui.KeyRightArrow,
	gui.KeyUpArrow:            imgui.KeyUpArrow,
	gui.KeyDownArrow:          imgui.KeyDownArrow,
	gui.KeyPageUp:             imgui.KeyPageUp,
	gui.KeyPageDown:           imgui.KeyPageDown,
	gui.KeyHome:               imgui.KeyHome,
	gui.KeyEnd:                imgui.KeyEnd,
	gui.KeyInsert:             imgui.KeyInsert,
	gui.KeyDelete:             imgui.KeyDelete,
	gui.KeyBackspace:          imgui.KeyBackspace,
	gui.KeySpace:              imgui.KeySpace,
	gui.KeyEnter:              imgui.KeyEnter,
	gui.KeyEscape:             imgui.KeyEscape,
	gui.KeyLeftCtrl:           imgui.KeyLeftCtrl,
	gui.KeyLeftShift:          imgui.KeyLeftShift,
	gui.KeyLeftAlt:            imgui.KeyLeftAlt,
	gui.KeyLeftSuper:          imgui.KeyLeftSuper,
	gui.KeyRightCtrl:          imgui.KeyRightCtrl,
	gui.KeyRightShift:         imgui.KeyRightShift,
	gui.KeyRightAlt:           imgui.KeyRightAlt,
	gui.KeyRightSuper:         imgui.KeyRightSuper,
	gui.KeyMenu:               imgui.KeyMenu,
	gui.Key0:                  imgui.Key0,
	gui.Key1:                  imgui.Key1,
	gui.Key2:                  imgui.Key2,
	gui.Key3:                  imgui.Key3,
	gui.Key4:                  imgui.Key4,
	gui.Key5:                  imgui.Key5,
	gui.Key6:                  imgui.Key6,
	gui.Key7:                  imgui.Key7,
	gui.Key8:                  imgui.Key8,
	gui.Key9:                  imgui.Key9,
	gui.KeyA:                  imgui.KeyA,
	gui.KeyB:                  imgui.KeyB,
	gui.KeyC:                  imgui.KeyC,
	gui.KeyD:                  imgui.KeyD,
	gui.KeyE:                  imgui.KeyE,
	gui.KeyF:                  imgui.KeyF,
	gui.KeyG:                  imgui.KeyG,
	gui.KeyH:                  imgui.KeyH,
	gui.KeyI:                  imgui.KeyI,
	gui.KeyJ:                  imgui.KeyJ,
	gui.KeyK:                  imgui.KeyK,
	gui.KeyL:                  imgui.KeyL,
	gui.KeyM:                  imgui.KeyM,
	gui.KeyN:                  imgui.KeyN,
	gui.KeyO:                  imgui.KeyO,
	gui.KeyP:                  imgui.KeyP,
	gui.KeyQ:                  imgui.KeyQ,
	gui.KeyR:                  imgui.KeyR,
	gui.KeyS:                  imgui.KeyS,
	gui.KeyT:                  imgui.KeyT,
	gui.KeyU:                  imgui.KeyU,
	gui.KeyV:                  imgui.KeyV,
	gui.KeyW:                  imgui.KeyW,
	gui.KeyX:                  imgui.KeyX,
	gui.KeyY:                  imgui.KeyY,
	gui.KeyZ:                  imgui.KeyZ,
	gui.KeyF1:                 imgui.KeyF1,
	gui.KeyF2:                 imgui.KeyF2,
	gui.KeyF3:                 imgui.KeyF3,
	gui.KeyF4:                 imgui.KeyF4,
	gui.KeyF5:                 imgui.KeyF5,
	gui.KeyF6:                 imgui.KeyF6,
	gui.KeyF7:                 imgui.KeyF7,
	gui.KeyF8:                 imgui.KeyF8,
	gui.KeyF9:                 imgui.KeyF9,
	gui.KeyF10:                imgui.KeyF10,
	gui.KeyF11:                imgui.KeyF11,
	gui.KeyF12:                imgui.KeyF12,
	gui.KeyApostrophe:         imgui.KeyApostrophe,
	gui.KeyComma:              imgui.KeyComma,
	gui.KeyMinus:              imgui.KeyMinus,
	gui.KeyPeriod:             imgui.KeyPeriod,
	gui.KeySlash:              imgui.KeySlash,
	gui.KeySemicolon:          imgui.KeySemicolon,
	gui.KeyEqual:              imgui.KeyEqual,
	gui.KeyLeftBracket:        imgui.KeyLeftBracket,
	gui.KeyBackslash:          imgui.KeyBackslash,
	gui.KeyRightBracket:       imgui.KeyRightBracket,
	gui.KeyGraveAccent:        imgui.KeyGraveAccent,
	gui.KeyCapsLock:           imgui.KeyCapsLock,
	gui.KeyScrollLock:         imgui.KeyScrollLock,
	gui.KeyNumLock:            imgui.KeyNumLock,
	gui.KeyPrintScreen:        imgui.KeyPrintScreen,
	gui.KeyPause:              imgui.KeyPause,
	gui.KeyKeypad0:            imgui.KeyKeypad0,
	gui.KeyKeypad1:            imgui.KeyKeypad1,
	gui.KeyKeypad2:            imgui.KeyKeypad2,
	gui.KeyKeypad3:            imgui.KeyKeypad3,
	gui.KeyKeypad4:            imgui.KeyKeypad4,
	gui.KeyKeypad5:            imgui.KeyKeypad5,
	gui.KeyKeypad6:            imgui.KeyKeypad6,
	gui.KeyKeypad7:            imgui.KeyKeypad7,
	gui.KeyKeypad8:            imgui.KeyKeypad8,
	gui.KeyKeypad9:            imgui.KeyKeypad9,
	gui.KeyKeypadDecimal:      imgui.KeyKeypadDecimal,
	gui.KeyKeypadDivide:       imgui.KeyKeypadDivide,
	gui.KeyKeypadMultiply:     imgui.KeyKeypadMultiply,
	gui.KeyKeypadSubtract:     imgui.KeyKeypadSubtract,
	gui.KeyKeypadAdd:          imgui.KeyKeypadAdd,
	gui.KeyKeypadEnter:        imgui.KeyKeypadEnter,
	gui.KeyKeypadEqual:        imgui.KeyKeypadEqual,
	gui.KeyGamepadStart:       imgui.KeyGamepadStart,
	gui.KeyGamepadBack:        imgui.KeyGamepadBack,
	gui.KeyGamepadFaceLeft:    imgui.KeyGamepadFaceLeft,
	gui.KeyGamepadFaceRight:   imgui.KeyGamepadFaceRight,
	gui.KeyGamepadFaceUp:      imgui.KeyGamepadFaceUp,
	gui.KeyGamepadFaceDown:    imgui.KeyGamepadFaceDown,
	gui.KeyGamepadDpadLeft:    imgui.KeyGamepadDpadLeft,
	gui.KeyGamepadDpadRight:   imgui.KeyGamepadDpadRight,
	gui.KeyGamepadDpadUp:      imgui.KeyGamepadDpadUp,
	gui.KeyGamepadDpadDown:    imgui.KeyGamepadDpadDown,
	gui.KeyGamepadL1:          imgui.KeyGamepadL1,
	gui.KeyGamepadR1:          imgui.KeyGamepadR1,
	gui.KeyGamepadL2:          imgui.KeyGamepadL2,
	gui.KeyGamepadR2:          imgui.KeyGamepadR2,
	gui.KeyGamepadL3:          imgui.KeyGamepadL3,
	gui.KeyGamepadR3:          imgui.KeyGamepadR3,
	gui.KeyGamepadLStickLeft:  imgui.KeyGamepadLStickLeft,
	gui.KeyGamepadLStickRight: imgui.KeyGamepadLStickRight,
	gui.KeyGamepadLStickUp:    imgui.KeyGamepadLStickUp,
	gui.KeyGamepadLStickDown:  imgui.KeyGamepadLStickDown,
	gui.KeyGamepadRStickLeft:  imgui.KeyGamepadRStickLeft,
	gui.KeyGamepadRStickRight: imgui.KeyGamepadRStickRight,
	gui.KeyGamepadRStickUp:    imgui.KeyGamepadRStickUp,
	gui.KeyGamepadRStickDown:  imgui.KeyGamepadRStickDown,
	gui.KeyModCtrl:            imgui.ModCtrl,
	gui.KeyModShift:           imgui.ModShift,
	gui.KeyModAlt:             imgui.ModAlt,
	gui.KeyModSuper:           imgui.ModSuper,
}

// imguiKey reports the Dear ImGui key for k.
func imguiKey(k gui.Key) (imgui.Key, bool) {
	key, ok := keys[k]
	return key, ok
}
