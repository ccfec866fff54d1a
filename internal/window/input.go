package window

import "strconv"

// Key is a platform-independent logical key. Backends translate it to the
// native identity (X keysym, Windows virtual key, macOS key code) when asked
// whether it is held.
type Key int

const (
	KeyUnknown Key = iota

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

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	KeyEscape
	KeyLControl
	KeyLShift
	KeyLAlt
	KeyLSystem
	KeyRControl
	KeyRShift
	KeyRAlt
	KeyRSystem
	KeyMenu
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyComma
	KeyPeriod
	KeyQuote
	KeySlash
	KeyBackslash
	KeyTilde
	KeyEqual
	KeyHyphen
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

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
	KeyF13
	KeyF14
	KeyF15

	KeyPause

	keyCount
)

// KeyDash is the older name for KeyHyphen.
const KeyDash = KeyHyphen

var keyNames = [...]string{
	KeyUnknown:   "Unknown",
	KeyEscape:    "Escape",
	KeyLControl:  "LControl",
	KeyLShift:    "LShift",
	KeyLAlt:      "LAlt",
	KeyLSystem:   "LSystem",
	KeyRControl:  "RControl",
	KeyRShift:    "RShift",
	KeyRAlt:      "RAlt",
	KeyRSystem:   "RSystem",
	KeyMenu:      "Menu",
	KeyLBracket:  "LBracket",
	KeyRBracket:  "RBracket",
	KeySemicolon: "Semicolon",
	KeyComma:     "Comma",
	KeyPeriod:    "Period",
	KeyQuote:     "Quote",
	KeySlash:     "Slash",
	KeyBackslash: "Backslash",
	KeyTilde:     "Tilde",
	KeyEqual:     "Equal",
	KeyHyphen:    "Hyphen",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEnd:       "End",
	KeyHome:      "Home",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyAdd:       "Add",
	KeySubtract:  "Subtract",
	KeyMultiply:  "Multiply",
	KeyDivide:    "Divide",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPause:     "Pause",
	keyCount:     "",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyNum0 && k <= KeyNum9:
		return "Num" + strconv.Itoa(int(k-KeyNum0))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return "Numpad" + strconv.Itoa(int(k-KeyNumpad0))
	case k >= KeyF1 && k <= KeyF15:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= 0 && k < keyCount && keyNames[k] != "":
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k names a real key (not KeyUnknown, not out of range).
func (k Key) Valid() bool {
	return k > KeyUnknown && k < keyCount
}
