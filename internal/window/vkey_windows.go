//go:build windows

package window

// Windows virtual-key codes for the portable keys.
var virtualKeys = func() [keyCount]uintptr {
	var t [keyCount]uintptr
	for k := KeyA; k <= KeyZ; k++ {
		t[k] = 0x41 + uintptr(k-KeyA)
	}
	for k := KeyNum0; k <= KeyNum9; k++ {
		t[k] = 0x30 + uintptr(k-KeyNum0)
	}
	for k := KeyNumpad0; k <= KeyNumpad9; k++ {
		t[k] = 0x60 + uintptr(k-KeyNumpad0)
	}
	for k := KeyF1; k <= KeyF15; k++ {
		t[k] = 0x70 + uintptr(k-KeyF1)
	}

	t[KeyEscape] = 0x1B
	t[KeyLControl] = 0xA2
	t[KeyLShift] = 0xA0
	t[KeyLAlt] = 0xA4
	t[KeyLSystem] = 0x5B
	t[KeyRControl] = 0xA3
	t[KeyRShift] = 0xA1
	t[KeyRAlt] = 0xA5
	t[KeyRSystem] = 0x5C
	t[KeyMenu] = 0x5D
	t[KeyLBracket] = 0xDB
	t[KeyRBracket] = 0xDD
	t[KeySemicolon] = 0xBA
	t[KeyComma] = 0xBC
	t[KeyPeriod] = 0xBE
	t[KeyQuote] = 0xDE
	t[KeySlash] = 0xBF
	t[KeyBackslash] = 0xDC
	t[KeyTilde] = 0xC0
	t[KeyEqual] = 0xBB
	t[KeyHyphen] = 0xBD
	t[KeySpace] = 0x20
	t[KeyEnter] = 0x0D
	t[KeyBackspace] = 0x08
	t[KeyTab] = 0x09
	t[KeyPageUp] = 0x21
	t[KeyPageDown] = 0x22
	t[KeyEnd] = 0x23
	t[KeyHome] = 0x24
	t[KeyInsert] = 0x2D
	t[KeyDelete] = 0x2E
	t[KeyAdd] = 0x6B
	t[KeySubtract] = 0x6D
	t[KeyMultiply] = 0x6A
	t[KeyDivide] = 0x6F
	t[KeyLeft] = 0x25
	t[KeyRight] = 0x27
	t[KeyUp] = 0x26
	t[KeyDown] = 0x28
	t[KeyPause] = 0x13
	return t
}()

func virtualKeyFor(k Key) uintptr {
	if !k.Valid() {
		return 0
	}
	return virtualKeys[k]
}
