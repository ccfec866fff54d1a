//go:build linux || freebsd

package window

// X11 keysyms (X11/keysymdef.h) for the portable keys.
var keysyms = func() [keyCount]uintptr {
	var t [keyCount]uintptr
	for k := KeyA; k <= KeyZ; k++ {
		t[k] = 0x0061 + uintptr(k-KeyA)
	}
	for k := KeyNum0; k <= KeyNum9; k++ {
		t[k] = 0x0030 + uintptr(k-KeyNum0)
	}
	for k := KeyNumpad0; k <= KeyNumpad9; k++ {
		t[k] = 0xffb0 + uintptr(k-KeyNumpad0)
	}
	for k := KeyF1; k <= KeyF15; k++ {
		t[k] = 0xffbe + uintptr(k-KeyF1)
	}

	t[KeyEscape] = 0xff1b
	t[KeyLControl] = 0xffe3
	t[KeyLShift] = 0xffe1
	t[KeyLAlt] = 0xffe9
	t[KeyLSystem] = 0xffeb
	t[KeyRControl] = 0xffe4
	t[KeyRShift] = 0xffe2
	t[KeyRAlt] = 0xffea
	t[KeyRSystem] = 0xffec
	t[KeyMenu] = 0xff67
	t[KeyLBracket] = 0x005b
	t[KeyRBracket] = 0x005d
	t[KeySemicolon] = 0x003b
	t[KeyComma] = 0x002c
	t[KeyPeriod] = 0x002e
	t[KeyQuote] = 0x0027
	t[KeySlash] = 0x002f
	t[KeyBackslash] = 0x005c
	t[KeyTilde] = 0x0060
	t[KeyEqual] = 0x003d
	t[KeyHyphen] = 0x002d
	t[KeySpace] = 0x0020
	t[KeyEnter] = 0xff0d
	t[KeyBackspace] = 0xff08
	t[KeyTab] = 0xff09
	t[KeyPageUp] = 0xff55
	t[KeyPageDown] = 0xff56
	t[KeyEnd] = 0xff57
	t[KeyHome] = 0xff50
	t[KeyInsert] = 0xff63
	t[KeyDelete] = 0xffff
	t[KeyAdd] = 0xffab
	t[KeySubtract] = 0xffad
	t[KeyMultiply] = 0xffaa
	t[KeyDivide] = 0xffaf
	t[KeyLeft] = 0xff51
	t[KeyRight] = 0xff53
	t[KeyUp] = 0xff52
	t[KeyDown] = 0xff54
	t[KeyPause] = 0xff13
	return t
}()

func keysymFor(k Key) uintptr {
	if !k.Valid() {
		return 0
	}
	return keysyms[k]
}
