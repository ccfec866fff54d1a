//go:build linux || freebsd

package window

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const (
	x11None      = 0
	x11PointerRt = 1
)

var (
	x11Once sync.Once
	x11Err  error
	x11lib  uintptr

	// Keeps the purego callback reachable for the life of the process.
	x11ErrorHandler uintptr

	xOpenDisplay          func(*byte) uintptr
	xDefaultScreen        func(uintptr) int32
	xRootWindow           func(uintptr, int32) uintptr
	xDisplayWidth         func(uintptr, int32) int32
	xDisplayHeight        func(uintptr, int32) int32
	xCloseDisplay         func(uintptr) int32
	xQueryPointer         func(uintptr, uintptr, *uintptr, *uintptr, *int32, *int32, *int32, *int32, *uint32) int32
	xGetInputFocus        func(uintptr, *uintptr, *int32) int32
	xFetchName            func(uintptr, uintptr, **byte) int32
	xFree                 func(unsafe.Pointer) int32
	xQueryTree            func(uintptr, uintptr, *uintptr, *uintptr, **uintptr, *uint32) int32
	xGetGeometry          func(uintptr, uintptr, *uintptr, *int32, *int32, *uint32, *uint32, *uint32, *uint32) int32
	xTranslateCoordinates func(uintptr, uintptr, uintptr, int32, int32, *int32, *int32, *uintptr) int32
	xKeysymToKeycode      func(uintptr, uintptr) uint8
	xQueryKeymap          func(uintptr, *byte) int32
	xSetErrorHandler      func(uintptr) uintptr
)

type x11Backend struct {
	display uintptr
	screen  int32
	root    uintptr
}

// Open connects to the X server named by $DISPLAY.
func Open() (Backend, error) {
	if err := ensureLibs(); err != nil {
		return nil, err
	}

	dpy := xOpenDisplay(nil)
	if dpy == 0 {
		return nil, errors.New("XOpenDisplay failed")
	}

	screen := xDefaultScreen(dpy)
	return &x11Backend{
		display: dpy,
		screen:  screen,
		root:    xRootWindow(dpy, screen),
	}, nil
}

func (b *x11Backend) Close() error {
	if b.display != 0 {
		xCloseDisplay(b.display)
		b.display = 0
	}
	return nil
}

func (b *x11Backend) DesktopSize() (int, int, error) {
	if b.display == 0 {
		return 0, 0, ErrQueryUnavailable
	}
	w := xDisplayWidth(b.display, b.screen)
	h := xDisplayHeight(b.display, b.screen)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("display size %dx%d: %w", w, h, ErrQueryUnavailable)
	}
	return int(w), int(h), nil
}

func (b *x11Backend) Cursor() (int, int, error) {
	if b.display == 0 {
		return 0, 0, ErrQueryUnavailable
	}
	var root, child uintptr
	var rootX, rootY, winX, winY int32
	var mask uint32
	if xQueryPointer(b.display, b.root, &root, &child, &rootX, &rootY, &winX, &winY, &mask) == 0 {
		return 0, 0, fmt.Errorf("XQueryPointer: %w", ErrQueryUnavailable)
	}
	return int(rootX), int(rootY), nil
}

func (b *x11Backend) FocusedWindow() (Info, error) {
	if b.display == 0 {
		return Info{}, ErrQueryUnavailable
	}

	var focus uintptr
	var revert int32
	xGetInputFocus(b.display, &focus, &revert)
	if focus == x11None || focus == x11PointerRt {
		return Info{}, ErrNoWindow
	}

	// The focus is often an unnamed child of the client window, so walk up
	// until a window carries a name.
	win, title := b.namedAncestor(focus)
	if win == 0 {
		return Info{}, fmt.Errorf("focused window has no name: %w", ErrQueryUnavailable)
	}

	info := Info{Title: title}

	var geomRoot uintptr
	var gx, gy int32
	var width, height, border, depth uint32
	if xGetGeometry(b.display, win, &geomRoot, &gx, &gy, &width, &height, &border, &depth) == 0 {
		return info, nil
	}

	var x, y int32
	var child uintptr
	if xTranslateCoordinates(b.display, win, b.root, 0, 0, &x, &y, &child) == 0 {
		return info, nil
	}

	info.X, info.Y = int(x), int(y)
	info.Width, info.Height = int(width), int(height)
	info.HasRect = true
	return info, nil
}

func (b *x11Backend) namedAncestor(win uintptr) (uintptr, string) {
	for win != 0 && win != b.root {
		if title, ok := b.windowName(win); ok {
			return win, title
		}

		var root, parent uintptr
		var children *uintptr
		var n uint32
		if xQueryTree(b.display, win, &root, &parent, &children, &n) == 0 {
			return 0, ""
		}
		if children != nil {
			xFree(unsafe.Pointer(children))
		}
		win = parent
	}
	return 0, ""
}

func (b *x11Backend) windowName(win uintptr) (string, bool) {
	var name *byte
	if xFetchName(b.display, win, &name) == 0 || name == nil {
		return "", false
	}
	defer xFree(unsafe.Pointer(name))

	title := gostring(name)
	return title, title != ""
}

func (b *x11Backend) KeyDown(key Key) bool {
	ks := keysymFor(key)
	if ks == 0 {
		return false
	}
	return b.keysymDown(ks)
}

// RawKeyDown treats code as a keysym, which matches the ASCII range of
// browser-style virtual key codes.
func (b *x11Backend) RawKeyDown(code int) bool {
	if code < 0 {
		return false
	}
	return b.keysymDown(uintptr(code))
}

func (b *x11Backend) keysymDown(ks uintptr) bool {
	if b.display == 0 {
		return false
	}
	keycode := xKeysymToKeycode(b.display, ks)
	if keycode == 0 {
		return false
	}

	var keys [32]byte
	xQueryKeymap(b.display, &keys[0])
	return keys[keycode/8]&(1<<(keycode%8)) != 0
}

func ensureLibs() error {
	x11Once.Do(func() {
		lib, err := purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			x11Err = fmt.Errorf("load libX11: %w", err)
			return
		}
		x11lib = lib
		registerX11()

		// Xlib aborts the process on protocol errors by default; a window
		// can vanish between the focus query and the geometry query.
		x11ErrorHandler = purego.NewCallback(func(display, event uintptr) uintptr {
			return 0
		})
		xSetErrorHandler(x11ErrorHandler)
	})
	return x11Err
}

func registerX11() {
	purego.RegisterLibFunc(&xOpenDisplay, x11lib, "XOpenDisplay")
	purego.RegisterLibFunc(&xDefaultScreen, x11lib, "XDefaultScreen")
	purego.RegisterLibFunc(&xRootWindow, x11lib, "XRootWindow")
	purego.RegisterLibFunc(&xDisplayWidth, x11lib, "XDisplayWidth")
	purego.RegisterLibFunc(&xDisplayHeight, x11lib, "XDisplayHeight")
	purego.RegisterLibFunc(&xCloseDisplay, x11lib, "XCloseDisplay")
	purego.RegisterLibFunc(&xQueryPointer, x11lib, "XQueryPointer")
	purego.RegisterLibFunc(&xGetInputFocus, x11lib, "XGetInputFocus")
	purego.RegisterLibFunc(&xFetchName, x11lib, "XFetchName")
	purego.RegisterLibFunc(&xFree, x11lib, "XFree")
	purego.RegisterLibFunc(&xQueryTree, x11lib, "XQueryTree")
	purego.RegisterLibFunc(&xGetGeometry, x11lib, "XGetGeometry")
	purego.RegisterLibFunc(&xTranslateCoordinates, x11lib, "XTranslateCoordinates")
	purego.RegisterLibFunc(&xKeysymToKeycode, x11lib, "XKeysymToKeycode")
	purego.RegisterLibFunc(&xQueryKeymap, x11lib, "XQueryKeymap")
	purego.RegisterLibFunc(&xSetErrorHandler, x11lib, "XSetErrorHandler")
}
