//go:build darwin

package window

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// NS geometry mirrors (keep alignment explicit).
type NSPoint struct {
	X float64
	Y float64
}

type NSSize struct {
	W float64
	H float64
}

type NSRect struct {
	Origin NSPoint
	Size   NSSize
}

// kCGEventSourceStateCombinedSessionState
const cgCombinedSessionState = 0

var (
	initOnce sync.Once
	initErr  error

	cgEventSourceKeyState func(int32, uint16) bool

	selAlloc                objc.SEL
	selInit                 objc.SEL
	selRelease              objc.SEL
	selScreens              objc.SEL
	selCount                objc.SEL
	selObjectAtIndex        objc.SEL
	selFrame                objc.SEL
	selMouseLocation        objc.SEL
	selSharedWorkspace      objc.SEL
	selFrontmostApplication objc.SEL
	selLocalizedName        objc.SEL
	selUTF8String           objc.SEL
)

type cocoaBackend struct {
	closed bool
}

// Open loads AppKit and CoreGraphics. Cocoa has no display handle to hold.
func Open() (Backend, error) {
	if err := ensureRuntime(); err != nil {
		return nil, err
	}
	return &cocoaBackend{}, nil
}

func (c *cocoaBackend) Close() error {
	c.closed = true
	return nil
}

func (c *cocoaBackend) DesktopSize() (int, int, error) {
	pool := newPool()
	defer pool.Send(selRelease)

	frame, ok := primaryScreenFrame()
	if !ok {
		return 0, 0, fmt.Errorf("NSScreen screens: %w", ErrQueryUnavailable)
	}
	return int(frame.Size.W), int(frame.Size.H), nil
}

// Cursor returns the mouse in screen points with a top-left origin.
// mouseLocation is measured from the bottom of the primary display, so the
// flip uses that display's height rather than the key window's screen.
func (c *cocoaBackend) Cursor() (int, int, error) {
	pool := newPool()
	defer pool.Send(selRelease)

	frame, ok := primaryScreenFrame()
	if !ok {
		return 0, 0, fmt.Errorf("NSScreen screens: %w", ErrQueryUnavailable)
	}
	pos := objc.Send[NSPoint](objc.ID(objc.GetClass("NSEvent")), selMouseLocation)
	x, y := topLeft(pos.X, pos.Y, frame.Size.H)
	return x, y, nil
}

// FocusedWindow reports the frontmost application name. Window geometry of
// other processes needs screen recording permission, so HasRect stays false.
func (c *cocoaBackend) FocusedWindow() (Info, error) {
	pool := newPool()
	defer pool.Send(selRelease)

	ws := objc.ID(objc.GetClass("NSWorkspace")).Send(selSharedWorkspace)
	if ws == 0 {
		return Info{}, ErrQueryUnavailable
	}
	app := ws.Send(selFrontmostApplication)
	if app == 0 {
		return Info{}, ErrNoWindow
	}
	name := app.Send(selLocalizedName)
	if name == 0 {
		return Info{}, fmt.Errorf("frontmost application has no name: %w", ErrQueryUnavailable)
	}
	ptr := objc.Send[uintptr](name, selUTF8String)
	return Info{Title: gostring((*byte)(unsafe.Pointer(ptr)))}, nil
}

func (c *cocoaBackend) KeyDown(key Key) bool {
	code, ok := macKeyCodes[key]
	if !ok {
		return false
	}
	return cgEventSourceKeyState(cgCombinedSessionState, code)
}

// RawKeyDown has no native translation for browser-style codes on macOS.
func (c *cocoaBackend) RawKeyDown(int) bool {
	return false
}

func newPool() objc.ID {
	return objc.ID(objc.GetClass("NSAutoreleasePool")).Send(selAlloc).Send(selInit)
}

// primaryScreenFrame returns the frame of [NSScreen screens][0], the display
// holding the menu bar and the origin of the global coordinate space.
func primaryScreenFrame() (NSRect, bool) {
	screens := objc.ID(objc.GetClass("NSScreen")).Send(selScreens)
	if screens == 0 || objc.Send[uint](screens, selCount) == 0 {
		return NSRect{}, false
	}
	screen := screens.Send(selObjectAtIndex, uint(0))
	if screen == 0 {
		return NSRect{}, false
	}
	return objc.Send[NSRect](screen, selFrame), true
}

func ensureRuntime() error {
	initOnce.Do(func() {
		if err := loadFrameworks(); err != nil {
			initErr = err
			return
		}
		loadSelectors()
	})
	return initErr
}

func loadFrameworks() error {
	if _, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_GLOBAL); err != nil {
		return err
	}
	if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL); err != nil {
		return err
	}
	cg, err := purego.Dlopen("/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics", purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	purego.RegisterLibFunc(&cgEventSourceKeyState, cg, "CGEventSourceKeyState")
	return nil
}

func loadSelectors() {
	selAlloc = objc.RegisterName("alloc")
	selInit = objc.RegisterName("init")
	selRelease = objc.RegisterName("release")
	selScreens = objc.RegisterName("screens")
	selCount = objc.RegisterName("count")
	selObjectAtIndex = objc.RegisterName("objectAtIndex:")
	selFrame = objc.RegisterName("frame")
	selMouseLocation = objc.RegisterName("mouseLocation")
	selSharedWorkspace = objc.RegisterName("sharedWorkspace")
	selFrontmostApplication = objc.RegisterName("frontmostApplication")
	selLocalizedName = objc.RegisterName("localizedName")
	selUTF8String = objc.RegisterName("UTF8String")
}

// Carbon kVK_* virtual key codes. A is 0, so absence is tracked by the map.
var macKeyCodes = map[Key]uint16{
	KeyA: 0x00, KeyS: 0x01, KeyD: 0x02, KeyF: 0x03, KeyH: 0x04, KeyG: 0x05,
	KeyZ: 0x06, KeyX: 0x07, KeyC: 0x08, KeyV: 0x09, KeyB: 0x0B, KeyQ: 0x0C,
	KeyW: 0x0D, KeyE: 0x0E, KeyR: 0x0F, KeyY: 0x10, KeyT: 0x11, KeyO: 0x1F,
	KeyU: 0x20, KeyI: 0x22, KeyP: 0x23, KeyL: 0x25, KeyJ: 0x26, KeyK: 0x28,
	KeyN: 0x2D, KeyM: 0x2E,

	KeyNum1: 0x12, KeyNum2: 0x13, KeyNum3: 0x14, KeyNum4: 0x15, KeyNum6: 0x16,
	KeyNum5: 0x17, KeyNum9: 0x19, KeyNum7: 0x1A, KeyNum8: 0x1C, KeyNum0: 0x1D,

	KeyNumpad0: 0x52, KeyNumpad1: 0x53, KeyNumpad2: 0x54, KeyNumpad3: 0x55,
	KeyNumpad4: 0x56, KeyNumpad5: 0x57, KeyNumpad6: 0x58, KeyNumpad7: 0x59,
	KeyNumpad8: 0x5B, KeyNumpad9: 0x5C,

	KeyF1: 0x7A, KeyF2: 0x78, KeyF3: 0x63, KeyF4: 0x76, KeyF5: 0x60,
	KeyF6: 0x61, KeyF7: 0x62, KeyF8: 0x64, KeyF9: 0x65, KeyF10: 0x6D,
	KeyF11: 0x67, KeyF12: 0x6F, KeyF13: 0x69, KeyF14: 0x6B, KeyF15: 0x71,

	KeyEscape:    0x35,
	KeyLControl:  0x3B,
	KeyLShift:    0x38,
	KeyLAlt:      0x3A,
	KeyLSystem:   0x37,
	KeyRControl:  0x3E,
	KeyRShift:    0x3C,
	KeyRAlt:      0x3D,
	KeyRSystem:   0x36,
	KeyMenu:      0x6E,
	KeyLBracket:  0x21,
	KeyRBracket:  0x1E,
	KeySemicolon: 0x29,
	KeyComma:     0x2B,
	KeyPeriod:    0x2F,
	KeyQuote:     0x27,
	KeySlash:     0x2C,
	KeyBackslash: 0x2A,
	KeyTilde:     0x32,
	KeyEqual:     0x18,
	KeyHyphen:    0x1B,
	KeySpace:     0x31,
	KeyEnter:     0x24,
	KeyBackspace: 0x33,
	KeyTab:       0x30,
	KeyPageUp:    0x74,
	KeyPageDown:  0x79,
	KeyEnd:       0x77,
	KeyHome:      0x73,
	KeyInsert:    0x72,
	KeyDelete:    0x75,
	KeyAdd:       0x45,
	KeySubtract:  0x4E,
	KeyMultiply:  0x43,
	KeyDivide:    0x4B,
	KeyLeft:      0x7B,
	KeyRight:     0x7C,
	KeyUp:        0x7E,
	KeyDown:      0x7D,
}
