//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// High-order bit of GetAsyncKeyState.
const keyDownMask = 0x8000

type point struct {
	x int32
	y int32
}

type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	procGetWindowTextLength = user32.NewProc("GetWindowTextLengthW")
	procGetWindowText       = user32.NewProc("GetWindowTextW")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
	procGetDesktopWindow    = user32.NewProc("GetDesktopWindow")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
)

func mustFindProc(p *windows.LazyProc) error {
	if err := p.Find(); err != nil {
		return fmt.Errorf("missing procedure %q: %w", p.Name, err)
	}
	return nil
}

func validateProcs() error {
	procs := []*windows.LazyProc{
		procGetForegroundWindow,
		procGetWindowTextLength,
		procGetWindowText,
		procGetWindowRect,
		procGetDesktopWindow,
		procGetCursorPos,
		procGetAsyncKeyState,
	}
	for _, p := range procs {
		if err := mustFindProc(p); err != nil {
			return err
		}
	}
	return nil
}

func winErr(op string, err error) error {
	if errno, ok := err.(windows.Errno); ok && errno != 0 {
		return fmt.Errorf("%s failed: %v: %w", op, errno, ErrQueryUnavailable)
	}
	return fmt.Errorf("%s failed: %w", op, ErrQueryUnavailable)
}

type winBackend struct {
	closed bool
}

// Open resolves the user32 entry points. Windows needs no session handle.
func Open() (Backend, error) {
	if err := validateProcs(); err != nil {
		return nil, err
	}
	return &winBackend{}, nil
}

func (b *winBackend) Close() error {
	b.closed = true
	return nil
}

func (b *winBackend) DesktopSize() (int, int, error) {
	desktop, _, _ := procGetDesktopWindow.Call()
	var r rect
	ret, _, err := procGetWindowRect.Call(desktop, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return 0, 0, winErr("GetWindowRect(desktop)", err)
	}
	return int(r.right), int(r.bottom), nil
}

func (b *winBackend) Cursor() (int, int, error) {
	var p point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return 0, 0, winErr("GetCursorPos", err)
	}
	return int(p.x), int(p.y), nil
}

func (b *winBackend) FocusedWindow() (Info, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return Info{}, ErrNoWindow
	}

	info := Info{Title: windowText(hwnd)}

	var r rect
	if ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret != 0 {
		info.X, info.Y = int(r.left), int(r.top)
		info.Width, info.Height = int(r.right-r.left), int(r.bottom-r.top)
		info.HasRect = true
	}
	return info, nil
}

func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLength.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	got, _, _ := procGetWindowText.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:got])
}

func (b *winBackend) KeyDown(key Key) bool {
	vk := virtualKeyFor(key)
	if vk == 0 {
		return false
	}
	return asyncKeyDown(vk)
}

func (b *winBackend) RawKeyDown(code int) bool {
	if code <= 0 || code > 0xFF {
		return false
	}
	return asyncKeyDown(uintptr(code))
}

func asyncKeyDown(vk uintptr) bool {
	state, _, _ := procGetAsyncKeyState.Call(vk)
	return state&keyDownMask != 0
}
