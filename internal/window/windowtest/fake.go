// Package windowtest provides an in-memory window.Backend for tests.
package windowtest

import (
	"sync"

	"github.com/tinyrange/pawinput/internal/window"
)

// Fake is a window.Backend whose state is set directly by the test.
// A nil Focus means no window has focus.
type Fake struct {
	mu sync.Mutex

	Width, Height int
	DesktopErr    error

	Focus    *window.Info
	FocusErr error

	CursorX, CursorY int
	CursorErr        error

	Keys    map[window.Key]bool
	RawKeys map[int]bool

	KeyQueries    int
	RawKeyQueries int
	Closed        bool
}

func New(width, height int) *Fake {
	return &Fake{
		Width:   width,
		Height:  height,
		Keys:    make(map[window.Key]bool),
		RawKeys: make(map[int]bool),
	}
}

func (f *Fake) DesktopSize() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DesktopErr != nil {
		return 0, 0, f.DesktopErr
	}
	return f.Width, f.Height, nil
}

func (f *Fake) FocusedWindow() (window.Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FocusErr != nil {
		return window.Info{}, f.FocusErr
	}
	if f.Focus == nil {
		return window.Info{}, window.ErrNoWindow
	}
	return *f.Focus, nil
}

func (f *Fake) Cursor() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CursorErr != nil {
		return 0, 0, f.CursorErr
	}
	return f.CursorX, f.CursorY, nil
}

func (f *Fake) KeyDown(key window.Key) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.KeyQueries++
	return f.Keys[key]
}

func (f *Fake) RawKeyDown(code int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RawKeyQueries++
	return f.RawKeys[code]
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

// SetCursor moves the fake cursor.
func (f *Fake) SetCursor(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CursorX, f.CursorY = x, y
	f.CursorErr = nil
}

// SetFocus focuses a window with the given title and rectangle.
func (f *Fake) SetFocus(title string, x, y, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Focus = &window.Info{Title: title, X: x, Y: y, Width: width, Height: height, HasRect: true}
}

// Press sets the held state of a portable key.
func (f *Fake) Press(key window.Key, down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Keys[key] = down
}

// PressRaw sets the held state of a raw platform code.
func (f *Fake) PressRaw(code int, down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RawKeys[code] = down
}

var _ window.Backend = (*Fake)(nil)
