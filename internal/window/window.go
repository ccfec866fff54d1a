// Package window is the platform seam of the input layer. Each supported OS
// has one Backend implementation selected at build time; everything above it
// is platform independent.
package window

import "errors"

var (
	// ErrQueryUnavailable means a window, cursor or key-state query could not
	// complete. Callers substitute a default instead of surfacing it.
	ErrQueryUnavailable = errors.New("platform query unavailable")

	// ErrNoWindow means no window currently has input focus.
	ErrNoWindow = errors.New("no focused window")

	// ErrUnsupported is returned by Open on platforms without a backend.
	ErrUnsupported = errors.New("platform not supported")
)

// Info describes the focused top-level window. Position and size are in
// desktop pixels and only meaningful when HasRect is set.
type Info struct {
	Title   string
	X, Y    int
	Width   int
	Height  int
	HasRect bool
}

type Backend interface {
	// DesktopSize returns the size of the whole desktop in pixels.
	DesktopSize() (width, height int, err error)

	// FocusedWindow returns the window that currently has input focus.
	FocusedWindow() (Info, error)

	// Cursor returns the global cursor position in desktop pixels.
	Cursor() (x, y int, err error)

	// KeyDown reports whether the physical key behind key is held.
	KeyDown(key Key) bool

	// RawKeyDown reports whether the key with the given raw platform code is
	// held. Codes the platform cannot translate report false.
	RawKeyDown(code int) bool

	Close() error
}

// Each platform implements Open() to return its Backend.
