// Package debugpanel draws live input state into a terminal.
package debugpanel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/tinyrange/pawinput/internal/input"
	"github.com/tinyrange/pawinput/internal/window"
)

// Snapshot is everything the panel shows for one frame.
type Snapshot struct {
	Desktop  input.Size
	Focus    window.Info
	FocusErr error
	Area     input.Rect
	Fraction input.Fraction
	Position input.Position
	Target   input.TargetConfig
	Pressed  []int
}

// Capture reads the current state from a session. It queries every key code
// the table can name, so it is meant for diagnostics rather than the hot path.
func Capture(s *input.Session) Snapshot {
	snap := Snapshot{
		Desktop:  s.Cursor.Desktop(),
		Area:     s.Cursor.Area(),
		Fraction: s.Cursor.Fraction(),
		Position: s.Position(),
		Target:   s.Cursor.Target(),
	}
	snap.Focus, snap.FocusErr = s.FocusedWindow()

	table := input.DefaultTable()
	codes := make([]int, 0, input.TableSize)
	for code := 1; code < input.TableSize; code++ {
		if table.Lookup(code) != window.KeyUnknown {
			codes = append(codes, code)
		}
	}
	snap.Pressed = s.Keys.Pressed(codes...)
	return snap
}

// Lines formats a snapshot as panel text.
func Lines(snap Snapshot) []string {
	focus := "(none)"
	switch {
	case snap.FocusErr != nil:
		focus = "unavailable: " + snap.FocusErr.Error()
	case snap.Focus.Title != "" && snap.Focus.HasRect:
		focus = fmt.Sprintf("%q at %d,%d %dx%d", snap.Focus.Title,
			snap.Focus.X, snap.Focus.Y, snap.Focus.Width, snap.Focus.Height)
	case snap.Focus.Title != "":
		focus = fmt.Sprintf("%q", snap.Focus.Title)
	}

	t := snap.Target
	return []string{
		fmt.Sprintf("Desktop     : %dx%d", snap.Desktop.Width, snap.Desktop.Height),
		fmt.Sprintf("Focused     : %s", focus),
		fmt.Sprintf("Target      : %dx%d offset %d,%d letterbox=%t left=%t",
			t.Width, t.Height, t.HorizontalOffset, t.VerticalOffset, t.Letterbox, t.LeftHanded),
		fmt.Sprintf("Play area   : %.1f,%.1f %.1fx%.1f",
			snap.Area.X, snap.Area.Y, snap.Area.Width, snap.Area.Height),
		fmt.Sprintf("Fraction    : %.3f, %.3f", snap.Fraction.X, snap.Fraction.Y),
		fmt.Sprintf("Paw         : %.1f, %.1f", snap.Position.X, snap.Position.Y),
		fmt.Sprintf("Keys down   : %s", keyNames(snap.Pressed)),
	}
}

func keyNames(codes []int) string {
	if len(codes) == 0 {
		return "-"
	}
	table := input.DefaultTable()
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = fmt.Sprintf("%s(%d)", table.Lookup(c), c)
	}
	return strings.Join(names, " ")
}

// Panel renders snapshots onto a tcell screen.
type Panel struct {
	mu     sync.Mutex
	screen tcell.Screen

	text   tcell.Style
	border tcell.Style
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Panel {
	return &Panel{
		screen: screen,
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		border: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	}
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Panel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return New(screen), nil
}

// Draw clears the screen and paints the snapshot inside a box.
func (p *Panel) Draw(snap Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := append([]string{"pawinput debug (q to quit)"}, Lines(snap)...)

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	p.screen.Clear()
	p.box(0, 0, width, height)
	for i, l := range lines {
		p.print(2, i+1, l, p.text)
	}
	p.screen.Show()
}

func (p *Panel) box(x, y, w, h int) {
	for i := x; i < x+w; i++ {
		p.screen.SetContent(i, y, tcell.RuneHLine, nil, p.border)
		p.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, p.border)
	}
	for j := y; j < y+h; j++ {
		p.screen.SetContent(x, j, tcell.RuneVLine, nil, p.border)
		p.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, p.border)
	}
	p.screen.SetContent(x, y, tcell.RuneULCorner, nil, p.border)
	p.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, p.border)
	p.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, p.border)
	p.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, p.border)
}

func (p *Panel) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Quit returns a channel closed when the user presses q, Esc or Ctrl-C, or
// when ctx ends. It owns the screen's event loop.
func (p *Panel) Quit(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	go func() {
		defer close(done)
		for {
			switch ev := p.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventInterrupt:
				if ctx.Err() != nil {
					return
				}
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				p.mu.Lock()
				p.screen.Sync()
				p.mu.Unlock()
			}
		}
	}()
	return done
}

// Close restores the terminal.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screen.Fini()
}
