package input

import (
	"math"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tinyrange/pawinput/internal/window"
)

// DefaultTitlePrefix identifies the target game's window.
const DefaultTitlePrefix = "osu!"

// Proportions of the game's playfield relative to its configured height.
const (
	playfieldScale  = 0.8
	playfieldOffset = 0.117
	playfieldAspect = 4.0 / 3.0
)

// Point is a cursor position in desktop pixels.
type Point struct {
	X, Y int
}

// Size is a width and height in desktop pixels.
type Size struct {
	Width, Height int
}

// Rect is a play area in desktop pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Fraction is the cursor's clamped position inside the play area, each axis
// in [0, 1].
type Fraction struct {
	X, Y float64
}

// Position is a paw position in the companion's output space.
type Position struct {
	X, Y float64
}

// TargetConfig describes the game window the cursor is mapped against.
// Offsets are percentages in [-100, 100] of the free space around a
// letterboxed game.
type TargetConfig struct {
	Width, Height    int
	HorizontalOffset int
	VerticalOffset   int
	Letterbox        bool
	LeftHanded       bool
	TitlePrefix      string
}

func (c TargetConfig) titlePrefix() string {
	if c.TitlePrefix == "" {
		return DefaultTitlePrefix
	}
	return c.TitlePrefix
}

// PlayArea returns the rectangle the cursor is normalized against. focus is
// nil when no window has focus or the query failed.
func PlayArea(cursor Point, desktop Size, focus *window.Info, cfg TargetConfig) Rect {
	area := Rect{Width: float64(desktop.Width), Height: float64(desktop.Height)}

	if focus != nil && strings.HasPrefix(focus.Title, cfg.titlePrefix()) {
		h := float64(cfg.Height) * playfieldScale
		w := h * playfieldAspect
		top := float64(cfg.Height) * playfieldOffset

		switch {
		case cfg.Letterbox:
			// The origin is the offset share of the free space around the
			// configured resolution. No extra half-width centering term is
			// added for the narrower 4:3 playfield.
			area = Rect{
				X:      float64(desktop.Width-cfg.Width) * float64(cfg.HorizontalOffset+100) / 200,
				Y:      float64(desktop.Height-cfg.Height)*float64(cfg.VerticalOffset+100)/200 + top,
				Width:  w,
				Height: h,
			}
		case !focus.HasRect:
		case focus.Width == desktop.Width && focus.Height == desktop.Height:
			// Fullscreen: the game fills the desktop.
		default:
			area = Rect{
				X:      float64(focus.X) + (float64(focus.Width)-w)/2,
				Y:      float64(focus.Y) + top,
				Width:  w,
				Height: h,
			}
		}
	}

	// Without letterboxing the origin always snaps to the target-sized grid
	// cell holding the cursor, whatever was computed above.
	if !cfg.Letterbox {
		if cfg.Width > 0 {
			area.X = math.Floor(float64(cursor.X)/float64(cfg.Width)) * float64(cfg.Width)
		}
		if cfg.Height > 0 {
			area.Y = math.Floor(float64(cursor.Y)/float64(cfg.Height)) * float64(cfg.Height)
		}
	}
	return area
}

// Normalize places cursor inside area, clamped to [0, 1] on both axes and
// mirrored horizontally for left-handed play.
func Normalize(cursor Point, area Rect, leftHanded bool) Fraction {
	f := Fraction{
		X: unit(float64(cursor.X)-area.X, area.Width),
		Y: unit(float64(cursor.Y)-area.Y, area.Height),
	}
	if leftHanded {
		f.X = 1 - f.X
	}
	return f
}

func unit(offset, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, offset/span))
}

// Project maps a fraction onto the paw's calibrated range.
func Project(f Fraction) Position {
	return Position{
		X: -97*f.X + 44*f.Y + 184,
		Y: -76*f.X - 40*f.Y + 324,
	}
}

// Compute runs the whole transform for one frame.
func Compute(cursor Point, desktop Size, focus *window.Info, cfg TargetConfig) (Position, Fraction) {
	f := Normalize(cursor, PlayArea(cursor, desktop, focus, cfg), cfg.LeftHanded)
	return Project(f), f
}

// Mapper tracks the paw position across frames. Update is called from the
// render loop; SetTarget may be called from any goroutine.
type Mapper struct {
	backend window.Backend
	desktop Size
	target  atomic.Pointer[TargetConfig]
	log     zerolog.Logger

	last     Position
	fraction Fraction
	area     Rect
}

func NewMapper(backend window.Backend, desktop Size, cfg TargetConfig, log zerolog.Logger) *Mapper {
	m := &Mapper{
		backend: backend,
		desktop: desktop,
		log:     log,
		last:    Project(Fraction{}),
		area:    Rect{Width: float64(desktop.Width), Height: float64(desktop.Height)},
	}
	m.target.Store(&cfg)
	return m
}

// Update queries the focused window and cursor and returns the new paw
// position. When the cursor cannot be read the previous position is kept.
func (m *Mapper) Update() Position {
	cfg := m.Target()

	var focus *window.Info
	if info, err := m.backend.FocusedWindow(); err == nil {
		focus = &info
	} else {
		m.log.Trace().Err(err).Msg("focused window unavailable")
	}

	x, y, err := m.backend.Cursor()
	if err != nil {
		m.log.Trace().Err(err).Msg("cursor unavailable, keeping last position")
		return m.last
	}

	cursor := Point{X: x, Y: y}
	m.area = PlayArea(cursor, m.desktop, focus, cfg)
	m.fraction = Normalize(cursor, m.area, cfg.LeftHanded)
	m.last = Project(m.fraction)
	return m.last
}

// Position returns the most recent paw position without querying.
func (m *Mapper) Position() Position {
	return m.last
}

// Fraction returns the clamped fraction behind the last position.
func (m *Mapper) Fraction() Fraction {
	return m.fraction
}

// Area returns the play area used for the last position.
func (m *Mapper) Area() Rect {
	return m.area
}

func (m *Mapper) Desktop() Size {
	return m.desktop
}

func (m *Mapper) Target() TargetConfig {
	return *m.target.Load()
}

func (m *Mapper) SetTarget(cfg TargetConfig) {
	m.target.Store(&cfg)
}
