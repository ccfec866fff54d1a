package input

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/pawinput/internal/window"
	"github.com/tinyrange/pawinput/internal/window/windowtest"
)

const delta = 1e-9

var desktop = Size{Width: 1920, Height: 1080}

func target(letterbox bool) TargetConfig {
	return TargetConfig{Width: 800, Height: 600, Letterbox: letterbox}
}

func osuWindow(x, y, w, h int) *window.Info {
	return &window.Info{Title: "osu! - Camellia", X: x, Y: y, Width: w, Height: h, HasRect: true}
}

func TestPlayAreaNoFocusSnapsToGrid(t *testing.T) {
	cfg := target(false)
	cursor := Point{X: cfg.Width*2 + 5, Y: cfg.Height + 12}

	area := PlayArea(cursor, desktop, nil, cfg)

	assert.InDelta(t, float64(cfg.Width*2), area.X, delta)
	assert.InDelta(t, float64(cfg.Height), area.Y, delta)
	assert.InDelta(t, 1920.0, area.Width, delta)
	assert.InDelta(t, 1080.0, area.Height, delta)
}

func TestPlayAreaNoFocusLetterboxUsesDesktop(t *testing.T) {
	area := PlayArea(Point{X: 1000, Y: 700}, desktop, nil, target(true))
	assert.Equal(t, Rect{Width: 1920, Height: 1080}, area)
}

func TestPlayAreaOtherWindowUsesDesktop(t *testing.T) {
	focus := &window.Info{Title: "Firefox", X: 10, Y: 10, Width: 800, Height: 600, HasRect: true}
	area := PlayArea(Point{X: 1000, Y: 700}, desktop, focus, target(true))
	assert.Equal(t, Rect{Width: 1920, Height: 1080}, area)

	empty := &window.Info{}
	area = PlayArea(Point{X: 1000, Y: 700}, desktop, empty, target(true))
	assert.Equal(t, Rect{Width: 1920, Height: 1080}, area)
}

func TestPlayAreaLetterboxCentered(t *testing.T) {
	cfg := target(true)
	area := PlayArea(Point{X: 5, Y: 5}, desktop, osuWindow(0, 0, 1920, 1080), cfg)

	assert.InDelta(t, float64(desktop.Width-cfg.Width)/2, area.X, delta)
	assert.InDelta(t, float64(desktop.Height-cfg.Height)/2+float64(cfg.Height)*0.117, area.Y, delta)
	assert.InDelta(t, 480.0, area.Height, delta)
	assert.InDelta(t, 640.0, area.Width, delta)
}

func TestPlayAreaLetterboxOffsets(t *testing.T) {
	tests := []struct {
		name  string
		h, v  int
		wantX float64
		wantY float64
	}{
		{"left top", -100, -100, 0, 70.2},
		{"right bottom", 100, 100, 1120, 480 + 70.2},
		{"half right", 50, 0, 840, 240 + 70.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := target(true)
			cfg.HorizontalOffset = tt.h
			cfg.VerticalOffset = tt.v

			area := PlayArea(Point{}, desktop, osuWindow(0, 0, 1920, 1080), cfg)
			assert.InDelta(t, tt.wantX, area.X, 1e-6)
			assert.InDelta(t, tt.wantY, area.Y, 1e-6)
		})
	}
}

func TestPlayAreaWindowed(t *testing.T) {
	cfg := target(false)
	cursor := Point{X: 900, Y: 700}

	area := PlayArea(cursor, desktop, osuWindow(100, 50, 1024, 768), cfg)

	assert.InDelta(t, 640.0, area.Width, delta)
	assert.InDelta(t, 480.0, area.Height, delta)
	// The grid snap replaces the window-relative origin.
	assert.InDelta(t, 800.0, area.X, delta)
	assert.InDelta(t, 600.0, area.Y, delta)
}

func TestPlayAreaWindowedFallbacks(t *testing.T) {
	cfg := target(false)
	cursor := Point{X: 900, Y: 700}

	fullscreen := PlayArea(cursor, desktop, osuWindow(0, 0, 1920, 1080), cfg)
	assert.InDelta(t, 1920.0, fullscreen.Width, delta)
	assert.InDelta(t, 1080.0, fullscreen.Height, delta)
	assert.InDelta(t, 800.0, fullscreen.X, delta)

	norect := osuWindow(100, 50, 1024, 768)
	norect.HasRect = false
	area := PlayArea(cursor, desktop, norect, cfg)
	assert.InDelta(t, 1920.0, area.Width, delta)
	assert.InDelta(t, 600.0, area.Y, delta)
}

func TestNormalizeClamps(t *testing.T) {
	cfg := target(true)
	focus := osuWindow(0, 0, 1920, 1080)

	tests := []struct {
		name   string
		cursor Point
		check  func(t *testing.T, f Fraction)
	}{
		{"left", Point{X: -5000, Y: 500}, func(t *testing.T, f Fraction) { assert.Equal(t, 0.0, f.X) }},
		{"right", Point{X: 5000, Y: 500}, func(t *testing.T, f Fraction) { assert.Equal(t, 1.0, f.X) }},
		{"above", Point{X: 700, Y: -5000}, func(t *testing.T, f Fraction) { assert.Equal(t, 0.0, f.Y) }},
		{"below", Point{X: 700, Y: 5000}, func(t *testing.T, f Fraction) { assert.Equal(t, 1.0, f.Y) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := Compute(tt.cursor, desktop, focus, cfg)
			assert.GreaterOrEqual(t, f.X, 0.0)
			assert.LessOrEqual(t, f.X, 1.0)
			assert.GreaterOrEqual(t, f.Y, 0.0)
			assert.LessOrEqual(t, f.Y, 1.0)
			tt.check(t, f)
		})
	}
}

func TestNormalizeZeroArea(t *testing.T) {
	f := Normalize(Point{X: 10, Y: 10}, Rect{}, false)
	assert.Equal(t, Fraction{}, f)
}

func TestLeftHandedMirrorsX(t *testing.T) {
	cfg := target(true)
	focus := osuWindow(0, 0, 1920, 1080)
	cursor := Point{X: 700, Y: 500}

	right, fr := Compute(cursor, desktop, focus, cfg)
	cfg.LeftHanded = true
	left, fl := Compute(cursor, desktop, focus, cfg)

	assert.InDelta(t, 1-fr.X, fl.X, delta)
	assert.InDelta(t, fr.Y, fl.Y, delta)
	assert.Equal(t, Project(fl), left)
	assert.NotEqual(t, right, left)
}

func TestProjectCorners(t *testing.T) {
	assert.Equal(t, Position{X: 184, Y: 324}, Project(Fraction{}))
	assert.Equal(t, Position{X: 87, Y: 248}, Project(Fraction{X: 1}))
	assert.Equal(t, Position{X: 228, Y: 284}, Project(Fraction{Y: 1}))
	assert.Equal(t, Position{X: 131, Y: 208}, Project(Fraction{X: 1, Y: 1}))
	assert.Equal(t, Position{X: 157.5, Y: 266}, Project(Fraction{X: 0.5, Y: 0.5}))
}

func TestComputeEndToEnd(t *testing.T) {
	cfg := target(true)
	focus := osuWindow(0, 0, 1920, 1080)

	area := PlayArea(Point{}, desktop, focus, cfg)
	center := Point{X: int(area.X + area.Width/2), Y: int(area.Y + area.Height/2)}

	pos, f := Compute(center, desktop, focus, cfg)
	assert.InDelta(t, 0.5, f.X, 1e-3)
	assert.InDelta(t, 0.5, f.Y, 1e-3)
	assert.InDelta(t, 157.5, pos.X, 0.1)
	assert.InDelta(t, 266.0, pos.Y, 0.1)
}

func TestMapperUpdate(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	fake.SetFocus("osu!", 0, 0, 1920, 1080)
	m := NewMapper(fake, desktop, target(true), zerolog.Nop())

	assert.Equal(t, Project(Fraction{}), m.Position())

	fake.SetCursor(880, 550)
	pos := m.Update()
	assert.Equal(t, pos, m.Position())
	assert.InDelta(t, 0.5, m.Fraction().X, delta)
	assert.InDelta(t, 560.0, m.Area().X, delta)
}

func TestMapperKeepsPositionWithoutCursor(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	fake.CursorErr = window.ErrQueryUnavailable
	m := NewMapper(fake, desktop, target(false), zerolog.Nop())

	assert.Equal(t, Position{X: 184, Y: 324}, m.Update())

	fake.SetCursor(960, 540)
	moved := m.Update()
	require.NotEqual(t, Position{X: 184, Y: 324}, moved)

	fake.CursorErr = window.ErrQueryUnavailable
	assert.Equal(t, moved, m.Update())
}

func TestMapperFocusErrorFallsBack(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	fake.FocusErr = window.ErrQueryUnavailable
	fake.SetCursor(960, 540)

	m := NewMapper(fake, desktop, target(true), zerolog.Nop())
	m.Update()
	assert.Equal(t, Rect{Width: 1920, Height: 1080}, m.Area())
	assert.InDelta(t, 0.5, m.Fraction().X, delta)
}

func TestMapperSetTarget(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	fake.SetFocus("osu!", 0, 0, 1920, 1080)
	fake.SetCursor(700, 550)

	m := NewMapper(fake, desktop, target(true), zerolog.Nop())
	before := m.Update()
	assert.InDelta(t, 0.21875, m.Fraction().X, delta)

	cfg := target(true)
	cfg.LeftHanded = true
	m.SetTarget(cfg)
	assert.True(t, m.Target().LeftHanded)

	after := m.Update()
	assert.NotEqual(t, before, after)
	assert.InDelta(t, 0.78125, m.Fraction().X, delta)
}

func TestCustomTitlePrefix(t *testing.T) {
	cfg := target(true)
	cfg.TitlePrefix = "osu!lazer"

	stable := PlayArea(Point{}, desktop, osuWindow(0, 0, 1920, 1080), cfg)
	assert.Equal(t, Rect{Width: 1920, Height: 1080}, stable)

	lazer := &window.Info{Title: "osu!lazer", HasRect: true, Width: 1920, Height: 1080}
	area := PlayArea(Point{}, desktop, lazer, cfg)
	assert.InDelta(t, 640.0, area.Width, delta)
}
