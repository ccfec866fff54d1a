package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/pawinput/internal/logging"
	"github.com/tinyrange/pawinput/internal/window"
	"github.com/tinyrange/pawinput/internal/window/windowtest"
)

func TestOpenCapturesDesktop(t *testing.T) {
	fake := windowtest.New(2560, 1440)
	s, err := Open(fake, target(true), zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Size{Width: 2560, Height: 1440}, s.Cursor.Desktop())

	// Later changes to the reported size are not picked up.
	fake.Width, fake.Height = 800, 600
	assert.Equal(t, Size{Width: 2560, Height: 1440}, s.Cursor.Desktop())
}

func TestOpenDesktopError(t *testing.T) {
	fake := windowtest.New(0, 0)
	fake.DesktopErr = window.ErrQueryUnavailable

	_, err := Open(fake, target(true), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, window.ErrQueryUnavailable))
}

func TestSessionDelegates(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	fake.SetFocus("osu!", 0, 0, 1920, 1080)
	fake.SetCursor(880, 550)
	fake.Press(window.KeyRShift, true)

	s, err := Open(fake, target(true), zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.IsPressed(16))
	assert.False(t, s.IsPressed(17))

	pos := s.Update()
	assert.Equal(t, pos, s.Position())
	assert.InDelta(t, 0.5, s.Cursor.Fraction().X, delta)

	info, err := s.FocusedWindow()
	require.NoError(t, err)
	assert.Equal(t, "osu!", info.Title)

	cfg := target(true)
	cfg.LeftHanded = true
	s.SetTarget(cfg)
	assert.True(t, s.Cursor.Target().LeftHanded)
}

func TestSessionCloseIdempotent(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	s, err := Open(fake, target(false), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.True(t, fake.Closed)
}

func TestCursorLogsUnderSubsystem(t *testing.T) {
	var buf bytes.Buffer
	fake := windowtest.New(1920, 1080)
	fake.CursorErr = window.ErrQueryUnavailable

	s, err := Open(fake, target(false), logging.New(&buf, "trace"))
	require.NoError(t, err)
	defer s.Close()

	buf.Reset()
	s.Update()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "cursor", entry["subsystem"])
	assert.NotContains(t, entry, "component")
}
