package luabind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/tinyrange/pawinput/internal/input"
	"github.com/tinyrange/pawinput/internal/window"
	"github.com/tinyrange/pawinput/internal/window/windowtest"
)

func setup(t *testing.T) (*lua.LState, *windowtest.Fake, *input.Mapper) {
	t.Helper()

	fake := windowtest.New(1920, 1080)
	keys := input.NewDetector(nil, fake)
	cursor := input.NewMapper(fake, input.Size{Width: 1920, Height: 1080},
		input.TargetConfig{Width: 800, Height: 600}, zerolog.Nop())

	L := lua.NewState()
	t.Cleanup(func() { L.Close() })
	NewModule(keys, cursor, zerolog.Nop()).Register(L)

	return L, fake, cursor
}

func TestIsPressed(t *testing.T) {
	L, fake, _ := setup(t)
	fake.Press(window.KeyZ, true)
	fake.Press(window.KeyRShift, true)

	tests := []struct {
		expr string
		want bool
	}{
		{"input.is_pressed(90)", true},
		{"input.is_pressed(88)", false},
		{"input.is_pressed(16)", true},
		{"input.is_pressed('z')", true},
		{"input.is_pressed('Z')", true},
		{"input.is_pressed('x')", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			require.NoError(t, L.DoString("result = "+tt.expr))
			assert.Equal(t, lua.LBool(tt.want), L.GetGlobal("result"))
		})
	}
}

func TestIsPressedPunctuation(t *testing.T) {
	L, fake, _ := setup(t)
	fake.Press(window.KeyDelete, true)
	fake.Press(window.KeyInsert, true)

	require.NoError(t, L.DoString(`period, hyphen = input.is_pressed("."), input.is_pressed("-")`))
	assert.Equal(t, lua.LFalse, L.GetGlobal("period"))
	assert.Equal(t, lua.LFalse, L.GetGlobal("hyphen"))

	fake.Press(window.KeyPeriod, true)
	fake.Press(window.KeyHyphen, true)
	require.NoError(t, L.DoString(`period, hyphen = input.is_pressed("."), input.is_pressed("-")`))
	assert.Equal(t, lua.LTrue, L.GetGlobal("period"))
	assert.Equal(t, lua.LTrue, L.GetGlobal("hyphen"))
}

func TestIsPressedBadArgument(t *testing.T) {
	L, _, _ := setup(t)

	assert.ErrorContains(t, L.DoString("input.is_pressed('!')"), "no key types")
	assert.Error(t, L.DoString("input.is_pressed('zx')"))
	assert.Error(t, L.DoString("input.is_pressed({})"))
	assert.Error(t, L.DoString("input.is_pressed()"))
}

func TestMouseXY(t *testing.T) {
	L, _, cursor := setup(t)

	require.NoError(t, L.DoString("x, y = input.mouse_xy()"))
	pos := cursor.Position()
	assert.Equal(t, lua.LNumber(pos.X), L.GetGlobal("x"))
	assert.Equal(t, lua.LNumber(pos.Y), L.GetGlobal("y"))
	assert.Equal(t, lua.LNumber(184), L.GetGlobal("x"))
	assert.Equal(t, lua.LNumber(324), L.GetGlobal("y"))
}

func TestPressedTable(t *testing.T) {
	L, fake, _ := setup(t)
	fake.Press(window.KeyX, true)
	fake.Press(window.KeyLControl, true)

	require.NoError(t, L.DoString(`
		local down = input.pressed(90, 88, 17, 16)
		count = #down
		first = down[1]
		second = down[2]
	`))
	assert.Equal(t, lua.LNumber(2), L.GetGlobal("count"))
	assert.Equal(t, lua.LNumber(88), L.GetGlobal("first"))
	assert.Equal(t, lua.LNumber(17), L.GetGlobal("second"))

	assert.Error(t, L.DoString("input.pressed('a')"))
}

func TestRequire(t *testing.T) {
	L, fake, _ := setup(t)
	fake.Press(window.KeyA, true)

	require.NoError(t, L.DoString(`
		local m = require("input")
		result = m.is_pressed(65)
	`))
	assert.Equal(t, lua.LTrue, L.GetGlobal("result"))
}

func TestScriptFrameHook(t *testing.T) {
	fake := windowtest.New(1920, 1080)
	keys := input.NewDetector(nil, fake)
	cursor := input.NewMapper(fake, input.Size{Width: 1920, Height: 1080},
		input.TargetConfig{Width: 800, Height: 600}, zerolog.Nop())
	mod := NewModule(keys, cursor, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "paw.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
		frames = 0
		hits = 0
		function on_frame()
			frames = frames + 1
			if input.is_pressed('k') then hits = hits + 1 end
		end
	`), 0o644))

	s, err := LoadScript(path, mod)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Frame())
	fake.Press(window.KeyK, true)
	require.NoError(t, s.Frame())

	assert.Equal(t, lua.LNumber(2), s.L.GetGlobal("frames"))
	assert.Equal(t, lua.LNumber(1), s.L.GetGlobal("hits"))
}

func TestScriptErrors(t *testing.T) {
	mod := NewModule(input.NewDetector(nil, windowtest.New(1, 1)), nil, zerolog.Nop())

	_, err := LoadString("this is not lua", mod)
	assert.Error(t, err)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.lua"), mod)
	assert.Error(t, err)

	s, err := LoadString(`function on_frame() error("boom") end`, mod)
	require.NoError(t, err)
	defer s.Close()
	assert.ErrorContains(t, s.Frame(), "boom")

	noHook, err := LoadString(`x = 1`, mod)
	require.NoError(t, err)
	defer noHook.Close()
	assert.NoError(t, noHook.Frame())
}
