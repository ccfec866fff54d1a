// Package luabind exposes key state and the paw position to Lua scripts.
//
// Scripts see a table named input:
//
//	input.is_pressed(code | char) -> bool  (char: letter, digit or unshifted punctuation)
//	input.mouse_xy()              -> x, y
//	input.pressed(code, ...)      -> { code, ... }
//
// The table is also available through require("input").
package luabind

import (
	"fmt"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/tinyrange/pawinput/internal/input"
)

// ModuleName is the global and require() name of the module.
const ModuleName = "input"

// Keys reports key state by platform virtual-key code.
type Keys interface {
	IsPressed(code int) bool
	IsPressedChar(c rune) bool
	Pressed(codes ...int) []int
}

// Cursor reports the current paw position.
type Cursor interface {
	Position() input.Position
}

// Module implements the input Lua module.
type Module struct {
	keys   Keys
	cursor Cursor
	log    zerolog.Logger
}

func NewModule(keys Keys, cursor Cursor, log zerolog.Logger) *Module {
	return &Module{keys: keys, cursor: cursor, log: log}
}

// Register installs the module as a global and as a preloaded module.
func (m *Module) Register(L *lua.LState) {
	L.SetGlobal(ModuleName, m.table(L))
	L.PreloadModule(ModuleName, func(L *lua.LState) int {
		L.Push(m.table(L))
		return 1
	})
}

func (m *Module) table(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "is_pressed", L.NewFunction(m.isPressed))
	L.SetField(mod, "mouse_xy", L.NewFunction(m.mouseXY))
	L.SetField(mod, "pressed", L.NewFunction(m.pressed))
	L.SetField(mod, "log", L.NewFunction(m.logLine))
	return mod
}

// is_pressed(code) -> bool
// is_pressed(char) -> bool
func (m *Module) isPressed(L *lua.LState) int {
	switch v := L.Get(1).(type) {
	case lua.LNumber:
		L.Push(lua.LBool(m.keys.IsPressed(int(v))))
	case lua.LString:
		r := []rune(string(v))
		if len(r) != 1 {
			L.ArgError(1, "expected a single character")
			return 0
		}
		if _, ok := input.CharCode(r[0]); !ok {
			L.ArgError(1, fmt.Sprintf("no key types %q", r[0]))
			return 0
		}
		L.Push(lua.LBool(m.keys.IsPressedChar(r[0])))
	default:
		L.ArgError(1, "expected a key code or a character")
		return 0
	}
	return 1
}

// mouse_xy() -> x, y
func (m *Module) mouseXY(L *lua.LState) int {
	pos := m.cursor.Position()
	L.Push(lua.LNumber(pos.X))
	L.Push(lua.LNumber(pos.Y))
	return 2
}

// pressed(code, ...) -> table of the codes that are down, in argument order.
func (m *Module) pressed(L *lua.LState) int {
	n := L.GetTop()
	codes := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		codes = append(codes, L.CheckInt(i))
	}

	out := L.NewTable()
	for _, c := range m.keys.Pressed(codes...) {
		out.Append(lua.LNumber(c))
	}
	L.Push(out)
	return 1
}

// log(msg)
func (m *Module) logLine(L *lua.LState) int {
	m.log.Info().Str("source", "lua").Msg(L.CheckString(1))
	return 0
}
