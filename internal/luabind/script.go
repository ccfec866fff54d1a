package luabind

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// FrameHook is the global function a script may define to run once per poll.
const FrameHook = "on_frame"

// Script is a loaded Lua file with the input module registered.
type Script struct {
	L    *lua.LState
	path string
}

// LoadScript runs the file at path in a fresh state.
func LoadScript(path string, m *Module) (*Script, error) {
	L := lua.NewState()
	m.Register(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("running %s: %w", path, err)
	}
	return &Script{L: L, path: path}, nil
}

// LoadString is LoadScript for inline source.
func LoadString(src string, m *Module) (*Script, error) {
	L := lua.NewState()
	m.Register(L)

	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("running script: %w", err)
	}
	return &Script{L: L, path: "<string>"}, nil
}

// Frame calls on_frame if the script defined it.
func (s *Script) Frame() error {
	fn, ok := s.L.GetGlobal(FrameHook).(*lua.LFunction)
	if !ok {
		return nil
	}
	s.L.Push(fn)
	if err := s.L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("%s: %s: %w", s.path, FrameHook, err)
	}
	return nil
}

func (s *Script) Close() {
	s.L.Close()
}
