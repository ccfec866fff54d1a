// Package input turns raw platform state into what the companion animates
// from: whether a configured key is held, and where the paw should sit.
package input

import (
	"sync"

	"github.com/tinyrange/pawinput/internal/window"
)

// TableSize is the number of raw key codes the table covers.
const TableSize = 256

// Table maps browser-style virtual key codes to portable keys.
type Table [TableSize]window.Key

type override struct {
	code int
	key  window.Key
}

// Applied in order after the range defaults. 16, 17 and 18 are written
// twice; the right-hand variant comes last and is what the table keeps.
// 189 is written twice as well.
var overrides = []override{
	{27, window.KeyEscape},
	{17, window.KeyLControl},
	{16, window.KeyLShift},
	{18, window.KeyLAlt},
	{17, window.KeyRControl},
	{16, window.KeyRShift},
	{18, window.KeyRAlt},
	{93, window.KeyMenu},
	{219, window.KeyLBracket},
	{221, window.KeyRBracket},
	{186, window.KeySemicolon},
	{188, window.KeyComma},
	{190, window.KeyPeriod},
	{222, window.KeyQuote},
	{191, window.KeySlash},
	{220, window.KeyBackslash},
	{192, window.KeyTilde},
	{187, window.KeyEqual},
	{189, window.KeyHyphen},
	{32, window.KeySpace},
	{13, window.KeyEnter},
	{8, window.KeyBackspace},
	{9, window.KeyTab},
	{33, window.KeyPageUp},
	{34, window.KeyPageDown},
	{35, window.KeyEnd},
	{36, window.KeyHome},
	{45, window.KeyInsert},
	{46, window.KeyDelete},
	{107, window.KeyAdd},
	{109, window.KeySubtract},
	{106, window.KeyMultiply},
	{111, window.KeyDivide},
	{37, window.KeyLeft},
	{39, window.KeyRight},
	{38, window.KeyUp},
	{40, window.KeyDown},
	{19, window.KeyPause},
	{189, window.KeyDash},
}

// BuildTable computes a fresh table. Most callers want DefaultTable.
func BuildTable() *Table {
	var t Table
	for code := range t {
		switch {
		case code >= 48 && code <= 57:
			t[code] = window.KeyNum0 + window.Key(code-48)
		case code >= 65 && code <= 90:
			t[code] = window.KeyA + window.Key(code-65)
		case code >= 96 && code <= 105:
			t[code] = window.KeyNumpad0 + window.Key(code-96)
		case code >= 112 && code <= 126:
			t[code] = window.KeyF1 + window.Key(code-112)
		default:
			t[code] = window.KeyUnknown
		}
	}

	for _, o := range overrides {
		t[o.code] = o.key
	}
	return &t
}

// DefaultTable is built on first use and never modified afterwards.
var DefaultTable = sync.OnceValue(BuildTable)

// Lookup resolves code. Codes outside the table resolve to KeyUnknown.
func (t *Table) Lookup(code int) window.Key {
	if code < 0 || code >= TableSize {
		return window.KeyUnknown
	}
	return t[code]
}
