package input

import (
	"unicode"

	"github.com/tinyrange/pawinput/internal/window"
)

// Generic modifier codes that are checked on both physical sides.
const (
	CodeShift   = 16
	CodeControl = 17
)

// Detector answers whether a raw key code is currently held. Every call is a
// live platform query; nothing is cached between frames.
type Detector struct {
	table   *Table
	backend window.Backend
}

func NewDetector(table *Table, backend window.Backend) *Detector {
	if table == nil {
		table = DefaultTable()
	}
	return &Detector{table: table, backend: backend}
}

// IsPressed reports whether code is held. The table only knows the
// right-hand Shift and Control for 16 and 17, so those two are tested on
// both sides here. Codes the table cannot name fall through to the
// platform's raw lookup.
func (d *Detector) IsPressed(code int) bool {
	switch code {
	case CodeShift:
		return d.backend.KeyDown(window.KeyLShift) || d.backend.KeyDown(window.KeyRShift)
	case CodeControl:
		return d.backend.KeyDown(window.KeyLControl) || d.backend.KeyDown(window.KeyRControl)
	}

	if key := d.table.Lookup(code); key != window.KeyUnknown {
		return d.backend.KeyDown(key)
	}
	return d.backend.RawKeyDown(code)
}

// Unshifted US-layout punctuation and its virtual key code.
var punctuationCodes = map[rune]int{
	' ':  32,
	';':  186,
	'=':  187,
	',':  188,
	'-':  189,
	'.':  190,
	'/':  191,
	'`':  192,
	'[':  219,
	'\\': 220,
	']':  221,
	'\'': 222,
}

// CharCode returns the virtual key code typed by c. Letters and digits use
// their upper-case ASCII value; punctuation goes through a fixed table.
// Anything else, shifted symbols included, has no code.
func CharCode(c rune) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(unicode.ToUpper(c)), true
	case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return int(c), true
	}
	code, ok := punctuationCodes[c]
	return code, ok
}

// IsPressedChar checks the key that types c. Characters without a key code
// report false.
func (d *Detector) IsPressedChar(c rune) bool {
	code, ok := CharCode(c)
	if !ok {
		return false
	}
	return d.IsPressed(code)
}

// Pressed returns the codes from codes that are currently held, in order.
func (d *Detector) Pressed(codes ...int) []int {
	var down []int
	for _, code := range codes {
		if d.IsPressed(code) {
			down = append(down, code)
		}
	}
	return down
}
