// Package logging builds the zerolog loggers used across pawinput.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the named level. Unknown level names
// fall back to info. Terminals get the human-readable console format.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(console(w)).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// NewLeveled is New with a level that can be changed after the logger and
// its children have been handed out.
func NewLeveled(w io.Writer, level string) (zerolog.Logger, *LevelVar) {
	v := &LevelVar{}
	v.Set(level)
	l := zerolog.New(levelFilter{w: console(w), level: v}).
		Level(zerolog.TraceLevel).
		With().Timestamp().Logger()
	return l, v
}

// Subsystem returns a child logger tagged with the subsystem name.
func Subsystem(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("subsystem", name).Logger()
}

// ParseLevel is zerolog.ParseLevel with an info fallback.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// LevelVar holds the minimum level of a NewLeveled logger.
type LevelVar struct {
	v atomic.Int32
}

// Set parses level and stores it, returning the level in effect.
func (l *LevelVar) Set(level string) zerolog.Level {
	lvl := ParseLevel(level)
	l.v.Store(int32(lvl))
	return lvl
}

func (l *LevelVar) Level() zerolog.Level {
	return zerolog.Level(l.v.Load())
}

type levelFilter struct {
	w     io.Writer
	level *LevelVar
}

func (f levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f levelFilter) WriteLevel(lvl zerolog.Level, p []byte) (int, error) {
	if lvl < f.level.Level() {
		return len(p), nil
	}
	return f.w.Write(p)
}

func console(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return w
}
