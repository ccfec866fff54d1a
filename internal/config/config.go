// Package config loads the settings that drive the cursor mapper.
//
// Two file formats are accepted. JSON files use the same layout as the
// config.json shipped with the desktop pet, so an existing file can be pointed
// at directly. TOML files use the same section and key names.
package config

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tinyrange/pawinput/internal/input"
)

// Resolution describes the game's configured output resolution.
type Resolution struct {
	Letterboxing       bool `toml:"letterboxing"`
	Width              int  `toml:"width"`
	Height             int  `toml:"height"`
	HorizontalPosition int  `toml:"horizontalPosition"`
	VerticalPosition   int  `toml:"verticalPosition"`
}

type Decoration struct {
	LeftHanded bool `toml:"leftHanded"`
}

type Target struct {
	TitlePrefix string `toml:"titlePrefix"`
}

type Logging struct {
	Level string `toml:"level"`
}

type Poll struct {
	Interval Duration `toml:"interval"`
}

// Config is the full set of options.
type Config struct {
	Resolution Resolution `toml:"resolution"`
	Decoration Decoration `toml:"decoration"`
	Target     Target     `toml:"target"`
	Logging    Logging    `toml:"logging"`
	Poll       Poll       `toml:"poll"`
}

// Duration is a time.Duration written as a Go duration string ("16ms").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return errors.Join(ErrTypeMismatch, err)
	}
	*d = Duration(v)
	return nil
}

// DefaultPollInterval is one frame at 60 Hz.
const DefaultPollInterval = time.Second / 60

func Default() *Config {
	return &Config{
		Resolution: Resolution{Width: 800, Height: 600},
		Target:     Target{TitlePrefix: input.DefaultTitlePrefix},
		Logging:    Logging{Level: "info"},
		Poll:       Poll{Interval: Duration(DefaultPollInterval)},
	}
}

// Validate checks ranges. The first failure is returned.
func (c *Config) Validate() error {
	r := c.Resolution
	switch {
	case r.Width <= 0:
		return invalid("resolution.width", "must be positive, got %d", r.Width)
	case r.Height <= 0:
		return invalid("resolution.height", "must be positive, got %d", r.Height)
	case r.HorizontalPosition < -100 || r.HorizontalPosition > 100:
		return invalid("resolution.horizontalPosition", "must be within [-100, 100], got %d", r.HorizontalPosition)
	case r.VerticalPosition < -100 || r.VerticalPosition > 100:
		return invalid("resolution.verticalPosition", "must be within [-100, 100], got %d", r.VerticalPosition)
	case c.Poll.Interval <= 0:
		return invalid("poll.interval", "must be positive, got %s", time.Duration(c.Poll.Interval))
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return invalid("logging.level", "unknown level %q", c.Logging.Level)
		}
	}
	return nil
}

// TargetConfig returns the mapper settings. An empty title prefix falls back to
// the default one.
func (c *Config) TargetConfig() input.TargetConfig {
	prefix := c.Target.TitlePrefix
	if prefix == "" {
		prefix = input.DefaultTitlePrefix
	}
	return input.TargetConfig{
		Width:            c.Resolution.Width,
		Height:           c.Resolution.Height,
		HorizontalOffset: c.Resolution.HorizontalPosition,
		VerticalOffset:   c.Resolution.VerticalPosition,
		Letterbox:        c.Resolution.Letterboxing,
		LeftHanded:       c.Decoration.LeftHanded,
		TitlePrefix:      prefix,
	}
}

// PollInterval returns the poll period as a time.Duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.Interval)
}
