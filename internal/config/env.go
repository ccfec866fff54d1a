package config

import (
	"errors"
	"os"
	"strconv"
)

// EnvPrefix is the prefix used by the probe for environment overrides.
const EnvPrefix = "PAWINPUT_"

// ApplyEnv overrides fields from environment variables named prefix+KEY,
// for example PAWINPUT_WIDTH=1024. Unset variables leave the field alone.
func (c *Config) ApplyEnv(prefix string) error {
	r := &c.Resolution
	steps := []error{
		envInt(prefix+"WIDTH", &r.Width),
		envInt(prefix+"HEIGHT", &r.Height),
		envInt(prefix+"HORIZONTAL_POSITION", &r.HorizontalPosition),
		envInt(prefix+"VERTICAL_POSITION", &r.VerticalPosition),
		envBool(prefix+"LETTERBOX", &r.Letterboxing),
		envBool(prefix+"LEFT_HANDED", &c.Decoration.LeftHanded),
		envString(prefix+"TITLE_PREFIX", &c.Target.TitlePrefix),
		envString(prefix+"LOG_LEVEL", &c.Logging.Level),
		envDuration(prefix+"POLL_INTERVAL", &c.Poll.Interval),
	}
	return errors.Join(steps...)
}

func envInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return mismatch(key, "integer")
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return mismatch(key, "boolean")
	}
	*dst = v
	return nil
}

func envString(key string, dst *string) error {
	if s, ok := os.LookupEnv(key); ok {
		*dst = s
	}
	return nil
}

func envDuration(key string, dst *Duration) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	if err := dst.UnmarshalText([]byte(s)); err != nil {
		return mismatch(key, "duration")
	}
	return nil
}
