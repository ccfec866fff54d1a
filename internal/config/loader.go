package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

var sections = []string{"resolution", "decoration", "target", "logging", "poll"}

// Load reads and validates the file at path. Keys missing from the file keep
// their default values. When the file does not exist Load returns the
// defaults together with an error wrapping ErrFileNotFound so the caller can
// decide whether that matters.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cfg, err = ParseJSON(path, data)
	case ".toml":
		cfg, err = ParseTOML(path, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseJSON decodes the config.json layout on top of the defaults.
func ParseJSON(source string, data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Message: "invalid JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, mismatch("<root>", "object")
	}
	for _, s := range sections {
		if v := root.Get(s); v.Exists() && !v.IsObject() {
			return nil, mismatch(s, "object")
		}
	}

	cfg := Default()
	r := &cfg.Resolution
	steps := []error{
		jsonBool(root, "resolution.letterboxing", &r.Letterboxing),
		jsonInt(root, "resolution.width", &r.Width),
		jsonInt(root, "resolution.height", &r.Height),
		jsonInt(root, "resolution.horizontalPosition", &r.HorizontalPosition),
		jsonInt(root, "resolution.verticalPosition", &r.VerticalPosition),
		jsonBool(root, "decoration.leftHanded", &cfg.Decoration.LeftHanded),
		jsonString(root, "target.titlePrefix", &cfg.Target.TitlePrefix),
		jsonString(root, "logging.level", &cfg.Logging.Level),
		jsonDuration(root, "poll.interval", &cfg.Poll.Interval),
	}
	if err := errors.Join(steps...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTOML decodes TOML on top of the defaults.
func ParseTOML(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("line %d, column %d: %s", row, col, derr.Error()),
				Err:     err,
			}
		}
		if errors.Is(err, ErrTypeMismatch) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return cfg, nil
}

func jsonBool(root gjson.Result, key string, dst *bool) error {
	v := root.Get(key)
	if !v.Exists() {
		return nil
	}
	if v.Type != gjson.True && v.Type != gjson.False {
		return mismatch(key, "boolean")
	}
	*dst = v.Bool()
	return nil
}

func jsonInt(root gjson.Result, key string, dst *int) error {
	v := root.Get(key)
	if !v.Exists() {
		return nil
	}
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return mismatch(key, "integer")
	}
	*dst = int(v.Int())
	return nil
}

func jsonString(root gjson.Result, key string, dst *string) error {
	v := root.Get(key)
	if !v.Exists() {
		return nil
	}
	if v.Type != gjson.String {
		return mismatch(key, "string")
	}
	*dst = v.String()
	return nil
}

func jsonDuration(root gjson.Result, key string, dst *Duration) error {
	var s string
	if err := jsonString(root, key, &s); err != nil || s == "" {
		return err
	}
	if err := dst.UnmarshalText([]byte(s)); err != nil {
		return mismatch(key, "duration")
	}
	return nil
}
