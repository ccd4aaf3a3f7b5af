// Package config reads the settings of the diagnostic binary and its host from
// the environment.
// Command-line flags in main override whatever is set here.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvFBDevice       = "GUIBRIDGE_FB"
	EnvInputGlob      = "GUIBRIDGE_INPUT"
	EnvFPS            = "GUIBRIDGE_FPS"
	EnvDebug          = "GUIBRIDGE_DEBUG"
	EnvNoCursorChange = "GUIBRIDGE_NO_CURSOR_CHANGE"
	EnvStdioLog       = "GUIBRIDGE_STDIO_LOG"
)

const (
	DefaultFBDevice  = "/dev/fb0"
	DefaultInputGlob = "/dev/input/event*"
	DefaultFPS       = 30
	MaxFPS           = 240
)

type Config struct {
	FBDevice  string
	InputGlob string
	FPS       int
	Debug     bool
	// NoCursorChange stops the backend from changing the host cursor shape.
	NoCursorChange bool
	StdioLog       string
}

func Default() Config {
	return Config{
		FBDevice:  DefaultFBDevice,
		InputGlob: DefaultInputGlob,
		FPS:       DefaultFPS,
	}
}

// FromEnv starts from Default and applies any GUIBRIDGE_* variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvFBDevice); ok && v != "" {
		cfg.FBDevice = v
	}
	if v, ok := lookup(EnvInputGlob); ok && v != "" {
		cfg.InputGlob = v
	}
	if v, ok := lookup(EnvStdioLog); ok {
		cfg.StdioLog = v
	}
	if raw, ok := lookup(EnvFPS); ok && raw != "" {
		fps, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvFPS, raw, err)
		}
		cfg.FPS = fps
	}

	var err error
	if cfg.Debug, err = parseBool(lookup, EnvDebug); err != nil {
		return Config{}, err
	}
	if cfg.NoCursorChange, err = parseBool(lookup, EnvNoCursorChange); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func parseBool(lookup func(string) (string, bool), key string) (bool, error) {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q): %w", key, raw, err)
	}
	return parsed, nil
}

// Validate checks ranges after env and flags were applied.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be in [1,%d], got %d", MaxFPS, c.FPS)
	}
	if c.FBDevice == "" {
		return fmt.Errorf("framebuffer device must not be empty")
	}
	return nil
}
