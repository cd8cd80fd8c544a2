// Package config loads the host settings and sets up logging.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "PORTALS_"

type WindowSettings struct {
	Title      string  `yaml:"title"`
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
}

type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type BridgeSettings struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type LogSettings struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // empty logs to stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type TermSettings struct {
	FPS     int           `yaml:"fps"`
	KeyHold time.Duration `yaml:"key_hold"`
}

type Settings struct {
	// Content is an optional YAML file replacing the built in portal pages.
	Content string `yaml:"content"`
	// AutoStart skips the title screen.
	AutoStart bool `yaml:"auto_start"`
	// SecretCodeTimeout resets a half typed activation code.
	SecretCodeTimeout time.Duration `yaml:"secret_code_timeout"`

	Window WindowSettings `yaml:"window"`
	Audio  AudioSettings  `yaml:"audio"`
	Bridge BridgeSettings `yaml:"bridge"`
	Log    LogSettings    `yaml:"log"`
	Term   TermSettings   `yaml:"term"`
}

func Default() Settings {
	return Settings{
		SecretCodeTimeout: 3 * time.Second,
		Window: WindowSettings{
			Title: "Portals",
			Scale: 1.5,
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  0.6,
		},
		Bridge: BridgeSettings{
			Addr: ":8080",
		},
		Log: LogSettings{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Term: TermSettings{
			FPS:     30,
			KeyHold: 150 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read settings %s", path)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Settings{}, errors.Wrapf(err, "settings %s", path)
	}
	return s, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, errors.Wrap(err, "decode")
	}
	return s, s.Validate()
}

// ApplyEnv overrides settings from PORTALS_* variables and PORT.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s%s", EnvPrefix, name)
		}
		*dst = b
		return nil
	}

	str("CONTENT", &s.Content)
	str("LOG_LEVEL", &s.Log.Level)
	str("LOG_FORMAT", &s.Log.Format)
	str("LOG_FILE", &s.Log.File)
	str("BRIDGE_ADDR", &s.Bridge.Addr)
	if port, ok := lookup("PORT"); ok && port != "" {
		s.Bridge.Addr = ":" + port
	}
	for name, dst := range map[string]*bool{
		"AUTO_START": &s.AutoStart,
		"AUDIO":      &s.Audio.Enabled,
		"BRIDGE":     &s.Bridge.Enabled,
		"FULLSCREEN": &s.Window.Fullscreen,
	} {
		if err := boolean(name, dst); err != nil {
			return err
		}
	}
	if v, ok := lookup(EnvPrefix + "VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "%sVOLUME", EnvPrefix)
		}
		s.Audio.Volume = f
	}
	return s.Validate()
}

func (s *Settings) Validate() error {
	switch {
	case s.Audio.Volume < 0 || s.Audio.Volume > 1:
		return errors.Errorf("audio.volume %v out of [0, 1]", s.Audio.Volume)
	case s.Window.Scale <= 0:
		return errors.Errorf("window.scale must be positive, got %v", s.Window.Scale)
	case s.Term.FPS <= 0:
		return errors.Errorf("term.fps must be positive, got %d", s.Term.FPS)
	case s.Term.KeyHold <= 0:
		return errors.Errorf("term.key_hold must be positive, got %v", s.Term.KeyHold)
	case s.SecretCodeTimeout <= 0:
		return errors.Errorf("secret_code_timeout must be positive, got %v", s.SecretCodeTimeout)
	case s.Log.Format != "text" && s.Log.Format != "json":
		return errors.Errorf("log.format must be text or json, got %q", s.Log.Format)
	case s.Bridge.Enabled && s.Bridge.Addr == "":
		return errors.New("bridge.addr is required when the bridge is enabled")
	}
	return nil
}
