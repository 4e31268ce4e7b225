// Package config loads dashboard settings from a TOML file, a .env file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
	goerrors "github.com/pixil98/go-errors"
)

// DefaultPath is used when neither the flag nor LURKDASH_CONFIG name a file
const DefaultPath = "lurkdash.toml"

// MinFrameInterval keeps the redraw rate at or below roughly 60 frames per second
const MinFrameInterval = 16 * time.Millisecond

// Duration is a time.Duration written as a string ("250ms") in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration the way UnmarshalText reads it
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the full settings tree
type Config struct {
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
	Demo    DemoConfig    `toml:"demo"`
}

type DisplayConfig struct {
	FrameInterval Duration `toml:"frame_interval"`
	FeedWindow    int      `toml:"feed_window"` // Newest messages copied per frame
}

// ThemeConfig holds tcell color names or #rrggbb values, empty keeps the built-in color
type ThemeConfig struct {
	Border     string `toml:"border"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Attack     string `toml:"attack"`
	Defense    string `toml:"defense"`
	Regen      string `toml:"regen"`
}

type AudioConfig struct {
	Enabled  bool     `toml:"enabled"`
	ToneHz   float64  `toml:"tone_hz"`
	Volume   float64  `toml:"volume"` // Log2 gain, 0 is unchanged
	Duration Duration `toml:"duration"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

type DemoConfig struct {
	Simulate bool     `toml:"simulate"`
	Interval Duration `toml:"interval"`
}

// Default returns the settings used when no file is present
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FrameInterval: Duration{250 * time.Millisecond},
			FeedWindow:    256,
		},
		Theme: ThemeConfig{
			Border:     "green",
			Background: "black",
			Text:       "white",
			Attack:     "red",
			Defense:    "darkcyan",
			Regen:      "lightgreen",
		},
		Audio: AudioConfig{
			Enabled:  false,
			ToneHz:   880,
			Volume:   -1,
			Duration: Duration{120 * time.Millisecond},
		},
		Log: LogConfig{
			Dir: "logs",
		},
		Demo: DemoConfig{
			Simulate: true,
			Interval: Duration{2 * time.Second},
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// Unknown keys are rejected so typos do not go unnoticed
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := Decode(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode strictly decodes TOML data into cfg, keys absent from data keep their value
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parsing config: %s", strict.String())
		}
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML
func Encode(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Read loads path, applies environment overrides and validates the result
func Read(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	el := goerrors.NewErrorList()

	el.Add(c.Display.Validate())
	el.Add(c.Theme.Validate())
	el.Add(c.Audio.Validate())
	el.Add(c.Log.Validate())
	el.Add(c.Demo.Validate())

	return el.Err()
}

func (c *DisplayConfig) Validate() error {
	el := goerrors.NewErrorList()

	if c.FrameInterval.Duration < MinFrameInterval {
		el.Add(fmt.Errorf("display.frame_interval must be at least %s", MinFrameInterval))
	}
	if c.FeedWindow < 1 {
		el.Add(fmt.Errorf("display.feed_window must be at least 1"))
	}

	return el.Err()
}

func (c *ThemeConfig) Validate() error {
	el := goerrors.NewErrorList()

	fields := []struct {
		key, value string
	}{
		{"border", c.Border},
		{"background", c.Background},
		{"text", c.Text},
		{"attack", c.Attack},
		{"defense", c.Defense},
		{"regen", c.Regen},
	}
	for _, f := range fields {
		if f.value == "" || f.value == "default" {
			continue
		}
		if tcell.GetColor(f.value) == tcell.ColorDefault {
			el.Add(fmt.Errorf("theme.%s: unknown color %q", f.key, f.value))
		}
	}

	return el.Err()
}

func (c *AudioConfig) Validate() error {
	el := goerrors.NewErrorList()

	if c.ToneHz <= 0 {
		el.Add(fmt.Errorf("audio.tone_hz must be positive"))
	}
	if c.Duration.Duration <= 0 {
		el.Add(fmt.Errorf("audio.duration must be positive"))
	}

	return el.Err()
}

func (c *LogConfig) Validate() error {
	if c.Debug && c.Dir == "" {
		return fmt.Errorf("log.dir is required when log.debug is set")
	}
	return nil
}

func (c *DemoConfig) Validate() error {
	if c.Simulate && c.Interval.Duration <= 0 {
		return fmt.Errorf("demo.interval must be positive when demo.simulate is set")
	}
	return nil
}
