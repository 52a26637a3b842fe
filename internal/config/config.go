package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultBrightness  = 0.5
	DefaultStep        = 0.01
	DefaultFadeStep    = 0.01
	DefaultMenuTick    = 10 * time.Millisecond
	DefaultEffectTick  = 1 * time.Millisecond
	DefaultReleasePoll = 50 * time.Millisecond
	DefaultFaultDwell  = 2 * time.Second
	DefaultScale       = 16
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Brightness BrightnessConfig `yaml:"brightness"`
	Timing     TimingConfig     `yaml:"timing"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
}

type BrightnessConfig struct {
	Default  float64 `yaml:"default"`
	Step     float64 `yaml:"step"`
	FadeStep float64 `yaml:"fade_step"`
}

type TimingConfig struct {
	MenuTick    time.Duration `yaml:"menu_tick"`
	EffectTick  time.Duration `yaml:"effect_tick"`
	ReleasePoll time.Duration `yaml:"release_poll"`
	FaultDwell  time.Duration `yaml:"fault_dwell"`
}

type DisplayConfig struct {
	// Scale is the host window zoom factor; ignored on hardware.
	Scale int `yaml:"scale"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Brightness: BrightnessConfig{
			Default:  DefaultBrightness,
			Step:     DefaultStep,
			FadeStep: DefaultFadeStep,
		},
		Timing: TimingConfig{
			MenuTick:    DefaultMenuTick,
			EffectTick:  DefaultEffectTick,
			ReleasePoll: DefaultReleasePoll,
			FaultDwell:  DefaultFaultDwell,
		},
		Display: DisplayConfig{Scale: DefaultScale},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	b := c.Brightness
	if b.Default < 0 || b.Default > 1 {
		return fmt.Errorf("%w: brightness.default %v not in [0,1]", ErrInvalid, b.Default)
	}
	if b.Step <= 0 || b.Step > 1 {
		return fmt.Errorf("%w: brightness.step %v not in (0,1]", ErrInvalid, b.Step)
	}
	if b.FadeStep <= 0 || b.FadeStep > 1 {
		return fmt.Errorf("%w: brightness.fade_step %v not in (0,1]", ErrInvalid, b.FadeStep)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"timing.menu_tick", c.Timing.MenuTick},
		{"timing.effect_tick", c.Timing.EffectTick},
		{"timing.release_poll", c.Timing.ReleasePoll},
		{"timing.fault_dwell", c.Timing.FaultDwell},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, d.name, d.d)
		}
	}

	if c.Display.Scale <= 0 {
		return fmt.Errorf("%w: display.scale must be positive, got %d", ErrInvalid, c.Display.Scale)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level (debug, info, warn, error).
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}
