package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
	if cfg.Brightness.Default != DefaultBrightness {
		t.Errorf("expected brightness %v, got %v", DefaultBrightness, cfg.Brightness.Default)
	}
	if cfg.Timing.FaultDwell != 2*time.Second {
		t.Errorf("expected 2s dwell, got %v", cfg.Timing.FaultDwell)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"brightness above one", func(c *Config) { c.Brightness.Default = 1.5 }},
		{"negative brightness", func(c *Config) { c.Brightness.Default = -0.1 }},
		{"zero step", func(c *Config) { c.Brightness.Step = 0 }},
		{"zero fade step", func(c *Config) { c.Brightness.FadeStep = 0 }},
		{"zero effect tick", func(c *Config) { c.Timing.EffectTick = 0 }},
		{"negative dwell", func(c *Config) { c.Timing.FaultDwell = -time.Second }},
		{"zero scale", func(c *Config) { c.Display.Scale = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unicorn.yaml")
	data := []byte("brightness:\n  default: 0.8\ntiming:\n  menu_tick: 20ms\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Brightness.Default != 0.8 {
		t.Errorf("expected brightness 0.8, got %v", cfg.Brightness.Default)
	}
	if cfg.Brightness.Step != DefaultStep {
		t.Errorf("expected default step kept, got %v", cfg.Brightness.Step)
	}
	if cfg.Timing.MenuTick != 20*time.Millisecond {
		t.Errorf("expected 20ms menu tick, got %v", cfg.Timing.MenuTick)
	}
	if cfg.Timing.EffectTick != DefaultEffectTick {
		t.Errorf("expected default effect tick kept, got %v", cfg.Timing.EffectTick)
	}
	lvl, err := cfg.LogLevel()
	if err != nil || lvl != slog.LevelDebug {
		t.Errorf("expected debug level, got %v (%v)", lvl, err)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("brightness:\n  step: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
