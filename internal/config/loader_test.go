package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() differ:\nyaml: %+v\ncode: %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 1200\ndifficulty:\n  max_speed: 700\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1200 {
		t.Errorf("Gravity = %v, expected 1200", cfg.Physics.Gravity)
	}
	if cfg.Difficulty.MaxSpeed != 700 {
		t.Errorf("MaxSpeed = %v, expected 700", cfg.Difficulty.MaxSpeed)
	}
	// Unmentioned fields keep their defaults
	if cfg.Physics.JumpVelocity != 620 {
		t.Errorf("JumpVelocity = %v, expected default 620", cfg.Physics.JumpVelocity)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[physics]\njump_velocity = 700.0\n\n[powerups]\nduration = 3.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.JumpVelocity != 700 {
		t.Errorf("JumpVelocity = %v, expected 700", cfg.Physics.JumpVelocity)
	}
	if cfg.PowerUps.Duration != 3 {
		t.Errorf("Duration = %v, expected 3", cfg.PowerUps.Duration)
	}
	if cfg.Physics.Gravity != 1650 {
		t.Errorf("Gravity = %v, expected default 1650", cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Isolate from any real user or working-directory config
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("Load(\"\") without overrides should return the defaults")
	}
}

func TestLoadPrefersLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", FileName), []byte("player:\n  width: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Player.Width != 40 {
		t.Errorf("Player.Width = %v, expected 40 from ./configs", cfg.Player.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero ground ratio", func(c *Config) { c.Viewport.GroundRatio = 0 }},
		{"negative player width", func(c *Config) { c.Player.Width = -1 }},
		{"inverted gap", func(c *Config) { c.Terrain.Gap = SizeRange{Min: 500, Max: 100} }},
		{"no obstacle weight", func(c *Config) {
			c.Terrain.Rock.Weight, c.Terrain.Rover.Weight, c.Terrain.Crater.Weight = 0, 0, 0
		}},
		{"negative ramp", func(c *Config) { c.Difficulty.BaseAccel = -1 }},
		{"ceiling below start", func(c *Config) { c.Difficulty.MaxSpeed = 100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject this config")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
