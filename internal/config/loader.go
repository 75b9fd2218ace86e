package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the base name looked up in the config search chain.
const FileName = "moonrunner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.moonrunner/configs/moonrunner.yaml ->
// ./configs/moonrunner.yaml -> embedded default.
// Only an explicit customPath can fail; the implicit locations are skipped
// when missing or unreadable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatFor(customPath))
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, FormatYAML); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data, FormatYAML); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format identifies a config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// formatFor picks the decoder from the file extension.
func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes a config document on top of DefaultConfig, so partial files
// only override the fields they mention.
func Parse(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.Viewport.GroundRatio <= 0 || c.Viewport.GroundRatio > 1:
		return fmt.Errorf("config: viewport.ground_ratio must be in (0, 1], got %v", c.Viewport.GroundRatio)
	case c.Viewport.MaxDelta <= 0:
		return fmt.Errorf("config: viewport.max_delta must be positive, got %v", c.Viewport.MaxDelta)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Terrain.Gap.Min <= 0 || c.Terrain.Gap.Max < c.Terrain.Gap.Min:
		return fmt.Errorf("config: terrain.gap must satisfy 0 < min <= max, got [%v, %v]", c.Terrain.Gap.Min, c.Terrain.Gap.Max)
	case c.Terrain.Rock.Weight+c.Terrain.Rover.Weight+c.Terrain.Crater.Weight <= 0:
		return fmt.Errorf("config: terrain obstacle weights must sum to a positive value")
	case c.Difficulty.BaseAccel < 0 || c.Difficulty.RampFactor < 0:
		return fmt.Errorf("config: difficulty ramp terms must not be negative")
	case c.Difficulty.MaxSpeed < c.Difficulty.StartSpeed:
		return fmt.Errorf("config: difficulty.max_speed %v is below start_speed %v", c.Difficulty.MaxSpeed, c.Difficulty.StartSpeed)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".moonrunner", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Speed bounds are left untouched; presets only scale or disable the ramp.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		scale := RampScaleForPreset(preset)
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseAccel *= scale
		cfg.Difficulty.RampFactor *= scale
	}
}
