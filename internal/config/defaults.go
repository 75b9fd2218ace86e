package config

import (
	_ "embed"
)

//go:embed defaults/moonrunner.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/moonrunner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{
			GroundRatio: 0.8,
			MaxDelta:    0.033,
		},
		Physics: PhysicsConfig{
			Gravity:          1650,
			JumpVelocity:     620,
			FastFallFactor:   0.1,
			MaxFallSpeed:     0,
			AntiGravityScale: 0.55,
			AntiGravityJump:  1.6,
		},
		Player: PlayerConfig{
			LaneRatio: 0.18,
			Width:     46,
			Height:    64,
			TrailCap:  32,
		},
		Terrain: TerrainConfig{
			Gap:             SizeRange{Min: 280, Max: 520},
			StartOffset:     200,
			BootstrapCount:  20,
			RefillCount:     6,
			LookaheadFactor: 1.2,
			Rock: ObstacleShape{
				Weight: 0.45,
				Width:  SizeRange{Min: 36, Max: 52},
				Height: SizeRange{Min: 36, Max: 60},
			},
			Rover: ObstacleShape{
				Weight: 0.35,
				Width:  SizeRange{Min: 90, Max: 130},
				Height: SizeRange{Min: 44, Max: 56},
			},
			Crater: ObstacleShape{
				Weight: 0.20,
				Width:  SizeRange{Min: 120, Max: 200},
				Height: SizeRange{Min: 24, Max: 24},
				Sink:   8,
			},
		},
		PowerUps: PowerUpConfig{
			BootstrapChance: 0.28,
			RefillChance:    0.25,
			OffsetX:         SizeRange{Min: 60, Max: 120},
			Lift:            SizeRange{Min: 120, Max: 180},
			Radius:          12,
			Duration:        5.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartSpeed: 340,
			MaxSpeed:   800,
			BaseAccel:  6,
			RampFactor: 0.12,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
