// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for the runner.
package config

// Config contains all tunables for a run. Defaults reproduce the classic
// moon runner balance; every field can be overridden from a config file.
type Config struct {
	Viewport   ViewportConfig   `yaml:"viewport" toml:"viewport"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Terrain    TerrainConfig    `yaml:"terrain" toml:"terrain"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ViewportConfig defines how the ground line and the simulation clock relate
// to the viewport.
type ViewportConfig struct {
	GroundRatio float64 `yaml:"ground_ratio" toml:"ground_ratio"` // Ground line as a fraction of height
	MaxDelta    float64 `yaml:"max_delta" toml:"max_delta"`       // Largest dt accepted per tick, seconds
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity" toml:"gravity"`
	JumpVelocity     float64 `yaml:"jump_velocity" toml:"jump_velocity"`
	FastFallFactor   float64 `yaml:"fast_fall_factor" toml:"fast_fall_factor"`     // Impulse as a fraction of gravity
	MaxFallSpeed     float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`         // Fast-fall velocity cap, 0 = uncapped
	AntiGravityScale float64 `yaml:"anti_gravity_scale" toml:"anti_gravity_scale"` // Gravity multiplier while boosted
	AntiGravityJump  float64 `yaml:"anti_gravity_jump" toml:"anti_gravity_jump"`   // Jump multiplier while boosted
}

// PlayerConfig defines the player's box and lane.
type PlayerConfig struct {
	LaneRatio float64 `yaml:"lane_ratio" toml:"lane_ratio"` // X position as a fraction of viewport width
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	TrailCap  int     `yaml:"trail_cap" toml:"trail_cap"`
}

// SizeRange is an inclusive-exclusive range of random sizes.
type SizeRange struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// ObstacleShape defines the random footprint of one obstacle kind.
type ObstacleShape struct {
	Weight float64   `yaml:"weight" toml:"weight"`
	Width  SizeRange `yaml:"width" toml:"width"`
	Height SizeRange `yaml:"height" toml:"height"`
	Sink   float64   `yaml:"sink" toml:"sink"` // Height above ground for embedded obstacles, 0 = sits on ground
}

// TerrainConfig defines procedural course generation.
type TerrainConfig struct {
	Gap             SizeRange     `yaml:"gap" toml:"gap"`
	StartOffset     float64       `yaml:"start_offset" toml:"start_offset"`         // Distance past the viewport where the course begins
	BootstrapCount  int           `yaml:"bootstrap_count" toml:"bootstrap_count"`   // Obstacles placed at run start
	RefillCount     int           `yaml:"refill_count" toml:"refill_count"`         // Obstacles placed per refill
	LookaheadFactor float64       `yaml:"lookahead_factor" toml:"lookahead_factor"` // Refill when the tail is within this many viewport widths
	Rock            ObstacleShape `yaml:"rock" toml:"rock"`
	Rover           ObstacleShape `yaml:"rover" toml:"rover"`
	Crater          ObstacleShape `yaml:"crater" toml:"crater"`
}

// PowerUpConfig defines power-up placement and effect.
type PowerUpConfig struct {
	BootstrapChance float64   `yaml:"bootstrap_chance" toml:"bootstrap_chance"`
	RefillChance    float64   `yaml:"refill_chance" toml:"refill_chance"`
	OffsetX         SizeRange `yaml:"offset_x" toml:"offset_x"`
	Lift            SizeRange `yaml:"lift" toml:"lift"` // Height above ground
	Radius          float64   `yaml:"radius" toml:"radius"`
	Duration        float64   `yaml:"duration" toml:"duration"` // Anti-gravity seconds granted on pickup
}

// DifficultyConfig defines the scroll speed ramp.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	StartSpeed float64 `yaml:"start_speed" toml:"start_speed"`
	MaxSpeed   float64 `yaml:"max_speed" toml:"max_speed"`
	BaseAccel  float64 `yaml:"base_accel" toml:"base_accel"`   // Constant acceleration, units/s²
	RampFactor float64 `yaml:"ramp_factor" toml:"ramp_factor"` // Extra acceleration per survived second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// RampScaleForPreset returns the multiplier applied to both ramp terms.
func RampScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
