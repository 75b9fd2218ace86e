package config

import "math"

// SpeedRamp computes the scroll speed as a run progresses. Speed is the only
// difficulty knob: it grows from a constant acceleration plus a term that
// scales with survival time, bounded by [StartSpeed, MaxSpeed].
type SpeedRamp struct {
	cfg DifficultyConfig
}

// NewSpeedRamp creates a speed ramp from the difficulty config.
func NewSpeedRamp(cfg DifficultyConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether the ramp changes speed at all.
func (d *SpeedRamp) IsEnabled() bool {
	return d.cfg.Enabled
}

// Initial returns the speed at the start of a run.
func (d *SpeedRamp) Initial() float64 {
	return d.cfg.StartSpeed
}

// Max returns the speed ceiling.
func (d *SpeedRamp) Max() float64 {
	return d.cfg.MaxSpeed
}

// Advance returns the speed after dt seconds, given the survival time so far.
// The result never decreases and stays within [StartSpeed, MaxSpeed].
func (d *SpeedRamp) Advance(speed, elapsed, dt float64) float64 {
	if !d.cfg.Enabled {
		return clampF(speed, d.cfg.StartSpeed, d.cfg.MaxSpeed)
	}
	accel := d.cfg.BaseAccel + d.cfg.RampFactor*elapsed
	return clampF(speed+dt*accel, d.cfg.StartSpeed, d.cfg.MaxSpeed)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
