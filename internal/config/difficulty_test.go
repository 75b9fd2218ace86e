package config

import (
	"math"
	"testing"
)

func TestSpeedRampBounds(t *testing.T) {
	ramp := NewSpeedRamp(DefaultConfig().Difficulty)

	speed := ramp.Initial()
	if speed != 340 {
		t.Fatalf("Initial() = %v, expected 340", speed)
	}

	elapsed := 0.0
	dt := 1.0 / 60
	for i := 0; i < 60*600; i++ {
		elapsed += dt
		next := ramp.Advance(speed, elapsed, dt)
		if next < speed {
			t.Fatalf("speed decreased from %v to %v at tick %d", speed, next, i)
		}
		if next < 340 || next > 800 {
			t.Fatalf("speed %v out of [340, 800] at tick %d", next, i)
		}
		speed = next
	}

	if speed != 800 {
		t.Errorf("speed after ten minutes = %v, expected ceiling 800", speed)
	}
}

func TestSpeedRampStep(t *testing.T) {
	ramp := NewSpeedRamp(DefaultConfig().Difficulty)

	tests := []struct {
		name    string
		speed   float64
		elapsed float64
		dt      float64
		want    float64
	}{
		{"base acceleration only", 340, 0, 0.5, 343},
		{"ramp term grows with time", 400, 10, 1, 400 + 6 + 1.2},
		{"clamped at ceiling", 799, 100, 1, 800},
		{"zero dt keeps speed", 500, 30, 0, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ramp.Advance(tc.speed, tc.elapsed, tc.dt)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Advance(%v, %v, %v) = %v, expected %v", tc.speed, tc.elapsed, tc.dt, got, tc.want)
			}
		})
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	ramp := NewSpeedRamp(cfg.Difficulty)

	if ramp.IsEnabled() {
		t.Fatal("fixed preset should disable the ramp")
	}
	if got := ramp.Advance(340, 50, 1); got != 340 {
		t.Errorf("disabled ramp changed speed to %v", got)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		baseAccel float64
	}{
		{"", true, 6},
		{DifficultyEasy, true, 3},
		{DifficultyNormal, true, 6},
		{DifficultyHard, true, 9},
		{DifficultyFixed, false, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if math.Abs(cfg.Difficulty.BaseAccel-tc.baseAccel) > 1e-9 {
				t.Errorf("BaseAccel = %v, expected %v", cfg.Difficulty.BaseAccel, tc.baseAccel)
			}
			if cfg.Difficulty.StartSpeed != 340 || cfg.Difficulty.MaxSpeed != 800 {
				t.Error("presets must not change speed bounds")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to the empty preset")
	}
}
