package moonrunner

import (
	"slices"

	"github.com/vovakirdan/moonrunner/internal/core"
)

// Snapshot is a read-only copy of everything a frontend needs to draw one
// frame. Slices are copies; mutating them does not affect the world.
type Snapshot struct {
	Phase   core.Phase
	Elapsed float64
	Speed   float64

	MaxSpeed float64
	Ramping  bool // False when the difficulty ramp is disabled

	ViewW, ViewH float64
	Ground       float64

	Player    Player
	Obstacles []Obstacle
	PowerUps  []PowerUp

	Trail []TrailMark
	Stars []Star
	Dust  []Dust
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Phase:     w.phase,
		Elapsed:   w.elapsed,
		Speed:     w.speed,
		MaxSpeed:  w.ramp.Max(),
		Ramping:   w.ramp.IsEnabled(),
		ViewW:     w.viewW,
		ViewH:     w.viewH,
		Ground:    w.Ground(),
		Player:    w.player,
		Obstacles: slices.Clone(w.terrain.obstacles),
		PowerUps:  slices.Clone(w.terrain.powerUps),
		Trail:     slices.Clone(w.effects.Trail),
		Stars:     slices.Clone(w.effects.Stars),
		Dust:      slices.Clone(w.effects.Dust),
	}
}

// SpeedTag labels the speed readout: "FIXED" when the ramp is off, "MAX" once
// the ceiling is reached, empty otherwise.
func (s Snapshot) SpeedTag() string {
	switch {
	case !s.Ramping:
		return "FIXED"
	case s.MaxSpeed > 0 && s.Speed >= s.MaxSpeed:
		return "MAX"
	}
	return ""
}
