package moonrunner

import "github.com/vovakirdan/moonrunner/internal/core"

// Presentation-only tuning. Nothing here feeds back into physics or collision.
const (
	starCount       = 120
	starParallax    = 0.1
	dustPerLanding  = 8
	dustGravity     = 400
	dustFade        = 1.5
	dustShrink      = 2
	trailChance     = 0.4
	trailStartAlpha = 0.18
	trailFade       = 0.6
)

// Star is a background dot drifting slower than the course.
type Star struct {
	X, Y   float64
	Radius float64
}

// Dust is a landing particle.
type Dust struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// Effects holds decorative state. It keeps animating in every phase so the
// background stays alive on the title and game over screens.
type Effects struct {
	Stars []Star
	Dust  []Dust
	Trail []TrailMark
	rng   *core.RNG
}

// NewEffects creates the effect layer with its own random stream.
func NewEffects(seed int64, viewW, viewH float64) *Effects {
	e := &Effects{rng: core.NewRNG(seed)}
	e.Stars = make([]Star, starCount)
	for i := range e.Stars {
		e.Stars[i] = Star{
			X:      e.rng.Range(0, viewW),
			Y:      e.rng.Range(0, viewH),
			Radius: e.rng.Range(0.2, 1.7),
		}
	}
	return e
}

// Reset drops transient particles and the trail.
func (e *Effects) Reset() {
	e.Dust = e.Dust[:0]
	e.Trail = e.Trail[:0]
}

// Burst spawns landing dust at the given point.
func (e *Effects) Burst(x, y float64) {
	for i := 0; i < dustPerLanding; i++ {
		e.Dust = append(e.Dust, Dust{
			X:      x,
			Y:      y,
			VX:     e.rng.Range(-100, 100),
			VY:     e.rng.Range(-150, -50),
			Radius: e.rng.Range(2, 5),
			Alpha:  1,
		})
	}
}

// Update scrolls stars and decays particles.
func (e *Effects) Update(dt, speed, viewW, viewH float64) {
	for i := range e.Stars {
		s := &e.Stars[i]
		s.X -= speed * starParallax * dt
		if s.X < -2 {
			s.X = viewW + 2
			s.Y = e.rng.Range(0, viewH)
		}
	}

	alive := e.Dust[:0]
	for _, d := range e.Dust {
		d.X += d.VX * dt
		d.Y += d.VY * dt
		d.VY += dustGravity * dt
		d.Alpha -= dustFade * dt
		d.Radius = max(0, d.Radius-dustShrink*dt)
		if d.Alpha > 0 {
			alive = append(alive, d)
		}
	}
	e.Dust = alive
}

// UpdateTrail fades existing marks and, while running, may add a new one at
// the player's position. The trail is bounded by capacity; the oldest marks
// are dropped first.
func (e *Effects) UpdateTrail(p *Player, dt float64, running bool, capacity int) {
	if running && e.rng.Chance(trailChance) {
		e.Trail = append(e.Trail, TrailMark{X: p.X, Y: p.Y, Alpha: trailStartAlpha})
	}

	alive := e.Trail[:0]
	for _, m := range e.Trail {
		m.Alpha -= trailFade * dt
		if m.Alpha > 0 {
			alive = append(alive, m)
		}
	}
	e.Trail = alive

	if capacity > 0 && len(e.Trail) > capacity {
		e.Trail = append(e.Trail[:0], e.Trail[len(e.Trail)-capacity:]...)
	}
}
