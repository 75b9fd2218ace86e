package moonrunner

import (
	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
)

// Player is the runner. Y is the top edge; positive Y points down, so the
// player stands on the ground when Y+H equals the ground line.
type Player struct {
	X, Y        float64
	W, H        float64
	VY          float64 // Vertical velocity, negative = up
	Grounded    bool
	AntiGravity float64 // Seconds of anti-gravity left, 0 = inactive
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Feet returns the y-coordinate of the player's bottom edge.
func (p *Player) Feet() float64 {
	return p.Y + p.H
}

// Boosted reports whether anti-gravity is active.
func (p *Player) Boosted() bool {
	return p.AntiGravity > 0
}

// placeOnGround snaps the player to the ground line and stops vertical motion.
func (p *Player) placeOnGround(ground float64) {
	p.Y = ground - p.H
	p.VY = 0
	p.Grounded = true
}

// Physics integrates the player's vertical motion.
type Physics struct {
	cfg config.PhysicsConfig
}

// NewPhysics creates a physics model from config.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	return Physics{cfg: cfg}
}

// Jump launches a grounded player. Returns false when airborne.
func (ph Physics) Jump(p *Player) bool {
	if !p.Grounded {
		return false
	}
	boost := 1.0
	if p.Boosted() {
		boost = ph.cfg.AntiGravityJump
	}
	p.VY = -ph.cfg.JumpVelocity * boost
	p.Grounded = false
	return true
}

// FastFall adds a downward impulse to an airborne player.
// Repeated calls stack unless max_fall_speed is configured.
func (ph Physics) FastFall(p *Player) bool {
	if p.Grounded {
		return false
	}
	p.VY += ph.cfg.Gravity * ph.cfg.FastFallFactor
	if ph.cfg.MaxFallSpeed > 0 && p.VY > ph.cfg.MaxFallSpeed {
		p.VY = ph.cfg.MaxFallSpeed
	}
	return true
}

// Step advances the player by dt seconds against the given ground line.
// Returns true when an airborne player touched down this step.
func (ph Physics) Step(p *Player, dt, ground float64) bool {
	wasGrounded := p.Grounded

	scale := 1.0
	if p.Boosted() {
		scale = ph.cfg.AntiGravityScale
	}
	p.VY += ph.cfg.Gravity * dt * scale
	p.Y += p.VY * dt

	landed := false
	if p.Feet() >= ground {
		p.placeOnGround(ground)
		landed = !wasGrounded
	}

	if p.AntiGravity > 0 {
		p.AntiGravity = max(0, p.AntiGravity-dt)
	}
	return landed
}
