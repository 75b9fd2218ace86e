package moonrunner

import (
	"math"

	"github.com/vovakirdan/moonrunner/internal/core"
)

// Crater hit test tuning: only the middle of the player's footprint can fall
// in, and only when the feet are at the ground line.
const (
	craterFootLeft   = 0.4
	craterFootRight  = 0.6
	craterFeetMargin = 2.0
)

// HitsObstacle tests whether the player collides with a single obstacle.
func HitsObstacle(p *Player, o Obstacle, ground float64) bool {
	switch o.Kind {
	case KindRock, KindRover:
		return p.Rect().Intersects(o.Rect())
	case KindCrater:
		return fallsIntoCrater(p, o, ground)
	default:
		return false
	}
}

// fallsIntoCrater models dropping into a gap rather than passing over it.
func fallsIntoCrater(p *Player, c Obstacle, ground float64) bool {
	inX := p.X+p.W*craterFootLeft < c.X+c.W && p.X+p.W*craterFootRight > c.X
	return inX && p.Feet() >= ground-craterFeetMargin && p.VY >= 0
}

// CheckCollision returns the first obstacle the player hits, if any.
func CheckCollision(p *Player, obstacles []Obstacle, ground float64) (Obstacle, bool) {
	for _, o := range obstacles {
		if HitsObstacle(p, o, ground) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// touchesPowerUp is a circle test against the player's center.
func touchesPowerUp(p *Player, pu PowerUp) bool {
	cx, cy := p.Rect().Center()
	return core.Dist(cx, cy, pu.X, pu.Y) < pu.Radius+math.Max(p.W, p.H)/2
}

// CollectPowerUps removes every power-up the player touches and applies its
// effect. Returns the remaining power-ups and how many were collected.
func CollectPowerUps(p *Player, powerUps []PowerUp, duration float64) ([]PowerUp, int) {
	collected := 0
	remaining := powerUps[:0]
	for _, pu := range powerUps {
		if !touchesPowerUp(p, pu) {
			remaining = append(remaining, pu)
			continue
		}
		collected++
		switch pu.Kind {
		case PowerAntiGravity:
			// Overwrite, never stack
			p.AntiGravity = duration
		}
	}
	return remaining, collected
}
