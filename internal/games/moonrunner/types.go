package moonrunner

import "github.com/vovakirdan/moonrunner/internal/core"

// ObstacleKind tags the obstacle variants. Collision and rendering switch
// over every kind explicitly.
type ObstacleKind int

const (
	KindRock ObstacleKind = iota
	KindRover
	KindCrater
)

// String returns the kind name used in logs and run history.
func (k ObstacleKind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindRover:
		return "rover"
	case KindCrater:
		return "crater"
	default:
		return "unknown"
	}
}

// Solid reports whether touching the obstacle anywhere ends the run.
func (k ObstacleKind) Solid() bool {
	switch k {
	case KindRock, KindRover:
		return true
	case KindCrater:
		return false
	default:
		return false
	}
}

// Obstacle is a single piece of the course in world coordinates.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64 // Top-left corner
	W, H float64
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// PowerUpKind tags the power-up variants.
type PowerUpKind int

const (
	PowerAntiGravity PowerUpKind = iota
)

// String returns the kind name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerAntiGravity:
		return "anti-gravity"
	default:
		return "unknown"
	}
}

// PowerUp is a circular pickup. X, Y is the center.
type PowerUp struct {
	Kind   PowerUpKind
	X, Y   float64
	Radius float64
}

// TrailMark is a fading afterimage of the player. Presentation only.
type TrailMark struct {
	X, Y  float64
	Alpha float64
}
