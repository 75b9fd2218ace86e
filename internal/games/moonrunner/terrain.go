package moonrunner

import (
	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
)

// Terrain handles spawning, scrolling and removal of obstacles and power-ups.
// It never reads or writes player state.
type Terrain struct {
	obstacles []Obstacle
	powerUps  []PowerUp
	rng       *core.RNG
	cfg       config.TerrainConfig
	powerCfg  config.PowerUpConfig
}

// NewTerrain creates an empty course generator with the given RNG seed.
func NewTerrain(seed int64, cfg config.TerrainConfig, powerCfg config.PowerUpConfig) *Terrain {
	return &Terrain{
		obstacles: make([]Obstacle, 0, cfg.BootstrapCount+cfg.RefillCount),
		powerUps:  make([]PowerUp, 0, 8),
		rng:       core.NewRNG(seed),
		cfg:       cfg,
		powerCfg:  powerCfg,
	}
}

// Reset clears the course, reseeds the RNG and lays out the opening stretch.
func (t *Terrain) Reset(seed int64, viewW, ground float64) {
	t.obstacles = t.obstacles[:0]
	t.powerUps = t.powerUps[:0]
	t.rng.Reseed(seed)
	t.bootstrap(viewW, ground)
}

// bootstrap places the opening obstacles beyond the right edge of the viewport.
func (t *Terrain) bootstrap(viewW, ground float64) {
	x := viewW + t.cfg.StartOffset
	for i := 0; i < t.cfg.BootstrapCount; i++ {
		x += t.gap()
		t.place(x, ground)
		t.maybeDropPowerUp(x, ground, t.powerCfg.BootstrapChance)
	}
}

// Update scrolls the course left, drops what left the screen and refills the
// tail when it gets close to the viewport.
func (t *Terrain) Update(dt, speed, viewW, ground float64) {
	shift := speed * dt

	for i := range t.obstacles {
		t.obstacles[i].X -= shift
	}
	for i := range t.powerUps {
		t.powerUps[i].X -= shift
	}

	t.prune()

	if t.needsRefill(viewW) {
		t.refill(viewW, ground)
	}
}

// prune removes obstacles and power-ups that moved off the left side.
func (t *Terrain) prune() {
	validObstacles := t.obstacles[:0]
	for _, o := range t.obstacles {
		if o.X+o.W > 0 {
			validObstacles = append(validObstacles, o)
		}
	}
	t.obstacles = validObstacles

	validPowerUps := t.powerUps[:0]
	for _, p := range t.powerUps {
		if p.X+p.Radius > 0 {
			validPowerUps = append(validPowerUps, p)
		}
	}
	t.powerUps = validPowerUps
}

// needsRefill reports whether the last obstacle is within the lookahead.
func (t *Terrain) needsRefill(viewW float64) bool {
	tail, ok := t.Tail()
	return !ok || tail < viewW*t.cfg.LookaheadFactor
}

// refill appends a batch of obstacles after the current tail.
func (t *Terrain) refill(viewW, ground float64) {
	start := viewW
	if tail, ok := t.Tail(); ok {
		start = tail
	}

	x := start + t.gap()
	for i := 0; i < t.cfg.RefillCount; i++ {
		t.place(x, ground)
		t.maybeDropPowerUp(x, ground, t.powerCfg.RefillChance)
		x += t.gap()
	}
}

// gap returns a random distance between consecutive obstacles.
func (t *Terrain) gap() float64 {
	return t.size(t.cfg.Gap)
}

// size draws a value from the range. A degenerate range returns Min without
// consuming randomness.
func (t *Terrain) size(r config.SizeRange) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return t.rng.Range(r.Min, r.Max)
}

// pickKind chooses an obstacle kind by configured weight.
func (t *Terrain) pickKind() ObstacleKind {
	rock, rover, crater := t.cfg.Rock.Weight, t.cfg.Rover.Weight, t.cfg.Crater.Weight
	roll := t.rng.Float64() * (rock + rover + crater)
	switch {
	case roll < rock:
		return KindRock
	case roll < rock+rover:
		return KindRover
	default:
		return KindCrater
	}
}

// shape returns the configured footprint for a kind.
func (t *Terrain) shape(kind ObstacleKind) config.ObstacleShape {
	switch kind {
	case KindRock:
		return t.cfg.Rock
	case KindRover:
		return t.cfg.Rover
	case KindCrater:
		return t.cfg.Crater
	default:
		return t.cfg.Rock
	}
}

// place appends one obstacle with its left edge at x.
func (t *Terrain) place(x, ground float64) {
	kind := t.pickKind()
	shape := t.shape(kind)

	w := t.size(shape.Width)
	h := t.size(shape.Height)

	// Solid obstacles sit on the ground; embedded ones poke Sink units above it.
	y := ground - h
	if shape.Sink > 0 {
		y = ground - shape.Sink
	}

	t.obstacles = append(t.obstacles, Obstacle{Kind: kind, X: x, Y: y, W: w, H: h})
}

// maybeDropPowerUp places a power-up above and ahead of the obstacle at x.
func (t *Terrain) maybeDropPowerUp(x, ground, chance float64) {
	if !t.rng.Chance(chance) {
		return
	}
	t.powerUps = append(t.powerUps, PowerUp{
		Kind:   PowerAntiGravity,
		X:      x + t.size(t.powerCfg.OffsetX),
		Y:      ground - t.size(t.powerCfg.Lift),
		Radius: t.powerCfg.Radius,
	})
}

// Tail returns the x of the last obstacle, or false when the course is empty.
func (t *Terrain) Tail() (float64, bool) {
	if len(t.obstacles) == 0 {
		return 0, false
	}
	return t.obstacles[len(t.obstacles)-1].X, true
}

// Obstacles returns the live obstacles ordered by x.
func (t *Terrain) Obstacles() []Obstacle {
	return t.obstacles
}

// PowerUps returns the live power-ups.
func (t *Terrain) PowerUps() []PowerUp {
	return t.powerUps
}
