// Package moonrunner implements the moon runner simulation: a player on a
// fixed lane jumps over rocks and rovers and avoids craters while the course
// scrolls left at an ever increasing speed.
//
// The simulation works in abstract world units with Y pointing down. It is
// driven by Tick and knows nothing about terminals or windows.
package moonrunner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
)

// effectsSeedOffset separates the presentation RNG stream from the course.
const effectsSeedOffset = 0x5eed

// World owns every piece of run state. It is not safe for concurrent use;
// exactly one frontend loop drives it.
type World struct {
	cfg     config.Config
	physics Physics
	ramp    *config.SpeedRamp
	terrain *Terrain
	effects *Effects
	player  Player

	phase   core.Phase
	elapsed float64
	speed   float64

	viewW, viewH float64
	seed         int64
	runs         int64

	log *log.Logger
}

// New creates a world in the Idle phase with the opening course already laid
// out, so frontends have something to draw behind the title screen.
// A nil logger means log.Default().
func New(cfg config.Config, viewW, viewH float64, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	w := &World{
		cfg:     cfg,
		physics: NewPhysics(cfg.Physics),
		ramp:    config.NewSpeedRamp(cfg.Difficulty),
		terrain: NewTerrain(seed, cfg.Terrain, cfg.PowerUps),
		effects: NewEffects(seed+effectsSeedOffset, viewW, viewH),
		phase:   core.PhaseIdle,
		viewW:   viewW,
		viewH:   viewH,
		seed:    seed,
		log:     logger,
	}
	w.reset()
	return w
}

// reset puts the player on the start lane and rebuilds the course.
// Each run gets its own course seed so replays differ but stay reproducible.
func (w *World) reset() {
	w.elapsed = 0
	w.speed = w.ramp.Initial()
	w.physics = NewPhysics(w.cfg.Physics)

	w.player = Player{
		X: w.viewW * w.cfg.Player.LaneRatio,
		W: w.cfg.Player.Width,
		H: w.cfg.Player.Height,
	}
	w.player.placeOnGround(w.Ground())

	w.effects.Reset()
	w.terrain.Reset(w.seed+w.runs, w.viewW, w.Ground())
}

// Start resets the world and begins a new run from any phase.
func (w *World) Start() {
	w.reset()
	w.runs++
	w.phase = core.PhaseRunning
	w.log.Debug("run started", "run", w.runs, "speed", w.speed)
}

// Jump launches the player if a run is active and the player is grounded.
func (w *World) Jump() bool {
	if w.phase != core.PhaseRunning {
		return false
	}
	return w.physics.Jump(&w.player)
}

// FastFall pushes an airborne player down during a run.
func (w *World) FastFall() bool {
	if w.phase != core.PhaseRunning {
		return false
	}
	return w.physics.FastFall(&w.player)
}

// Resize changes the viewport. Frontends are expected to pass positive sizes.
// Outside a run the player is kept standing on the new ground line.
func (w *World) Resize(viewW, viewH float64) {
	w.viewW = viewW
	w.viewH = viewH
	if w.phase != core.PhaseRunning {
		w.player.X = viewW * w.cfg.Player.LaneRatio
		w.player.placeOnGround(w.Ground())
	}
}

// Ground returns the y of the ground line for the current viewport.
func (w *World) Ground() float64 {
	return w.viewH * w.cfg.Viewport.GroundRatio
}

// Tick advances the world by dt seconds. Inputs are applied first in a fixed
// order (Start, Jump, FastFall); then, while running, the clock, speed ramp,
// physics, terrain and collision are stepped in that order.
func (w *World) Tick(dt float64, in core.InputFrame) core.StepResult {
	dt = core.ClampF(dt, 0, w.cfg.Viewport.MaxDelta)

	var res core.StepResult
	if in.Has(core.ActionStart) {
		w.Start()
		res.Events = append(res.Events, core.EventStarted)
	}
	if in.Has(core.ActionJump) && w.Jump() {
		res.Events = append(res.Events, core.EventJumped)
	}
	if in.Has(core.ActionFastFall) {
		w.FastFall()
	}

	running := w.phase == core.PhaseRunning
	if running {
		w.step(dt, &res)
	}

	w.effects.Update(dt, w.speed, w.viewW, w.viewH)
	w.effects.UpdateTrail(&w.player, dt, w.phase == core.PhaseRunning, w.cfg.Player.TrailCap)

	res.State = w.State()
	return res
}

// step runs one simulation step of an active run.
func (w *World) step(dt float64, res *core.StepResult) {
	ground := w.Ground()

	w.elapsed += dt
	w.speed = w.ramp.Advance(w.speed, w.elapsed, dt)

	if w.physics.Step(&w.player, dt, ground) {
		res.Events = append(res.Events, core.EventLanded)
		w.effects.Burst(w.player.X+w.player.W/2, ground)
	}

	w.terrain.Update(dt, w.speed, w.viewW, ground)

	if o, hit := CheckCollision(&w.player, w.terrain.obstacles, ground); hit {
		w.phase = core.PhaseOver
		res.Events = append(res.Events, core.EventCrashed)
		res.Cause = o.Kind.String()
		w.log.Debug("run over", "cause", res.Cause, "elapsed", w.elapsed, "speed", w.speed)
		return
	}

	var collected int
	w.terrain.powerUps, collected = CollectPowerUps(&w.player, w.terrain.powerUps, w.cfg.PowerUps.Duration)
	if collected > 0 {
		res.Events = append(res.Events, core.EventPickedUp)
		w.log.Debug("power-up collected", "count", collected, "elapsed", w.elapsed)
	}
}

// State returns the run's phase, elapsed time and speed.
func (w *World) State() core.GameState {
	return core.GameState{
		Phase:   w.phase,
		Elapsed: w.elapsed,
		Speed:   w.speed,
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}
