// Package window runs the moon runner in a desktop window or a browser tab
// with Ebitengine. World units map one to one onto pixels.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
	"github.com/vovakirdan/moonrunner/internal/games/moonrunner"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
)

// Default window size and update rate.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
	TPS           = 60
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(elapsed float64, cause string) (int64, error)
}

// Options configures the window frontend.
type Options struct {
	Config  config.Config
	Seed    int64
	Width   int
	Height  int
	Board   *leaderboard.Board
	History RunRecorder // Optional
	Logger  *log.Logger // nil means log.Default()
}

// mode is the screen currently shown on top of the world.
type mode int

const (
	modePlay mode = iota
	modeNameEntry
	modeScores
)

// Game implements ebiten.Game.
type Game struct {
	world   *moonrunner.World
	board   *leaderboard.Board
	history RunRecorder
	log     *log.Logger

	mode      mode
	name      nameEntry
	entries   []leaderboard.Entry
	highlight int
	elapsed   float64
	cause     string

	width, height int
	pendingW      int
	pendingH      int

	now  func() time.Time
	last time.Time
}

// NewGame creates a game on the title screen.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	board := opts.Board
	if board == nil {
		board = leaderboard.New(leaderboard.NewMemoryBackend(), logger)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}

	return &Game{
		world:     moonrunner.New(opts.Config, float64(w), float64(h), seed, logger),
		board:     board,
		history:   opts.History,
		log:       logger,
		highlight: -1,
		width:     w,
		height:    h,
		now:       time.Now,
	}
}

// Update reads input and advances the world by the real time since the
// previous frame.
func (g *Game) Update() error {
	now := g.now()
	dt := 1.0 / TPS
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if g.pendingW > 0 && g.pendingH > 0 && (g.pendingW != g.width || g.pendingH != g.height) {
		g.resize(g.pendingW, g.pendingH)
	}

	return g.advance(readControls(g.height), dt)
}

// advance applies one frame of controls. Returns ebiten.Termination on quit.
func (g *Game) advance(c controls, dt float64) error {
	in := core.NewInputFrame()

	switch g.mode {
	case modePlay:
		if c.quit {
			return ebiten.Termination
		}
		if c.jump {
			in.Set(core.ActionJump)
			if g.world.State().Phase == core.PhaseIdle {
				in.Set(core.ActionStart)
			}
		}
		if c.fastFall {
			in.Set(core.ActionFastFall)
		}
		if c.start {
			in.Set(core.ActionStart)
		}

	case modeNameEntry:
		g.name.Append(c.chars)
		if c.backspace {
			g.name.Backspace()
		}
		switch {
		case c.confirm:
			g.saveScore()
		case c.back:
			g.entries, g.highlight = g.board.Load(), -1
			g.mode = modeScores
		}

	case modeScores:
		if c.quit {
			return ebiten.Termination
		}
		if c.start || c.jump || c.confirm {
			g.mode = modePlay
			in.Set(core.ActionStart)
		}
	}

	res := g.world.Tick(dt, in)
	if res.Has(core.EventCrashed) {
		g.finishRun(res.State.Elapsed, res.Cause)
	}
	return nil
}

// finishRun records the run and opens name entry or the board.
func (g *Game) finishRun(elapsed float64, cause string) {
	g.elapsed, g.cause = elapsed, cause
	g.log.Info("run over", "elapsed", elapsed, "cause", cause)

	if g.history != nil {
		if _, err := g.history.SaveRun(elapsed, cause); err != nil {
			g.log.Warn("cannot record run", "error", err)
		}
	}

	entries := g.board.Load()
	g.entries, g.highlight = leaderboard.Preview(entries, "YOU", elapsed)
	if leaderboard.Qualifies(entries, elapsed) {
		g.name.Reset()
		g.mode = modeNameEntry
		return
	}
	g.mode = modeScores
}

// saveScore stores the current run under the typed name. A run is saved at
// most once; the board is shown afterwards either way.
func (g *Game) saveScore() {
	name := g.name.Value()
	entries, err := g.board.Save(name, g.elapsed)
	g.mode = modeScores
	if err != nil {
		g.log.Error("cannot save score", "error", err)
		g.entries, g.highlight = g.board.Load(), -1
		return
	}
	g.entries, g.highlight = entries, -1
	for i, e := range entries {
		if e.Name == name && e.Score == g.elapsed {
			g.highlight = i
			break
		}
	}
}

// resize hands the new window size to the world.
func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.world.Resize(float64(w), float64(h))
}

// Layout follows the window size so the course fills the window. The new
// size reaches the world on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Moon Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
