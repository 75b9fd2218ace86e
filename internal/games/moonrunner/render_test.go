package moonrunner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
)

func TestViewportForCells(t *testing.T) {
	w, h := ViewportForCells(80, 24)
	if w != 800 || h != 480 {
		t.Errorf("ViewportForCells(80, 24) = %v, %v; want 800, 480", w, h)
	}
}

func TestRenderIdle(t *testing.T) {
	vw, vh := ViewportForCells(80, 24)
	w := New(config.DefaultConfig(), vw, vh, 1, quietLogger())

	screen := core.NewScreen(80, 24)
	Render(w.Snapshot(), screen)

	groundRow := cellY(w.Ground())
	if !strings.ContainsRune(screen.Row(groundRow), GroundChar) {
		t.Errorf("ground row %d has no ground: %q", groundRow, screen.Row(groundRow))
	}
	if !strings.Contains(screen.String(), "MOON RUNNER") {
		t.Error("idle screen should show the title")
	}

	p := w.Snapshot().Player
	if got := screen.Get(cellX(p.X), cellY(p.Y)); got != HelmetChar {
		t.Errorf("player top-left cell = %q, want helmet", got)
	}
}

func TestRenderRunningHUD(t *testing.T) {
	vw, vh := ViewportForCells(80, 24)
	w := New(config.DefaultConfig(), vw, vh, 1, quietLogger())
	w.Tick(tickDt, input(core.ActionStart))

	screen := core.NewScreen(80, 24)
	Render(w.Snapshot(), screen)

	if !strings.Contains(screen.Row(0), "TIME") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if strings.Contains(screen.String(), "MOON RUNNER") {
		t.Error("title overlay shown during a run")
	}
}

func TestRenderSpeedTag(t *testing.T) {
	vw, vh := ViewportForCells(80, 24)

	cfg := config.DefaultConfig()
	cfg.Difficulty.Enabled = false
	w := New(cfg, vw, vh, 1, quietLogger())
	w.Tick(tickDt, input(core.ActionStart))

	screen := core.NewScreen(80, 24)
	Render(w.Snapshot(), screen)
	if !strings.Contains(screen.Row(0), "SPD 340 FIXED") {
		t.Errorf("fixed ramp HUD = %q", screen.Row(0))
	}

	snap := Snapshot{Phase: core.PhaseRunning, Speed: 800, MaxSpeed: 800, Ramping: true}
	if tag := snap.SpeedTag(); tag != "MAX" {
		t.Errorf("SpeedTag() at the ceiling = %q, want MAX", tag)
	}
	snap.Speed = 512
	if tag := snap.SpeedTag(); tag != "" {
		t.Errorf("SpeedTag() while ramping = %q, want empty", tag)
	}
}

func TestRenderCrater(t *testing.T) {
	screen := core.NewScreen(40, 10)
	snap := Snapshot{
		Ground: 8 * CellH,
		Obstacles: []Obstacle{
			{Kind: KindCrater, X: 100, Y: 8*CellH - 8, W: 60, H: 24},
		},
		Phase: core.PhaseRunning,
	}
	Render(snap, screen)

	if got := screen.Get(12, 8); got != ' ' {
		t.Errorf("crater interior = %q, want a hole in the ground", got)
	}
	if got := screen.Get(5, 8); got != GroundChar {
		t.Errorf("ground outside the crater = %q, want %q", got, GroundChar)
	}
}
