package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
)

type fakeRecorder struct {
	runs []float64
}

func (f *fakeRecorder) SaveRun(elapsed float64, cause string) (int64, error) {
	f.runs = append(f.runs, elapsed)
	return int64(len(f.runs)), nil
}

func newTestModel(board *leaderboard.Board, history RunRecorder) Model {
	return NewModel(Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Board:   board,
		History: history,
		Logger:  log.New(io.Discard),
	})
}

// playUntilCrash ticks without jumping until the first obstacle ends the run.
func playUntilCrash(t *testing.T, model tea.Model, now time.Time) (tea.Model, time.Time) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if model.(Model).scoreboard.Visible() {
			return model, now
		}
		now = now.Add(time.Second / 60)
		model, _ = model.Update(TickMsg(now))
	}
	t.Fatal("run never ended")
	return model, now
}

func typeText(model tea.Model, s string) tea.Model {
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func TestModelGameOverFlow(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryBackend(), log.New(io.Discard))
	history := &fakeRecorder{}

	var model tea.Model = newTestModel(board, history)
	now := time.Unix(1_700_000_000, 0)

	model, _ = model.Update(keyMsg(" "))
	model, now = playUntilCrash(t, model, now)

	m := model.(Model)
	if m.gameState.Phase != core.PhaseOver {
		t.Fatalf("phase = %v, want Over", m.gameState.Phase)
	}
	if len(history.runs) != 1 || history.runs[0] != m.gameState.Elapsed {
		t.Errorf("recorded runs = %v, want [%v]", history.runs, m.gameState.Elapsed)
	}
	if !m.scoreboard.EnteringName() {
		t.Fatal("first run should qualify for the empty board")
	}
	if !strings.Contains(m.View(), "New record!") {
		t.Error("name prompt not shown")
	}

	// q is typed into the name, not treated as quit.
	model = typeText(model, "aq")
	model, _ = model.Update(keyMsg("enter"))

	entries := board.Load()
	if len(entries) != 1 || entries[0].Name != "AQ" {
		t.Fatalf("board = %+v, want one entry named AQ", entries)
	}
	if entries[0].Score != m.gameState.Elapsed {
		t.Errorf("saved score = %v, want %v", entries[0].Score, m.gameState.Elapsed)
	}

	m = model.(Model)
	if m.scoreboard.EnteringName() || !m.scoreboard.Visible() {
		t.Fatal("expected the leaderboard table after saving")
	}

	// Run again.
	model, _ = model.Update(keyMsg("enter"))
	model, _ = model.Update(TickMsg(now.Add(time.Second / 60)))

	m = model.(Model)
	if m.scoreboard.Visible() {
		t.Error("scoreboard still visible after restart")
	}
	if m.gameState.Phase != core.PhaseRunning {
		t.Errorf("phase = %v, want Running", m.gameState.Phase)
	}
}

func TestModelSkipNameEntry(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryBackend(), log.New(io.Discard))

	var model tea.Model = newTestModel(board, nil)
	model, _ = model.Update(keyMsg("enter"))
	model, _ = playUntilCrash(t, model, time.Unix(0, 0))

	model, _ = model.Update(keyMsg("esc"))

	if len(board.Load()) != 0 {
		t.Error("skipping the prompt should not save")
	}
	m := model.(Model)
	if m.scoreboard.EnteringName() || !m.scoreboard.Visible() {
		t.Error("expected the leaderboard table after skipping")
	}
}

func TestModelNonQualifyingRun(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryBackend(), log.New(io.Discard))
	for _, s := range []float64{1000, 900, 800, 700, 600} {
		if _, err := board.Save("pro", s); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	var model tea.Model = newTestModel(board, nil)
	model, _ = model.Update(keyMsg("enter"))
	model, _ = playUntilCrash(t, model, time.Unix(0, 0))

	m := model.(Model)
	if m.scoreboard.EnteringName() {
		t.Error("a short run should not open the name prompt on a full board")
	}
	if !strings.Contains(m.View(), "PRO") {
		t.Error("leaderboard table not shown")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	var model tea.Model = newTestModel(nil, nil)
	model, _ = model.Update(keyMsg("enter"))
	model, _ = model.Update(TickMsg(time.Unix(0, 0)))

	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(TickMsg(time.Unix(0, int64(time.Second/60))))

	m := model.(Model)
	if m.gameState.Phase != core.PhaseRunning {
		t.Errorf("phase = %v after resize, want Running", m.gameState.Phase)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}

	model, _ = model.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = model.(Model)
	if m.screen.Width() != minCols || m.screen.Height() != minRows {
		t.Errorf("tiny terminal not clamped: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	var model tea.Model = newTestModel(nil, nil)
	model, cmd := model.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if model.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelEnterRestartsRun(t *testing.T) {
	var model tea.Model = newTestModel(nil, nil)
	now := time.Unix(1_700_000_000, 0)

	model, _ = model.Update(keyMsg(" "))
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second / 60)
		model, _ = model.Update(TickMsg(now))
	}
	before := model.(Model).gameState.Elapsed
	if before < 0.1 {
		t.Fatalf("elapsed = %v after 10 ticks", before)
	}

	model, _ = model.Update(keyMsg("enter"))
	now = now.Add(time.Second / 60)
	model, _ = model.Update(TickMsg(now))

	m := model.(Model)
	if m.gameState.Phase != core.PhaseRunning {
		t.Fatalf("phase = %v, want Running", m.gameState.Phase)
	}
	if m.gameState.Elapsed >= before {
		t.Errorf("elapsed = %v after enter, want a fresh run (was %v)", m.gameState.Elapsed, before)
	}
}
