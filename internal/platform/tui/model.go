package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/core"
	"github.com/vovakirdan/moonrunner/internal/games/moonrunner"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
)

// Smallest terminal the game is laid out for. Smaller windows are clamped.
const (
	minCols = 40
	minRows = 12
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(elapsed float64, cause string) (int64, error)
}

// Options configures the terminal frontend.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Board   *leaderboard.Board
	History RunRecorder // Optional
	Logger  *log.Logger // nil means log.Default()
}

// Model is the Bubble Tea model for the moon runner.
type Model struct {
	world      *moonrunner.World
	board      *leaderboard.Board
	history    RunRecorder
	screen     *core.Screen
	keys       *KeyMapper
	scoreboard Scoreboard
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	width      int
	height     int
	quitting   bool
	log        *log.Logger
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	board := opts.Board
	if board == nil {
		board = leaderboard.New(leaderboard.NewMemoryBackend(), logger)
	}

	cols, rows := clampSize(cfg.ScreenW, cfg.ScreenH)
	viewW, viewH := moonrunner.ViewportForCells(cols, rows)

	return Model{
		world:      moonrunner.New(opts.Config, viewW, viewH, cfg.Seed, logger),
		board:      board,
		history:    opts.History,
		screen:     core.NewScreen(cols, rows),
		keys:       NewKeyMapper(),
		scoreboard: NewScoreboard(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      cols,
		height:     rows,
		log:        logger,
	}
}

// clampSize keeps the playfield at a usable minimum.
func clampSize(cols, rows int) (int, int) {
	return max(cols, minCols), max(rows, minRows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard.Visible() {
		return m.handleScoreboardKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	// Jump doubles as start on the title screen.
	if m.inputFrame.Has(core.ActionJump) && m.gameState.Phase == core.PhaseIdle {
		m.inputFrame.Set(core.ActionStart)
	}
	return m, nil
}

// handleScoreboardKey routes keys to the game over panel.
func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		intent ScoreboardIntent
		cmd    tea.Cmd
	)
	m.scoreboard, intent, cmd = m.scoreboard.Update(msg)

	switch intent {
	case IntentSave:
		name := m.scoreboard.Name()
		entries, err := m.board.Save(name, m.gameState.Elapsed)
		if err != nil {
			m.log.Error("cannot save score", "error", err)
			m.scoreboard.Skip(m.board.Load())
			break
		}
		m.log.Info("score saved", "name", name, "elapsed", m.gameState.Elapsed)
		m.scoreboard.ShowSaved(entries, name)

	case IntentSkip:
		m.scoreboard.Skip(m.board.Load())

	case IntentRestart:
		m.scoreboard.Hide()
		m.inputFrame.Set(core.ActionStart)

	case IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case IntentNone:
	}

	return m, cmd
}

// handleResize processes window resize events. The run keeps going; only
// the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols, rows := clampSize(msg.Width, msg.Height)
	m.width, m.height = cols, rows
	m.config.ScreenW, m.config.ScreenH = cols, rows
	m.screen.Resize(cols, rows)
	m.world.Resize(moonrunner.ViewportForCells(cols, rows))
	return m, nil
}

// handleTick advances the world by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.world.Tick(dt, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	var cmd tea.Cmd
	for _, ev := range result.Events {
		switch ev {
		case core.EventStarted:
			m.log.Debug("run started", "seed", m.config.Seed)
		case core.EventCrashed:
			cmd = m.finishRun(result.Cause)
		case core.EventJumped, core.EventLanded, core.EventPickedUp:
		}
	}

	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// finishRun records a finished run and opens the game over panel.
func (m *Model) finishRun(cause string) tea.Cmd {
	elapsed := m.gameState.Elapsed
	m.log.Info("run over", "elapsed", fmt.Sprintf("%.2fs", elapsed), "cause", cause)

	if m.history != nil {
		if _, err := m.history.SaveRun(elapsed, cause); err != nil {
			m.log.Warn("cannot record run", "error", err)
		}
	}

	return m.scoreboard.Show(elapsed, cause, m.board.Load())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	moonrunner.Render(m.world.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".moonrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("moonrunner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}
	m.log.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.scoreboard.View())
	}

	moonrunner.Render(m.world.Snapshot(), m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
