package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/moonrunner/internal/leaderboard"
)

// Scoreboard layout constants
const (
	tableWidth    = 32
	panelMinWidth = 40
)

// scoreboardMode is the game over screen currently shown.
type scoreboardMode int

const (
	scoreboardHidden scoreboardMode = iota
	scoreboardNameEntry
	scoreboardTable
)

// ScoreboardIntent is what the player asked for on the game over screens.
type ScoreboardIntent int

const (
	IntentNone ScoreboardIntent = iota
	IntentSave
	IntentSkip
	IntentRestart
	IntentQuit
)

// Scoreboard is the game over panel: name entry for a qualifying run,
// then the top five table.
type Scoreboard struct {
	mode      scoreboardMode
	elapsed   float64
	cause     string
	entries   []leaderboard.Entry
	highlight int // Row of the current run, -1 when not on the board
	input     textinput.Model
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
}

// NewScoreboard creates a hidden scoreboard.
func NewScoreboard() Scoreboard {
	ti := textinput.New()
	ti.Placeholder = leaderboard.DefaultName
	ti.CharLimit = leaderboard.NameLen
	ti.Width = leaderboard.NameLen + 1
	ti.Prompt = "NAME > "

	h := help.New()
	h.ShowAll = false

	return Scoreboard{
		input:     ti,
		table:     createTable(),
		help:      h,
		keys:      DefaultScoreboardKeyMap(),
		highlight: -1,
	}
}

// createTable creates the leaderboard table.
func createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 8},
		{Title: "Time", Width: tableWidth - 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(leaderboard.Capacity+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Visible reports whether the panel is shown.
func (s Scoreboard) Visible() bool {
	return s.mode != scoreboardHidden
}

// EnteringName reports whether the name prompt is active.
func (s Scoreboard) EnteringName() bool {
	return s.mode == scoreboardNameEntry
}

// Show opens the panel for a finished run. entries is the current board.
// A qualifying run starts with the name prompt.
func (s *Scoreboard) Show(elapsed float64, cause string, entries []leaderboard.Entry) tea.Cmd {
	s.elapsed = elapsed
	s.cause = cause

	preview, idx := leaderboard.Preview(entries, "YOU", elapsed)
	s.setRows(preview, idx)

	if leaderboard.Qualifies(entries, elapsed) {
		s.mode = scoreboardNameEntry
		s.input.Reset()
		return s.input.Focus()
	}
	s.mode = scoreboardTable
	return nil
}

// ShowSaved switches to the table after the run was stored.
func (s *Scoreboard) ShowSaved(entries []leaderboard.Entry, name string) {
	idx := -1
	for i, e := range entries {
		if e.Name == name && e.Score == s.elapsed {
			idx = i
			break
		}
	}
	s.setRows(entries, idx)
	s.input.Blur()
	s.mode = scoreboardTable
}

// Skip leaves the name prompt without saving.
func (s *Scoreboard) Skip(entries []leaderboard.Entry) {
	s.setRows(entries, -1)
	s.input.Blur()
	s.mode = scoreboardTable
}

// Hide closes the panel.
func (s *Scoreboard) Hide() {
	s.input.Blur()
	s.mode = scoreboardHidden
}

// Name returns the sanitized name typed so far.
func (s Scoreboard) Name() string {
	return leaderboard.SanitizeName(s.input.Value())
}

// setRows updates the table with the given entries.
func (s *Scoreboard) setRows(entries []leaderboard.Entry, highlight int) {
	s.entries = entries
	s.highlight = highlight

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%.1fs", e.Score),
		}
	}
	s.table.SetRows(rows)

	if highlight >= 0 {
		s.table.SetCursor(highlight)
	} else {
		s.table.GotoTop()
	}
}

// Update handles a key on the panel and reports the player's intent.
func (s Scoreboard) Update(msg tea.KeyMsg) (Scoreboard, ScoreboardIntent, tea.Cmd) {
	var cmd tea.Cmd

	switch s.mode {
	case scoreboardNameEntry:
		switch {
		case msg.String() == "ctrl+c":
			return s, IntentQuit, nil
		case key.Matches(msg, s.keys.Save):
			return s, IntentSave, nil
		case key.Matches(msg, s.keys.Skip):
			return s, IntentSkip, nil
		}
		s.input, cmd = s.input.Update(msg)
		return s, IntentNone, cmd

	case scoreboardTable:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, IntentQuit, nil
		case key.Matches(msg, s.keys.Restart):
			return s, IntentRestart, nil
		case key.Matches(msg, s.keys.Up), key.Matches(msg, s.keys.Down):
			s.table, cmd = s.table.Update(msg)
			return s, IntentNone, cmd
		}
	}

	return s, IntentNone, nil
}

// View renders the panel.
func (s Scoreboard) View() string {
	if s.mode == scoreboardHidden {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Time: %.1fs", s.elapsed)
	if s.cause != "" {
		b.WriteString(dimStyle.Render("  " + causeText(s.cause)))
	}
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("Top 5 runs (by time survived)"))
	b.WriteString("\n")
	if len(s.entries) == 0 {
		b.WriteString("No runs recorded yet.\n")
	} else {
		b.WriteString(s.table.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.mode == scoreboardNameEntry {
		b.WriteString(titleStyle.Render("New record!"))
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n\n")
		b.WriteString(s.help.ShortHelpView(s.keys.EntryHelp()))
	} else {
		b.WriteString(s.help.View(s.keys))
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(panelMinWidth)

	return panelStyle.Render(b.String())
}

// causeText describes how a run ended.
func causeText(cause string) string {
	if cause == "crater" {
		return "fell into a crater"
	}
	return "hit a " + cause
}
