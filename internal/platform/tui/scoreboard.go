package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Scoreboard layout constants
const (
	detailMinHeight = 20 // Minimum height to show the breakdown of the selected row
	dateColumnWidth = 16
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "toggle breakdown"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	board      lander.ScoreBoard
	entries    []lander.RankedEntry
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	showDetail bool
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(board lander.ScoreBoard, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		board:      board,
		keys:       DefaultScoreboardKeyMap(),
		help:       h,
		width:      width,
		height:     height,
		showDetail: true,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Pilot", Width: 15},
		{Title: "Score", Width: 6},
		{Title: "Speed", Width: 6},
		{Title: "Fuel", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: dateColumnWidth},
	}

	// Drop the date on narrow terminals
	if m.width < 72 {
		columns = columns[:len(columns)-1]
	}

	tableHeight := m.height - 8 // Leave room for header, help, and margins
	if m.detailVisible() {
		tableHeight -= 8
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
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

func (m ScoreboardModel) detailVisible() bool {
	return m.showDetail && m.height >= detailMinHeight
}

// loadScores reloads the ranking from the board.
func (m *ScoreboardModel) loadScores() {
	if m.board == nil {
		m.entries = nil
	} else {
		m.entries = m.board.LoadRanked()
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *ScoreboardModel) updateTableRows() {
	withDate := len(m.table.Columns()) == 7
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		speed, fuel, mission := "-", "-", "-"
		if b := e.Breakdown; b != nil {
			speed = fmt.Sprintf("%.1f", b.RawSpeed)
			fuel = fmt.Sprintf("%d", b.FuelBonus/lander.FuelBonusPerUnit)
			mission = fmt.Sprintf("%.1fs", float64(b.MissionTimeMs)/1000)
		}
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			speed,
			fuel,
			mission,
		}
		if withDate {
			row = append(row, e.Timestamp.Local().Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
			m.rebuildTable()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// rebuildTable recreates the table for the current size, keeping the cursor.
func (m *ScoreboardModel) rebuildTable() {
	cursor := m.table.Cursor()
	m.table = m.createTable()
	m.updateTableRows()
	m.table.SetCursor(cursor)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.detailVisible() && len(m.entries) > 0 {
		b.WriteString(centerText(boxStyle.Render(m.renderDetail()), m.width))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No landings recorded yet.\nTouch down on the pad to set a high score!")
	}

	return m.table.View()
}

// renderDetail renders the score breakdown of the selected entry.
func (m ScoreboardModel) renderDetail() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return ""
	}
	e := m.entries[i]
	b := e.Breakdown
	if b == nil {
		return fmt.Sprintf("#%d %s: %d (no breakdown recorded)", i+1, e.Player, e.Score)
	}

	lines := []string{
		fmt.Sprintf("#%d %s  %s", i+1, e.Player, e.ISOTimestamp()),
		scoreRow("Base", "", b.Base),
		scoreRow("Speed", fmt.Sprintf("%.1f px/s", b.RawSpeed), b.SpeedBonus),
		scoreRow("Position", fmt.Sprintf("%.1f px", b.RawOffset), b.PositionBonus),
		scoreRow("Fuel", "", b.FuelBonus),
		scoreRow("Time", fmt.Sprintf("%.1fs", float64(b.MissionTimeMs)/1000), b.TimeBonus),
		scoreRow("TOTAL", "", b.Total),
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(board lander.ScoreBoard, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(board, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
