package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// menuItem kinds.
type menuItemKind int

const (
	itemPlay menuItemKind = iota
	itemScores
	itemSavePlayer
	itemSaveScores
	itemQuit
)

// MenuModel is the Bubble Tea model for the main menu.
// The two settings rows toggle in place and are written straight to the store.
type MenuModel struct {
	items     []menuItemKind
	cursor    int
	width     int
	height    int
	store     *storage.Store // nil hides the settings rows
	settings  storage.Settings
	status    string // Last settings error, if any
	keyMapper *KeyMapper
	quitting  bool
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := []menuItemKind{itemPlay, itemScores}
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		settings:  storage.DefaultSettings(),
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		items = append(items, itemSavePlayer, itemSaveScores)
		if settings, err := store.Settings(); err != nil {
			m.status = err.Error()
		} else {
			m.settings = settings
		}
	}
	m.items = append(items, itemQuit)
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.selectItem()
	}

	return m, nil
}

func (m MenuModel) selectItem() (tea.Model, tea.Cmd) {
	switch m.items[m.cursor] {
	case itemPlay:
		m.choice = ChoicePlay
		return m, tea.Quit
	case itemScores:
		m.choice = ChoiceScores
		return m, tea.Quit
	case itemQuit:
		m.quitting = true
		m.choice = ChoiceQuit
		return m, tea.Quit
	case itemSavePlayer:
		m.settings.SavePlayer = !m.settings.SavePlayer
		m.saveSettings()
	case itemSaveScores:
		m.settings.SaveScores = !m.settings.SaveScores
		m.saveSettings()
	}
	return m, nil
}

func (m *MenuModel) saveSettings() {
	m.status = ""
	if err := m.store.SaveSettings(m.settings); err != nil {
		m.status = err.Error()
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (m MenuModel) itemLabel(kind menuItemKind) string {
	switch kind {
	case itemPlay:
		return "Launch"
	case itemScores:
		return "High Scores"
	case itemSavePlayer:
		return "Remember pilot name: " + onOff(m.settings.SavePlayer)
	case itemSaveScores:
		return "Record scores: " + onOff(m.settings.SaveScores)
	case itemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  L U N A R   L A N D E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Land softly on the pad", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, m.itemLabel(item))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		b.WriteString(centerText(errStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
