package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// GameOptions are the collaborators of one game session.
type GameOptions struct {
	Lander  config.LanderConfig
	Runtime core.RuntimeConfig
	Board   lander.ScoreBoard    // nil uses an in-memory board
	Profile lander.PlayerProfile // nil uses an in-memory profile
	Logger  *log.Logger          // nil discards

	// Standalone makes Esc quit the program instead of returning to a menu.
	Standalone bool
}

// Model is the Bubble Tea model that runs the lander.
// It owns the Simulation and feeds it one polled key frame per tick.
type Model struct {
	sim        *lander.Simulation
	held       *HeldKeys
	screen     *core.Screen
	keyMapper  *KeyMapper
	logger     *log.Logger
	config     core.RuntimeConfig
	lastTick   time.Time
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model.
func NewModel(opts GameOptions) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Lander.World.TargetFPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		sim:        lander.New(opts.Lander, cfg.Seed, opts.Board, opts.Profile),
		held:       NewHeldKeys(opts.Lander.Terminal.InitialHold, opts.Lander.Terminal.RepeatHold),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		config:     cfg,
		standalone: opts.Standalone,
	}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	// Outside the name editor q and Esc leave the game
	if !m.sim.Editing() {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
			return m, nil
		}
	}

	if k, shift, ok := m.keyMapper.MapKey(msg); ok {
		m.held.Press(k, shift, time.Now())
	}
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = now
	res := m.sim.Update(m.held.Frame(now), now)

	switch res.Event {
	case lander.EventLanded:
		if b := m.sim.LastScore(); b != nil {
			m.logger.Info("Landed", "player", m.sim.Player(), "score", b.Total,
				"speed", fmt.Sprintf("%.1f", b.RawSpeed), "mission_ms", b.MissionTimeMs)
		}
	case lander.EventCrashed:
		s := m.sim.State()
		m.logger.Info("Crashed", "player", m.sim.Player(), "x", fmt.Sprintf("%.0f", s.X),
			"heading", fmt.Sprintf("%.1f", s.Heading))
	case lander.EventNameCommitted:
		m.logger.Info("Pilot name set", "player", m.sim.Player())
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawFrame(m.screen, m.sim.Snapshot(m.frameTime()))

	dir := filepath.Join(os.Getenv("HOME"), ".lander", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("lander_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("Screenshot saved", "path", path)
}

func (m Model) frameTime() time.Time {
	if m.lastTick.IsZero() {
		return time.Now()
	}
	return m.lastTick
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	DrawFrame(m.screen, m.sim.Snapshot(m.frameTime()))
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Simulation returns the running simulation.
func (m Model) Simulation() *lander.Simulation {
	return m.sim
}

// Run starts a standalone game with the given options. Esc quits it.
func Run(opts GameOptions) error {
	opts.Standalone = true
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
