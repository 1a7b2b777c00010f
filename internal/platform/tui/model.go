package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

// GameOptions configures a single play session.
type GameOptions struct {
	Dodge     config.DodgeConfig
	Mode      string         // Preset name recorded with saved scores
	Player    string         // SSH user name, empty for local play
	Autopilot agent.Policy   // Drives the character instead of the keyboard when set
	Listener  dodge.Listener // Receives game events, e.g. the audio player
	WallClock bool           // Measure game time with the wall clock instead of ticks
	Embedded  bool           // Running inside a session; back returns to the menu instead of quitting
}

// Model is the Bubble Tea model for running Cash Dodge.
type Model struct {
	game       *dodge.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	keyMapper  *KeyMapper
	held       HeldKeys
	tick       uint64
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var gameOpts []dodge.Option
	if opts.Listener != nil {
		gameOpts = append(gameOpts, dodge.WithListener(opts.Listener))
	}
	if opts.WallClock {
		gameOpts = append(gameOpts, dodge.WithClock(dodge.NewWallClock()))
	}
	if s, ok := opts.Autopilot.(agent.Seeder); ok {
		s.Seed(cfg.Seed)
	}

	return Model{
		game:      dodge.New(opts.Dodge, cfg, gameOpts...),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(DefaultHoldWindow, cfg.TickRate),
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.tick)
	case core.ActionPause:
		if !m.game.IsGameOver() {
			m.game.TogglePause()
			m.held.Release()
		}
	case core.ActionRestart:
		if m.game.IsGameOver() {
			m.restart()
		}
	case core.ActionBack:
		if m.game.IsGameOver() || m.game.State().Paused {
			m.backToMenu = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleResize adapts the screen buffer. The world has a fixed size, so the
// running game is kept and only rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	sig := m.held.Signal(m.tick)
	if m.opts.Autopilot != nil {
		sig = m.opts.Autopilot.Act(m.game.Snapshot())
	}

	if _, over := m.game.Step(sig); over && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	if s, ok := m.opts.Autopilot.(agent.Seeder); ok {
		s.Seed(m.config.Seed)
	}
	m.game.Reseed(m.config.Seed)
	m.held.Release()
	m.scoreSaved = false
}

// saveScore stores the finished run. Empty runs are not recorded.
func (m *Model) saveScore() {
	if m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(storage.ScoreEntry{
		Mode:   m.opts.Mode,
		Player: m.opts.Player,
		Score:  m.game.Score(),
		Level:  m.game.Level(),
		Ticks:  int(m.game.Tick()),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".cashdodge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game returns the running game.
func (m Model) Game() *dodge.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// It returns true when the user asked to go back to the menu.
func Run(store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewModel(store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
