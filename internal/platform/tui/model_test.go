package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send feeds a message to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})

	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = send(t, m, TickMsg{})

	if got := m.Game().Tick(); got != 2 {
		t.Errorf("game tick = %d, expected 2", got)
	}
}

func TestModelHeldKeyMovesCharacter(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})
	startX := m.Game().Snapshot().Character.X

	m, _ = send(t, m, runeKey('d'))
	for range 5 {
		m, _ = send(t, m, TickMsg{})
	}

	if x := m.Game().Snapshot().Character.X; x <= startX {
		t.Errorf("character x = %f, expected to move right of %f", x, startX)
	}
}

func TestModelPauseStopsSimulation(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})

	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})

	if got := m.Game().Tick(); got != 1 {
		t.Errorf("game tick = %d while paused, expected 1", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show PAUSED")
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg{})
	if got := m.Game().Tick(); got != 2 {
		t.Errorf("game tick = %d after resume, expected 2", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})

	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if !isQuit(cmd) {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})

	m, cmd := send(t, m, runeKey('b'))
	if m.BackToMenu() || cmd != nil {
		t.Error("back should be ignored while playing")
	}

	m, _ = send(t, m, runeKey('p'))
	m, cmd = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should be accepted while paused")
	}
	if !isQuit(cmd) {
		t.Error("standalone model should quit the program on back")
	}

	embedded := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig(), Embedded: true})
	embedded, _ = send(t, embedded, runeKey('p'))
	embedded, cmd = send(t, embedded, runeKey('b'))
	if !embedded.BackToMenu() || cmd != nil {
		t.Error("embedded model should go back without quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})
	for range 3 {
		m, _ = send(t, m, TickMsg{})
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if got := m.Game().Tick(); got != 3 {
		t.Errorf("resize reset the game: tick = %d", got)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, expected 40", lines)
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{Dodge: config.DefaultDodgeConfig()})
	m, _ = send(t, m, TickMsg{})

	if view := m.View(); !strings.Contains(view, "Bank: $0") {
		t.Errorf("view should contain the bank HUD:\n%s", view)
	}
}

func TestModelAutopilotDrivesCharacter(t *testing.T) {
	m := NewModel(nil, testRuntime(), GameOptions{
		Dodge:     config.DefaultDodgeConfig(),
		Autopilot: agent.NewRandomPolicy(1),
	})
	start := m.Game().Snapshot().Character

	for range 120 {
		m, _ = send(t, m, TickMsg{})
	}

	c := m.Game().Snapshot().Character
	if c.X == start.X && c.Y == start.Y {
		t.Error("autopilot should have moved the character")
	}
}

type recordingListener struct {
	events []dodge.Event
}

func (r *recordingListener) OnEvent(e dodge.Event) {
	r.events = append(r.events, e)
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store := openTestStore(t)

	cfg := config.DefaultDodgeConfig()
	cfg.Character.StartHealth = 1
	cfg.Collectible.Rewards = []int{5}
	rec := &recordingListener{}

	m := NewModel(store, testRuntime(), GameOptions{
		Dodge:     cfg,
		Mode:      "hard",
		Player:    "alice",
		Autopilot: agent.IdlePolicy{},
		Listener:  rec,
	})

	for i := 0; i < 20000 && !m.Game().IsGameOver(); i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if !m.Game().IsGameOver() {
		t.Fatal("idle character should eventually be hit")
	}

	// Extra ticks after game over must not save again
	m, _ = send(t, m, TickMsg{})

	var sawGameOver bool
	for _, e := range rec.events {
		if e.Kind == dodge.EventGameOver {
			sawGameOver = true
		}
	}
	if !sawGameOver {
		t.Error("listener should receive the game over event")
	}

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}

	if m.Game().Score() == 0 {
		if len(scores) != 0 {
			t.Errorf("empty runs should not be saved, got %d rows", len(scores))
		}
		return
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Mode != "hard" || got.Player != "alice" || got.Score != m.Game().Score() {
		t.Errorf("saved entry = %+v", got)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Character.StartHealth = 1

	m := NewModel(nil, testRuntime(), GameOptions{Dodge: cfg, Autopilot: agent.IdlePolicy{}})
	for i := 0; i < 20000 && !m.Game().IsGameOver(); i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if !m.Game().IsGameOver() {
		t.Fatal("idle character should eventually be hit")
	}

	m, _ = send(t, m, runeKey('r'))
	if m.Game().IsGameOver() {
		t.Error("r should restart after game over")
	}
	if m.Game().Tick() != 0 {
		t.Errorf("restart tick = %d, expected 0", m.Game().Tick())
	}
}
