package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	session, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return session, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), config.DefaultDodgeConfig(), "alice")

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v after selecting, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if m.game.opts.Player != "alice" || m.game.opts.Mode != string(config.DifficultyNormal) {
		t.Errorf("game options = %+v", m.game.opts)
	}

	m, _ = sendSession(t, m, TickMsg{})
	if got := m.game.Game().Tick(); got != 1 {
		t.Errorf("game tick = %d, expected 1", got)
	}

	m, _ = sendSession(t, m, runeKey('p'))
	m, cmd = sendSession(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v after back, expected menu", m.screen)
	}
	if isQuit(cmd) {
		t.Error("going back must not end the session")
	}

	// A stale tick from the finished game is ignored by the menu
	m, _ = sendSession(t, m, TickMsg{})
	if m.screen != screenMenu || m.quitting {
		t.Error("stale tick should leave the menu untouched")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Mode: "normal", Player: "bob", Score: 150, Level: 1}); err != nil {
		t.Fatal(err)
	}

	m := NewSessionModel(store, testRuntime(), config.DefaultDodgeConfig(), "alice")
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v after tab, expected scores", m.screen)
	}
	if isQuit(cmd) {
		t.Error("opening the scoreboard must not end the session")
	}
	if view := m.View(); !strings.Contains(view, "$150") {
		t.Errorf("scoreboard should list the saved score:\n%s", view)
	}

	m, cmd = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v after esc, expected menu", m.screen)
	}
	if isQuit(cmd) {
		t.Error("leaving the scoreboard must not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), config.DefaultDodgeConfig(), "alice")

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := sendSession(t, m, runeKey('q'))
	if !m.quitting || !isQuit(cmd) {
		t.Error("q in game should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Mode: "easy", Score: 75, Level: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveEpisode(storage.Episode{
		EpisodeID: "ep-1",
		Source:    storage.SourceSim,
		Policy:    "evade",
		Reward:    "cash",
		Score:     40,
		EndReason: storage.EndTerminated,
	}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.tabs[m.tabCursor].Title != "All" {
		t.Fatalf("first tab = %q, expected All", m.tabs[m.tabCursor].Title)
	}
	if len(m.rows) != 1 {
		t.Errorf("All tab has %d rows, expected 1", len(m.rows))
	}

	// Hard has no runs
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].Mode != "hard" {
		t.Fatalf("tab = %+v, expected hard", m.tabs[m.tabCursor])
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty tab should show the empty message")
	}

	// The last tab aggregates agent episodes
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !m.tabs[m.tabCursor].Agents {
		t.Fatalf("tab = %+v, expected agents", m.tabs[m.tabCursor])
	}
	if len(m.rows) != 1 || m.rows[0][1] != "evade" {
		t.Errorf("agent rows = %v", m.rows)
	}
}
