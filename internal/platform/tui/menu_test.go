package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chess/internal/storage"
)

func TestMenuListsVariantsWithCounts(t *testing.T) {
	store := openStore(t)
	store.SaveResult(storage.GameResult{Variant: fakeID, Winner: "white", EndReason: "forfeit"})
	store.SaveResult(storage.GameResult{Variant: fakeID, Winner: "black", EndReason: "forfeit"})

	m := NewMenuModel(store, testConfig())
	if len(m.items) != 1 {
		t.Fatalf("items = %d, want 1", len(m.items))
	}
	if m.items[0].Played != 2 {
		t.Errorf("Played = %d, want 2", m.items[0].Played)
	}
	if !strings.Contains(m.View(), "Fake  (2 played)") {
		t.Errorf("View() missing count:\n%s", m.View())
	}
}

func TestMenuSelectAndResults(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	selected := next.(MenuModel)
	if selected.Selected() == nil || selected.Selected().GameID != fakeID {
		t.Fatalf("Selected() = %v", selected.Selected())
	}
	if cmd == nil {
		t.Error("Selecting should end the menu program")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsResults() {
		t.Error("Tab should open results")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := next.(MenuModel).Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %+v", cfg)
	}
}

func TestResultsModel(t *testing.T) {
	store := openStore(t)
	for _, winner := range []string{"white", "white", "black"} {
		if _, err := store.SaveResult(storage.GameResult{Variant: fakeID, Winner: winner, EndReason: "king_captured", Plies: 10}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewResultsModel(store, 100, 30)
	if len(m.results) != 3 {
		t.Fatalf("results = %d, want 3", len(m.results))
	}
	view := m.View()
	for _, want := range []string{"RESULTS - Fake", "3 games", "White 2  Black 1", "king captured"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ResultsModel).IsGoingBack() {
		t.Error("Esc should go back")
	}
}

func TestResultsWithoutStore(t *testing.T) {
	m := NewResultsModel(nil, 60, 20)
	if !strings.Contains(m.View(), "unavailable") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	logger := log.New(io.Discard)
	s := NewSessionModel(store, logger, testConfig())

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatal("Enter should start a game")
	}
	if !strings.Contains(s.View(), "fake board") {
		t.Error("Game view expected")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.game != nil {
		t.Fatal("Esc should return to the menu")
	}
	if s.quitting {
		t.Fatal("Back to menu must not end the session")
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenResults {
		t.Fatal("Tab should open results")
	}
	step(runeKey('b'))
	if s.screen != screenMenu {
		t.Fatal("b should leave results")
	}

	if cmd := step(runeKey('q')); cmd == nil || !s.quitting {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionDropsTicksOfLeftGame(t *testing.T) {
	s := NewSessionModel(nil, log.New(io.Discard), testConfig())
	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	staleGen := s.game.tickGen
	step(tea.KeyMsg{Type: tea.KeyEsc})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatal("Enter should start a second game")
	}

	if cmd := step(TickMsg{Time: time.Now(), Gen: staleGen}); cmd != nil {
		t.Error("The left game's tick must not start a second chain")
	}
	game := s.game.game.(*fakeGame)
	if len(game.frames) != 0 {
		t.Errorf("Stale tick stepped the new game %d times", len(game.frames))
	}

	if cmd := step(TickMsg{Time: time.Now(), Gen: s.game.tickGen}); cmd == nil {
		t.Error("The current game's tick should continue its chain")
	}
}
