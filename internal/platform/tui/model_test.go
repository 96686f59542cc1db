package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chess/internal/core"
	"github.com/vovakirdan/tui-chess/internal/registry"
	"github.com/vovakirdan/tui-chess/internal/storage"
)

const fakeID = "fake"

func init() {
	registry.Register(fakeID, func() registry.Game { return &fakeGame{} })
}

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string                   { return fakeID }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState        { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "fake board")
}

// resizableGame keeps its state across window changes.
type resizableGame struct {
	*fakeGame
	sizes []core.Point
}

func (g *resizableGame) Resize(w, h int) {
	g.sizes = append(g.sizes, core.Point{X: w, Y: h})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{Time: time.Now(), Gen: m.tickGen})
	return m
}

func TestModelFeedsInputOncePerTick(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, runeKey('f'))
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)
	m = tick(t, m)

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if len(game.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(game.frames))
	}

	first := game.frames[0]
	if !first.Has(core.ActionForfeit) {
		t.Error("First frame should carry Forfeit")
	}
	want := []core.Point{{X: 3, Y: 4}, {X: 5, Y: 6}}
	if len(first.Clicks) != 2 || first.Clicks[0] != want[0] || first.Clicks[1] != want[1] {
		t.Errorf("Clicks = %v, want %v", first.Clicks, want)
	}
	if !game.frames[1].Empty() {
		t.Error("Second frame should be empty")
	}
}

func TestModelSavesEachGameOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, nil, testConfig())

	game.state = core.GameState{
		GameOver: true,
		Outcome:  &core.Outcome{Winner: "white", Reason: "forfeit", Plies: 7},
	}
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	results, err := store.RecentResults(fakeID, 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 saved game, got %d", len(results))
	}
	if results[0].ID != m.LastResultID() {
		t.Errorf("LastResultID = %q, saved %q", m.LastResultID(), results[0].ID)
	}
	if results[0].Plies != 7 || results[0].Winner != "white" {
		t.Errorf("Unexpected record %+v", results[0])
	}

	// A restart re-arms the save.
	game.state = core.GameState{}
	m = tick(t, m)
	game.state = core.GameState{
		GameOver: true,
		Outcome:  &core.Outcome{Winner: "black", Reason: "king_captured", Plies: 20},
	}
	tick(t, m)

	results, _ = store.RecentResults(fakeID, 10)
	if len(results) != 2 {
		t.Fatalf("Expected 2 saved games, got %d", len(results))
	}
	if results[0].Winner != "black" {
		t.Errorf("Newest game winner = %q, want black", results[0].Winner)
	}
}

func TestModelIgnoresTicksOfOtherModels(t *testing.T) {
	oldGame := &fakeGame{}
	old := NewModel(oldGame, nil, nil, testConfig())
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testConfig())
	if old.tickGen == m.tickGen {
		t.Fatal("Each model should own its tick chain")
	}

	m, cmd := update(t, m, TickMsg{Time: time.Now(), Gen: old.tickGen})
	if cmd != nil {
		t.Error("A stale tick must not schedule another tick")
	}
	if len(game.frames) != 0 {
		t.Errorf("A stale tick stepped the game %d times", len(game.frames))
	}

	if _, cmd = update(t, m, TickMsg{Time: time.Now(), Gen: m.tickGen}); cmd == nil {
		t.Error("Own tick should schedule the next one")
	}
	if len(game.frames) != 1 {
		t.Errorf("frames = %d, want 1", len(game.frames))
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &fakeGame{state: core.GameState{GameOver: true, Outcome: &core.Outcome{Winner: "white"}}}
	m := NewModel(game, nil, nil, testConfig())
	m = tick(t, m)
	if m.LastResultID() != "" {
		t.Error("Nothing should be saved without a store")
	}
}

func TestModelResize(t *testing.T) {
	game := &resizableGame{fakeGame: &fakeGame{}}
	m := NewModel(game, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resets != 1 {
		t.Errorf("Resizable game was reset %d times, want 1", game.resets)
	}
	if len(game.sizes) != 1 || game.sizes[0] != (core.Point{X: 100, Y: 40}) {
		t.Errorf("sizes = %v", game.sizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}

	plain := &fakeGame{}
	pm := NewModel(plain, nil, nil, testConfig())
	update(t, pm, tea.WindowSizeMsg{Width: 60, Height: 20})
	if plain.resets != 1 {
		t.Errorf("Plain game should be reset on resize, got %d", plain.resets)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testConfig())

	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("Esc should go back to menu")
	}
	if cmd == nil {
		t.Error("Back should stop the program")
	}
	if back.View() != "" {
		t.Error("View should be empty after leaving")
	}

	quit, cmd := update(t, m, runeKey('q'))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testConfig())
	if !strings.Contains(m.View(), "fake board") {
		t.Errorf("View() = %q", m.View())
	}
}
