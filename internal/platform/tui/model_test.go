package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	simoncore "github.com/vovakirdan/tui-simon/internal/games/simon/core"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tickUntil(t *testing.T, m Model, g *simon.Game, phase simoncore.Phase) Model {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if g.Engine().Phase() == phase {
			return m
		}
		m = update(t, m, TickMsg{})
	}
	t.Fatalf("never reached %v", phase)
	return m
}

// wrongKey returns the key of a pad other than c.
func wrongKey(g *simon.Game, c simoncore.Color) rune {
	for _, p := range g.Engine().Registry().Pads() {
		if p.Color != c {
			return p.Key
		}
	}
	return 0
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *simon.Game) {
	t.Helper()
	simon.SetStartLevel(0)
	simon.SetConfigPath("")

	g := simon.New()
	m := NewEmbeddedModel(g, store, testRuntimeConfig(), "alice")
	m.Init()
	return m, g
}

func TestModelSavesResultOnce(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = tickUntil(t, m, g, simoncore.PhasePlayerTurn)

	first := g.Engine().State().ComputerSequence[0]
	m = update(t, m, runeKey(wrongKey(g, first)))
	m = update(t, m, TickMsg{})

	if !m.GameState().GameOver {
		t.Fatalf("state = %+v, expected game over", m.GameState())
	}

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("simon", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, expected 1", len(scores))
	}
	got := scores[0]
	if got.Won || got.Score != 0 || got.Level != 1 || got.Player != "alice" {
		t.Errorf("saved %+v", got)
	}
}

func TestModelSavesNextGameToo(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	for round := 0; round < 2; round++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = update(t, m, TickMsg{})
		m = tickUntil(t, m, g, simoncore.PhasePlayerTurn)

		first := g.Engine().State().ComputerSequence[0]
		m = update(t, m, runeKey(wrongKey(g, first)))
		m = update(t, m, TickMsg{})

		// Dismiss the notice.
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = update(t, m, TickMsg{})
		if m.GameState().GameOver {
			t.Fatalf("notice still shown after confirm")
		}
	}

	scores, err := store.TopScores("simon", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Errorf("saved %d results, expected 2", len(scores))
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, _ := newTestModel(t, nil)

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Errorf("esc: back=%v quitting=%v", back.BackToMenu(), back.IsQuitting())
	}

	next, cmd := m.Update(runeKey('q'))
	quit := next.(Model)
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestStandaloneModelIgnoresBack(t *testing.T) {
	g := simon.New()
	m := NewModel(g, nil, testRuntimeConfig())
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone model should not go back to a menu")
	}
}

func TestModelMouseClickPressesStart(t *testing.T) {
	m, g := newTestModel(t, nil)

	// The start control sits below the board; scan the screen for it.
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	x, y := -1, -1
	for row := 0; row < scr.Height() && y < 0; row++ {
		for col := 0; col < scr.Width(); col++ {
			if scr.Get(col, row) == 'E' && scr.Get(col+1, row) == 'N' && scr.Get(col+2, row) == 'T' {
				x, y = col, row
				break
			}
		}
	}
	if y < 0 {
		t.Fatalf("start control not found:\n%s", scr.String())
	}

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	if g.Engine().Phase() == simoncore.PhaseIdle {
		t.Error("click on start should begin a game")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.Engine().Phase() == simoncore.PhaseIdle {
		t.Error("resize aborted the game")
	}
}
