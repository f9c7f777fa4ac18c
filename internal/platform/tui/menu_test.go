package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var testLevels = []int{8, 14, 20, 31}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestMenuListsLevels(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "simon", Level: 2, Score: 9}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, testRuntimeConfig(), "simon", testLevels, 0)
	view := m.View()

	for _, want := range []string{"S I M O N", "Level 1 (easy): 8 rounds", "Level 4 (expert): 31 rounds", "best: 9"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q:\n%s", want, view)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testRuntimeConfig(), "simon", testLevels, 0)

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("nothing selected")
	}
	if sel.Level != 2 || sel.Rounds != 14 {
		t.Errorf("selected %+v, expected level 2", sel)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testRuntimeConfig(), "simon", testLevels, 4)

	for i := 0; i < 3; i++ {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.Level != 4 {
		t.Errorf("selected %+v, expected level 4", sel)
	}
}

func TestMenuQuitAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, testRuntimeConfig(), "simon", testLevels, 0)

	if q := menuUpdate(t, m, runeKey('q')); !q.IsQuitting() {
		t.Error("q should quit")
	}
	if q := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !q.IsQuitting() {
		t.Error("esc should quit")
	}
	if s := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab}); !s.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(nil, testRuntimeConfig(), "simon", testLevels, 0)
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}

func TestScoreboardByLevel(t *testing.T) {
	store := openTestStore(t)
	results := []storage.Result{
		{GameID: "simon", Level: 1, Score: 3, Player: "bob"},
		{GameID: "simon", Level: 1, Score: 8, Won: true, Player: "alice"},
		{GameID: "simon", Level: 2, Score: 5},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "simon", testLevels, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Player != "alice" {
		t.Fatalf("level 1 scores = %+v", m.scores)
	}

	view := m.View()
	for _, want := range []string{"Level 1 (8 rounds)", "WON", "alice", "games: 2  wins: 1 (50%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Score != 5 {
		t.Errorf("level 2 scores = %+v", m.scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.levelCursor != len(testLevels)-1 || len(m.scores) != 0 {
		t.Errorf("wrap to last level: cursor=%d scores=%d", m.levelCursor, len(m.scores))
	}
	if !strings.Contains(m.View(), "no games played") {
		t.Error("empty level should say so")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, "simon", testLevels, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, testRuntimeConfig(), "simon", testLevels, "carol")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.InScoreboard() {
		t.Fatal("tab should open the scoreboard")
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InScoreboard() || m.InGame() {
		t.Fatal("esc should return to the menu")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start a game")
	}
	if !strings.Contains(m.View(), "level 2: 14 rounds") {
		t.Errorf("game should start on the chosen level:\n%s", m.View())
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Fatal("esc should leave the game")
	}
	if !strings.Contains(m.View(), "> Level 2") {
		t.Errorf("menu should keep the last level selected:\n%s", m.View())
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.(SessionModel).View() != "" {
		t.Error("q in the menu should end the session")
	}
}
