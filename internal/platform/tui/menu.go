package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one selectable level.
type MenuItem struct {
	Level  int
	Rounds int
	Preset config.DifficultyPreset
	Best   int  // Most rounds completed on this level
	Won    bool // The level has been beaten at least once
}

// label renders the item as a menu line without the cursor.
func (it MenuItem) label() string {
	preset := string(it.Preset)
	if preset == "" {
		preset = "-"
	}
	line := fmt.Sprintf("Level %d (%s): %d rounds", it.Level, preset, it.Rounds)
	switch {
	case it.Won:
		line += "  best: WON"
	case it.Best > 0:
		line += fmt.Sprintf("  best: %d", it.Best)
	}
	return line
}

// MenuModel is the level picker shown before each game.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting   bool
	scoreboard bool      // Tab pressed
	selected   *MenuItem // Enter pressed or level number typed
}

// NewMenuModel builds the menu for a level table. Best results come from
// store when it is not nil. The cursor starts on startLevel when valid.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID string, levels []int, startLevel int) MenuModel {
	m := MenuModel{
		items:     make([]MenuItem, len(levels)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	best := map[int]storage.GameStats{}
	if store != nil {
		if stats, err := store.LevelStats(gameID); err == nil {
			for _, st := range stats {
				best[st.Level] = st
			}
		}
	}

	for i, rounds := range levels {
		level := i + 1
		st := best[level]
		m.items[i] = MenuItem{
			Level:  level,
			Rounds: rounds,
			Preset: config.PresetForLevel(level),
			Best:   st.HighScore,
			Won:    st.Wins > 0,
		}
	}

	if startLevel >= 1 && startLevel <= len(m.items) {
		m.cursor = startLevel - 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu. Every way out of the menu quits
// its program; callers read the outcome from the final model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleKey applies a key and reports whether the menu is done.
func (m *MenuModel) handleKey(msg tea.KeyMsg) bool {
	// A level number picks that level directly
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '9' {
			if i := int(r - '1'); i < len(m.items) {
				m.cursor = i
				m.selectCurrent()
				return true
			}
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return true
	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
	case MenuActionSelect:
		return m.selectCurrent()
	case MenuActionScoreboard:
		m.scoreboard = true
		return true
	}
	return false
}

func (m *MenuModel) selectCurrent() bool {
	if len(m.items) == 0 {
		return false
	}
	item := m.items[m.cursor]
	m.selected = &item
	return true
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render(centerText("S I M O N   S A Y S", w)),
		"",
		centerText("Select a level", w),
		"",
	}

	// Pad labels to one width so the cursor column lines up
	width := 0
	for _, it := range m.items {
		width = core.Max(width, len(it.label()))
	}
	for i, it := range m.items {
		row := fmt.Sprintf("%-*s", width, it.label())
		if i == m.cursor {
			lines = append(lines, menuSelectedStyle.Render(centerText("> "+row, w)))
		} else {
			lines = append(lines, centerText("  "+row, w))
		}
	}

	lines = append(lines, "", menuHintStyle.Render(centerText("Up/Down: Navigate  |  1-9/Enter: Play  |  Tab: Scores  |  Q: Quit", w)), "")
	return strings.Join(lines, "\n")
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	Level           int // 0 unless a level was chosen
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result summarizes the final model.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		r.WantsScoreboard = true
	case m.selected != nil:
		r.Level = m.selected.Level
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the level menu in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, gameID string, levels []int, startLevel int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, gameID, levels, startLevel), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	if m, ok := final.(MenuModel); ok {
		return m.result(), nil
	}
	return MenuResult{Config: cfg, Quit: true}, nil
}
