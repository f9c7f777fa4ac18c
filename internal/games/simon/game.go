// Package simon implements the Simon memory game on top of the pure engine
// in simon/core. The player repeats a growing sequence of colored pads;
// each level sets how many rounds must be survived to win.
package simon

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/vovakirdan/tui-simon/internal/config"
	platformcore "github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
	"github.com/vovakirdan/tui-simon/internal/registry"
)

// Minimum screen size for the pad board.
const (
	minScreenW = 32
	minScreenH = 14
)

// Package-level variables for config
var (
	selectedStartLevel int
	configPath         string
	difficultyPreset   config.DifficultyPreset
	padAudio           core.Audio
)

// SetStartLevel selects the level of the next game. 0 means level 1 or
// the difficulty preset's level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset picks the start level by preset name
// ("easy", "normal", "hard", "expert").
func SetDifficultyPreset(preset string) error {
	if preset == "" {
		difficultyPreset = ""
		return nil
	}
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetAudio sets the pad sound player for games created afterwards.
// nil plays nothing.
func SetAudio(a core.Audio) {
	padAudio = a
}

// Game adapts the Simon engine to the platform's tick loop.
type Game struct {
	cfg    config.SimonConfig
	engine *core.Engine
	view   *view
	rc     platformcore.RuntimeConfig

	level      int // Level the next Start uses
	startLevel int // Per-game override of the package-level start level
	paused     bool
	tooSmall   bool
	tick       uint64
	lastErr    string

	layout layout
}

// New creates a new Simon game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("simon", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Says"
}

// Reset loads the configuration and returns to the idle screen.
// Any running game is aborted.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rc = cfg
	g.tick = 0
	g.paused = false
	g.lastErr = ""

	simonCfg, err := config.LoadSimon(configPath)
	if err != nil {
		simonCfg = config.DefaultSimonConfig()
		g.lastErr = err.Error()
	}
	g.cfg = simonCfg

	settings, err := simonCfg.ToSettings()
	if err != nil {
		settings = core.DefaultSettings()
		g.lastErr = err.Error()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.view = newView()
	g.engine = core.NewEngine(settings, rand.New(rand.NewSource(seed)), g.view, padAudio)

	g.level = g.initialLevel()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// SelectLevel sets the level of this game instance, overriding
// SetStartLevel and the difficulty preset. It applies immediately when
// no game is running.
func (g *Game) SelectLevel(level int) {
	g.startLevel = level
	if g.engine != nil && g.engine.Phase() == core.PhaseIdle {
		g.level = g.initialLevel()
	}
}

func (g *Game) initialLevel() int {
	level := 1
	switch {
	case g.startLevel > 0:
		level = g.startLevel
	case selectedStartLevel > 0:
		level = selectedStartLevel
	case difficultyPreset != "":
		level = config.LevelForPreset(difficultyPreset)
	}
	return platformcore.Clamp(level, 1, g.levelCount())
}

func (g *Game) levelCount() int {
	return len(g.engine.Settings().Levels)
}

// Resize updates the layout without touching the running game.
func (g *Game) Resize(w, h int) {
	g.rc.ScreenW = w
	g.rc.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	if g.engine != nil {
		g.layout = computeLayout(w, h, g.engine.Registry().Pads())
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Level returns the level the next game starts at.
func (g *Game) Level() int {
	return g.level
}

// Step handles one tick of input and advances the game clock.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionPause) && g.engine.Phase() != core.PhaseIdle {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionConfirm) {
		g.confirm()
	}

	if g.idle() {
		if in.Has(platformcore.ActionPrev) {
			g.level = platformcore.Clamp(g.level-1, 1, g.levelCount())
		}
		if in.Has(platformcore.ActionNext) {
			g.level = platformcore.Clamp(g.level+1, 1, g.levelCount())
		}
	}

	for _, k := range in.Keys {
		if c, ok := g.padForKey(k); ok {
			g.engine.Press(c)
		}
	}

	for _, p := range in.Clicks {
		g.click(p)
	}

	g.engine.Elapse(g.rc.TickInterval())

	return platformcore.StepResult{State: g.State()}
}

// idle reports whether the game waits for a start with no notice shown.
func (g *Game) idle() bool {
	return g.engine.Phase() == core.PhaseIdle && g.view.notice == ""
}

// confirm dismisses the game-over notice or starts a game.
func (g *Game) confirm() {
	if g.view.notice != "" {
		g.view.notice = ""
		return
	}
	if g.engine.Phase() != core.PhaseIdle {
		return
	}
	if err := g.engine.Start(g.level); err != nil {
		g.lastErr = err.Error()
		return
	}
	g.lastErr = ""
}

// padForKey maps a pad key, in either case, or a 1-based pad number to a color.
func (g *Game) padForKey(k rune) (core.Color, bool) {
	reg := g.engine.Registry()
	if p, ok := reg.ByKey(unicode.ToLower(k)); ok {
		return p.Color, true
	}
	if k >= '1' && k <= '9' {
		pads := reg.Pads()
		if i := int(k - '1'); i < len(pads) {
			return pads[i].Color, true
		}
	}
	return core.ColorNone, false
}

func (g *Game) click(p platformcore.Point) {
	if g.tooSmall {
		return
	}
	if g.view.notice != "" {
		g.view.notice = ""
		return
	}
	if g.idle() && g.layout.start.Contains(p.X, p.Y) {
		g.confirm()
		return
	}
	for i, r := range g.layout.pads {
		if r.Contains(p.X, p.Y) {
			g.engine.Press(g.layout.colors[i])
			return
		}
	}
}

// State returns the current game state. Score counts completed rounds.
func (g *Game) State() platformcore.GameState {
	st := g.engine.State()
	gs := platformcore.GameState{
		Level:  st.Level,
		Paused: g.paused,
	}

	if st.Phase != core.PhaseIdle {
		gs.Score = st.RoundCount - 1
		return gs
	}

	if o := st.LastOutcome; o != nil {
		gs.Score = o.Rounds
		gs.Level = o.Level
		gs.Won = o.Won
		gs.GameOver = g.view.notice != ""
	}
	if gs.Level == 0 {
		gs.Level = g.level
	}
	return gs
}
