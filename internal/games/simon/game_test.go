package simon

import (
	"strings"
	"testing"
	"unicode"

	platformcore "github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
	"github.com/vovakirdan/tui-simon/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	SetStartLevel(0)
	SetConfigPath("")
	if err := SetDifficultyPreset(""); err != nil {
		t.Fatal(err)
	}

	g := New()
	cfg := platformcore.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func stepKeys(g *Game, keys ...rune) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, k := range keys {
		in.AddKey(k)
	}
	return g.Step(in)
}

func waitForPhase(t *testing.T, g *Game, phase core.Phase) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if g.Engine().Phase() == phase {
			return
		}
		step(g)
	}
	t.Fatalf("never reached %v, stuck in %v", phase, g.Engine().Phase())
}

func keyFor(g *Game, c core.Color) rune {
	return g.Engine().Registry().MustLookup(c).Key
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("simon") {
		t.Fatal("simon not registered")
	}
	g, err := registry.Create("simon")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "simon" || g.Title() != "Simon Says" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestIdleRender(t *testing.T) {
	g := newTestGame(t)
	scr := platformcore.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"SIMON SAYS", "ENTER: START", "level 1: 8 rounds", "[r] RED", "[y] YELLOW"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen missing %q:\n%s", want, out)
		}
	}
}

func TestConfirmStartsGame(t *testing.T) {
	g := newTestGame(t)

	res := step(g, platformcore.ActionConfirm)
	if g.Engine().Phase() != core.PhaseComputerTurn {
		t.Fatalf("phase = %v, expected computer turn", g.Engine().Phase())
	}
	if res.State.Level != 1 || res.State.Score != 0 || res.State.GameOver {
		t.Errorf("state = %+v", res.State)
	}

	// Confirm during a game does nothing.
	step(g, platformcore.ActionConfirm)
	if len(g.Engine().State().ComputerSequence) != 1 {
		t.Error("second confirm should not restart")
	}
}

func TestCorrectPressCompletesRound(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)
	waitForPhase(t, g, core.PhasePlayerTurn)

	want := g.Engine().State().ComputerSequence[0]
	res := stepKeys(g, keyFor(g, want))

	if g.Engine().Phase() != core.PhaseRoundComplete {
		t.Fatalf("phase = %v, expected round complete", g.Engine().Phase())
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}

	waitForPhase(t, g, core.PhaseComputerTurn)
	if n := len(g.Engine().State().ComputerSequence); n != 2 {
		t.Errorf("sequence length = %d, expected 2", n)
	}
}

func TestWrongPressShowsNotice(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)
	waitForPhase(t, g, core.PhasePlayerTurn)

	want := g.Engine().State().ComputerSequence[0]
	wrong := core.ColorRed
	if want == core.ColorRed {
		wrong = core.ColorGreen
	}

	res := stepKeys(g, keyFor(g, wrong))
	if !res.State.GameOver || res.State.Won || res.State.Score != 0 {
		t.Fatalf("state = %+v, expected lost game over", res.State)
	}

	scr := platformcore.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), core.DefaultMessages().Lose) {
		t.Errorf("notice not rendered:\n%s", scr.String())
	}

	res = step(g, platformcore.ActionConfirm)
	if res.State.GameOver {
		t.Error("confirm should dismiss the notice")
	}
	if g.Engine().Phase() != core.PhaseIdle {
		t.Errorf("phase = %v, expected idle", g.Engine().Phase())
	}
}

func TestUppercasePadKey(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)
	waitForPhase(t, g, core.PhasePlayerTurn)

	want := g.Engine().State().ComputerSequence[0]
	stepKeys(g, unicode.ToUpper(keyFor(g, want)))
	if g.Engine().Phase() != core.PhaseRoundComplete {
		t.Errorf("phase = %v after pressing %q", g.Engine().Phase(), unicode.ToUpper(keyFor(g, want)))
	}
}

func TestDigitKeysPressPads(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)
	waitForPhase(t, g, core.PhasePlayerTurn)

	want := g.Engine().State().ComputerSequence[0]
	digit := rune('0')
	for i, p := range g.Engine().Registry().Pads() {
		if p.Color == want {
			digit = rune('1' + i)
		}
	}

	stepKeys(g, digit)
	if g.Engine().Phase() != core.PhaseRoundComplete {
		t.Errorf("phase = %v after pressing %q", g.Engine().Phase(), digit)
	}
}

func TestClickPressesPad(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)
	waitForPhase(t, g, core.PhasePlayerTurn)

	want := g.Engine().State().ComputerSequence[0]
	var target platformcore.Rect
	for i, c := range g.layout.colors {
		if c == want {
			target = g.layout.pads[i]
		}
	}

	in := platformcore.NewInputFrame()
	x, y := target.Center()
	in.AddClick(x, y)
	g.Step(in)

	if g.Engine().Phase() != core.PhaseRoundComplete {
		t.Errorf("phase = %v after clicking the %v pad", g.Engine().Phase(), want)
	}
}

func TestClickStartControl(t *testing.T) {
	g := newTestGame(t)

	in := platformcore.NewInputFrame()
	in.AddClick(g.layout.start.Center())
	g.Step(in)

	if g.Engine().Phase() != core.PhaseComputerTurn {
		t.Errorf("phase = %v, expected computer turn", g.Engine().Phase())
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)

	res := step(g, platformcore.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	now := g.Engine().Now()
	for i := 0; i < 200; i++ {
		step(g)
	}
	if g.Engine().Now() != now {
		t.Errorf("clock moved while paused: %v -> %v", now, g.Engine().Now())
	}

	step(g, platformcore.ActionPause)
	step(g)
	if g.Engine().Now() == now {
		t.Error("clock should run after unpausing")
	}
}

func TestPauseIgnoredWhileIdle(t *testing.T) {
	g := newTestGame(t)
	if res := step(g, platformcore.ActionPause); res.State.Paused {
		t.Error("idle game should not pause")
	}
}

func TestLevelSelection(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 6; i++ {
		step(g, platformcore.ActionNext)
	}
	if g.Level() != 4 {
		t.Errorf("Level() = %d, expected 4 (clamped)", g.Level())
	}

	step(g, platformcore.ActionPrev)
	if g.Level() != 3 {
		t.Errorf("Level() = %d, expected 3", g.Level())
	}

	step(g, platformcore.ActionConfirm)
	if st := g.Engine().State(); st.MaxRoundCount != 20 {
		t.Errorf("MaxRoundCount = %d, expected 20", st.MaxRoundCount)
	}

	// Level keys are ignored during a game.
	step(g, platformcore.ActionNext)
	if g.Level() != 3 {
		t.Errorf("Level() = %d, expected 3", g.Level())
	}
}

func TestStartLevelAndPreset(t *testing.T) {
	defer SetStartLevel(0)
	defer SetDifficultyPreset("") //nolint:errcheck // Reset to default

	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatal(err)
	}
	g := New()
	g.Reset(platformcore.DefaultConfig())
	if g.Level() != 3 {
		t.Errorf("preset level = %d, expected 3", g.Level())
	}

	SetStartLevel(2)
	g.Reset(platformcore.DefaultConfig())
	if g.Level() != 2 {
		t.Errorf("start level = %d, expected 2", g.Level())
	}

	if err := SetDifficultyPreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)

	g.Resize(100, 30)
	if g.Engine().Phase() != core.PhaseComputerTurn {
		t.Errorf("resize changed phase to %v", g.Engine().Phase())
	}
	if g.layout.board.Right() > 100 {
		t.Errorf("board %+v exceeds the screen", g.layout.board)
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(t)
	g.Resize(20, 8)

	scr := platformcore.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Errorf("expected size warning:\n%s", scr.String())
	}
}

func TestLitPadRendersBright(t *testing.T) {
	g := newTestGame(t)
	step(g, platformcore.ActionConfirm)

	// The first pad lights 600ms into the computer turn.
	first := g.Engine().State().ComputerSequence[0]
	for i := 0; i < 40; i++ {
		step(g)
	}

	scr := platformcore.NewScreen(80, 24)
	g.Render(scr)

	for i, c := range g.layout.colors {
		r := g.layout.pads[i]
		cell := scr.GetCell(r.X, r.Y)
		lit := cell.Rune == padLitChar
		if lit != (c == first) {
			t.Errorf("%v pad lit = %v, expected %v", c, lit, c == first)
		}
	}
}
