package simon

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// Visual characters for rendering
const (
	padLitChar   = '█'
	padUnlitChar = '▒'
)

const maxBoardW = 64

// layout holds the screen regions of the board.
type layout struct {
	headingY int
	statusY  int
	board    platformcore.Rect
	pads     []platformcore.Rect
	colors   []core.Color // Pad color per rect
	labels   []string
	start    platformcore.Rect // Clickable start control
	hintY    int
}

// computeLayout arranges the pads in a two-column grid between the
// heading and the start control.
func computeLayout(w, h int, pads []core.Pad) layout {
	l := layout{
		headingY: 1,
		statusY:  2,
		hintY:    h - 1,
	}

	boardW := platformcore.Min(w-4, maxBoardW)
	boardH := h - 8
	l.board = platformcore.NewRect((w-boardW)/2, 4, boardW, boardH)

	cols := 2
	rows := (len(pads) + cols - 1) / cols
	cells := platformcore.Grid(l.board, cols, rows, 1)

	for i, p := range pads {
		if i >= len(cells) {
			break
		}
		l.pads = append(l.pads, cells[i])
		l.colors = append(l.colors, p.Color)

		label := p.Label
		if p.Key != 0 {
			label = fmt.Sprintf("[%c] %s", p.Key, p.Label)
		}
		l.labels = append(l.labels, label)
	}

	startW := 24
	l.start = platformcore.NewRect((w-startW)/2, l.board.Bottom()+1, startW, 2)
	return l
}

// screenColor maps a pad color to its unlit screen color.
func screenColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorYellow:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorGray
	}
}

// Render draws the board, the texts and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	v := g.view
	dst.DrawTextCentered(g.layout.headingY, strings.ToUpper(v.text[core.TargetHeading]), platformcore.ColorBrightWhite)
	if v.visible[core.TargetStatus] {
		statusColor := platformcore.ColorGray
		if v.input {
			statusColor = platformcore.ColorWhite
		}
		dst.DrawTextCentered(g.layout.statusY, v.text[core.TargetStatus], statusColor)
	}

	for i, r := range g.layout.pads {
		g.renderPad(dst, r, g.layout.colors[i], g.layout.labels[i])
	}

	if v.visible[core.TargetStart] {
		g.renderStart(dst)
	}

	dst.DrawTextCentered(g.layout.hintY, g.hint(), platformcore.ColorDim)

	switch {
	case v.notice != "":
		g.renderNotice(dst, v.notice)
	case g.paused:
		g.renderNotice(dst, "PAUSED")
	}
}

func (g *Game) renderPad(dst *platformcore.Screen, r platformcore.Rect, c core.Color, label string) {
	base := screenColor(c)
	fill, color := padUnlitChar, base
	if g.view.lit[c] {
		fill, color = padLitChar, base.Bright()
	}

	dst.DrawRect(r, fill, color)

	_, cy := r.Center()
	labelColor := platformcore.ColorBrightWhite
	if !g.view.input {
		labelColor = platformcore.ColorGray
	}
	dst.DrawTextIn(platformcore.NewRect(r.X, cy, r.W, 1), " "+label+" ", labelColor)
}

func (g *Game) renderStart(dst *platformcore.Screen) {
	rounds := 0
	if g.level <= g.levelCount() {
		rounds = g.engine.Settings().Levels[g.level-1]
	}

	levelText := fmt.Sprintf("< level %d: %d rounds >", g.level, rounds)
	dst.DrawTextIn(platformcore.NewRect(0, g.layout.start.Y, dst.Width(), 1), levelText, platformcore.ColorWhite)
	dst.DrawTextIn(platformcore.NewRect(0, g.layout.start.Y+1, dst.Width(), 1), "[ ENTER: START ]", platformcore.ColorBrightGreen)

	if g.lastErr != "" {
		dst.DrawTextCentered(g.layout.statusY, g.lastErr, platformcore.ColorBrightRed)
	}
}

func (g *Game) renderNotice(dst *platformcore.Screen, message string) {
	w := platformcore.Max(len(message)+6, 26)
	box := platformcore.NewRect((dst.Width()-w)/2, dst.Height()/2-2, w, 5)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextIn(platformcore.NewRect(box.X, box.Y+1, box.W, 1), message, platformcore.ColorBrightYellow)
	if message != "PAUSED" {
		dst.DrawTextIn(platformcore.NewRect(box.X, box.Y+3, box.W, 1), "enter: continue", platformcore.ColorGray)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Terminal too small", platformcore.ColorBrightRed)
	dst.DrawTextCentered(cy, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), platformcore.ColorGray)
}

func (g *Game) hint() string {
	keys := make([]string, 0, g.engine.Registry().Len())
	for _, p := range g.engine.Registry().Pads() {
		if p.Key != 0 {
			keys = append(keys, string(p.Key))
		}
	}
	return fmt.Sprintf("%s/1-%d: press  p: pause  q: quit", strings.Join(keys, " "), g.engine.Registry().Len())
}
