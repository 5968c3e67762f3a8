package spinball

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/spinball/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	TrailChar    = '·'
	BonusChar    = '◎'
	LauncherChar = '▲'
	AimChar      = '∙'
	FloorChar    = '▔'
)

// Fill glyph per block type
var blockGlyphs = map[BlockType]rune{
	BlockNormal: '█',
	BlockBomb:   '▓',
	BlockShield: '▒',
	BlockGhost:  '░',
}

// aimLength is the aim guide length in field pixels.
const aimLength = 150.0

// layout maps the play area (TopUI to the floor) into screen cells.
// Terminal cells are about twice as tall as wide, so one row covers twice
// the pixels of one column.
type layout struct {
	originX, originY int
	cols, rows       int
	pxPerCol         float64
	pxPerRow         float64
	top              float64
}

// layout computes the field placement for the current screen size.
// Row 0 is the HUD, row 1 the top wall; the last two rows hold the floor
// and the launcher status line.
func (g *Game) layout() layout {
	availCols := g.runtime.ScreenW - 2
	availRows := g.runtime.ScreenH - 4
	if availCols < 1 || availRows < 1 {
		return layout{}
	}

	playH := g.field.Floor() - g.field.TopUI
	pxPerCol := math.Max(g.field.Width/float64(availCols), playH/float64(availRows)/2)

	l := layout{
		pxPerCol: pxPerCol,
		pxPerRow: pxPerCol * 2,
		top:      g.field.TopUI,
	}
	l.cols = min(int(math.Ceil(g.field.Width/l.pxPerCol)), availCols)
	l.rows = min(int(math.Ceil(playH/l.pxPerRow)), availRows)
	l.originX = 1 + (availCols-l.cols)/2
	l.originY = 2
	return l
}

// toCell converts field pixels to a screen cell.
func (l layout) toCell(x, y float64) (int, int) {
	cx := l.originX + int(math.Floor(x/l.pxPerCol))
	cy := l.originY + int(math.Floor((y-l.top)/l.pxPerRow))
	return cx, cy
}

// toField converts a screen cell to the field pixel at the cell's center.
func (l layout) toField(cx, cy int) (float64, float64, bool) {
	if l.cols == 0 {
		return 0, 0, false
	}
	x := (float64(cx-l.originX) + 0.5) * l.pxPerCol
	y := l.top + (float64(cy-l.originY)+0.5)*l.pxPerRow
	return x, y, true
}

// inside reports whether a cell lies in the play area.
func (l layout) inside(cx, cy int) bool {
	return cx >= l.originX && cx < l.originX+l.cols && cy >= l.originY && cy < l.originY+l.rows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		hint := fmt.Sprintf("%dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, g.text.T("too_small"))
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.Snapshot()
	l := g.layout()

	g.renderHUD(dst, &snap)
	g.renderWalls(dst, l)
	g.renderBlocks(dst, l, &snap)
	g.renderBonuses(dst, l, &snap)
	g.renderBalls(dst, l, &snap)
	g.renderLauncher(dst, l, &snap)
	g.renderOverlay(dst, &snap)
}

// renderHUD draws score, best and round on row 0.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	left := fmt.Sprintf("%s: %s  %s: %s",
		g.text.T("score"), g.text.Number(snap.Score),
		g.text.T("high_score"), g.text.Number(snap.HighScore))
	dst.DrawText(1, 0, left)

	if snap.ComboMultiplier > 1 {
		combo := fmt.Sprintf("%s x%.1f", g.text.T("combo"), snap.ComboMultiplier)
		dst.DrawTextCenteredColored(0, combo, core.ColorBrightYellow)
	}

	right := fmt.Sprintf("%s: %d", g.text.T("round"), snap.Round)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right)-1, 0, right)
}

// renderWalls draws the field frame; the bottom edge is the floor.
func (g *Game) renderWalls(dst *core.Screen, l layout) {
	frame := core.NewRect(l.originX-1, l.originY-1, l.cols+2, l.rows+2)
	dst.DrawBoxColored(frame, core.ColorGray)
	dst.DrawHLine(l.originX, l.originY+l.rows, l.cols, FloorChar, core.ColorRed)
}

func (g *Game) renderBlocks(dst *core.Screen, l layout, snap *Snapshot) {
	for _, b := range snap.Blocks {
		x0, y0 := l.toCell(b.X, b.Y)
		x1, y1 := l.toCell(b.X+b.Size-1, b.Y+b.Size-1)
		glyph := blockGlyphs[b.Type]
		color := b.Color()

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if l.inside(x, y) {
					dst.SetColored(x, y, glyph, color)
				}
			}
		}

		label := strconv.Itoa(b.Health)
		if len(label) > x1-x0+1 {
			continue
		}
		lx := x0 + (x1-x0+1-len(label))/2
		ly := (y0 + y1) / 2
		if l.inside(lx, ly) {
			dst.DrawTextColored(lx, ly, label, core.ColorWhite)
		}
	}
}

func (g *Game) renderBonuses(dst *core.Screen, l layout, snap *Snapshot) {
	for _, b := range snap.Bonuses {
		x, y := l.toCell(b.X, b.Y)
		if l.inside(x, y) {
			dst.SetColored(x, y, BonusChar, core.ColorBrightGreen)
		}
	}
}

func (g *Game) renderBalls(dst *core.Screen, l layout, snap *Snapshot) {
	for _, b := range snap.Balls {
		for _, p := range b.Trail {
			x, y := l.toCell(p.X, p.Y)
			if l.inside(x, y) && dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, TrailChar, core.ColorGray)
			}
		}
	}
	color := core.ColorBrightCyan
	if snap.Powerups.DoubleDamage {
		color = core.ColorBrightMagenta
	}
	for _, b := range snap.Balls {
		x, y := l.toCell(b.X, b.Y)
		if l.inside(x, y) {
			dst.SetColored(x, y, BallChar, color)
		}
	}
}

// renderLauncher draws the aim guide, the launch point and the status line.
func (g *Game) renderLauncher(dst *core.Screen, l layout, snap *Snapshot) {
	if snap.Phase == PhaseAiming {
		rad := snap.AimAngle * math.Pi / 180
		for d := 10.0; d <= aimLength; d += l.pxPerCol {
			x, y := l.toCell(snap.LaunchX+d*math.Cos(rad), snap.LaunchY-d*math.Sin(rad))
			if l.inside(x, y) && dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, AimChar, core.ColorWhite)
			}
		}
	}

	lx, _ := l.toCell(snap.LaunchX, snap.LaunchY)
	floorY := l.originY + l.rows
	dst.SetColored(core.Clamp(lx, l.originX, l.originX+l.cols-1), floorY, LauncherChar, core.ColorCyan)

	status := fmt.Sprintf("x%d", snap.BallCount)
	if snap.Bonus > 0 {
		status += fmt.Sprintf(" +%d", snap.Bonus)
	}
	for _, e := range []PowerupEffect{EffectDoubleDamage, EffectDoubleSpeed, EffectClearOnLastBall} {
		if snap.Powerups.Has(e) {
			status += " [" + g.text.T(e.String()) + "]"
		}
	}
	dst.DrawTextCentered(dst.Height()-1, status)
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.Phase {
	case PhaseTitle:
		mode := g.text.T("mode_classic")
		if snap.Mode == ModeSurvival {
			mode = g.text.T("mode_survival")
		}
		g.drawCenteredBox(dst, core.ColorBrightCyan,
			g.text.T("game_title")+" - "+mode,
			"",
			g.text.T("control_aim"),
			g.text.T("control_shoot"),
			g.text.T("control_blocks"),
			g.text.T("control_gameover"),
			"",
			g.text.T("press_enter"),
		)

	case PhaseAiming:
		dst.DrawTextCenteredColored(1, " "+g.text.T("aim_hint")+" ", core.ColorGray)

	case PhaseShop:
		g.renderShop(dst, snap)

	case PhasePaused:
		g.drawCenteredBox(dst, core.ColorYellow, g.text.T("paused"), "", g.text.T("pause_hint"))

	case PhaseGameOver:
		g.drawCenteredBox(dst, core.ColorRed,
			g.text.T("game_over"),
			"",
			fmt.Sprintf("%s: %s", g.text.T("score"), g.text.Number(snap.Score)),
			fmt.Sprintf("%s: %d", g.text.T("round"), snap.Round),
			"",
			g.text.T("restart_hint"),
		)
	}
}

func (g *Game) renderShop(dst *core.Screen, snap *Snapshot) {
	lines := []string{
		fmt.Sprintf("%s: %s", g.text.T("shop_credits"), g.text.Number(snap.Score)),
		"",
	}
	for i, it := range snap.ShopItems {
		line := fmt.Sprintf("%d. %s  %s", i+1, g.text.T(it.Effect.String()), g.text.Number(it.Price))
		if snap.Powerups.Has(it.Effect) || slices.Contains(snap.Pending, it.Effect) {
			line += "  (" + g.text.T("shop_owned") + ")"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")
	switch {
	case errors.Is(snap.ShopErr, ErrInsufficientScore):
		lines = append(lines, g.text.T("shop_no_score"))
	case errors.Is(snap.ShopErr, ErrAlreadyOwned):
		lines = append(lines, g.text.T("shop_owned"))
	case len(snap.Pending) > 0:
		lines = append(lines, g.text.T("shop_bought"))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, g.text.T("shop_hint"))

	g.drawCenteredBox(dst, core.ColorBrightMagenta, g.text.T("shop_title"), lines...)
}

// drawCenteredBox draws a centered message box with a title and body lines.
func (g *Game) drawCenteredBox(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+4, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ')
	dst.DrawBoxColored(rect, color)

	dst.DrawTextCenteredColored(boxY+1, title, color)
	for i, line := range lines {
		if boxY+3+i >= boxY+boxH-1 {
			break
		}
		dst.DrawTextCentered(boxY+3+i, line)
	}
}
