package hexfall

import (
	"fmt"

	"github.com/nlebedev/hexfall/internal/core"
)

const (
	// columnSpacing is the horizontal distance between adjacent hex
	// columns in screen characters.
	columnSpacing = 2

	// panelWidth is the width of the score/preview side panel.
	panelWidth = 20
)

// Cell glyphs.
const (
	glyphEmpty         = '·'
	glyphFilled        = '⬢'
	glyphGhost         = '⬡'
	glyphBomb          = '✸'
	glyphMultiplier    = '✦'
	glyphFrozen        = '▣'
	glyphFrozenCleared = '▢'
	glyphClearing      = '✺'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := (g.field.Columns()-1)*columnSpacing + 1
	boardH := g.field.Rows()
	boxW := boardW + 4
	boxH := boardH + 2

	totalW := boxW + 2 + panelWidth
	boxX := core.Max(0, (g.screenW-totalW)/2)
	boxY := core.Max(0, (g.screenH-boxH-1)/2)

	// Title above the playfield
	dst.DrawText(boxX+(boxW-len("HEXFALL"))/2, core.Max(0, boxY-1), "HEXFALL")

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	cellsX := boxX + 2
	cellsY := boxY + 1
	g.renderField(dst, cellsX, cellsY)
	g.renderPanel(dst, boxX+boxW+2, boxY)
	g.renderOverlays(dst, boxX+boxW/2, boxY+boxH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderField draws the playfield cells, the ghost preview and the
// falling piece.
func (g *Game) renderField(dst *core.Screen, cellsX, cellsY int) {
	grid := g.displayGrid()

	for _, a := range g.field.Cells() {
		x := cellsX + ColumnOf(a)*columnSpacing
		y := cellsY + RowOf(a)

		cell := grid[a]
		if !cell.Filled {
			dst.SetColored(x, y, glyphEmpty, core.ColorGray)
			continue
		}

		// Doomed cells blink during playback.
		if cell.Clearing > 0 && (g.tick/3)%2 == 0 {
			dst.SetColored(x, y, glyphClearing, core.ColorBrightWhite)
			continue
		}

		r, c := cellGlyph(cell)
		dst.SetColored(x, y, r, c)
	}

	if ghost := g.ghostPiece(); ghost != nil {
		for _, a := range ghost.Cells() {
			x := cellsX + ColumnOf(a)*columnSpacing
			y := cellsY + RowOf(a)
			dst.SetColored(x, y, glyphGhost, core.ColorGray)
		}
	}

	if g.piece != nil {
		r := rune(glyphFilled)
		c := g.piece.Color
		switch g.piece.Special {
		case SpecialBomb:
			r, c = glyphBomb, core.ColorBrightRed
		case SpecialMultiplier:
			r, c = glyphMultiplier, core.ColorBrightYellow
		}
		for _, a := range g.piece.Cells() {
			x := cellsX + ColumnOf(a)*columnSpacing
			y := cellsY + RowOf(a)
			dst.SetColored(x, y, r, c)
		}
	}
}

// cellGlyph picks the glyph and color for a filled cell.
func cellGlyph(c Cell) (rune, core.Color) {
	switch {
	case c.Special == SpecialBomb:
		return glyphBomb, core.ColorBrightRed
	case c.Special == SpecialMultiplier:
		return glyphMultiplier, core.ColorBrightYellow
	case c.Special == SpecialFrozen:
		return glyphFrozen, core.ColorBrightBlue
	case c.FrozenCleared:
		return glyphFrozenCleared, c.Color
	default:
		return glyphFilled, c.Color
	}
}

// renderPanel draws the score column and the next-piece preview.
func (g *Game) renderPanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawText(panelX, panelY, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(panelX, panelY+1, fmt.Sprintf("Level: %d", g.level))
	dst.DrawText(panelX, panelY+2, fmt.Sprintf("Lines: %d", g.lines))

	modeStr := "Classic"
	if g.mode == ModePure {
		modeStr = "Pure"
	}
	dst.DrawText(panelX, panelY+3, fmt.Sprintf("Mode:  %s", modeStr))

	dst.DrawText(panelX, panelY+5, "Next:")
	g.renderPreview(dst, panelX+2, panelY+6)

	if g.mode == ModeClassic {
		dst.DrawText(panelX, panelY+12, "Specials:")
		dst.DrawTextColored(panelX, panelY+13, string(glyphBomb)+" bomb", core.ColorBrightRed)
		dst.DrawTextColored(panelX, panelY+14, string(glyphMultiplier)+" x2 score", core.ColorBrightYellow)
		dst.DrawTextColored(panelX, panelY+15, string(glyphFrozen)+" frozen", core.ColorBrightBlue)
	}
}

// renderPreview draws the next piece normalized to the panel corner.
func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	if g.next == nil {
		return
	}

	cells := g.next.Cells()
	minCol, minRow := ColumnOf(cells[0]), RowOf(cells[0])
	for _, a := range cells[1:] {
		minCol = core.Min(minCol, ColumnOf(a))
		minRow = core.Min(minRow, RowOf(a))
	}

	r := rune(glyphFilled)
	c := g.next.Color
	switch g.next.Special {
	case SpecialBomb:
		r, c = glyphBomb, core.ColorBrightRed
	case SpecialMultiplier:
		r, c = glyphMultiplier, core.ColorBrightYellow
	}
	for _, a := range cells {
		px := x + (ColumnOf(a)-minCol)*columnSpacing
		py := y + RowOf(a) - minRow
		dst.SetColored(px, py, r, c)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d  Lines: %d", g.score, g.lines)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←→/HL: Move | ↑/X: Rotate | ↓/S: Soft drop | Space: Hard drop | P: Pause | Q: Quit"
}
