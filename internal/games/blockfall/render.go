package blockfall

import (
	"fmt"

	"github.com/mgilperez/blockfall/internal/core"
)

// sidePanelWidth is the character width reserved to the right of the well
// for the score panel and next-piece preview.
const sidePanelWidth = 18

// kindColors maps each piece kind to its display color.
var kindColors = map[Kind]core.Color{
	KindI: core.ColorBrightCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorBrightYellow,
	KindS: core.ColorBrightGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorBrightRed,
}

// Render draws the current game state to the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.tooSmall {
		g.renderTooSmall(screen)
		return
	}
	if g.engine == nil {
		return
	}

	boardW := g.engine.Width()
	boardH := g.engine.Height()

	// Each board cell renders as two characters to keep the aspect ratio
	// close to square.
	wellW := boardW * 2
	totalW := wellW + 2 + sidePanelWidth
	offsetX := (screen.Width()-totalW)/2 + 1
	offsetY := (screen.Height() - (boardH + 2)) / 2
	if offsetY < 0 {
		offsetY = 0
	}

	screen.DrawBox(core.NewRect(offsetX-1, offsetY, wellW+2, boardH+2))

	for y, row := range g.engine.Overlay() {
		for x, cell := range row {
			sx := offsetX + x*2
			sy := offsetY + 1 + y
			switch cell.Role {
			case RoleLocked, RoleActive:
				c := kindColors[cell.Kind]
				screen.SetCell(sx, sy, '█', c)
				screen.SetCell(sx+1, sy, '█', c)
			case RoleGhost:
				if g.cfg.Display.Ghost {
					screen.SetCell(sx, sy, '░', core.ColorGray)
					screen.SetCell(sx+1, sy, '░', core.ColorGray)
				}
			}
		}
	}

	g.renderSidePanel(screen, offsetX+wellW+2, offsetY)

	if g.engine.GameOver() {
		g.drawOverlay(screen, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			"",
			"R to restart",
			"Q to quit",
		})
	} else if g.paused {
		g.drawOverlay(screen, []string{
			"PAUSED",
			"",
			"P to resume",
		})
	}
}

func (g *Game) renderSidePanel(screen *core.Screen, x, y int) {
	screen.DrawTextColored(x+1, y, "BLOCKFALL", core.ColorBrightWhite)

	screen.DrawText(x+1, y+2, fmt.Sprintf("Score  %d", g.engine.Score()))
	screen.DrawText(x+1, y+3, fmt.Sprintf("Level  %d", g.engine.Level()))
	screen.DrawText(x+1, y+4, fmt.Sprintf("Lines  %d", g.engine.Lines()))

	if g.cfg.Display.NextPreview {
		g.renderNextPreview(screen, x+1, y+6)
	}

	hintY := y + 13
	screen.DrawTextColored(x+1, hintY, "←/→  move", core.ColorGray)
	screen.DrawTextColored(x+1, hintY+1, "↑/z  rotate", core.ColorGray)
	screen.DrawTextColored(x+1, hintY+2, "↓    soft drop", core.ColorGray)
	screen.DrawTextColored(x+1, hintY+3, "spc  hard drop", core.ColorGray)
	screen.DrawTextColored(x+1, hintY+4, "p    pause", core.ColorGray)
}

// renderNextPreview draws the upcoming piece in a small labeled box.
func (g *Game) renderNextPreview(screen *core.Screen, x, y int) {
	screen.DrawText(x, y, "Next")

	next := g.engine.Next()
	if next == nil {
		return
	}
	screen.DrawBox(core.NewRect(x, y+1, 10, 5))

	c := kindColors[next.Kind]
	for py, row := range next.Shape {
		for px, filled := range row {
			if !filled {
				continue
			}
			screen.SetCell(x+1+px*2, y+2+py, '█', c)
			screen.SetCell(x+2+px*2, y+2+py, '█', c)
		}
	}
}

// drawOverlay renders a centered message box over the playfield.
func (g *Game) drawOverlay(screen *core.Screen, lines []string) {
	boxW := 0
	for _, line := range lines {
		if len(line)+4 > boxW {
			boxW = len(line) + 4
		}
	}
	boxH := len(lines) + 2
	boxX := (screen.Width() - boxW) / 2
	boxY := (screen.Height() - boxH) / 2

	screen.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		screen.DrawTextCentered(boxY+1+i, line)
	}
}

func (g *Game) renderTooSmall(screen *core.Screen) {
	minW := g.cfg.Board.Width*2 + 2 + sidePanelWidth
	minH := g.cfg.Board.Height + 2
	screen.DrawTextCentered(screen.Height()/2-1, "Terminal too small")
	screen.DrawTextCentered(screen.Height()/2, fmt.Sprintf("Need at least %dx%d", minW, minH))
}
