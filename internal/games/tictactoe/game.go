package tictactoe

import (
	"fmt"

	"github.com/mgilperez/blockfall/internal/core"
	"github.com/mgilperez/blockfall/internal/registry"
)

// Minimum screen size for the grid plus HUD.
const (
	minScreenW = 30
	minScreenH = 14
)

// Game implements hot-seat tic-tac-toe. X and O alternate on one keyboard:
// arrows move the shared cursor, confirm places the current player's mark.
// Win/draw tallies persist across rounds within a session.
type Game struct {
	board  Board
	turn   Mark
	cursor int // Flat square index, 0..8

	winner    Mark
	draw      bool
	roundOver bool

	winsX  int
	winsO  int
	draws  int
	rounds int

	tick     uint64
	paused   bool
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new tic-tac-toe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset initializes/restarts the game, clearing the session tallies.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.winsX = 0
	g.winsO = 0
	g.draws = 0
	g.rounds = 0
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	g.startRound()
}

// startRound clears the board for a new round. X always opens, matching the
// classic convention; the cursor starts on the center square.
func (g *Game) startRound() {
	g.board = Board{}
	g.turn = MarkX
	g.cursor = 4
	g.winner = MarkNone
	g.draw = false
	g.roundOver = false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.winsX = 0
		g.winsO = 0
		g.draws = 0
		g.rounds = 0
		g.startRound()
		return core.StepResult{State: g.State()}
	}

	if g.roundOver {
		if input.Has(core.ActionConfirm) {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	if input.Has(core.ActionConfirm) && g.board.Place(g.cursor, g.turn) {
		g.endTurn()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor shifts the cursor one square, staying inside the grid.
func (g *Game) moveCursor(input core.InputFrame) {
	col := g.cursor % 3
	row := g.cursor / 3

	switch {
	case input.Has(core.ActionLeft):
		col = core.Clamp(col-1, 0, 2)
	case input.Has(core.ActionRight):
		col = core.Clamp(col+1, 0, 2)
	case input.Has(core.ActionUp):
		row = core.Clamp(row-1, 0, 2)
	case input.Has(core.ActionDown):
		row = core.Clamp(row+1, 0, 2)
	}

	g.cursor = row*3 + col
}

// endTurn checks the round result after a placement and passes the turn.
func (g *Game) endTurn() {
	if winner := g.board.Winner(); winner != MarkNone {
		g.winner = winner
		g.roundOver = true
		g.rounds++
		if winner == MarkX {
			g.winsX++
		} else {
			g.winsO++
		}
		return
	}

	if g.board.IsFull() {
		g.draw = true
		g.roundOver = true
		g.rounds++
		g.draws++
		return
	}

	if g.turn == MarkX {
		g.turn = MarkO
	} else {
		g.turn = MarkX
	}
}

// State returns the current game state. Score counts decided rounds, so a
// long session ranks above a short one on the scoreboard.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.winsX + g.winsO,
		Paused: g.paused || g.tooSmall,
	}
}

// markColor returns the display color for a player's mark.
func markColor(m Mark) core.Color {
	if m == MarkX {
		return core.ColorBrightRed
	}
	return core.ColorBrightCyan
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	// Cells are 4 characters wide and 2 tall, separated by divider lines.
	const gridW = 3*4 + 2
	const gridH = 3*2 + 2
	originX := (dst.Width() - gridW) / 2
	originY := (dst.Height()-gridH)/2 - 1
	if originY < 2 {
		originY = 2
	}

	dst.DrawTextCentered(originY-2, fmt.Sprintf("X %d : %d O   draws %d", g.winsX, g.winsO, g.draws))

	g.renderGrid(dst, originX, originY)

	statusY := originY + gridH + 1
	switch {
	case g.winner != MarkNone:
		dst.DrawTextCentered(statusY, fmt.Sprintf("Player %s wins!", g.winner))
		dst.DrawTextCentered(statusY+1, "Enter for the next round")
	case g.draw:
		dst.DrawTextCentered(statusY, "It's a draw.")
		dst.DrawTextCentered(statusY+1, "Enter for the next round")
	case g.paused:
		dst.DrawTextCentered(statusY, "Paused, P to resume")
	default:
		dst.DrawTextCentered(statusY, fmt.Sprintf("Player %s to move", g.turn))
	}
}

// renderGrid draws the board with dividers, marks and the cursor.
func (g *Game) renderGrid(dst *core.Screen, originX, originY int) {
	for i := 1; i < 3; i++ {
		dst.DrawHLine(originX, originY+i*3-1, 3*4+2, '─')
		dst.DrawVLine(originX+i*5-1, originY, 3*3-1, '│')
	}
	dst.Set(originX+4, originY+2, '┼')
	dst.Set(originX+9, originY+2, '┼')
	dst.Set(originX+4, originY+5, '┼')
	dst.Set(originX+9, originY+5, '┼')

	for i, mark := range g.board {
		col := i % 3
		row := i / 3
		cx := originX + col*5 + 1
		cy := originY + row*3

		if mark != MarkNone {
			dst.SetCell(cx+1, cy, rune(mark), markColor(mark))
		}
		if i == g.cursor && !g.roundOver {
			dst.SetCell(cx, cy, '[', core.ColorYellow)
			dst.SetCell(cx+2, cy, ']', core.ColorYellow)
		}
	}
}
