package blockfall

import (
	"math/rand"
)

// Default board dimensions, matching the classic well.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// kickOffsets are the rotation corrections tried in order: no shift,
// kick left, kick right, kick up. The first non-colliding offset wins.
var kickOffsets = [4][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}

// Engine is the falling-block rules engine. It owns the board grid, the
// active and upcoming piece, the score/level/line counters, and the injected
// RNG. It has no notion of wall-clock time: the caller drives gravity by
// calling Tick, and reads state back through the accessor methods.
//
// Illegal actions are reported through boolean returns, never errors.
// The engine is not safe for concurrent use; it assumes a single owner.
type Engine struct {
	width  int
	height int
	rng    *rand.Rand

	board   [][]Kind
	current *Piece
	next    *Piece

	score    int
	level    int
	lines    int
	gameOver bool
}

// NewEngine creates an engine with an empty width×height board and spawns the
// first piece. The rng must be non-nil; the engine consumes it for piece
// generation only, so a fixed seed reproduces the full kind sequence.
func NewEngine(width, height int, rng *rand.Rand) *Engine {
	e := &Engine{
		width:  width,
		height: height,
		rng:    rng,
		level:  1,
	}
	e.board = newBoard(width, height)
	e.next = e.generatePiece()
	e.spawn()
	return e
}

func newBoard(width, height int) [][]Kind {
	board := make([][]Kind, height)
	for y := range board {
		board[y] = make([]Kind, width)
	}
	return board
}

// Width returns the board width in cells.
func (e *Engine) Width() int { return e.width }

// Height returns the board height in cells.
func (e *Engine) Height() int { return e.height }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level (lines/10 + 1).
func (e *Engine) Level() int { return e.level }

// Lines returns the cumulative number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// GameOver reports whether the board could no longer admit a new piece.
func (e *Engine) GameOver() bool { return e.gameOver }

// Current returns the active piece, or nil if there is none.
func (e *Engine) Current() *Piece { return e.current }

// Next returns the upcoming piece.
func (e *Engine) Next() *Piece { return e.next }

// Cell returns the locked content of a board cell.
// Out-of-bounds coordinates read as empty.
func (e *Engine) Cell(x, y int) Kind {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return KindNone
	}
	return e.board[y][x]
}

// generatePiece produces a uniformly-random piece in rotation-0 shape,
// horizontally centered, positioned so its bottom row sits just above row 0.
func (e *Engine) generatePiece() *Piece {
	kind := Kinds[e.rng.Intn(len(Kinds))]
	shape := kind.Shape()
	return &Piece{
		Kind:  kind,
		Shape: shape,
		X:     e.width/2 - len(shape[0])/2,
		Y:     -len(shape),
	}
}

// spawn promotes the stored next piece to current and generates a fresh next.
// If the new current piece collides at its spawn position the game is over;
// the piece is left in place for final rendering.
func (e *Engine) spawn() {
	e.current = e.next
	e.next = e.generatePiece()
	if e.collides(e.current.Shape, e.current.X, e.current.Y) {
		e.gameOver = true
	}
}

// collides reports whether placing shape at the given board-relative offset
// would leave the side walls, pass the floor, or overlap a locked cell.
// Rows above the board (negative board row) are only checked against the
// side walls.
func (e *Engine) collides(shape [][]bool, offsetX, offsetY int) bool {
	for y, row := range shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			boardX := offsetX + x
			boardY := offsetY + y
			if boardX < 0 || boardX >= e.width {
				return true
			}
			if boardY >= e.height {
				return true
			}
			if boardY >= 0 && e.board[boardY][boardX] != KindNone {
				return true
			}
		}
	}
	return false
}

// Move shifts the active piece horizontally by dx columns.
// Returns false without changing state if the move would collide,
// there is no active piece, or the game is over.
func (e *Engine) Move(dx int) bool {
	if e.gameOver || e.current == nil {
		return false
	}
	newX := e.current.X + dx
	if e.collides(e.current.Shape, newX, e.current.Y) {
		return false
	}
	e.current.X = newX
	return true
}

// Rotate turns the active piece 90 degrees, applying small wall-kick
// corrections. The rotated shape is tried at the candidate offsets in kick
// order; the first legal placement is committed. Returns false with state
// unchanged if every candidate collides.
func (e *Engine) Rotate(clockwise bool) bool {
	if e.gameOver || e.current == nil {
		return false
	}

	piece := e.current
	var rotated [][]bool
	if clockwise {
		rotated = RotateCW(piece.Shape)
	} else {
		rotated = RotateCCW(piece.Shape)
	}

	for _, kick := range kickOffsets {
		if !e.collides(rotated, piece.X+kick[0], piece.Y+kick[1]) {
			piece.Shape = rotated
			piece.X += kick[0]
			piece.Y += kick[1]
			return true
		}
	}
	return false
}

// SoftDrop advances the active piece one row. Returns true if the piece is
// still falling; if the row below is blocked the piece locks and SoftDrop
// returns false.
func (e *Engine) SoftDrop() bool {
	if e.gameOver || e.current == nil {
		return false
	}
	piece := e.current
	if !e.collides(piece.Shape, piece.X, piece.Y+1) {
		piece.Y++
		return true
	}
	e.lock()
	return false
}

// HardDrop drops the active piece to its resting position and locks it.
// Returns the number of rows the piece fell (0 if it was already resting).
func (e *Engine) HardDrop() int {
	if e.gameOver || e.current == nil {
		return 0
	}
	piece := e.current
	dropped := 0
	for !e.collides(piece.Shape, piece.X, piece.Y+1) {
		piece.Y++
		dropped++
	}
	e.lock()
	return dropped
}

// Tick applies one step of gravity. Identical to SoftDrop.
func (e *Engine) Tick() {
	e.SoftDrop()
}

// lock writes the active piece into the board, clears completed lines,
// updates the counters, and spawns the next piece. Piece cells still above
// the visible board are discarded.
func (e *Engine) lock() {
	if e.current == nil {
		return
	}
	piece := e.current
	for y, row := range piece.Shape {
		for x, filled := range row {
			if filled && piece.Y+y >= 0 {
				e.board[piece.Y+y][piece.X+x] = piece.Kind
			}
		}
	}

	cleared := e.clearLines()
	if cleared > 0 {
		e.lines += cleared
		e.score += cleared * cleared * 100
		e.level = e.lines/10 + 1
	}

	e.spawn()
}

// clearLines removes every fully-filled row, pads the board back to full
// height with empty rows on top, and returns the number of removed rows.
func (e *Engine) clearLines() int {
	survivors := make([][]Kind, 0, e.height)
	for _, row := range e.board {
		for _, cell := range row {
			if cell == KindNone {
				survivors = append(survivors, row)
				break
			}
		}
	}

	cleared := e.height - len(survivors)
	if cleared == 0 {
		return 0
	}

	board := make([][]Kind, 0, e.height)
	for i := 0; i < cleared; i++ {
		board = append(board, make([]Kind, e.width))
	}
	e.board = append(board, survivors...)
	return cleared
}

// ShadowY computes the row at which the active piece would come to rest if
// hard-dropped now. The second return is false if there is no active piece
// or the game is over. Read-only.
func (e *Engine) ShadowY() (int, bool) {
	if e.gameOver || e.current == nil {
		return 0, false
	}
	y := e.current.Y
	for !e.collides(e.current.Shape, e.current.X, y+1) {
		y++
	}
	return y, true
}

// Reset restores the engine to its initial state: empty board, zeroed
// counters, game over cleared. The RNG is preserved, so the kind sequence
// continues rather than restarting.
func (e *Engine) Reset() {
	e.board = newBoard(e.width, e.height)
	e.score = 0
	e.level = 1
	e.lines = 0
	e.gameOver = false
	e.current = nil
	e.next = e.generatePiece()
	e.spawn()
}

// CellRole describes what occupies a cell in a rendered board overlay.
type CellRole byte

const (
	RoleEmpty CellRole = iota
	RoleLocked
	RoleActive
	RoleGhost
)

// OverlayCell is one cell of the renderable board: the piece kind that
// colors it and the role it plays in the current frame.
type OverlayCell struct {
	Kind Kind
	Role CellRole
}

// Overlay returns the visible board merged with the active piece and its
// ghost landing position. The grid is rebuilt on every call since the board
// or piece may have moved. Intended for the presentation layer.
func (e *Engine) Overlay() [][]OverlayCell {
	grid := make([][]OverlayCell, e.height)
	for y := range grid {
		grid[y] = make([]OverlayCell, e.width)
		for x := range grid[y] {
			if e.board[y][x] != KindNone {
				grid[y][x] = OverlayCell{Kind: e.board[y][x], Role: RoleLocked}
			}
		}
	}

	if e.current == nil {
		return grid
	}
	piece := e.current

	// Ghost cells first, so the active piece paints over them when the
	// piece is already resting on its shadow.
	if shadowY, ok := e.ShadowY(); ok && shadowY != piece.Y {
		for y, row := range piece.Shape {
			for x, filled := range row {
				boardY := shadowY + y
				boardX := piece.X + x
				if filled && boardY >= 0 && boardY < e.height && grid[boardY][boardX].Role == RoleEmpty {
					grid[boardY][boardX] = OverlayCell{Kind: piece.Kind, Role: RoleGhost}
				}
			}
		}
	}

	for y, row := range piece.Shape {
		for x, filled := range row {
			boardY := piece.Y + y
			boardX := piece.X + x
			if filled && boardY >= 0 && boardY < e.height {
				grid[boardY][boardX] = OverlayCell{Kind: piece.Kind, Role: RoleActive}
			}
		}
	}

	return grid
}
