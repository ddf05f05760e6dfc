// Package tictactoe implements hot-seat tic-tac-toe for two players
// sharing one keyboard.
package tictactoe

// Mark is a player token. The zero value is an empty square.
type Mark byte

const (
	MarkNone Mark = 0
	MarkX    Mark = 'X'
	MarkO    Mark = 'O'
)

func (m Mark) String() string {
	if m == MarkNone {
		return " "
	}
	return string(rune(m))
}

// Board is the 3x3 grid stored as a flat array, row-major.
type Board [9]Mark

// winLines are the eight square triples that decide a round: three rows,
// three columns, two diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Place writes a mark into a square. Returns false if the index is out of
// range or the square is already taken.
func (b *Board) Place(index int, m Mark) bool {
	if index < 0 || index >= len(b) || b[index] != MarkNone {
		return false
	}
	b[index] = m
	return true
}

// Winner returns the mark holding a complete line, or MarkNone.
func (b *Board) Winner() Mark {
	for _, line := range winLines {
		if b[line[0]] != MarkNone && b[line[0]] == b[line[1]] && b[line[1]] == b[line[2]] {
			return b[line[0]]
		}
	}
	return MarkNone
}

// IsFull reports whether every square is taken.
func (b *Board) IsFull() bool {
	for _, square := range b {
		if square == MarkNone {
			return false
		}
	}
	return true
}
