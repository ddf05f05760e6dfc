package blockfall

import "strings"

// Snapshot is a deterministic capture of the full game state.
// Two runs with the same seed and input sequence must produce identical
// snapshots at every tick.
type Snapshot struct {
	Tick     uint64
	Score    int
	Level    int
	Lines    int
	GameOver bool
	Paused   bool

	CurrentKind Kind
	CurrentX    int
	CurrentY    int
	NextKind    Kind

	// Board is the locked grid, one row per line, '.' for empty cells and
	// the kind letter for occupied ones.
	Board string
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Paused: g.paused,
	}
	if g.engine == nil {
		return snap
	}

	snap.Score = g.engine.Score()
	snap.Level = g.engine.Level()
	snap.Lines = g.engine.Lines()
	snap.GameOver = g.engine.GameOver()

	if cur := g.engine.Current(); cur != nil {
		snap.CurrentKind = cur.Kind
		snap.CurrentX = cur.X
		snap.CurrentY = cur.Y
	}
	if next := g.engine.Next(); next != nil {
		snap.NextKind = next.Kind
	}

	var sb strings.Builder
	for y := 0; y < g.engine.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.engine.Width(); x++ {
			kind := g.engine.Cell(x, y)
			if kind == KindNone {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte(kind))
			}
		}
	}
	snap.Board = sb.String()

	return snap
}
