package blockfall

import (
	"strings"
	"testing"

	"github.com/mgilperez/blockfall/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "blockfall" {
		t.Errorf("ID = %q, expected \"blockfall\"", g.ID())
	}
	if g.Title() != "Blockfall" {
		t.Errorf("Title = %q, expected \"Blockfall\"", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(1234)
	g2 := newTestGame(1234)

	for tick := 0; tick < 600; tick++ {
		in := core.NewInputFrame()
		switch {
		case tick%50 == 0:
			in.Set(core.ActionDrop)
		case tick%7 == 0:
			in.Set(core.ActionLeft)
		case tick%11 == 0:
			in.Set(core.ActionUp)
		case tick%13 == 0:
			in.Set(core.ActionDown)
		}

		g1.Step(in)
		g2.Step(in.Clone())

		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("tick %d: snapshots diverged\n%+v\nvs\n%+v", tick, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestGravityAdvancesPiece(t *testing.T) {
	g := newTestGame(5)
	startY := g.Engine().Current().Y

	ticks := g.gravityTicks()
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}

	if got := g.Engine().Current().Y; got != startY+1 {
		t.Errorf("piece Y = %d after one gravity interval, expected %d", got, startY+1)
	}
}

func TestSoftDropInput(t *testing.T) {
	g := newTestGame(5)
	startY := g.Engine().Current().Y

	g.Step(frame(core.ActionDown))

	if got := g.Engine().Current().Y; got != startY+1 {
		t.Errorf("piece Y = %d after a soft drop, expected %d", got, startY+1)
	}
}

func TestHardDropInput(t *testing.T) {
	g := newTestGame(5)

	g.Step(frame(core.ActionDrop))

	snap := g.Snapshot()
	if !strings.ContainsAny(snap.Board, "IJLOSTZ") {
		t.Error("hard drop should lock the piece into the board")
	}
	if snap.CurrentY >= 0 {
		t.Error("hard drop should spawn the next piece above the board")
	}
}

func TestMoveInputs(t *testing.T) {
	g := newTestGame(5)
	startX := g.Engine().Current().X

	g.Step(frame(core.ActionLeft))
	if got := g.Engine().Current().X; got != startX-1 {
		t.Errorf("piece X = %d after moving left, expected %d", got, startX-1)
	}

	g.Step(frame(core.ActionRight))
	if got := g.Engine().Current().X; got != startX {
		t.Errorf("piece X = %d after moving back right, expected %d", got, startX)
	}
}

func TestRotateInputs(t *testing.T) {
	g := newTestGame(5)
	before := g.Engine().Current().Height()

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionRotateCCW))

	// CW then CCW restores the original orientation.
	if got := g.Engine().Current().Height(); got != before {
		t.Errorf("piece height = %d after CW+CCW, expected %d", got, before)
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(5)
	g.Step(frame(core.ActionPause))

	if !g.State().Paused {
		t.Fatal("the game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()

	before.Tick, after.Tick = 0, 0
	if before != after {
		t.Error("a paused game must not advance")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("pressing pause again should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(5)
	g.engine.score = 900
	g.engine.gameOver = true

	g.Step(frame(core.ActionRestart))

	state := g.State()
	if state.GameOver {
		t.Error("restart should clear game over")
	}
	if state.Score != 0 {
		t.Errorf("score = %d after restart, expected 0", state.Score)
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	g := newTestGame(5)
	g.engine.score = 300

	g.Step(frame(core.ActionRestart))

	if g.State().Score != 300 {
		t.Error("restart must be ignored while the game is running")
	}
}

func TestTooSmallScreenBlocksPlay(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Fatal("an undersized screen should report the game as paused")
	}

	startY := g.Engine().Current().Y
	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionDown))
	}
	if g.Engine().Current().Y != startY {
		t.Error("the engine must not advance while the screen is too small")
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(5)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"BLOCKFALL", "Score", "Level", "Lines", "Next"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen should contain %q", want)
		}
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(5)
	g.engine.gameOver = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("rendered screen should show the game over overlay")
	}
}
