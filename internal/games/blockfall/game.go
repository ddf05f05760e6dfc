// Package blockfall implements the falling-block puzzle: a pure rules
// engine (Engine) plus the arcade adapter (Game) that maps platform input
// and tick cadence onto it.
package blockfall

import (
	"math/rand"

	"github.com/mgilperez/blockfall/internal/config"
	"github.com/mgilperez/blockfall/internal/core"
	"github.com/mgilperez/blockfall/internal/registry"
)

// Game adapts the Engine to the arcade platform. The engine itself is
// time-free; Game translates the platform's fixed tick rate into gravity
// steps using the configured speed curve.
type Game struct {
	cfg    config.BlockfallConfig
	engine *Engine
	rng    *rand.Rand

	tick          uint64
	tickRate      int
	gravityTicker int // Ticks since the last gravity step

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level variables set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the path to a custom YAML config.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Blockfall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Engine returns the underlying rules engine. Exposed for tests.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset initializes/restarts the game with a fresh engine and RNG.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		gameCfg = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(gameCfg.Board.Width, gameCfg.Board.Height, g.rng)

	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.gravityTicker = 0
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// checkScreenSize verifies the terminal can fit the well plus side panel.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Width*2 + 2 + sidePanelWidth
	minH := g.cfg.Board.Height + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// gravityTicks returns the number of simulation ticks between gravity steps
// for the engine's current level.
func (g *Game) gravityTicks() int {
	ticks := int(g.cfg.Gravity.Interval(g.engine.Level()) * float64(g.tickRate))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}

	// Restart after game over resets the board and counters but keeps the
	// RNG, so the piece sequence continues where it left off.
	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.engine.Reset()
		g.gravityTicker = 0
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if g.paused || g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	if g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.gravityTicker++
	if g.gravityTicker >= g.gravityTicks() {
		g.gravityTicker = 0
		g.engine.Tick()
	}

	return core.StepResult{State: g.State()}
}

// applyInput maps triggered actions to engine operations. A hard drop
// consumes the frame: the piece has already locked, so soft drop and
// gravity are meaningless for it.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.engine.Move(-1)
	}
	if in.Has(core.ActionRight) {
		g.engine.Move(1)
	}
	if in.Has(core.ActionUp) {
		g.engine.Rotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		g.engine.Rotate(false)
	}

	if in.Has(core.ActionDrop) {
		g.engine.HardDrop()
		g.gravityTicker = 0
		return
	}
	if in.Has(core.ActionDown) {
		if g.engine.SoftDrop() {
			g.gravityTicker = 0
		}
	}
}

// Level returns the current level for score records.
func (g *Game) Level() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Level()
}

// Lines returns the cleared-line count for score records.
func (g *Game) Lines() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Lines()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Paused: g.paused || g.tooSmall,
	}
	if g.engine != nil {
		state.Score = g.engine.Score()
		state.GameOver = g.engine.GameOver()
	}
	return state
}
