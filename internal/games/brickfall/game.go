// Package brickfall implements a swarm-launch brick shooter: the player aims
// a staggered volley of balls at a descending grid of bricks, with score,
// lives, and level progression persisting across rounds.
package brickfall

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
)

// Game state constants
const (
	StateAiming   = "aiming"   // waiting for a fire command
	StateFiring   = "firing"   // balls in flight
	StateGameOver = "gameover" // no lives left
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Brickfall game logic. The tick function is the sole
// writer of all simulation state; the platform only reads snapshots between
// ticks and pushes input intent applied at the start of the next tick.
type Game struct {
	// Configuration
	cfg   config.BrickfallConfig
	field Field
	rng   *rand.Rand

	// Simulation state
	grid     *Grid
	balls    []*Ball   // current shot list, in launch order
	returned []float64 // x positions where balls came to rest
	tick     int
	state    string

	// Round/session bookkeeping
	level        int
	score        int
	highScore    int // session high score, survives new-game
	lives        int
	highestLevel int // session best level, survives new-game
	livesFlash   int // ticks remaining on the lives-lost flash

	// Aim state
	aimX     float64 // launch origin x in field units
	aimAngle float64 // radians from positive x axis, positive = up-screen

	// Layout (computed from screen size)
	playTop        int // first screen row of the play area
	playW          int // play area width in cells
	playH          int // play area height in cells
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Brickfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "brickfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brickfall"
}

// Reset initializes or restarts the game, dropping session stats.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBrickfall(configPath)
	if err != nil {
		cfg = config.DefaultBrickfallConfig()
	}
	g.cfg = cfg

	g.field = Field{
		Width:    cfg.Field.Width,
		Height:   cfg.Field.Height,
		CellSize: cfg.Field.CellSize,
		Cols:     cfg.Field.Cols(),
		Rows:     cfg.Field.Rows(),
		Radius:   cfg.Physics.BallRadius,
		Speed:    cfg.Physics.BallSpeed,
	}

	g.minScreenW = 24
	g.minScreenH = 12
	g.layoutFor(runtime.ScreenW, runtime.ScreenH)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.grid = NewGrid(g.field.Cols, g.field.Rows)

	g.highScore = 0
	g.highestLevel = 1
	g.newGame()
}

// layoutFor computes the play area inside a screen of the given size. One HUD
// row at the top, one at the bottom; the field scales into the rest. Render
// calls this with the destination screen's size every frame so a terminal
// resize takes effect without disturbing the run.
func (g *Game) layoutFor(w, h int) {
	g.playTop = 1
	g.playW = w
	g.playH = h - 2
	if g.playH < 1 {
		g.playH = 1
	}
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// newGame resets round state for a fresh run. Session high score and best
// level persist; everything else returns to defaults.
func (g *Game) newGame() {
	g.level = 1
	g.score = 0
	g.lives = g.cfg.Rules.Lives
	g.balls = g.balls[:0]
	g.returned = g.returned[:0]
	g.aimX = g.field.Width / 2
	g.aimAngle = math.Pi / 4
	g.livesFlash = 0
	g.tick = 0
	g.grid.Reset()
	g.grid.SpawnRow(g.rng, g.level)
	g.state = StateAiming
}

// shotCount returns the number of balls per round at the current level.
func (g *Game) shotCount() int {
	return 2 * g.level
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.newGame()
			return core.StepResult{State: g.State()}
		}
		// Gameplay halts, but fade and flash timers keep ticking so the
		// renderer can finish its animations.
		g.tickTimers()
		return core.StepResult{State: g.State()}
	}

	g.applyIntent(in)

	g.tick++

	if g.state == StateFiring {
		g.updateBalls()
	}

	g.checkBottomBreach()

	if g.lives <= 0 {
		g.state = StateGameOver
	}

	g.tickTimers()

	return core.StepResult{State: g.State()}
}

// tickTimers advances the visual-only timers.
func (g *Game) tickTimers() {
	if g.livesFlash > 0 {
		g.livesFlash--
	}
	g.grid.TickFade()
}

// applyIntent applies this frame's input intent before the simulation runs.
// Invalid intent (fire while firing, and so on) is ignored, not an error.
func (g *Game) applyIntent(in core.InputFrame) {
	nudge := float64(g.cfg.Rules.AimNudge)
	if in.Has(core.ActionLeft) {
		g.aimX -= nudge
	}
	if in.Has(core.ActionRight) {
		g.aimX += nudge
	}
	g.aimX = core.ClampF(g.aimX, g.field.Radius, g.field.Width-g.field.Radius)

	if in.PointerSet {
		fx, fy := g.fieldFromCell(in.PointerX, in.PointerY)
		g.AimAt(fx, fy)
	}

	if in.Has(core.ActionFire) && g.state == StateAiming {
		g.fire()
	}
}

// AimAt points the aim angle from the launch origin toward the given field
// position. Aiming below the floor is floored to keep the angle up-screen.
func (g *Game) AimAt(fx, fy float64) {
	dx := fx - g.aimX
	dy := (g.field.Height - g.field.Radius) - fy
	if dy <= 0 {
		dy = 1
	}
	g.aimAngle = math.Atan2(dy, dx)
}

// fire creates the shot list: one ball per shot count, all starting at the
// launch origin with the current aim angle, ball i eligible to move at
// tick + i*launchDelay.
func (g *Game) fire() {
	g.state = StateFiring
	g.balls = g.balls[:0]
	g.returned = g.returned[:0]

	floorY := g.field.Height - g.field.Radius
	for i := 0; i < g.shotCount(); i++ {
		b := NewBall(g.aimX, floorY, g.aimAngle, g.field)
		b.LaunchTick = g.tick + i*g.cfg.Physics.LaunchDelay
		g.balls = append(g.balls, b)
	}
}

// updateBalls launches eligible balls, advances the launched ones through
// kinematics and collision resolution, and completes the round once every
// ball has returned.
func (g *Game) updateBalls() {
	for _, b := range g.balls {
		if !b.Launched && g.tick >= b.LaunchTick {
			b.Launched = true
		}
	}

	for _, b := range g.balls {
		if !b.Launched || !b.Active {
			continue
		}
		b.Update(g.field)
		g.resolveCollisions(b)
	}

	for _, b := range g.balls {
		if !b.Returned() {
			return
		}
	}
	for _, b := range g.balls {
		g.returned = append(g.returned, b.X)
	}
	g.completeRound()
}

// resolveCollisions runs the per-tick multi-collision loop for one ball:
// find the first colliding brick, damage it, reflect, repeat. The iteration
// cap bounds worst-case work; hitting it just defers resolution one tick.
func (g *Game) resolveCollisions(b *Ball) {
	for iter := 0; iter < g.cfg.Rules.MaxResolve; iter++ {
		hit := -1
		for i, brick := range g.grid.Bricks() {
			if Collides(b, BrickRect(*brick, g.field), g.field.Radius) {
				hit = i
				break
			}
		}
		if hit < 0 {
			return
		}

		brick := g.grid.Bricks()[hit]
		brick.HP--
		g.score += g.cfg.Rules.PointsPerHit
		if g.score > g.highScore {
			g.highScore = g.score
		}
		b.Cooldown = g.cfg.Rules.HitCooldown

		Resolve(b, BrickRect(*brick, g.field), g.field)

		if brick.HP <= 0 {
			g.grid.RemoveAt(hit)
		}
	}
}

// completeRound records the next launch origin, advances the level, and
// descends/spawns the grid for the next round.
func (g *Game) completeRound() {
	if len(g.returned) > 0 {
		g.aimX = core.ClampF(g.returned[0], g.field.Radius, g.field.Width-g.field.Radius)
	}

	g.level++
	if g.level > g.highestLevel {
		g.highestLevel = g.level
	}

	g.grid.Descend()
	g.grid.SpawnRow(g.rng, g.level)

	g.balls = g.balls[:0]
	g.returned = g.returned[:0]
	g.state = StateAiming
}

// checkBottomBreach costs a life and sweeps the bottom rows when a brick
// reaches the row adjacent to the floor. The sweep removes the offending
// bricks, so at most one penalty fires per tick.
func (g *Game) checkBottomBreach() {
	if !g.grid.BottomBreached() {
		return
	}
	g.lives--
	g.livesFlash = FadeTicks
	g.grid.SweepBottomRows(g.cfg.Rules.SweepRows)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
	}
}

// Register the game with the platform registry.
func init() {
	registry.Register("brickfall", func() registry.Game {
		return New()
	})
}
