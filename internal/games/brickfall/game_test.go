package brickfall

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickfall/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

func fireFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and input script must produce identical simulation state.
	run := func() *Game {
		g := newTestGame(12345)
		for i := 0; i < 400; i++ {
			in := emptyFrame()
			if i == 3 {
				in.Set(core.ActionFire)
			}
			if i%50 == 10 {
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}
		return g
	}

	g1 := run()
	g2 := run()

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: snapshot hashes differ (%d vs %d)", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ (%d vs %d)", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: ticks differ (%d vs %d)", snap1.Tick, snap2.Tick)
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(42)

	if g.state != StateAiming {
		t.Errorf("New game should start aiming, got %q", g.state)
	}
	if g.level != 1 {
		t.Errorf("New game should start at level 1, got %d", g.level)
	}
	if g.lives != g.cfg.Rules.Lives {
		t.Errorf("Lives = %d, expected %d", g.lives, g.cfg.Rules.Lives)
	}
	if g.aimX != g.field.Width/2 {
		t.Errorf("Launch origin should start centered, got %f", g.aimX)
	}

	bricks := g.grid.Bricks()
	if len(bricks) < 1 || len(bricks) > 4 {
		t.Errorf("Initial spawn should create 1-4 bricks, got %d", len(bricks))
	}
	for _, b := range bricks {
		if b.Row != 1 || b.HP != 1 {
			t.Errorf("Initial brick at row %d with HP %d, expected row 1 HP 1", b.Row, b.HP)
		}
	}
}

func TestGameShotCount(t *testing.T) {
	g := newTestGame(1)

	g.level = 1
	if g.shotCount() != 2 {
		t.Errorf("Level 1 shot count = %d, expected 2", g.shotCount())
	}
	g.level = 5
	if g.shotCount() != 10 {
		t.Errorf("Level 5 shot count = %d, expected 10", g.shotCount())
	}
}

func TestGameFireStartsVolley(t *testing.T) {
	g := newTestGame(7)

	g.Step(fireFrame())

	if g.state != StateFiring {
		t.Fatalf("Fire should transition to firing, got %q", g.state)
	}
	if len(g.balls) != 2 {
		t.Errorf("Level 1 volley should have 2 balls, got %d", len(g.balls))
	}

	// Staggered launch ticks
	if g.balls[1].LaunchTick-g.balls[0].LaunchTick != g.cfg.Physics.LaunchDelay {
		t.Errorf("Launch ticks should differ by %d, got %d and %d",
			g.cfg.Physics.LaunchDelay, g.balls[0].LaunchTick, g.balls[1].LaunchTick)
	}

	// A second fire while firing must be ignored
	before := len(g.balls)
	g.Step(fireFrame())
	if g.state != StateFiring || len(g.balls) != before {
		t.Error("Fire while already firing should be ignored")
	}

	snap := g.Snapshot()
	if !snap.Firing {
		t.Error("Snapshot should report firing")
	}
}

func TestGameRoundCompletes(t *testing.T) {
	g := newTestGame(9)

	// Empty the grid so the volley flies clean, then fire straight up.
	g.grid.Reset()
	g.aimAngle = math.Pi / 2
	g.Step(fireFrame())

	completed := false
	for i := 0; i < 1000; i++ {
		g.Step(emptyFrame())
		if g.state == StateAiming {
			completed = true
			break
		}
	}

	if !completed {
		t.Fatal("Round did not complete")
	}
	if g.level != 2 {
		t.Errorf("Round completion should advance to level 2, got %d", g.level)
	}
	if g.score != 0 {
		t.Errorf("No bricks were hit, score should stay 0, got %d", g.score)
	}
	// Straight-up volley returns where it started
	if math.Abs(g.aimX-g.field.Width/2) > 1e-6 {
		t.Errorf("Straight-up volley should return to origin, aimX = %f", g.aimX)
	}

	// Fresh row for the new level
	bricks := g.grid.Bricks()
	if len(bricks) < 1 || len(bricks) > 4 {
		t.Fatalf("Expected 1-4 bricks after round, got %d", len(bricks))
	}
	for _, b := range bricks {
		if b.Row != 1 || b.HP != 2 {
			t.Errorf("Post-round brick at row %d HP %d, expected row 1 HP 2", b.Row, b.HP)
		}
	}
}

func TestGameBrickHitScoresAndFades(t *testing.T) {
	g := newTestGame(11)
	g.grid.Reset()
	g.grid.bricks = append(g.grid.bricks, &Brick{Col: 2, Row: 4, HP: 1, MaxHP: 1})

	// Ball just below the brick, moving up into it.
	b := &Ball{X: 125, Y: 253, DX: 0, DY: -g.field.Speed, Active: true, Launched: true}
	g.resolveCollisions(b)

	if g.score != g.cfg.Rules.PointsPerHit {
		t.Errorf("Score = %d, expected %d", g.score, g.cfg.Rules.PointsPerHit)
	}
	if g.highScore != g.score {
		t.Errorf("High score should track score, got %d", g.highScore)
	}
	if len(g.grid.Bricks()) != 0 {
		t.Error("Destroyed brick should leave the live set in the same tick")
	}

	dying := g.grid.Dying()
	if len(dying) != 1 {
		t.Fatalf("Destroyed brick should enter the dying list, got %d", len(dying))
	}
	if dying[0].Timer != FadeTicks {
		t.Errorf("Dying timer = %d, expected %d", dying[0].Timer, FadeTicks)
	}

	if b.Cooldown != g.cfg.Rules.HitCooldown {
		t.Errorf("Ball cooldown = %d, expected %d", b.Cooldown, g.cfg.Rules.HitCooldown)
	}
	if b.DY <= 0 {
		t.Errorf("Hit from below should reflect DY downward, got %f", b.DY)
	}
}

func TestGameMultiHitBrickSurvives(t *testing.T) {
	g := newTestGame(13)
	g.grid.Reset()
	g.grid.bricks = append(g.grid.bricks, &Brick{Col: 2, Row: 4, HP: 3, MaxHP: 3})

	b := &Ball{X: 125, Y: 253, DX: 0, DY: -g.field.Speed, Active: true, Launched: true}
	g.resolveCollisions(b)

	if len(g.grid.Bricks()) != 1 {
		t.Fatal("Brick with remaining HP should survive the hit")
	}
	if g.grid.Bricks()[0].HP != 2 {
		t.Errorf("Brick HP = %d, expected 2", g.grid.Bricks()[0].HP)
	}
	if len(g.grid.Dying()) != 0 {
		t.Error("Surviving brick should not enter the dying list")
	}
}

func TestGameBottomBreachCostsLife(t *testing.T) {
	g := newTestGame(17)
	g.grid.Reset()
	g.grid.bricks = append(g.grid.bricks,
		&Brick{Col: 0, Row: 9, HP: 1, MaxHP: 1}, // breaching
		&Brick{Col: 1, Row: 7, HP: 1, MaxHP: 1}, // inside sweep range
		&Brick{Col: 2, Row: 3, HP: 1, MaxHP: 1}, // safe
	)

	g.Step(emptyFrame())

	if g.lives != g.cfg.Rules.Lives-1 {
		t.Errorf("Breach should cost one life, lives = %d", g.lives)
	}
	if g.livesFlash == 0 {
		t.Error("Breach should start the lives flash")
	}

	// The bottom sweep clears the breaching rows, keeping the safe brick.
	if len(g.grid.Bricks()) != 1 {
		t.Fatalf("Expected 1 brick after sweep, got %d", len(g.grid.Bricks()))
	}
	if g.grid.Bricks()[0].Row != 3 {
		t.Errorf("Surviving brick should be at row 3, got %d", g.grid.Bricks()[0].Row)
	}

	// Next tick: no breach, no further penalty.
	lives := g.lives
	g.Step(emptyFrame())
	if g.lives != lives {
		t.Error("No further life should be lost after the sweep")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(19)
	g.grid.Reset()
	g.lives = 1
	g.score = 70
	g.highScore = 70
	g.highestLevel = 4
	g.grid.bricks = append(g.grid.bricks, &Brick{Col: 0, Row: 9, HP: 1, MaxHP: 1})

	g.Step(emptyFrame())

	if g.state != StateGameOver {
		t.Fatalf("Losing the last life should end the game, state = %q", g.state)
	}
	if !g.State().GameOver {
		t.Error("State() should report game over")
	}

	// The simulation halts while game over.
	tick := g.tick
	g.Step(emptyFrame())
	if g.tick != tick {
		t.Error("Simulation should not advance while game over")
	}

	// Restart starts a fresh run but keeps session bests.
	in := emptyFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.state != StateAiming {
		t.Errorf("Restart should return to aiming, got %q", g.state)
	}
	if g.score != 0 || g.level != 1 || g.lives != g.cfg.Rules.Lives {
		t.Errorf("Restart should reset run state, got score=%d level=%d lives=%d", g.score, g.level, g.lives)
	}
	if g.highScore != 70 {
		t.Errorf("High score should survive restart, got %d", g.highScore)
	}
	if g.highestLevel != 4 {
		t.Errorf("Highest level should survive restart, got %d", g.highestLevel)
	}
}

func TestGameAimNudgeClamps(t *testing.T) {
	g := newTestGame(23)

	in := emptyFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}

	if g.aimX != g.field.Radius {
		t.Errorf("Launch origin should clamp at the left edge (%f), got %f", g.field.Radius, g.aimX)
	}

	in = emptyFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}

	if g.aimX != g.field.Width-g.field.Radius {
		t.Errorf("Launch origin should clamp at the right edge, got %f", g.aimX)
	}
}

func TestGameAimAt(t *testing.T) {
	g := newTestGame(29)
	g.aimX = 150

	// Target up and to the left: angle between 90 and 180 degrees.
	g.AimAt(50, 100)
	if g.aimAngle <= math.Pi/2 || g.aimAngle >= math.Pi {
		t.Errorf("Aim up-left should give angle in (pi/2, pi), got %f", g.aimAngle)
	}

	// Target up and to the right: angle between 0 and 90 degrees.
	g.AimAt(250, 100)
	if g.aimAngle <= 0 || g.aimAngle >= math.Pi/2 {
		t.Errorf("Aim up-right should give angle in (0, pi/2), got %f", g.aimAngle)
	}

	// Target below the floor is floored so the shot still points up.
	g.AimAt(250, 600)
	if g.aimAngle <= 0 || g.aimAngle >= math.Pi {
		t.Errorf("Aim below the floor should stay up-screen, got %f", g.aimAngle)
	}
}

func TestGameSnapshotViews(t *testing.T) {
	g := newTestGame(31)

	snap := g.Snapshot()
	if snap.Level != 1 || snap.Lives != g.cfg.Rules.Lives {
		t.Errorf("Snapshot level/lives = %d/%d, expected 1/%d", snap.Level, snap.Lives, g.cfg.Rules.Lives)
	}
	if len(snap.Bricks) != len(g.grid.Bricks()) {
		t.Errorf("Snapshot bricks = %d, expected %d", len(snap.Bricks), len(g.grid.Bricks()))
	}
	if len(snap.Balls) != 0 {
		t.Errorf("No balls launched yet, snapshot has %d", len(snap.Balls))
	}

	// Unlaunched volley stays out of the snapshot until launch ticks pass.
	g.Step(fireFrame())
	snap = g.Snapshot()
	if len(snap.Balls) == 0 {
		t.Error("First ball should be launched and visible after the fire tick")
	}
	if len(snap.Balls) >= len(g.balls) && g.cfg.Physics.LaunchDelay > 1 {
		t.Errorf("Staggered balls should not all be visible immediately, got %d of %d",
			len(snap.Balls), len(g.balls))
	}
}

func TestGameRestingBallsStayVisible(t *testing.T) {
	g := newTestGame(41)

	// Clean grid, straight-up volley: the first ball comes to rest on the
	// floor while the rest of the volley is still in flight.
	g.grid.Reset()
	g.aimAngle = math.Pi / 2
	g.Step(fireFrame())

	resting := false
	for i := 0; i < 1000 && g.state == StateFiring; i++ {
		g.Step(emptyFrame())
		if g.balls[0].Returned() {
			resting = true
			break
		}
	}
	if !resting || g.state != StateFiring {
		t.Fatal("First ball never came to rest mid-round")
	}

	snap := g.Snapshot()
	if len(snap.Balls) != len(g.balls) {
		t.Fatalf("Every launched ball should stay in the snapshot, got %d of %d",
			len(snap.Balls), len(g.balls))
	}
	floorY := g.field.Height - g.field.Radius
	atFloor := false
	for _, v := range snap.Balls {
		if math.Abs(v.Y-floorY) < 1e-6 {
			atFloor = true
		}
	}
	if !atFloor {
		t.Error("Resting ball should be reported at the floor")
	}
}

func TestGameRenderRestingBall(t *testing.T) {
	g := newTestGame(43)
	g.state = StateFiring
	g.balls = []*Ball{{X: 60, Y: g.field.Height - g.field.Radius, Launched: true, Active: false}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cx, cy := g.cellFromField(60, g.field.Height-g.field.Radius)
	if cell := screen.GetCell(cx, cy); cell.Rune != BallChar {
		t.Errorf("Resting ball cell = %q, expected %q", cell.Rune, BallChar)
	}
}

func TestGameLayoutFollowsScreen(t *testing.T) {
	g := newTestGame(47)

	big := core.NewScreen(100, 30)
	g.Render(big)
	if g.playW != 100 || g.playH != 28 {
		t.Errorf("Layout = %dx%d, expected 100x28", g.playW, g.playH)
	}

	// Shrinking below the minimum pauses the simulation.
	small := core.NewScreen(10, 5)
	g.Render(small)
	if !g.screenTooSmall {
		t.Fatal("Tiny screen should flag the layout as too small")
	}
	tick := g.tick
	g.Step(emptyFrame())
	if g.tick != tick {
		t.Error("Simulation should pause while the screen is too small")
	}

	// Growing back resumes play with the run intact.
	g.Render(big)
	if g.screenTooSmall {
		t.Fatal("Layout should recover after the screen grows")
	}
	g.Step(emptyFrame())
	if g.tick != tick+1 {
		t.Error("Simulation should resume after the screen grows")
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := newTestGame(37)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if out == "" {
		t.Fatal("Render produced empty output")
	}

	// HUD shows the score line.
	g.Step(fireFrame())
	g.Render(screen)

	// Game over overlay
	g.lives = 0
	g.state = StateGameOver
	g.Render(screen)
}
