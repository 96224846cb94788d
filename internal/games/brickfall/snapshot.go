package brickfall

import "math"

// BallView is a launched ball's position for the renderer.
type BallView struct {
	X, Y float64
}

// BrickView is a live brick record for the renderer.
type BrickView struct {
	Col, Row  int
	HP, MaxHP int
}

// DyingView is a fading removed brick: its last cell, last hit points, and
// the remaining fade fraction.
type DyingView struct {
	Col, Row  int
	HP, MaxHP int
	Fade      float64 // 1 just removed, 0 fully faded
}

// Snapshot is the per-tick view of the simulation, read by the renderer and
// by determinism tests. It contains no pointers into live state.
type Snapshot struct {
	Tick int

	Balls  []BallView  // launched balls only
	Bricks []BrickView // live bricks
	Dying  []DyingView // fading removed bricks

	Score        int
	HighScore    int
	Level        int
	HighestLevel int
	Lives        int
	LivesFlash   float64 // remaining flash fraction, 0 when inactive

	Firing   bool
	GameOver bool

	AimX     float64 // launch origin, field units
	AimAngle float64 // radians
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		HighScore:    g.highScore,
		Level:        g.level,
		HighestLevel: g.highestLevel,
		Lives:        g.lives,
		Firing:       g.state == StateFiring,
		GameOver:     g.state == StateGameOver,
		AimX:         g.aimX,
		AimAngle:     g.aimAngle,
	}

	if g.livesFlash > 0 {
		snap.LivesFlash = float64(g.livesFlash) / FadeTicks
	}

	// Launched balls only; those resting on the floor keep their view until
	// the round resets.
	for _, b := range g.balls {
		if b.Launched {
			snap.Balls = append(snap.Balls, BallView{X: b.X, Y: b.Y})
		}
	}

	for _, b := range g.grid.Bricks() {
		snap.Bricks = append(snap.Bricks, BrickView{
			Col: b.Col, Row: b.Row, HP: b.HP, MaxHP: b.MaxHP,
		})
	}

	for _, d := range g.grid.Dying() {
		snap.Dying = append(snap.Dying, DyingView{
			Col: d.Brick.Col, Row: d.Brick.Row,
			HP: d.Brick.HP, MaxHP: d.Brick.MaxHP,
			Fade: d.FadeRatio(),
		})
	}

	return snap
}

// Hash returns a mixing hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighestLevel) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Firing)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + math.Float64bits(snap.AimX)
	h = h*31 + math.Float64bits(snap.AimAngle)

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.Col) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Row) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.HP)  //#nosec G115 -- hash computation
	}

	for _, d := range snap.Dying {
		h = h*31 + uint64(d.Col) //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Row) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
