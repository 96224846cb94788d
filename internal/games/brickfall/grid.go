package brickfall

import "math/rand"

// FadeTicks is how long a removed brick lingers in the dying list for the
// fade-out animation. Visual only, no gameplay effect.
const FadeTicks = 30

// Brick is a damageable grid cell. Row grows downward and is unbounded; the
// grid sweeps bricks before they can pass the floor.
type Brick struct {
	Col   int
	Row   int
	HP    int
	MaxHP int // HP at spawn, used for color interpolation only
}

// DyingBrick is a removed brick retained transiently for fade-out.
type DyingBrick struct {
	Brick Brick
	Timer int // ticks remaining, starts at FadeTicks
}

// FadeRatio returns the remaining fade fraction in [0, 1].
func (d DyingBrick) FadeRatio() float64 {
	if d.Timer <= 0 {
		return 0
	}
	return float64(d.Timer) / FadeTicks
}

// Grid owns the live brick set and the dying-brick animation list.
// Occupancy is sparse: bricks live in a flat slice, not a fixed array.
type Grid struct {
	cols int
	rows int

	bricks []*Brick
	dying  []DyingBrick
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:   cols,
		rows:   rows,
		bricks: make([]*Brick, 0, 32),
	}
}

// Cols returns the number of brick columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Bricks returns the live brick set. Callers must not mutate it.
func (g *Grid) Bricks() []*Brick { return g.bricks }

// Dying returns the fading removed bricks. Callers must not mutate it.
func (g *Grid) Dying() []DyingBrick { return g.dying }

// SpawnRow creates between 1 and 4 bricks in distinct random columns at
// row 1, each with hit points equal to the given level.
func (g *Grid) SpawnRow(rng *rand.Rand, level int) {
	count := 1 + rng.Intn(4)
	if count > g.cols {
		count = g.cols
	}
	for _, col := range rng.Perm(g.cols)[:count] {
		g.bricks = append(g.bricks, &Brick{
			Col:   col,
			Row:   1,
			HP:    level,
			MaxHP: level,
		})
	}
}

// Descend moves every live brick down one row. Called once per round,
// before the new row is spawned.
func (g *Grid) Descend() {
	for _, b := range g.bricks {
		b.Row++
	}
}

// RemoveAt moves the brick at index i into the dying list.
func (g *Grid) RemoveAt(i int) {
	g.dying = append(g.dying, DyingBrick{Brick: *g.bricks[i], Timer: FadeTicks})
	g.bricks = append(g.bricks[:i], g.bricks[i+1:]...)
}

// SweepBottomRows removes all bricks occupying the bottom n rows, moving
// each into the dying list. Does not affect score.
func (g *Grid) SweepBottomRows(n int) {
	threshold := g.rows - n
	kept := g.bricks[:0]
	for _, b := range g.bricks {
		if b.Row >= threshold {
			g.dying = append(g.dying, DyingBrick{Brick: *b, Timer: FadeTicks})
			continue
		}
		kept = append(kept, b)
	}
	g.bricks = kept
}

// BottomBreached reports whether any live brick has reached the row
// adjacent to the floor.
func (g *Grid) BottomBreached() bool {
	for _, b := range g.bricks {
		if b.Row >= g.rows-1 {
			return true
		}
	}
	return false
}

// TickFade advances the dying-brick timers and purges expired entries.
func (g *Grid) TickFade() {
	kept := g.dying[:0]
	for i := range g.dying {
		g.dying[i].Timer--
		if g.dying[i].Timer > 0 {
			kept = append(kept, g.dying[i])
		}
	}
	g.dying = kept
}

// Reset clears all live and dying bricks.
func (g *Grid) Reset() {
	g.bricks = g.bricks[:0]
	g.dying = g.dying[:0]
}
