package brickfall

import "math"

// Field describes the playfield geometry in field units. Positions are
// float64; the grid is addressed in integer (column, row) cells of CellSize.
type Field struct {
	Width    float64 // playfield width
	Height   float64 // playfield height
	CellSize float64 // side length of one grid cell
	Cols     int     // number of brick columns
	Rows     int     // number of grid rows, floor is the last row
	Radius   float64 // ball radius
	Speed    float64 // fixed ball speed magnitude
}

// Ball is a kinematic point mass with a fixed speed magnitude. Screen y grows
// downward, so launching "up" means a negative DY.
type Ball struct {
	X, Y   float64
	DX, DY float64

	Active     bool // false once the ball reached the floor
	Launched   bool // true once the launch tick has been reached
	LaunchTick int  // absolute tick at which the ball becomes eligible to move

	// Cooldown counts down after a brick hit. It does not gate collision
	// checks; it is carried in snapshots so a later balance pass can
	// enforce it without a state migration.
	Cooldown int
}

// NewBall creates an active, not-yet-launched ball at (x, y) moving at the
// field speed along the given aim angle (measured from the positive x axis,
// positive angles pointing up the screen).
func NewBall(x, y, angle float64, f Field) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		DX:     f.Speed * math.Cos(angle),
		DY:     -f.Speed * math.Sin(angle),
		Active: true,
	}
}

// Update advances the ball one tick: move by velocity, reflect off the side
// and top boundaries with position clamping, deactivate at the floor.
func (b *Ball) Update(f Field) {
	if b.Cooldown > 0 {
		b.Cooldown--
	}

	b.X += b.DX
	b.Y += b.DY

	// Side walls
	if b.X-f.Radius <= 0 {
		b.X = f.Radius
		b.DX = -b.DX
	} else if b.X+f.Radius >= f.Width {
		b.X = f.Width - f.Radius
		b.DX = -b.DX
	}

	// Top wall
	if b.Y-f.Radius <= 0 {
		b.Y = f.Radius
		b.DY = -b.DY
	}

	// Floor: the ball stops here and waits for the round to finish.
	if b.Y+f.Radius >= f.Height {
		b.Active = false
		b.Y = f.Height - f.Radius
	}
}

// Returned reports whether the ball has completed its flight:
// launched and no longer active.
func (b *Ball) Returned() bool {
	return b.Launched && !b.Active
}

// SpeedMagnitude returns the current velocity magnitude.
func (b *Ball) SpeedMagnitude() float64 {
	return math.Hypot(b.DX, b.DY)
}
