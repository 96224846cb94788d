package brickfall

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
)

// brickInset pads the collision rectangle inward on all sides so adjacent
// bricks leave a seam the ball cannot catch on.
const brickInset = 1.0

// RectF is an axis-aligned rectangle in field units.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// ContainsPoint reports whether (x, y) lies inside the rectangle.
func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// BrickRect returns the brick's inset collision rectangle in field units.
func BrickRect(b Brick, f Field) RectF {
	left := float64(b.Col)*f.CellSize + brickInset
	top := float64(b.Row)*f.CellSize + brickInset
	return RectF{
		Left:   left,
		Top:    top,
		Right:  left + f.CellSize - 2*brickInset,
		Bottom: top + f.CellSize - 2*brickInset,
	}
}

// Collides reports whether the ball's circle overlaps the rectangle.
// The closest point on the rectangle is found by per-axis clamping; the
// squared distance to it is compared against the squared radius.
func Collides(ball *Ball, r RectF, radius float64) bool {
	closestX := core.ClampF(ball.X, r.Left, r.Right)
	closestY := core.ClampF(ball.Y, r.Top, r.Bottom)
	dx := ball.X - closestX
	dy := ball.Y - closestY
	return dx*dx+dy*dy < radius*radius
}

// Resolve pushes the ball completely out of the rectangle and reflects its
// velocity about the contact normal. The reflected velocity is renormalized
// to the fixed field speed so reflections never change the speed magnitude.
func Resolve(ball *Ball, r RectF, f Field) {
	var nx, ny float64

	if r.ContainsPoint(ball.X, ball.Y) {
		// Center inside the rectangle: separate along the axis of
		// minimum penetration.
		leftPen := ball.X - r.Left
		rightPen := r.Right - ball.X
		topPen := ball.Y - r.Top
		bottomPen := r.Bottom - ball.Y

		minPen := math.Min(math.Min(leftPen, rightPen), math.Min(topPen, bottomPen))
		switch minPen {
		case leftPen:
			nx, ny = -1, 0
			ball.X = r.Left - f.Radius
		case rightPen:
			nx, ny = 1, 0
			ball.X = r.Right + f.Radius
		case topPen:
			nx, ny = 0, -1
			ball.Y = r.Top - f.Radius
		default:
			nx, ny = 0, 1
			ball.Y = r.Bottom + f.Radius
		}
	} else {
		closestX := core.ClampF(ball.X, r.Left, r.Right)
		closestY := core.ClampF(ball.Y, r.Top, r.Bottom)
		dx := ball.X - closestX
		dy := ball.Y - closestY
		d := math.Sqrt(dx*dx + dy*dy)

		if d == 0 {
			// Degenerate contact: fall back to the dominant velocity
			// axis so the reflection stays well-defined.
			if math.Abs(ball.DX) > math.Abs(ball.DY) {
				nx, ny = math.Copysign(1, ball.DX), 0
			} else {
				nx, ny = 0, math.Copysign(1, ball.DY)
			}
		} else {
			nx, ny = dx/d, dy/d
		}

		if d < f.Radius {
			correction := f.Radius - d
			ball.X += nx * correction
			ball.Y += ny * correction
		}
	}

	// Reflect: v' = v - 2(v·n)n
	dot := ball.DX*nx + ball.DY*ny
	ball.DX -= 2 * dot * nx
	ball.DY -= 2 * dot * ny

	// Renormalize to the fixed speed to prevent numerical drift.
	mag := math.Hypot(ball.DX, ball.DY)
	if mag == 0 {
		return
	}
	ball.DX = ball.DX / mag * f.Speed
	ball.DY = ball.DY / mag * f.Speed
}
