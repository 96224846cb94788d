package brickfall

import (
	"math"
	"testing"
)

func TestBrickRectInset(t *testing.T) {
	f := testField()
	b := Brick{Col: 2, Row: 3, HP: 1, MaxHP: 1}

	r := BrickRect(b, f)

	if r.Left != 2*f.CellSize+brickInset {
		t.Errorf("Left = %f, expected %f", r.Left, 2*f.CellSize+brickInset)
	}
	if r.Top != 3*f.CellSize+brickInset {
		t.Errorf("Top = %f, expected %f", r.Top, 3*f.CellSize+brickInset)
	}
	if r.Right-r.Left != f.CellSize-2*brickInset {
		t.Errorf("Width = %f, expected %f", r.Right-r.Left, f.CellSize-2*brickInset)
	}
}

func TestCollides(t *testing.T) {
	f := testField()
	r := RectF{Left: 100, Top: 100, Right: 148, Bottom: 148}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center inside", 124, 124, true},
		{"touching left edge", 96, 124, true},
		{"just clear of left edge", 94.9, 124, false},
		{"far away", 10, 10, false},
		{"near corner within radius", 97, 97, true},
		{"near corner outside radius", 95, 95, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{X: tc.x, Y: tc.y}
			result := Collides(b, r, f.Radius)
			if result != tc.expected {
				t.Errorf("Collides at (%f, %f) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestResolveSideHit(t *testing.T) {
	f := testField()
	r := RectF{Left: 100, Top: 100, Right: 148, Bottom: 148}

	// Ball overlapping the left edge, moving right
	b := &Ball{X: 97, Y: 124, DX: f.Speed, DY: 0}
	Resolve(b, r, f)

	if b.DX >= 0 {
		t.Errorf("Left-side hit should reverse DX, got %f", b.DX)
	}
	if b.X > r.Left {
		t.Errorf("Ball should be pushed out of the rect, X = %f", b.X)
	}
	if Collides(b, r, f.Radius) {
		t.Error("Ball should no longer collide after Resolve")
	}
}

func TestResolveTopHit(t *testing.T) {
	f := testField()
	r := RectF{Left: 100, Top: 100, Right: 148, Bottom: 148}

	// Ball overlapping the top edge, moving down
	b := &Ball{X: 124, Y: 97, DX: 0, DY: f.Speed}
	Resolve(b, r, f)

	if b.DY >= 0 {
		t.Errorf("Top hit should reverse DY, got %f", b.DY)
	}
	if b.Y > r.Top {
		t.Errorf("Ball should be pushed above the rect, Y = %f", b.Y)
	}
}

func TestResolveCenterInside(t *testing.T) {
	f := testField()
	r := RectF{Left: 100, Top: 100, Right: 148, Bottom: 148}

	// Center inside the rect, nearest the left face
	b := &Ball{X: 103, Y: 124, DX: f.Speed, DY: 0}
	Resolve(b, r, f)

	if b.X >= r.Left {
		t.Errorf("Inside resolve should push out the min-penetration side, X = %f", b.X)
	}
	if b.DX >= 0 {
		t.Errorf("Inside resolve should reflect velocity, DX = %f", b.DX)
	}
	if Collides(b, r, f.Radius) {
		t.Error("Ball should no longer collide after inside resolve")
	}
}

func TestResolveEdgeContact(t *testing.T) {
	f := testField()
	r := RectF{Left: 100, Top: 100, Right: 148, Bottom: 148}

	// Center exactly on the left edge: zero penetration on that side, the
	// resolve still has to separate the ball and reflect.
	b := &Ball{X: 100, Y: 124, DX: f.Speed, DY: 1}
	Resolve(b, r, f)

	if b.DX >= 0 {
		t.Errorf("Edge contact should reflect DX, got %f", b.DX)
	}
	if math.Abs(b.SpeedMagnitude()-f.Speed) > 1e-9 {
		t.Errorf("Speed should be renormalized to %f, got %f", f.Speed, b.SpeedMagnitude())
	}
}

func TestResolvePreservesSpeed(t *testing.T) {
	f := testField()
	r := RectF{Left: 100, Top: 100, Right: 148, Bottom: 148}

	angles := []float64{0.3, 1.1, 2.0, 2.9, 4.2, 5.5}
	for _, angle := range angles {
		b := &Ball{
			X:  97,
			Y:  110,
			DX: f.Speed * math.Cos(angle),
			DY: f.Speed * math.Sin(angle),
		}
		Resolve(b, r, f)

		if math.Abs(b.SpeedMagnitude()-f.Speed) > 1e-9 {
			t.Errorf("Angle %f: speed after Resolve = %f, expected %f", angle, b.SpeedMagnitude(), f.Speed)
		}
	}
}
