package brickfall

import (
	"math"
	"testing"
)

func testField() Field {
	return Field{
		Width:    300,
		Height:   500,
		CellSize: 50,
		Cols:     6,
		Rows:     10,
		Radius:   5,
		Speed:    12,
	}
}

func TestNewBallVelocity(t *testing.T) {
	f := testField()

	// Straight up: DX ~ 0, DY = -Speed
	b := NewBall(150, 495, math.Pi/2, f)
	if math.Abs(b.DX) > 1e-9 {
		t.Errorf("Straight-up launch should have DX ~ 0, got %f", b.DX)
	}
	if math.Abs(b.DY+f.Speed) > 1e-9 {
		t.Errorf("Straight-up launch should have DY = -%f, got %f", f.Speed, b.DY)
	}

	// 45 degrees: speed magnitude preserved, DY negative (up-screen)
	b = NewBall(150, 495, math.Pi/4, f)
	if math.Abs(b.SpeedMagnitude()-f.Speed) > 1e-9 {
		t.Errorf("Launch speed should be %f, got %f", f.Speed, b.SpeedMagnitude())
	}
	if b.DY >= 0 {
		t.Errorf("Up-screen launch should have negative DY, got %f", b.DY)
	}

	if !b.Active || b.Launched {
		t.Error("New ball should be active and not yet launched")
	}
}

func TestBallSideWallBounce(t *testing.T) {
	f := testField()

	// Heading left into the left wall
	b := &Ball{X: 10, Y: 250, DX: -12, DY: 0, Active: true, Launched: true}
	b.Update(f)

	if b.DX <= 0 {
		t.Errorf("Left wall bounce should flip DX positive, got %f", b.DX)
	}
	if b.X != f.Radius {
		t.Errorf("Left wall bounce should clamp X to radius %f, got %f", f.Radius, b.X)
	}

	// Heading right into the right wall
	b = &Ball{X: f.Width - 10, Y: 250, DX: 12, DY: 0, Active: true, Launched: true}
	b.Update(f)

	if b.DX >= 0 {
		t.Errorf("Right wall bounce should flip DX negative, got %f", b.DX)
	}
	if b.X != f.Width-f.Radius {
		t.Errorf("Right wall bounce should clamp X, got %f", b.X)
	}
}

func TestBallTopWallBounce(t *testing.T) {
	f := testField()

	b := &Ball{X: 150, Y: 10, DX: 0, DY: -12, Active: true, Launched: true}
	b.Update(f)

	if b.DY <= 0 {
		t.Errorf("Top wall bounce should flip DY positive, got %f", b.DY)
	}
	if b.Y != f.Radius {
		t.Errorf("Top wall bounce should clamp Y to radius %f, got %f", f.Radius, b.Y)
	}
}

func TestBallFloorDeactivates(t *testing.T) {
	f := testField()

	b := &Ball{X: 150, Y: f.Height - 10, DX: 0, DY: 12, Active: true, Launched: true}
	b.Update(f)

	if b.Active {
		t.Error("Ball reaching the floor should deactivate")
	}
	if b.Y != f.Height-f.Radius {
		t.Errorf("Floor should clamp Y to %f, got %f", f.Height-f.Radius, b.Y)
	}
	if !b.Returned() {
		t.Error("Launched inactive ball should report Returned")
	}
}

func TestBallSpeedInvariantAcrossBounces(t *testing.T) {
	f := testField()

	// Diagonal flight that hits walls several times
	b := NewBall(150, 495, math.Pi/3, f)
	b.Launched = true

	for i := 0; i < 200 && b.Active; i++ {
		b.Update(f)
		if math.Abs(b.SpeedMagnitude()-f.Speed) > 1e-9 {
			t.Fatalf("Speed changed after tick %d: %f", i, b.SpeedMagnitude())
		}
	}
}

func TestBallCooldownDecrements(t *testing.T) {
	f := testField()

	b := &Ball{X: 150, Y: 250, DX: 12, DY: 0, Active: true, Launched: true, Cooldown: 3}
	b.Update(f)
	if b.Cooldown != 2 {
		t.Errorf("Cooldown should decrement to 2, got %d", b.Cooldown)
	}

	b.Cooldown = 0
	b.Update(f)
	if b.Cooldown != 0 {
		t.Errorf("Cooldown should not go below 0, got %d", b.Cooldown)
	}
}
