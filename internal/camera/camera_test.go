package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestNewLooksAtTarget(t *testing.T) {
	c := New(rl.Vector3{Z: -30}, rl.Vector3{})

	if !near(c.Forward(), rl.Vector3{Z: 1}) {
		t.Errorf("Expected forward +Z, got %v", c.Forward())
	}

	cam := c.GetRaylibCamera()
	if !near(cam.Target, rl.Vector3{Z: -29}) {
		t.Errorf("Expected target one unit ahead, got %v", cam.Target)
	}
}

func TestLookAtPitch(t *testing.T) {
	c := New(rl.Vector3{}, rl.Vector3{X: 1, Y: 1})

	want := rl.Vector3Normalize(rl.Vector3{X: 1, Y: 1})
	if !near(c.Forward(), want) {
		t.Errorf("Expected %v, got %v", want, c.Forward())
	}

	// Straight up is clamped
	c.LookAt(rl.Vector3{Y: 10})
	if c.Pitch != 89 {
		t.Errorf("Expected pitch clamped to 89, got %v", c.Pitch)
	}
}

func TestApplyMovement(t *testing.T) {
	tests := []struct {
		name string
		move Movement
		want rl.Vector3
	}{
		{"forward", Movement{Forward: true}, rl.Vector3{Z: 8}},
		{"back", Movement{Back: true}, rl.Vector3{Z: -8}},
		{"left", Movement{Left: true}, rl.Vector3{X: 8}},
		{"right", Movement{Right: true}, rl.Vector3{X: -8}},
		{"up", Movement{Up: true}, rl.Vector3{Y: 8}},
		{"boost down", Movement{Down: true, Boost: true}, rl.Vector3{Y: -24}},
		{"forward and back cancel", Movement{Forward: true, Back: true}, rl.Vector3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(rl.Vector3{}, rl.Vector3{Z: 1})
			c.Apply(tt.move, 1)
			if !near(c.Position, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, c.Position)
			}
		})
	}
}

func TestApplyDiagonalIsNormalized(t *testing.T) {
	c := New(rl.Vector3{}, rl.Vector3{Z: 1})
	c.Apply(Movement{Forward: true, Left: true}, 1)

	if d := rl.Vector3Length(c.Position); math.Abs(float64(d-8)) > 1e-4 {
		t.Errorf("Diagonal move should cover 8 units, got %v", d)
	}
}

func TestMouseLookAndReset(t *testing.T) {
	c := New(rl.Vector3{Z: -30}, rl.Vector3{})

	c.Apply(Movement{MouseDelta: rl.Vector2{X: 100, Y: -2000}, Forward: true}, 0.5)
	if c.Pitch != 89 {
		t.Errorf("Expected pitch clamped to 89, got %v", c.Pitch)
	}
	if c.Yaw != 100 {
		t.Errorf("Expected yaw 100, got %v", c.Yaw)
	}

	c.Reset()
	if c.Position != (rl.Vector3{Z: -30}) || c.Yaw != 90 || c.Pitch != 0 {
		t.Errorf("Reset failed: pos %v yaw %v pitch %v", c.Position, c.Yaw, c.Pitch)
	}
}
