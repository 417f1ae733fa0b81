package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/physics"
)

func testCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := ExtractFrustum(testCamera(), 16.0/9.0)

	tests := []struct {
		name  string
		point rl.Vector3
		want  bool
	}{
		{"ahead", rl.Vector3{Z: 10}, true},
		{"behind", rl.Vector3{Z: -10}, false},
		{"far left", rl.Vector3{X: 50, Z: 10}, false},
		{"far below", rl.Vector3{Y: -50, Z: 10}, false},
		{"beyond far plane", rl.Vector3{Z: 2000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestFrustumContainsBox(t *testing.T) {
	f := ExtractFrustum(testCamera(), 1)

	tests := []struct {
		name string
		box  physics.AABB
		want bool
	}{
		{"inside", physics.NewAABBFromCenter(rl.Vector3{Z: 10}, rl.Vector3{X: 1, Y: 1, Z: 1}), true},
		{"behind", physics.NewAABBFromCenter(rl.Vector3{Z: -10}, rl.Vector3{X: 1, Y: 1, Z: 1}), false},
		{"off to the side", physics.NewAABBFromCenter(rl.Vector3{X: 40, Z: 10}, rl.Vector3{X: 1, Y: 1, Z: 1}), false},
		// Center outside, but the box reaches into view
		{"straddling the edge", physics.NewAABBFromCenter(rl.Vector3{X: 8, Z: 10}, rl.Vector3{X: 10, Y: 1, Z: 1}), true},
		{"around the camera", physics.NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 4, Y: 4, Z: 4}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsBox(tt.box); got != tt.want {
				t.Errorf("ContainsBox(%+v) = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}
