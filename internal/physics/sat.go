package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Overlap tests two boxes with the Separating Axis Theorem.
// Candidate axes are the face normals of both boxes. For axis-aligned boxes these
// collapse to three directions, but all six are gathered so the test stays correct
// if the boxes ever gain orientation.
func Overlap(a, b AABB) bool {
	for _, axis := range separatingAxes(a, b) {
		minA, maxA := ProjectOntoAxis(a, axis)
		minB, maxB := ProjectOntoAxis(b, axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

// BodiesOverlap runs Overlap on the boxes stored on both bodies.
func BodiesOverlap(a, b *Body) bool {
	return Overlap(a.Box, b.Box)
}

// separatingAxes returns the unit face normals of a and b with zero-length and
// parallel duplicates removed.
func separatingAxes(a, b AABB) []rl.Vector3 {
	na, nb := FaceNormals(a), FaceNormals(b)
	candidates := append(na[:], nb[:]...)

	axes := make([]rl.Vector3, 0, len(candidates))
	for _, c := range candidates {
		length := rl.Vector3Length(c)
		if length < axisEpsilon {
			continue
		}
		c = rl.Vector3Scale(c, 1/length)
		if containsDirection(axes, c) {
			continue
		}
		axes = append(axes, c)
	}
	return axes
}

// containsDirection reports whether axes already holds axis or its opposite.
func containsDirection(axes []rl.Vector3, axis rl.Vector3) bool {
	for _, existing := range axes {
		if absf(rl.Vector3DotProduct(existing, axis)) > 1-axisEpsilon {
			return true
		}
	}
	return false
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
