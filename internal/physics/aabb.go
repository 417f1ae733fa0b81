package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// axisEpsilon is the shortest vector still usable as a projection axis.
const axisEpsilon = 1e-6

var worldAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: -1},
}

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// ComputeAABB builds a translation-only box around a mesh placed at position.
// vertices holds flat local-space x, y, z triplets; a trailing partial triplet is ignored.
// The box always contains position, so an empty mesh yields a point box.
func ComputeAABB(position rl.Vector3, vertices []float32) AABB {
	box := AABB{Min: position, Max: position}

	for i := 0; i+2 < len(vertices); i += 3 {
		v := rl.Vector3{
			X: position.X + vertices[i],
			Y: position.Y + vertices[i+1],
			Z: position.Z + vertices[i+2],
		}
		box.Min = vecMin(box.Min, v)
		box.Max = vecMax(box.Max, v)
	}

	return box
}

// Corners returns the eight corners of the box. The order is fixed; FaceNormals depends on it.
func Corners(box AABB) [8]rl.Vector3 {
	lo, hi := box.Min, box.Max
	return [8]rl.Vector3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},

		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
	}
}

// FaceNormals returns unit normals of three faces of the box, derived from cross
// products of corner edges. They point along +X, +Y and -Z.
// A flat box has zero-area faces; those normals fall back to the world axis the face would have had.
func FaceNormals(box AABB) [3]rl.Vector3 {
	p := Corners(box)

	normals := [3]rl.Vector3{
		rl.Vector3CrossProduct(rl.Vector3Subtract(p[1], p[0]), rl.Vector3Subtract(p[2], p[0])),
		rl.Vector3CrossProduct(rl.Vector3Subtract(p[5], p[4]), rl.Vector3Subtract(p[2], p[4])),
		rl.Vector3CrossProduct(rl.Vector3Subtract(p[1], p[0]), rl.Vector3Subtract(p[5], p[0])),
	}

	for i, n := range normals {
		length := rl.Vector3Length(n)
		if length < axisEpsilon {
			normals[i] = worldAxes[i]
			continue
		}
		normals[i] = rl.Vector3Scale(n, 1/length)
	}
	return normals
}

// ProjectOntoAxis returns the extent of the box's corners along axis.
func ProjectOntoAxis(box AABB, axis rl.Vector3) (min, max float32) {
	corners := Corners(box)

	min = rl.Vector3DotProduct(corners[0], axis)
	max = min
	for _, c := range corners[1:] {
		d := rl.Vector3DotProduct(c, axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(a.Max, a.Min), 0.5)
}

// Translate returns the box moved by delta.
func (a AABB) Translate(delta rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, delta), Max: rl.Vector3Add(a.Max, delta)}
}

// Union returns the smallest box enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: vecMin(a.Min, b.Min), Max: vecMax(a.Max, b.Max)}
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	normal, depth, ok := a.Penetration(b)
	if !ok {
		return rl.Vector3Zero()
	}
	return rl.Vector3Scale(normal, depth)
}

// Penetration returns the world axis of least penetration, signed to push 'a' out
// of 'b', and the depth along it. Touching boxes report depth 0 with a valid normal.
func (a AABB) Penetration(b AABB) (normal rl.Vector3, depth float32, ok bool) {
	if !a.Intersects(b) {
		return rl.Vector3{}, 0, false
	}

	// Penetration depth in each direction
	candidates := [6]struct {
		depth  float32
		normal rl.Vector3
	}{
		{b.Max.X - a.Min.X, rl.Vector3{X: 1}},  // push a in +X
		{a.Max.X - b.Min.X, rl.Vector3{X: -1}}, // push a in -X
		{b.Max.Y - a.Min.Y, rl.Vector3{Y: 1}},  // push a in +Y
		{a.Max.Y - b.Min.Y, rl.Vector3{Y: -1}}, // push a in -Y
		{b.Max.Z - a.Min.Z, rl.Vector3{Z: 1}},  // push a in +Z
		{a.Max.Z - b.Min.Z, rl.Vector3{Z: -1}}, // push a in -Z
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.depth < best.depth {
			best = c
		}
	}
	return best.normal, best.depth, true
}

// component returns the coordinate of v along world axis 0, 1 or 2.
func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func vecMin(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

func vecMax(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}
