package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Index    int // index of the body in the slice passed to Raycast
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest enabled body whose box the ray hits within maxDistance.
func Raycast(bodies []*Body, origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closestHit := RaycastHit{Index: -1, Distance: maxDistance}
	hit := false

	for i, b := range bodies {
		if !b.Enabled {
			continue
		}
		if hitInfo, ok := RaycastBox(origin, direction, b.Box, maxDistance); ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Index = i
			hit = true
		}
	}

	return closestHit, hit
}

// RaycastBox intersects a ray with a box using the slab method. direction must be unit length.
// A ray starting inside the box hits the face it leaves through.
func RaycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(direction, axis)
		lo := component(box.Min, axis)
		hi := component(box.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	normal := rl.Vector3{Z: 1}
	epsilon := float32(0.001)
	switch {
	case absf(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
