package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/physics"
)

const (
	frustumNear float32 = 0.1
	frustumFar  float32 = 1000.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection matrix
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}

	// Combine view and projection: VP = P * V
	vp := rl.MatrixMultiply(view, proj)

	// Row 4 plus or minus rows 1..3
	row4 := Plane{normal: rl.Vector3{X: vp.M3, Y: vp.M7, Z: vp.M11}, distance: vp.M15}
	rows := [3]Plane{
		{normal: rl.Vector3{X: vp.M0, Y: vp.M4, Z: vp.M8}, distance: vp.M12},
		{normal: rl.Vector3{X: vp.M1, Y: vp.M5, Z: vp.M9}, distance: vp.M13},
		{normal: rl.Vector3{X: vp.M2, Y: vp.M6, Z: vp.M10}, distance: vp.M14},
	}

	var f Frustum
	for i, row := range rows {
		f.planes[2*i] = normalizePlane(Plane{
			normal:   rl.Vector3Add(row4.normal, row.normal),
			distance: row4.distance + row.distance,
		})
		f.planes[2*i+1] = normalizePlane(Plane{
			normal:   rl.Vector3Subtract(row4.normal, row.normal),
			distance: row4.distance - row.distance,
		})
	}
	return f
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsBox tests if a box is inside or intersects the frustum.
// For each plane only the box corner furthest along the normal is checked.
func (f *Frustum) ContainsBox(box physics.AABB) bool {
	for _, p := range f.planes {
		corner := box.Min
		if p.normal.X >= 0 {
			corner.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(p.normal, corner)+p.distance < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, point)+p.distance < 0 {
			return false
		}
	}
	return true
}
