package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AccumulateAttraction sets each enabled body's acceleration to the pull of every
// other enabled Ballistic body. Each pull points at the attractor and is scaled by
// the pulled body's own speed, floored at s.VelocityFloor.
//
// The pass is O(n²); fine for a demo scene, not for thousands of bodies.
func AccumulateAttraction(bodies []*Body, s Settings) {
	for i, b := range bodies {
		if !b.Enabled {
			continue
		}

		speed := max(b.Speed(), s.VelocityFloor)

		var acc rl.Vector3
		for j, other := range bodies {
			if i == j || !other.Enabled || other.Policy != Ballistic {
				continue
			}

			dir := rl.Vector3Subtract(other.Position, b.Position)
			dist := rl.Vector3Length(dir)
			if dist < axisEpsilon {
				continue
			}
			acc = rl.Vector3Add(acc, rl.Vector3Scale(dir, speed/dist))
		}
		b.Acceleration = acc
	}
}
