package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Resolve pushes two overlapping bodies apart and exchanges momentum along the contact normal.
//
// The push-out follows the axis of least penetration and is split by mass ratio,
// with SeparationSlop added so the pair no longer overlaps. If the bodies are
// approaching, an impulse j = -(1+e)·vn / (1/mA + 1/mB) is applied with
// e = s.Restitution; at e = 1 equal masses swap their normal velocities.
// It returns the unit contact normal (pointing from b towards a) and false if the
// boxes do not touch or either body cannot take part.
func Resolve(a, b *Body, s Settings) (rl.Vector3, bool) {
	if !a.Enabled || !b.Enabled || a.Mass <= 0 || b.Mass <= 0 {
		return rl.Vector3{}, false
	}

	normal, depth, ok := a.Box.Penetration(b.Box)
	if !ok {
		return rl.Vector3{}, false
	}
	pushOut := rl.Vector3Scale(normal, depth+s.SeparationSlop)

	// Split the push based on mass ratio
	totalMass := a.Mass + b.Mass
	ratioA := b.Mass / totalMass
	ratioB := a.Mass / totalMass

	deltaA := rl.Vector3Scale(pushOut, ratioA)
	deltaB := rl.Vector3Scale(pushOut, -ratioB)
	a.AddPosition(deltaA)
	b.AddPosition(deltaB)
	a.Box = a.Box.Translate(deltaA)
	b.Box = b.Box.Translate(deltaB)

	relVel := rl.Vector3Subtract(a.Velocity, b.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	// Only exchange momentum if the bodies are moving toward each other
	if velAlongNormal >= 0 {
		return normal, true
	}

	j := -(1 + s.Restitution) * velAlongNormal
	j /= 1/a.Mass + 1/b.Mass

	impulse := rl.Vector3Scale(normal, j)
	a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(impulse, 1/a.Mass))
	b.Velocity = rl.Vector3Subtract(b.Velocity, rl.Vector3Scale(impulse, 1/b.Mass))

	return normal, true
}
