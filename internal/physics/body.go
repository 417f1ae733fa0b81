package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// MotionPolicy selects how a body moves and whether it pulls on others.
type MotionPolicy int

const (
	// Orbiting bodies are pulled by Ballistic bodies but pull nothing and never spin.
	Orbiting MotionPolicy = iota
	// Ballistic bodies are pulled, pull every other body, and spin about +Y.
	Ballistic
	// FreeFalling bodies ignore attraction and accelerate straight down.
	FreeFalling
)

func (p MotionPolicy) String() string {
	switch p {
	case Orbiting:
		return "orbiting"
	case Ballistic:
		return "ballistic"
	case FreeFalling:
		return "freefalling"
	default:
		return "unknown"
	}
}

// ParseMotionPolicy maps a scene file name to a policy. Unknown names report false.
func ParseMotionPolicy(name string) (MotionPolicy, bool) {
	switch name {
	case "", "orbiting":
		return Orbiting, true
	case "ballistic":
		return Ballistic, true
	case "freefalling":
		return FreeFalling, true
	default:
		return Orbiting, false
	}
}

type Body struct {
	Name         string
	Position     rl.Vector3
	Velocity     rl.Vector3
	Acceleration rl.Vector3
	Orientation  mgl32.Quat
	Scale        rl.Vector3
	Mass         float32
	Enabled      bool
	Policy       MotionPolicy

	// Vertices are flat local-space x, y, z triplets of the body's mesh.
	Vertices []float32
	Box      AABB

	StartPosition    rl.Vector3
	StartVelocity    rl.Vector3
	StartOrientation mgl32.Quat

	// WorldMatrix is translation * orientation * scale, rebuilt by Integrate.
	WorldMatrix mgl32.Mat4

	spin        float32
	fallingFrom MotionPolicy
}

// NewBody creates an enabled Orbiting body of mass 1 whose start state is its current state.
func NewBody(name string, position rl.Vector3, vertices []float32) *Body {
	b := &Body{
		Name:        name,
		Position:    position,
		Orientation: mgl32.QuatIdent(),
		Scale:       rl.Vector3{X: 1, Y: 1, Z: 1},
		Mass:        1.0,
		Enabled:     true,
		Policy:      Orbiting,
		Vertices:    vertices,
	}
	b.Snapshot()
	b.UpdateBox()
	b.rebuildWorldMatrix()
	return b
}

// Orbital reports whether the body emits no attraction and does not spin.
func (b *Body) Orbital() bool {
	return b.Policy != Ballistic
}

func (b *Body) UsesGravity() bool {
	return b.Policy == FreeFalling
}

// Snapshot records the current position, velocity and orientation as the reset state.
func (b *Body) Snapshot() {
	b.StartPosition = b.Position
	b.StartVelocity = b.Velocity
	b.StartOrientation = b.Orientation
}

// UpdateBox recomputes the bounding box from the current position.
func (b *Body) UpdateBox() {
	b.Box = ComputeAABB(b.Position, b.Vertices)
}

// Integrate advances the body by dt with semi-implicit Euler: velocity first, then position.
// FreeFalling bodies have their acceleration replaced by gravity before integrating.
func (b *Body) Integrate(dt float32, s Settings) {
	if !b.Enabled {
		return
	}

	if b.Policy == FreeFalling {
		b.Acceleration = rl.Vector3{X: 0, Y: -s.Gravity, Z: 0}
	}

	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(b.Acceleration, dt))
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))

	if b.Policy == Ballistic {
		b.spin += s.SpinRate * dt
		b.Orientation = mgl32.QuatRotate(b.spin, mgl32.Vec3{0, 1, 0}).Mul(b.StartOrientation).Normalize()
	}

	b.rebuildWorldMatrix()
}

// Reset restores the start state and re-enables the body.
// Acceleration is left alone; the next frame's force pass overwrites it.
func (b *Body) Reset() {
	b.Position = b.StartPosition
	b.Velocity = b.StartVelocity
	b.Orientation = b.StartOrientation
	b.spin = 0
	b.Enabled = true
	b.UpdateBox()
	b.rebuildWorldMatrix()
}

func (b *Body) AddPosition(delta rl.Vector3) {
	b.Position = rl.Vector3Add(b.Position, delta)
}

func (b *Body) AddVelocity(v rl.Vector3) {
	b.Velocity = rl.Vector3Add(b.Velocity, v)
}

func (b *Body) SetVelocity(v rl.Vector3) {
	b.Velocity = v
}

func (b *Body) AddAcceleration(a rl.Vector3) {
	b.Acceleration = rl.Vector3Add(b.Acceleration, a)
}

func (b *Body) SetAcceleration(a rl.Vector3) {
	b.Acceleration = a
}

// SetMass ignores non-positive values so the collision response never divides by zero.
func (b *Body) SetMass(mass float32) {
	if mass <= 0 {
		return
	}
	b.Mass = mass
}

func (b *Body) SetScale(scale rl.Vector3) {
	b.Scale = scale
	b.rebuildWorldMatrix()
}

func (b *Body) AddScale(delta rl.Vector3) {
	b.SetScale(rl.Vector3Add(b.Scale, delta))
}

// ToggleGravity switches the body into FreeFalling, or back to the policy it had before.
func (b *Body) ToggleGravity() {
	if b.Policy == FreeFalling {
		b.Policy = b.fallingFrom
		return
	}
	b.fallingFrom = b.Policy
	b.Policy = FreeFalling
}

func (b *Body) rebuildWorldMatrix() {
	t := mgl32.Translate3D(b.Position.X, b.Position.Y, b.Position.Z)
	s := mgl32.Scale3D(b.Scale.X, b.Scale.Y, b.Scale.Z)
	b.WorldMatrix = t.Mul4(b.Orientation.Mat4()).Mul4(s)
}

// Speed returns the length of the body's velocity.
func (b *Body) Speed() float32 {
	return rl.Vector3Length(b.Velocity)
}
