package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FlyCamera is a free-flying first-person camera. It has no gravity or collision.
type FlyCamera struct {
	Position   rl.Vector3
	Yaw        float32 // degrees, 90 looks along +Z
	Pitch      float32 // degrees
	MoveSpeed  float32
	BoostSpeed float32
	LookSpeed  float32
	Fovy       float32

	startPosition rl.Vector3
	startYaw      float32
	startPitch    float32
}

// Movement is one frame of camera input.
type Movement struct {
	Forward, Back, Left, Right, Up, Down bool
	Boost                                bool
	MouseDelta                           rl.Vector2
}

// New creates a camera at pos looking toward target. Reset returns it there.
func New(pos, target rl.Vector3) *FlyCamera {
	c := &FlyCamera{
		Position:   pos,
		MoveSpeed:  8.0, // Units per second
		BoostSpeed: 24.0,
		LookSpeed:  0.1,
		Fovy:       45,
	}
	c.LookAt(target)
	c.startPosition = c.Position
	c.startYaw = c.Yaw
	c.startPitch = c.Pitch
	return c
}

// LookAt points the camera at target. A target equal to the position is ignored.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	dir := rl.Vector3Subtract(target, c.Position)
	length := rl.Vector3Length(dir)
	if length == 0 {
		return
	}
	dir = rl.Vector3Scale(dir, 1/length)
	c.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X)) * 180 / math.Pi)
	c.Pitch = float32(math.Asin(float64(dir.Y)) * 180 / math.Pi)
	c.clampPitch()
}

// Reset moves the camera back to where it was created.
func (c *FlyCamera) Reset() {
	c.Position = c.startPosition
	c.Yaw = c.startYaw
	c.Pitch = c.startPitch
}

// Update polls keyboard and mouse and moves the camera.
func (c *FlyCamera) Update(deltaTime float32) {
	c.Apply(Movement{
		Forward:    rl.IsKeyDown(rl.KeyW),
		Back:       rl.IsKeyDown(rl.KeyS),
		Left:       rl.IsKeyDown(rl.KeyA),
		Right:      rl.IsKeyDown(rl.KeyD),
		Up:         rl.IsKeyDown(rl.KeySpace),
		Down:       rl.IsKeyDown(rl.KeyLeftControl),
		Boost:      rl.IsKeyDown(rl.KeyLeftShift),
		MouseDelta: rl.GetMouseDelta(),
	}, deltaTime)
}

// Apply moves the camera by one frame of input.
func (c *FlyCamera) Apply(m Movement, deltaTime float32) {
	// Mouse look
	c.Yaw += m.MouseDelta.X * c.LookSpeed
	c.Pitch -= m.MouseDelta.Y * c.LookSpeed
	c.clampPitch()

	forward := c.Forward()
	left := c.left()

	var moveDir rl.Vector3
	if m.Forward {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if m.Back {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if m.Left {
		moveDir = rl.Vector3Add(moveDir, left)
	}
	if m.Right {
		moveDir = rl.Vector3Subtract(moveDir, left)
	}
	if m.Up {
		moveDir.Y++
	}
	if m.Down {
		moveDir.Y--
	}

	// Normalize diagonal movement so you don't go faster diagonally
	if rl.Vector3Length(moveDir) == 0 {
		return
	}
	moveDir = rl.Vector3Normalize(moveDir)

	speed := c.MoveSpeed
	if m.Boost {
		speed = c.BoostSpeed
	}
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(moveDir, speed*deltaTime))
}

func (c *FlyCamera) clampPitch() {
	c.Pitch = max(-89, min(89, c.Pitch))
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// left is the horizontal direction to the camera's left (Y up, right-handed).
func (c *FlyCamera) left() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
