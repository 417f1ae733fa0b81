package physics

// Settings holds the tunables for a physics World.
type Settings struct {
	// Gravity is the magnitude of the downward acceleration applied to FreeFalling bodies.
	Gravity float32

	// VelocityFloor is the minimum speed used when scaling attraction,
	// so resting bodies still get pulled.
	VelocityFloor float32

	// SpinRate is the self-rotation speed of Ballistic bodies in radians per second.
	SpinRate float32

	// Restitution scales the normal impulse: 1 swaps normal velocities of equal masses, 0 kills them.
	Restitution float32

	// SeparationSlop is added to the push-out distance so resolved pairs end up strictly apart.
	SeparationSlop float32

	// TreeDepth caps the partition tree's recursion.
	TreeDepth int

	// TreeLeafSize stops splitting once a subset has this many bodies or fewer.
	TreeLeafSize int

	// RootIndex picks the body used as the tree's root center (the "star").
	RootIndex int
}

// DefaultSettings returns the values the demo scene was tuned with.
func DefaultSettings() Settings {
	return Settings{
		Gravity:        4.6,
		VelocityFloor:  0.2,
		SpinRate:       0.6, // 0.01 rad per frame at 60 fps
		Restitution:    1.0,
		SeparationSlop: 0.001,
		TreeDepth:      6,
		TreeLeafSize:   2,
		RootIndex:      0,
	}
}
