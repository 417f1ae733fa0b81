package world

import (
	"fmt"
	"log"
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"cubular/internal/engine"
	"cubular/internal/physics"
)

// Projectile describes a body spawned from the camera.
type Projectile struct {
	Policy physics.MotionPolicy
	Scale  float32
	Mass   float32
	Speed  float32
	Color  rl.Color
}

var (
	// SmallCube is a light orbiting cube, fired with the left mouse button.
	SmallCube = Projectile{Policy: physics.Orbiting, Scale: 0.5, Mass: 1, Speed: 6, Color: rl.SkyBlue}
	// HeavyCube is a spinning attractor, fired with the right mouse button.
	HeavyCube = Projectile{Policy: physics.Ballistic, Scale: 1, Mass: 5, Speed: 12, Color: rl.Orange}
)

const pickDistance = 200

type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Camera  CameraDef

	ContactEntered engine.Event[physics.Contact]
	ContactExited  engine.Event[physics.Contact]

	ShowBoxes bool
	Visible   int           // bodies drawn last frame
	Targeted  engine.BodyID // outlined when drawn

	colors       []rl.Color // indexed by BodyID
	cubeVertices []float32
	spawned      int

	cubeMesh     rl.Mesh
	cubeMaterial rl.Material
	graphics     bool
}

func New(settings physics.Settings) *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		Physics:      physics.NewWorld(settings),
		cubeVertices: UnitCubeVertices(),
		Targeted:     engine.InvalidBodyID,
	}
	w.Physics.OnContactEnter = w.ContactEntered.Invoke
	w.Physics.OnContactExit = w.ContactExited.Invoke
	return w
}

// UnitCubeVertices returns the eight corners of a cube with side 1 centered on the origin.
func UnitCubeVertices() []float32 {
	return []float32{
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
	}
}

// InitGraphics creates the shared cube mesh and material. Requires an open window.
func (w *World) InitGraphics() {
	w.cubeMesh = rl.GenMeshCube(1, 1, 1)
	w.cubeMaterial = rl.LoadMaterialDefault()
	w.cubeVertices = meshVertices(w.cubeMesh)
	w.graphics = true
}

func meshVertices(mesh rl.Mesh) []float32 {
	if mesh.Vertices == nil || mesh.VertexCount == 0 {
		return nil
	}
	vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
	out := make([]float32, len(vertices))
	copy(out, vertices)
	return out
}

// Load replaces the scene's contents with the bodies from sf.
func (w *World) Load(sf *SceneFile) error {
	w.Scene.Clear()
	w.Physics.ClearContacts()
	w.colors = w.colors[:0]
	w.spawned = 0
	w.Targeted = engine.InvalidBodyID

	for _, def := range sf.Bodies {
		b, err := def.NewBody(w.cubeVertices)
		if err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
		w.add(b, lookupColor(def.Color))
	}
	w.Scene.MarkSeeded()
	w.Camera = sf.Camera

	log.Printf("Scene: loaded %d bodies", w.Scene.Len())
	return nil
}

func (w *World) add(b *physics.Body, color rl.Color) engine.BodyID {
	id := w.Scene.Spawn(b)
	w.colors = append(w.colors, color)
	return id
}

// Spawn fires a projectile from origin along direction.
func (w *World) Spawn(p Projectile, origin, direction rl.Vector3) engine.BodyID {
	w.spawned++

	scale := rl.Vector3{X: p.Scale, Y: p.Scale, Z: p.Scale}
	vertices := make([]float32, len(w.cubeVertices))
	for i, v := range w.cubeVertices {
		vertices[i] = v * p.Scale
	}

	b := physics.NewBody(fmt.Sprintf("Spawned_%d", w.spawned), origin, vertices)
	b.Policy = p.Policy
	b.SetMass(p.Mass)
	b.SetScale(scale)
	b.SetVelocity(rl.Vector3Scale(rl.Vector3Normalize(direction), p.Speed))
	b.Snapshot()

	return w.add(b, p.Color)
}

// Color returns the draw color of a body.
func (w *World) Color(id engine.BodyID) rl.Color {
	if id < 0 || int(id) >= len(w.colors) {
		return rl.White
	}
	return w.colors[id]
}

func (w *World) Update(deltaTime float32) {
	w.Physics.Step(w.Scene.Bodies(), deltaTime)
}

// Reset restores the loaded bodies and disables everything spawned since.
func (w *World) Reset() {
	w.Scene.Reset()
	w.Physics.ClearContacts()
}

// Pick returns the closest enabled body along the ray within pickDistance.
func (w *World) Pick(origin, direction rl.Vector3) (engine.BodyID, physics.RaycastHit, bool) {
	hit, ok := physics.Raycast(w.Scene.Bodies(), origin, direction, pickDistance)
	if !ok {
		return engine.InvalidBodyID, hit, false
	}
	return engine.BodyID(hit.Index), hit, true
}

// SceneFile captures the current state of the loaded bodies. Spawned bodies are skipped.
func (w *World) SceneFile() *SceneFile {
	sf := &SceneFile{Camera: w.Camera}
	for i, b := range w.Scene.Bodies() {
		if !w.Scene.IsSeeded(engine.BodyID(i)) {
			continue
		}

		x, y, z := quatToEulerXYZ(b.Orientation)
		sf.Bodies = append(sf.Bodies, BodyDef{
			Name:     b.Name,
			Position: array3(b.Position),
			Rotation: [3]float32{mgl32.RadToDeg(x), mgl32.RadToDeg(y), mgl32.RadToDeg(z)},
			Scale:    array3(b.Scale),
			Mass:     b.Mass,
			Velocity: array3(b.Velocity),
			Policy:   b.Policy.String(),
			Color:    lookupColorName(w.colors[i]),
		})
	}
	return sf
}

// Save writes the current state of the loaded bodies to path.
func (w *World) Save(path string) error {
	if err := w.SceneFile().Save(path); err != nil {
		return err
	}
	log.Printf("Scene: saved %d bodies to %s", w.Scene.Seeded(), path)
	return nil
}

// Draw renders every enabled body inside the camera's frustum.
func (w *World) Draw(camera rl.Camera3D) {
	w.Visible = 0
	if !w.graphics {
		return
	}

	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := ExtractFrustum(camera, aspect)

	for i, b := range w.Scene.Bodies() {
		if !b.Enabled || !frustum.ContainsBox(b.Box) {
			continue
		}
		w.Visible++

		color := w.colors[i]
		if albedo := w.cubeMaterial.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = color
		}
		rl.DrawMesh(w.cubeMesh, w.cubeMaterial, toRaylibMatrix(b.WorldMatrix))

		if engine.BodyID(i) == w.Targeted {
			rl.DrawBoundingBox(rl.BoundingBox{Min: b.Box.Min, Max: b.Box.Max}, rl.White)
		} else if w.ShowBoxes {
			rl.DrawBoundingBox(rl.BoundingBox{Min: b.Box.Min, Max: b.Box.Max}, rl.Yellow)
		}
	}
}

func (w *World) Unload() {
	if !w.graphics {
		return
	}
	rl.UnloadMesh(&w.cubeMesh)
	w.graphics = false
}

// toRaylibMatrix converts a column-major mgl32 matrix to raylib's layout.
// Both store columns contiguously, so element order is kept.
func toRaylibMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// quatToEulerXYZ inverts mgl32.AnglesToQuat(x, y, z, mgl32.XYZ).
func quatToEulerXYZ(q mgl32.Quat) (x, y, z float32) {
	m := q.Normalize().Mat4()
	// R = Rx * Ry * Rz, column-major: m[col*4+row]
	sy := max(-1, min(1, m[8]))
	y = float32(math.Asin(float64(sy)))
	if math.Abs(float64(sy)) < 0.9999 {
		x = float32(math.Atan2(float64(-m[9]), float64(m[10])))
		z = float32(math.Atan2(float64(-m[4]), float64(m[0])))
	} else {
		x = float32(math.Atan2(float64(m[6]), float64(m[5])))
	}
	return x, y, z
}
