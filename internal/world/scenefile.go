package world

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"cubular/internal/physics"
)

// --- JSON types ---

type SceneFile struct {
	Camera CameraDef `json:"camera"`
	Bodies []BodyDef `json:"bodies"`
}

type CameraDef struct {
	Position [3]float32 `json:"position"`
	Target   [3]float32 `json:"target"`
}

type BodyDef struct {
	Name     string     `json:"name"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"` // Euler angles in degrees
	Scale    [3]float32 `json:"scale,omitempty"`
	Mass     float32    `json:"mass,omitempty"`
	Velocity [3]float32 `json:"velocity,omitempty"`
	Policy   string     `json:"policy,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"Gold":      rl.Gold,
	"Maroon":    rl.Maroon,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func array3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadSceneFile reads and validates a scene file.
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sf, nil
}

func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i, def := range sf.Bodies {
		if _, ok := physics.ParseMotionPolicy(def.Policy); !ok {
			return nil, fmt.Errorf("body %d (%s): unknown policy %q", i, def.Name, def.Policy)
		}
		if def.Mass < 0 {
			return nil, fmt.Errorf("body %d (%s): negative mass %v", i, def.Name, def.Mass)
		}
	}
	return &sf, nil
}

// Save writes the scene file as indented JSON.
func (sf *SceneFile) Save(path string) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

// BodyScale returns the definition's scale, defaulting to 1 when unset.
func (d BodyDef) BodyScale() rl.Vector3 {
	if d.Scale == [3]float32{} {
		return rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return vec3(d.Scale)
}

// NewBody builds a body from the definition. meshVertices are the unscaled
// local-space vertices of the mesh; the body keeps a scaled copy so its box
// matches what is drawn.
func (d BodyDef) NewBody(meshVertices []float32) (*physics.Body, error) {
	policy, ok := physics.ParseMotionPolicy(d.Policy)
	if !ok {
		return nil, fmt.Errorf("body %s: unknown policy %q", d.Name, d.Policy)
	}

	scale := d.BodyScale()
	vertices := make([]float32, len(meshVertices))
	for i, v := range meshVertices {
		switch i % 3 {
		case 0:
			vertices[i] = v * scale.X
		case 1:
			vertices[i] = v * scale.Y
		default:
			vertices[i] = v * scale.Z
		}
	}

	b := physics.NewBody(d.Name, vec3(d.Position), vertices)
	b.Policy = policy
	b.SetVelocity(vec3(d.Velocity))
	if d.Mass > 0 {
		b.SetMass(d.Mass)
	}
	b.Orientation = mgl32.AnglesToQuat(
		mgl32.DegToRad(d.Rotation[0]),
		mgl32.DegToRad(d.Rotation[1]),
		mgl32.DegToRad(d.Rotation[2]),
		mgl32.XYZ,
	)
	b.SetScale(scale)
	b.Snapshot()
	b.UpdateBox()
	return b, nil
}

// DefaultScene is the built-in demo: a spinning star with nine cubes around it.
func DefaultScene() *SceneFile {
	half := [3]float32{0.5, 0.5, 0.5}
	return &SceneFile{
		Camera: CameraDef{
			Position: [3]float32{0, 0, -30},
			Target:   [3]float32{0, 0, 0},
		},
		Bodies: []BodyDef{
			{Name: "Star", Position: [3]float32{0.1, 0.1, 0.1}, Mass: 10, Policy: "ballistic", Color: "Gold"},
			{Name: "Cube_1", Position: [3]float32{8, 0, 0}, Scale: half, Velocity: [3]float32{0, 1, 4}, Color: "Red"},
			{Name: "Cube_2", Position: [3]float32{2, 0, 0}, Scale: half, Velocity: [3]float32{0, 0, 2}, Color: "Blue"},
			{Name: "Cube_3", Position: [3]float32{16, 0, 0}, Scale: half, Velocity: [3]float32{0, 0, 8}, Color: "Green"},
			{Name: "Cube_4", Position: [3]float32{12, 1, 0}, Scale: half, Velocity: [3]float32{0, 0, 6}, Color: "Purple"},
			{Name: "Cube_5", Position: [3]float32{20, -2, 0}, Scale: half, Velocity: [3]float32{0, 0, 10}, Color: "Orange"},
			{Name: "Cube_6", Position: [3]float32{0, -5, -6}, Scale: half, Velocity: [3]float32{0, 0, 5}, Color: "Pink"},
			{Name: "Cube_7", Position: [3]float32{-6, -9, 8}, Scale: half, Velocity: [3]float32{0, 0, 4}, Color: "SkyBlue"},
			{Name: "Cube_8", Position: [3]float32{5, 3, 6}, Scale: half, Velocity: [3]float32{0, 0, 5}, Color: "Lime"},
			{Name: "Cube_9", Position: [3]float32{-8, 13, -4}, Scale: half, Velocity: [3]float32{0, 0, 4}, Color: "Magenta"},
		},
	}
}
