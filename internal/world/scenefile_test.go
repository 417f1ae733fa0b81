package world

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/physics"
)

func TestParseSceneFile(t *testing.T) {
	data := []byte(`{
		"camera": {"position": [0, 2, -10], "target": [0, 0, 0]},
		"bodies": [
			{"name": "Star", "position": [0, 0, 0], "mass": 10, "policy": "ballistic", "color": "Gold"},
			{"name": "Rock", "position": [3, 4, 5], "scale": [0.5, 0.5, 0.5], "velocity": [0, 0, 2], "policy": "freefalling"},
			{"name": "Plain", "position": [1, 1, 1]}
		]
	}`)

	sf, err := ParseSceneFile(data)
	if err != nil {
		t.Fatalf("ParseSceneFile: %v", err)
	}
	if len(sf.Bodies) != 3 {
		t.Fatalf("Expected 3 bodies, got %d", len(sf.Bodies))
	}
	if sf.Camera.Position != [3]float32{0, 2, -10} {
		t.Errorf("Unexpected camera position %v", sf.Camera.Position)
	}

	rock, err := sf.Bodies[1].NewBody(UnitCubeVertices())
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	if rock.Policy != physics.FreeFalling {
		t.Errorf("Expected freefalling, got %v", rock.Policy)
	}
	if rock.Velocity != (rl.Vector3{Z: 2}) || rock.StartVelocity != rock.Velocity {
		t.Errorf("Velocity not applied and snapshotted: %v / %v", rock.Velocity, rock.StartVelocity)
	}
	if half := rock.Box.HalfExtents(); half != (rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}) {
		t.Errorf("Box should follow scale, got half extents %v", half)
	}

	plain, err := sf.Bodies[2].NewBody(UnitCubeVertices())
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	if plain.Policy != physics.Orbiting || plain.Mass != 1 || plain.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Unexpected defaults: policy %v mass %v scale %v", plain.Policy, plain.Mass, plain.Scale)
	}
}

func TestParseSceneFileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad json", `{"bodies": [`, "parse scene"},
		{"unknown policy", `{"bodies": [{"name": "X", "policy": "hovering"}]}`, "unknown policy"},
		{"negative mass", `{"bodies": [{"name": "X", "mass": -1}]}`, "negative mass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneFile([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSceneFileMissing(t *testing.T) {
	_, err := LoadSceneFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}

func TestSceneFileSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")

	if err := DefaultScene().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sf, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}

	want := DefaultScene()
	if len(sf.Bodies) != len(want.Bodies) {
		t.Fatalf("Expected %d bodies, got %d", len(want.Bodies), len(sf.Bodies))
	}
	for i := range want.Bodies {
		if sf.Bodies[i] != want.Bodies[i] {
			t.Errorf("Body %d: got %+v, want %+v", i, sf.Bodies[i], want.Bodies[i])
		}
	}
}

func TestBundledSceneMatchesDefault(t *testing.T) {
	sf, err := LoadSceneFile(filepath.Join("..", "..", "assets", "scenes", "cubes.json"))
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}

	want := DefaultScene()
	if sf.Camera != want.Camera {
		t.Errorf("Camera: got %+v, want %+v", sf.Camera, want.Camera)
	}
	if len(sf.Bodies) != len(want.Bodies) {
		t.Fatalf("Expected %d bodies, got %d", len(want.Bodies), len(sf.Bodies))
	}
	for i := range want.Bodies {
		if sf.Bodies[i] != want.Bodies[i] {
			t.Errorf("Body %d: got %+v, want %+v", i, sf.Bodies[i], want.Bodies[i])
		}
	}
}

func TestColorNames(t *testing.T) {
	if lookupColor("Gold") != rl.Gold {
		t.Error("Gold should map to rl.Gold")
	}
	if lookupColor("NoSuchColor") != rl.White {
		t.Error("Unknown colors should fall back to white")
	}
	if name := lookupColorName(rl.Red); name != "Red" {
		t.Errorf("Expected Red, got %s", name)
	}
	if name := lookupColorName(rl.Color{R: 1, G: 2, B: 3, A: 255}); name != "#010203ff" {
		t.Errorf("Expected hex fallback, got %s", name)
	}
}
