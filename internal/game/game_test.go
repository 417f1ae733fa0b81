package game

import (
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/engine"
	"cubular/internal/physics"
	"cubular/internal/world"
)

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.ScenePath = filepath.Join(t.TempDir(), "scene.json")
	return opts
}

func TestNewFallsBackToBuiltInScene(t *testing.T) {
	g := New(testOptions(t))

	if g.World.Scene.Len() != len(world.DefaultScene().Bodies) {
		t.Errorf("Expected built-in scene, got %d bodies", g.World.Scene.Len())
	}
	if g.Camera.Position != (rl.Vector3{Z: -30}) {
		t.Errorf("Camera should start at the scene's camera, got %v", g.Camera.Position)
	}
}

func TestNewLoadsScenePath(t *testing.T) {
	opts := testOptions(t)
	sf := &world.SceneFile{
		Camera: world.CameraDef{Position: [3]float32{0, 5, -10}},
		Bodies: []world.BodyDef{{Name: "Lonely", Policy: "ballistic"}},
	}
	if err := sf.Save(opts.ScenePath); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g := New(opts)

	if g.World.Scene.Len() != 1 || g.World.Scene.Get(0).Name != "Lonely" {
		t.Errorf("Expected the saved scene, got %d bodies", g.World.Scene.Len())
	}
}

func TestHandleSpawnAndReset(t *testing.T) {
	g := New(testOptions(t))
	seeded := g.World.Scene.Len()

	g.handle(ActionSpawnSmall)
	g.handle(ActionSpawnHeavy)

	if g.World.Scene.Len() != seeded+2 {
		t.Fatalf("Expected %d bodies, got %d", seeded+2, g.World.Scene.Len())
	}
	heavy := g.World.Scene.Get(engine.BodyID(seeded + 1))
	if heavy.Policy != physics.Ballistic || heavy.Position != g.Camera.Position {
		t.Errorf("Heavy cube should be ballistic at the camera, got %v at %v", heavy.Policy, heavy.Position)
	}

	g.Camera.Position = rl.Vector3{X: 100}
	g.handle(ActionReset)

	if g.World.Scene.EnabledCount() != seeded {
		t.Errorf("Expected %d enabled bodies after reset, got %d", seeded, g.World.Scene.EnabledCount())
	}
	if g.Camera.Position != (rl.Vector3{Z: -30}) {
		t.Errorf("Reset should move the camera back, got %v", g.Camera.Position)
	}
}

func TestHandleToggles(t *testing.T) {
	g := New(testOptions(t))

	g.handle(ActionTogglePause)
	if !g.Paused {
		t.Error("Expected paused")
	}
	g.handle(ActionTogglePause)
	if g.Paused {
		t.Error("Expected running")
	}

	g.handle(ActionToggleBoxes)
	if !g.World.ShowBoxes {
		t.Error("Expected boxes shown")
	}

	g.handle(ActionToggleCursor)
	if g.CursorCaptured {
		t.Error("Expected cursor released")
	}
}

func TestHandleSave(t *testing.T) {
	opts := testOptions(t)
	g := New(opts)

	g.handle(ActionSave)

	sf, err := world.LoadSceneFile(opts.ScenePath)
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}
	if len(sf.Bodies) != g.World.Scene.Seeded() {
		t.Errorf("Expected %d saved bodies, got %d", g.World.Scene.Seeded(), len(sf.Bodies))
	}
}

func TestCollisionCounter(t *testing.T) {
	opts := testOptions(t)
	sf := &world.SceneFile{Bodies: []world.BodyDef{
		{Name: "A", Position: [3]float32{0.9, 0, 0}},
		{Name: "B"},
	}}
	if err := sf.Save(opts.ScenePath); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g := New(opts)
	g.World.Update(1.0 / 60)

	if g.Collisions != 1 {
		t.Errorf("Expected 1 collision, got %d", g.Collisions)
	}
	if lines := g.statLines(); len(lines) == 0 || lines[0] != "State: running" {
		t.Errorf("Unexpected stat lines %v", lines)
	}
}

func TestTargetLine(t *testing.T) {
	g := New(testOptions(t))

	if got := g.targetLine(); got != "Looking at: -" {
		t.Errorf("Expected no target before the first update, got %q", got)
	}

	g.World.Targeted, g.target, _ = g.World.Pick(g.Camera.Position, g.Camera.Forward())
	if got := g.targetLine(); got != "Looking at: Star (29.6)" {
		t.Errorf("Unexpected target line %q", got)
	}
}
