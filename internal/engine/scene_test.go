package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/physics"
)

func newBody(name string, x float32) *physics.Body {
	return physics.NewBody(name, rl.Vector3{X: x}, nil)
}

func TestSceneSpawnAssignsStableIDs(t *testing.T) {
	scene := NewScene("Test")
	star := newBody("Star", 0)
	cube := newBody("Cube", 8)

	starID := scene.Spawn(star)
	cubeID := scene.Spawn(cube)

	if starID != 0 || cubeID != 1 {
		t.Errorf("Expected IDs 0 and 1, got %d and %d", starID, cubeID)
	}
	if scene.Get(starID) != star || scene.Get(cubeID) != cube {
		t.Error("Get returned the wrong body")
	}

	// Spawning more keeps earlier IDs valid
	for i := 0; i < 20; i++ {
		scene.Spawn(newBody("Extra", float32(i)))
	}
	if scene.Get(cubeID) != cube {
		t.Error("ID changed after further spawns")
	}
	if scene.Len() != 22 {
		t.Errorf("Expected 22 bodies, got %d", scene.Len())
	}
}

func TestSceneGetOutOfRange(t *testing.T) {
	scene := NewScene("Test")
	scene.Spawn(newBody("Only", 0))

	for _, id := range []BodyID{InvalidBodyID, 1, 100} {
		if scene.Get(id) != nil {
			t.Errorf("Get(%d) should return nil", id)
		}
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	scene.Spawn(newBody("Star", 0))
	scene.Spawn(newBody("UniqueCube", 2))

	id, ok := scene.FindByName("UniqueCube")
	if !ok || id != 1 {
		t.Errorf("FindByName failed: got %d, %v", id, ok)
	}

	id, ok = scene.FindByName("DoesNotExist")
	if ok || id != InvalidBodyID {
		t.Error("FindByName should fail for a missing name")
	}
}

func TestSceneResetDisablesSpawned(t *testing.T) {
	scene := NewScene("Test")
	seeded := newBody("Seeded", 1)
	seeded.SetVelocity(rl.Vector3{Z: 4})
	seeded.Snapshot()
	scene.Spawn(seeded)
	scene.MarkSeeded()

	spawnedID := scene.Spawn(newBody("Projectile", 3))

	seeded.AddPosition(rl.Vector3{X: 5})
	seeded.SetVelocity(rl.Vector3{})
	seeded.Enabled = false

	scene.Reset()

	if !seeded.Enabled || seeded.Position != (rl.Vector3{X: 1}) || seeded.Velocity != (rl.Vector3{Z: 4}) {
		t.Errorf("Seeded body not restored: %+v", seeded)
	}
	spawned := scene.Get(spawnedID)
	if spawned == nil || spawned.Enabled {
		t.Error("Spawned body should stay in the scene but be disabled")
	}
	if !scene.IsSeeded(0) || scene.IsSeeded(spawnedID) {
		t.Error("IsSeeded reports the wrong bodies")
	}
	if scene.EnabledCount() != 1 {
		t.Errorf("Expected 1 enabled body, got %d", scene.EnabledCount())
	}
}

func TestSceneClear(t *testing.T) {
	scene := NewScene("Test")
	scene.Spawn(newBody("A", 0))
	scene.Spawn(newBody("B", 1))
	scene.MarkSeeded()

	scene.Clear()

	if scene.Len() != 0 || scene.Seeded() != 0 {
		t.Errorf("Expected empty scene, got %d bodies, %d seeded", scene.Len(), scene.Seeded())
	}
	if scene.Get(0) != nil {
		t.Error("Old IDs should be invalid after Clear")
	}
	if id := scene.Spawn(newBody("C", 2)); id != 0 {
		t.Errorf("Expected IDs to restart at 0, got %d", id)
	}
}
