package game

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/camera"
	"cubular/internal/physics"
	"cubular/internal/world"
)

// maxFrameTime caps the physics step after a stall (window drag, breakpoint).
const maxFrameTime = 1.0 / 15

// Options configure the window and the scene to load.
type Options struct {
	ScenePath string
	Width     int32
	Height    int32
	FPS       int32
	Settings  physics.Settings
}

func DefaultOptions() Options {
	return Options{
		ScenePath: "assets/scenes/cubes.json",
		Width:     1280,
		Height:    720,
		FPS:       60,
		Settings:  physics.DefaultSettings(),
	}
}

type Game struct {
	World  *world.World
	Camera *camera.FlyCamera

	Paused         bool
	CursorCaptured bool
	Collisions     int // contacts started since launch

	opts   Options
	target physics.RaycastHit

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads the scene from opts.ScenePath, falling back to the built-in scene.
func New(opts Options) *Game {
	g := &Game{
		World:          world.New(opts.Settings),
		CursorCaptured: true,
		opts:           opts,
	}

	sf, err := world.LoadSceneFile(opts.ScenePath)
	if err != nil {
		log.Printf("Scene: %v, using built-in scene", err)
		sf = world.DefaultScene()
	}
	if err := g.World.Load(sf); err != nil {
		log.Printf("Scene: %v, using built-in scene", err)
		if err := g.World.Load(world.DefaultScene()); err != nil {
			panic(fmt.Sprintf("built-in scene: %v", err))
		}
	}

	g.World.ContactEntered.AddListener(func(physics.Contact) {
		g.Collisions++
	})

	cam := g.World.Camera
	g.Camera = camera.New(
		rl.Vector3{X: cam.Position[0], Y: cam.Position[1], Z: cam.Position[2]},
		rl.Vector3{X: cam.Target[0], Y: cam.Target[1], Z: cam.Target[2]},
	)
	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.opts.Width, g.opts.Height, "Cubular")
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.opts.FPS)
	rl.DisableCursor()

	// Meshes need the OpenGL context
	g.World.InitGraphics()
	defer g.World.Unload()

	initHUDStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := min(rl.GetFrameTime(), maxFrameTime)

	for _, action := range pollActions(g.CursorCaptured) {
		g.handle(action)
	}

	if g.CursorCaptured {
		g.Camera.Update(deltaTime)
	}

	if !g.Paused {
		g.World.Update(deltaTime)
	}

	g.World.Targeted, g.target, _ = g.World.Pick(g.Camera.Position, g.Camera.Forward())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(10, 10, 20, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Draw(camera)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space/Ctrl up/down, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("LMB/RMB spawn, P pause, R reset, Tab for cursor", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	for _, action := range g.drawHUD() {
		g.handle(action)
	}
}

// spawn fires a projectile from the camera along its view direction.
func (g *Game) spawn(p world.Projectile) {
	g.World.Spawn(p, g.Camera.Position, g.Camera.Forward())
}

func (g *Game) reset() {
	g.World.Reset()
	g.Camera.Reset()
}

func (g *Game) save() {
	if err := g.World.Save(g.opts.ScenePath); err != nil {
		log.Printf("Scene: save failed: %v", err)
	}
}
