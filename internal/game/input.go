package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubular/internal/world"
)

type Action int

const (
	ActionTogglePause Action = iota
	ActionReset
	ActionResetCamera
	ActionToggleBoxes
	ActionToggleCursor
	ActionSave
	ActionSpawnSmall
	ActionSpawnHeavy
)

var keyBindings = []struct {
	key    int32
	action Action
}{
	{rl.KeyP, ActionTogglePause},
	{rl.KeyR, ActionReset},
	{rl.KeyHome, ActionResetCamera},
	{rl.KeyF1, ActionToggleBoxes},
	{rl.KeyTab, ActionToggleCursor},
	{rl.KeyF5, ActionSave},
}

// pollActions returns the actions triggered this frame. Mouse spawns only
// fire while the cursor is captured so HUD clicks don't spawn bodies.
func pollActions(cursorCaptured bool) []Action {
	var actions []Action
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	if cursorCaptured {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			actions = append(actions, ActionSpawnSmall)
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			actions = append(actions, ActionSpawnHeavy)
		}
	}
	return actions
}

func (g *Game) handle(a Action) {
	switch a {
	case ActionTogglePause:
		g.Paused = !g.Paused
	case ActionReset:
		g.reset()
	case ActionResetCamera:
		g.Camera.Reset()
	case ActionToggleBoxes:
		g.World.ShowBoxes = !g.World.ShowBoxes
	case ActionToggleCursor:
		g.toggleCursor()
	case ActionSave:
		g.save()
	case ActionSpawnSmall:
		g.spawn(world.SmallCube)
	case ActionSpawnHeavy:
		g.spawn(world.HeavyCube)
	}
}

func (g *Game) toggleCursor() {
	g.CursorCaptured = !g.CursorCaptured
	if !rl.IsWindowReady() {
		return
	}
	if g.CursorCaptured {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}
