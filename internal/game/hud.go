package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 230)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	hudWidth   = 240
	hudMargin  = 10
	hudRow     = 28
	hudPadding = 12
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// statLines formats the counters shown in the HUD.
func (g *Game) statLines() []string {
	stats := g.World.Physics.Stats()
	state := "running"
	if g.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("State: %s", state),
		fmt.Sprintf("Bodies: %d / %d (%d visible)", g.World.Scene.EnabledCount(), g.World.Scene.Len(), g.World.Visible),
		fmt.Sprintf("Candidates: %d", stats.Candidates),
		fmt.Sprintf("Contacts: %d", stats.Contacts),
		fmt.Sprintf("Tree depth: %d", stats.TreeDepth),
		fmt.Sprintf("Collisions: %d", g.Collisions),
		g.targetLine(),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs),
	}
}

func (g *Game) targetLine() string {
	b := g.World.Scene.Get(g.World.Targeted)
	if b == nil {
		return "Looking at: -"
	}
	return fmt.Sprintf("Looking at: %s (%.1f)", b.Name, g.target.Distance)
}

// drawHUD draws the stats panel. While the cursor is free it also draws the
// controls and returns the actions the user clicked.
func (g *Game) drawHUD() []Action {
	lines := g.statLines()
	rows := len(lines)
	if !g.CursorCaptured {
		rows += 6
	}

	x := float32(rl.GetScreenWidth() - hudWidth - hudMargin)
	y := float32(hudMargin)
	height := float32(rows*hudRow + 2*hudPadding + hudRow)

	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: hudWidth, Height: height}, colorBgPanel)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: hudWidth, Height: height}, 1, colorAccent)
	rl.DrawText("Physics", int32(x+hudPadding), int32(y+hudPadding), 18, colorTextPrimary)

	inner := x + hudPadding
	width := float32(hudWidth - 2*hudPadding)
	row := y + hudPadding + hudRow

	for _, line := range lines {
		rl.DrawText(line, int32(inner), int32(row), 14, colorTextSecondary)
		row += hudRow
	}

	if g.CursorCaptured {
		return nil
	}

	var actions []Action
	pauseLabel := "Pause"
	if g.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: inner, Y: row, Width: width/2 - 4, Height: 22}, pauseLabel) {
		actions = append(actions, ActionTogglePause)
	}
	if gui.Button(rl.Rectangle{X: inner + width/2 + 4, Y: row, Width: width/2 - 4, Height: 22}, "Reset") {
		actions = append(actions, ActionReset)
	}
	row += hudRow

	if gui.Button(rl.Rectangle{X: inner, Y: row, Width: width/2 - 4, Height: 22}, "Small cube") {
		actions = append(actions, ActionSpawnSmall)
	}
	if gui.Button(rl.Rectangle{X: inner + width/2 + 4, Y: row, Width: width/2 - 4, Height: 22}, "Heavy cube") {
		actions = append(actions, ActionSpawnHeavy)
	}
	row += hudRow

	g.World.ShowBoxes = gui.CheckBox(rl.Rectangle{X: inner, Y: row + 4, Width: 14, Height: 14}, "Show boxes", g.World.ShowBoxes)
	row += hudRow

	settings := &g.World.Physics.Settings
	rl.DrawText("Gravity", int32(inner), int32(row+4), 14, colorTextSecondary)
	settings.Gravity = gui.Slider(rl.Rectangle{X: inner + 80, Y: row, Width: width - 120, Height: 20}, "", fmt.Sprintf("%.1f", settings.Gravity), settings.Gravity, 0, 20)
	row += hudRow

	rl.DrawText("Bounce", int32(inner), int32(row+4), 14, colorTextSecondary)
	settings.Restitution = gui.Slider(rl.Rectangle{X: inner + 80, Y: row, Width: width - 120, Height: 20}, "", fmt.Sprintf("%.2f", settings.Restitution), settings.Restitution, 0, 1)
	row += hudRow

	if gui.Button(rl.Rectangle{X: inner, Y: row, Width: width, Height: 22}, "Save scene") {
		actions = append(actions, ActionSave)
	}

	return actions
}
