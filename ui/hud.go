package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Frame     int
	FieldTime float64
	FPS       int32
	Running   bool
	Particles int
	GridW     int
	GridH     int
	StepUS    int64 // average simulation step in microseconds
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	r.DrawPanel(4, 4, 260, 92)

	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Frame: %d | t: %.3f | FPS: %d", data.Frame, data.FieldTime, data.FPS),
		10, 35, 12, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Grid: %dx%d | Particles: %d | Step: %dus", data.GridW, data.GridH, data.Particles, data.StepUS),
		10, 53, 12, rl.LightGray,
	)

	statusText := "Running"
	if !data.Running {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 73, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
