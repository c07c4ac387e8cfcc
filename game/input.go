package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vectorfield/systems"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.sim.ToggleRunning(rl.GetTime())
		g.state.Simulation.Running = g.sim.Running()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.sim.ResetParticles()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
}

// handleResize checks for window resize and moves the simulation to the
// new canvas, which also reallocates the trail texture.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	if w <= 0 || h <= 0 {
		// Minimized; keep the previous canvas.
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.sim.Resize(systems.NewRegion(float64(w), float64(h)))
}
