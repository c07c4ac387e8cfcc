package game

import (
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/renderer"
	"github.com/pthm-cable/vectorfield/systems"
	"github.com/pthm-cable/vectorfield/telemetry"
	"github.com/pthm-cable/vectorfield/ui"
)

// Game is the raylib host around a Simulation. It must be created after
// the window is open.
type Game struct {
	cfg *config.Config
	sim *Simulation

	// Rendering
	accum      *renderer.TextureAccumulator
	field      *renderer.FieldRenderer
	background color.NRGBA

	// UI
	panel *ui.SettingsPanel
	hud   *ui.HUD
	state ui.PanelState

	output *telemetry.OutputManager

	screenWidth, screenHeight int
	last                      Frame
}

// NewGame creates the host and its simulation sized to the current window.
func NewGame(cfg *config.Config, field systems.NoiseField, opts Options) (*Game, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	g := &Game{
		cfg:          cfg,
		accum:        renderer.NewTextureAccumulator(w, h, cfg.Accumulation.FadeAlpha),
		field:        renderer.NewFieldRenderer(rgb(cfg.Colors.Arrow)),
		background:   rgb(cfg.Colors.Background),
		panel:        ui.NewSettingsPanel(int32(cfg.Screen.PanelWidth)),
		hud:          ui.NewHUD(),
		output:       output,
		screenWidth:  w,
		screenHeight: h,
	}

	simOpts := simulationOptions(cfg, field, systems.NewRegion(float64(w), float64(h)), opts)
	simOpts.Accumulator = g.accum
	simOpts.Output = output
	g.sim = NewSimulation(simOpts)

	g.state = ui.PanelState{
		Simulation: g.sim.Config(),
		Particles:  g.sim.ParticleConfig(),
		Fade:       cfg.Accumulation.FadeAlpha,
	}

	slog.Info("game started",
		"width", w,
		"height", h,
		"seed", opts.Seed,
		"noise", cfg.Noise.Backend,
	)
	return g, nil
}

// Update handles input and advances the simulation one frame.
func (g *Game) Update() {
	g.handleInput()
	g.last = g.sim.Step(rl.GetTime())
}

// Draw composites background, heatmap, particle trails, arrows and UI.
func (g *Game) Draw() {
	g.sim.Perf().RecordPresent()

	rl.BeginDrawing()
	screen := renderer.NewScreenSurface(g.screenWidth, g.screenHeight)
	screen.Clear(g.background)

	cfg := g.sim.Config()
	if g.last.Grid != nil && cfg.ShowValues {
		g.field.DrawValues(screen, g.last.Grid, cfg.ColorMode)
	}
	g.accum.Draw(0, 0)
	if g.last.Grid != nil && cfg.ShowArrows {
		g.field.DrawArrows(screen, g.last.Grid)
	}

	g.drawUI()
	rl.EndDrawing()
}

// drawUI draws the HUD and the settings panel and dispatches panel actions.
func (g *Game) drawUI() {
	stats := g.sim.Perf().Stats()
	data := ui.HUDData{
		Title:     "Vector Field",
		Frame:     g.last.Index,
		FieldTime: g.last.Time,
		FPS:       rl.GetFPS(),
		Running:   g.sim.Running(),
		Particles: len(g.last.Particles),
		StepUS:    stats.AvgStep.Microseconds(),
	}
	if g.last.Grid != nil {
		data.GridW, data.GridH = g.last.Grid.Width, g.last.Grid.Height
	}
	g.hud.Draw(data)
	g.hud.DrawControls(int32(g.screenHeight), "[Space] Run/Pause  [R] Reset  [Tab] Panel  [F11] Fullscreen")

	g.state.Simulation.Running = g.sim.Running()
	act := g.panel.Draw(&g.state, int32(g.screenWidth), int32(g.screenHeight))
	g.apply(act)
}

// apply dispatches panel actions to the simulation.
func (g *Game) apply(act ui.Actions) {
	if act.SimulationChanged {
		g.sim.SetConfig(g.state.Simulation)
	}
	if act.ParticlesChanged {
		g.sim.SetParticleConfig(g.state.Particles)
	}
	if act.FadeChanged {
		g.sim.SetFade(g.state.Fade)
	}
	if act.ToggleRunning {
		g.sim.ToggleRunning(rl.GetTime())
	}
	if act.ResetParticles {
		g.sim.ResetParticles()
	}
	if act.Any() {
		g.state.Simulation = g.sim.Config()
		g.state.Particles = g.sim.ParticleConfig()
	}
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	g.accum.Unload()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Simulation returns the simulation driven by this host.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Title returns the window title.
func Title(cfg *config.Config) string {
	return fmt.Sprintf("Vector Field (%s noise)", cfg.Noise.Backend)
}
