package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vectorfield/config"
)

// Slider bounds for the settings panel.
const (
	MinStep      = 1
	MaxStep      = 100
	MinFrequency = 0.1
	MaxFrequency = 100.0
	MinSpeed     = 0.001
	MaxSpeed     = 100.0
	MaxParticles = 10000
	MaxFade      = 64
)

// colorModes is the cycle order of the colour mode button.
var colorModes = []string{config.ColorGray, config.ColorHue, config.ColorGradient}

// PanelState is the editable state the settings panel works on.
type PanelState struct {
	Simulation config.SimulationConfig
	Particles  config.ParticleConfig
	Fade       uint8
}

// SettingsPanel renders the settings window: noise control, field update
// and particle sections.
type SettingsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewSettingsPanel creates a settings panel of the given width.
func NewSettingsPanel(width int32) *SettingsPanel {
	return &SettingsPanel{
		renderer: NewRenderer(),
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (p *SettingsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *SettingsPanel) IsVisible() bool {
	return p.visible
}

// Width returns the panel width.
func (p *SettingsPanel) Width() int32 {
	return p.width
}

// Draw renders the panel anchored to the right edge of the screen and
// applies widget edits to state. Run/pause and reset are returned as
// actions for the caller to dispatch.
func (p *SettingsPanel) Draw(state *PanelState, screenWidth, screenHeight int32) Actions {
	var act Actions
	if !p.visible {
		return act
	}

	r := p.renderer
	pad := r.Theme.Padding
	x := screenWidth - p.width
	r.DrawPanel(x, 0, p.width, screenHeight)

	x += pad
	y := pad
	w := p.width - pad*2
	sim := state.Simulation
	parts := state.Particles

	rl.DrawText("Settings", x, y, 16, rl.White)
	y += r.Theme.LineHeight + 6

	// Noise control
	y = r.DrawSectionHeader(x, y, "Noise control")
	sim.Step, y = r.IntSlider(x, y, w, "Steps", sim.Step, MinStep, MaxStep)
	sim.MaxAngle, y = r.Slider(x, y, w, "Max angle (rad)", "%.2f", sim.MaxAngle, 0, 2*math.Pi)
	sim.Frequency, y = r.LogSlider(x, y, w, "Frequency", "%.2f", sim.Frequency, MinFrequency, MaxFrequency)

	if r.Button(x, y, w/2-4, "Color: "+sim.ColorMode) {
		sim.ColorMode = nextColorMode(sim.ColorMode)
	}
	if r.Button(x+w/2+4, y, w/2-4, "Norm: "+sim.Normalization) {
		sim.Normalization = toggleText(sim.Normalization == config.NormalizeAxis, config.NormalizeUniform, config.NormalizeAxis)
	}
	y += r.Theme.ButtonHeight + 6
	sim.ShowValues = r.CheckBox(x, y, "Show values", sim.ShowValues)
	sim.ShowArrows = r.CheckBox(x+w/2+4, y, "Show arrows", sim.ShowArrows)
	y += r.Theme.SliderHeight + 6
	y = r.DrawSeparator(x, y, w)

	// Update vector field
	y = r.DrawSectionHeader(x, y, "Update vector field")
	sim.Speed, y = r.LogSlider(x, y, w, "Speed", "%.3f", sim.Speed, MinSpeed, MaxSpeed)
	if r.Button(x, y, w/2-4, toggleText(sim.Running, "Pause", "Run")) {
		act.ToggleRunning = true
	}
	y += r.Theme.ButtonHeight + 6
	y = r.DrawSeparator(x, y, w)

	// Particles
	y = r.DrawSectionHeader(x, y, "Particles")
	if r.Button(x, y, w/2-4, "Reset particles") {
		act.ResetParticles = true
	}
	parts.Enabled = r.CheckBox(x+w/2+4, y+4, "Enable", parts.Enabled)
	y += r.Theme.ButtonHeight + 6
	parts.Count, y = r.IntSlider(x, y, w, "Count", parts.Count, 0, MaxParticles)
	parts.MoveDelta, y = r.Slider(x, y, w, "Move delta (px)", "%.1f", parts.MoveDelta, 0.1, 10)
	parts.Size, y = r.Slider(x, y, w, "Size (px)", "%.1f", parts.Size, 0.5, 10)
	if r.Button(x, y, w/2-4, "Strategy: "+parts.Strategy) {
		parts.Strategy = toggleText(parts.Strategy == config.StrategySimple, config.StrategyWrap, config.StrategySimple)
	}
	y += r.Theme.ButtonHeight + 6
	fade, _ := r.IntSlider(x, y, w, "Trail fade", int(state.Fade), 0, MaxFade)

	act.SimulationChanged = sim != state.Simulation
	act.ParticlesChanged = parts != state.Particles
	act.FadeChanged = uint8(fade) != state.Fade

	state.Simulation = sim
	state.Particles = parts
	state.Fade = uint8(fade)
	return act
}

// nextColorMode returns the colour mode after mode in the cycle.
func nextColorMode(mode string) string {
	for i, m := range colorModes {
		if m == mode {
			return colorModes[(i+1)%len(colorModes)]
		}
	}
	return colorModes[0]
}
