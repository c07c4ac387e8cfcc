// Field preview tool - interactive noise and angle-grid visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/renderer"
	"github.com/pthm-cable/vectorfield/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// previewParams is the subset of the config the preview edits.
type previewParams struct {
	Noise      config.NoiseConfig      `yaml:"noise"`
	Simulation config.SimulationConfig `yaml:"simulation"`
}

func main() {
	defaults := config.Defaults()
	params := previewParams{Noise: defaults.Noise, Simulation: defaults.Simulation}

	field, err := systems.NewNoiseField(params.Noise.Backend, params.Noise.Seed)
	if err != nil {
		slog.Error("failed to create noise field", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Vector Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	// Create texture for rendering
	img := rl.GenImageColor(previewSize, previewSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	surface := renderer.NewImageSurface(previewSize, previewSize)
	fieldRenderer := renderer.NewFieldRenderer(color.NRGBA{A: 255})
	background := color.NRGBA{R: defaults.Colors.Background[0], G: defaults.Colors.Background[1], B: defaults.Colors.Background[2], A: 255}
	region := systems.NewRegion(previewSize, previewSize)
	sampler := systems.NewSampler(field, params.Simulation.Normalization == config.NormalizeUniform)
	pixels := make([]color.RGBA, previewSize*previewSize)

	// Time for animation
	var t float64
	animating := false
	var grid *systems.AngleGrid
	needsRegen := true

	for !rl.WindowShouldClose() {
		// Animation
		if animating {
			t += float64(rl.GetFrameTime()) * params.Simulation.Speed
			needsRegen = true
		}

		// Regenerate if needed
		if needsRegen {
			sim := params.Simulation
			grid = sampler.ComputeInto(grid, region, sim.Step, sim.Frequency, t, sim.MaxAngle)
			surface.Clear(background)
			fieldRenderer.Draw(surface, grid, renderer.FieldOptions{
				ShowValues: true,
				ShowArrows: sim.ShowArrows,
				ColorMode:  sim.ColorMode,
			})
			updateTexture(texture, surface, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexture(texture, 10, 10, rl.White)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		minVal, maxVal, mean := angleRange(grid.Angles)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Avg: %.3f rad", minVal, maxVal, mean), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.2f  Grid: %dx%d", t, grid.Width, grid.Height), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Vector Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		sim := &params.Simulation

		// Step slider
		rl.DrawText("Steps (grid cell size in px)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newStep := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "100",
			float32(sim.Step), 1, 100,
		)
		rl.DrawText(fmt.Sprintf("%d", sim.Step), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newStep) != sim.Step && int(newStep) >= 1 {
			sim.Step = int(newStep)
			needsRegen = true
		}
		panelY += 35

		// Max angle slider
		rl.DrawText("Max angle (radians per unit noise)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newMaxAngle := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "2pi",
			float32(sim.MaxAngle), 0, 2*math.Pi,
		)
		rl.DrawText(fmt.Sprintf("%.2f", sim.MaxAngle), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newMaxAngle != float32(sim.MaxAngle) {
			sim.MaxAngle = float64(newMaxAngle)
			needsRegen = true
		}
		panelY += 35

		// Frequency slider (logarithmic)
		rl.DrawText("Frequency (noise coordinate scale)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		logFreq := float32(math.Log10(sim.Frequency))
		newLogFreq := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.1", "100",
			logFreq, -1, 2,
		)
		rl.DrawText(fmt.Sprintf("%.2f", sim.Frequency), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newLogFreq != logFreq {
			sim.Frequency = math.Pow(10, float64(newLogFreq))
			needsRegen = true
		}
		panelY += 35

		// Speed slider
		rl.DrawText("Speed (time units per second)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "2",
			float32(sim.Speed), 0, 2,
		)
		rl.DrawText(fmt.Sprintf("%.2f", sim.Speed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newSpeed != float32(sim.Speed) {
			sim.Speed = float64(newSpeed)
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Noise.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Noise.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int64(newSeed) != params.Noise.Seed {
			params.Noise.Seed = int64(newSeed)
			field = rebuildField(field, params.Noise)
			sampler = systems.NewSampler(field, sampler.Uniform())
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			t = 0
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Color: "+sim.ColorMode) {
			sim.ColorMode = nextColorMode(sim.ColorMode)
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Noise: "+params.Noise.Backend) {
			params.Noise.Backend = toggleText(params.Noise.Backend == "perlin", "simplex", "perlin")
			field = rebuildField(field, params.Noise)
			sampler = systems.NewSampler(field, sampler.Uniform())
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Norm: "+sim.Normalization) {
			sim.Normalization = toggleText(sim.Normalization == config.NormalizeAxis, config.NormalizeUniform, config.NormalizeAxis)
			sampler.SetUniform(sim.Normalization == config.NormalizeUniform)
			needsRegen = true
		}
		newArrows := gui.CheckBox(rl.Rectangle{X: panelX + 130, Y: panelY + 5, Width: 20, Height: 20}, "Arrows", sim.ShowArrows)
		if newArrows != sim.ShowArrows {
			sim.ShowArrows = newArrows
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Noise.Seed = int64(rl.GetRandomValue(0, 99999))
			field = rebuildField(field, params.Noise)
			sampler = systems.NewSampler(field, sampler.Uniform())
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = previewParams{Noise: defaults.Noise, Simulation: defaults.Simulation}
			field = rebuildField(field, params.Noise)
			sampler = systems.NewSampler(field, params.Simulation.Normalization == config.NormalizeUniform)
			t = 0
			needsRegen = true
		}
		panelY += 50

		// Output YAML
		out, err := yaml.Marshal(params)
		if err != nil {
			out = []byte(err.Error())
		}
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		rl.DrawText(string(out), int32(panelX), int32(panelY), 10, rl.Gray)

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(string(out))
		}

		rl.EndDrawing()
	}
}

// rebuildField creates a field for nc, keeping prev if the backend is invalid.
func rebuildField(prev systems.NoiseField, nc config.NoiseConfig) systems.NoiseField {
	f, err := systems.NewNoiseField(nc.Backend, nc.Seed)
	if err != nil {
		slog.Error("failed to create noise field", "error", err)
		return prev
	}
	return f
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func nextColorMode(mode string) string {
	switch mode {
	case config.ColorGray:
		return config.ColorHue
	case config.ColorHue:
		return config.ColorGradient
	default:
		return config.ColorGray
	}
}

// angleRange returns min, max and mean of the grid angles.
func angleRange(angles []float64) (float64, float64, float64) {
	if len(angles) == 0 {
		return 0, 0, 0
	}
	lo, hi, sum := angles[0], angles[0], 0.0
	for _, a := range angles {
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
		sum += a
	}
	return lo, hi, sum / float64(len(angles))
}

// updateTexture uploads the surface pixels to the GPU texture.
func updateTexture(texture rl.Texture2D, surface *renderer.ImageSurface, pixels []color.RGBA) {
	img := surface.Image()
	for i := range pixels {
		o := i * 4
		pixels[i] = color.RGBA{R: img.Pix[o], G: img.Pix[o+1], B: img.Pix[o+2], A: img.Pix[o+3]}
	}
	rl.UpdateTexture(texture, pixels)
}
