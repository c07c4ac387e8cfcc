package game

import (
	"image/color"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/systems"
)

// Options configures a Game or a headless run.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string // empty disables CSV/YAML output

	// Headless only
	Frames   int     // frames to simulate
	FPS      float64 // synthetic frame rate driving the wall clock
	Snapshot bool    // write snapshot.png after the last frame
}

// simulationOptions builds the core options shared by both hosts.
func simulationOptions(cfg *config.Config, field systems.NoiseField, region systems.Region, opts Options) SimulationOptions {
	return SimulationOptions{
		Field:        field,
		Region:       region,
		Simulation:   cfg.Simulation,
		Particles:    cfg.Particles,
		Seed:         opts.Seed,
		WindowFrames: cfg.Telemetry.WindowFrames,
		PerfWindow:   cfg.Telemetry.PerfWindow,
		LogStats:     opts.LogStats || cfg.Telemetry.LogStats,
	}
}

func rgb(c [3]uint8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
