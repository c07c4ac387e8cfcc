package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/renderer"
	"github.com/pthm-cable/vectorfield/systems"
	"github.com/pthm-cable/vectorfield/telemetry"
)

// HeadlessResult summarises a headless run.
type HeadlessResult struct {
	Frames       int
	LastFrame    Frame
	SnapshotPath string
}

// RunHeadless steps the simulation opts.Frames times on a CPU trail buffer,
// with the wall clock advancing 1/opts.FPS per frame. No window is opened.
func RunHeadless(cfg *config.Config, field systems.NoiseField, opts Options) (HeadlessResult, error) {
	if opts.Frames <= 0 {
		return HeadlessResult{}, fmt.Errorf("headless run needs a positive frame count, got %d", opts.Frames)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = float64(cfg.Screen.TargetFPS)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return HeadlessResult{}, err
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()
	if err := output.WriteConfig(cfg); err != nil {
		return HeadlessResult{}, err
	}

	region := systems.NewRegion(cfg.Derived.ScreenW64, cfg.Derived.ScreenH64)
	accum := renderer.NewImageAccumulator(cfg.Screen.Width, cfg.Screen.Height, cfg.Accumulation.FadeAlpha)

	simOpts := simulationOptions(cfg, field, region, opts)
	simOpts.Accumulator = accum
	simOpts.Output = output
	sim := NewSimulation(simOpts)

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"frames", opts.Frames,
		"fps", fps,
		"noise", cfg.Noise.Backend,
		"particles", cfg.Particles.Enabled,
	)

	var res HeadlessResult
	for i := 0; i < opts.Frames; i++ {
		res.LastFrame = sim.Step(float64(i) / fps)
	}
	res.Frames = opts.Frames

	slog.Info("headless simulation finished",
		"frames", res.Frames,
		"field_time", res.LastFrame.Time,
		"particles", len(res.LastFrame.Particles),
	)

	if opts.Snapshot && output != nil {
		path := output.SnapshotPath()
		if err := writeSnapshot(path, cfg, sim, accum, res.LastFrame); err != nil {
			return res, err
		}
		res.SnapshotPath = path
		slog.Info("snapshot saved", "path", path)
	}

	return res, nil
}

// writeSnapshot composes the last frame over the trail buffer and saves it.
func writeSnapshot(path string, cfg *config.Config, sim *Simulation, accum *renderer.ImageAccumulator, frame Frame) error {
	snap, err := renderer.NewSnapshot(rgb(cfg.Colors.Background), renderer.NewFieldRenderer(rgb(cfg.Colors.Arrow)))
	if err != nil {
		return err
	}
	live := sim.Config()
	opts := renderer.FieldOptions{
		ShowValues: live.ShowValues,
		ShowArrows: live.ShowArrows,
		ColorMode:  live.ColorMode,
	}
	caption := fmt.Sprintf("frame %d  t=%.3f  particles=%d  step=%d", frame.Index, frame.Time, len(frame.Particles), live.Step)
	img := snap.Compose(frame.Grid, accum.Image(), opts, caption)
	return renderer.SavePNG(path, img)
}
