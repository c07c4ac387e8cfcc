package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/renderer"
	"github.com/pthm-cable/vectorfield/systems"
	"github.com/pthm-cable/vectorfield/telemetry"
)

func newTestSimulation(t *testing.T, mutate func(*SimulationOptions)) (*Simulation, *renderer.ImageAccumulator) {
	t.Helper()
	cfg := config.Defaults()
	region := systems.NewRegion(200, 100)
	accum := renderer.NewImageAccumulator(200, 100, 0)
	opts := SimulationOptions{
		Field:        systems.NewPerlinNoise(1),
		Region:       region,
		Simulation:   cfg.Simulation,
		Particles:    cfg.Particles,
		Accumulator:  accum,
		Seed:         7,
		WindowFrames: 10,
		PerfWindow:   10,
	}
	if mutate != nil {
		mutate(&opts)
	}
	return NewSimulation(opts), accum
}

func enableParticles(count int) func(*SimulationOptions) {
	return func(o *SimulationOptions) {
		o.Particles.Enabled = true
		o.Particles.Count = count
		o.Particles.Size = 4
	}
}

// painted counts non-transparent pixels.
func painted(a *renderer.ImageAccumulator) int {
	n := 0
	pix := a.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestSimulation_StepGrid(t *testing.T) {
	sim, _ := newTestSimulation(t, nil)
	f := sim.Step(0)
	if f.Grid == nil || f.Grid.Width != 5 || f.Grid.Height != 3 {
		t.Fatalf("grid = %+v, want 5x3", f.Grid)
	}
	if f.Index != 0 || sim.FrameIndex() != 1 {
		t.Errorf("frame index = %d / %d, want 0 / 1", f.Index, sim.FrameIndex())
	}
	if f.Particles != nil {
		t.Error("particles reported while disabled")
	}
}

func TestSimulation_PausedTimeFrozen(t *testing.T) {
	sim, _ := newTestSimulation(t, nil)
	first := sim.Step(0).Grid.Angles[7]
	for _, wall := range []float64{1, 5, 30} {
		f := sim.Step(wall)
		if f.Time != 0 {
			t.Fatalf("time = %v at wall %v while paused", f.Time, wall)
		}
		if f.Grid.Angles[7] != first {
			t.Fatal("grid changed while paused")
		}
	}
}

func TestSimulation_RunningContinuity(t *testing.T) {
	sim, _ := newTestSimulation(t, func(o *SimulationOptions) { o.Simulation.Speed = 1 })

	sim.SetRunning(10, true)
	if got := sim.Step(10).Time; math.Abs(got) > 1e-12 {
		t.Fatalf("time right after start = %v, want 0", got)
	}
	if got := sim.Step(12).Time; math.Abs(got-2) > 1e-12 {
		t.Fatalf("time 2s after start = %v, want 2", got)
	}

	sim.ToggleRunning(12)
	if sim.Running() || sim.Config().Running {
		t.Fatal("toggle did not pause")
	}
	if got := sim.Step(50).Time; math.Abs(got-2) > 1e-12 {
		t.Errorf("paused time = %v, want 2", got)
	}
}

func TestSimulation_ParticlesAccumulate(t *testing.T) {
	sim, accum := newTestSimulation(t, enableParticles(50))

	f := sim.Step(0)
	if len(f.Particles) != 50 {
		t.Fatalf("frame particles = %d, want 50", len(f.Particles))
	}
	after1 := painted(accum)
	if after1 == 0 {
		t.Fatal("nothing painted into the accumulator")
	}
	for i := 1; i < 20; i++ {
		sim.Step(0)
	}
	if after20 := painted(accum); after20 <= after1 {
		t.Errorf("trails did not grow: %d -> %d pixels", after1, after20)
	}

	sim.ResetParticles()
	if got := painted(accum); got != 0 {
		t.Errorf("ResetParticles left %d painted pixels", got)
	}
	if sim.Particles().Len() != 50 {
		t.Errorf("Len after reset = %d, want 50", sim.Particles().Len())
	}
}

func TestSimulation_DisabledParticlesDoNotPaint(t *testing.T) {
	sim, accum := newTestSimulation(t, nil)
	for i := 0; i < 5; i++ {
		sim.Step(float64(i))
	}
	if got := painted(accum); got != 0 {
		t.Errorf("accumulator painted %d pixels with particles disabled", got)
	}
}

func TestSimulation_Resize(t *testing.T) {
	sim, accum := newTestSimulation(t, enableParticles(20))
	sim.Step(0)

	sim.Resize(systems.NewRegion(320, 240))
	if w, h := accum.Size(); w != 320 || h != 240 {
		t.Fatalf("accumulator = %dx%d after resize, want 320x240", w, h)
	}
	if painted(accum) != 0 {
		t.Error("resize kept old trails")
	}
	f := sim.Step(0)
	if f.Grid.Width != 320/50+1 || f.Grid.Height != 240/50+1 {
		t.Errorf("grid = %dx%d after resize", f.Grid.Width, f.Grid.Height)
	}
}

func TestSimulation_SetParticleConfig(t *testing.T) {
	sim, _ := newTestSimulation(t, enableParticles(1000))

	pc := sim.ParticleConfig()
	pc.Count = 10
	sim.SetParticleConfig(pc)
	if sim.Particles().Len() != 10 {
		t.Fatalf("Len = %d, want 10", sim.Particles().Len())
	}

	pc.Strategy = config.StrategyWrap
	sim.SetParticleConfig(pc)
	if _, ok := sim.Particles().(*systems.WrappingParticles); !ok {
		t.Errorf("strategy change built %T", sim.Particles())
	}
	if sim.Particles().Len() != 10 {
		t.Errorf("Len after strategy change = %d, want 10", sim.Particles().Len())
	}
}

func TestSimulation_SetConfigKeepsClockState(t *testing.T) {
	sim, _ := newTestSimulation(t, nil)

	c := sim.Config()
	c.Running = true // ignored: only SetRunning/ToggleRunning move the clock
	c.Step = 25
	c.Normalization = config.NormalizeUniform
	sim.SetConfig(c)

	if sim.Running() || sim.Config().Running {
		t.Error("SetConfig started the clock")
	}
	if f := sim.Step(0); f.Grid.Width != 9 || f.Grid.Height != 5 {
		t.Errorf("grid = %dx%d, want 9x5 at step 25", f.Grid.Width, f.Grid.Height)
	}
}

func TestSimulation_StatsCallback(t *testing.T) {
	var windows []telemetry.WindowStats
	sim, _ := newTestSimulation(t, func(o *SimulationOptions) {
		o.WindowFrames = 5
		o.StatsCallback = func(s telemetry.WindowStats) { windows = append(windows, s) }
	})

	for i := 0; i < 12; i++ {
		sim.Step(float64(i) / 60)
	}
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	if windows[0].WindowEndFrame != 4 || windows[1].WindowStartFrame != 5 {
		t.Errorf("window bounds = %+v", windows)
	}
	if windows[0].Cells != 15 {
		t.Errorf("cells = %d, want 15", windows[0].Cells)
	}
}

func TestSimulation_SetFade(t *testing.T) {
	sim, accum := newTestSimulation(t, enableParticles(50))
	sim.Step(0)
	if painted(accum) == 0 {
		t.Fatal("nothing painted")
	}

	sim.SetFade(255)
	accum.PaintInto(func(renderer.Surface) {})
	if got := painted(accum); got != 0 {
		t.Errorf("full fade left %d painted pixels", got)
	}
}
