package game

import (
	"log/slog"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/renderer"
	"github.com/pthm-cable/vectorfield/systems"
	"github.com/pthm-cable/vectorfield/telemetry"
)

// Frame is the per-frame output of the simulation.
type Frame struct {
	Index int
	Time  float64 // effective noise time the frame was sampled at

	// Grid is reused between frames; it is valid until the next Step.
	Grid *systems.AngleGrid

	// Particles is a snapshot taken after advection, nil when particles are disabled.
	Particles []systems.Particle
}

// SimulationOptions configures a new Simulation.
type SimulationOptions struct {
	Field       systems.NoiseField
	Region      systems.Region
	Simulation  config.SimulationConfig
	Particles   config.ParticleConfig
	Accumulator renderer.Accumulator
	Seed        int64

	// Telemetry
	WindowFrames  int
	PerfWindow    int
	Output        *telemetry.OutputManager // nil disables CSV output
	LogStats      bool
	StatsCallback func(telemetry.WindowStats)
}

// Simulation is the per-frame orchestrator. It owns the clock, the grid
// sampler, the particle system and the accumulation buffer, and never
// touches the window, so it runs the same headless and on screen.
type Simulation struct {
	cfg    config.SimulationConfig
	pcfg   config.ParticleConfig
	region systems.Region
	seed   int64

	field     systems.NoiseField
	clock     *systems.Clock
	sampler   *systems.Sampler
	particles systems.ParticleSystem
	accum     renderer.Accumulator
	grid      *systems.AngleGrid

	frame    int
	lastWall float64
	lastTime float64

	perf          *telemetry.PerfCollector
	collector     *telemetry.Collector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewSimulation creates a simulation over opts.Region. The accumulator must
// already be sized to the region.
func NewSimulation(opts SimulationOptions) *Simulation {
	uniform := opts.Simulation.Normalization == config.NormalizeUniform
	s := &Simulation{
		cfg:           opts.Simulation,
		pcfg:          opts.Particles,
		region:        opts.Region,
		seed:          opts.Seed,
		field:         opts.Field,
		clock:         systems.NewClock(opts.Simulation.Speed, opts.Simulation.Running),
		sampler:       systems.NewSampler(opts.Field, uniform),
		accum:         opts.Accumulator,
		perf:          telemetry.NewPerfCollector(opts.PerfWindow),
		collector:     telemetry.NewCollector(opts.WindowFrames),
		output:        opts.Output,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	s.particles = systems.NewParticleSystem(opts.Field, opts.Region, opts.Particles, uniform, opts.Seed)
	return s
}

// Step advances one frame at wall-clock time wall (seconds since start):
// sample the angle grid, then advect the particles and paint them into
// the accumulation buffer.
func (s *Simulation) Step(wall float64) Frame {
	s.perf.StartStep()

	s.perf.StartPhase(telemetry.PhaseGrid)
	t := s.clock.EffectiveTime(wall)
	s.grid = s.sampler.ComputeInto(s.grid, s.region, s.cfg.Step, s.cfg.Frequency, t, s.cfg.MaxAngle)

	frame := Frame{Index: s.frame, Time: t, Grid: s.grid}

	if s.pcfg.Enabled {
		s.perf.StartPhase(telemetry.PhaseAdvect)
		s.particles.Advance(t, s.cfg.Frequency, s.cfg.MaxAngle)

		s.perf.StartPhase(telemetry.PhasePaint)
		s.accum.PaintInto(func(surf renderer.Surface) {
			s.particles.Render(surf)
		})
		frame.Particles = s.particles.Particles()
	}

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.lastWall, s.lastTime = wall, t
	s.collector.RecordFrame(s.frame, t)
	s.flushTelemetry(frame)

	s.perf.EndStep()
	s.frame++
	return frame
}

// flushTelemetry emits window statistics when the window is complete.
func (s *Simulation) flushTelemetry(frame Frame) {
	if !s.collector.ShouldFlush(s.frame) {
		return
	}

	stats := s.collector.Flush(telemetry.FrameState{
		Frame:     s.frame,
		WallTime:  s.lastWall,
		FieldTime: frame.Time,
		Running:   s.clock.Running(),
		Grid:      frame.Grid,
		Particles: frame.Particles,
		Container: s.region,
	})
	perfStats := s.perf.Stats()

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.output != nil {
		if err := s.output.WriteFrameStats(stats); err != nil {
			slog.Error("failed to write frame stats", "error", err)
		}
		if err := s.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// ResetParticles respawns the particle population and clears the trails.
func (s *Simulation) ResetParticles() {
	s.particles.Reset()
	w, h := s.accum.Size()
	s.accum.Reset(w, h)
	s.collector.RecordReset()
}

// Resize moves the simulation to a new canvas region. The accumulation
// buffer is reallocated at the new size, which clears it; particles keep
// their positions and spawn into the new region from now on.
func (s *Simulation) Resize(region systems.Region) {
	s.region = region
	s.particles.Resize(region)
	s.accum.Reset(int(region.W), int(region.H))
}

// SetRunning starts or pauses time at wall without a jump in effective time.
func (s *Simulation) SetRunning(wall float64, running bool) {
	s.clock.SetRunning(wall, running)
	s.cfg.Running = s.clock.Running()
}

// ToggleRunning flips between running and paused at wall.
func (s *Simulation) ToggleRunning(wall float64) {
	s.clock.Toggle(wall)
	s.cfg.Running = s.clock.Running()
}

// SetConfig applies a new live configuration. Running is owned by the
// clock and only changes through SetRunning and ToggleRunning.
func (s *Simulation) SetConfig(cfg config.SimulationConfig) {
	if cfg.Speed != s.cfg.Speed {
		s.clock.SetSpeed(cfg.Speed)
	}
	if cfg.Normalization != s.cfg.Normalization {
		uniform := cfg.Normalization == config.NormalizeUniform
		s.sampler.SetUniform(uniform)
		s.particles.SetUniform(uniform)
	}
	cfg.Running = s.clock.Running()
	s.cfg = cfg
}

// SetParticleConfig applies new particle parameters. A strategy change
// rebuilds the population; anything else keeps existing particles.
func (s *Simulation) SetParticleConfig(cfg config.ParticleConfig) {
	if cfg.Strategy != s.pcfg.Strategy {
		uniform := s.cfg.Normalization == config.NormalizeUniform
		s.particles = systems.NewParticleSystem(s.field, s.region, cfg, uniform, s.seed)
		w, h := s.accum.Size()
		s.accum.Reset(w, h)
	} else {
		s.particles.Reconfigure(cfg)
	}
	s.pcfg = cfg
}

// SetFade changes how quickly old trails fade (0 = never).
func (s *Simulation) SetFade(fade uint8) {
	s.accum.SetFade(fade)
}

// Config returns the live configuration.
func (s *Simulation) Config() config.SimulationConfig {
	return s.cfg
}

// ParticleConfig returns the live particle configuration.
func (s *Simulation) ParticleConfig() config.ParticleConfig {
	return s.pcfg
}

// Accumulator returns the trail buffer.
func (s *Simulation) Accumulator() renderer.Accumulator {
	return s.accum
}

// Particles returns the particle system.
func (s *Simulation) Particles() systems.ParticleSystem {
	return s.particles
}

// Grid returns the most recent angle grid, nil before the first Step.
func (s *Simulation) Grid() *systems.AngleGrid {
	return s.grid
}

// Region returns the canvas region.
func (s *Simulation) Region() systems.Region {
	return s.region
}

// Running reports whether time is advancing.
func (s *Simulation) Running() bool {
	return s.clock.Running()
}

// Time returns the effective time of the last Step.
func (s *Simulation) Time() float64 {
	return s.lastTime
}

// FrameIndex returns the number of frames stepped so far.
func (s *Simulation) FrameIndex() int {
	return s.frame
}

// Perf returns the performance collector.
func (s *Simulation) Perf() *telemetry.PerfCollector {
	return s.perf
}
