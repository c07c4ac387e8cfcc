package telemetry

import (
	"math"

	"github.com/pthm-cable/vectorfield/systems"
)

// Collector accumulates frames within windows and produces WindowStats.
type Collector struct {
	windowFrames int

	// Current window tracking
	windowStartFrame int
	windowStartTime  float64
	started          bool
	resets           int
}

// NewCollector creates a new stats collector flushing every windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{windowFrames: windowFrames}
}

// RecordFrame marks the start of the window on the first recorded frame.
func (c *Collector) RecordFrame(frame int, fieldTime float64) {
	if !c.started {
		c.windowStartFrame = frame
		c.windowStartTime = fieldTime
		c.started = true
	}
}

// RecordReset records a particle reset.
func (c *Collector) RecordReset() {
	c.resets++
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(frame int) bool {
	return c.started && frame-c.windowStartFrame+1 >= c.windowFrames
}

// FrameState is what the collector reads from the simulation at flush time.
type FrameState struct {
	Frame     int
	WallTime  float64
	FieldTime float64
	Running   bool
	Grid      *systems.AngleGrid
	Particles []systems.Particle
	Container systems.Region
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(fs FrameState) WindowStats {
	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   fs.Frame,
		WallTimeSec:      fs.WallTime,
		FieldTime:        fs.FieldTime,
		FieldTimeAdvance: fs.FieldTime - c.windowStartTime,
		Running:          fs.Running,
		Resets:           c.resets,
		Particles:        len(fs.Particles),
	}

	if fs.Grid != nil {
		a := ComputeAngleStats(fs.Grid.Angles)
		stats.Cells = fs.Grid.Len()
		stats.AngleMean = a.Mean
		stats.AngleStd = a.Std
		stats.AngleCircMean = a.CircMean
		stats.AngleP10 = a.P10
		stats.AngleP50 = a.P50
		stats.AngleP90 = a.P90
	}

	if n := len(fs.Particles); n > 0 {
		cx := fs.Container.X + fs.Container.W/2
		cy := fs.Container.Y + fs.Container.H/2
		var dist float64
		for _, p := range fs.Particles {
			if fs.Container.Contains(p.Pos.X, p.Pos.Y) {
				stats.Visible++
			}
			dist += math.Hypot(p.Pos.X-cx, p.Pos.Y-cy)
		}
		stats.VisibleFrac = float64(stats.Visible) / float64(n)
		stats.MeanDistance = dist / float64(n)
	}

	// Reset for next window
	c.started = false
	c.resets = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int {
	return c.windowFrames
}
