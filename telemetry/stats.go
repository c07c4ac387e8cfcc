package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int     `csv:"-"`
	WindowEndFrame   int     `csv:"window_end"`
	WallTimeSec      float64 `csv:"wall_time"`
	FieldTime        float64 `csv:"field_time"`
	FieldTimeAdvance float64 `csv:"field_time_advance"` // field time gained over the window
	Running          bool    `csv:"running"`

	// Angle grid at window end
	Cells         int     `csv:"cells"`
	AngleMean     float64 `csv:"angle_mean"`
	AngleStd      float64 `csv:"angle_std"`
	AngleCircMean float64 `csv:"angle_circ_mean"`
	AngleP10      float64 `csv:"angle_p10"`
	AngleP50      float64 `csv:"angle_p50"`
	AngleP90      float64 `csv:"angle_p90"`

	// Particles at window end
	Particles    int     `csv:"particles"`
	Visible      int     `csv:"visible"`
	VisibleFrac  float64 `csv:"visible_frac"`
	Resets       int     `csv:"resets"`        // particle resets during window
	MeanDistance float64 `csv:"mean_distance"` // mean distance from the container centre
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// AngleStats holds summary statistics of a set of angles.
type AngleStats struct {
	Mean, Std     float64
	CircMean      float64
	P10, P50, P90 float64
}

// ComputeAngleStats summarises grid angles. The circular mean is the mean
// heading, which the linear mean misses for angles spanning the wrap point.
func ComputeAngleStats(angles []float64) AngleStats {
	if len(angles) == 0 {
		return AngleStats{}
	}

	var s AngleStats
	if len(angles) > 1 {
		s.Mean, s.Std = stat.MeanStdDev(angles, nil)
	} else {
		s.Mean = angles[0]
	}
	s.CircMean = stat.CircularMean(angles, nil)

	sorted := make([]float64, len(angles))
	copy(sorted, angles)
	sort.Float64s(sorted)

	s.P10 = Percentile(sorted, 0.10)
	s.P50 = Percentile(sorted, 0.50)
	s.P90 = Percentile(sorted, 0.90)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartFrame),
		slog.Int("window_end", s.WindowEndFrame),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Float64("field_time", s.FieldTime),
		slog.Float64("field_time_advance", s.FieldTimeAdvance),
		slog.Bool("running", s.Running),
		slog.Int("cells", s.Cells),
		slog.Float64("angle_mean", s.AngleMean),
		slog.Float64("angle_std", s.AngleStd),
		slog.Float64("angle_circ_mean", s.AngleCircMean),
		slog.Int("particles", s.Particles),
		slog.Int("visible", s.Visible),
		slog.Float64("visible_frac", s.VisibleFrac),
		slog.Int("resets", s.Resets),
		slog.Float64("mean_distance", roundTo(s.MeanDistance, 2)),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
