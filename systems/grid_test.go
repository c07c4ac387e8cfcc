package systems

import (
	"math"
	"testing"
)

// constField returns the same sample everywhere.
type constField float64

func (c constField) Sample(x, y, z float64) float64 { return float64(c) }

// yField returns y, so tests can see the normalized vertical coordinate.
type yField struct{}

func (yField) Sample(x, y, z float64) float64 { return y }

func TestGridSize(t *testing.T) {
	tests := []struct {
		region Region
		step   int
		w, h   int
	}{
		{NewRegion(200, 100), 50, 5, 3},
		{NewRegion(200, 100), 1, 201, 101},
		{NewRegion(199, 99), 50, 4, 2},
		{NewRegion(10, 10), 100, 1, 1},
	}

	for _, tt := range tests {
		w, h := GridSize(tt.region, tt.step)
		if w != tt.w || h != tt.h {
			t.Errorf("GridSize(%v, %d) = %dx%d, want %dx%d", tt.region, tt.step, w, h, tt.w, tt.h)
		}
	}
}

func TestSampler_Compute(t *testing.T) {
	s := NewSampler(NewPerlinNoise(1), false)
	g := s.Compute(NewRegion(200, 100), 50, 1, 0.3, 2*math.Pi)

	if g.Width != 5 || g.Height != 3 || g.Len() != 15 {
		t.Fatalf("grid = %dx%d (%d cells), want 5x3 (15)", g.Width, g.Height, g.Len())
	}
	if x, y := g.CellPoint(4, 2); x != 200 || y != 100 {
		t.Errorf("CellPoint(4, 2) = (%v, %v), want (200, 100)", x, y)
	}
}

func TestSampler_ZeroMaxAngle(t *testing.T) {
	s := NewSampler(NewPerlinNoise(9), false)
	g := s.Compute(NewRegion(320, 240), 16, 3, 1.7, 0)
	for i, a := range g.Angles {
		if a != 0 {
			t.Fatalf("angle %d = %v, want 0 with maxAngle 0", i, a)
		}
	}
}

func TestSampler_AngleScale(t *testing.T) {
	s := NewSampler(constField(0.5), false)
	g := s.Compute(NewRegion(100, 100), 25, 1, 0, math.Pi)
	for i, a := range g.Angles {
		if math.Abs(a-math.Pi/2) > 1e-12 {
			t.Fatalf("angle %d = %v, want pi/2", i, a)
		}
	}
}

func TestSampler_Deterministic(t *testing.T) {
	field := NewPerlinNoise(5)
	a := NewSampler(field, false).Compute(NewRegion(300, 200), 20, 2.5, 0.8, 2*math.Pi)
	b := NewSampler(field, false).Compute(NewRegion(300, 200), 20, 2.5, 0.8, 2*math.Pi)
	for i := range a.Angles {
		if a.Angles[i] != b.Angles[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, a.Angles[i], b.Angles[i])
		}
	}
}

func TestSampler_ComputeIntoReuses(t *testing.T) {
	s := NewSampler(NewPerlinNoise(1), false)
	g := s.Compute(NewRegion(400, 400), 10, 1, 0, 1)
	backing := &g.Angles[0]

	g2 := s.ComputeInto(g, NewRegion(200, 100), 50, 1, 0, 1)
	if g2 != g {
		t.Fatal("ComputeInto returned a different grid")
	}
	if &g2.Angles[0] != backing {
		t.Error("ComputeInto reallocated a large enough slice")
	}
	if g2.Len() != 15 {
		t.Errorf("Len = %d, want 15", g2.Len())
	}
}

func TestNormalizer(t *testing.T) {
	tests := []struct {
		name    string
		region  Region
		uniform bool
		x, y    float64
		nx, ny  float64
	}{
		{"axis top-left", NewRegion(200, 100), false, 0, 0, 1, 1},
		{"axis bottom-right", NewRegion(200, 100), false, 200, 100, 0, 0},
		{"axis centre", NewRegion(200, 100), false, 100, 50, 0.5, 0.5},
		{"uniform top-left", NewRegion(200, 100), true, 0, 0, 1, 0.5},
		{"uniform centre", NewRegion(200, 100), true, 100, 50, 0.5, 0.25},
		{"offset region", Region{X: 10, Y: 20, W: 100, H: 100}, false, 10, 20, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := NewNormalizer(tt.region, tt.uniform).Normalize(tt.x, tt.y)
			if math.Abs(nx-tt.nx) > 1e-12 || math.Abs(ny-tt.ny) > 1e-12 {
				t.Errorf("Normalize(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, nx, ny, tt.nx, tt.ny)
			}
		})
	}
}

func TestSampler_SetUniform(t *testing.T) {
	s := NewSampler(yField{}, false)
	region := NewRegion(200, 100)

	axis := s.Compute(region, 100, 1, 0, 1)
	s.SetUniform(true)
	uniform := s.Compute(region, 100, 1, 0, 1)

	// Top row: 100/100 under axis, 100/200 under uniform.
	if axis.At(0, 0) != 1 {
		t.Errorf("axis top row = %v, want 1", axis.At(0, 0))
	}
	if uniform.At(0, 0) != 0.5 {
		t.Errorf("uniform top row = %v, want 0.5", uniform.At(0, 0))
	}
	// Bottom row sits on the bottom edge under both.
	if axis.At(0, 1) != 0 || uniform.At(0, 1) != 0 {
		t.Errorf("bottom row = %v / %v, want 0", axis.At(0, 1), uniform.At(0, 1))
	}
	if !s.Uniform() {
		t.Error("Uniform() = false after SetUniform(true)")
	}
}

func TestRegion(t *testing.T) {
	r := Region{X: 10, Y: 20, W: 30, H: 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges = (%v, %v), want (40, 60)", r.Right(), r.Bottom())
	}
	if !r.Contains(10, 20) || r.Contains(40, 30) || r.Contains(5, 30) {
		t.Error("Contains is not half-open on the region")
	}
	if r.Empty() || !NewRegion(0, 10).Empty() {
		t.Error("Empty misreports area")
	}
}
