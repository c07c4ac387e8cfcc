package systems

// AngleGrid is a row-major grid of field angles in radians.
type AngleGrid struct {
	Width  int
	Height int
	Step   float64
	Origin Region // region the grid was sampled over
	Angles []float64
}

// GridSize returns the cell counts for a region sampled every step pixels.
func GridSize(region Region, step int) (int, int) {
	return int(region.W)/step + 1, int(region.H)/step + 1
}

// Index returns the slice index of cell (i, j).
func (g *AngleGrid) Index(i, j int) int {
	return j*g.Width + i
}

// At returns the angle of cell (i, j).
func (g *AngleGrid) At(i, j int) float64 {
	return g.Angles[j*g.Width+i]
}

// CellPoint returns the canvas position of cell (i, j).
func (g *AngleGrid) CellPoint(i, j int) (float64, float64) {
	return g.Origin.X + float64(i)*g.Step, g.Origin.Y + float64(j)*g.Step
}

// Len returns the number of cells.
func (g *AngleGrid) Len() int {
	return len(g.Angles)
}

// Sampler turns the noise field into an angle grid.
type Sampler struct {
	field   NoiseField
	uniform bool
}

// NewSampler creates a grid sampler over the shared field.
// uniform selects the aspect-preserving normalization.
func NewSampler(field NoiseField, uniform bool) *Sampler {
	return &Sampler{field: field, uniform: uniform}
}

// SetUniform switches the normalization convention.
func (s *Sampler) SetUniform(uniform bool) {
	s.uniform = uniform
}

// Uniform reports whether the aspect-preserving normalization is active.
func (s *Sampler) Uniform() bool {
	return s.uniform
}

// Field returns the shared noise field.
func (s *Sampler) Field() NoiseField {
	return s.field
}

// Compute samples a new grid. step must be >= 1 and region non-empty.
func (s *Sampler) Compute(region Region, step int, frequency, t, maxAngle float64) *AngleGrid {
	return s.ComputeInto(nil, region, step, frequency, t, maxAngle)
}

// ComputeInto samples into dst, reusing its backing slice when large enough.
// A nil dst allocates a new grid.
func (s *Sampler) ComputeInto(dst *AngleGrid, region Region, step int, frequency, t, maxAngle float64) *AngleGrid {
	if dst == nil {
		dst = &AngleGrid{}
	}
	w, h := GridSize(region, step)
	n := w * h
	if cap(dst.Angles) < n {
		dst.Angles = make([]float64, n)
	}
	dst.Angles = dst.Angles[:n]
	dst.Width = w
	dst.Height = h
	dst.Step = float64(step)
	dst.Origin = region

	norm := NewNormalizer(region, s.uniform)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			x, y := dst.CellPoint(i, j)
			dst.Angles[j*w+i] = norm.Angle(s.field, x, y, frequency, t, maxAngle)
		}
	}
	return dst
}
