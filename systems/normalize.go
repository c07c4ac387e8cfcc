package systems

import "math"

// Region is a canvas rectangle in screen coordinates (y grows downward).
type Region struct {
	X, Y float64
	W, H float64
}

// NewRegion returns a region with its origin at (0, 0).
func NewRegion(w, h float64) Region {
	return Region{W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Region) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Region) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside the region.
func (r Region) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Normalizer maps canvas points to unit noise coordinates.
//
// Coordinates are the distance to the right and bottom edges divided by an
// extent. With uniform set, both axes use the larger extent so the pattern
// keeps its proportions when the canvas aspect ratio changes; otherwise each
// axis uses its own extent and the pattern stretches with the canvas.
type Normalizer struct {
	region  Region
	extentX float64
	extentY float64
}

// NewNormalizer builds a normalizer for the region. The region must not be empty.
func NewNormalizer(region Region, uniform bool) Normalizer {
	n := Normalizer{region: region, extentX: region.W, extentY: region.H}
	if uniform {
		m := math.Max(region.W, region.H)
		n.extentX, n.extentY = m, m
	}
	return n
}

// Normalize returns the noise coordinates of canvas point (x, y).
func (n Normalizer) Normalize(x, y float64) (float64, float64) {
	return (n.region.Right() - x) / n.extentX, (n.region.Bottom() - y) / n.extentY
}

// Angle samples the field at canvas point (x, y) and scales it into radians.
func (n Normalizer) Angle(field NoiseField, x, y, frequency, t, maxAngle float64) float64 {
	nx, ny := n.Normalize(x, y)
	return field.Sample(nx*frequency, ny*frequency, t) * maxAngle
}
