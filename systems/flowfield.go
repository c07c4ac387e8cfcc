package systems

import "math"

// WrappingParticles advects like SimpleParticles, then wraps particles that
// leave the container back in on the opposite edge. The particle population
// stays on screen for as long as the system runs.
type WrappingParticles struct {
	*SimpleParticles
}

// Advance moves each particle and wraps it into the container.
func (w *WrappingParticles) Advance(t, frequency, maxAngle float64) {
	w.SimpleParticles.Advance(t, frequency, maxAngle)

	c := w.container
	for _, e := range w.order {
		pos, _ := w.mapper.Get(e)
		pos.X = wrap(pos.X, c.X, c.W)
		pos.Y = wrap(pos.Y, c.Y, c.H)
	}
}

// wrap maps v into [origin, origin+extent).
func wrap(v, origin, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	r := math.Mod(v-origin, extent)
	if r < 0 {
		r += extent
	}
	if r >= extent {
		r = 0
	}
	return origin + r
}
