package systems

// Clock produces the noise time coordinate from wall-clock time.
//
// While running, the effective time is wall*speed - reference. While paused
// it is reference itself. Toggling rewrites reference so the effective time
// is the same on both sides of the transition.
type Clock struct {
	running   bool
	speed     float64
	reference float64
}

// NewClock creates a clock starting at effective time 0.
func NewClock(speed float64, running bool) *Clock {
	return &Clock{speed: speed, running: running}
}

// EffectiveTime returns the noise time coordinate at wall time wall.
func (c *Clock) EffectiveTime(wall float64) float64 {
	if c.running {
		return wall*c.speed - c.reference
	}
	return c.reference
}

// Toggle switches between running and paused at wall time wall.
func (c *Clock) Toggle(wall float64) {
	current := c.EffectiveTime(wall)
	if c.running {
		c.reference = current
	} else {
		c.reference = wall*c.speed - current
	}
	c.running = !c.running
}

// SetRunning moves the clock to the requested state. No-op if already there.
func (c *Clock) SetRunning(wall float64, running bool) {
	if c.running != running {
		c.Toggle(wall)
	}
}

// Running reports whether time is advancing.
func (c *Clock) Running() bool {
	return c.running
}

// SetSpeed changes the speed multiplier. While running this shifts the
// effective time; the jump is accepted since speed is a live parameter.
func (c *Clock) SetSpeed(speed float64) {
	c.speed = speed
}

// Speed returns the speed multiplier.
func (c *Clock) Speed() float64 {
	return c.speed
}
