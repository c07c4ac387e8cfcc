package systems

import (
	"math"
	"testing"
)

func TestClock_PausedHoldsTime(t *testing.T) {
	c := NewClock(2, false)
	for _, wall := range []float64{0, 1, 10, 100} {
		if got := c.EffectiveTime(wall); got != 0 {
			t.Errorf("EffectiveTime(%v) = %v while paused, want 0", wall, got)
		}
	}
}

func TestClock_RunningAdvances(t *testing.T) {
	c := NewClock(0.5, true)
	if got := c.EffectiveTime(4); got != 2 {
		t.Errorf("EffectiveTime(4) = %v, want 2", got)
	}
}

func TestClock_ToggleContinuity(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		running bool
		toggles []float64 // wall times of each toggle
	}{
		{"pause then resume", 1, true, []float64{3, 7}},
		{"resume then pause", 0.1, false, []float64{2, 5}},
		{"many toggles", 3.5, true, []float64{0.5, 1.25, 4, 4.5, 9, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(tt.speed, tt.running)
			for _, wall := range tt.toggles {
				before := c.EffectiveTime(wall)
				c.Toggle(wall)
				after := c.EffectiveTime(wall)
				if math.Abs(before-after) > 1e-9 {
					t.Fatalf("toggle at %v jumped %v -> %v", wall, before, after)
				}
			}
		})
	}
}

func TestClock_PauseResumeRoundTrip(t *testing.T) {
	c := NewClock(1, true)
	c.Toggle(5) // pause at effective 5
	if got := c.EffectiveTime(8); got != 5 {
		t.Fatalf("paused time = %v, want 5", got)
	}
	c.Toggle(8) // resume
	if got := c.EffectiveTime(10); math.Abs(got-7) > 1e-9 {
		t.Errorf("time 2s after resume = %v, want 7", got)
	}
}

func TestClock_SetRunningNoOp(t *testing.T) {
	c := NewClock(1, true)
	c.SetRunning(5, true)
	if !c.Running() {
		t.Fatal("SetRunning(true) on running clock paused it")
	}
	if got := c.EffectiveTime(6); got != 6 {
		t.Errorf("EffectiveTime(6) = %v, want 6", got)
	}
	c.SetRunning(6, false)
	if c.Running() || c.EffectiveTime(9) != 6 {
		t.Errorf("SetRunning(false) did not freeze at 6: running=%v t=%v", c.Running(), c.EffectiveTime(9))
	}
}
