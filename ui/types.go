// Package ui provides the raygui settings panel and HUD drawn over the field.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Padding        int32
	LineHeight     int32
	SliderHeight   int32
	ButtonHeight   int32
	ValueWidth     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 230},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		Padding:        10,
		LineHeight:     16,
		SliderHeight:   16,
		ButtonHeight:   24,
		ValueWidth:     56,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// Actions reports what the user asked for during one panel frame.
type Actions struct {
	ToggleRunning     bool
	ResetParticles    bool
	SimulationChanged bool
	ParticlesChanged  bool
	FadeChanged       bool
}

// Any reports whether any action was requested.
func (a Actions) Any() bool {
	return a.ToggleRunning || a.ResetParticles || a.SimulationChanged || a.ParticlesChanged || a.FadeChanged
}
