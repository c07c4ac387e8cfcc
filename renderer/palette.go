package renderer

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"

	"github.com/pthm-cable/vectorfield/config"
)

// Palette maps field angles to heatmap colours.
type Palette struct {
	gradient colorgrad.Gradient
}

// NewPalette creates a palette with the Viridis ramp for gradient mode.
func NewPalette() *Palette {
	return &Palette{gradient: colorgrad.Viridis()}
}

// CellColor returns the heatmap colour for angle in the given mode.
// Unknown modes fall back to gray.
func (p *Palette) CellColor(angle float64, mode string) color.NRGBA {
	switch mode {
	case config.ColorHue:
		h := math.Mod(angle, 2*math.Pi)
		if h < 0 {
			h += 2 * math.Pi
		}
		r, g, b := colorful.Hsv(h*360/(2*math.Pi), 1, 1).RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	case config.ColorGradient:
		r, g, b := p.gradient.At(cosUnit(angle)).RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	default:
		v := uint8(math.Round(cosUnit(angle) * 255))
		return color.NRGBA{R: v, G: v, B: v, A: 255}
	}
}

// cosUnit maps cos(angle) from [-1, 1] onto [0, 1].
func cosUnit(angle float64) float64 {
	return (math.Cos(angle) + 1) / 2
}
