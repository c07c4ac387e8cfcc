package renderer

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/vectorfield/systems"
)

// FieldOptions selects what the field renderer draws.
type FieldOptions struct {
	ShowValues bool
	ShowArrows bool
	ColorMode  string
}

// Glyph is an arrow: a shaft from Start to the head base and a filled head.
type Glyph struct {
	Start, End r2.Vec
	Head       [3]r2.Vec
}

// FieldRenderer draws an angle grid as a heatmap and/or arrows.
// It holds no per-frame state.
type FieldRenderer struct {
	ArrowColor   color.NRGBA
	StrokeWeight float64
	palette      *Palette
}

// NewFieldRenderer creates a field renderer.
func NewFieldRenderer(arrowColor color.NRGBA) *FieldRenderer {
	return &FieldRenderer{
		ArrowColor:   arrowColor,
		StrokeWeight: 2,
		palette:      NewPalette(),
	}
}

// Draw renders the enabled layers, values below arrows.
func (r *FieldRenderer) Draw(s Surface, grid *systems.AngleGrid, opts FieldOptions) {
	if opts.ShowValues {
		r.DrawValues(s, grid, opts.ColorMode)
	}
	if opts.ShowArrows {
		r.DrawArrows(s, grid)
	}
}

// DrawValues paints one step x step heatmap cell per grid point.
func (r *FieldRenderer) DrawValues(s Surface, grid *systems.AngleGrid, mode string) {
	for j := 0; j < grid.Height; j++ {
		for i := 0; i < grid.Width; i++ {
			x, y := grid.CellPoint(i, j)
			s.FillRect(x, y, grid.Step, grid.Step, r.palette.CellColor(grid.At(i, j), mode))
		}
	}
}

// DrawArrows paints one arrow per grid point, centred on the point.
func (r *FieldRenderer) DrawArrows(s Surface, grid *systems.AngleGrid) {
	for j := 0; j < grid.Height; j++ {
		for i := 0; i < grid.Width; i++ {
			x, y := grid.CellPoint(i, j)
			g := ArrowGlyph(x, y, grid.At(i, j), grid.Step, r.StrokeWeight)
			s.Line(g.Start.X, g.Start.Y, g.End.X, g.End.Y, r.StrokeWeight, r.ArrowColor)
			s.Triangle(g.Head[0], g.Head[1], g.Head[2], r.ArrowColor)
		}
	}
}

// ArrowGlyph builds the arrow for a cell centred at (x, y). The arrow is
// step-2 pixels long (at least 1) and points along angle.
func ArrowGlyph(x, y, angle, step, stroke float64) Glyph {
	length := math.Max(step-2, 1)
	dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	center := r2.Vec{X: x, Y: y}
	half := r2.Scale(length/2, dir)
	start := r2.Sub(center, half)
	tip := r2.Add(center, half)

	headLen := math.Min(stroke*3, length/2)
	base := r2.Sub(tip, r2.Scale(headLen, dir))
	side := r2.Scale(headLen/2, r2.Vec{X: -dir.Y, Y: dir.X})

	return Glyph{
		Start: start,
		End:   base,
		Head:  [3]r2.Vec{tip, r2.Add(base, side), r2.Sub(base, side)},
	}
}
