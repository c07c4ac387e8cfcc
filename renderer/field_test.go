package renderer

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/systems"
)

// recordSurface counts draw calls.
type recordSurface struct {
	rects, lines, triangles int
}

func (s *recordSurface) FillRect(x, y, w, h float64, c color.NRGBA) { s.rects++ }
func (s *recordSurface) Line(x1, y1, x2, y2, width float64, c color.NRGBA) { s.lines++ }
func (s *recordSurface) Triangle(a, b, c r2.Vec, col color.NRGBA) { s.triangles++ }
func (s *recordSurface) Clear(c color.NRGBA) {}
func (s *recordSurface) Size() (int, int) { return 0, 0 }

func testGrid() *systems.AngleGrid {
	return systems.NewSampler(systems.NewPerlinNoise(1), false).Compute(systems.NewRegion(200, 100), 50, 1, 0.5, 2*math.Pi)
}

func TestFieldRenderer_Layers(t *testing.T) {
	tests := []struct {
		name                    string
		opts                    FieldOptions
		rects, lines, triangles int
	}{
		{"nothing", FieldOptions{}, 0, 0, 0},
		{"values", FieldOptions{ShowValues: true, ColorMode: config.ColorGray}, 15, 0, 0},
		{"arrows", FieldOptions{ShowArrows: true}, 0, 15, 15},
		{"both", FieldOptions{ShowValues: true, ShowArrows: true, ColorMode: config.ColorHue}, 15, 15, 15},
	}

	r := NewFieldRenderer(color.NRGBA{A: 255})
	grid := testGrid()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s recordSurface
			r.Draw(&s, grid, tt.opts)
			if s.rects != tt.rects || s.lines != tt.lines || s.triangles != tt.triangles {
				t.Errorf("calls = %d/%d/%d, want %d/%d/%d", s.rects, s.lines, s.triangles, tt.rects, tt.lines, tt.triangles)
			}
		})
	}
}

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		step   float64
		length float64
		dir    r2.Vec
	}{
		{"right", 0, 50, 48, r2.Vec{X: 1}},
		{"down", math.Pi / 2, 50, 48, r2.Vec{Y: 1}},
		{"left", math.Pi, 20, 18, r2.Vec{X: -1}},
		{"tiny step clamps length", 0, 2, 1, r2.Vec{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ArrowGlyph(100, 100, tt.angle, tt.step, 2)
			tip := g.Head[0]

			// Centred on the cell point.
			mid := r2.Scale(0.5, r2.Add(g.Start, tip))
			if r2.Norm(r2.Sub(mid, r2.Vec{X: 100, Y: 100})) > 1e-9 {
				t.Errorf("glyph centre = %v, want (100, 100)", mid)
			}
			// Full length from tail to tip.
			if got := r2.Norm(r2.Sub(tip, g.Start)); math.Abs(got-tt.length) > 1e-9 {
				t.Errorf("length = %v, want %v", got, tt.length)
			}
			// Points along the angle.
			unit := r2.Unit(r2.Sub(tip, g.Start))
			if r2.Norm(r2.Sub(unit, tt.dir)) > 1e-9 {
				t.Errorf("direction = %v, want %v", unit, tt.dir)
			}
			// Shaft stops at the head base.
			base := r2.Scale(0.5, r2.Add(g.Head[1], g.Head[2]))
			if r2.Norm(r2.Sub(base, g.End)) > 1e-9 {
				t.Errorf("shaft end %v is not the head base %v", g.End, base)
			}
		})
	}
}

func TestImageSurface_FieldValues(t *testing.T) {
	grid := testGrid()
	s := NewImageSurface(250, 150)
	NewFieldRenderer(color.NRGBA{A: 255}).DrawValues(s, grid, config.ColorGray)

	// The interior of each cell carries that cell's gray level.
	p := NewPalette()
	for j := 0; j < grid.Height; j++ {
		for i := 0; i < grid.Width; i++ {
			x, y := grid.CellPoint(i, j)
			want := p.CellColor(grid.At(i, j), config.ColorGray)
			got := s.Image().RGBAAt(int(x)+25, int(y)+25)
			if got.R != want.R || got.A != 255 {
				t.Fatalf("cell (%d, %d) = %v, want gray %d", i, j, got, want.R)
			}
		}
	}
}
