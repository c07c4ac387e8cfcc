// Package renderer provides rendering utilities.
package renderer

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// Surface is a 2D paint target in canvas coordinates (y grows downward).
// Colours are non-premultiplied.
type Surface interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	Line(x1, y1, x2, y2, width float64, c color.NRGBA)
	Triangle(a, b, c r2.Vec, col color.NRGBA)
	Clear(c color.NRGBA)
	Size() (int, int)
}

// ImageSurface paints onto an in-memory image through a gg context.
type ImageSurface struct {
	dc *gg.Context
}

// NewImageSurface creates a transparent w x h image surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{dc: gg.NewContext(w, h)}
}

// FillRect fills an axis-aligned rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// Line strokes a segment.
func (s *ImageSurface) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// Triangle fills a triangle.
func (s *ImageSurface) Triangle(a, b, c r2.Vec, col color.NRGBA) {
	s.dc.SetColor(col)
	s.dc.MoveTo(a.X, a.Y)
	s.dc.LineTo(b.X, b.Y)
	s.dc.LineTo(c.X, c.Y)
	s.dc.ClosePath()
	s.dc.Fill()
}

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Image returns the backing image. It is not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}

// DrawImage composites img onto the surface at (x, y).
func (s *ImageSurface) DrawImage(img image.Image, x, y int) {
	s.dc.DrawImage(img, x, y)
}

// Context exposes the gg context for text and other extras.
func (s *ImageSurface) Context() *gg.Context {
	return s.dc
}

// ScreenSurface paints with raylib immediate-mode calls onto whatever target
// is active: the window or a render texture inside BeginTextureMode.
type ScreenSurface struct {
	width, height int
}

// NewScreenSurface creates a raylib surface of the given size.
func NewScreenSurface(w, h int) *ScreenSurface {
	return &ScreenSurface{width: w, height: h}
}

// FillRect fills an axis-aligned rectangle.
func (s *ScreenSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	rl.DrawRectangleRec(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, toRL(c))
}

// Line strokes a segment.
func (s *ScreenSurface) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		rl.Vector2{X: float32(x2), Y: float32(y2)},
		float32(width),
		toRL(c),
	)
}

// Triangle fills a triangle in either winding.
func (s *ScreenSurface) Triangle(a, b, c r2.Vec, col color.NRGBA) {
	// raylib only fills counter-clockwise triangles as seen on screen
	if r2.Cross(r2.Sub(b, a), r2.Sub(c, a)) > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(toVec(a), toVec(b), toVec(c), toRL(col))
}

// Clear replaces every pixel with c.
func (s *ScreenSurface) Clear(c color.NRGBA) {
	rl.ClearBackground(toRL(c))
}

// Size returns the surface dimensions in pixels.
func (s *ScreenSurface) Size() (int, int) {
	return s.width, s.height
}

func toRL(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toVec(v r2.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
