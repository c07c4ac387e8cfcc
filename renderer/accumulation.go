package renderer

import (
	"image"
	"image/color"
)

// Accumulator is a persistent raster that is painted onto without being
// cleared, so successive frames leave trails. Only Reset clears it.
//
// The owner must call Reset with the new canvas size after every resize;
// painting into a buffer of the old size produces a mismatched composite.
type Accumulator interface {
	// PaintInto runs paint against the buffer, on top of what is already there.
	PaintInto(paint func(Surface))
	// Reset replaces the buffer with a cleared one of size w x h.
	Reset(w, h int)
	// Size returns the buffer dimensions.
	Size() (int, int)
	// SetFade sets how much existing marks fade before each paint (0 = never).
	SetFade(fade uint8)
	// Unload releases any resources held by the buffer.
	Unload()
}

// ImageAccumulator keeps the trail buffer in CPU memory.
// It backs headless runs, snapshots and tests.
type ImageAccumulator struct {
	surface *ImageSurface
	fade    uint8
}

// NewImageAccumulator creates a cleared w x h buffer. A non-zero fade scales
// every existing pixel by (255-fade)/255 before each paint.
func NewImageAccumulator(w, h int, fade uint8) *ImageAccumulator {
	a := &ImageAccumulator{fade: fade}
	a.Reset(w, h)
	return a
}

// PaintInto runs paint against the buffer, on top of what is already there.
func (a *ImageAccumulator) PaintInto(paint func(Surface)) {
	if a.fade > 0 {
		fadeImage(a.surface.Image(), 255-a.fade)
	}
	paint(a.surface)
}

// Reset replaces the buffer with a transparent one of size w x h.
func (a *ImageAccumulator) Reset(w, h int) {
	a.surface = NewImageSurface(w, h)
}

// Size returns the buffer dimensions.
func (a *ImageAccumulator) Size() (int, int) {
	return a.surface.Size()
}

// SetFade changes the per-paint fade amount.
func (a *ImageAccumulator) SetFade(fade uint8) {
	a.fade = fade
}

// Image returns the buffer contents. It is not a copy.
func (a *ImageAccumulator) Image() *image.RGBA {
	return a.surface.Image()
}

// At returns the buffer colour at pixel (x, y).
func (a *ImageAccumulator) At(x, y int) color.RGBA {
	return a.surface.Image().RGBAAt(x, y)
}

// Unload is a no-op; the buffer is garbage collected.
func (a *ImageAccumulator) Unload() {}

// fadeImage scales every channel of a premultiplied image by keep/255.
func fadeImage(img *image.RGBA, keep uint8) {
	k := uint32(keep)
	pix := img.Pix
	for i := range pix {
		pix[i] = uint8(uint32(pix[i]) * k / 255)
	}
}
