package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/pthm-cable/vectorfield/systems"
)

// Snapshot composes the field overlay and the trail buffer into one image,
// layered the same way the window is: background, heatmap, trails, arrows.
type Snapshot struct {
	Background color.NRGBA
	Field      *FieldRenderer
	face       font.Face
}

// NewSnapshot creates a snapshot composer with a monospace caption font.
func NewSnapshot(background color.NRGBA, field *FieldRenderer) (*Snapshot, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing caption font: %w", err)
	}
	return &Snapshot{
		Background: background,
		Field:      field,
		face: truetype.NewFace(ttf, &truetype.Options{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// Compose renders one frame. grid may be nil to skip the field layers.
func (s *Snapshot) Compose(grid *systems.AngleGrid, trails image.Image, opts FieldOptions, caption string) *image.RGBA {
	b := trails.Bounds()
	surf := NewImageSurface(b.Dx(), b.Dy())
	surf.Clear(s.Background)

	if grid != nil && opts.ShowValues {
		s.Field.DrawValues(surf, grid, opts.ColorMode)
	}
	surf.DrawImage(trails, 0, 0)
	if grid != nil && opts.ShowArrows {
		s.Field.DrawArrows(surf, grid)
	}

	if caption != "" {
		dc := surf.Context()
		dc.SetFontFace(s.face)
		dc.SetColor(color.White)
		dc.DrawString(caption, 8, float64(b.Dy())-8)
	}
	return surf.Image()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
