package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 2
}

// DrawSeparator draws a horizontal rule and returns the new Y position.
func (r *Renderer) DrawSeparator(x, y, width int32) int32 {
	rl.DrawLine(x, y+4, x+width, y+4, r.Theme.PanelBorder)
	return y + 10
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string, labelWidth int32) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+labelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// Slider draws a labelled linear slider and returns the new value and Y position.
func (r *Renderer) Slider(x, y, width int32, label, format string, value, min, max float64) (float64, int32) {
	got, valueY, ny := r.sliderRow(x, y, width, label, value, min, max)
	r.drawSliderValue(x, valueY, width, fmt.Sprintf(format, got))
	return got, ny
}

// LogSlider is Slider with a logarithmic scale. min must be positive.
func (r *Renderer) LogSlider(x, y, width int32, label, format string, value, min, max float64) (float64, int32) {
	pos := math.Log10(math.Max(value, min))
	got, valueY, ny := r.sliderRow(x, y, width, label, pos, math.Log10(min), math.Log10(max))
	if got == pos {
		got = value
	} else {
		got = math.Pow(10, got)
	}
	r.drawSliderValue(x, valueY, width, fmt.Sprintf(format, got))
	return got, ny
}

// sliderRow draws the label and slider bar. It returns the slider value,
// the Y of the bar and the Y of the next row.
func (r *Renderer) sliderRow(x, y, width int32, label string, value, min, max float64) (float64, int32, int32) {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight

	bounds := rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width - r.Theme.ValueWidth),
		Height: float32(r.Theme.SliderHeight),
	}
	got := float64(gui.SliderBar(bounds, "", "", float32(value), float32(min), float32(max)))
	// Only report a change when the widget moved, so float32 rounding never
	// rewrites a value loaded from config.
	if float32(got) == float32(value) {
		got = value
	}
	return got, y, y + r.Theme.SliderHeight + 6
}

func (r *Renderer) drawSliderValue(x, y, width int32, text string) {
	rl.DrawText(text, x+width-r.Theme.ValueWidth+6, y+2, r.Theme.FontSize, r.Theme.ValueColor)
}

// IntSlider is Slider for integer values.
func (r *Renderer) IntSlider(x, y, width int32, label string, value, min, max int) (int, int32) {
	got, ny := r.Slider(x, y, width, label, "%.0f", float64(value), float64(min), float64(max))
	return int(math.Round(got)), ny
}

// Button draws a button of the given width and reports whether it was clicked.
func (r *Renderer) Button(x, y, width int32, text string) bool {
	return gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(r.Theme.ButtonHeight)}, text)
}

// CheckBox draws a checkbox and returns its new state.
func (r *Renderer) CheckBox(x, y int32, text string, checked bool) bool {
	size := float32(r.Theme.SliderHeight)
	return gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: size, Height: size}, text, checked)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
