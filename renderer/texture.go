package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// OpenGL blend constants for the fade pass.
const (
	glZero     = 0
	glSrcAlpha = 0x0302
	glFuncAdd  = 0x8006
)

// TextureAccumulator keeps the trail buffer in a GPU render texture.
// Must be created after the raylib window exists.
type TextureAccumulator struct {
	target rl.RenderTexture2D
	width  int
	height int
	fade   uint8
	loaded bool
}

// NewTextureAccumulator allocates a cleared w x h render texture.
func NewTextureAccumulator(w, h int, fade uint8) *TextureAccumulator {
	t := &TextureAccumulator{fade: fade}
	t.Reset(w, h)
	return t
}

// PaintInto runs paint inside texture mode without clearing the target.
func (t *TextureAccumulator) PaintInto(paint func(Surface)) {
	rl.BeginTextureMode(t.target)
	if t.fade > 0 {
		// dst = dst * srcAlpha, applied to colour and alpha alike
		rl.SetBlendFactors(glZero, glSrcAlpha, glFuncAdd)
		rl.BeginBlendMode(rl.BlendCustom)
		rl.DrawRectangle(0, 0, int32(t.width), int32(t.height), rl.Color{R: 255, G: 255, B: 255, A: 255 - t.fade})
		rl.EndBlendMode()
	}
	paint(NewScreenSurface(t.width, t.height))
	rl.EndTextureMode()
}

// Reset frees the current texture and allocates a transparent one.
func (t *TextureAccumulator) Reset(w, h int) {
	t.Unload()
	t.target = rl.LoadRenderTexture(int32(w), int32(h))
	t.width, t.height = w, h
	t.loaded = true

	rl.BeginTextureMode(t.target)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
}

// Size returns the buffer dimensions.
func (t *TextureAccumulator) Size() (int, int) {
	return t.width, t.height
}

// SetFade changes the per-paint fade amount.
func (t *TextureAccumulator) SetFade(fade uint8) {
	t.fade = fade
}

// Draw composites the buffer onto the current target at (x, y).
func (t *TextureAccumulator) Draw(x, y float32) {
	// Render textures are stored bottom-up; a negative source height flips them.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(t.width), Height: -float32(t.height)}
	rl.DrawTextureRec(t.target.Texture, src, rl.Vector2{X: x, Y: y}, rl.White)
}

// Unload frees the render texture.
func (t *TextureAccumulator) Unload() {
	if t.loaded {
		rl.UnloadRenderTexture(t.target)
		t.loaded = false
	}
}
