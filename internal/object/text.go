package object

import (
	"image/color"

	"github.com/tomz197/cybertyper/internal/draw"
)

// Floating text tuning.
const (
	FloatingTextLife     = 255
	FloatingTextFade     = 5  // Life lost per frame
	FloatingTextRise     = -2 // Vertical drift per frame
	FloatingTextFontSize = 30
)

// FloatingText is a short-lived label that drifts upwards and fades out.
type FloatingText struct {
	X, Y  float64
	VY    float64
	Text  string
	Color color.NRGBA
	Life  int
}

// NewFloatingText creates a label at (x, y).
func NewFloatingText(x, y float64, text string, c color.NRGBA) *FloatingText {
	return &FloatingText{
		X:     x,
		Y:     y,
		VY:    FloatingTextRise,
		Text:  text,
		Color: c,
		Life:  FloatingTextLife,
	}
}

// Update drifts and fades the label.
func (f *FloatingText) Update() bool {
	f.Y += f.VY
	f.Life -= FloatingTextFade
	return f.Life <= 0
}

// Draw renders the label with alpha equal to its remaining life.
func (f *FloatingText) Draw(ctx DrawContext) {
	if f.Life <= 0 {
		return
	}
	ctx.Surface.DrawText(f.Text, f.X+ctx.Offset.X, f.Y+ctx.Offset.Y, FloatingTextFontSize, draw.WithAlpha(f.Color, f.Life))
}
