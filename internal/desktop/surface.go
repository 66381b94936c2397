package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/physics"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphHeight = 13 // basicfont.Face7x13 line height
	strokeWidth = 2
)

var fontFace = text.NewGoXFace(basicfont.Face7x13)

// Surface draws onto an Ebitengine image. The bitmap font is scaled to the
// requested size, which keeps the blocky look at every text size.
type Surface struct {
	dst *ebiten.Image
}

var _ draw.Surface = (*Surface)(nil)

// SetTarget selects the image for the following calls.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Fill(c color.NRGBA) {
	s.dst.Fill(c)
}

func (s *Surface) FillRect(r physics.Rect, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) StrokeRect(r physics.Rect, c color.NRGBA) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), strokeWidth, c, false)
}

func (s *Surface) DrawText(str string, x, y, size float64, c color.NRGBA) {
	if str == "" || c.A == 0 {
		return
	}
	scale := textScale(size)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, fontFace, op)
}

func (s *Surface) MeasureText(str string, size float64) (w, h float64) {
	w, _ = text.Measure(str, fontFace, 0)
	return w * textScale(size), size
}

// textScale converts a nominal line height to a glyph scale factor.
func textScale(size float64) float64 {
	return size / glyphHeight
}
