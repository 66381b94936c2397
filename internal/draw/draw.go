// Package draw defines the rendering surface the game draws through and
// a terminal implementation of it.
package draw

import (
	"image/color"

	"github.com/tomz197/cybertyper/internal/physics"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Surface is a fixed-size logical drawing target. Coordinates are logical
// pixels; implementations scale them to their own resolution.
type Surface interface {
	// Fill paints the whole surface.
	Fill(c color.NRGBA)
	// FillRect paints a rectangle, blending by the colour's alpha.
	FillRect(r physics.Rect, c color.NRGBA)
	// StrokeRect outlines a rectangle.
	StrokeRect(r physics.Rect, c color.NRGBA)
	// DrawText draws s with its top-left corner at (x, y). size is the
	// nominal line height in logical pixels.
	DrawText(s string, x, y, size float64, c color.NRGBA)
	// MeasureText returns the logical width and height of s at size.
	MeasureText(s string, size float64) (w, h float64)
}

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 255].
func WithAlpha(c color.NRGBA, a int) color.NRGBA {
	switch {
	case a < 0:
		a = 0
	case a > 255:
		a = 255
	}
	c.A = uint8(a)
	return c
}

// Blend composites src over an opaque dst and returns an opaque colour.
func Blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(d)*(255-a) + uint32(s)*a + 127) / 255)
	}
	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 255,
	}
}

// CenterText returns the x at which s must start to be centered on cx.
func CenterText(s Surface, text string, size, cx float64) float64 {
	w, _ := s.MeasureText(text, size)
	return cx - w/2
}
