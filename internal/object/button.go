package object

import (
	"github.com/tomz197/cybertyper/internal/physics"
)

// Button geometry.
const (
	ButtonWidth    = 200
	ButtonHeight   = 50
	ButtonFontSize = 50
)

// Button is a clickable menu entry with a bound action.
type Button struct {
	Label   string
	Rect    physics.Rect
	Hovered bool
	action  func()
}

// NewButton creates a button centered on (cx, cy).
func NewButton(label string, cx, cy float64, action func()) *Button {
	return &Button{
		Label:  label,
		Rect:   physics.CenteredRect(cx, cy, ButtonWidth, ButtonHeight),
		action: action,
	}
}

// CheckHover updates the hover flag for the pointer position.
func (b *Button) CheckHover(x, y float64) {
	b.Hovered = b.Rect.Contains(x, y)
}

// HandleClick runs the action if the button is hovered and reports whether it did.
func (b *Button) HandleClick() bool {
	if !b.Hovered || b.action == nil {
		return false
	}
	b.action()
	return true
}

// Draw renders the outline and the centered label. Buttons are not shaken.
func (b *Button) Draw(ctx DrawContext) {
	c := ctx.Palette.Muted
	if b.Hovered {
		c = ctx.Palette.NeonCyan
	}
	ctx.Surface.StrokeRect(b.Rect, c)

	cx, cy := b.Rect.Center()
	w, h := ctx.Surface.MeasureText(b.Label, ButtonFontSize)
	ctx.Surface.DrawText(b.Label, cx-w/2, cy-h/2, ButtonFontSize, c)
}
