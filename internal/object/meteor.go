package object

import (
	"math/rand"
	"strings"
)

// Meteor tuning.
const (
	MeteorSpawnY      = -60
	MeteorMarginLeft  = 50
	MeteorMarginRight = 150
	MeteorMinSpeed    = 1.0
	MeteorMaxSpeed    = 2.0
	MeteorFontSize    = 40
)

// Meteor is a falling word the player must type to destroy.
type Meteor struct {
	X, Y        float64
	Speed       float64 // Pixels per frame
	Text        string
	Highlighted bool // Input is a non-empty prefix of Text
}

// NewMeteor creates a meteor at the spawn height.
func NewMeteor(text string, x, speed float64) *Meteor {
	return &Meteor{
		X:     x,
		Y:     MeteorSpawnY,
		Speed: speed,
		Text:  text,
	}
}

// RandomMeteor creates a meteor at a random x in [50, screenWidth-150] with
// a base speed in [1, 2) plus the level's speed bonus.
func RandomMeteor(rng *rand.Rand, text string, screenWidth int, speedBonus float64) *Meteor {
	span := screenWidth - MeteorMarginRight - MeteorMarginLeft
	if span < 0 {
		span = 0
	}
	x := MeteorMarginLeft + rng.Intn(span+1)
	speed := MeteorMinSpeed + rng.Float64()*(MeteorMaxSpeed-MeteorMinSpeed) + speedBonus
	return NewMeteor(text, float64(x), speed)
}

// CheckMatch updates the highlight for the current input buffer.
func (m *Meteor) CheckMatch(input string) {
	m.Highlighted = input != "" && strings.HasPrefix(m.Text, input)
}

// Matches reports whether the input destroys this meteor.
func (m *Meteor) Matches(input string) bool {
	return input == m.Text
}

// Update moves the meteor down. Meteors never remove themselves; the game
// loop decides between a match and a miss.
func (m *Meteor) Update() bool {
	m.Y += m.Speed
	return false
}

// Draw renders the word, with a cyan glow while highlighted.
func (m *Meteor) Draw(ctx DrawContext) {
	x := m.X + ctx.Offset.X
	y := m.Y + ctx.Offset.Y
	c := ctx.Palette.TextMain
	if m.Highlighted {
		c = ctx.Palette.NeonCyan
		ctx.Surface.DrawText(m.Text, x-1, y, MeteorFontSize, c)
		ctx.Surface.DrawText(m.Text, x+1, y, MeteorFontSize, c)
	}
	ctx.Surface.DrawText(m.Text, x, y, MeteorFontSize, c)
}
