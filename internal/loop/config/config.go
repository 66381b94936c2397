// Package config centralizes all tunable game parameters.
package config

import (
	"image/color"
	"time"
)

// Palette holds every colour the game draws with.
type Palette struct {
	Background  color.NRGBA
	Grid        color.NRGBA // Input bar
	TextMain    color.NRGBA
	NeonCyan    color.NRGBA
	NeonMagenta color.NRGBA
	NeonGreen   color.NRGBA
	NeonYellow  color.NRGBA
	Error       color.NRGBA
	Muted       color.NRGBA // Idle buttons, tips, zero streak
	HealthBack  color.NRGBA
	HealthFrame color.NRGBA
	Overlay     color.NRGBA // Game-over dimming
}

// Config is the immutable setup the game loop is started with.
type Config struct {
	Width   int // Logical screen width in pixels
	Height  int // Logical screen height in pixels
	FPS     int // Frames per second; all speeds are per frame
	Title   string
	Palette Palette
}

// Default returns the standard 900x700, 60 FPS neon configuration.
func Default() Config {
	return Config{
		Width:  900,
		Height: 700,
		FPS:    60,
		Title:  "CYBER TYPER: NEON PROTOCOL",
		Palette: Palette{
			Background:  color.NRGBA{5, 5, 15, 255},
			Grid:        color.NRGBA{20, 40, 60, 255},
			TextMain:    color.NRGBA{240, 240, 255, 255},
			NeonCyan:    color.NRGBA{0, 255, 255, 255},
			NeonMagenta: color.NRGBA{255, 0, 150, 255},
			NeonGreen:   color.NRGBA{50, 255, 50, 255},
			NeonYellow:  color.NRGBA{255, 255, 0, 255},
			Error:       color.NRGBA{255, 50, 50, 255},
			Muted:       color.NRGBA{100, 100, 100, 255},
			HealthBack:  color.NRGBA{50, 0, 0, 255},
			HealthFrame: color.NRGBA{200, 200, 200, 255},
			Overlay:     color.NRGBA{0, 0, 0, 150},
		},
	}
}

// FrameTime returns the duration of one frame.
func (c Config) FrameTime() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// Scoring
const (
	ScoreHit     = 10
	PanicPenalty = 5
)

// Player
const (
	MaxHealth       = 100
	MissDamage      = 20
	StreakBonusHeal = 10
	StreakBonusStep = 5 // Every n-th consecutive hit heals
)

// Feedback
const (
	LevelUpPopupFrames = 60
	DamageFlashAlpha   = 50

	ShakeLevelUp = 10
	ShakeBonus   = 8
	ShakeHit     = 5
	ShakeMiss    = 20
	ShakePanic   = 3
)

// Terminal rendering: the logical screen is scaled to at most this many cells.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)
