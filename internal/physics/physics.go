// Package physics provides geometry helpers for hit-testing and motion.
package physics

import "math"

// Rect is an axis-aligned rectangle in logical screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredRect returns a w×h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Velocity converts a direction (radians) and speed into velocity components.
func Velocity(angle, speed float64) (vx, vy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// ClampInt limits v to the range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
