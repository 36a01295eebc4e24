// Package core provides fundamental types and utilities for the crossing arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a continuous axis-aligned bounding box used for collision
// detection in playfield units (one unit = one lane cell).
type RectF struct {
	X, Y float64 // Minimum corner
	W, H float64
}

// CenteredRectF builds a box of size w×h centered on (cx, cy).
func CenteredRectF(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// MaxX returns the right edge.
func (r RectF) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the far edge on the Y axis.
func (r RectF) MaxY() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap with positive area.
// Touching edges do not count as an intersection.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.MaxX() || other.X >= r.MaxX() {
		return false
	}
	if r.Y >= other.MaxY() || other.Y >= r.MaxY() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
