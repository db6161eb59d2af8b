// Package core holds the geometry and drawing primitives the breakfast run is
// built on. Rect measures the office in float64 world units with the origin at
// the top-left and y growing downward; overlap tests are inclusive of shared
// edges. Screen is a rune grid the terminal renderer paints into.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and other share any point.
// Rectangles are only apart when strictly separated on one axis, so
// touching edges count as a hit.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() < other.X || other.Right() < r.X {
		return false
	}
	if r.Bottom() < other.Y || other.Bottom() < r.Y {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts an int value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When min > max the range is degenerate and min wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
