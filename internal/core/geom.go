// Package core provides fundamental types and utilities for the catch game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer axis-aligned box in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a floating point bounding box in field coordinates.
// Simulation entities live in RectF space; rendering truncates to cells.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// OverlapsY reports whether the vertical spans [Y, Bottom) of both boxes overlap.
func (r RectF) OverlapsY(other RectF) bool {
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// ExpandX returns the box grown by dx on the left and right sides.
func (r RectF) ExpandX(dx float64) RectF {
	return RectF{X: r.X - dx, Y: r.Y, W: r.W + 2*dx, H: r.H}
}

// ContainsX reports whether x lies within [X, Right], edges included.
func (r RectF) ContainsX(x float64) bool {
	return x >= r.X && x <= r.Right()
}

// Clamp restricts a value to be within [min, max].
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
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
