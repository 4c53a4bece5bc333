// Package core provides fundamental types and utilities for the paint war platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// FRect is an axis-aligned rectangle in world units.
type FRect struct {
	X, Y float64
	W, H float64
}

// CenteredRect returns the rectangle of size w x h centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) FRect {
	return FRect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r FRect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Cells snaps the rectangle to whole cells using the given scale factors.
// Any cell the rectangle touches is included, so thin shapes never vanish.
func (r FRect) Cells(sx, sy float64) Rect {
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil((r.X + r.W) * sx))
	y1 := int(math.Ceil((r.Y + r.H) * sy))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
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
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
