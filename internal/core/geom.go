// Package core provides fundamental types shared by the simulation and the
// platform layer. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a continuous 2D vector in world pixels. Entity positions are kept
// as Vec2 and only rounded into a Rect for collision and rendering.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in the same direction. The zero vector
// normalizes to a unit vector along X so callers never divide by zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{X: 1}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are integer world pixels rounded from the continuous position.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt derives the integer rectangle for a continuous top-left position.
func RectAt(pos Vec2, w, h int) Rect {
	return Rect{X: int(math.Round(pos.X)), Y: int(math.Round(pos.Y)), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Inflate returns a copy grown by dx horizontally and dy vertically,
// keeping the same center. Negative values shrink the rectangle.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{
		X: r.X - dx/2,
		Y: r.Y - dy/2,
		W: r.W + dx,
		H: r.H + dy,
	}
}

// Translated returns a copy moved by (dx, dy).
func (r Rect) Translated(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Outside reports whether the rectangle lies fully outside the region
// [0,width] x [0,height] on every axis it exceeds.
func (r Rect) Outside(width, height int) bool {
	return r.Right() < 0 || r.X > width || r.Bottom() < 0 || r.Y > height
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
