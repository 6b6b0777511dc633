// Package core provides fundamental types shared by the Breakout engine and its hosts.
// It has no platform dependencies (no Bubble Tea, no Ebiten) so game logic stays
// pure and testable; vector math comes from mathgl.
package core

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned box in play-area units. Y grows downward.
type Box struct {
	Pos  mgl32.Vec2 // Top-left corner
	Size mgl32.Vec2 // Width and height
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float32) Box {
	return Box{Pos: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

// Min returns the top-left corner.
func (b Box) Min() mgl32.Vec2 {
	return b.Pos
}

// Max returns the bottom-right corner.
func (b Box) Max() mgl32.Vec2 {
	return b.Pos.Add(b.Size)
}

// HalfExtents returns half the box size.
func (b Box) HalfExtents() mgl32.Vec2 {
	return b.Size.Mul(0.5)
}

// Center returns the center point of the box.
func (b Box) Center() mgl32.Vec2 {
	return b.Pos.Add(b.HalfExtents())
}

// Overlaps reports whether the projections of both boxes overlap on both axes.
// Bounds are inclusive, so boxes that only touch along an edge overlap.
func (b Box) Overlaps(other Box) bool {
	collX := b.Pos.X()+b.Size.X() >= other.Pos.X() &&
		other.Pos.X()+other.Size.X() >= b.Pos.X()
	collY := b.Pos.Y()+b.Size.Y() >= other.Pos.Y() &&
		other.Pos.Y()+other.Size.Y() >= b.Pos.Y()
	return collX && collY
}

// Rect is an integer rectangle in terminal cells, used for overlays.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float32 value to be within [lo, hi].
func ClampF(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// AbsF returns the absolute value of a float32.
func AbsF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
