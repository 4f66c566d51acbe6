// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or displacement in pixel space.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Floor rounds both components down to whole pixels.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Vec3 is a pixel position with a depth component (isometric height).
type Vec3 struct {
	X, Y, Z float64
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Collider is an axis-aligned bounding box in the local space of an entity.
// The box spans [pos+Offset, pos+Offset+Size] once combined with a position.
type Collider struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
}

// NewCollider creates a collider with the given local offset and size.
func NewCollider(offsetX, offsetY, w, h float64) Collider {
	return Collider{OffsetX: offsetX, OffsetY: offsetY, W: w, H: h}
}

// Bounds returns the world-space min and max corners for an owner at pos.
func (c Collider) Bounds(pos Vec2) (min, max Vec2) {
	min = Vec2{X: pos.X + c.OffsetX, Y: pos.Y + c.OffsetY}
	max = Vec2{X: min.X + c.W, Y: min.Y + c.H}
	return min, max
}

// Intersects reports whether this collider, owned by an entity at pos,
// overlaps other owned by an entity at otherPos.
// Boundaries are inclusive: touching edges count as intersecting.
func (c Collider) Intersects(pos Vec2, other Collider, otherPos Vec2) bool {
	aMin, aMax := c.Bounds(pos)
	bMin, bMax := other.Bounds(otherPos)
	return spansOverlap(aMin.X, aMax.X, bMin.X, bMax.X) &&
		spansOverlap(aMin.Y, aMax.Y, bMin.Y, bMax.Y)
}

// spansOverlap tests [aMin, aMax] against [bMin, bMax]: either end of a
// lies inside b, or a contains b entirely.
func spansOverlap(aMin, aMax, bMin, bMax float64) bool {
	if aMin >= bMin && aMin <= bMax {
		return true
	}
	if aMax >= bMin && aMax <= bMax {
		return true
	}
	return aMin <= bMin && aMax >= bMax
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
