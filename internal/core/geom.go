// Package core provides fundamental types and utilities for the penguin game.
// It contains no terminal or audio dependencies so that simulation code stays
// pure and testable.
package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec is a point or displacement in world space (pixels, y grows downward).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Size is a width/height pair, used for visual bounds supplied by the render layer.
type Size struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// Shape is a collider shape positioned in world space.
// Implemented by Box and Circle only.
type Shape interface {
	// Bounds returns the axis-aligned box enclosing the shape.
	Bounds() Box
	isShape()
}

// Box is an axis-aligned rectangle described by its min and max corners.
type Box struct {
	Min, Max Vec
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Min: Vec{X: x, Y: y}, Max: Vec{X: x + w, Y: y + h}}
}

// W returns the box width.
func (b Box) W() float64 { return b.Max.X - b.Min.X }

// H returns the box height.
func (b Box) H() float64 { return b.Max.Y - b.Min.Y }

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Bounds implements Shape.
func (b Box) Bounds() Box { return b }

func (Box) isShape() {}

// Intersects reports whether two boxes overlap on both axes.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec) Vec {
	return Vec{
		X: Clamp(p.X, b.Min.X, b.Max.X),
		Y: Clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Circle is a circle collider.
type Circle struct {
	Center Vec
	Radius float64
}

// Bounds implements Shape.
func (c Circle) Bounds() Box {
	return Box{
		Min: Vec{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Vec{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

func (Circle) isShape() {}

// Overlap reports whether two collider shapes overlap.
// Box-box uses interval overlap, box-circle the closest point on the box,
// circle-circle the distance between centers. The result is symmetric.
func Overlap(a, b Shape) bool {
	switch sa := a.(type) {
	case Box:
		switch sb := b.(type) {
		case Box:
			return sa.Intersects(sb)
		case Circle:
			return boxCircle(sa, sb)
		}
	case Circle:
		switch sb := b.(type) {
		case Box:
			return boxCircle(sb, sa)
		case Circle:
			r := sa.Radius + sb.Radius
			return sa.Center.Sub(sb.Center).LenSq() <= r*r
		}
	}
	return false
}

func boxCircle(b Box, c Circle) bool {
	closest := b.ClosestPoint(c.Center)
	return closest.Sub(c.Center).LenSq() <= c.Radius*c.Radius
}

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Clamp restricts a value to be within [lo, hi].
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Round rounds to the nearest integer cell.
func Round(f float64) int {
	return int(math.Round(f))
}
