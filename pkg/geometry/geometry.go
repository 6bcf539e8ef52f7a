// Package geometry provides the float32 primitives shared by layout,
// painting, and hit-testing: offsets, sizes, and axis-aligned rectangles.
//
// All coordinates are in logical pixels with the origin at the top-left
// and the Y axis pointing down.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Offset is a 2D vector, usually a position or a translation.
type Offset struct {
	X, Y float32
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{o.X + other.X, o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{o.X - other.X, o.Y - other.Y}
}

// Scale returns the offset multiplied by a scalar.
func (o Offset) Scale(factor float32) Offset {
	return Offset{o.X * factor, o.Y * factor}
}

// Distance returns the euclidean distance to another offset.
func (o Offset) Distance(other Offset) float32 {
	return math32.Hypot(other.X-o.X, other.Y-o.Y)
}

// Length returns the euclidean length of the offset.
func (o Offset) Length() float32 {
	return math32.Hypot(o.X, o.Y)
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(%.1f, %.1f)", o.X, o.Y)
}

// Size holds a width and a height.
type Size struct {
	Width, Height float32
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("Size(%.1f, %.1f)", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle described by its edges.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectFromLTWH builds a rectangle from its top-left corner and size.
func RectFromLTWH(left, top, width, height float32) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromOffsetSize builds a rectangle from an origin offset and a size.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{r.Left, r.Top}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Offset {
	return Offset{(r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{r.Left + o.X, r.Top + o.Y, r.Right + o.X, r.Bottom + o.Y}
}

// Intersect returns the overlapping region of two rectangles.
// The result is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   math32.Max(r.Left, other.Left),
		Top:    math32.Max(r.Top, other.Top),
		Right:  math32.Min(r.Right, other.Right),
		Bottom: math32.Min(r.Bottom, other.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   math32.Min(r.Left, other.Left),
		Top:    math32.Min(r.Top, other.Top),
		Right:  math32.Max(r.Right, other.Right),
		Bottom: math32.Max(r.Bottom, other.Bottom),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.1f, %.1f, %.1f, %.1f)", r.Left, r.Top, r.Right, r.Bottom)
}
