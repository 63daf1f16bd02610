package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// IsRect reports whether every corner radius is zero.
func (r RRect) IsRect() bool {
	for _, c := range r.corners() {
		if c.X > 0 && c.Y > 0 {
			return false
		}
	}
	return true
}

// Clamped returns a copy whose corner radii never exceed half of the
// lesser rect dimension. Negative radii become zero.
func (r RRect) Clamped() RRect {
	limit := math.Max(0, math.Min(math.Abs(r.Rect.Width()), math.Abs(r.Rect.Height()))*0.5)
	clamp := func(v float64) float64 {
		if !(v > 0) {
			return 0
		}
		return math.Min(v, limit)
	}
	out := r
	out.TopLeft = Radius{X: clamp(r.TopLeft.X), Y: clamp(r.TopLeft.Y)}
	out.TopRight = Radius{X: clamp(r.TopRight.X), Y: clamp(r.TopRight.Y)}
	out.BottomRight = Radius{X: clamp(r.BottomRight.X), Y: clamp(r.BottomRight.Y)}
	out.BottomLeft = Radius{X: clamp(r.BottomLeft.X), Y: clamp(r.BottomLeft.Y)}
	return out
}

func (r RRect) corners() [4]Radius {
	return [4]Radius{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft}
}
