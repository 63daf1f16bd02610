package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (transparent fill).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Shader      *Gradient  // If set, overrides Color for the fill
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels
	AntiAlias   bool

	// MaskFilter blurs the coverage of whatever the paint draws.
	MaskFilter *MaskFilter
}

// DefaultPaint returns a basic opaque white anti-aliased fill.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		AntiAlias:   true,
	}
}

// Fills reports whether the style fills the interior.
func (p Paint) Fills() bool {
	return p.Style == PaintStyleFill || p.Style == PaintStyleFillAndStroke
}

// Strokes reports whether the style draws the outline.
func (p Paint) Strokes() bool {
	return p.Style == PaintStyleStroke || p.Style == PaintStyleFillAndStroke
}
