package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// Gradient describes a linear or radial gradient.
//
// LocalMatrix, when set, maps the gradient geometry before it is
// resolved against canvas coordinates.
type Gradient struct {
	Type        GradientType
	Linear      LinearGradient
	Radial      RadialGradient
	LocalMatrix *Matrix
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeRadial,
		Radial: RadialGradient{
			Center: center,
			Radius: radius,
			Stops:  cloneGradientStops(stops),
		},
	}
}

// EvenStops spreads colors evenly from position 0 to 1.
func EvenStops(colors ...Color) []GradientStop {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Position: pos, Color: c}
	}
	return stops
}

// LinearGradientAtAngle returns a linear gradient spanning rect along the
// direction given in degrees: 0 runs left to right, 90 bottom to top.
// The span is chosen so the first and last stops touch opposite corners.
func LinearGradientAtAngle(rect Rect, degrees float64, stops []GradientStop) *Gradient {
	rad := degrees * math.Pi / 180
	dx, dy := math.Cos(rad), -math.Sin(rad)
	half := (math.Abs(rect.Width()*dx) + math.Abs(rect.Height()*dy)) * 0.5
	c := rect.Center()
	return NewLinearGradient(
		Offset{X: c.X - dx*half, Y: c.Y - dy*half},
		Offset{X: c.X + dx*half, Y: c.Y + dy*half},
		stops,
	)
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear || g.Type == GradientTypeRadial
}

// Translate returns a copy with its geometry moved by (dx, dy).
func (g *Gradient) Translate(dx, dy float64) *Gradient {
	if g == nil {
		return nil
	}
	out := *g
	out.Linear.Start = Offset{X: g.Linear.Start.X + dx, Y: g.Linear.Start.Y + dy}
	out.Linear.End = Offset{X: g.Linear.End.X + dx, Y: g.Linear.End.Y + dy}
	out.Radial.Center = Offset{X: g.Radial.Center.X + dx, Y: g.Radial.Center.Y + dy}
	return &out
}

// Resolved returns a copy with LocalMatrix applied to its geometry and
// cleared. A radial radius is scaled by the matrix's mean axis scale.
func (g *Gradient) Resolved() *Gradient {
	if g == nil || g.LocalMatrix == nil {
		return g
	}
	m := *g.LocalMatrix
	out := *g
	out.LocalMatrix = nil
	out.Linear.Start = m.Apply(g.Linear.Start)
	out.Linear.End = m.Apply(g.Linear.End)
	out.Radial.Center = m.Apply(g.Radial.Center)
	sx := math.Hypot(m[0], m[3])
	sy := math.Hypot(m[1], m[4])
	out.Radial.Radius = g.Radial.Radius * (sx + sy) * 0.5
	return &out
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
