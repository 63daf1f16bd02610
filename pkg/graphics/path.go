package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// kappa places cubic control points so a quarter curve approximates a
// circular arc.
const kappa = 0.5522847498

const (
	// smoothExtent is how much further along each edge a fully weighted
	// smooth corner starts, as a fraction of its radius.
	smoothExtent = 0.6
	// smoothPull moves control handles toward the corner for a fully
	// weighted smooth corner.
	smoothPull = 0.3
)

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods,
// or the AddRect/AddRRect helpers. Effects that rebuild their outline
// call Reset first so no stale segments survive.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Reset removes all commands from the path.
func (p *Path) Reset() {
	p.Commands = p.Commands[:0]
}

// AddRect appends a closed clockwise rectangle.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect appends a closed clockwise rounded rectangle. Radii are clamped
// first so the outline is always valid.
func (p *Path) AddRRect(rr RRect) {
	p.addRRect(rr, 0)
}

// AddSmoothRRect appends a rounded rectangle whose corners blend into the
// edges more gradually than a circular arc. weight in [0, 1] controls the
// blend; 0 is identical to AddRRect.
func (p *Path) AddSmoothRRect(rr RRect, weight float64) {
	p.addRRect(rr, clamp01(weight))
}

func (p *Path) addRRect(rr RRect, weight float64) {
	rr = rr.Clamped()
	if rr.IsRect() {
		p.AddRect(rr.Rect)
		return
	}
	r := rr.Rect
	limit := math.Min(r.Width(), r.Height()) * 0.5
	// extent is how far along an edge a corner curve reaches.
	extent := func(v float64) float64 {
		return math.Min(v*(1+smoothExtent*weight), limit)
	}
	handle := kappa + (1-kappa)*smoothPull*weight

	tl := Radius{X: extent(rr.TopLeft.X), Y: extent(rr.TopLeft.Y)}
	tr := Radius{X: extent(rr.TopRight.X), Y: extent(rr.TopRight.Y)}
	br := Radius{X: extent(rr.BottomRight.X), Y: extent(rr.BottomRight.Y)}
	bl := Radius{X: extent(rr.BottomLeft.X), Y: extent(rr.BottomLeft.Y)}

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if tr.X > 0 && tr.Y > 0 {
		p.CubicTo(
			r.Right-tr.X*(1-handle), r.Top,
			r.Right, r.Top+tr.Y*(1-handle),
			r.Right, r.Top+tr.Y,
		)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if br.X > 0 && br.Y > 0 {
		p.CubicTo(
			r.Right, r.Bottom-br.Y*(1-handle),
			r.Right-br.X*(1-handle), r.Bottom,
			r.Right-br.X, r.Bottom,
		)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if bl.X > 0 && bl.Y > 0 {
		p.CubicTo(
			r.Left+bl.X*(1-handle), r.Bottom,
			r.Left, r.Bottom-bl.Y*(1-handle),
			r.Left, r.Bottom-bl.Y,
		)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if tl.X > 0 && tl.Y > 0 {
		p.CubicTo(
			r.Left, r.Top+tl.Y*(1-handle),
			r.Left+tl.X*(1-handle), r.Top,
			r.Left+tl.X, r.Top,
		)
	}
	p.Close()
}

// Bounds returns the bounding box of every point in the path, control
// points included. An empty path has empty bounds.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			b = b.Union(Rect{Left: x, Top: y, Right: x, Bottom: y})
		}
	}
	return b
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
		FillRule: p.FillRule,
	}
	for i, cmd := range p.Commands {
		if cmd.Args == nil {
			out.Commands[i] = PathCommand{Op: cmd.Op}
			continue
		}
		args := make([]float64, len(cmd.Args))
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			pt := m.Apply(Offset{X: cmd.Args[j], Y: cmd.Args[j+1]})
			args[j], args[j+1] = pt.X, pt.Y
		}
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Clone returns a fully independent copy of the path. Returns nil if p is nil.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return p.Transform(IdentityMatrix())
}
