package shadowlayout

import "github.com/design2/chili/pkg/graphics"

// Gradient is a linear color overlay painted over the background.
//
// Colors come either from named start/center/end stops or from an
// arbitrary color array with optional positions; setting one form clears
// the other. The gradient draws only when an angle is set and at least
// two colors resolve.
type Gradient struct {
	effectBase
	angle    int
	angleSet bool

	start, center, end *graphics.Color

	colors    []graphics.Color
	positions []float64

	offsetX, offsetY float64
	matrix           *graphics.Matrix
}

// NewGradient returns a gradient with no angle and no colors.
func NewGradient() *Gradient {
	g := &Gradient{effectBase: newEffectBase()}
	g.UpdatePaint()
	return g
}

// GradientOptions is the construction-time description of a gradient.
// A nil or negative Angle leaves the angle unset. A Colors slice with two or more
// entries takes precedence over the named stops.
type GradientOptions struct {
	Angle              *int
	Start, Center, End *graphics.Color
	OffsetX, OffsetY   float64
	Colors             []graphics.Color
	Positions          []float64
}

// Init replaces every gradient parameter and rebuilds the paint.
func (g *Gradient) Init(opts GradientOptions) {
	g.angle, g.angleSet = 0, false
	if opts.Angle != nil && *opts.Angle >= 0 {
		g.angle, g.angleSet = *opts.Angle, true
	}
	g.offsetX, g.offsetY = opts.OffsetX, opts.OffsetY
	if len(opts.Colors) >= 2 {
		g.setColorArray(opts.Colors, opts.Positions)
	} else {
		g.setNamed(opts.Start, opts.Center, opts.End)
	}
	g.UpdatePaint()
}

// UpdateGradientColor sets a two-stop gradient.
func (g *Gradient) UpdateGradientColor(start, end graphics.Color) {
	g.setNamed(&start, nil, &end)
	g.UpdatePaint()
}

// UpdateGradientColor3 sets a three-stop gradient.
func (g *Gradient) UpdateGradientColor3(start, center, end graphics.Color) {
	g.setNamed(&start, &center, &end)
	g.UpdatePaint()
}

// UpdateGradientColors sets an arbitrary color array. positions may be
// nil for evenly spaced stops; positions that do not pair up with
// colors or are not ascending within [0, 1] are ignored the same way.
func (g *Gradient) UpdateGradientColors(colors []graphics.Color, positions []float64) {
	g.setColorArray(colors, positions)
	g.UpdatePaint()
}

// UpdateGradientAngle sets the angle in degrees: 0 runs left to right,
// 90 bottom to top. A negative angle unsets it like ClearGradientAngle.
func (g *Gradient) UpdateGradientAngle(angle int) {
	if angle < 0 {
		g.ClearGradientAngle()
		return
	}
	g.angle = angle
	g.angleSet = true
	g.UpdatePaint()
}

// ClearGradientAngle unsets the angle, disabling the gradient.
func (g *Gradient) ClearGradientAngle() {
	g.angleSet = false
	g.UpdatePaint()
}

// UpdateGradientOffsetX shifts the gradient horizontally.
func (g *Gradient) UpdateGradientOffsetX(offset float64) {
	g.offsetX = offset
	g.UpdatePaint()
}

// UpdateGradientOffsetY shifts the gradient vertically.
func (g *Gradient) UpdateGradientOffsetY(offset float64) {
	g.offsetY = offset
	g.UpdatePaint()
}

// UpdateLocalMatrix sets a transform applied to the gradient geometry.
// nil removes it.
func (g *Gradient) UpdateLocalMatrix(m *graphics.Matrix) {
	if m == nil {
		g.matrix = nil
	} else {
		cp := *m
		g.matrix = &cp
	}
	g.UpdatePaint()
}

// Angle returns the angle and whether it is set.
func (g *Gradient) Angle() (int, bool) { return g.angle, g.angleSet }

// OffsetX returns the horizontal shift.
func (g *Gradient) OffsetX() float64 { return g.offsetX }

// OffsetY returns the vertical shift.
func (g *Gradient) OffsetY() float64 { return g.offsetY }

// LocalMatrix returns the local transform, or nil.
func (g *Gradient) LocalMatrix() *graphics.Matrix { return g.matrix }

// Stops resolves the current colors into ordered gradient stops.
func (g *Gradient) Stops() []graphics.GradientStop {
	if len(g.colors) >= 2 {
		if len(g.positions) != len(g.colors) || !ascendingUnit(g.positions) {
			return graphics.EvenStops(g.colors...)
		}
		stops := make([]graphics.GradientStop, len(g.colors))
		for i, c := range g.colors {
			stops[i] = graphics.GradientStop{Position: g.positions[i], Color: c}
		}
		return stops
	}
	if g.start == nil || g.end == nil {
		return nil
	}
	if g.center == nil {
		return graphics.EvenStops(*g.start, *g.end)
	}
	return graphics.EvenStops(*g.start, *g.center, *g.end)
}

// Enabled reports whether the gradient will draw.
func (g *Gradient) Enabled() bool {
	return g.angleSet && len(g.Stops()) >= 2
}

// UpdatePath rebuilds the outline and the shader, which spans it.
func (g *Gradient) UpdatePath(radius *Radius, mode RoundedCornerMode) {
	g.effectBase.UpdatePath(radius, mode)
	g.UpdatePaint()
}

func (g *Gradient) UpdatePaint() {
	p := graphics.Paint{
		AntiAlias: true,
		Color:     graphics.ColorBlack.WithAlpha(g.alpha),
		Style:     graphics.PaintStyleFill,
	}
	if g.Enabled() {
		shader := graphics.LinearGradientAtAngle(g.region, float64(g.angle), g.Stops()).
			Translate(g.offsetX, g.offsetY)
		if g.matrix != nil {
			m := *g.matrix
			shader.LocalMatrix = &m
		}
		p.Shader = shader
	}
	g.paint = p
}

func (g *Gradient) UpdateAlpha(alpha float64) {
	g.alpha = alpha
	g.UpdatePaint()
}

func (g *Gradient) DrawEffect(canvas graphics.Canvas) {
	if canvas == nil || !g.Enabled() {
		return
	}
	canvas.DrawPath(g.path, g.paint)
}

func (g *Gradient) setNamed(start, center, end *graphics.Color) {
	g.start, g.center, g.end = start, center, end
	g.colors, g.positions = nil, nil
}

func (g *Gradient) setColorArray(colors []graphics.Color, positions []float64) {
	g.colors = append([]graphics.Color(nil), colors...)
	g.positions = append([]float64(nil), positions...)
	g.start, g.center, g.end = nil, nil, nil
}

func ascendingUnit(ps []float64) bool {
	prev := 0.0
	for _, p := range ps {
		if p < prev || p > 1 {
			return false
		}
		prev = p
	}
	return true
}
