package shadowlayout

import "github.com/design2/chili/pkg/graphics"

// Effect is one renderable layer of a container.
//
// UpdateOffset only stores the region; the owner calls UpdatePath once
// every region for the frame is known. UpdatePaint rebuilds the paint from
// colors and alpha. DrawEffect never rebuilds anything.
type Effect interface {
	// UpdateOffset stores the drawable region.
	UpdateOffset(left, top, right, bottom float64)
	// UpdatePath rebuilds the outline from the region. A nil radius
	// produces a plain rectangle.
	UpdatePath(radius *Radius, mode RoundedCornerMode)
	// UpdatePaint rebuilds the paint.
	UpdatePaint()
	// UpdateAlpha stores alpha and rebuilds the paint.
	UpdateAlpha(alpha float64)
	// DrawEffect paints the outline onto canvas. A nil canvas is a no-op.
	DrawEffect(canvas graphics.Canvas)

	Region() graphics.Rect
	Path() *graphics.Path
	Paint() graphics.Paint
	Alpha() float64
}

// effectBase holds the state every effect shares.
type effectBase struct {
	region graphics.Rect
	alpha  float64
	path   *graphics.Path
	paint  graphics.Paint
}

func newEffectBase() effectBase {
	return effectBase{alpha: 1, path: graphics.NewPath()}
}

func (e *effectBase) UpdateOffset(left, top, right, bottom float64) {
	e.region = graphics.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (e *effectBase) UpdatePath(radius *Radius, mode RoundedCornerMode) {
	if e.path == nil {
		e.path = graphics.NewPath()
	}
	e.path.Reset()
	if radius == nil {
		e.path.AddRect(e.region)
		return
	}
	radius.addTo(e.path, e.region, mode)
}

func (e *effectBase) Region() graphics.Rect { return e.region }

func (e *effectBase) Path() *graphics.Path { return e.path }

func (e *effectBase) Paint() graphics.Paint { return e.paint }

func (e *effectBase) Alpha() float64 { return e.alpha }

// paintColor returns c with alpha applied. A color that already carries
// its own opacity keeps it.
func paintColor(c graphics.Color, alpha float64) graphics.Color {
	if !c.IsOpaque() {
		return c
	}
	return c.WithAlpha(alpha)
}
