package shadowlayout

import "github.com/design2/chili/pkg/graphics"

// Background is the solid fill of the container outline.
type Background struct {
	effectBase
	color    graphics.Color
	colorSet bool
}

// NewBackground returns a background filled with color.
func NewBackground(color graphics.Color) *Background {
	b := &Background{effectBase: newEffectBase()}
	b.SetBackgroundColor(color)
	return b
}

func newUnsetBackground() *Background {
	b := &Background{effectBase: newEffectBase()}
	b.UpdatePaint()
	return b
}

// SetBackgroundColor changes the fill color and rebuilds the paint.
func (b *Background) SetBackgroundColor(color graphics.Color) {
	b.color = color
	b.colorSet = true
	b.UpdatePaint()
}

// Color returns the fill color and whether one is set.
func (b *Background) Color() (graphics.Color, bool) {
	return b.color, b.colorSet
}

func (b *Background) UpdatePaint() {
	b.paint = graphics.Paint{
		AntiAlias: true,
		Color:     paintColor(b.color, b.alpha),
		Style:     graphics.PaintStyleFillAndStroke,
	}
}

func (b *Background) UpdateAlpha(alpha float64) {
	b.alpha = alpha
	b.UpdatePaint()
}

func (b *Background) DrawEffect(canvas graphics.Canvas) {
	if canvas == nil || !b.colorSet {
		return
	}
	canvas.DrawPath(b.path, b.paint)
}
