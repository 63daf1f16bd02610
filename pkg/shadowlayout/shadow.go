package shadowlayout

import (
	"fmt"
	"math"
	"strings"

	"github.com/design2/chili/pkg/graphics"
)

// ShadowType selects whether a shadow fills its outline or strokes it.
type ShadowType int

const (
	// ShadowTypeFill fills the outline.
	ShadowTypeFill ShadowType = iota
	// ShadowTypeStroke strokes the outline with a width equal to the
	// blur size. Only meaningful for inner shadows.
	ShadowTypeStroke
)

func (t ShadowType) String() string {
	switch t {
	case ShadowTypeFill:
		return "fill"
	case ShadowTypeStroke:
		return "stroke"
	default:
		return fmt.Sprintf("ShadowType(%d)", int(t))
	}
}

// ParseShadowType parses "fill" or "stroke".
func ParseShadowType(s string) (ShadowType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fill":
		return ShadowTypeFill, nil
	case "stroke":
		return ShadowTypeStroke, nil
	}
	return ShadowTypeFill, fmt.Errorf("unknown shadow type %q", s)
}

// Shadow is a blurred copy of the container outline.
//
// A background (outer) shadow paints behind the container and may be
// offset. A foreground (inner) shadow paints over the background, is
// confined to the outline and never offset. A shadow draws only when
// its blur size is non-zero and its color is set.
type Shadow struct {
	effectBase
	background bool
	blurSize   float64
	offsetX    float64
	offsetY    float64
	color      graphics.Color
	colorSet   bool
	shadowType ShadowType
}

// NewBackgroundShadow returns an outer shadow.
func NewBackgroundShadow(blurSize, offsetX, offsetY float64, color graphics.Color) *Shadow {
	s := &Shadow{effectBase: newEffectBase()}
	s.Init(true, blurSize, offsetX, offsetY, color)
	return s
}

// NewForegroundShadow returns an inner shadow.
func NewForegroundShadow(blurSize float64, color graphics.Color) *Shadow {
	s := &Shadow{effectBase: newEffectBase()}
	s.Init(false, blurSize, 0, 0, color)
	return s
}

// newUnsetShadow returns a shadow with no color; it never draws until
// a color is given.
func newUnsetShadow(background bool, blurSize, offsetX, offsetY float64) *Shadow {
	s := &Shadow{effectBase: newEffectBase()}
	s.background = background
	s.blurSize = blurSize
	s.offsetX = offsetX
	s.offsetY = offsetY
	s.UpdatePaint()
	return s
}

// Init replaces every shadow parameter and rebuilds the paint.
func (s *Shadow) Init(background bool, blurSize, offsetX, offsetY float64, color graphics.Color) {
	s.background = background
	s.blurSize = blurSize
	s.offsetX = offsetX
	s.offsetY = offsetY
	s.color = color
	s.colorSet = true
	s.UpdatePaint()
}

// Enabled reports whether the shadow will draw.
func (s *Shadow) Enabled() bool {
	return s.blurSize != 0 && s.colorSet
}

// IsBackground reports whether this is an outer shadow.
func (s *Shadow) IsBackground() bool { return s.background }

// BlurSize returns the blur size.
func (s *Shadow) BlurSize() float64 { return s.blurSize }

// OffsetX returns the horizontal displacement.
func (s *Shadow) OffsetX() float64 { return s.offsetX }

// OffsetY returns the vertical displacement.
func (s *Shadow) OffsetY() float64 { return s.offsetY }

// Type returns the fill/stroke type.
func (s *Shadow) Type() ShadowType { return s.shadowType }

// Color returns the shadow color and whether one is set.
func (s *Shadow) Color() (graphics.Color, bool) {
	return s.color, s.colorSet
}

// UpdateShadowColor sets the color and rebuilds the paint.
func (s *Shadow) UpdateShadowColor(color graphics.Color) {
	s.color = color
	s.colorSet = true
	s.UpdatePaint()
}

// UpdateShadowOffsetX sets the horizontal displacement.
func (s *Shadow) UpdateShadowOffsetX(offset float64) {
	s.offsetX = offset
}

// UpdateShadowOffsetY sets the vertical displacement.
func (s *Shadow) UpdateShadowOffsetY(offset float64) {
	s.offsetY = offset
}

// SetShadowType sets fill or stroke and rebuilds the paint.
func (s *Shadow) SetShadowType(t ShadowType) {
	s.shadowType = t
	s.UpdatePaint()
}

func (s *Shadow) UpdatePaint() {
	p := graphics.Paint{
		AntiAlias: true,
		Color:     paintColor(s.color, s.alpha),
		Style:     graphics.PaintStyleFillAndStroke,
	}
	if s.shadowType == ShadowTypeStroke {
		p.Style = graphics.PaintStyleStroke
	}
	if s.blurSize != 0 {
		p.MaskFilter = graphics.NewBlurMaskFilter(graphics.BlurStyleNormal, math.Abs(s.blurSize))
		if !s.background {
			p.StrokeWidth = s.blurSize
		}
	}
	s.paint = p
}

func (s *Shadow) UpdateAlpha(alpha float64) {
	s.alpha = alpha
	s.UpdatePaint()
}

func (s *Shadow) DrawEffect(canvas graphics.Canvas) {
	if canvas == nil || !s.Enabled() {
		return
	}
	canvas.Save()
	if s.background {
		canvas.Translate(s.offsetX, s.offsetY)
	} else {
		canvas.ClipPath(s.path, graphics.ClipOpIntersect, true)
	}
	canvas.DrawPath(s.path, s.paint)
	canvas.Restore()
}
