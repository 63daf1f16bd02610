package graphics

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// RasterCanvas implements Canvas in software on an *image.RGBA.
//
// Every draw call rasterizes its path into a coverage mask, applies the
// paint's mask filter and the current clip to that mask, then composites
// the paint's color or shader through it.
type RasterCanvas struct {
	img   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	clip   *image.Alpha // nil means unclipped; never mutated once set
}

// NewRasterCanvas allocates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterCanvasFor draws into an existing image. The image bounds must
// start at the origin.
func NewRasterCanvasFor(img *image.RGBA) *RasterCanvas {
	return &RasterCanvas{img: img}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipPath(path *Path, op ClipOp, _ bool) {
	if path == nil {
		return
	}
	fill := DefaultPaint()
	cov := c.coverage(path, fill)
	if op == ClipOpDifference {
		for i, a := range cov.Pix {
			cov.Pix[i] = 0xFF - a
		}
	}
	if c.state.clip != nil {
		intersectMask(cov, c.state.clip)
	}
	c.state.clip = cov
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	p := NewPath()
	p.AddRect(rect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	p := NewPath()
	p.AddRRect(rrect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	mask := c.coverage(path, paint)
	if mf := paint.MaskFilter; mf != nil && mf.Sigma() > 0 {
		mask = applyMaskFilter(mask, *mf)
	}
	if c.state.clip != nil {
		intersectMask(mask, c.state.clip)
	}
	var src image.Image
	if paint.Shader.IsValid() {
		src = c.shaderImage(paint.Shader)
		if a := paint.Color.Alpha8(); a != 0xFF {
			scaleMask(mask, a)
		}
	} else {
		src = image.NewUniform(paint.Color.NRGBA())
	}
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// coverage rasterizes path with the paint's style into an alpha mask the
// size of the canvas, honoring the current translation.
func (c *RasterCanvas) coverage(path *Path, paint Paint) *image.Alpha {
	b := c.img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	if path.FillRule == FillRuleEvenOdd {
		dc.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		dc.SetFillRule(gg.FillRuleWinding)
	}
	tracePath(dc, path, c.state.dx, c.state.dy)
	dc.SetRGBA(1, 1, 1, 1)
	// A fill-and-stroke paint without a stroke width is a plain fill; a
	// stroke-only paint without one is a hairline.
	stroke := paint.Style == PaintStyleStroke || (paint.Strokes() && paint.StrokeWidth > 0)
	switch {
	case paint.Fills() && stroke:
		dc.FillPreserve()
	case paint.Fills():
		dc.Fill()
	}
	if stroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		dc.SetLineWidth(width)
		dc.Stroke()
	}
	mask := image.NewAlpha(b)
	draw.Draw(mask, b, dc.Image(), image.Point{}, draw.Src)
	return mask
}

func tracePath(dc *gg.Context, path *Path, dx, dy float64) {
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			dc.MoveTo(a[0]+dx, a[1]+dy)
		case PathOpLineTo:
			dc.LineTo(a[0]+dx, a[1]+dy)
		case PathOpQuadTo:
			dc.QuadraticTo(a[0]+dx, a[1]+dy, a[2]+dx, a[3]+dy)
		case PathOpCubicTo:
			dc.CubicTo(a[0]+dx, a[1]+dy, a[2]+dx, a[3]+dy, a[4]+dx, a[5]+dy)
		case PathOpClose:
			dc.ClosePath()
		}
	}
}

func (c *RasterCanvas) shaderImage(g *Gradient) image.Image {
	g = g.Resolved().Translate(c.state.dx, c.state.dy)
	var grad gg.Gradient
	switch g.Type {
	case GradientTypeRadial:
		ctr := g.Radial.Center
		grad = gg.NewRadialGradient(ctr.X, ctr.Y, 0, ctr.X, ctr.Y, g.Radial.Radius)
	default:
		grad = gg.NewLinearGradient(g.Linear.Start.X, g.Linear.Start.Y, g.Linear.End.X, g.Linear.End.Y)
	}
	for _, stop := range g.Stops() {
		grad.AddColorStop(stop.Position, stop.Color.NRGBA())
	}
	return patternImage{pattern: grad, bounds: c.img.Bounds()}
}

// patternImage exposes a gg pattern as an image.Image source.
type patternImage struct {
	pattern gg.Pattern
	bounds  image.Rectangle
}

func (p patternImage) ColorModel() color.Model { return color.NRGBAModel }

func (p patternImage) Bounds() image.Rectangle { return p.bounds }

func (p patternImage) At(x, y int) color.Color { return p.pattern.ColorAt(x, y) }

// applyMaskFilter blurs a coverage mask and combines the blur with the
// unblurred coverage according to the blur style.
func applyMaskFilter(mask *image.Alpha, mf MaskFilter) *image.Alpha {
	blurred := imaging.Blur(mask, mf.Sigma())
	out := image.NewAlpha(mask.Bounds())
	for i := range out.Pix {
		orig := uint32(mask.Pix[i])
		blur := uint32(blurred.Pix[i*4+3])
		var v uint32
		switch mf.Style {
		case BlurStyleSolid:
			v = max(orig, blur)
		case BlurStyleOuter:
			v = blur * (0xFF - orig) / 0xFF
		case BlurStyleInner:
			v = blur * orig / 0xFF
		default:
			v = blur
		}
		out.Pix[i] = uint8(v)
	}
	return out
}

// intersectMask multiplies dst by clip in place.
func intersectMask(dst, clip *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(clip.Pix[i]) / 0xFF)
	}
}

func scaleMask(mask *image.Alpha, a uint8) {
	for i := range mask.Pix {
		mask.Pix[i] = uint8(uint32(mask.Pix[i]) * uint32(a) / 0xFF)
	}
}
