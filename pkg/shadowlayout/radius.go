package shadowlayout

import "github.com/design2/chili/pkg/graphics"

// Radius describes how a container's corners are rounded.
//
// A non-zero Radius applies to every corner and hides the per-corner
// values. Corner radii are clamped to half the lesser dimension of the
// rectangle they are applied to.
type Radius struct {
	Radius       float64
	TopLeft      float64
	TopRight     float64
	BottomLeft   float64
	BottomRight  float64
	SmoothCorner bool
	// Weight blends smooth corners between circular (0) and fully
	// smoothed (1).
	Weight float64
}

// NewRadius returns a uniform radius with a full smoothing weight.
func NewRadius(radius float64) *Radius {
	return &Radius{Radius: radius, Weight: 1}
}

// Update sets the uniform radius.
func (r *Radius) Update(radius float64) {
	r.Radius = radius
}

// UpdateCorners sets the per-corner radii. They take effect only while
// the uniform radius is zero.
func (r *Radius) UpdateCorners(topLeft, topRight, bottomLeft, bottomRight float64) {
	r.TopLeft = topLeft
	r.TopRight = topRight
	r.BottomLeft = bottomLeft
	r.BottomRight = bottomRight
}

// Corners returns the effective radii as top-left, top-right,
// bottom-left, bottom-right.
func (r *Radius) Corners() [4]float64 {
	if r.Radius != 0 {
		return [4]float64{r.Radius, r.Radius, r.Radius, r.Radius}
	}
	return [4]float64{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
}

// RRect applies the radius to rect, dropping corners that mode does not
// round. The result is clamped.
func (r *Radius) RRect(rect graphics.Rect, mode RoundedCornerMode) graphics.RRect {
	c := r.Corners()
	rr := graphics.RRect{
		Rect:        rect,
		TopLeft:     graphics.CircularRadius(c[0]),
		TopRight:    graphics.CircularRadius(c[1]),
		BottomLeft:  graphics.CircularRadius(c[2]),
		BottomRight: graphics.CircularRadius(c[3]),
	}
	if !mode.roundsTop() {
		rr.TopLeft, rr.TopRight = graphics.Radius{}, graphics.Radius{}
	}
	if !mode.roundsBottom() {
		rr.BottomLeft, rr.BottomRight = graphics.Radius{}, graphics.Radius{}
	}
	return rr.Clamped()
}

// addTo appends the outline of rect with this radius to path.
func (r *Radius) addTo(path *graphics.Path, rect graphics.Rect, mode RoundedCornerMode) {
	rr := r.RRect(rect, mode)
	if r.SmoothCorner {
		path.AddSmoothRRect(rr, r.Weight)
		return
	}
	path.AddRRect(rr)
}
