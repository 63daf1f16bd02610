package graphics

import "fmt"

// BlurStyle controls how the blur mask is generated.
type BlurStyle int

const (
	// BlurStyleNormal blurs inside and outside the shape.
	BlurStyleNormal BlurStyle = iota
	// BlurStyleSolid keeps the shape solid inside, blurs outside.
	BlurStyleSolid
	// BlurStyleOuter draws nothing inside, blurs outside only.
	BlurStyleOuter
	// BlurStyleInner blurs inside the shape only, nothing outside.
	BlurStyleInner
)

// String returns a human-readable representation of the blur style.
func (s BlurStyle) String() string {
	switch s {
	case BlurStyleNormal:
		return "normal"
	case BlurStyleSolid:
		return "solid"
	case BlurStyleOuter:
		return "outer"
	case BlurStyleInner:
		return "inner"
	default:
		return fmt.Sprintf("BlurStyle(%d)", int(s))
	}
}

// MaskFilter blurs the coverage mask of a draw call before it is colored.
//
// Radius controls softness. Sigma is Radius * 0.5.
type MaskFilter struct {
	Style  BlurStyle
	Radius float64
}

// NewBlurMaskFilter returns a mask filter with the given style and radius.
func NewBlurMaskFilter(style BlurStyle, radius float64) *MaskFilter {
	return &MaskFilter{Style: style, Radius: radius}
}

// Sigma returns the gaussian sigma for the blur.
// Returns 0 if Radius is zero or negative.
func (f MaskFilter) Sigma() float64 {
	if f.Radius <= 0 {
		return 0
	}
	return f.Radius * 0.5
}
