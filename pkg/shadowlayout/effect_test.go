package shadowlayout

import (
	"testing"

	"github.com/design2/chili/pkg/graphics"
)

func TestRadius_Corners(t *testing.T) {
	r := NewRadius(7)
	if got := r.Corners(); got != [4]float64{7, 7, 7, 7} {
		t.Errorf("uniform corners = %v", got)
	}

	r.UpdateCorners(1, 2, 3, 4)
	if got := r.Corners(); got != [4]float64{7, 7, 7, 7} {
		t.Errorf("uniform radius should win, got %v", got)
	}

	r.Update(0)
	if got := r.Corners(); got != [4]float64{1, 2, 3, 4} {
		t.Errorf("per-corner radii = %v", got)
	}
}

func TestRadius_RRectModes(t *testing.T) {
	rect := graphics.Rect{Right: 100, Bottom: 40}
	r := NewRadius(10)

	tests := []struct {
		mode        RoundedCornerMode
		top, bottom float64
	}{
		{RoundedCornerModeAll, 10, 10},
		{RoundedCornerModeTop, 10, 0},
		{RoundedCornerModeBottom, 0, 10},
		{RoundedCornerModeNone, 0, 0},
	}
	for _, tt := range tests {
		rr := r.RRect(rect, tt.mode)
		if rr.TopLeft.X != tt.top || rr.TopRight.X != tt.top {
			t.Errorf("%v: top corners = %v,%v", tt.mode, rr.TopLeft, rr.TopRight)
		}
		if rr.BottomLeft.X != tt.bottom || rr.BottomRight.X != tt.bottom {
			t.Errorf("%v: bottom corners = %v,%v", tt.mode, rr.BottomLeft, rr.BottomRight)
		}
	}
}

func TestRadius_NegativeClampsToZero(t *testing.T) {
	r := NewRadius(-5)
	rr := r.RRect(graphics.Rect{Right: 10, Bottom: 10}, RoundedCornerModeAll)
	if !rr.IsRect() {
		t.Errorf("negative radius should produce square corners, got %+v", rr)
	}
}

func TestParseRoundedCornerMode(t *testing.T) {
	for _, m := range []RoundedCornerMode{RoundedCornerModeAll, RoundedCornerModeTop, RoundedCornerModeBottom, RoundedCornerModeNone} {
		got, err := ParseRoundedCornerMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseRoundedCornerMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseRoundedCornerMode(" TOP "); err != nil || got != RoundedCornerModeTop {
		t.Errorf("case-insensitive parse = %v, %v", got, err)
	}
	if _, err := ParseRoundedCornerMode("middle"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestEffect_UpdatePathResets(t *testing.T) {
	b := NewBackground(graphics.ColorRed)
	b.UpdateOffset(0, 0, 50, 50)
	b.UpdatePath(nil, RoundedCornerModeAll)
	b.UpdatePath(nil, RoundedCornerModeAll)
	if n := len(b.Path().Commands); n != 5 {
		t.Errorf("commands = %d, want one rectangle", n)
	}
	if b.Region() != (graphics.Rect{Right: 50, Bottom: 50}) {
		t.Errorf("region = %+v", b.Region())
	}
}

func TestPaintColor(t *testing.T) {
	if got := paintColor(graphics.ColorRed, 0.5); got.Alpha8() != 128 {
		t.Errorf("opaque color alpha = %d, want 128", got.Alpha8())
	}
	translucent := graphics.Color(0x40FF0000)
	if got := paintColor(translucent, 0.5); got != translucent {
		t.Errorf("translucent color = %v, want its own alpha", got)
	}
}

func TestBackground_UnsetDrawsNothing(t *testing.T) {
	b := newUnsetBackground()
	b.UpdateOffset(0, 0, 10, 10)
	b.UpdatePath(nil, RoundedCornerModeAll)
	c := graphics.NewRasterCanvas(10, 10)
	b.DrawEffect(c)
	if px := c.Image().RGBAAt(5, 5); px.A != 0 {
		t.Errorf("unset background drew %+v", px)
	}
	b.DrawEffect(nil)
}

func TestShadow_Paint(t *testing.T) {
	outer := NewBackgroundShadow(-8, 1, 1, graphics.ColorBlack)
	p := outer.Paint()
	if p.Style != graphics.PaintStyleFillAndStroke || p.MaskFilter == nil || p.MaskFilter.Radius != 8 {
		t.Errorf("outer paint = %+v", p)
	}
	if p.StrokeWidth != 0 {
		t.Errorf("outer stroke width = %v, want 0", p.StrokeWidth)
	}

	inner := NewForegroundShadow(4, graphics.ColorBlack)
	inner.SetShadowType(ShadowTypeStroke)
	p = inner.Paint()
	if p.Style != graphics.PaintStyleStroke || p.StrokeWidth != 4 {
		t.Errorf("inner stroke paint = %+v", p)
	}

	inner.UpdateShadowColor(graphics.ColorRed)
	if inner.Paint().Color != graphics.ColorRed {
		t.Errorf("color = %v", inner.Paint().Color)
	}
}

func TestParseShadowType(t *testing.T) {
	if got, err := ParseShadowType("Stroke"); err != nil || got != ShadowTypeStroke {
		t.Errorf("ParseShadowType(Stroke) = %v, %v", got, err)
	}
	if _, err := ParseShadowType("outline"); err == nil {
		t.Error("expected error")
	}
}

func TestGradient_EnabledRequiresAngleAndStops(t *testing.T) {
	g := NewGradient()
	if g.Enabled() {
		t.Fatal("new gradient should be disabled")
	}
	g.UpdateGradientColor(graphics.ColorRed, graphics.ColorBlue)
	if g.Enabled() {
		t.Fatal("gradient without angle should be disabled")
	}
	g.UpdateGradientAngle(0)
	if !g.Enabled() {
		t.Fatal("gradient with angle and two stops should be enabled")
	}
	g.ClearGradientAngle()
	if g.Enabled() {
		t.Error("clearing the angle should disable the gradient")
	}

	g.UpdateGradientAngle(45)
	g.UpdateGradientAngle(-1)
	if _, ok := g.Angle(); ok || g.Enabled() {
		t.Error("a negative angle should unset the angle")
	}
	if g.Paint().Shader != nil {
		t.Error("a disabled gradient should carry no shader")
	}

	start, end := graphics.ColorRed, graphics.ColorBlue
	g.Init(GradientOptions{Angle: intPtr(-1), Start: &start, End: &end})
	if g.Enabled() {
		t.Error("a negative construction angle should leave the gradient disabled")
	}
}

func TestGradient_FormsAreExclusive(t *testing.T) {
	g := NewGradient()
	g.UpdateGradientColors([]graphics.Color{graphics.ColorRed, graphics.ColorGreen, graphics.ColorBlue, graphics.ColorWhite}, nil)
	if n := len(g.Stops()); n != 4 {
		t.Fatalf("array stops = %d, want 4", n)
	}

	g.UpdateGradientColor3(graphics.ColorRed, graphics.ColorGreen, graphics.ColorBlue)
	stops := g.Stops()
	if len(stops) != 3 || stops[1].Position != 0.5 || stops[1].Color != graphics.ColorGreen {
		t.Errorf("named stops = %+v", stops)
	}
}

func TestGradient_PositionsFallBackToEven(t *testing.T) {
	colors := []graphics.Color{graphics.ColorRed, graphics.ColorGreen, graphics.ColorBlue}
	tests := []struct {
		name      string
		positions []float64
		mid       float64
	}{
		{"explicit", []float64{0, 0.1, 1}, 0.1},
		{"missing", nil, 0.5},
		{"mismatched", []float64{0, 1}, 0.5},
		{"descending", []float64{0, 0.8, 0.4}, 0.5},
		{"out of range", []float64{0, 0.5, 1.5}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGradient()
			g.UpdateGradientColors(colors, tt.positions)
			if got := g.Stops()[1].Position; got != tt.mid {
				t.Errorf("middle position = %v, want %v", got, tt.mid)
			}
		})
	}
}

func TestGradient_ShaderFollowsGeometry(t *testing.T) {
	start, end := graphics.ColorRed, graphics.ColorBlue
	g := NewGradient()
	g.Init(GradientOptions{
		Angle: intPtr(0),
		Start: &start,
		End:   &end,
	})
	g.UpdateOffset(0, 0, 100, 20)
	g.UpdatePath(nil, RoundedCornerModeAll)

	shader := g.Paint().Shader
	if !shader.IsValid() {
		t.Fatal("expected a shader")
	}
	if shader.Linear.Start.X != 0 || shader.Linear.End.X != 100 {
		t.Errorf("linear span = %v -> %v", shader.Linear.Start, shader.Linear.End)
	}

	g.UpdateGradientOffsetX(10)
	if got := g.Paint().Shader.Linear.Start.X; got != 10 {
		t.Errorf("offset start = %v, want 10", got)
	}
}

func TestGradient_LocalMatrixCopied(t *testing.T) {
	g := NewGradient()
	g.UpdateGradientColor(graphics.ColorRed, graphics.ColorBlue)
	g.UpdateGradientAngle(90)
	g.UpdateOffset(0, 0, 10, 10)

	m := graphics.ScaleMatrix(2, 2)
	g.UpdateLocalMatrix(&m)
	m = graphics.IdentityMatrix()
	if lm := g.LocalMatrix(); lm == nil || lm.IsIdentity() {
		t.Fatal("gradient should keep its own copy of the matrix")
	}
	if g.Paint().Shader.LocalMatrix == nil {
		t.Error("shader should carry the local matrix")
	}

	g.UpdateLocalMatrix(nil)
	if g.LocalMatrix() != nil || g.Paint().Shader.LocalMatrix != nil {
		t.Error("nil should remove the matrix")
	}
}

func TestGradient_AlphaIndependent(t *testing.T) {
	g := NewGradient()
	g.UpdateAlpha(0.25)
	if a := g.Paint().Color.Alpha8(); a != 64 {
		t.Errorf("paint alpha = %d, want 64", a)
	}
}
