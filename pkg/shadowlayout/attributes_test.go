package shadowlayout

import (
	stderrors "errors"
	"testing"

	"github.com/design2/chili/pkg/errors"
	"github.com/design2/chili/pkg/graphics"
)

type reportRecorder struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (r *reportRecorder) HandleError(err *errors.Error)      { r.errs = append(r.errs, err) }
func (r *reportRecorder) HandlePanic(err *errors.PanicError) { r.panics = append(r.panics, err) }

func (r *reportRecorder) attrs() []string {
	var out []string
	for _, e := range r.errs {
		var pe *errors.ParseError
		if stderrors.As(e, &pe) {
			out = append(out, pe.Attr)
		}
	}
	return out
}

func recordReports(t *testing.T) *reportRecorder {
	t.Helper()
	rec := &reportRecorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return rec
}

func TestNew_Defaults(t *testing.T) {
	s := New(Attributes{})

	if s.Alpha() != 1 {
		t.Errorf("alpha = %v, want 1", s.Alpha())
	}
	if s.ClipOutline() {
		t.Error("clip outline should default to false")
	}
	if r := s.RadiusInfo(); r == nil || r.Weight != 1 || r.SmoothCorner {
		t.Errorf("radius = %+v", r)
	}
	if _, ok := s.Background().Color(); ok {
		t.Error("background color should be unset")
	}
	if s.BackgroundShadowCount() != 1 || s.ForegroundShadowCount() != 1 {
		t.Errorf("declared shadows = %d/%d, want 1/1", s.BackgroundShadowCount(), s.ForegroundShadowCount())
	}
	if s.GradientInfo().Enabled() {
		t.Error("gradient should be disabled without an angle")
	}
	if s.RoundedCornerMode() != RoundedCornerModeAll {
		t.Errorf("mode = %v", s.RoundedCornerMode())
	}
}

func TestNew_FullAttributes(t *testing.T) {
	rec := recordReports(t)
	s := New(Attributes{
		ClipToOutline:               true,
		Alpha:                       floatPtr(0.8),
		BackgroundColor:             "#336699",
		BackgroundRadius:            0,
		BackgroundTopLeftRadius:     4,
		BackgroundBottomRightRadius: 9,
		SmoothCorner:                true,
		BackgroundRadiusWeight:      floatPtr(0.4),
		ShadowColor:                 "#40000000",
		ShadowOffsetY:               3,
		ShadowBlur:                  12,
		ShadowArray:                 "#20000000,0,1,2; #10000000,0,8,16",
		InnerShadowColor:            "#FFFFFF",
		InnerShadowBlur:             2,
		InnerShadowType:             "stroke",
		InnerShadowArray:            "#80FFFFFF,1,fill",
		GradientAngle:               intPtr(45),
		GradientArray:               "#FF0000,#00FF00,#0000FF",
		GradientPositions:           "0,0.2,1",
		RoundedCornerMode:           "top",
	})
	if len(rec.errs) != 0 {
		t.Fatalf("unexpected reports: %v", rec.errs)
	}

	if !s.ClipOutline() || s.Alpha() != 0.8 {
		t.Errorf("clip %v alpha %v", s.ClipOutline(), s.Alpha())
	}
	if c, ok := s.Background().Color(); !ok || c != graphics.RGB(0x33, 0x66, 0x99) {
		t.Errorf("background color = %v,%v", c, ok)
	}
	r := s.RadiusInfo()
	if got := r.Corners(); got != [4]float64{4, 0, 0, 9} {
		t.Errorf("corners = %v", got)
	}
	if !r.SmoothCorner || r.Weight != 0.4 {
		t.Errorf("smooth %v weight %v", r.SmoothCorner, r.Weight)
	}

	if n := s.BackgroundShadowCount(); n != 3 {
		t.Fatalf("background shadows = %d, want 3", n)
	}
	last, _ := s.BackgroundShadow(2)
	if last.BlurSize() != 16 || last.OffsetY() != 8 || !last.IsBackground() {
		t.Errorf("last outer shadow = blur %v dy %v", last.BlurSize(), last.OffsetY())
	}
	if last.Alpha() != 0.8 {
		t.Errorf("array shadow alpha = %v, want container alpha", last.Alpha())
	}

	if n := s.ForegroundShadowCount(); n != 2 {
		t.Fatalf("foreground shadows = %d, want 2", n)
	}
	declared, _ := s.ForegroundShadow(0)
	if declared.Type() != ShadowTypeStroke || declared.IsBackground() {
		t.Errorf("declared inner shadow type %v background %v", declared.Type(), declared.IsBackground())
	}

	g := s.GradientInfo()
	stops := g.Stops()
	if !g.Enabled() || len(stops) != 3 || stops[1].Position != 0.2 {
		t.Errorf("gradient stops = %+v", stops)
	}
	if s.RoundedCornerMode() != RoundedCornerModeTop {
		t.Errorf("mode = %v", s.RoundedCornerMode())
	}
}

func TestNew_UniformRadiusHidesCorners(t *testing.T) {
	s := New(Attributes{BackgroundRadius: 6, BackgroundTopLeftRadius: 20})
	if got := s.RadiusInfo().Corners(); got != [4]float64{6, 6, 6, 6} {
		t.Errorf("corners = %v", got)
	}
}

func TestNew_MalformedAttributesDegrade(t *testing.T) {
	rec := recordReports(t)
	s := New(Attributes{
		BackgroundColor:    "blue",
		ShadowColor:        "#000000",
		ShadowBlur:         4,
		ShadowArray:        "#000000,1,2",
		InnerShadowType:    "dotted",
		InnerShadowArray:   "#FFFFFF,x",
		GradientAngle:      intPtr(0),
		GradientStartColor: "#FF0000",
		GradientEndColor:   "#0000FF",
		GradientArray:      "#FF0000",
		GradientPositions:  "0,half",
		RoundedCornerMode:  "left",
	})

	want := map[string]bool{
		"background_color":    true,
		"shadow_array":        true,
		"inner_shadow_type":   true,
		"inner_shadow_array":  true,
		"gradient_array":      true,
		"gradient_positions":  true,
		"rounded_corner_mode": true,
	}
	got := rec.attrs()
	if len(got) != len(want) {
		t.Fatalf("reported %v, want %d attrs", got, len(want))
	}
	for _, a := range got {
		if !want[a] {
			t.Errorf("unexpected report for %q", a)
		}
	}
	for _, e := range rec.errs {
		if e.Kind != errors.KindParsing {
			t.Errorf("kind = %v, want parsing", e.Kind)
		}
	}

	if _, ok := s.Background().Color(); ok {
		t.Error("malformed background color should be unset")
	}
	if s.BackgroundShadowCount() != 1 || s.ForegroundShadowCount() != 1 {
		t.Errorf("shadows = %d/%d, want only the declared ones", s.BackgroundShadowCount(), s.ForegroundShadowCount())
	}
	if !s.GradientInfo().Enabled() || len(s.GradientInfo().Stops()) != 2 {
		t.Error("gradient should fall back to the named stops")
	}
	if s.RoundedCornerMode() != RoundedCornerModeAll {
		t.Errorf("mode = %v", s.RoundedCornerMode())
	}
}

func TestParseShadowArray(t *testing.T) {
	tests := []struct {
		name       string
		background bool
		in         string
		count      int
		wantErr    bool
	}{
		{"empty", true, "", 0, false},
		{"blank entries", true, " ; ;", 0, false},
		{"one outer", true, "#000000,1,2,3", 1, false},
		{"two outer", true, "#000000,1,2,3;#FF000000,0,0,1", 2, false},
		{"outer missing field", true, "#000000,1,2", 0, true},
		{"outer bad number", true, "#000000,1,two,3", 0, true},
		{"outer bad color", true, "black,1,2,3", 0, true},
		{"inner", false, "#FFFFFF,2", 1, false},
		{"inner with type", false, "#FFFFFF,2,stroke;#000000,1,fill", 2, false},
		{"inner bad type", false, "#FFFFFF,2,dash", 0, true},
		{"inner too many", false, "#FFFFFF,2,fill,1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShadowArray(tt.background, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.count {
				t.Errorf("count = %d, want %d", len(got), tt.count)
			}
			for _, sh := range got {
				if sh.IsBackground() != tt.background {
					t.Errorf("IsBackground = %v", sh.IsBackground())
				}
			}
		})
	}
}

func TestParseShadowArray_Fields(t *testing.T) {
	outer, err := ParseShadowArray(true, "#80000000, 1.5, -2, 6")
	if err != nil {
		t.Fatal(err)
	}
	sh := outer[0]
	if sh.OffsetX() != 1.5 || sh.OffsetY() != -2 || sh.BlurSize() != 6 {
		t.Errorf("offset %v,%v blur %v", sh.OffsetX(), sh.OffsetY(), sh.BlurSize())
	}
	if c, _ := sh.Color(); c != graphics.Color(0x80000000) {
		t.Errorf("color = %v", c)
	}

	inner, err := ParseShadowArray(false, "#FFFFFF,3,stroke")
	if err != nil {
		t.Fatal(err)
	}
	if inner[0].BlurSize() != 3 || inner[0].Type() != ShadowTypeStroke {
		t.Errorf("inner = blur %v type %v", inner[0].BlurSize(), inner[0].Type())
	}
}

func TestParseGradientArray(t *testing.T) {
	colors, err := ParseGradientArray("#FF0000, #00FF00;#0000FF")
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 || colors[2] != graphics.ColorBlue {
		t.Errorf("colors = %v", colors)
	}
	if _, err := ParseGradientArray("#FF0000"); err == nil {
		t.Error("expected error for a single color")
	}
	if got, err := ParseGradientArray(""); err != nil || got != nil {
		t.Errorf("empty = %v, %v", got, err)
	}
}

func TestParseGradientPositions(t *testing.T) {
	ps, err := ParseGradientPositions("0, 0.25,1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 3 || ps[1] != 0.25 {
		t.Errorf("positions = %v", ps)
	}
	if _, err := ParseGradientPositions("0,x"); err == nil {
		t.Error("expected error for a bad position")
	}
}
