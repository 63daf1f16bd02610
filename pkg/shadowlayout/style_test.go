package shadowlayout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cardStyle = `
requires: v0.1.0
clip_to_outline: true
alpha: 0.9
background_color: "#FFFFFF"
background_radius: 12
smooth_corner: true
shadow_color: "#33000000"
shadow_offset_y: 4
shadow_blur: 16
shadow_array: "#1A000000,0,1,2"
inner_shadow_color: "#0D000000"
inner_shadow_blur: 3
gradient_angle: 90
gradient_start_color: "#FFFFFF"
gradient_end_color: "#F0F0F0"
rounded_corner_mode: top
`

func TestLoadStyle(t *testing.T) {
	st, err := LoadStyle(strings.NewReader(cardStyle))
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if st.Requires != "v0.1.0" {
		t.Errorf("requires = %q", st.Requires)
	}
	a := st.Attributes
	if !a.ClipToOutline || a.Alpha == nil || *a.Alpha != 0.9 {
		t.Errorf("clip %v alpha %v", a.ClipToOutline, a.Alpha)
	}
	if a.BackgroundRadius != 12 || !a.SmoothCorner {
		t.Errorf("radius %v smooth %v", a.BackgroundRadius, a.SmoothCorner)
	}
	if a.GradientAngle == nil || *a.GradientAngle != 90 {
		t.Errorf("angle = %v", a.GradientAngle)
	}
	if a.BackgroundRadiusWeight != nil {
		t.Errorf("weight should be absent, got %v", *a.BackgroundRadiusWeight)
	}

	s := New(a)
	if s.BackgroundShadowCount() != 2 || s.RoundedCornerMode() != RoundedCornerModeTop {
		t.Errorf("shadows %d mode %v", s.BackgroundShadowCount(), s.RoundedCornerMode())
	}
}

func TestLoadStyle_Empty(t *testing.T) {
	st, err := LoadStyle(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if st.Alpha != nil || st.GradientAngle != nil {
		t.Error("empty style should leave optional attributes unset")
	}
}

func TestLoadStyle_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", "alpha: [1"},
		{"type", "background_radius: wide"},
		{"requires", "requires: one"},
		{"requires partial", "requires: v1.x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadStyle(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadAttributesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(path, []byte(cardStyle), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAttributesFile(path)
	if err != nil {
		t.Fatalf("LoadAttributesFile: %v", err)
	}
	if a.ShadowBlur != 16 || a.ShadowColor != "#33000000" {
		t.Errorf("shadow blur %v color %q", a.ShadowBlur, a.ShadowColor)
	}

	_, err = LoadAttributesFile(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read style") {
		t.Errorf("missing file err = %v", err)
	}
}

func TestLoadAttributes(t *testing.T) {
	a, err := LoadAttributes(strings.NewReader("background_color: \"#000000\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if a.BackgroundColor != "#000000" {
		t.Errorf("background color = %q", a.BackgroundColor)
	}
}

func TestStyle_Supports(t *testing.T) {
	st := &Style{Requires: "v0.3.0"}
	tests := []struct {
		version string
		want    bool
	}{
		{"v0.3.0", true},
		{"v1.0.0", true},
		{"v0.2.9", false},
		{"0.3.1", true},
		{"0.2.0", false},
		{"0.3.0-dev", true},
		{"v0.2.9-rc.1", false},
		{"v0.3.0+build.7", true},
		{"dev", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := st.Supports(tt.version); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
	if !(&Style{Requires: "0.2.0"}).Supports("v0.2.0") {
		t.Error("requires without a v prefix should still compare")
	}
	if !(&Style{}).Supports("v0.0.1") {
		t.Error("a style without requires supports every version")
	}
}
