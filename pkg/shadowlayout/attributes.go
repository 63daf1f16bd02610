package shadowlayout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/design2/chili/pkg/errors"
	"github.com/design2/chili/pkg/graphics"
)

// Attributes is the flat construction-time configuration of a
// ShadowLayout. Colors use the graphics.ParseColor forms. Array
// attributes separate entries with ';' and fields with ','.
type Attributes struct {
	ClipToOutline bool `yaml:"clip_to_outline"`
	// Alpha defaults to 1 when nil.
	Alpha *float64 `yaml:"alpha"`

	BackgroundColor string `yaml:"background_color"`

	BackgroundRadius            float64 `yaml:"background_radius"`
	BackgroundTopLeftRadius     float64 `yaml:"background_top_left_radius"`
	BackgroundTopRightRadius    float64 `yaml:"background_top_right_radius"`
	BackgroundBottomLeftRadius  float64 `yaml:"background_bottom_left_radius"`
	BackgroundBottomRightRadius float64 `yaml:"background_bottom_right_radius"`
	SmoothCorner                bool    `yaml:"smooth_corner"`
	// BackgroundRadiusWeight defaults to 1 when nil.
	BackgroundRadiusWeight *float64 `yaml:"background_radius_weight"`

	ShadowColor   string  `yaml:"shadow_color"`
	ShadowOffsetX float64 `yaml:"shadow_offset_x"`
	ShadowOffsetY float64 `yaml:"shadow_offset_y"`
	ShadowBlur    float64 `yaml:"shadow_blur"`
	// ShadowArray lists extra outer shadows as "color,offsetX,offsetY,blur".
	ShadowArray string `yaml:"shadow_array"`

	InnerShadowColor string  `yaml:"inner_shadow_color"`
	InnerShadowBlur  float64 `yaml:"inner_shadow_blur"`
	InnerShadowType  string  `yaml:"inner_shadow_type"`
	// InnerShadowArray lists extra inner shadows as "color,blur[,fill|stroke]".
	InnerShadowArray string `yaml:"inner_shadow_array"`

	GradientStartColor  string  `yaml:"gradient_start_color"`
	GradientCenterColor string  `yaml:"gradient_center_color"`
	GradientEndColor    string  `yaml:"gradient_end_color"`
	GradientOffsetX     float64 `yaml:"gradient_offset_x"`
	GradientOffsetY     float64 `yaml:"gradient_offset_y"`
	// GradientAngle leaves the gradient disabled when nil or negative.
	GradientAngle     *int   `yaml:"gradient_angle"`
	GradientArray     string `yaml:"gradient_array"`
	GradientPositions string `yaml:"gradient_positions"`

	RoundedCornerMode string `yaml:"rounded_corner_mode"`
}

const attrOp = "shadowlayout.New"

func (a Attributes) apply(s *ShadowLayout) {
	s.clipOutline = a.ClipToOutline
	s.alpha = 1
	if a.Alpha != nil {
		s.alpha = *a.Alpha
	}

	if c, ok := parseColorAttr("background_color", a.BackgroundColor); ok {
		s.background.SetBackgroundColor(c)
	}
	s.background.UpdateAlpha(s.alpha)

	s.radius = NewRadius(a.BackgroundRadius)
	if a.BackgroundRadius == 0 {
		s.radius.UpdateCorners(a.BackgroundTopLeftRadius, a.BackgroundTopRightRadius,
			a.BackgroundBottomLeftRadius, a.BackgroundBottomRightRadius)
	}
	s.radius.SmoothCorner = a.SmoothCorner
	if a.BackgroundRadiusWeight != nil {
		s.radius.Weight = *a.BackgroundRadiusWeight
	}

	outer := newUnsetShadow(true, a.ShadowBlur, a.ShadowOffsetX, a.ShadowOffsetY)
	if c, ok := parseColorAttr("shadow_color", a.ShadowColor); ok {
		outer.UpdateShadowColor(c)
	}
	s.backgroundShadows = append(s.backgroundShadows, outer)
	if extra, err := ParseShadowArray(true, a.ShadowArray); err != nil {
		errors.ReportParse(attrOp, "shadow_array", a.ShadowArray, err)
	} else {
		s.backgroundShadows = append(s.backgroundShadows, extra...)
	}

	inner := newUnsetShadow(false, a.InnerShadowBlur, 0, 0)
	if c, ok := parseColorAttr("inner_shadow_color", a.InnerShadowColor); ok {
		inner.UpdateShadowColor(c)
	}
	if a.InnerShadowType != "" {
		if t, err := ParseShadowType(a.InnerShadowType); err != nil {
			errors.ReportParse(attrOp, "inner_shadow_type", a.InnerShadowType, err)
		} else {
			inner.SetShadowType(t)
		}
	}
	s.foregroundShadows = append(s.foregroundShadows, inner)
	if extra, err := ParseShadowArray(false, a.InnerShadowArray); err != nil {
		errors.ReportParse(attrOp, "inner_shadow_array", a.InnerShadowArray, err)
	} else {
		s.foregroundShadows = append(s.foregroundShadows, extra...)
	}

	for _, sh := range s.backgroundShadows {
		sh.UpdateAlpha(s.alpha)
	}
	for _, sh := range s.foregroundShadows {
		sh.UpdateAlpha(s.alpha)
	}

	opts := GradientOptions{
		Angle:   a.GradientAngle,
		OffsetX: a.GradientOffsetX,
		OffsetY: a.GradientOffsetY,
	}
	if c, ok := parseColorAttr("gradient_start_color", a.GradientStartColor); ok {
		opts.Start = &c
	}
	if c, ok := parseColorAttr("gradient_center_color", a.GradientCenterColor); ok {
		opts.Center = &c
	}
	if c, ok := parseColorAttr("gradient_end_color", a.GradientEndColor); ok {
		opts.End = &c
	}
	if colors, err := ParseGradientArray(a.GradientArray); err != nil {
		errors.ReportParse(attrOp, "gradient_array", a.GradientArray, err)
	} else {
		opts.Colors = colors
	}
	if positions, err := ParseGradientPositions(a.GradientPositions); err != nil {
		errors.ReportParse(attrOp, "gradient_positions", a.GradientPositions, err)
	} else {
		opts.Positions = positions
	}
	s.gradient.Init(opts)

	mode, err := ParseRoundedCornerMode(a.RoundedCornerMode)
	if err != nil {
		errors.ReportParse(attrOp, "rounded_corner_mode", a.RoundedCornerMode, err)
	}
	s.cornerMode = mode
}

// parseColorAttr parses an optional color. Empty means unset; a bad
// value is reported and treated as unset.
func parseColorAttr(attr, value string) (graphics.Color, bool) {
	if strings.TrimSpace(value) == "" {
		return 0, false
	}
	c, err := graphics.ParseColor(value)
	if err != nil {
		errors.ReportParse(attrOp, attr, value, err)
		return 0, false
	}
	return c, true
}

// ParseShadowArray parses a shadow list. Outer entries are
// "color,offsetX,offsetY,blur"; inner entries are
// "color,blur[,fill|stroke]". An empty string yields no shadows. Any
// malformed entry fails the whole list.
func ParseShadowArray(background bool, s string) ([]*Shadow, error) {
	entries := splitEntries(s)
	if len(entries) == 0 {
		return nil, nil
	}
	shadows := make([]*Shadow, 0, len(entries))
	for i, entry := range entries {
		fields := splitFields(entry)
		sh, err := parseShadowEntry(background, fields)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		shadows = append(shadows, sh)
	}
	return shadows, nil
}

func parseShadowEntry(background bool, fields []string) (*Shadow, error) {
	if background {
		if len(fields) != 4 {
			return nil, fmt.Errorf("want 4 fields, got %d", len(fields))
		}
		c, err := graphics.ParseColor(fields[0])
		if err != nil {
			return nil, err
		}
		nums, err := parseFloats(fields[1:])
		if err != nil {
			return nil, err
		}
		return NewBackgroundShadow(nums[2], nums[0], nums[1], c), nil
	}

	if len(fields) != 2 && len(fields) != 3 {
		return nil, fmt.Errorf("want 2 or 3 fields, got %d", len(fields))
	}
	c, err := graphics.ParseColor(fields[0])
	if err != nil {
		return nil, err
	}
	blur, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, err
	}
	sh := NewForegroundShadow(blur, c)
	if len(fields) == 3 {
		t, err := ParseShadowType(fields[2])
		if err != nil {
			return nil, err
		}
		sh.SetShadowType(t)
	}
	return sh, nil
}

// ParseGradientArray parses a color list separated by ',' or ';'. An
// empty string yields nil; a list must hold at least two colors.
func ParseGradientArray(s string) ([]graphics.Color, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("need at least 2 colors, got %d", len(fields))
	}
	colors := make([]graphics.Color, len(fields))
	for i, f := range fields {
		c, err := graphics.ParseColor(f)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// ParseGradientPositions parses a position list separated by ',' or ';'.
func ParseGradientPositions(s string) ([]float64, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, nil
	}
	return parseFloats(fields)
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func splitEntries(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ";") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
}
