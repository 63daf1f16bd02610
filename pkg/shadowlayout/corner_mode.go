package shadowlayout

import (
	"fmt"
	"strings"
)

// RoundedCornerMode selects which corners of an outer shadow are rounded.
// It lets a shadow line up with neighbours when containers are stacked
// into a group; the background, gradient and inner shadows always use
// every corner.
type RoundedCornerMode int

const (
	// RoundedCornerModeAll rounds every corner.
	RoundedCornerModeAll RoundedCornerMode = iota
	// RoundedCornerModeTop rounds the top corners only.
	RoundedCornerModeTop
	// RoundedCornerModeBottom rounds the bottom corners only.
	RoundedCornerModeBottom
	// RoundedCornerModeNone rounds no corners.
	RoundedCornerModeNone
)

func (m RoundedCornerMode) String() string {
	switch m {
	case RoundedCornerModeAll:
		return "all"
	case RoundedCornerModeTop:
		return "top"
	case RoundedCornerModeBottom:
		return "bottom"
	case RoundedCornerModeNone:
		return "none"
	default:
		return fmt.Sprintf("RoundedCornerMode(%d)", int(m))
	}
}

// ParseRoundedCornerMode parses the String form of a mode. The empty
// string is RoundedCornerModeAll.
func ParseRoundedCornerMode(s string) (RoundedCornerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return RoundedCornerModeAll, nil
	case "top":
		return RoundedCornerModeTop, nil
	case "bottom":
		return RoundedCornerModeBottom, nil
	case "none":
		return RoundedCornerModeNone, nil
	}
	return RoundedCornerModeAll, fmt.Errorf("unknown rounded corner mode %q", s)
}

func (m RoundedCornerMode) roundsTop() bool {
	return m == RoundedCornerModeAll || m == RoundedCornerModeTop
}

func (m RoundedCornerMode) roundsBottom() bool {
	return m == RoundedCornerModeAll || m == RoundedCornerModeBottom
}
