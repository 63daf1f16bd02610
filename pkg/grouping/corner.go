package grouping

import "github.com/design2/chili/pkg/shadowlayout"

// CornerModeFor returns the outer-shadow corner mode of the item at index
// in a group of count items. A lone item rounds every corner, the first
// and last round their outer edge and middle items round none. Indices
// outside the group get RoundedCornerModeNone.
func CornerModeFor(index, count int) shadowlayout.RoundedCornerMode {
	switch {
	case index < 0 || index >= count:
		return shadowlayout.RoundedCornerModeNone
	case count == 1:
		return shadowlayout.RoundedCornerModeAll
	case index == 0:
		return shadowlayout.RoundedCornerModeTop
	case index == count-1:
		return shadowlayout.RoundedCornerModeBottom
	default:
		return shadowlayout.RoundedCornerModeNone
	}
}

// ApplyCornerModes sets the corner mode of each container from its
// position in group. Nil entries are skipped but still count.
func ApplyCornerModes(group []*shadowlayout.ShadowLayout) {
	for i, s := range group {
		if s == nil {
			continue
		}
		s.SetRoundedCornerMode(CornerModeFor(i, len(group)))
	}
}
