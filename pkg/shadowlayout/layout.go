package shadowlayout

import (
	"github.com/design2/chili/pkg/errors"
	"github.com/design2/chili/pkg/graphics"
)

// Child is content hosted by a ShadowLayout. Children are stacked top to
// bottom and inherit the container's alpha.
type Child interface {
	// Size reports the size the child occupies.
	Size() graphics.Size
	// SetAlpha sets the child's opacity in [0, 1].
	SetAlpha(alpha float64)
	// Paint draws the child with its top-left corner at the origin.
	Paint(canvas graphics.Canvas)
}

// ShadowLayout composites shadows, a background and a gradient behind a
// vertical stack of children.
//
// The zero value is an empty container with no radius and no effects
// enabled; New builds one from Attributes.
type ShadowLayout struct {
	radius            *Radius
	background        *Background
	gradient          *Gradient
	backgroundShadows []*Shadow
	foregroundShadows []*Shadow
	cornerMode        RoundedCornerMode
	clipOutline       bool
	alpha             float64
	children          []Child

	width, height float64
	initialized   bool
	needsPaint    bool
	invalidate    func()
}

// New builds a container from construction-time attributes. Malformed
// attribute values are reported to the error handler and skipped.
func New(attrs Attributes) *ShadowLayout {
	s := &ShadowLayout{
		background: newUnsetBackground(),
		gradient:   NewGradient(),
		alpha:      1,
	}
	attrs.apply(s)
	s.initialized = true
	return s
}

func (s *ShadowLayout) lazyInit() {
	if s.background != nil {
		return
	}
	s.background = newUnsetBackground()
	s.gradient = NewGradient()
	s.alpha = 1
	s.initialized = true
}

// SetInvalidateFunc registers the host hook that schedules a redraw.
func (s *ShadowLayout) SetInvalidateFunc(fn func()) {
	s.invalidate = fn
}

// Invalidate marks the container dirty. The hook runs only when the
// container was clean, so bursts of mutations request one redraw.
func (s *ShadowLayout) Invalidate() {
	if s.needsPaint {
		return
	}
	s.needsPaint = true
	if s.invalidate != nil {
		s.invalidate()
	}
}

// NeedsPaint reports whether a redraw has been requested since the last
// Draw.
func (s *ShadowLayout) NeedsPaint() bool {
	return s.needsPaint
}

// AddChild appends a child below the existing ones.
func (s *ShadowLayout) AddChild(child Child) {
	if child == nil {
		return
	}
	s.lazyInit()
	child.SetAlpha(s.alpha)
	s.children = append(s.children, child)
	s.Invalidate()
}

// Children returns the hosted children in stacking order.
func (s *ShadowLayout) Children() []Child {
	return s.children
}

// Size returns the bounds of the last layout pass.
func (s *ShadowLayout) Size() graphics.Size {
	return graphics.Size{Width: s.width, Height: s.height}
}

// Layout resizes every effect to the container bounds, rebuilds their
// outlines and pushes the container alpha to the children.
func (s *ShadowLayout) Layout(width, height float64) {
	s.lazyInit()
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	s.width, s.height = width, height

	for _, e := range s.effects() {
		e.UpdateOffset(0, 0, width, height)
	}
	s.rebuildPaths()

	for _, c := range s.children {
		c.SetAlpha(s.alpha)
	}
}

// Draw paints the container back to front: background shadows, the
// background, the gradient, foreground shadows and then the children,
// clipped to the outline when ClipOutline is set.
func (s *ShadowLayout) Draw(canvas graphics.Canvas) {
	if canvas == nil {
		return
	}
	s.lazyInit()
	s.needsPaint = false

	for _, sh := range s.backgroundShadows {
		sh.DrawEffect(canvas)
	}
	s.background.DrawEffect(canvas)
	s.gradient.DrawEffect(canvas)
	for _, sh := range s.foregroundShadows {
		sh.DrawEffect(canvas)
	}

	canvas.Save()
	defer canvas.Restore()
	if s.clipOutline {
		canvas.ClipPath(s.background.Path(), graphics.ClipOpIntersect, true)
	}
	y := 0.0
	for _, c := range s.children {
		paintChild(canvas, c, y)
		y += c.Size().Height
	}
}

// paintChild draws c at vertical offset y. A panicking child is reported
// and skipped; the canvas state is restored either way.
func paintChild(canvas graphics.Canvas, c Child, y float64) {
	canvas.Save()
	defer canvas.Restore()
	defer errors.Recover("shadowlayout.Draw")
	canvas.Translate(0, y)
	c.Paint(canvas)
}

// effects lists every effect in paint order.
func (s *ShadowLayout) effects() []Effect {
	out := make([]Effect, 0, len(s.backgroundShadows)+len(s.foregroundShadows)+2)
	for _, sh := range s.backgroundShadows {
		out = append(out, sh)
	}
	out = append(out, s.background, s.gradient)
	for _, sh := range s.foregroundShadows {
		out = append(out, sh)
	}
	return out
}

// rebuildPaths regenerates every outline from the current regions and
// radius. Only outer shadows honor the rounded corner mode.
func (s *ShadowLayout) rebuildPaths() {
	for _, sh := range s.backgroundShadows {
		sh.UpdatePath(s.radius, s.cornerMode)
	}
	s.background.UpdatePath(s.radius, RoundedCornerModeAll)
	s.gradient.UpdatePath(s.radius, RoundedCornerModeAll)
	for _, sh := range s.foregroundShadows {
		sh.UpdatePath(s.radius, RoundedCornerModeAll)
	}
}

// adopt sizes a shadow that joins the container after layout.
func (s *ShadowLayout) adopt(sh *Shadow, mode RoundedCornerMode) {
	sh.UpdateOffset(0, 0, s.width, s.height)
	sh.UpdatePath(s.radius, mode)
}

// UpdateBackgroundColor sets the fill color.
func (s *ShadowLayout) UpdateBackgroundColor(color graphics.Color) {
	s.lazyInit()
	s.background.SetBackgroundColor(color)
	s.Invalidate()
}

// UpdateRadius sets a uniform corner radius.
func (s *ShadowLayout) UpdateRadius(radius float64) {
	s.ensureRadius().Update(radius)
	s.rebuildPaths()
	s.Invalidate()
}

// UpdateCornerRadius sets per-corner radii. They are used only while
// the uniform radius is zero.
func (s *ShadowLayout) UpdateCornerRadius(topLeft, topRight, bottomLeft, bottomRight float64) {
	s.ensureRadius().UpdateCorners(topLeft, topRight, bottomLeft, bottomRight)
	s.rebuildPaths()
	s.Invalidate()
}

// UpdateSmoothCornerStatus toggles smooth corners. It does nothing when
// no radius has been configured.
func (s *ShadowLayout) UpdateSmoothCornerStatus(enable bool) {
	if s.radius == nil {
		return
	}
	s.radius.SmoothCorner = enable
	s.rebuildPaths()
	s.Invalidate()
}

func (s *ShadowLayout) ensureRadius() *Radius {
	s.lazyInit()
	if s.radius == nil {
		s.radius = NewRadius(0)
	}
	return s.radius
}

// RadiusInfo returns the corner radius, or nil when none is configured.
func (s *ShadowLayout) RadiusInfo() *Radius {
	return s.radius
}

// Background returns the fill effect.
func (s *ShadowLayout) Background() *Background {
	s.lazyInit()
	return s.background
}

// GradientInfo returns the gradient effect.
func (s *ShadowLayout) GradientInfo() *Gradient {
	s.lazyInit()
	return s.gradient
}

// ClipOutline reports whether children are clipped to the outline.
func (s *ShadowLayout) ClipOutline() bool {
	return s.clipOutline
}

// SetClipOutline sets whether children are clipped to the outline.
func (s *ShadowLayout) SetClipOutline(clip bool) {
	s.clipOutline = clip
	s.Invalidate()
}

// RoundedCornerMode returns the corner mode used by outer shadows.
func (s *ShadowLayout) RoundedCornerMode() RoundedCornerMode {
	return s.cornerMode
}

// SetRoundedCornerMode selects which corners outer shadows round.
func (s *ShadowLayout) SetRoundedCornerMode(mode RoundedCornerMode) {
	s.lazyInit()
	s.cornerMode = mode
	for _, sh := range s.backgroundShadows {
		sh.UpdatePath(s.radius, mode)
	}
	s.Invalidate()
}

// Alpha returns the container alpha.
func (s *ShadowLayout) Alpha() float64 {
	s.lazyInit()
	return s.alpha
}

// SetAlpha fades the shadows, the background and the children. The
// gradient keeps its own alpha. Before construction completes it does
// nothing.
func (s *ShadowLayout) SetAlpha(alpha float64) {
	if !s.initialized {
		return
	}
	s.alpha = alpha
	for _, sh := range s.backgroundShadows {
		sh.UpdateAlpha(alpha)
	}
	s.background.UpdateAlpha(alpha)
	for _, sh := range s.foregroundShadows {
		sh.UpdateAlpha(alpha)
	}
	s.Invalidate()
	for _, c := range s.children {
		c.SetAlpha(alpha)
	}
}

// Gradient mutators.

// UpdateGradientColor sets a two-stop gradient.
func (s *ShadowLayout) UpdateGradientColor(start, end graphics.Color) {
	s.lazyInit()
	s.gradient.UpdateGradientColor(start, end)
	s.Invalidate()
}

// UpdateGradientColor3 sets a three-stop gradient.
func (s *ShadowLayout) UpdateGradientColor3(start, center, end graphics.Color) {
	s.lazyInit()
	s.gradient.UpdateGradientColor3(start, center, end)
	s.Invalidate()
}

// UpdateGradientColors sets an arbitrary stop array.
func (s *ShadowLayout) UpdateGradientColors(colors []graphics.Color, positions []float64) {
	s.lazyInit()
	s.gradient.UpdateGradientColors(colors, positions)
	s.Invalidate()
}

// UpdateGradientAngle sets the gradient angle in degrees. A negative
// angle disables the gradient.
func (s *ShadowLayout) UpdateGradientAngle(angle int) {
	s.lazyInit()
	s.gradient.UpdateGradientAngle(angle)
	s.Invalidate()
}

// UpdateGradientOffsetX shifts the gradient horizontally.
func (s *ShadowLayout) UpdateGradientOffsetX(offset float64) {
	s.lazyInit()
	s.gradient.UpdateGradientOffsetX(offset)
	s.Invalidate()
}

// UpdateGradientOffsetY shifts the gradient vertically.
func (s *ShadowLayout) UpdateGradientOffsetY(offset float64) {
	s.lazyInit()
	s.gradient.UpdateGradientOffsetY(offset)
	s.Invalidate()
}

// UpdateLocalMatrix sets the gradient transform; nil removes it.
func (s *ShadowLayout) UpdateLocalMatrix(m *graphics.Matrix) {
	s.lazyInit()
	s.gradient.UpdateLocalMatrix(m)
	s.Invalidate()
}

// Background shadows.

// BackgroundShadowCount returns the number of outer shadows.
func (s *ShadowLayout) BackgroundShadowCount() int {
	return len(s.backgroundShadows)
}

// BackgroundShadow returns the outer shadow at index.
func (s *ShadowLayout) BackgroundShadow(index int) (*Shadow, error) {
	if err := errors.CheckIndex("BackgroundShadow", index, len(s.backgroundShadows)); err != nil {
		return nil, err
	}
	return s.backgroundShadows[index], nil
}

// AddBackgroundShadow appends an outer shadow that paints above the
// existing ones.
func (s *ShadowLayout) AddBackgroundShadow(blurSize, offsetX, offsetY float64, color graphics.Color) {
	s.lazyInit()
	sh := NewBackgroundShadow(blurSize, offsetX, offsetY, color)
	sh.UpdateAlpha(s.alpha)
	s.adopt(sh, s.cornerMode)
	s.backgroundShadows = append(s.backgroundShadows, sh)
	s.Invalidate()
}

// RemoveBackgroundShadowLast drops the topmost outer shadow, if any.
func (s *ShadowLayout) RemoveBackgroundShadowLast() {
	if n := len(s.backgroundShadows); n > 0 {
		s.backgroundShadows = s.backgroundShadows[:n-1]
	}
	s.Invalidate()
}

// RemoveBackgroundShadowFirst drops the bottommost outer shadow, if any.
func (s *ShadowLayout) RemoveBackgroundShadowFirst() {
	if len(s.backgroundShadows) > 0 {
		s.backgroundShadows = s.backgroundShadows[1:]
	}
	s.Invalidate()
}

// RemoveAllBackgroundShadows drops every outer shadow.
func (s *ShadowLayout) RemoveAllBackgroundShadows() {
	s.backgroundShadows = nil
	s.Invalidate()
}

// RemoveBackgroundShadow drops the outer shadow at index.
func (s *ShadowLayout) RemoveBackgroundShadow(index int) error {
	var err error
	s.backgroundShadows, err = removeAt("RemoveBackgroundShadow", s.backgroundShadows, index)
	if err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// SetBackgroundShadow replaces the outer shadow at index with sh.
func (s *ShadowLayout) SetBackgroundShadow(index int, sh *Shadow) error {
	if err := errors.CheckIndex("SetBackgroundShadow", index, len(s.backgroundShadows)); err != nil {
		return err
	}
	if sh == nil {
		return nil
	}
	s.adopt(sh, s.cornerMode)
	s.backgroundShadows[index] = sh
	s.Invalidate()
	return nil
}

// UpdateBackgroundShadow reinitializes the outer shadow at index.
func (s *ShadowLayout) UpdateBackgroundShadow(index int, blurSize, offsetX, offsetY float64, color graphics.Color) error {
	if err := errors.CheckIndex("UpdateBackgroundShadow", index, len(s.backgroundShadows)); err != nil {
		return err
	}
	sh := s.backgroundShadows[index]
	sh.Init(true, blurSize, offsetX, offsetY, color)
	s.adopt(sh, s.cornerMode)
	s.Invalidate()
	return nil
}

// SetFirstBackgroundShadow replaces the first outer shadow.
func (s *ShadowLayout) SetFirstBackgroundShadow(sh *Shadow) error {
	return s.SetBackgroundShadow(0, sh)
}

// UpdateFirstBackgroundShadow reinitializes the first outer shadow.
func (s *ShadowLayout) UpdateFirstBackgroundShadow(blurSize, offsetX, offsetY float64, color graphics.Color) error {
	return s.UpdateBackgroundShadow(0, blurSize, offsetX, offsetY, color)
}

// Foreground shadows.

// ForegroundShadowCount returns the number of inner shadows.
func (s *ShadowLayout) ForegroundShadowCount() int {
	return len(s.foregroundShadows)
}

// ForegroundShadow returns the inner shadow at index.
func (s *ShadowLayout) ForegroundShadow(index int) (*Shadow, error) {
	if err := errors.CheckIndex("ForegroundShadow", index, len(s.foregroundShadows)); err != nil {
		return nil, err
	}
	return s.foregroundShadows[index], nil
}

// AddForegroundShadow appends an inner shadow that paints above the
// existing ones.
func (s *ShadowLayout) AddForegroundShadow(blurSize float64, color graphics.Color) {
	s.lazyInit()
	sh := NewForegroundShadow(blurSize, color)
	sh.UpdateAlpha(s.alpha)
	s.adopt(sh, RoundedCornerModeAll)
	s.foregroundShadows = append(s.foregroundShadows, sh)
	s.Invalidate()
}

// RemoveForegroundShadowLast drops the topmost inner shadow, if any.
func (s *ShadowLayout) RemoveForegroundShadowLast() {
	if n := len(s.foregroundShadows); n > 0 {
		s.foregroundShadows = s.foregroundShadows[:n-1]
	}
	s.Invalidate()
}

// RemoveForegroundShadowFirst drops the bottommost inner shadow, if any.
func (s *ShadowLayout) RemoveForegroundShadowFirst() {
	if len(s.foregroundShadows) > 0 {
		s.foregroundShadows = s.foregroundShadows[1:]
	}
	s.Invalidate()
}

// RemoveAllForegroundShadows drops every inner shadow.
func (s *ShadowLayout) RemoveAllForegroundShadows() {
	s.foregroundShadows = nil
	s.Invalidate()
}

// RemoveForegroundShadow drops the inner shadow at index.
func (s *ShadowLayout) RemoveForegroundShadow(index int) error {
	var err error
	s.foregroundShadows, err = removeAt("RemoveForegroundShadow", s.foregroundShadows, index)
	if err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// SetForegroundShadow replaces the inner shadow at index with sh. The
// shadow's offsets are reset to zero.
func (s *ShadowLayout) SetForegroundShadow(index int, sh *Shadow) error {
	if err := errors.CheckIndex("SetForegroundShadow", index, len(s.foregroundShadows)); err != nil {
		return err
	}
	if sh == nil {
		return nil
	}
	sh.UpdateShadowOffsetX(0)
	sh.UpdateShadowOffsetY(0)
	s.adopt(sh, RoundedCornerModeAll)
	s.foregroundShadows[index] = sh
	s.Invalidate()
	return nil
}

// UpdateForegroundShadow reinitializes the inner shadow at index.
func (s *ShadowLayout) UpdateForegroundShadow(index int, blurSize float64, color graphics.Color) error {
	if err := errors.CheckIndex("UpdateForegroundShadow", index, len(s.foregroundShadows)); err != nil {
		return err
	}
	sh := s.foregroundShadows[index]
	sh.Init(false, blurSize, 0, 0, color)
	s.adopt(sh, RoundedCornerModeAll)
	s.Invalidate()
	return nil
}

// SetFirstForegroundShadow replaces the first inner shadow.
func (s *ShadowLayout) SetFirstForegroundShadow(sh *Shadow) error {
	return s.SetForegroundShadow(0, sh)
}

// UpdateFirstForegroundShadow reinitializes the first inner shadow.
func (s *ShadowLayout) UpdateFirstForegroundShadow(blurSize float64, color graphics.Color) error {
	return s.UpdateForegroundShadow(0, blurSize, color)
}

func removeAt(op string, list []*Shadow, index int) ([]*Shadow, error) {
	if err := errors.CheckIndex(op, index, len(list)); err != nil {
		return list, err
	}
	return append(list[:index:index], list[index+1:]...), nil
}
