// Package shadowlayout implements a container that composites layered
// visual effects behind its children: outer drop shadows, a solid
// background, a gradient overlay and inner shadows, all following the
// container's rounded outline.
//
// Effects share one capability, [Effect]. The container owns one
// [Background], one [Gradient] and two ordered [Shadow] sequences. On
// every layout pass it resizes each effect to the container bounds and
// rebuilds their outlines; on every draw pass it paints them back to
// front:
//
//	background shadows → background → gradient → foreground shadows → children
//
// Later shadows in a sequence paint on top of earlier ones.
//
// A ShadowLayout is confined to the goroutine that drives layout and
// drawing. It performs no locking; hosts that render from several
// goroutines must funnel every call through a single owner.
//
// Mutators change state synchronously and then request a redraw through
// the function registered with [ShadowLayout.SetInvalidateFunc]. Requests
// coalesce until the next [ShadowLayout.Draw].
package shadowlayout
