package graphics

// ClipOp specifies how a new clip shape combines with the existing clip.
type ClipOp int

const (
	// ClipOpIntersect restricts drawing to the intersection of the
	// existing clip and the new shape.
	ClipOpIntersect ClipOp = iota
	// ClipOpDifference excludes the new shape from the existing clip.
	ClipOpDifference
)

func (op ClipOp) String() string {
	switch op {
	case ClipOpIntersect:
		return "intersect"
	case ClipOpDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipPath restricts future drawing to the given path.
	ClipPath(path *Path, op ClipOp, antialias bool)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
