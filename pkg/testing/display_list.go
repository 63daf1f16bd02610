package testing

import (
	"fmt"
	"math"

	"github.com/design2/chili/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Color returns the "color" param, or "" when the op has none.
func (o DisplayOp) Color() string {
	s, _ := o.Params["color"].(string)
	return s
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipPath(path *graphics.Path, op graphics.ClipOp, _ bool) {
	params := sortedMap("op", op.String())
	if path != nil {
		params["bounds"] = serializeRect(path.Bounds())
	}
	c.ops = append(c.ops, DisplayOp{Op: "clipPath", Params: params})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rrect.Rect)
	params["radius"] = serializeRadius(rrect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	if path != nil {
		params["bounds"] = serializeRect(path.Bounds())
		params["commands"] = len(path.Commands)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap(
		"color", serializeColor(p.Color),
		"style", p.Style.String(),
	)
	if p.Strokes() && p.StrokeWidth > 0 {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.MaskFilter != nil {
		m["blur"] = sortedMap(
			"style", p.MaskFilter.Style.String(),
			"radius", round2(p.MaskFilter.Radius),
		)
	}
	if p.Shader.IsValid() {
		m["shader"] = serializeGradient(p.Shader)
	}
	return m
}

func serializeGradient(g *graphics.Gradient) map[string]any {
	g = g.Resolved()
	stops := make([]any, 0, len(g.Stops()))
	for _, s := range g.Stops() {
		stops = append(stops, sortedMap("pos", round2(s.Position), "color", serializeColor(s.Color)))
	}
	m := sortedMap("type", g.Type.String(), "stops", stops)
	switch g.Type {
	case graphics.GradientTypeRadial:
		m["center"] = serializeOffset(g.Radial.Center)
		m["radius"] = round2(g.Radial.Radius)
	default:
		m["start"] = serializeOffset(g.Linear.Start)
		m["end"] = serializeOffset(g.Linear.End)
	}
	return m
}

func serializeOffset(o graphics.Offset) []float64 {
	return []float64{round2(o.X), round2(o.Y)}
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
