package graphics

// DisplayList is a recorded sequence of canvas calls that can be replayed
// onto any Canvas.
type DisplayList struct {
	calls []func(Canvas)
	size  Size
}

// Paint replays the list onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, call := range d.calls {
		call(canvas)
	}
}

// Size returns the size the list was recorded at.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.calls)
}

// PictureRecorder records canvas calls into a DisplayList.
type PictureRecorder struct {
	calls     []func(Canvas)
	recording bool
	size      Size
}

// BeginRecording starts a recording and returns the canvas to draw on.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.calls = nil
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording stops the recording. Calls made on the recording canvas
// afterwards are dropped.
func (r *PictureRecorder) EndRecording() *DisplayList {
	dl := &DisplayList{calls: r.calls, size: r.size}
	r.calls = nil
	r.recording = false
	return dl
}

func (r *PictureRecorder) record(call func(Canvas)) {
	if r.recording {
		r.calls = append(r.calls, call)
	}
}

// recordingCanvas copies every path it receives: effects reuse and reset
// their paths between frames, recorded lists must not see that.
type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save() {
	c.recorder.record(Canvas.Save)
}

func (c *recordingCanvas) Restore() {
	c.recorder.record(Canvas.Restore)
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.record(func(dst Canvas) { dst.Translate(dx, dy) })
}

func (c *recordingCanvas) ClipPath(path *Path, op ClipOp, antialias bool) {
	path = path.Clone()
	c.recorder.record(func(dst Canvas) { dst.ClipPath(path, op, antialias) })
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.record(func(dst Canvas) { dst.Clear(color) })
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.record(func(dst Canvas) { dst.DrawRect(rect, paint) })
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.record(func(dst Canvas) { dst.DrawRRect(rrect, paint) })
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	path = path.Clone()
	c.recorder.record(func(dst Canvas) { dst.DrawPath(path, paint) })
}

func (c *recordingCanvas) Size() Size {
	return c.recorder.size
}
