package render

// FrameLoop coalesces redraw requests. Any number of requests between two
// frames produce a single paint.
type FrameLoop struct {
	Paint func()
	dirty bool
}

// NewFrameLoop returns a loop that paints the first frame
func NewFrameLoop(paint func()) *FrameLoop {
	return &FrameLoop{Paint: paint, dirty: true}
}

// RequestRedraw marks the next frame as needing a paint
func (l *FrameLoop) RequestRedraw() {
	l.dirty = true
}

// Dirty reports whether a paint is pending
func (l *FrameLoop) Dirty() bool {
	return l.dirty
}

// Frame paints if requested and reports whether it did
func (l *FrameLoop) Frame() bool {
	if !l.dirty {
		return false
	}
	l.dirty = false
	if l.Paint != nil {
		l.Paint()
	}
	return true
}
