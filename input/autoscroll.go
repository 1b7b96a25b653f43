package input

import "github.com/javanhut/RavenGrid/geometry"

// EdgeScroller scrolls the view while a selection drag sits near or past
// the data area's edge. The host calls Step once per frame.
type EdgeScroller struct {
	calc *geometry.Calculator
	opts *Options

	tracking bool
	last     Pointer
}

func NewEdgeScroller(calc *geometry.Calculator, opts *Options) *EdgeScroller {
	return &EdgeScroller{calc: calc, opts: opts}
}

// Track remembers the latest drag position
func (s *EdgeScroller) Track(p Pointer) {
	s.last = p
	s.tracking = true
}

func (s *EdgeScroller) Stop() {
	s.tracking = false
}

func (s *EdgeScroller) Tracking() bool {
	return s.tracking
}

// Step scrolls toward the edge the pointer is pushing against. It returns
// the last drag position and whether the view moved, in which case the
// caller re-forwards the drag so the selection follows the new content.
func (s *EdgeScroller) Step() (Pointer, bool) {
	if !s.tracking {
		return s.last, false
	}
	dx, dy := s.delta(s.last.Point)
	if dx == 0 && dy == 0 {
		return s.last, false
	}
	return s.last, s.calc.ScrollBy(dx, dy)
}

func (s *EdgeScroller) delta(p Point) (dx, dy int) {
	g := s.calc.Grid()
	w, h := s.calc.SurfaceSize()
	margin := s.opts.AutoScrollMargin
	dx = edgeStep(p.X, g.HeaderWidth()+margin, w-margin, s.opts.AutoScrollMaxStep)
	dy = edgeStep(p.Y, g.HeaderHeight()+margin, h-margin, s.opts.AutoScrollMaxStep)
	return dx, dy
}

// edgeStep is proportional to how far v overshoots [lo, hi], capped at maxStep
func edgeStep(v, lo, hi, maxStep int) int {
	switch {
	case v < lo:
		return -clamp((lo-v)/2, 1, maxStep)
	case v > hi:
		return clamp((v-hi)/2, 1, maxStep)
	}
	return 0
}
