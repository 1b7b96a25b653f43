package input

import (
	"log"
	"os"

	"github.com/javanhut/RavenGrid/geometry"
)

var debugInput = os.Getenv("RAVEN_GRID_DEBUG") == "1"

// Dispatcher routes pointer input through a fixed priority chain of
// gesture handlers. It is Idle until a handler claims a pointer-down and
// Active until the matching pointer-up.
type Dispatcher struct {
	Deps
	opts Options

	handlers    []GestureHandler
	rangeSelect *RangeSelect
	scroller    *EdgeScroller
	active      GestureHandler
	cursor      Cursor
}

// NewDispatcher builds an idle dispatcher over the given collaborators
func NewDispatcher(deps Deps, opts Options) *Dispatcher {
	d := &Dispatcher{Deps: deps, opts: opts}
	calc := deps.Calc
	d.rangeSelect = &RangeSelect{calc: calc}
	// Most specific first: resize handles overlap the header select bands
	d.handlers = []GestureHandler{
		&ColumnResize{calc: calc, opts: &d.opts},
		&RowResize{calc: calc, opts: &d.opts},
		&ColumnSelect{calc: calc},
		&RowSelect{calc: calc},
		d.rangeSelect,
	}
	d.scroller = NewEdgeScroller(calc, &d.opts)
	return d
}

// Options returns the current gesture options
func (d *Dispatcher) Options() Options {
	return d.opts
}

// SetOptions replaces the gesture options, e.g. after a settings change
func (d *Dispatcher) SetOptions(opts Options) {
	d.opts = opts
}

// Active returns the handler owning the current gesture, or nil when idle
func (d *Dispatcher) Active() GestureHandler {
	return d.active
}

// Cursor returns the affordance for the last pointer position
func (d *Dispatcher) Cursor() Cursor {
	return d.cursor
}

// PointerDown commits any open edit and starts the gesture under p
func (d *Dispatcher) PointerDown(p Pointer) {
	if d.editing() {
		d.Editor.CommitAndHide()
		d.redraw()
	}
	if d.active != nil {
		return
	}

	if p.Clicks >= 2 && d.rangeSelect.HitTest(p.Point) {
		if row, col, ok := d.rangeSelect.Cell(p.Point); ok && d.Editor != nil {
			d.Calc.Grid().Select(row, col)
			d.Editor.Show(row, col)
			d.selectionChanged()
			d.redraw()
			return
		}
	}

	for _, h := range d.handlers {
		if !h.HitTest(p.Point) {
			continue
		}
		d.active = h
		d.cursor = h.Cursor()
		h.OnPointerDown(p)
		if h.Selects() {
			d.scroller.Track(p)
			d.selectionChanged()
		}
		debugf("pointer down (%d,%d) claimed by %T", p.X, p.Y, h)
		d.redraw()
		return
	}
}

// PointerMove drags the active gesture, or only updates the hover cursor
// when idle.
func (d *Dispatcher) PointerMove(p Pointer) Cursor {
	if d.active == nil {
		d.cursor = d.hover(p.Point)
		return d.cursor
	}
	d.active.OnPointerDrag(p)
	if d.active.Selects() {
		d.scroller.Track(p)
		d.selectionChanged()
	}
	d.redraw()
	return d.cursor
}

// PointerUp ends the active gesture; a no-op when idle
func (d *Dispatcher) PointerUp(p Pointer) {
	if d.active == nil {
		return
	}
	h := d.active
	d.active = nil
	d.scroller.Stop()
	if cmd := h.OnPointerUp(p); cmd != nil && d.History != nil {
		d.History.Record(cmd)
		debugf("recorded %s", cmd.Name())
	}
	d.cursor = d.hover(p.Point)
	d.redraw()
}

func (d *Dispatcher) hover(p Point) Cursor {
	for _, h := range d.handlers {
		if h.HitTest(p) {
			return h.Cursor()
		}
	}
	return CursorDefault
}

// Step advances auto-scroll by one frame and reports whether anything moved
func (d *Dispatcher) Step() bool {
	if d.active == nil || !d.active.Selects() {
		return false
	}
	p, moved := d.scroller.Step()
	if !moved {
		return false
	}
	d.active.OnPointerDrag(p)
	d.selectionChanged()
	d.redraw()
	return true
}

// Wheel scrolls by wheel notches; shift turns vertical wheel motion
// horizontal. An active selection drag follows the scrolled content.
func (d *Dispatcher) Wheel(xoff, yoff float64, mods Mods) {
	if mods.Has(ModShift) && xoff == 0 {
		xoff, yoff = yoff, 0
	}
	step := float64(d.opts.WheelStep)
	if !d.Calc.ScrollBy(int(-xoff*step), int(-yoff*step)) {
		return
	}
	if d.active != nil && d.active.Selects() && d.scroller.Tracking() {
		d.active.OnPointerDrag(d.scroller.last)
		d.selectionChanged()
	}
	d.redraw()
}

// Resize refreshes the viewport after the surface changed size
func (d *Dispatcher) Resize() {
	d.Calc.ClampScroll()
	d.Calc.UpdateViewport()
	d.redraw()
}

// Calculator returns the geometry the dispatcher hit-tests against
func (d *Dispatcher) Calculator() *geometry.Calculator {
	return d.Calc
}

func debugf(format string, args ...interface{}) {
	if !debugInput {
		return
	}
	log.Printf("input: "+format, args...)
}
