package input

import (
	"time"

	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/geometry"
	"github.com/javanhut/RavenGrid/grid"
)

// Point is a surface-local position in pixels
type Point struct {
	X int
	Y int
}

// Mods is a set of held modifier keys
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Mods) Has(mod Mods) bool {
	return m&mod != 0
}

// Pointer is a pointer event. Clicks counts rapid presses at the same spot,
// so a double click arrives as a down event with Clicks == 2.
type Pointer struct {
	Point
	Mods   Mods
	Clicks int
}

// Cursor is the hover affordance the host should display
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCell
	CursorColResize
	CursorRowResize
	CursorColSelect
	CursorRowSelect
)

// Options tunes gesture recognition
type Options struct {
	ResizeTolerance   int // px either side of an edge that grabs it
	MinColWidth       int
	MinRowHeight      int
	AutoScrollMargin  int // px inside the data area edge where auto-scroll starts
	AutoScrollMaxStep int // px per frame
	WheelStep         int // px per wheel notch
}

func DefaultOptions() Options {
	return Options{
		ResizeTolerance:   4,
		MinColWidth:       16,
		MinRowHeight:      12,
		AutoScrollMargin:  20,
		AutoScrollMaxStep: 40,
		WheelStep:         60,
	}
}

// History applies and bookkeeps undoable commands
type History interface {
	Execute(cmd commands.Command)
	Record(cmd commands.Command)
}

// CellEditor is the inline editor overlay
type CellEditor interface {
	Show(row, col int, seed ...string)
	IsActive() bool
	CommitAndHide()
	Cancel()
	InsertChar(char rune)
	Backspace()
	Delete()
	CaretHome()
	CaretEnd()
	MoveCaret(delta int)
}

// Redrawer is asked to repaint after state changes
type Redrawer interface {
	RequestRedraw()
}

// StatusSink receives user-facing status output
type StatusSink interface {
	ShowCellAddress(address string)
	ShowError(message string)
}

// Deps are the collaborators shared by the dispatcher and navigator. Every
// field except Calc may be nil.
type Deps struct {
	Calc    *geometry.Calculator
	History History
	Editor  CellEditor
	Redraw  Redrawer
	Status  StatusSink
	// OnSelectionChange runs after anything that moves the selection or
	// changes the cells inside it.
	OnSelectionChange func()
}

func (d Deps) redraw() {
	if d.Redraw != nil {
		d.Redraw.RequestRedraw()
	}
}

func (d Deps) editing() bool {
	return d.Editor != nil && d.Editor.IsActive()
}

// selectionChanged reports the selection address and notifies listeners
func (d Deps) selectionChanged() {
	g := d.Calc.Grid()
	if d.Status != nil {
		if r, ok := g.Selection(); ok {
			d.Status.ShowCellAddress(grid.RangeAddress(r))
		}
	}
	if d.OnSelectionChange != nil {
		d.OnSelectionChange()
	}
}

// ClickCounter turns pointer-down events into click counts
type ClickCounter struct {
	Interval time.Duration
	Slop     int // px the pointer may drift between clicks
	Now      func() time.Time

	last  time.Time
	at    Point
	count int
}

func NewClickCounter(interval time.Duration) *ClickCounter {
	return &ClickCounter{Interval: interval, Slop: 4, Now: time.Now}
}

// Down registers a press and returns its click count
func (c *ClickCounter) Down(p Point) int {
	now := c.Now()
	if c.count > 0 && now.Sub(c.last) <= c.Interval && abs(p.X-c.at.X) <= c.Slop && abs(p.Y-c.at.Y) <= c.Slop {
		c.count++
	} else {
		c.count = 1
	}
	c.last = now
	c.at = p
	return c.count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(value, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
