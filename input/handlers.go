package input

import (
	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/geometry"
	"github.com/javanhut/RavenGrid/grid"
)

// GestureHandler claims a pointer interaction from pointer-down to
// pointer-up. HitTest must not mutate anything; it also drives hover.
type GestureHandler interface {
	HitTest(p Point) bool
	OnPointerDown(p Pointer)
	OnPointerDrag(p Pointer)
	// OnPointerUp ends the gesture and returns the command describing what
	// it already applied, or nil.
	OnPointerUp(p Pointer) commands.Command
	Cursor() Cursor
	// Selects reports whether the gesture moves the selection, which makes
	// it eligible for auto-scroll.
	Selects() bool
}

// ColumnResize drags the right edge of a column in the header row
type ColumnResize struct {
	calc *geometry.Calculator
	opts *Options

	col        int
	startX     int
	startWidth int
}

func (h *ColumnResize) HitTest(p Point) bool {
	return h.target(p) != geometry.NotFound
}

// target returns the column whose right edge is within tolerance of p
func (h *ColumnResize) target(p Point) int {
	c := h.calc
	g := c.Grid()
	if c.RowAtScreenY(p.Y) != grid.HeaderIndex || p.X < g.HeaderWidth() {
		return geometry.NotFound
	}
	tol := h.opts.ResizeTolerance
	col := c.ColAtScreenX(p.X)
	if col == geometry.NotFound {
		// Past the last column only its right edge can be grabbed
		last := g.Cols - 1
		if abs(c.ScreenColX(last)+g.ColWidth(last)-p.X) <= tol {
			return last
		}
		return geometry.NotFound
	}
	left := c.ScreenColX(col)
	if left+g.ColWidth(col)-p.X <= tol {
		return col
	}
	if p.X-left <= tol && col > 1 {
		return col - 1
	}
	return geometry.NotFound
}

func (h *ColumnResize) OnPointerDown(p Pointer) {
	h.col = h.target(p.Point)
	h.startX = p.X
	h.startWidth = h.calc.Grid().ColWidth(h.col)
}

func (h *ColumnResize) OnPointerDrag(p Pointer) {
	if h.col < 1 {
		return
	}
	width := max(h.opts.MinColWidth, h.startWidth+p.X-h.startX)
	h.calc.Grid().SetColWidth(h.col, width)
	h.calc.ClampScroll()
	h.calc.UpdateViewport()
}

func (h *ColumnResize) OnPointerUp(p Pointer) commands.Command {
	if h.col < 1 {
		return nil
	}
	cmd := commands.NewResizeColumn(h.col, h.startWidth, h.calc.Grid().ColWidth(h.col))
	h.col = geometry.NotFound
	return cmd
}

func (h *ColumnResize) Cursor() Cursor { return CursorColResize }
func (h *ColumnResize) Selects() bool  { return false }

// RowResize drags the bottom edge of a row in the header column
type RowResize struct {
	calc *geometry.Calculator
	opts *Options

	row         int
	startY      int
	startHeight int
}

func (h *RowResize) HitTest(p Point) bool {
	return h.target(p) != geometry.NotFound
}

func (h *RowResize) target(p Point) int {
	c := h.calc
	g := c.Grid()
	if c.ColAtScreenX(p.X) != grid.HeaderIndex || p.Y < g.HeaderHeight() {
		return geometry.NotFound
	}
	tol := h.opts.ResizeTolerance
	row := c.RowAtScreenY(p.Y)
	if row == geometry.NotFound {
		last := g.Rows - 1
		if abs(c.ScreenRowY(last)+g.RowHeight(last)-p.Y) <= tol {
			return last
		}
		return geometry.NotFound
	}
	top := c.ScreenRowY(row)
	if top+g.RowHeight(row)-p.Y <= tol {
		return row
	}
	if p.Y-top <= tol && row > 1 {
		return row - 1
	}
	return geometry.NotFound
}

func (h *RowResize) OnPointerDown(p Pointer) {
	h.row = h.target(p.Point)
	h.startY = p.Y
	h.startHeight = h.calc.Grid().RowHeight(h.row)
}

func (h *RowResize) OnPointerDrag(p Pointer) {
	if h.row < 1 {
		return
	}
	height := max(h.opts.MinRowHeight, h.startHeight+p.Y-h.startY)
	h.calc.Grid().SetRowHeight(h.row, height)
	h.calc.ClampScroll()
	h.calc.UpdateViewport()
}

func (h *RowResize) OnPointerUp(p Pointer) commands.Command {
	if h.row < 1 {
		return nil
	}
	cmd := commands.NewResizeRow(h.row, h.startHeight, h.calc.Grid().RowHeight(h.row))
	h.row = geometry.NotFound
	return cmd
}

func (h *RowResize) Cursor() Cursor { return CursorRowResize }
func (h *RowResize) Selects() bool  { return false }

// ColumnSelect selects whole columns from the header row
type ColumnSelect struct {
	calc     *geometry.Calculator
	startCol int
}

func (h *ColumnSelect) HitTest(p Point) bool {
	return h.calc.RowAtScreenY(p.Y) == grid.HeaderIndex && h.calc.ColAtScreenX(p.X) >= 1
}

func (h *ColumnSelect) OnPointerDown(p Pointer) {
	g := h.calc.Grid()
	col := h.calc.ColAtScreenX(p.X)
	h.startCol = col
	if _, anchorCol, ok := g.Anchor(); ok && p.Mods.Has(ModShift) {
		h.startCol = anchorCol
	} else {
		g.SetAnchor(g.ViewportStartRow, col)
	}
	h.selectTo(col)
}

func (h *ColumnSelect) OnPointerDrag(p Pointer) {
	h.selectTo(colNear(h.calc, p.X))
}

func (h *ColumnSelect) selectTo(col int) {
	g := h.calc.Grid()
	g.SetSelection(grid.Rect{StartRow: 1, StartCol: h.startCol, EndRow: g.Rows - 1, EndCol: col})
}

func (h *ColumnSelect) OnPointerUp(p Pointer) commands.Command { return nil }
func (h *ColumnSelect) Cursor() Cursor                         { return CursorColSelect }
func (h *ColumnSelect) Selects() bool                          { return true }

// RowSelect selects whole rows from the header column
type RowSelect struct {
	calc     *geometry.Calculator
	startRow int
}

func (h *RowSelect) HitTest(p Point) bool {
	return h.calc.ColAtScreenX(p.X) == grid.HeaderIndex && h.calc.RowAtScreenY(p.Y) >= 1
}

func (h *RowSelect) OnPointerDown(p Pointer) {
	g := h.calc.Grid()
	row := h.calc.RowAtScreenY(p.Y)
	h.startRow = row
	if anchorRow, _, ok := g.Anchor(); ok && p.Mods.Has(ModShift) {
		h.startRow = anchorRow
	} else {
		g.SetAnchor(row, g.ViewportStartCol)
	}
	h.selectTo(row)
}

func (h *RowSelect) OnPointerDrag(p Pointer) {
	h.selectTo(rowNear(h.calc, p.Y))
}

func (h *RowSelect) selectTo(row int) {
	g := h.calc.Grid()
	g.SetSelection(grid.Rect{StartRow: h.startRow, StartCol: 1, EndRow: row, EndCol: g.Cols - 1})
}

func (h *RowSelect) OnPointerUp(p Pointer) commands.Command { return nil }
func (h *RowSelect) Cursor() Cursor                         { return CursorRowSelect }
func (h *RowSelect) Selects() bool                          { return true }

// RangeSelect selects a rectangle of cells in the data area
type RangeSelect struct {
	calc *geometry.Calculator
}

func (h *RangeSelect) HitTest(p Point) bool {
	_, _, ok := h.calc.CellAtScreen(p.X, p.Y)
	return ok
}

// Cell returns the cell under p
func (h *RangeSelect) Cell(p Point) (row, col int, ok bool) {
	return h.calc.CellAtScreen(p.X, p.Y)
}

func (h *RangeSelect) OnPointerDown(p Pointer) {
	g := h.calc.Grid()
	row, col, ok := h.calc.CellAtScreen(p.X, p.Y)
	if !ok {
		return
	}
	if ar, ac, anchored := g.Anchor(); anchored && p.Mods.Has(ModShift) {
		g.SetSelection(grid.Rect{StartRow: ar, StartCol: ac, EndRow: row, EndCol: col})
		return
	}
	g.Select(row, col)
}

func (h *RangeSelect) OnPointerDrag(p Pointer) {
	g := h.calc.Grid()
	r, ok := g.Selection()
	if !ok {
		return
	}
	r.EndRow = rowNear(h.calc, p.Y)
	r.EndCol = colNear(h.calc, p.X)
	g.SetSelection(r)
}

func (h *RangeSelect) OnPointerUp(p Pointer) commands.Command { return nil }
func (h *RangeSelect) Cursor() Cursor                         { return CursorCell }
func (h *RangeSelect) Selects() bool                          { return true }

// colNear returns the data column nearest to screen x, clamping positions
// over the header or off the surface to the closest visible column.
func colNear(c *geometry.Calculator, x int) int {
	g := c.Grid()
	w, _ := c.SurfaceSize()
	col := c.ColAtScreenX(clamp(x, g.HeaderWidth(), w-1))
	if col < 1 {
		return g.Cols - 1
	}
	return col
}

func rowNear(c *geometry.Calculator, y int) int {
	g := c.Grid()
	_, h := c.SurfaceSize()
	row := c.RowAtScreenY(clamp(y, g.HeaderHeight(), h-1))
	if row < 1 {
		return g.Rows - 1
	}
	return row
}
