package geometry

import "github.com/javanhut/RavenGrid/grid"

// NotFound is returned by lookups that land outside every row or column.
const NotFound = -1

// Surface is the drawing surface the grid is painted on
type Surface interface {
	// Size returns the drawable size in pixels
	Size() (width, height int)
	// Scale returns the device pixel ratio
	Scale() float32
}

// Calculator maps between pixels and row/column indices and derives the
// viewport window. It holds read references only; the one state it writes
// is the grid's derived viewport and clamped scroll.
//
// Content space starts at the top-left corner of the header cell, so
// ColX(1) is the header width. Screen space subtracts the scroll offsets
// from content space for every data row/column; headers stay pinned.
type Calculator struct {
	grid    *grid.Grid
	surface Surface
}

// NewCalculator creates a calculator for g drawn on s
func NewCalculator(g *grid.Grid, s Surface) *Calculator {
	return &Calculator{grid: g, surface: s}
}

// Grid returns the grid being measured
func (c *Calculator) Grid() *grid.Grid {
	return c.grid
}

// DevicePixelRatio passes through the surface scale
func (c *Calculator) DevicePixelRatio() float32 {
	if c.surface == nil {
		return 1
	}
	return c.surface.Scale()
}

// SurfaceSize returns the surface size, or zero without a surface
func (c *Calculator) SurfaceSize() (width, height int) {
	if c.surface == nil {
		return 0, 0
	}
	return c.surface.Size()
}

// VisibleWidth is the width available to data columns
func (c *Calculator) VisibleWidth() int {
	w, _ := c.SurfaceSize()
	return max(0, w-c.grid.HeaderWidth())
}

// VisibleHeight is the height available to data rows
func (c *Calculator) VisibleHeight() int {
	_, h := c.SurfaceSize()
	return max(0, h-c.grid.HeaderHeight())
}

// ColX returns the content-space left edge of col: the header width plus
// the widths of columns 1..col-1.
func (c *Calculator) ColX(col int) int {
	if col <= 0 {
		return 0
	}
	return c.grid.ColWidths().Prefix(col)
}

// RowY returns the content-space top edge of row
func (c *Calculator) RowY(row int) int {
	if row <= 0 {
		return 0
	}
	return c.grid.RowHeights().Prefix(row)
}

// ColAtX returns the column whose span contains content-space x, or
// NotFound when x is inside the header or past the last column.
func (c *Calculator) ColAtX(x int) int {
	return indexAt(c.grid.ColWidths(), x)
}

// RowAtY returns the row whose span contains content-space y, or NotFound
func (c *Calculator) RowAtY(y int) int {
	return indexAt(c.grid.RowHeights(), y)
}

func indexAt(sizes *grid.SizeTree, offset int) int {
	if offset < sizes.Get(grid.HeaderIndex) {
		return NotFound
	}
	idx := sizes.Floor(offset)
	if idx < 1 || idx >= sizes.Len() {
		return NotFound
	}
	return idx
}

// ScreenColX returns the on-screen left edge of col
func (c *Calculator) ScreenColX(col int) int {
	if col <= grid.HeaderIndex {
		return 0
	}
	return c.ColX(col) - c.grid.ScrollX
}

// ScreenRowY returns the on-screen top edge of row
func (c *Calculator) ScreenRowY(row int) int {
	if row <= grid.HeaderIndex {
		return 0
	}
	return c.RowY(row) - c.grid.ScrollY
}

// ColAtScreenX returns the column under screen x: grid.HeaderIndex inside
// the row header band, NotFound off the surface or past the last column.
func (c *Calculator) ColAtScreenX(x int) int {
	w, _ := c.SurfaceSize()
	if x < 0 || x >= w {
		return NotFound
	}
	if x < c.grid.HeaderWidth() {
		return grid.HeaderIndex
	}
	return c.ColAtX(x + c.grid.ScrollX)
}

// RowAtScreenY returns the row under screen y, see ColAtScreenX
func (c *Calculator) RowAtScreenY(y int) int {
	_, h := c.SurfaceSize()
	if y < 0 || y >= h {
		return NotFound
	}
	if y < c.grid.HeaderHeight() {
		return grid.HeaderIndex
	}
	return c.RowAtY(y + c.grid.ScrollY)
}

// CellAtScreen returns the data cell under a screen point
func (c *Calculator) CellAtScreen(x, y int) (row, col int, ok bool) {
	row = c.RowAtScreenY(y)
	col = c.ColAtScreenX(x)
	if row < 1 || col < 1 {
		return NotFound, NotFound, false
	}
	return row, col, true
}

// CellRect returns the on-screen rectangle of a cell
func (c *Calculator) CellRect(row, col int) (x, y, w, h int) {
	return c.ScreenColX(col), c.ScreenRowY(row), c.grid.ColWidth(col), c.grid.RowHeight(row)
}
