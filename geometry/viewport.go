package geometry

import "github.com/javanhut/RavenGrid/grid"

// Window is a rectangular range of row and column indices
type Window struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// UpdateViewport recomputes the grid's viewport from the scroll offsets and
// surface size. The start row is the one containing the top scroll edge;
// the end row is the last one that fits entirely in the visible height,
// measured from the start row's top. A row that only partly fits is not
// counted. The same rule applies to columns.
//
// Invariant: 1 <= start <= end <= rows-1, and likewise for columns.
func (c *Calculator) UpdateViewport() {
	g := c.grid
	g.ViewportStartRow, g.ViewportEndRow = fitRange(g.RowHeights(), g.ScrollY, c.VisibleHeight())
	g.ViewportStartCol, g.ViewportEndCol = fitRange(g.ColWidths(), g.ScrollX, c.VisibleWidth())
}

func fitRange(sizes *grid.SizeTree, scroll, visible int) (start, end int) {
	last := sizes.Len() - 1
	header := sizes.Get(grid.HeaderIndex)

	start = clamp(sizes.Floor(header+max(0, scroll)), 1, last)
	top := sizes.Prefix(start)
	// Floor gives the count p of leading entries ending at or before the
	// visible bottom, so entry p-1 is the last one fully inside.
	end = sizes.Floor(top+visible) - 1
	return start, clamp(end, start, last)
}

// Viewport returns the grid's current viewport window
func (c *Calculator) Viewport() Window {
	g := c.grid
	return Window{
		StartRow: g.ViewportStartRow,
		EndRow:   g.ViewportEndRow,
		StartCol: g.ViewportStartCol,
		EndCol:   g.ViewportEndCol,
	}
}

// PaintWindow returns the rows and columns that touch the visible area.
// Unlike the viewport it includes a partly visible trailing row/column so
// cell borders stay continuous at the surface edge.
func (c *Calculator) PaintWindow() Window {
	g := c.grid
	w := c.Viewport()
	w.EndRow = paintEnd(g.RowHeights(), g.ScrollY, c.VisibleHeight(), w.EndRow)
	w.EndCol = paintEnd(g.ColWidths(), g.ScrollX, c.VisibleWidth(), w.EndCol)
	return w
}

func paintEnd(sizes *grid.SizeTree, scroll, visible, fitted int) int {
	header := sizes.Get(grid.HeaderIndex)
	bottom := header + max(0, scroll) + visible
	end := sizes.Floor(bottom - 1)
	return clamp(end, fitted, sizes.Len()-1)
}

// ContentSize returns the full content extent including headers
func (c *Calculator) ContentSize() (width, height int) {
	return c.grid.ColWidths().Total(), c.grid.RowHeights().Total()
}

// MaxScroll returns the largest scroll offsets that keep content on screen
func (c *Calculator) MaxScroll() (x, y int) {
	cw, ch := c.ContentSize()
	sw, sh := c.SurfaceSize()
	return max(0, cw-sw), max(0, ch-sh)
}

// ClampScroll keeps the scroll offsets within [0, MaxScroll]
func (c *Calculator) ClampScroll() {
	mx, my := c.MaxScroll()
	g := c.grid
	g.SetScroll(clamp(g.ScrollX, 0, mx), clamp(g.ScrollY, 0, my))
}

// SetScroll clamps and applies new scroll offsets, then refreshes the
// viewport. It reports whether anything moved.
func (c *Calculator) SetScroll(x, y int) bool {
	g := c.grid
	oldX, oldY := g.ScrollX, g.ScrollY
	g.SetScroll(x, y)
	c.ClampScroll()
	c.UpdateViewport()
	return g.ScrollX != oldX || g.ScrollY != oldY
}

// ScrollBy scrolls by a delta, see SetScroll
func (c *Calculator) ScrollBy(dx, dy int) bool {
	return c.SetScroll(c.grid.ScrollX+dx, c.grid.ScrollY+dy)
}

// ScrollToCell scrolls the minimum distance needed for the cell to be fully
// visible and reports whether the scroll changed.
func (c *Calculator) ScrollToCell(row, col int) bool {
	g := c.grid
	x, y := g.ScrollX, g.ScrollY

	if row >= 1 && row < g.Rows {
		top := c.RowY(row) - g.HeaderHeight()
		bottom := top + g.RowHeight(row)
		if top < y {
			y = top
		} else if vh := c.VisibleHeight(); bottom > y+vh {
			y = bottom - vh
		}
	}
	if col >= 1 && col < g.Cols {
		left := c.ColX(col) - g.HeaderWidth()
		right := left + g.ColWidth(col)
		if left < x {
			x = left
		} else if vw := c.VisibleWidth(); right > x+vw {
			x = right - vw
		}
	}
	return c.SetScroll(x, y)
}

// PageRows returns how many rows the viewport currently holds
func (c *Calculator) PageRows() int {
	return c.grid.ViewportEndRow - c.grid.ViewportStartRow + 1
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
