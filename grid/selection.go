package grid

import "slices"

// Rect is a selection rectangle. Start and End are the drag origin and the
// current drag point, so Start may be below or right of End.
type Rect struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// CellRect returns the single-cell rectangle at (row, col)
func CellRect(row, col int) Rect {
	return Rect{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Normalize returns the rectangle with Start as the top-left corner
func (r Rect) Normalize() Rect {
	if r.EndRow < r.StartRow {
		r.StartRow, r.EndRow = r.EndRow, r.StartRow
	}
	if r.EndCol < r.StartCol {
		r.StartCol, r.EndCol = r.EndCol, r.StartCol
	}
	return r
}

// Contains reports whether (row, col) lies inside the rectangle
func (r Rect) Contains(row, col int) bool {
	n := r.Normalize()
	return row >= n.StartRow && row <= n.EndRow && col >= n.StartCol && col <= n.EndCol
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	n := r.Normalize()
	return (n.EndRow - n.StartRow + 1) * (n.EndCol - n.StartCol + 1)
}

// Anchor returns the anchor cell and whether one is set
func (g *Grid) Anchor() (row, col int, ok bool) {
	return g.SelectedRow, g.SelectedCol, g.anchorSet
}

// SetAnchor moves the anchor cell, clamped to the data area
func (g *Grid) SetAnchor(row, col int) {
	g.SelectedRow = clampInt(row, 1, g.Rows-1)
	g.SelectedCol = clampInt(col, 1, g.Cols-1)
	g.anchorSet = true
}

// ClearAnchor removes the anchor cell
func (g *Grid) ClearAnchor() {
	g.anchorSet = false
	g.SelectedRow = 0
	g.SelectedCol = 0
}

// Selection returns the selection rectangle and whether one is set
func (g *Grid) Selection() (Rect, bool) {
	return g.selection, g.selectionSet
}

// SetSelection sets the selection rectangle, clamped to the data area
func (g *Grid) SetSelection(r Rect) {
	g.selection = Rect{
		StartRow: clampInt(r.StartRow, 1, g.Rows-1),
		StartCol: clampInt(r.StartCol, 1, g.Cols-1),
		EndRow:   clampInt(r.EndRow, 1, g.Rows-1),
		EndCol:   clampInt(r.EndCol, 1, g.Cols-1),
	}
	g.selectionSet = true
}

// ExtendSelection moves the end corner of the selection, starting a new
// rectangle at the anchor when none exists.
func (g *Grid) ExtendSelection(row, col int) {
	r, ok := g.Selection()
	if !ok {
		ar, ac, anchored := g.Anchor()
		if !anchored {
			ar, ac = row, col
		}
		r = CellRect(ar, ac)
	}
	r.EndRow = row
	r.EndCol = col
	g.SetSelection(r)
}

// ClearSelection removes the selection rectangle
func (g *Grid) ClearSelection() {
	g.selectionSet = false
	g.selection = Rect{}
}

// Select makes (row, col) the anchor and the whole selection
func (g *Grid) Select(row, col int) {
	g.SetAnchor(row, col)
	g.SetSelection(CellRect(g.SelectedRow, g.SelectedCol))
}

// IsSelected returns whether a cell is within the current selection
func (g *Grid) IsSelected(row, col int) bool {
	if !g.selectionSet {
		return false
	}
	return g.selection.Contains(row, col)
}

// SelectedCells returns the stored cells inside the normalized selection.
// Small rectangles are probed cell by cell; large ones scan the sparse
// store instead, so cost is bounded by min(area, stored cells).
func (g *Grid) SelectedCells() []Cell {
	r, ok := g.Selection()
	if !ok {
		return nil
	}
	return g.CellsIn(r)
}

// CellsIn returns the stored cells inside the normalized rectangle
func (g *Grid) CellsIn(r Rect) []Cell {
	n := r.Normalize()
	var out []Cell
	if n.Area() <= len(g.cells) {
		for row := n.StartRow; row <= n.EndRow; row++ {
			for col := n.StartCol; col <= n.EndCol; col++ {
				if value, ok := g.cells[CellKey{Row: row, Col: col}]; ok {
					out = append(out, Cell{Row: row, Col: col, Value: value})
				}
			}
		}
		return out
	}
	for key, value := range g.cells {
		if n.Contains(key.Row, key.Col) {
			out = append(out, Cell{Row: key.Row, Col: key.Col, Value: value})
		}
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// Cursors is a snapshot of the anchor and selection rectangle
type Cursors struct {
	Row, Col     int
	Anchored     bool
	Selection    Rect
	HasSelection bool
}

// Cursors returns the current anchor and selection
func (g *Grid) Cursors() Cursors {
	return Cursors{
		Row:          g.SelectedRow,
		Col:          g.SelectedCol,
		Anchored:     g.anchorSet,
		Selection:    g.selection,
		HasSelection: g.selectionSet,
	}
}

// RestoreCursors puts back a snapshot taken with Cursors
func (g *Grid) RestoreCursors(c Cursors) {
	g.SelectedRow, g.SelectedCol, g.anchorSet = c.Row, c.Col, c.Anchored
	g.selection, g.selectionSet = c.Selection, c.HasSelection
}
