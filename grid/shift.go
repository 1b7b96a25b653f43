package grid

// Structural shifts keep Rows and Cols fixed: an insert pushes the trailing
// row/column off the grid and a removal pulls in a fresh one at the end.
// Callers guard against data loss at the boundary before calling these.

// InsertRowAt inserts an empty row of the given height at k. Rows >= k move
// down by one and the trailing row is dropped; its height is returned so
// the insert can be reversed exactly.
func (g *Grid) InsertRowAt(k, height int) (droppedHeight int) {
	if k < 1 || k >= g.Rows {
		return 0
	}
	last := g.Rows - 1
	g.RekeyCells(func(key CellKey) (CellKey, bool) {
		if key.Row < k {
			return key, true
		}
		key.Row++
		return key, key.Row <= last
	})
	g.rowHeights.Insert(k, height)
	droppedHeight = g.rowHeights.Remove(g.Rows)

	shift := func(row int) int {
		if row >= k {
			return clampInt(row+1, 1, last)
		}
		return row
	}
	if g.anchorSet {
		g.SelectedRow = shift(g.SelectedRow)
	}
	if g.selectionSet {
		g.selection.StartRow = shift(g.selection.StartRow)
		g.selection.EndRow = shift(g.selection.EndRow)
	}
	return droppedHeight
}

// RemoveRowAt removes row k and returns its height and the cells it held.
// Rows > k move up by one and a row of tailHeight is appended at the end.
func (g *Grid) RemoveRowAt(k, tailHeight int) (removedHeight int, removed []Cell) {
	if k < 1 || k >= g.Rows {
		return 0, nil
	}
	g.RekeyCells(func(key CellKey) (CellKey, bool) {
		switch {
		case key.Row < k:
			return key, true
		case key.Row == k:
			removed = append(removed, Cell{Row: key.Row, Col: key.Col, Value: g.cells[key]})
			return key, false
		}
		key.Row--
		return key, true
	})
	removedHeight = g.rowHeights.Remove(k)
	g.rowHeights.Insert(g.rowHeights.Len(), tailHeight)

	shift := func(row int) int {
		if row > k {
			return row - 1
		}
		return clampInt(row, 1, g.Rows-1)
	}
	if g.anchorSet {
		g.SelectedRow = shift(g.SelectedRow)
	}
	if g.selectionSet {
		g.selection.StartRow = shift(g.selection.StartRow)
		g.selection.EndRow = shift(g.selection.EndRow)
	}
	return removedHeight, removed
}

// InsertColAt inserts an empty column of the given width at k. Columns >= k
// move right by one and the trailing column is dropped; its width is
// returned so the insert can be reversed exactly.
func (g *Grid) InsertColAt(k, width int) (droppedWidth int) {
	if k < 1 || k >= g.Cols {
		return 0
	}
	last := g.Cols - 1
	g.RekeyCells(func(key CellKey) (CellKey, bool) {
		if key.Col < k {
			return key, true
		}
		key.Col++
		return key, key.Col <= last
	})
	g.colWidths.Insert(k, width)
	droppedWidth = g.colWidths.Remove(g.Cols)

	shift := func(col int) int {
		if col >= k {
			return clampInt(col+1, 1, last)
		}
		return col
	}
	if g.anchorSet {
		g.SelectedCol = shift(g.SelectedCol)
	}
	if g.selectionSet {
		g.selection.StartCol = shift(g.selection.StartCol)
		g.selection.EndCol = shift(g.selection.EndCol)
	}
	return droppedWidth
}

// RemoveColAt removes column k and returns its width and the cells it held.
// Columns > k move left by one and a column of tailWidth is appended.
func (g *Grid) RemoveColAt(k, tailWidth int) (removedWidth int, removed []Cell) {
	if k < 1 || k >= g.Cols {
		return 0, nil
	}
	g.RekeyCells(func(key CellKey) (CellKey, bool) {
		switch {
		case key.Col < k:
			return key, true
		case key.Col == k:
			removed = append(removed, Cell{Row: key.Row, Col: key.Col, Value: g.cells[key]})
			return key, false
		}
		key.Col--
		return key, true
	})
	removedWidth = g.colWidths.Remove(k)
	g.colWidths.Insert(g.colWidths.Len(), tailWidth)

	shift := func(col int) int {
		if col > k {
			return col - 1
		}
		return clampInt(col, 1, g.Cols-1)
	}
	if g.anchorSet {
		g.SelectedCol = shift(g.SelectedCol)
	}
	if g.selectionSet {
		g.selection.StartCol = shift(g.selection.StartCol)
		g.selection.EndCol = shift(g.selection.EndCol)
	}
	return removedWidth, removed
}
