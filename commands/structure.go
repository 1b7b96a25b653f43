package commands

import (
	"fmt"

	"github.com/javanhut/RavenGrid/grid"
)

// InsertRow inserts an empty row at Row. Tail is the height of the trailing
// row the insert pushes off the grid, restored by Revert. Cursors at the
// last row are clamped by the insert, so Revert puts back the snapshot.
type InsertRow struct {
	Row     int
	Height  int
	Tail    int
	Cursors grid.Cursors
}

func (c InsertRow) Apply(g *grid.Grid) { g.InsertRowAt(c.Row, c.Height) }
func (c InsertRow) Revert(g *grid.Grid) {
	g.RemoveRowAt(c.Row, c.Tail)
	g.RestoreCursors(c.Cursors)
}
func (c InsertRow) Name() string { return fmt.Sprintf("Insert row %d", c.Row) }

// RemoveRow removes Row. Height and Cells capture what the row held so
// Revert can put it back; Tail is the height of the row appended at the end.
type RemoveRow struct {
	Row    int
	Height int
	Tail   int
	Cells  []grid.Cell
}

func (c RemoveRow) Apply(g *grid.Grid) { g.RemoveRowAt(c.Row, c.Tail) }
func (c RemoveRow) Revert(g *grid.Grid) {
	g.InsertRowAt(c.Row, c.Height)
	restore(g, c.Cells)
}
func (c RemoveRow) Name() string { return fmt.Sprintf("Remove row %d", c.Row) }

// InsertColumn inserts an empty column at Col, see InsertRow
type InsertColumn struct {
	Col     int
	Width   int
	Tail    int
	Cursors grid.Cursors
}

func (c InsertColumn) Apply(g *grid.Grid) { g.InsertColAt(c.Col, c.Width) }
func (c InsertColumn) Revert(g *grid.Grid) {
	g.RemoveColAt(c.Col, c.Tail)
	g.RestoreCursors(c.Cursors)
}
func (c InsertColumn) Name() string {
	return "Insert column " + grid.ColumnName(c.Col)
}

// RemoveColumn removes Col, see RemoveRow
type RemoveColumn struct {
	Col   int
	Width int
	Tail  int
	Cells []grid.Cell
}

func (c RemoveColumn) Apply(g *grid.Grid) { g.RemoveColAt(c.Col, c.Tail) }
func (c RemoveColumn) Revert(g *grid.Grid) {
	g.InsertColAt(c.Col, c.Width)
	restore(g, c.Cells)
}
func (c RemoveColumn) Name() string {
	return "Remove column " + grid.ColumnName(c.Col)
}

// NewInsertRow captures the state needed to insert and later revert
func NewInsertRow(g *grid.Grid, row int) InsertRow {
	return InsertRow{Row: row, Height: g.DefaultRowHeight(), Tail: g.RowHeight(g.Rows - 1), Cursors: g.Cursors()}
}

// NewRemoveRow captures row's height and cells before removal
func NewRemoveRow(g *grid.Grid, row int) RemoveRow {
	return RemoveRow{
		Row:    row,
		Height: g.RowHeight(row),
		Tail:   g.DefaultRowHeight(),
		Cells:  g.CellsIn(grid.Rect{StartRow: row, StartCol: 1, EndRow: row, EndCol: g.Cols - 1}),
	}
}

// NewInsertColumn captures the state needed to insert and later revert
func NewInsertColumn(g *grid.Grid, col int) InsertColumn {
	return InsertColumn{Col: col, Width: g.DefaultColWidth(), Tail: g.ColWidth(g.Cols - 1), Cursors: g.Cursors()}
}

// NewRemoveColumn captures col's width and cells before removal
func NewRemoveColumn(g *grid.Grid, col int) RemoveColumn {
	return RemoveColumn{
		Col:   col,
		Width: g.ColWidth(col),
		Tail:  g.DefaultColWidth(),
		Cells: g.CellsIn(grid.Rect{StartRow: 1, StartCol: col, EndRow: g.Rows - 1, EndCol: col}),
	}
}

func restore(g *grid.Grid, cells []grid.Cell) {
	for _, cell := range cells {
		g.SetCellValue(cell.Row, cell.Col, cell.Value)
	}
}
