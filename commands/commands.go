package commands

import (
	"fmt"

	"github.com/javanhut/RavenGrid/grid"
)

// Command is a reversible change to a grid. Commands are values: they carry
// everything needed to apply and revert themselves and are never mutated
// after creation.
type Command interface {
	// Apply performs the forward change
	Apply(g *grid.Grid)
	// Revert undoes exactly what Apply did
	Revert(g *grid.Grid)
	// Name describes the change for the status bar and logs
	Name() string
}

// EditCell changes one cell value
type EditCell struct {
	Row  int
	Col  int
	From string
	To   string
}

// NewEditCell returns an EditCell, or nil when the value does not change
func NewEditCell(row, col int, from, to string) Command {
	if from == to {
		return nil
	}
	return EditCell{Row: row, Col: col, From: from, To: to}
}

func (c EditCell) Apply(g *grid.Grid)  { g.SetCellValue(c.Row, c.Col, c.To) }
func (c EditCell) Revert(g *grid.Grid) { g.SetCellValue(c.Row, c.Col, c.From) }

func (c EditCell) Name() string {
	return "Edit " + grid.CellAddress(c.Row, c.Col)
}

// ResizeColumn changes a column width
type ResizeColumn struct {
	Col  int
	From int
	To   int
}

// NewResizeColumn returns a ResizeColumn, or nil for a no-op resize so
// aborted drags never reach the history.
func NewResizeColumn(col, from, to int) Command {
	if from == to {
		return nil
	}
	return ResizeColumn{Col: col, From: from, To: to}
}

func (c ResizeColumn) Apply(g *grid.Grid)  { g.SetColWidth(c.Col, c.To) }
func (c ResizeColumn) Revert(g *grid.Grid) { g.SetColWidth(c.Col, c.From) }

func (c ResizeColumn) Name() string {
	return fmt.Sprintf("Resize column %s", grid.ColumnName(c.Col))
}

// ResizeRow changes a row height
type ResizeRow struct {
	Row  int
	From int
	To   int
}

// NewResizeRow returns a ResizeRow, or nil for a no-op resize
func NewResizeRow(row, from, to int) Command {
	if from == to {
		return nil
	}
	return ResizeRow{Row: row, From: from, To: to}
}

func (c ResizeRow) Apply(g *grid.Grid)  { g.SetRowHeight(c.Row, c.To) }
func (c ResizeRow) Revert(g *grid.Grid) { g.SetRowHeight(c.Row, c.From) }

func (c ResizeRow) Name() string {
	return fmt.Sprintf("Resize row %d", c.Row)
}
