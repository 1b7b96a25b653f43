package structure

import (
	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/geometry"
	"github.com/javanhut/RavenGrid/grid"
	"github.com/javanhut/RavenGrid/history"
)

const (
	OpInsertRow    = "insert row"
	OpRemoveRow    = "remove row"
	OpInsertColumn = "insert column"
	OpRemoveColumn = "remove column"
)

// Editor performs undoable row and column insertion and removal. Each
// operation validates first and only then builds and executes a command,
// so a refused edit never mutates the grid.
type Editor struct {
	grid    *grid.Grid
	history *history.Manager
	calc    *geometry.Calculator
}

// NewEditor creates an editor. calc may be nil when no viewport needs to
// follow the edits.
func NewEditor(g *grid.Grid, h *history.Manager, calc *geometry.Calculator) *Editor {
	return &Editor{grid: g, history: h, calc: calc}
}

// InsertRow inserts an empty row at row, shifting rows >= row down
func (e *Editor) InsertRow(row int) error {
	if err := e.checkRow(OpInsertRow, row); err != nil {
		return err
	}
	if e.grid.RowHasData(e.grid.Rows - 1) {
		return &ValidationError{Op: OpInsertRow, Index: row, Err: ErrBoundaryData}
	}
	e.execute(commands.NewInsertRow(e.grid, row))
	return nil
}

// RemoveRow removes row, shifting later rows up. The row's data is kept in
// the command so the removal can be undone.
func (e *Editor) RemoveRow(row int) error {
	if err := e.checkRow(OpRemoveRow, row); err != nil {
		return err
	}
	e.execute(commands.NewRemoveRow(e.grid, row))
	return nil
}

// InsertColumn inserts an empty column at col, shifting columns >= col right
func (e *Editor) InsertColumn(col int) error {
	if err := e.checkCol(OpInsertColumn, col); err != nil {
		return err
	}
	if e.grid.ColHasData(e.grid.Cols - 1) {
		return &ValidationError{Op: OpInsertColumn, Index: col, Err: ErrBoundaryData}
	}
	e.execute(commands.NewInsertColumn(e.grid, col))
	return nil
}

// RemoveColumn removes col, shifting later columns left
func (e *Editor) RemoveColumn(col int) error {
	if err := e.checkCol(OpRemoveColumn, col); err != nil {
		return err
	}
	e.execute(commands.NewRemoveColumn(e.grid, col))
	return nil
}

// InsertRowAtAnchor inserts a row at the anchor row, or row 1 without one
func (e *Editor) InsertRowAtAnchor() error {
	row, _ := e.anchor()
	return e.InsertRow(row)
}

// RemoveAnchorRow removes the anchor row
func (e *Editor) RemoveAnchorRow() error {
	row, _ := e.anchor()
	return e.RemoveRow(row)
}

// InsertColumnAtAnchor inserts a column at the anchor column
func (e *Editor) InsertColumnAtAnchor() error {
	_, col := e.anchor()
	return e.InsertColumn(col)
}

// RemoveAnchorColumn removes the anchor column
func (e *Editor) RemoveAnchorColumn() error {
	_, col := e.anchor()
	return e.RemoveColumn(col)
}

func (e *Editor) anchor() (row, col int) {
	row, col, ok := e.grid.Anchor()
	if !ok {
		return 1, 1
	}
	return row, col
}

func (e *Editor) checkRow(op string, row int) error {
	if row < 1 || row >= e.grid.Rows {
		return &ValidationError{Op: op, Index: row, Err: ErrIndexOutOfRange}
	}
	return nil
}

func (e *Editor) checkCol(op string, col int) error {
	if col < 1 || col >= e.grid.Cols {
		return &ValidationError{Op: op, Index: col, Err: ErrIndexOutOfRange}
	}
	return nil
}

func (e *Editor) execute(cmd commands.Command) {
	e.history.Execute(cmd)
	if e.calc != nil {
		e.calc.ClampScroll()
		e.calc.UpdateViewport()
	}
}
