package history

import (
	"testing"

	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/grid"
)

type countingRedrawer struct {
	count int
}

func (r *countingRedrawer) RequestRedraw() { r.count++ }

func newTestHistory(limit int) (*grid.Grid, *Manager, *countingRedrawer) {
	g := grid.NewGrid(grid.Options{Rows: 100000, Cols: 500, RowHeight: 20, ColWidth: 64})
	r := &countingRedrawer{}
	return g, New(g, r, limit), r
}

func TestResizeUndoRedoRoundTrip(t *testing.T) {
	g, h, _ := newTestHistory(0)

	// Drag already applied the width; the handler records afterwards
	g.SetColWidth(4, 150)
	h.Record(commands.NewResizeColumn(4, 64, 150))

	if !h.Undo() {
		t.Fatal("Undo() = false")
	}
	if got := g.ColWidth(4); got != 64 {
		t.Errorf("width after undo = %d, want 64", got)
	}
	if !h.Redo() {
		t.Fatal("Redo() = false")
	}
	if got := g.ColWidth(4); got != 150 {
		t.Errorf("width after redo = %d, want 150", got)
	}
}

func TestRowResizeRoundTrip(t *testing.T) {
	g, h, _ := newTestHistory(0)
	h.Execute(commands.NewResizeRow(9, 20, 48))
	if g.RowHeight(9) != 48 {
		t.Fatalf("height = %d, want 48", g.RowHeight(9))
	}
	h.Undo()
	if g.RowHeight(9) != 20 {
		t.Errorf("height after undo = %d, want 20", g.RowHeight(9))
	}
	h.Redo()
	if g.RowHeight(9) != 48 {
		t.Errorf("height after redo = %d, want 48", g.RowHeight(9))
	}
}

func TestEmptyStacksAreNoOps(t *testing.T) {
	_, h, r := newTestHistory(0)
	if h.Undo() || h.Redo() {
		t.Error("undo/redo on empty history should report false")
	}
	if r.count != 0 {
		t.Errorf("redraws = %d, want 0", r.count)
	}
}

func TestNewActionClearsRedo(t *testing.T) {
	_, h, _ := newTestHistory(0)
	h.Execute(commands.NewEditCell(1, 1, "", "a"))
	h.Execute(commands.NewEditCell(1, 1, "a", "b"))
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected redo entry")
	}

	h.Execute(commands.NewEditCell(2, 2, "", "c"))
	if h.CanRedo() {
		t.Error("new action should clear redo stack")
	}

	h.Undo()
	h.Record(commands.NewEditCell(3, 3, "", "d"))
	if h.CanRedo() {
		t.Error("Record should clear redo stack too")
	}
}

func TestNilCommandsAreIgnored(t *testing.T) {
	_, h, r := newTestHistory(0)
	h.Record(commands.NewResizeColumn(2, 64, 64))
	h.Execute(nil)
	if h.CanUndo() {
		t.Error("no-op resize must not pollute history")
	}
	if r.count != 0 {
		t.Errorf("redraws = %d, want 0", r.count)
	}
}

func TestEveryChangeRequestsRedraw(t *testing.T) {
	_, h, r := newTestHistory(0)
	h.Execute(commands.NewEditCell(1, 1, "", "a"))
	h.Undo()
	h.Redo()
	if r.count != 3 {
		t.Errorf("redraws = %d, want 3", r.count)
	}
}

func TestInsertColumnScenario(t *testing.T) {
	g, h, _ := newTestHistory(0)
	g.SetCellValue(5, 5, "x")

	h.Execute(commands.NewInsertColumn(g, 3))
	if got := g.CellValue(5, 6); got != "x" {
		t.Errorf("(5,6) = %q, want x", got)
	}
	if g.HasCell(5, 5) {
		t.Error("(5,5) should be empty after insert")
	}

	h.Undo()
	if got := g.CellValue(5, 5); got != "x" {
		t.Errorf("(5,5) after undo = %q, want x", got)
	}
	if g.HasCell(5, 6) {
		t.Error("(5,6) should be empty after undo")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	g, h, _ := newTestHistory(2)
	h.Execute(commands.NewEditCell(1, 1, "", "a"))
	h.Execute(commands.NewEditCell(1, 2, "", "b"))
	h.Execute(commands.NewEditCell(1, 3, "", "c"))

	if h.UndoLen() != 2 {
		t.Fatalf("UndoLen() = %d, want 2", h.UndoLen())
	}
	h.Undo()
	h.Undo()
	if h.Undo() {
		t.Error("oldest command should have been dropped")
	}
	if g.CellValue(1, 1) != "a" {
		t.Error("dropped command must stay applied")
	}
}

func TestSetLimitTrimsExistingStack(t *testing.T) {
	_, h, _ := newTestHistory(0)
	for col := 1; col <= 5; col++ {
		h.Execute(commands.NewEditCell(1, col, "", "v"))
	}
	h.SetLimit(3)
	if h.UndoLen() != 3 {
		t.Errorf("UndoLen() = %d, want 3", h.UndoLen())
	}
	h.SetLimit(0)
	h.Execute(commands.NewEditCell(2, 1, "", "w"))
	if h.UndoLen() != 4 {
		t.Errorf("UndoLen() after removing limit = %d, want 4", h.UndoLen())
	}
}
