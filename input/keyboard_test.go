package input

import (
	"strings"
	"testing"

	"github.com/javanhut/RavenGrid/grid"
)

func anchorOf(g *grid.Grid) (int, int) {
	row, col, _ := g.Anchor()
	return row, col
}

func TestArrowKeysClamp(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid

	g.Select(18, 8)
	f.nav.HandleKey(KeyDown, 0)
	f.nav.HandleKey(KeyRight, 0)
	if row, col := anchorOf(g); row != 18 || col != 8 {
		t.Errorf("anchor = (%d,%d), want (18,8)", row, col)
	}

	g.Select(1, 1)
	f.nav.HandleKey(KeyUp, 0)
	f.nav.HandleKey(KeyLeft, 0)
	if row, col := anchorOf(g); row != 1 || col != 1 {
		t.Errorf("anchor = (%d,%d), want (1,1)", row, col)
	}

	f.nav.HandleKey(KeyRight, 0)
	if row, col := anchorOf(g); row != 1 || col != 2 {
		t.Errorf("anchor = (%d,%d), want (1,2)", row, col)
	}
	if f.changes == 0 {
		t.Error("moving should notify selection listeners")
	}
}

func TestShiftArrowExtends(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.Select(2, 2)
	for i := 0; i < 3; i++ {
		f.nav.HandleKey(KeyDown, ModShift)
	}
	f.nav.HandleKey(KeyRight, ModShift)

	want := grid.Rect{StartRow: 2, StartCol: 2, EndRow: 5, EndCol: 3}
	if r, _ := g.Selection(); r != want {
		t.Errorf("selection = %+v, want %+v", r, want)
	}
	if row, col := anchorOf(g); row != 2 || col != 2 {
		t.Errorf("anchor moved to (%d,%d)", row, col)
	}
	if f.status.address != "B2:C5" {
		t.Errorf("status = %q, want B2:C5", f.status.address)
	}
}

func TestEnterAndTab(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.Select(2, 2)

	steps := []struct {
		key      Key
		mods     Mods
		row, col int
	}{
		{KeyTab, 0, 2, 3},
		{KeyTab, ModShift, 2, 2},
		{KeyEnter, 0, 3, 2},
		{KeyEnter, ModShift, 2, 2},
	}
	for _, s := range steps {
		if !f.nav.HandleKey(s.key, s.mods) {
			t.Errorf("key %v not consumed", s.key)
		}
		if row, col := anchorOf(g); row != s.row || col != s.col {
			t.Errorf("after %v anchor = (%d,%d), want (%d,%d)", s.key, row, col, s.row, s.col)
		}
	}
}

func TestHomeEndAndPaging(t *testing.T) {
	f := newFixture(1000, 50)
	g := f.grid
	g.Select(4, 7)

	f.nav.HandleKey(KeyHome, 0)
	if row, col := anchorOf(g); row != 4 || col != 1 {
		t.Errorf("Home anchor = (%d,%d), want (4,1)", row, col)
	}
	f.nav.HandleKey(KeyEnd, 0)
	if _, col := anchorOf(g); col != 48 {
		t.Errorf("End col = %d, want 48", col)
	}

	g.Select(1, 1)
	f.disp.Calculator().SetScroll(0, 0)
	f.nav.HandleKey(KeyPageDown, 0)
	row, _ := anchorOf(g)
	if row != 30 {
		t.Errorf("PageDown row = %d, want 30", row)
	}
	if row < g.ViewportStartRow || row > g.ViewportEndRow {
		t.Errorf("row %d outside viewport %d..%d", row, g.ViewportStartRow, g.ViewportEndRow)
	}
}

func TestDeleteClearsSelectionAsOneUndo(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.SetCellValue(2, 2, "a")
	g.SetCellValue(3, 3, "b")
	g.SetCellValue(9, 9, "c")
	g.SetAnchor(4, 4)
	g.SetSelection(grid.Rect{StartRow: 4, StartCol: 4, EndRow: 2, EndCol: 2})

	f.nav.HandleKey(KeyDelete, 0)
	if g.HasCell(2, 2) || g.HasCell(3, 3) {
		t.Error("selected cells should be cleared")
	}
	if !g.HasCell(9, 9) {
		t.Error("cell outside the selection was cleared")
	}

	f.history.Undo()
	if g.CellValue(2, 2) != "a" || g.CellValue(3, 3) != "b" {
		t.Errorf("cells after undo = %v", g.Cells())
	}
	if f.history.CanUndo() {
		t.Error("delete should be a single history entry")
	}
}

func TestTypingOverCell(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.SetCellValue(3, 3, "old")
	g.Select(3, 3)

	f.nav.HandleChar('n')
	if got := g.CellValue(3, 3); got != "n" {
		t.Errorf("cell while typing = %q, want n", got)
	}
	f.nav.HandleChar('o')
	f.nav.HandleKey(KeyEnter, 0)

	if got := g.CellValue(3, 3); got != "no" {
		t.Errorf("cell = %q, want no", got)
	}
	if row, col := anchorOf(g); row != 4 || col != 3 {
		t.Errorf("anchor = (%d,%d), want (4,3)", row, col)
	}
	f.history.Undo()
	if got := g.CellValue(3, 3); got != "old" {
		t.Errorf("cell after undo = %q, want old", got)
	}
}

func TestArrowsMoveCaretWhileEditing(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.Select(2, 2)

	f.nav.HandleChar('a')
	f.nav.HandleChar('c')
	if !f.nav.HandleKey(KeyLeft, 0) {
		t.Fatal("left while editing should be consumed")
	}
	f.nav.HandleChar('b')
	f.nav.HandleKey(KeyRight, 0)
	f.nav.HandleChar('d')
	if !f.editor.IsActive() {
		t.Fatal("arrows must not close the editor")
	}
	f.nav.HandleKey(KeyEnter, 0)

	if got := g.CellValue(2, 2); got != "abcd" {
		t.Errorf("cell = %q, want abcd", got)
	}
}

func TestBackspaceAndEscape(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.SetCellValue(3, 3, "keep")
	g.Select(3, 3)

	f.nav.HandleKey(KeyBackspace, 0)
	if !f.editor.IsActive() || g.HasCell(3, 3) {
		t.Fatalf("backspace should clear and open the editor")
	}
	f.nav.HandleKey(KeyEscape, 0)
	if f.editor.IsActive() {
		t.Error("escape should close the editor")
	}
	if got := g.CellValue(3, 3); got != "keep" {
		t.Errorf("cell = %q, want keep", got)
	}
	if f.history.CanUndo() {
		t.Error("cancelled edit must not be recorded")
	}
	if f.nav.HandleKey(KeyEscape, 0) {
		t.Error("escape without an editor should not be consumed")
	}
}

func TestControlCharactersIgnored(t *testing.T) {
	f := newFixture(20, 10)
	if f.nav.HandleChar('\t') {
		t.Error("control character should not open the editor")
	}
}

func TestPasteAndCopy(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.Select(2, 2)

	f.nav.Paste("a\tb\nc\td\n")
	if g.CellValue(2, 2) != "a" || g.CellValue(2, 3) != "b" || g.CellValue(3, 2) != "c" || g.CellValue(3, 3) != "d" {
		t.Fatalf("cells after paste = %v", g.Cells())
	}
	want := grid.Rect{StartRow: 2, StartCol: 2, EndRow: 3, EndCol: 3}
	if r, _ := g.Selection(); r != want {
		t.Errorf("selection = %+v, want %+v", r, want)
	}
	if got := f.nav.Copy(); got != "a\tb\nc\td" {
		t.Errorf("Copy() = %q", got)
	}

	f.history.Undo()
	if g.CellCount() != 0 {
		t.Errorf("CellCount() after undo = %d, want 0", g.CellCount())
	}
}

func TestCutAndSelectAll(t *testing.T) {
	f := newFixture(20, 10)
	g := f.grid
	g.SetCellValue(4, 4, "x")
	g.SetCellValue(5, 5, "y")

	f.nav.SelectAll()
	if r, _ := g.Selection(); r != (grid.Rect{StartRow: 1, StartCol: 1, EndRow: 19, EndCol: 9}) {
		t.Errorf("selection = %+v", r)
	}

	g.SetSelection(grid.CellRect(4, 4))
	if got := f.nav.Cut(); got != "x" {
		t.Errorf("Cut() = %q, want x", got)
	}
	if g.HasCell(4, 4) || !g.HasCell(5, 5) {
		t.Errorf("cells after cut = %v", g.Cells())
	}
	f.history.Undo()
	if g.CellValue(4, 4) != "x" {
		t.Error("cut should be undoable")
	}
}

func TestCopyOfHugeBlockIsRefused(t *testing.T) {
	f := newFixture(100000, 500)
	g := f.grid
	g.SetCellValue(99999, 499, "far")
	f.nav.SelectAll()

	if got := f.nav.Copy(); got != "" {
		t.Errorf("Copy() length = %d, want 0", len(got))
	}
	if !strings.HasPrefix(f.status.err, "Cannot copy") {
		t.Errorf("status error = %q", f.status.err)
	}

	f.status.err = ""
	if got := f.nav.Cut(); got != "" {
		t.Errorf("Cut() length = %d, want 0", len(got))
	}
	if g.CellValue(99999, 499) != "far" || f.history.CanUndo() {
		t.Error("refused cut must leave the cell and history alone")
	}
	if f.status.err == "" {
		t.Error("refused cut should report an error")
	}
}
