package grid

import "testing"

func newTestGrid() *Grid {
	return NewGrid(Options{Rows: 20, Cols: 10, RowHeight: 20, ColWidth: 64, HeaderWidth: 50, HeaderHeight: 20})
}

func TestSetEmptyValueRemovesEntry(t *testing.T) {
	g := newTestGrid()
	g.SetCellValue(3, 4, "hello")
	if g.CellCount() != 1 {
		t.Fatalf("CellCount() = %d, want 1", g.CellCount())
	}

	g.SetCellValue(3, 4, "")
	if got := g.CellValue(3, 4); got != "" {
		t.Errorf("CellValue = %q, want empty", got)
	}
	if g.HasCell(3, 4) {
		t.Error("expected cell entry to be removed")
	}
	if g.CellCount() != 0 {
		t.Errorf("CellCount() = %d, want 0", g.CellCount())
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	g := newTestGrid()

	if got := g.CellValue(-1, 500); got != "" {
		t.Errorf("out of range read = %q, want empty", got)
	}
	for _, pos := range [][2]int{{0, 1}, {1, 0}, {20, 1}, {1, 10}, {-3, -3}} {
		if g.SetCellValue(pos[0], pos[1], "x") {
			t.Errorf("SetCellValue(%d,%d) accepted an out of range write", pos[0], pos[1])
		}
	}
	if g.CellCount() != 0 {
		t.Errorf("CellCount() = %d, want 0", g.CellCount())
	}
}

func TestClearAllCells(t *testing.T) {
	g := newTestGrid()
	g.SetCellValue(1, 1, "a")
	g.SetCellValue(2, 2, "b")
	g.ClearAllCells()
	if g.CellCount() != 0 {
		t.Errorf("CellCount() = %d, want 0", g.CellCount())
	}
}

func TestHeaderSizes(t *testing.T) {
	g := newTestGrid()
	if g.HeaderWidth() != 50 || g.HeaderHeight() != 20 {
		t.Errorf("header = %dx%d, want 50x20", g.HeaderWidth(), g.HeaderHeight())
	}
	if g.RowHeights().Len() != g.Rows || g.ColWidths().Len() != g.Cols {
		t.Error("size trees out of sync with extents")
	}
}

func TestSetScrollClampsNegative(t *testing.T) {
	g := newTestGrid()
	g.SetScroll(-10, 30)
	if g.ScrollX != 0 || g.ScrollY != 30 {
		t.Errorf("scroll = (%d,%d), want (0,30)", g.ScrollX, g.ScrollY)
	}
	g.ScrollBy(5, -100)
	if g.ScrollX != 5 || g.ScrollY != 0 {
		t.Errorf("scroll = (%d,%d), want (5,0)", g.ScrollX, g.ScrollY)
	}
}

func TestSelectionIsNotNormalized(t *testing.T) {
	g := newTestGrid()
	g.SetSelection(Rect{StartRow: 5, StartCol: 5, EndRow: 2, EndCol: 3})

	r, ok := g.Selection()
	if !ok {
		t.Fatal("expected selection")
	}
	if r.StartRow != 5 || r.EndRow != 2 {
		t.Errorf("selection was normalized: %+v", r)
	}
	n := r.Normalize()
	if n.StartRow != 2 || n.StartCol != 3 || n.EndRow != 5 || n.EndCol != 5 {
		t.Errorf("Normalize() = %+v", n)
	}
	if !g.IsSelected(3, 4) || g.IsSelected(6, 4) {
		t.Error("IsSelected disagrees with normalized rectangle")
	}
}

func TestCellsInUsesBothStrategies(t *testing.T) {
	g := newTestGrid()
	g.SetCellValue(2, 2, "10")
	g.SetCellValue(3, 3, "20")
	g.SetCellValue(4, 4, "30")
	g.SetCellValue(9, 9, "out")

	small := g.CellsIn(Rect{StartRow: 4, StartCol: 4, EndRow: 2, EndCol: 2})
	if len(small) != 3 {
		t.Errorf("small rect cells = %d, want 3", len(small))
	}

	single := g.CellsIn(CellRect(3, 3))
	if len(single) != 1 || single[0].Value != "20" {
		t.Errorf("single cell rect = %+v", single)
	}

	large := g.CellsIn(Rect{StartRow: 1, StartCol: 1, EndRow: 8, EndCol: 8})
	if len(large) != 3 {
		t.Fatalf("large rect cells = %d, want 3", len(large))
	}
	if large[0].Row != 2 || large[2].Row != 4 {
		t.Errorf("large rect cells not sorted: %+v", large)
	}
}
