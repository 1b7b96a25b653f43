package grid

import (
	"errors"
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := map[int]string{
		0:   "",
		1:   "A",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}
	for col, want := range tests {
		if got := ColumnName(col); got != want {
			t.Errorf("ColumnName(%d) = %q, want %q", col, got, want)
		}
	}
}

func TestRangeAddress(t *testing.T) {
	if got := RangeAddress(Rect{StartRow: 4, StartCol: 3, EndRow: 1, EndCol: 1}); got != "A1:C4" {
		t.Errorf("RangeAddress = %q, want A1:C4", got)
	}
	if got := RangeAddress(CellRect(12, 2)); got != "B12" {
		t.Errorf("RangeAddress = %q, want B12", got)
	}
}

func TestCopyAndParseText(t *testing.T) {
	g := newTestGrid()
	g.SetCellValue(2, 2, "a")
	g.SetCellValue(3, 3, "b")

	text, err := g.CopyText(Rect{StartRow: 2, StartCol: 2, EndRow: 19, EndCol: 9})
	if err != nil || text != "a\t\n\tb" {
		t.Errorf("CopyText = %q, %v", text, err)
	}

	rows := ParseText("1\t2\r\n3\t4\n")
	if len(rows) != 2 || rows[1][1] != "4" {
		t.Errorf("ParseText = %v", rows)
	}
	if ParseText("") != nil {
		t.Error("ParseText(\"\") should be nil")
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := TruncateToWidth("hello", 3); got != "hel" {
		t.Errorf("TruncateToWidth = %q, want hel", got)
	}
	if got := TruncateToWidth("日本語", 5); got != "日本" {
		t.Errorf("TruncateToWidth = %q, want 日本", got)
	}
	if got := StringWidth("a日"); got != 3 {
		t.Errorf("StringWidth = %d, want 3", got)
	}
}

func TestCopyTextRefusesHugeBlock(t *testing.T) {
	g := NewGrid(Options{Rows: 100000, Cols: 500, RowHeight: 20, ColWidth: 64})
	g.SetCellValue(99999, 499, "far")

	text, err := g.CopyText(Rect{StartRow: 1, StartCol: 1, EndRow: 99999, EndCol: 499})
	if !errors.Is(err, ErrCopyTooLarge) {
		t.Fatalf("err = %v, want ErrCopyTooLarge", err)
	}
	if text != "" {
		t.Errorf("text length = %d, want 0", len(text))
	}

	// The same cell copied from nearby is a small block
	text, err = g.CopyText(Rect{StartRow: 99998, StartCol: 498, EndRow: 99999, EndCol: 499})
	if err != nil || text != "\t\n\tfar" {
		t.Errorf("CopyText = %q, %v", text, err)
	}
}
