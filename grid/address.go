package grid

import (
	"strconv"
	"strings"
)

// ColumnName returns the letter name of a data column: 1 is "A", 26 is
// "Z", 27 is "AA". Column 0 and below have no name.
func ColumnName(col int) string {
	if col < 1 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// CellAddress formats a cell as "B12"
func CellAddress(row, col int) string {
	name := ColumnName(col)
	if name == "" || row < 1 {
		return ""
	}
	return name + strconv.Itoa(row)
}

// RangeAddress formats a rectangle as "A1:C4", or a single address when
// the rectangle covers one cell.
func RangeAddress(r Rect) string {
	n := r.Normalize()
	start := CellAddress(n.StartRow, n.StartCol)
	if n.StartRow == n.EndRow && n.StartCol == n.EndCol {
		return start
	}
	var b strings.Builder
	b.WriteString(start)
	b.WriteByte(':')
	b.WriteString(CellAddress(n.EndRow, n.EndCol))
	return b.String()
}
