package grid

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCopyCells caps the block CopyText will render. Empty positions count,
// since each one still costs a separator.
const MaxCopyCells = 1 << 20

// ErrCopyTooLarge means the trimmed copy block exceeds MaxCopyCells
var ErrCopyTooLarge = errors.New("block too large")

// CopyText renders the stored cells of r as tab separated lines. The block
// is trimmed to the last populated row and column so copying a whole
// column does not produce 100k empty lines. A block over MaxCopyCells is
// refused before any text is built.
func (g *Grid) CopyText(r Rect) (string, error) {
	n := r.Normalize()
	cells := g.CellsIn(n)
	if len(cells) == 0 {
		return "", nil
	}
	lastRow, lastCol := n.StartRow, n.StartCol
	for _, c := range cells {
		if c.Row > lastRow {
			lastRow = c.Row
		}
		if c.Col > lastCol {
			lastCol = c.Col
		}
	}

	if area := (lastRow - n.StartRow + 1) * (lastCol - n.StartCol + 1); area > MaxCopyCells {
		return "", fmt.Errorf("%w: %d cells, limit %d", ErrCopyTooLarge, area, MaxCopyCells)
	}

	var b strings.Builder
	for row := n.StartRow; row <= lastRow; row++ {
		if row > n.StartRow {
			b.WriteByte('\n')
		}
		for col := n.StartCol; col <= lastCol; col++ {
			if col > n.StartCol {
				b.WriteByte('\t')
			}
			b.WriteString(g.CellValue(row, col))
		}
	}
	return b.String(), nil
}

// ParseText splits tab separated clipboard text into rows of fields.
// A trailing newline does not produce an extra row.
func ParseText(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, "\t")
	}
	return rows
}
