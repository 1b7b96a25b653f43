package commands

import (
	"fmt"

	"github.com/javanhut/RavenGrid/grid"
)

// CellChange is one entry of a batch edit
type CellChange struct {
	Row  int
	Col  int
	From string
	To   string
}

// SetCells applies a batch of cell changes as a single undo step
type SetCells struct {
	Label   string
	Changes []CellChange
}

func (c SetCells) Apply(g *grid.Grid) {
	for _, ch := range c.Changes {
		g.SetCellValue(ch.Row, ch.Col, ch.To)
	}
}

func (c SetCells) Revert(g *grid.Grid) {
	for i := len(c.Changes) - 1; i >= 0; i-- {
		ch := c.Changes[i]
		g.SetCellValue(ch.Row, ch.Col, ch.From)
	}
}

func (c SetCells) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprintf("Edit %d cells", len(c.Changes))
}

// NewClearCells returns a command emptying every stored cell in r, or nil
// when r holds no data.
func NewClearCells(g *grid.Grid, r grid.Rect) Command {
	cells := g.CellsIn(r)
	if len(cells) == 0 {
		return nil
	}
	changes := make([]CellChange, len(cells))
	for i, cell := range cells {
		changes[i] = CellChange{Row: cell.Row, Col: cell.Col, From: cell.Value}
	}
	return SetCells{Label: "Clear " + grid.RangeAddress(r), Changes: changes}
}

// NewPaste returns a command writing a block of values with its top-left
// corner at (row, col). Values falling outside the grid are dropped; nil
// is returned when nothing would change.
func NewPaste(g *grid.Grid, row, col int, block [][]string) Command {
	var changes []CellChange
	for dr, fields := range block {
		r := row + dr
		if r < 1 || r >= g.Rows {
			break
		}
		for dc, value := range fields {
			c := col + dc
			if c < 1 || c >= g.Cols {
				break
			}
			if from := g.CellValue(r, c); from != value {
				changes = append(changes, CellChange{Row: r, Col: c, From: from, To: value})
			}
		}
	}
	if len(changes) == 0 {
		return nil
	}
	return SetCells{Label: "Paste at " + grid.CellAddress(row, col), Changes: changes}
}
