package input

import (
	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/grid"
)

// Key is a navigation or editing key, independent of the window toolkit
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyDelete
	KeyBackspace
	KeyEscape
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Navigator is the keyboard state machine: it moves the anchor and
// selection, and drives the inline editor.
type Navigator struct {
	Deps
}

func NewNavigator(deps Deps) *Navigator {
	return &Navigator{Deps: deps}
}

// HandleKey processes a key press and reports whether it was consumed.
// A consumed key, Tab included, must not get the host's default handling.
func (n *Navigator) HandleKey(key Key, mods Mods) bool {
	shift := mods.Has(ModShift)
	if n.editing() {
		switch key {
		case KeyEscape:
			n.Editor.Cancel()
			n.redraw()
			return true
		case KeyBackspace:
			n.Editor.Backspace()
			n.redraw()
			return true
		case KeyDelete:
			n.Editor.Delete()
			n.redraw()
			return true
		case KeyLeft:
			n.Editor.MoveCaret(-1)
			n.redraw()
			return true
		case KeyRight:
			n.Editor.MoveCaret(1)
			n.redraw()
			return true
		case KeyHome:
			n.Editor.CaretHome()
			n.redraw()
			return true
		case KeyEnd:
			n.Editor.CaretEnd()
			n.redraw()
			return true
		case KeyNone:
			return false
		}
		n.Editor.CommitAndHide()
	}

	switch key {
	case KeyUp:
		n.move(-1, 0, shift)
	case KeyDown:
		n.move(1, 0, shift)
	case KeyLeft:
		n.move(0, -1, shift)
	case KeyRight:
		n.move(0, 1, shift)
	case KeyEnter:
		if shift {
			n.move(-1, 0, false)
		} else {
			n.move(1, 0, false)
		}
	case KeyTab:
		if shift {
			n.move(0, -1, false)
		} else {
			n.move(0, 1, false)
		}
	case KeyHome:
		row, _ := n.anchor()
		n.moveTo(row, 1)
	case KeyEnd:
		row, _ := n.anchor()
		n.moveTo(row, n.Calc.Grid().Cols-2)
	case KeyPageUp:
		n.move(-n.Calc.PageRows(), 0, shift)
	case KeyPageDown:
		n.move(n.Calc.PageRows(), 0, shift)
	case KeyDelete:
		n.clearSelection()
	case KeyBackspace:
		row, col := n.anchor()
		n.openEditor(row, col, "")
	default:
		return false
	}
	n.redraw()
	return true
}

// HandleChar types a printable character: into the open editor, or over
// the anchor cell, which is cleared and opened with the character.
func (n *Navigator) HandleChar(char rune) bool {
	if n.Editor == nil || char < ' ' || char == 0x7f {
		return false
	}
	if n.Editor.IsActive() {
		n.Editor.InsertChar(char)
	} else {
		row, col := n.anchor()
		n.openEditor(row, col, string(char))
	}
	n.redraw()
	return true
}

// EditAnchor opens the editor on the anchor cell with its current value
func (n *Navigator) EditAnchor() {
	if n.Editor == nil || n.Editor.IsActive() {
		return
	}
	row, col := n.anchor()
	n.Calc.Grid().Select(row, col)
	n.Calc.ScrollToCell(row, col)
	n.Editor.Show(row, col)
	n.redraw()
}

// Copy returns the selection as tab separated text. A block too large to
// copy is reported to the status sink and yields "".
func (n *Navigator) Copy() string {
	g := n.Calc.Grid()
	r, ok := g.Selection()
	if !ok {
		return ""
	}
	text, err := g.CopyText(r)
	if err != nil {
		if n.Status != nil {
			n.Status.ShowError("Cannot copy: " + err.Error())
		}
		return ""
	}
	return text
}

// Cut copies the selection and then clears it as one undoable command
func (n *Navigator) Cut() string {
	text := n.Copy()
	if text != "" {
		n.clearSelection()
		n.redraw()
	}
	return text
}

// SelectAll selects every data cell, keeping the anchor
func (n *Navigator) SelectAll() {
	g := n.Calc.Grid()
	if _, _, ok := g.Anchor(); !ok {
		g.SetAnchor(1, 1)
	}
	g.SetSelection(grid.Rect{StartRow: 1, StartCol: 1, EndRow: g.Rows - 1, EndCol: g.Cols - 1})
	n.selectionChanged()
	n.redraw()
}

// Paste writes tab separated text at the top-left of the selection as one
// undoable command and selects the pasted block.
func (n *Navigator) Paste(text string) {
	if n.editing() {
		for _, char := range text {
			if char == '\n' || char == '\r' {
				break
			}
			n.Editor.InsertChar(char)
		}
		n.redraw()
		return
	}
	block := grid.ParseText(text)
	if len(block) == 0 || n.History == nil {
		return
	}
	g := n.Calc.Grid()
	row, col := n.anchor()
	if r, ok := g.Selection(); ok {
		r = r.Normalize()
		row, col = r.StartRow, r.StartCol
	}
	n.History.Execute(commands.NewPaste(g, row, col, block))

	width := 0
	for _, fields := range block {
		width = max(width, len(fields))
	}
	g.SetAnchor(row, col)
	g.SetSelection(grid.Rect{StartRow: row, StartCol: col, EndRow: row + len(block) - 1, EndCol: col + width - 1})
	n.selectionChanged()
	n.redraw()
}

func (n *Navigator) anchor() (row, col int) {
	row, col, ok := n.Calc.Grid().Anchor()
	if !ok {
		return 1, 1
	}
	return row, col
}

// move shifts the anchor, or with extend the selection's moving corner,
// clamped to rows 1..rows-2 and columns 1..cols-2.
func (n *Navigator) move(dRow, dCol int, extend bool) {
	g := n.Calc.Grid()
	row, col := n.anchor()
	if !extend {
		n.moveTo(row+dRow, col+dCol)
		return
	}
	r, ok := g.Selection()
	if !ok {
		r = grid.CellRect(row, col)
	}
	r.EndRow = clamp(r.EndRow+dRow, 1, g.Rows-2)
	r.EndCol = clamp(r.EndCol+dCol, 1, g.Cols-2)
	g.SetSelection(r)
	n.Calc.ScrollToCell(r.EndRow, r.EndCol)
	n.selectionChanged()
}

func (n *Navigator) moveTo(row, col int) {
	g := n.Calc.Grid()
	row = clamp(row, 1, g.Rows-2)
	col = clamp(col, 1, g.Cols-2)
	g.Select(row, col)
	n.Calc.ScrollToCell(row, col)
	n.selectionChanged()
}

func (n *Navigator) clearSelection() {
	g := n.Calc.Grid()
	r, ok := g.Selection()
	if !ok || n.History == nil {
		return
	}
	n.History.Execute(commands.NewClearCells(g, r))
	n.selectionChanged()
}

func (n *Navigator) openEditor(row, col int, seed string) {
	if n.Editor == nil {
		return
	}
	g := n.Calc.Grid()
	g.Select(row, col)
	n.Calc.ScrollToCell(row, col)
	n.Editor.Show(row, col, seed)
	n.selectionChanged()
}
