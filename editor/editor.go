package editor

import (
	"log"
	"os"

	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/grid"
)

var debugEditor = os.Getenv("RAVEN_GRID_DEBUG") == "1"

// Recorder bookkeeps a command whose effect is already applied
type Recorder interface {
	Record(cmd commands.Command)
}

// Editor is the inline cell editor overlay. While open, the cell shows the
// live text; the edit becomes a single undoable EditCell when committed.
type Editor struct {
	Row      int
	Col      int
	Text     string
	Original string
	Caret    int // rune index into Text

	active   bool
	grid     *grid.Grid
	recorder Recorder
}

func New(g *grid.Grid, recorder Recorder) *Editor {
	return &Editor{grid: g, recorder: recorder}
}

// Show opens the editor on a cell. Without a seed the editor starts from the
// cell's value. With a seed the cell is cleared and the text starts as the
// seed, which is how typing over a cell behaves.
func (e *Editor) Show(row, col int, seed ...string) {
	if e.active {
		e.CommitAndHide()
	}
	e.Row, e.Col = row, col
	e.Original = e.grid.CellValue(row, col)
	e.Text = e.Original
	if len(seed) > 0 {
		e.Text = seed[0]
		e.grid.SetCellValue(row, col, e.Text)
	}
	e.Caret = len([]rune(e.Text))
	e.active = true
	debugf("show (%d,%d) seed=%v", row, col, len(seed) > 0)
}

// IsActive reports whether the editor is open
func (e *Editor) IsActive() bool {
	return e.active
}

// CommitAndHide writes the text and records the edit. It is a no-op when
// the editor is closed.
func (e *Editor) CommitAndHide() {
	if !e.active {
		return
	}
	e.active = false
	e.grid.SetCellValue(e.Row, e.Col, e.Text)
	if cmd := commands.NewEditCell(e.Row, e.Col, e.Original, e.Text); cmd != nil && e.recorder != nil {
		e.recorder.Record(cmd)
	}
	debugf("commit (%d,%d) %q -> %q", e.Row, e.Col, e.Original, e.Text)
}

// Cancel closes the editor and restores the original value
func (e *Editor) Cancel() {
	if !e.active {
		return
	}
	e.active = false
	e.grid.SetCellValue(e.Row, e.Col, e.Original)
	e.Text = e.Original
}

// InsertChar types a rune at the caret
func (e *Editor) InsertChar(char rune) {
	if !e.active {
		return
	}
	runes := []rune(e.Text)
	caret := clampCaret(e.Caret, len(runes))
	runes = append(runes[:caret], append([]rune{char}, runes[caret:]...)...)
	e.setText(string(runes), caret+1)
}

// Backspace deletes the rune before the caret
func (e *Editor) Backspace() {
	if !e.active {
		return
	}
	runes := []rune(e.Text)
	caret := clampCaret(e.Caret, len(runes))
	if caret == 0 {
		return
	}
	runes = append(runes[:caret-1], runes[caret:]...)
	e.setText(string(runes), caret-1)
}

// Delete removes the rune under the caret
func (e *Editor) Delete() {
	if !e.active {
		return
	}
	runes := []rune(e.Text)
	caret := clampCaret(e.Caret, len(runes))
	if caret >= len(runes) {
		return
	}
	runes = append(runes[:caret], runes[caret+1:]...)
	e.setText(string(runes), caret)
}

func (e *Editor) MoveCaret(delta int) {
	e.Caret = clampCaret(e.Caret+delta, len([]rune(e.Text)))
}

func (e *Editor) CaretHome() {
	e.Caret = 0
}

func (e *Editor) CaretEnd() {
	e.Caret = len([]rune(e.Text))
}

// CaretColumn returns the display width of the text before the caret
func (e *Editor) CaretColumn() int {
	runes := []rune(e.Text)
	return grid.StringWidth(string(runes[:clampCaret(e.Caret, len(runes))]))
}

func (e *Editor) setText(text string, caret int) {
	e.Text = text
	e.Caret = caret
	// Live text shows in the cell while editing
	e.grid.SetCellValue(e.Row, e.Col, text)
}

func clampCaret(caret, n int) int {
	if caret < 0 {
		return 0
	}
	if caret > n {
		return n
	}
	return caret
}

func debugf(format string, args ...interface{}) {
	if !debugEditor {
		return
	}
	log.Printf("editor: "+format, args...)
}
