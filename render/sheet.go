package render

import (
	"strconv"
	"strings"

	"github.com/javanhut/RavenGrid/editor"
	"github.com/javanhut/RavenGrid/geometry"
	"github.com/javanhut/RavenGrid/grid"
	"github.com/javanhut/RavenGrid/menu"
)

// StatusBarHeight is the logical height of the strip below the sheet
const StatusBarHeight = 24

const cellPadding = 4

// SheetView is everything one frame paints
type SheetView struct {
	Calc    *geometry.Calculator
	Editor  *editor.Editor
	Address string // selection address shown in the status bar
	Summary string // selection statistics
	Toast   string
	Menu    *menu.Menu // settings overlay, drawn when open
}

// RenderSheet paints the grid, its headers, overlays and the status bar.
// width and height are the window's logical size. The caller clears the
// framebuffer to Theme().Background first.
func (r *Renderer) RenderSheet(v SheetView, width, height int) {
	proj := orthoMatrix(0, float32(width), float32(height), 0, -1, 1)

	g := v.Calc.Grid()
	win := v.Calc.PaintWindow()
	sel, hasSel := g.Selection()
	sel = sel.Normalize()

	// Later layers cover the overflow of earlier ones, so cells go first
	// and the header bands are painted over them.
	r.renderCells(v.Calc, win, proj)
	if hasSel {
		r.renderSelection(v.Calc, win, sel, proj)
	}
	r.renderGridLines(v.Calc, win, width, height, proj)
	r.renderHeaders(v.Calc, win, sel, hasSel, width, proj)

	if row, col, ok := g.Anchor(); ok && row >= win.StartRow && row <= win.EndRow && col >= win.StartCol && col <= win.EndCol {
		x, y, w, h := v.Calc.CellRect(row, col)
		r.drawOutline(float32(x), float32(y), float32(w), float32(h), 2, r.theme.Cursor, proj)
	}

	if v.Editor != nil && v.Editor.IsActive() {
		r.renderEditor(v.Calc, v.Editor, proj)
	}

	r.renderStatusBar(v.Address, v.Summary, width, height, proj)
	r.drawToast(v.Toast, width, height-StatusBarHeight, proj)

	if v.Menu != nil && v.Menu.IsOpen() {
		r.renderMenu(v.Menu, width, height, proj)
	}
}

func (r *Renderer) renderCells(calc *geometry.Calculator, win geometry.Window, proj [16]float32) {
	g := calc.Grid()
	for row := win.StartRow; row <= win.EndRow; row++ {
		for col := win.StartCol; col <= win.EndCol; col++ {
			value := g.CellValue(row, col)
			if value == "" {
				continue
			}
			x, y, w, h := calc.CellRect(row, col)
			r.drawCellText(float32(x), float32(y), float32(w), float32(h), value, isNumeric(value), r.theme.Foreground, proj)
		}
	}
}

// drawCellText draws text vertically centred in a box, truncated to fit
func (r *Renderer) drawCellText(x, y, w, h float32, text string, alignRight bool, clr [4]float32, proj [16]float32) {
	text = r.fitText(text, w-2*cellPadding)
	if text == "" {
		return
	}
	tx := x + cellPadding
	if alignRight {
		tx = x + w - cellPadding - r.textWidth(text)
	}
	r.drawText(tx, y+(h+r.cellHeight)/2, text, clr, proj)
}

func (r *Renderer) renderSelection(calc *geometry.Calculator, win geometry.Window, sel grid.Rect, proj [16]float32) {
	startRow, endRow := max(sel.StartRow, win.StartRow), min(sel.EndRow, win.EndRow)
	startCol, endCol := max(sel.StartCol, win.StartCol), min(sel.EndCol, win.EndCol)
	if startRow > endRow || startCol > endCol {
		return
	}
	g := calc.Grid()
	x0, y0 := calc.ScreenColX(startCol), calc.ScreenRowY(startRow)
	x1 := calc.ScreenColX(endCol) + g.ColWidth(endCol)
	y1 := calc.ScreenRowY(endRow) + g.RowHeight(endRow)
	r.drawRect(float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), r.theme.Selection, proj)
}

func (r *Renderer) renderGridLines(calc *geometry.Calculator, win geometry.Window, width, height int, proj [16]float32) {
	g := calc.Grid()
	bottom := float32(min(height-StatusBarHeight, calc.ScreenRowY(win.EndRow)+g.RowHeight(win.EndRow)))
	right := float32(min(width, calc.ScreenColX(win.EndCol)+g.ColWidth(win.EndCol)))

	for col := win.StartCol; col <= win.EndCol; col++ {
		x := float32(calc.ScreenColX(col) + g.ColWidth(col) - 1)
		r.drawRect(x, 0, 1, bottom, r.theme.GridLine, proj)
	}
	for row := win.StartRow; row <= win.EndRow; row++ {
		y := float32(calc.ScreenRowY(row) + g.RowHeight(row) - 1)
		r.drawRect(0, y, right, 1, r.theme.GridLine, proj)
	}
}

func (r *Renderer) renderHeaders(calc *geometry.Calculator, win geometry.Window, sel grid.Rect, hasSel bool, width int, proj [16]float32) {
	g := calc.Grid()
	hw, hh := float32(g.HeaderWidth()), float32(g.HeaderHeight())
	sheetBottom := float32(calc.ScreenRowY(win.EndRow) + g.RowHeight(win.EndRow))

	r.drawRect(0, 0, float32(width), hh, r.theme.Header, proj)
	r.drawRect(0, 0, hw, sheetBottom, r.theme.Header, proj)

	for col := win.StartCol; col <= win.EndCol; col++ {
		x, w := float32(calc.ScreenColX(col)), float32(g.ColWidth(col))
		if x+w <= hw {
			continue
		}
		if hasSel && col >= sel.StartCol && col <= sel.EndCol {
			r.drawRect(x, 0, w, hh, r.theme.Accent, proj)
		}
		name := grid.ColumnName(col)
		r.drawText(x+(w-r.textWidth(name))/2, (hh+r.cellHeight)/2, name, r.theme.HeaderText, proj)
		r.drawRect(x+w-1, 0, 1, hh, r.theme.GridLine, proj)
	}

	for row := win.StartRow; row <= win.EndRow; row++ {
		y, h := float32(calc.ScreenRowY(row)), float32(g.RowHeight(row))
		if y+h <= hh {
			continue
		}
		if hasSel && row >= sel.StartRow && row <= sel.EndRow {
			r.drawRect(0, y, hw, h, r.theme.Accent, proj)
		}
		label := strconv.Itoa(row)
		r.drawCellText(0, y, hw, h, label, true, r.theme.HeaderText, proj)
		r.drawRect(0, y+h-1, hw, 1, r.theme.GridLine, proj)
	}

	// Corner covers labels that slid under both bands
	r.drawRect(0, 0, hw, hh, r.theme.Header, proj)
	r.drawRect(hw-1, 0, 1, sheetBottom, r.theme.GridLine, proj)
	r.drawRect(0, hh-1, float32(width), 1, r.theme.GridLine, proj)
}

// renderEditor draws the inline editor over its cell. The box grows to the
// right when the text is wider than the column.
func (r *Renderer) renderEditor(calc *geometry.Calculator, ed *editor.Editor, proj [16]float32) {
	x, y, w, h := calc.CellRect(ed.Row, ed.Col)
	bx, by, bh := float32(x), float32(y), float32(h)
	bw := max(float32(w), r.textWidth(ed.Text)+2*cellPadding+r.cellWidth)

	r.drawRect(bx, by, bw, bh, r.theme.Background, proj)
	r.drawOutline(bx, by, bw, bh, 2, r.theme.Cursor, proj)

	baseline := by + (bh+r.cellHeight)/2
	r.drawText(bx+cellPadding, baseline, ed.Text, r.theme.Foreground, proj)

	caretX := bx + cellPadding + float32(ed.CaretColumn())*r.cellWidth
	r.drawRect(caretX, baseline-r.cellHeight, 2, r.cellHeight, r.theme.Cursor, proj)
}

func (r *Renderer) renderStatusBar(address, summary string, width, height int, proj [16]float32) {
	y := float32(height - StatusBarHeight)
	r.drawRect(0, y, float32(width), StatusBarHeight, r.theme.Header, proj)
	r.drawRect(0, y, float32(width), 1, r.theme.GridLine, proj)

	half := float32(width) / 2
	if address != "" {
		r.drawCellText(0, y, half, StatusBarHeight, address, false, r.theme.Foreground, proj)
	}
	if summary != "" {
		r.drawCellText(half, y, half, StatusBarHeight, summary, true, r.theme.HeaderText, proj)
	}
}

// drawToast renders a small notification overlay whose box sits above
// bottom.
func (r *Renderer) drawToast(message string, width, bottom int, proj [16]float32) {
	if strings.TrimSpace(message) == "" {
		return
	}

	paddingX := r.cellWidth * 0.8
	paddingY := r.cellHeight * 0.35
	margin := r.cellWidth * 0.8

	maxText := float32(width) - margin*2 - paddingX*2
	if maxText < r.cellWidth*4 {
		return
	}
	if r.textWidth(message) > maxText {
		message = r.fitText(message, maxText-r.cellWidth*3) + "..."
	}

	boxW := r.textWidth(message) + paddingX*2
	boxH := r.cellHeight + paddingY*2
	x := float32(width) - boxW - margin
	y := float32(bottom) - boxH - margin
	bg := r.theme.Header
	bg[3] = 0.85

	r.drawRect(x, y, boxW, boxH, bg, proj)
	r.drawText(x+paddingX, y+boxH-paddingY, message, r.theme.Foreground, proj)
}

// isNumeric reports whether a cell value reads as a number
func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil
}
