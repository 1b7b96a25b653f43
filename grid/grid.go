package grid

const (
	DefaultRows         = 100000
	DefaultCols         = 500
	DefaultRowHeight    = 20
	DefaultColWidth     = 64
	DefaultHeaderWidth  = 50
	DefaultHeaderHeight = 20
)

// HeaderIndex is the row/column index reserved for headers.
const HeaderIndex = 0

// CellKey identifies a stored cell
type CellKey struct {
	Row int
	Col int
}

// Cell is a stored cell with its position
type Cell struct {
	Row   int
	Col   int
	Value string
}

// Options configures a new grid
type Options struct {
	Rows         int
	Cols         int
	RowHeight    int
	ColWidth     int
	HeaderWidth  int
	HeaderHeight int
}

// DefaultOptions returns the default grid options
func DefaultOptions() Options {
	return Options{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		RowHeight:    DefaultRowHeight,
		ColWidth:     DefaultColWidth,
		HeaderWidth:  DefaultHeaderWidth,
		HeaderHeight: DefaultHeaderHeight,
	}
}

// Grid owns all persistent sheet state: extents, sizes, the sparse cell
// store, scroll offsets, the derived viewport and the selection cursors.
// It is not safe for concurrent use; every caller runs on the event thread.
type Grid struct {
	Rows int
	Cols int

	rowHeights *SizeTree
	colWidths  *SizeTree

	defaultRowHeight int
	defaultColWidth  int

	cells map[CellKey]string

	// Pixel offsets into the content area
	ScrollX int
	ScrollY int

	// Derived window of fully visible rows/cols (see geometry.Calculator)
	ViewportStartRow int
	ViewportEndRow   int
	ViewportStartCol int
	ViewportEndCol   int

	// Anchor cell
	anchorSet   bool
	SelectedRow int
	SelectedCol int

	// Selection rectangle, set or cleared as a unit
	selectionSet bool
	selection    Rect
}

// NewGrid creates a new grid with the given options. Extents below 2 are
// raised to 2 so there is always one header and one data row/column.
func NewGrid(opts Options) *Grid {
	if opts.Rows < 2 {
		opts.Rows = 2
	}
	if opts.Cols < 2 {
		opts.Cols = 2
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultRowHeight
	}
	if opts.ColWidth <= 0 {
		opts.ColWidth = DefaultColWidth
	}
	if opts.HeaderWidth <= 0 {
		opts.HeaderWidth = DefaultHeaderWidth
	}
	if opts.HeaderHeight <= 0 {
		opts.HeaderHeight = opts.RowHeight
	}

	g := &Grid{
		Rows:             opts.Rows,
		Cols:             opts.Cols,
		rowHeights:       NewSizeTree(opts.Rows, opts.RowHeight),
		colWidths:        NewSizeTree(opts.Cols, opts.ColWidth),
		defaultRowHeight: opts.RowHeight,
		defaultColWidth:  opts.ColWidth,
		cells:            make(map[CellKey]string),
		ViewportStartRow: 1,
		ViewportEndRow:   1,
		ViewportStartCol: 1,
		ViewportEndCol:   1,
	}
	g.rowHeights.Set(HeaderIndex, opts.HeaderHeight)
	g.colWidths.Set(HeaderIndex, opts.HeaderWidth)
	return g
}

// inBounds reports whether (row, col) addresses a data cell.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row < g.Rows && col >= 1 && col < g.Cols
}

// CellValue returns the stored value at (row, col) or "" when the cell is
// empty or out of range.
func (g *Grid) CellValue(row, col int) string {
	return g.cells[CellKey{Row: row, Col: col}]
}

// SetCellValue stores value at (row, col). An empty value removes the entry.
// Writes outside the data area are ignored and reported as false.
func (g *Grid) SetCellValue(row, col int, value string) bool {
	if !g.inBounds(row, col) {
		return false
	}
	key := CellKey{Row: row, Col: col}
	if value == "" {
		delete(g.cells, key)
		return true
	}
	g.cells[key] = value
	return true
}

// HasCell reports whether a value is stored at (row, col).
func (g *Grid) HasCell(row, col int) bool {
	_, ok := g.cells[CellKey{Row: row, Col: col}]
	return ok
}

// ClearAllCells empties the cell store
func (g *Grid) ClearAllCells() {
	g.cells = make(map[CellKey]string)
}

// CellCount returns the number of stored cells
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// EachCell calls fn for every stored cell in no particular order until fn
// returns false.
func (g *Grid) EachCell(fn func(key CellKey, value string) bool) {
	for key, value := range g.cells {
		if !fn(key, value) {
			return
		}
	}
}

// Cells returns a copy of the cell store
func (g *Grid) Cells() map[CellKey]string {
	out := make(map[CellKey]string, len(g.cells))
	for key, value := range g.cells {
		out[key] = value
	}
	return out
}

// RekeyCells rebuilds the store under the keys returned by fn and swaps it
// in. Entries for which fn returns false are dropped. Building a fresh map
// means no shift order can make one entry overwrite another.
func (g *Grid) RekeyCells(fn func(key CellKey) (CellKey, bool)) {
	next := make(map[CellKey]string, len(g.cells))
	for key, value := range g.cells {
		if moved, keep := fn(key); keep {
			next[moved] = value
		}
	}
	g.cells = next
}

// RowHasData reports whether any cell in row is populated
func (g *Grid) RowHasData(row int) bool {
	for key := range g.cells {
		if key.Row == row {
			return true
		}
	}
	return false
}

// ColHasData reports whether any cell in col is populated
func (g *Grid) ColHasData(col int) bool {
	for key := range g.cells {
		if key.Col == col {
			return true
		}
	}
	return false
}

// RowHeights returns the row size tree
func (g *Grid) RowHeights() *SizeTree {
	return g.rowHeights
}

// ColWidths returns the column size tree
func (g *Grid) ColWidths() *SizeTree {
	return g.colWidths
}

// RowHeight returns the height of row, or 0 if out of range
func (g *Grid) RowHeight(row int) int {
	return g.rowHeights.Get(row)
}

// ColWidth returns the width of col, or 0 if out of range
func (g *Grid) ColWidth(col int) int {
	return g.colWidths.Get(col)
}

// SetRowHeight sets the height of row
func (g *Grid) SetRowHeight(row, height int) {
	g.rowHeights.Set(row, height)
}

// SetColWidth sets the width of col
func (g *Grid) SetColWidth(col, width int) {
	g.colWidths.Set(col, width)
}

// DefaultRowHeight returns the size given to new rows
func (g *Grid) DefaultRowHeight() int {
	return g.defaultRowHeight
}

// DefaultColWidth returns the size given to new columns
func (g *Grid) DefaultColWidth() int {
	return g.defaultColWidth
}

// HeaderWidth returns the width of the row header column
func (g *Grid) HeaderWidth() int {
	return g.colWidths.Get(HeaderIndex)
}

// HeaderHeight returns the height of the column header row
func (g *Grid) HeaderHeight() int {
	return g.rowHeights.Get(HeaderIndex)
}

// SetScroll sets the scroll offsets. Negative values become 0; upper bounds
// are the calculator's concern.
func (g *Grid) SetScroll(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	g.ScrollX = x
	g.ScrollY = y
}

// ScrollBy moves the scroll offsets by a delta
func (g *Grid) ScrollBy(dx, dy int) {
	g.SetScroll(g.ScrollX+dx, g.ScrollY+dy)
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
