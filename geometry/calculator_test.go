package geometry

import (
	"math/rand"
	"testing"

	"github.com/javanhut/RavenGrid/grid"
)

// fakeSurface is a fixed-size drawing surface
type fakeSurface struct {
	width, height int
	scale         float32
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }
func (s *fakeSurface) Scale() float32   { return s.scale }

func newCalc(rows, cols, width, height int) (*grid.Grid, *Calculator) {
	g := grid.NewGrid(grid.Options{
		Rows:         rows,
		Cols:         cols,
		RowHeight:    20,
		ColWidth:     64,
		HeaderWidth:  50,
		HeaderHeight: 20,
	})
	c := NewCalculator(g, &fakeSurface{width: width, height: height, scale: 2})
	c.UpdateViewport()
	return g, c
}

func TestColXAndRowY(t *testing.T) {
	g, c := newCalc(100, 50, 800, 600)
	g.SetColWidth(2, 100)

	tests := []struct {
		col  int
		want int
	}{
		{0, 0},
		{1, 50},
		{2, 114},
		{3, 214},
		{4, 278},
	}
	for _, tt := range tests {
		if got := c.ColX(tt.col); got != tt.want {
			t.Errorf("ColX(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}
	if got := c.RowY(5); got != 100 {
		t.Errorf("RowY(5) = %d, want 100", got)
	}
}

func TestColAtX(t *testing.T) {
	_, c := newCalc(100, 5, 800, 600)

	tests := []struct {
		x    int
		want int
	}{
		{0, NotFound},
		{49, NotFound},
		{50, 1},
		{113, 1},
		{114, 2},
		{50 + 4*64 - 1, 4},
		{50 + 4*64, NotFound},
		{10000, NotFound},
	}
	for _, tt := range tests {
		if got := c.ColAtX(tt.x); got != tt.want {
			t.Errorf("ColAtX(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestScreenLookupsFollowScroll(t *testing.T) {
	g, c := newCalc(1000, 100, 800, 600)
	c.SetScroll(64, 40)

	if got := c.ColAtScreenX(50); got != 2 {
		t.Errorf("ColAtScreenX(50) = %d, want 2", got)
	}
	if got := c.ColAtScreenX(10); got != grid.HeaderIndex {
		t.Errorf("ColAtScreenX(10) = %d, want header", got)
	}
	if got := c.ColAtScreenX(-1); got != NotFound {
		t.Errorf("ColAtScreenX(-1) = %d, want NotFound", got)
	}
	if got := c.RowAtScreenY(20); got != 3 {
		t.Errorf("RowAtScreenY(20) = %d, want 3", got)
	}
	if got := c.ScreenColX(2); got != 50 {
		t.Errorf("ScreenColX(2) = %d, want 50", got)
	}
	if row, col, ok := c.CellAtScreen(60, 25); !ok || row != 3 || col != 2 {
		t.Errorf("CellAtScreen = (%d,%d,%v), want (3,2,true)", row, col, ok)
	}
	if _, _, ok := c.CellAtScreen(10, 25); ok {
		t.Error("CellAtScreen inside row header should fail")
	}
	if g.ScrollX != 64 || g.ScrollY != 40 {
		t.Errorf("scroll = (%d,%d)", g.ScrollX, g.ScrollY)
	}
}

func TestViewportAtOrigin(t *testing.T) {
	g, _ := newCalc(100000, 500, 800, 600)

	if g.ViewportStartRow != 1 || g.ViewportEndRow != 29 {
		t.Errorf("rows = %d..%d, want 1..29", g.ViewportStartRow, g.ViewportEndRow)
	}
	if g.ViewportStartCol != 1 || g.ViewportEndCol != 11 {
		t.Errorf("cols = %d..%d, want 1..11", g.ViewportStartCol, g.ViewportEndCol)
	}
}

func TestViewportPartiallyScrolled(t *testing.T) {
	g, c := newCalc(100000, 500, 800, 600)
	c.SetScroll(0, 25)

	if g.ViewportStartRow != 2 || g.ViewportEndRow != 30 {
		t.Errorf("rows = %d..%d, want 2..30", g.ViewportStartRow, g.ViewportEndRow)
	}
}

func TestViewportExcludesPartialTrailingRow(t *testing.T) {
	// 100px of data height holds exactly five rows
	g, c := newCalc(100, 10, 800, 120)
	if g.ViewportEndRow != 5 {
		t.Errorf("exact fit end = %d, want 5", g.ViewportEndRow)
	}

	// 110px holds five full rows and half of the sixth
	_, c = newCalc(100, 10, 800, 130)
	g = c.Grid()
	if g.ViewportEndRow != 5 {
		t.Errorf("partial fit end = %d, want 5", g.ViewportEndRow)
	}
	if got := c.PaintWindow().EndRow; got != 6 {
		t.Errorf("paint window end = %d, want 6", got)
	}
}

func TestViewportTinySurface(t *testing.T) {
	g, _ := newCalc(100, 10, 10, 10)
	if g.ViewportStartRow != 1 || g.ViewportEndRow != 1 {
		t.Errorf("rows = %d..%d, want 1..1", g.ViewportStartRow, g.ViewportEndRow)
	}
	if g.ViewportStartCol != 1 || g.ViewportEndCol != 1 {
		t.Errorf("cols = %d..%d, want 1..1", g.ViewportStartCol, g.ViewportEndCol)
	}
}

func TestViewportInvariantsUnderRandomScroll(t *testing.T) {
	g, c := newCalc(500, 40, 640, 480)
	rng := rand.New(rand.NewSource(7))
	for i := 1; i < g.Rows; i += 3 {
		g.SetRowHeight(i, 5+rng.Intn(60))
	}
	for i := 1; i < g.Cols; i += 2 {
		g.SetColWidth(i, 10+rng.Intn(200))
	}

	for i := 0; i < 500; i++ {
		g.SetScroll(rng.Intn(20000), rng.Intn(40000))
		c.UpdateViewport()

		if g.ViewportStartRow < 1 || g.ViewportEndRow < g.ViewportStartRow || g.ViewportEndRow >= g.Rows {
			t.Fatalf("bad row window %d..%d at scroll %d", g.ViewportStartRow, g.ViewportEndRow, g.ScrollY)
		}
		if g.ViewportStartCol < 1 || g.ViewportEndCol < g.ViewportStartCol || g.ViewportEndCol >= g.Cols {
			t.Fatalf("bad col window %d..%d at scroll %d", g.ViewportStartCol, g.ViewportEndCol, g.ScrollX)
		}
		if g.ViewportEndRow > g.ViewportStartRow {
			used := g.RowHeights().Sum(g.ViewportStartRow, g.ViewportEndRow+1)
			if used > c.VisibleHeight() {
				t.Fatalf("rows %d..%d use %dpx, visible %d", g.ViewportStartRow, g.ViewportEndRow, used, c.VisibleHeight())
			}
		}
	}
}

func TestClampScroll(t *testing.T) {
	g, c := newCalc(10, 5, 200, 100)
	c.SetScroll(100000, 100000)

	mx, my := c.MaxScroll()
	if g.ScrollX != mx || g.ScrollY != my {
		t.Errorf("scroll = (%d,%d), want (%d,%d)", g.ScrollX, g.ScrollY, mx, my)
	}
	if mx != 50+4*64-200 || my != 200-100 {
		t.Errorf("MaxScroll = (%d,%d)", mx, my)
	}
}

func TestScrollToCell(t *testing.T) {
	g, c := newCalc(1000, 100, 800, 600)

	if !c.ScrollToCell(40, 1) {
		t.Fatal("expected scroll to move")
	}
	if g.ViewportEndRow < 40 || g.ViewportStartRow > 40 {
		t.Errorf("row 40 not in viewport %d..%d", g.ViewportStartRow, g.ViewportEndRow)
	}

	if !c.ScrollToCell(2, 1) {
		t.Fatal("expected scroll back up")
	}
	if g.ScrollY != 20 {
		t.Errorf("ScrollY = %d, want 20", g.ScrollY)
	}
	if c.ScrollToCell(2, 1) {
		t.Error("already visible cell should not scroll")
	}
}

func TestDevicePixelRatio(t *testing.T) {
	_, c := newCalc(10, 10, 100, 100)
	if c.DevicePixelRatio() != 2 {
		t.Errorf("DevicePixelRatio() = %v, want 2", c.DevicePixelRatio())
	}
}
