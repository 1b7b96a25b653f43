package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/javanhut/RavenGrid/grid"
)

// Summary holds statistics over the numeric cells of a selection
type Summary struct {
	Cells int // populated cells, numeric or not
	Count int // numeric cells
	Sum   float64
	Min   float64
	Max   float64
}

// Average returns Sum/Count, or 0 with no numeric cells
func (s Summary) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// String formats the summary for the status bar
func (s Summary) String() string {
	if s.Count == 0 {
		if s.Cells == 0 {
			return ""
		}
		return fmt.Sprintf("Count: %d", s.Cells)
	}
	return fmt.Sprintf("Count: %d  Sum: %s  Avg: %s  Min: %s  Max: %s",
		s.Count, formatNumber(s.Sum), formatNumber(s.Average()), formatNumber(s.Min), formatNumber(s.Max))
}

// Compute summarizes the stored cells inside the normalized rectangle r.
// Values that do not parse as numbers count toward Cells only.
func Compute(g *grid.Grid, r grid.Rect) Summary {
	var s Summary
	for _, cell := range g.CellsIn(r) {
		s.Cells++
		v, ok := parseNumber(cell.Value)
		if !ok {
			continue
		}
		if s.Count == 0 {
			s.Min, s.Max = v, v
		} else {
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
		s.Count++
		s.Sum += v
	}
	return s
}

// Selection summarizes the grid's current selection
func Selection(g *grid.Grid) Summary {
	r, ok := g.Selection()
	if !ok {
		return Summary{}
	}
	return Compute(g, r)
}

func parseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
