package grid

import (
	"unicode"

	"golang.org/x/text/width"
)

// RuneWidth returns how many cell-text columns a rune occupies: 0 for
// control and combining runes, 2 for East Asian wide and fullwidth runes,
// 1 otherwise. The renderer and editor use it to clip text to a cell.
func RuneWidth(r rune) int {
	if r == 0 || !unicode.IsPrint(r) {
		return 0
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the display width of s
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// TruncateToWidth returns the longest prefix of s whose display width does
// not exceed maxWidth cells.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if w+rw > maxWidth {
			return s[:i]
		}
		w += rw
	}
	return s
}
