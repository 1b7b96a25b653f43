package window

// Surface is the part of the window the sheet is drawn on, in screen
// coordinates. The status bar strip at the bottom is excluded.
type Surface struct {
	win *Window
	// ReservedBottom is the status bar height
	ReservedBottom int
}

func NewSurface(w *Window, reservedBottom int) *Surface {
	return &Surface{win: w, ReservedBottom: reservedBottom}
}

// Size returns the drawable sheet area
func (s *Surface) Size() (int, int) {
	width, height := s.win.GetSize()
	return width, max(0, height-s.ReservedBottom)
}

// Scale returns the device pixel ratio
func (s *Surface) Scale() float32 {
	return s.win.PixelRatio()
}
