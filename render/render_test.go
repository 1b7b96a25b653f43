package render

import (
	"testing"

	"github.com/javanhut/RavenGrid/fonts"
)

func TestFrameLoopCoalescesRequests(t *testing.T) {
	paints := 0
	loop := NewFrameLoop(func() { paints++ })

	if !loop.Frame() {
		t.Fatal("first frame should paint")
	}
	if loop.Frame() {
		t.Error("clean frame should not paint")
	}

	loop.RequestRedraw()
	loop.RequestRedraw()
	loop.RequestRedraw()
	if !loop.Dirty() {
		t.Fatal("expected pending paint")
	}
	loop.Frame()
	loop.Frame()
	if paints != 2 {
		t.Errorf("paints = %d, want 2", paints)
	}
}

func TestRedrawDuringPaintSchedulesAnotherFrame(t *testing.T) {
	var loop *FrameLoop
	paints := 0
	loop = NewFrameLoop(func() {
		paints++
		if paints == 1 {
			loop.RequestRedraw()
		}
	})
	loop.Frame()
	if !loop.Frame() {
		t.Error("request made while painting was lost")
	}
	if paints != 2 {
		t.Errorf("paints = %d, want 2", paints)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("unknown") != ThemeByName("raven-blue") {
		t.Error("unknown theme should fall back to raven-blue")
	}
	if ThemeByName("  Catppuccin ") != ThemeByName("catppuccin-mocha") {
		t.Error("theme names should be case and space insensitive")
	}
	if ThemeByName("crow-black") == DefaultTheme() {
		t.Error("crow-black should differ from the default")
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"42", true},
		{" -3.5 ", true},
		{"1e3", true},
		{"abc", false},
		{"", false},
		{"12px", false},
	}
	for _, tt := range tests {
		if got := isNumeric(tt.value); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestClampFontSize(t *testing.T) {
	if clampFontSize(2) != minFontSize || clampFontSize(100) != maxFontSize || clampFontSize(14) != 14 {
		t.Error("clampFontSize out of range")
	}
}

func TestBuildAtlas(t *testing.T) {
	a, err := buildAtlas(fonts.DefaultFont(), 14, 512)
	if err != nil {
		t.Fatalf("buildAtlas: %v", err)
	}
	if a.cellWidth <= 0 || a.cellHeight <= a.cellWidth {
		t.Fatalf("cell = %dx%d", a.cellWidth, a.cellHeight)
	}
	if len(a.alpha) != 512*512 {
		t.Fatalf("alpha len = %d", len(a.alpha))
	}

	g, ok := a.glyph('A')
	if !ok {
		t.Fatal("missing glyph for A")
	}
	if g.PixelWidth != a.cellWidth || g.X < 0 || g.Y < 0 || g.X+g.Width > 1 || g.Y+g.Height > 1 {
		t.Errorf("glyph A = %+v", g)
	}
	x0, y0 := int(g.X*512+0.5), int(g.Y*512+0.5)
	inked := false
	for y := y0; y < y0+g.PixelHeight && !inked; y++ {
		for x := x0; x < x0+g.PixelWidth; x++ {
			if a.alpha[y*512+x] != 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("glyph A cell is blank")
	}

	if fallback, _ := a.glyph('\U0001F600'); fallback != a.glyphs['?'] {
		t.Error("unknown rune should fall back to ?")
	}
}

func TestBuildAtlasStopsWhenFull(t *testing.T) {
	a, err := buildAtlas(fonts.DefaultFont(), 14, 64)
	if err != nil {
		t.Fatalf("buildAtlas: %v", err)
	}
	want := (64 / a.cellWidth) * (64 / a.cellHeight)
	if len(a.glyphs) != want {
		t.Errorf("glyphs = %d, want %d", len(a.glyphs), want)
	}
	if _, err := buildAtlas([]byte("not a font"), 14, 64); err == nil {
		t.Error("expected a parse error")
	}
}
