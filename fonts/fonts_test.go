package fonts

import (
	"testing"

	"golang.org/x/image/font/opentype"
)

func TestBundledFontsParse(t *testing.T) {
	for _, f := range AvailableFonts() {
		if _, err := opentype.Parse(f.Data); err != nil {
			t.Errorf("%s: %v", f.Name, err)
		}
	}
}

func TestGetFont(t *testing.T) {
	if _, ok := GetFont(DefaultFontName()); !ok {
		t.Error("default font not found by name")
	}
	if _, ok := GetFont("missing"); ok {
		t.Error("unknown font should not be found")
	}
}
