package fonts

import (
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontInfo describes an available font
type FontInfo struct {
	Name        string
	DisplayName string
	Data        []byte
}

// AvailableFonts returns all bundled fonts
func AvailableFonts() []FontInfo {
	return []FontInfo{
		{Name: "gomono", DisplayName: "Go Mono", Data: gomono.TTF},
		{Name: "gomono-bold", DisplayName: "Go Mono Bold", Data: gomonobold.TTF},
		{Name: "goregular", DisplayName: "Go Regular", Data: goregular.TTF},
	}
}

// GetFont returns the font data by name
func GetFont(name string) ([]byte, bool) {
	for _, f := range AvailableFonts() {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// DefaultFont returns the default font (Go Mono)
func DefaultFont() []byte {
	return gomono.TTF
}

// DefaultFontName returns the default font name
func DefaultFontName() string {
	return "gomono"
}
