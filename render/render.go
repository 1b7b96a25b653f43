package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/javanhut/RavenGrid/fonts"
	"github.com/javanhut/RavenGrid/grid"
)

// Theme colors
type Theme struct {
	Background [4]float32
	Foreground [4]float32
	Cursor     [4]float32 // anchor cell border and editor caret
	Header     [4]float32
	HeaderText [4]float32
	Accent     [4]float32 // headers of selected rows and columns
	Selection  [4]float32
	GridLine   [4]float32
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return ThemeByName("raven-blue")
}

// ThemeByName returns a theme for a known theme name.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crow-black":
		return Theme{
			Background: [4]float32{0.020, 0.020, 0.020, 1.0}, // #050505
			Foreground: [4]float32{0.902, 0.902, 0.902, 1.0}, // #e6e6e6
			Cursor:     [4]float32{0.965, 0.965, 0.965, 1.0}, // #f6f6f6
			Header:     [4]float32{0.000, 0.000, 0.000, 1.0}, // #000000
			HeaderText: [4]float32{0.600, 0.600, 0.600, 1.0},
			Accent:     [4]float32{0.702, 0.702, 0.702, 0.30}, // #b3b3b3
			Selection:  [4]float32{0.702, 0.702, 0.702, 0.25},
			GridLine:   [4]float32{0.160, 0.160, 0.160, 1.0},
		}
	case "magpie-black-white-grey", "magpie-black-and-white-grey":
		return Theme{
			Background: [4]float32{0.067, 0.067, 0.067, 1.0}, // #111111
			Foreground: [4]float32{0.961, 0.961, 0.961, 1.0}, // #f5f5f5
			Cursor:     [4]float32{1.000, 1.000, 1.000, 1.0}, // #ffffff
			Header:     [4]float32{0.039, 0.039, 0.039, 1.0}, // #0a0a0a
			HeaderText: [4]float32{0.700, 0.700, 0.700, 1.0},
			Accent:     [4]float32{0.816, 0.816, 0.816, 0.30}, // #d0d0d0
			Selection:  [4]float32{0.816, 0.816, 0.816, 0.25},
			GridLine:   [4]float32{0.200, 0.200, 0.200, 1.0},
		}
	case "catppuccin-mocha", "catppuccin", "catpuccin":
		return Theme{
			Background: [4]float32{0.118, 0.118, 0.180, 1.0}, // #1e1e2e
			Foreground: [4]float32{0.804, 0.839, 0.957, 1.0}, // #cdd6f4
			Cursor:     [4]float32{0.961, 0.761, 0.906, 1.0}, // #f5c2e7
			Header:     [4]float32{0.094, 0.094, 0.145, 1.0}, // #181825
			HeaderText: [4]float32{0.651, 0.678, 0.784, 1.0}, // #a6adc8
			Accent:     [4]float32{0.537, 0.706, 0.980, 0.30}, // #89b4fa
			Selection:  [4]float32{0.537, 0.706, 0.980, 0.25},
			GridLine:   [4]float32{0.192, 0.196, 0.267, 1.0}, // #313244
		}
	case "raven-blue":
		fallthrough
	default:
		return Theme{
			Background: [4]float32{0.051, 0.063, 0.102, 1.0}, // #0d101a
			Foreground: [4]float32{0.910, 0.929, 0.969, 1.0}, // #e8edf7
			Cursor:     [4]float32{0.635, 0.878, 0.780, 1.0}, // #a2e0c7
			Header:     [4]float32{0.039, 0.047, 0.078, 1.0}, // #0a0c14
			HeaderText: [4]float32{0.600, 0.650, 0.750, 1.0},
			Accent:     [4]float32{0.455, 0.714, 1.0, 0.30}, // #74b6ff
			Selection:  [4]float32{0.455, 0.714, 1.0, 0.25},
			GridLine:   [4]float32{0.122, 0.165, 0.267, 1.0}, // #1f2a44
		}
	}
}

// SetThemeByName applies a named theme to the renderer.
func (r *Renderer) SetThemeByName(name string) {
	r.theme = ThemeByName(name)
}

// Theme returns the active theme
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Renderer handles OpenGL rendering of the sheet
type Renderer struct {
	theme           Theme
	cellWidth       float32 // glyph advance at the current font size
	cellHeight      float32
	fontSize        float32
	defaultFontSize float32
	currentFont     string

	atlas     *glyphAtlas
	atlasTex  uint32
	atlasSize int

	solid *pipeline
	glyph *pipeline
}

// NewRenderer compiles the shaders and rasterizes the default font. A GL
// context must be current.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		theme:           DefaultTheme(),
		fontSize:        defaultFontSize,
		defaultFontSize: defaultFontSize,
		currentFont:     fonts.DefaultFontName(),
		atlasSize:       1024,
	}

	var err error
	if r.solid, err = newPipeline(solidVertex, solidFragment, 2); err != nil {
		return nil, fmt.Errorf("failed to create quad shader: %w", err)
	}
	if r.glyph, err = newPipeline(glyphVertex, glyphFragment, 4); err != nil {
		return nil, fmt.Errorf("failed to create text shader: %w", err)
	}
	if err := r.loadFont(fonts.DefaultFont()); err != nil {
		return nil, err
	}
	return r, nil
}

// loadFont rasterizes fontData at the current size and replaces the atlas
func (r *Renderer) loadFont(fontData []byte) error {
	a, err := buildAtlas(fontData, r.fontSize, r.atlasSize)
	if err != nil {
		return err
	}
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	r.atlas = a
	r.atlasTex = uploadAtlas(a)
	r.cellWidth = float32(a.cellWidth)
	r.cellHeight = float32(a.cellHeight)
	return nil
}

func (r *Renderer) drawRect(x, y, w, h float32, clr [4]float32, proj [16]float32) {
	if w <= 0 || h <= 0 {
		return
	}
	r.solid.vertices = quad(r.solid.vertices, x, y, x+w, y+h, [4][2]float32{}, false)
	r.solid.draw(clr, &proj)
}

// drawOutline draws a rectangle border of the given thickness
func (r *Renderer) drawOutline(x, y, w, h, t float32, clr [4]float32, proj [16]float32) {
	r.drawRect(x, y, w, t, clr, proj)
	r.drawRect(x, y+h-t, w, t, clr, proj)
	r.drawRect(x, y, t, h, clr, proj)
	r.drawRect(x+w-t, y, t, h, clr, proj)
}

// drawChar draws one glyph; y is the bottom of its cell
func (r *Renderer) drawChar(x, y float32, char rune, clr [4]float32, proj [16]float32) {
	g, ok := r.atlas.glyph(char)
	if !ok {
		return
	}
	u0, v0, u1, v1 := g.X, g.Y, g.X+g.Width, g.Y+g.Height
	uv := [4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
	r.glyph.vertices = quad(r.glyph.vertices, x, y-float32(g.PixelHeight), x+float32(g.PixelWidth), y, uv, true)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	r.glyph.draw(clr, &proj)
}

// drawText draws a string of text, advancing by display width
func (r *Renderer) drawText(x, y float32, text string, clr [4]float32, proj [16]float32) {
	for _, char := range text {
		w := grid.RuneWidth(char)
		if w == 0 {
			continue
		}
		r.drawChar(x, y, char, clr, proj)
		x += r.cellWidth * float32(w)
	}
}

// textWidth returns the pixel width drawText would use
func (r *Renderer) textWidth(text string) float32 {
	return float32(grid.StringWidth(text)) * r.cellWidth
}

// fitText truncates text to fit in maxWidth pixels
func (r *Renderer) fitText(text string, maxWidth float32) string {
	if r.cellWidth <= 0 {
		return ""
	}
	return grid.TruncateToWidth(text, int(maxWidth/r.cellWidth))
}

// ChangeFont switches to a bundled font by name, keeping the size
func (r *Renderer) ChangeFont(name string) error {
	if name == r.currentFont {
		return nil
	}
	data, ok := fonts.GetFont(name)
	if !ok {
		return fmt.Errorf("font %q not found", name)
	}
	if err := r.loadFont(data); err != nil {
		return err
	}
	r.currentFont = name
	return nil
}

func (r *Renderer) CurrentFont() string {
	return r.currentFont
}

const (
	defaultFontSize = 14.0
	minFontSize     = 8.0
	maxFontSize     = 32.0
	zoomStep        = 2.0
)

// ZoomIn increases the font size
func (r *Renderer) ZoomIn() error {
	return r.setFontSize(clampFontSize(r.fontSize + zoomStep))
}

// ZoomOut decreases the font size
func (r *Renderer) ZoomOut() error {
	return r.setFontSize(clampFontSize(r.fontSize - zoomStep))
}

// ZoomReset returns to the configured font size
func (r *Renderer) ZoomReset() error {
	return r.setFontSize(r.defaultFontSize)
}

func (r *Renderer) setFontSize(size float32) error {
	if size == r.fontSize {
		return nil
	}
	data, ok := fonts.GetFont(r.currentFont)
	if !ok {
		data = fonts.DefaultFont()
	}
	prev := r.fontSize
	r.fontSize = size
	if err := r.loadFont(data); err != nil {
		r.fontSize = prev
		return err
	}
	return nil
}

// SetDefaultFontSize sets the size ZoomReset returns to and applies it
func (r *Renderer) SetDefaultFontSize(size float32) error {
	size = clampFontSize(size)
	r.defaultFontSize = size
	return r.setFontSize(size)
}

// GetFontSize returns the current font size, zoom included
func (r *Renderer) GetFontSize() float32 {
	return r.fontSize
}

func clampFontSize(size float32) float32 {
	return max(minFontSize, min(size, maxFontSize))
}

// Destroy releases the GL objects
func (r *Renderer) Destroy() {
	r.solid.destroy()
	r.glyph.destroy()
	gl.DeleteTextures(1, &r.atlasTex)
}
