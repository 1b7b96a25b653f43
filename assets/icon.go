package assets

import (
	_ "embed"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed raven_grid_icon.svg
var iconSVG string

var iconSizes = []int{16, 32, 48, 64, 128, 256}

// RenderIconSizes renders the embedded SVG icon at multiple sizes
// Returns a slice of images suitable for GLFW SetIcon
func RenderIconSizes() []image.Image {
	var icons []image.Image
	for _, size := range iconSizes {
		if img := renderSVGToSize(iconSVG, size); img != nil {
			icons = append(icons, img)
		}
	}
	return icons
}

// RenderIcon renders the embedded SVG icon at the specified size
func RenderIcon(size int) image.Image {
	return renderSVGToSize(iconSVG, size)
}

// renderSVGToSize renders an SVG string to an RGBA image of the specified size
func renderSVGToSize(svgData string, size int) image.Image {
	if size <= 0 {
		return nil
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(svgData))
	if err != nil {
		return nil
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	rasterizer := rasterx.NewDasher(size, size, scanner)
	icon.Draw(rasterizer, 1.0)

	return rgba
}
