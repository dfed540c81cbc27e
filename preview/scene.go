package preview

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/horizon"
	"github.com/gogpu/horizon/dom"
)

// CellSize is the edge length of a Checkerboard cell.
const CellSize = 16

// Checkerboard returns an opaque test scene: square cells whose hue sweeps
// across the image, alternating between a light and a dark shade. Every
// pixel differs from its neighbors across a cell edge, which makes
// displacement visible.
func Checkerboard(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			hue := 360 * float64(x) / math.Max(1, float64(width))
			value := 0.95
			if (x/CellSize+y/CellSize)%2 == 1 {
				value = 0.45
			}
			c := colorful.Hsv(hue, 0.6, value).Clamped()
			r, g, b := c.RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 0xff
		}
	}
	return img
}

// RenderDocument renders src through the filter graph installed in doc,
// with whatever lens position and wiring the controller last wrote.
func RenderDocument(src image.Image, doc *dom.MemDocument) (*image.NRGBA, error) {
	f, ok := doc.GetElementByID(horizon.FilterID).(*dom.Node)
	if !ok {
		return nil, ErrNoFilter
	}
	return RenderFilter(src, f)
}
