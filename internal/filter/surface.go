package filter

import (
	"image"
	"image/color"
	"math"
)

// Surface is a premultiplied RGBA float raster, 4 values per pixel.
type Surface struct {
	Width  int
	Height int
	Pix    []float64
}

// NewSurface creates a transparent surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*4),
	}
}

// FromImage converts img to a surface anchored at the image origin.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	for y := range s.Height {
		for x := range s.Width {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*s.Width + x) * 4
			s.Pix[i+0] = float64(r) / 0xffff
			s.Pix[i+1] = float64(g) / 0xffff
			s.Pix[i+2] = float64(bl) / 0xffff
			s.Pix[i+3] = float64(a) / 0xffff
		}
	}
	return s
}

// Clone returns a deep copy of s.
func (s *Surface) Clone() *Surface {
	c := NewSurface(s.Width, s.Height)
	copy(c.Pix, s.Pix)
	return c
}

// At returns the premultiplied pixel at (x, y), or zero when out of bounds.
func (s *Surface) At(x, y int) (r, g, b, a float64) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, 0, 0, 0
	}
	i := (y*s.Width + x) * 4
	return s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]
}

// Straight returns the unpremultiplied pixel at (x, y).
func (s *Surface) Straight(x, y int) (r, g, b, a float64) {
	r, g, b, a = s.At(x, y)
	return unpremultiply(r, g, b, a)
}

// Set stores a premultiplied pixel. Out-of-bounds writes are ignored.
func (s *Surface) Set(x, y int, r, g, b, a float64) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	i := (y*s.Width + x) * 4
	s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3] = r, g, b, a
}

// ToNRGBA quantizes the surface to an 8-bit straight-alpha image.
func (s *Surface) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := range s.Height {
		for x := range s.Width {
			r, g, b, a := s.Straight(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: to8(a)})
		}
	}
	return img
}

func unpremultiply(r, g, b, a float64) (float64, float64, float64, float64) {
	if a <= 0 {
		return 0, 0, 0, 0
	}
	return r / a, g / a, b / a, a
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
