package filter

import "github.com/gogpu/horizon/internal/parallel"

// GaussianBlur returns src blurred with standard deviations sx and sy.
//
// The separable algorithm runs a horizontal pass into a temporary buffer and
// a vertical pass into the result: O(w*h*(kx+ky)). Samples past the edge
// repeat the edge pixel, so a uniform surface stays exactly uniform.
func GaussianBlur(src *Surface, sx, sy float64) *Surface {
	if sx <= 0 && sy <= 0 {
		return src.Clone()
	}
	temp := NewSurface(src.Width, src.Height)
	blurHorizontal(src, temp, CachedGaussianKernel(sx))
	dst := NewSurface(src.Width, src.Height)
	blurVertical(temp, dst, CachedGaussianKernel(sy))
	return dst
}

func blurHorizontal(src, dst *Surface, kernel []float64) {
	half := len(kernel) / 2
	w := src.Width
	parallel.Default().Rows(src.Height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := y * w
			for x := range w {
				var r, g, b, a float64
				for k, weight := range kernel {
					kx := clampInt(x+k-half, 0, w-1)
					i := (row + kx) * 4
					r += src.Pix[i+0] * weight
					g += src.Pix[i+1] * weight
					b += src.Pix[i+2] * weight
					a += src.Pix[i+3] * weight
				}
				i := (row + x) * 4
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, g, b, a
			}
		}
	})
}

func blurVertical(src, dst *Surface, kernel []float64) {
	half := len(kernel) / 2
	w, h := src.Width, src.Height
	parallel.Default().Rows(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := range w {
				var r, g, b, a float64
				for k, weight := range kernel {
					ky := clampInt(y+k-half, 0, h-1)
					i := (ky*w + x) * 4
					r += src.Pix[i+0] * weight
					g += src.Pix[i+1] * weight
					b += src.Pix[i+2] * weight
					a += src.Pix[i+3] * weight
				}
				i := (y*w + x) * 4
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, g, b, a
			}
		}
	})
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
