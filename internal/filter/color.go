package filter

import "github.com/gogpu/horizon/internal/parallel"

// Matrix is an SVG feColorMatrix: 4 rows of 5 coefficients in row-major
// order. The fifth column is an offset in [0, 1] units.
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
type Matrix [20]float64

// IdentityMatrix passes colors through unchanged.
var IdentityMatrix = Matrix{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// ColorMatrix applies m to the unpremultiplied colors of src.
func ColorMatrix(src *Surface, m Matrix) *Surface {
	dst := NewSurface(src.Width, src.Height)
	parallel.Default().Rows(src.Height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := range src.Width {
				r, g, b, a := src.Straight(x, y)
				nr := clamp01(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
				ng := clamp01(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
				nb := clamp01(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
				na := clamp01(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
				dst.Set(x, y, nr*na, ng*na, nb*na, na)
			}
		}
	})
	return dst
}

// Transfer is a linear feComponentTransfer function: C' = Slope*C + Intercept.
type Transfer struct {
	Slope     float64
	Intercept float64
}

// IdentityTransfer leaves a channel unchanged.
var IdentityTransfer = Transfer{Slope: 1}

// Apply evaluates the function for one channel value.
func (t Transfer) Apply(c float64) float64 {
	return clamp01(t.Slope*c + t.Intercept)
}

// ComponentTransfer applies per-channel functions (R, G, B, A) to the
// unpremultiplied colors of src.
func ComponentTransfer(src *Surface, fn [4]Transfer) *Surface {
	dst := NewSurface(src.Width, src.Height)
	parallel.Default().Rows(src.Height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := range src.Width {
				r, g, b, a := src.Straight(x, y)
				nr, ng, nb, na := fn[0].Apply(r), fn[1].Apply(g), fn[2].Apply(b), fn[3].Apply(a)
				dst.Set(x, y, nr*na, ng*na, nb*na, na)
			}
		}
	})
	return dst
}
