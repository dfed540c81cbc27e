package filter

// Flood returns a surface filled with the given straight color and opacity.
func Flood(width, height int, r, g, b, opacity float64) *Surface {
	s := NewSurface(width, height)
	a := clamp01(opacity)
	pr, pg, pb := clamp01(r)*a, clamp01(g)*a, clamp01(b)*a
	for i := 0; i < len(s.Pix); i += 4 {
		s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3] = pr, pg, pb, a
	}
	return s
}

// Over composites top over bottom (Porter-Duff source-over). Both surfaces
// must have the same size.
func Over(top, bottom *Surface) *Surface {
	dst := NewSurface(bottom.Width, bottom.Height)
	for i := 0; i < len(dst.Pix); i += 4 {
		inv := 1 - top.Pix[i+3]
		dst.Pix[i+0] = top.Pix[i+0] + bottom.Pix[i+0]*inv
		dst.Pix[i+1] = top.Pix[i+1] + bottom.Pix[i+1]*inv
		dst.Pix[i+2] = top.Pix[i+2] + bottom.Pix[i+2]*inv
		dst.Pix[i+3] = top.Pix[i+3] + bottom.Pix[i+3]*inv
	}
	return dst
}

// Merge composites layers in order, the first at the bottom.
func Merge(width, height int, layers ...*Surface) *Surface {
	out := NewSurface(width, height)
	for _, l := range layers {
		out = Over(l, out)
	}
	return out
}
