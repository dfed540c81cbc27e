package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/horizon/internal/parallel"
)

// Channel selects a color channel of a displacement map.
type Channel int

// Displacement map channels.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

// ParseChannel parses an xChannelSelector/yChannelSelector value.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "R":
		return ChannelR, nil
	case "G":
		return ChannelG, nil
	case "B":
		return ChannelB, nil
	case "A", "":
		return ChannelA, nil
	}
	return 0, fmt.Errorf("filter: unknown channel selector %q", s)
}

// Displace remaps src through the vector field in dmap:
//
//	P'(x,y) = P(x + scale*(XC(x,y) - 0.5), y + scale*(YC(x,y) - 0.5))
//
// where XC and YC are the selected unpremultiplied channels of dmap.
// Samples are nearest-neighbor; samples outside src are transparent.
func Displace(src, dmap *Surface, scale float64, xc, yc Channel) *Surface {
	dst := NewSurface(src.Width, src.Height)
	parallel.Default().Rows(src.Height, func(lo, hi int) {
		var px [4]float64
		for y := lo; y < hi; y++ {
			for x := range src.Width {
				px[0], px[1], px[2], px[3] = dmap.Straight(x, y)
				sx := float64(x) + scale*(px[xc]-0.5)
				sy := float64(y) + scale*(px[yc]-0.5)
				r, g, b, a := src.At(int(math.Floor(sx+0.5)), int(math.Floor(sy+0.5)))
				dst.Set(x, y, r, g, b, a)
			}
		}
	})
	return dst
}
