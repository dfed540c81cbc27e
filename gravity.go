package horizon

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrInvalidSize is returned when a lens texture is requested with a
// non-positive size.
var ErrInvalidSize = errors.New("horizon: texture size must be positive")

// GenerateLens renders the lens texture: a size x size raster whose red and
// green channels encode the horizontal and vertical force (128 is neutral),
// whose blue channel is 255 inside the event horizon, and whose alpha fades
// the square to a circle.
//
// The result depends only on size.
func GenerateLens(size int) (*Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	pm := NewPixmap(size, size)
	center := float64(size) / 2
	rs := float64(size) * HorizonRatio
	rim := center * RimRatio
	rimWidth := center * (1 - RimRatio)

	for y := range size {
		for x := range size {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := math.Hypot(dx, dy)

			red, green, blue, alpha := float64(neutralGray), float64(neutralGray), 0.0, 255.0

			switch {
			case dist < rs:
				blue = 255
			case dist < center:
				force := lensForce(dist, rs, center)
				red = neutralGray - (dx/dist)*force*127
				green = neutralGray - (dy/dist)*force*127
				if dist > rim {
					alpha = math.Max(0, 255*(1-(dist-rim)/rimWidth))
				}
			default:
				alpha = 0
			}

			pm.SetRGBA8(x, y, channel(red), channel(green), channel(blue), channel(alpha))
		}
	}
	return pm, nil
}

// LensForce returns the capped force magnitude at distance dist from the
// center of a texture of the given size. It is zero inside the event
// horizon and at or beyond the lens radius.
func LensForce(dist float64, size int) float64 {
	rs := float64(size) * HorizonRatio
	center := float64(size) / 2
	if dist < rs || dist >= center {
		return 0
	}
	return lensForce(dist, rs, center)
}

func lensForce(dist, rs, center float64) float64 {
	force := LensMass / math.Max(1, dist-rs)
	force *= math.Pow(1-dist/center, EdgeFadeExponent)
	return math.Min(force, MaxForce)
}

// channel quantizes v to 8 bits with round-half-to-even and clamping.
func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

var lensURIs sync.Map // int -> string

// LensDataURI returns the lens texture for size as a PNG data URI.
// Results are memoized per size.
func LensDataURI(size int) (string, error) {
	if v, ok := lensURIs.Load(size); ok {
		return v.(string), nil
	}
	pm, err := GenerateLens(size)
	if err != nil {
		return "", err
	}
	uri, err := pm.DataURI()
	if err != nil {
		return "", err
	}
	Logger().Debug("horizon: generated lens texture", "size", size, "bytes", len(uri))
	v, _ := lensURIs.LoadOrStore(size, uri)
	return v.(string), nil
}
