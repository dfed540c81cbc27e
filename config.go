package horizon

import "math"

// Element ids and selectors shared by the installer, the controller and the
// filter markup.
const (
	FilterContainerID  = "event-horizon-svg-container"
	FilterID           = "event-horizon-filter"
	DisplacementID     = "eh-displacement"
	BlackHoleID        = "eh-blackhole"
	NeutralBackdropID  = "eh-neutral-background"
	DefaultTargetClass = ".container"
)

// Filter result names the displacement node switches between.
const (
	CalibratedMap = "calibratedMap"
	NeutralMap    = "neutralMap"
)

// Color matrix values of the black-hole node. Enabled maps the hole mask in
// the blue channel to alpha = 20*B - 12; disabled clears the layer.
const (
	BlackHoleMatrixEnabled  = "0 0 0 0 0  0 0 0 0 0  0 0 0 0 0  0 0 20 -12 0"
	BlackHoleMatrixDisabled = "0 0 0 0 0  0 0 0 0 0  0 0 0 0 0  0 0 0 0 0"
)

// Visual tuning. The values are hand-picked to match the intended look and
// have no physical derivation.
const (
	DefaultTextureSize = 512

	// LensMass scales the 1/r force falloff.
	LensMass = 30.0
	// MaxForce caps the force near the event horizon.
	MaxForce = 3.0
	// HorizonRatio is the event-horizon radius as a fraction of the texture size.
	HorizonRatio = 0.05
	// EdgeFadeExponent shapes the force fade toward the lens rim.
	EdgeFadeExponent = 0.5
	// RimRatio is where the alpha ramp to the transparent rim begins, as a
	// fraction of the lens radius.
	RimRatio = 0.95

	// Smoothing is the per-frame fraction of the pointer gap the lens closes.
	Smoothing = 0.15

	// BlurStdDeviation softens generator pixelation in the filter graph.
	BlurStdDeviation = 3.0

	minDiameter   = 150.0
	diameterRatio = 0.05
	maxStrength   = 500.0
	strengthRatio = 0.05
)

// neutralGray is the 8-bit channel value that encodes zero force.
const neutralGray = 128

// EffectConfig holds the viewport-dependent sizing of the lens.
type EffectConfig struct {
	// Diameter is the rendered lens size in CSS pixels.
	Diameter float64
	// Strength is the displacement scale.
	Strength float64
}

// ConfigFor computes the lens sizing for a viewport.
func ConfigFor(width, height float64) EffectConfig {
	return EffectConfig{
		Diameter: math.Max(minDiameter, math.Min(width, height)*diameterRatio),
		Strength: math.Min(maxStrength, width*strengthRatio),
	}
}

// NeutralIntercept returns the transfer-function intercept that maps the
// neutral 8-bit value 128 to exactly 0.5, which the displacement primitive
// treats as zero offset. 128/255 alone is off by about 0.002.
func NeutralIntercept() float64 {
	return 0.5 - neutralGray/255.0
}
