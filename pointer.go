package horizon

import "math"

// PointerState tracks the raw pointer target and the smoothed lens position,
// both in lens-corner coordinates relative to the target container.
type PointerState struct {
	TargetX, TargetY   float64
	CurrentX, CurrentY float64
}

// Step moves the current position a fraction of the way to the target.
func (p *PointerState) Step(factor float64) {
	p.CurrentX += (p.TargetX - p.CurrentX) * factor
	p.CurrentY += (p.TargetY - p.CurrentY) * factor
}

// Gap returns the distance between the current position and the target.
func (p PointerState) Gap() float64 {
	return math.Hypot(p.TargetX-p.CurrentX, p.TargetY-p.CurrentY)
}
