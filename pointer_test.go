package horizon

import (
	"math"
	"testing"
)

func TestPointerStepGeometric(t *testing.T) {
	p := PointerState{TargetX: 300, TargetY: -120}
	initial := p.Gap()

	for n := 1; n <= 30; n++ {
		p.Step(Smoothing)
		want := initial * math.Pow(1-Smoothing, float64(n))
		if got := p.Gap(); math.Abs(got-want) > 1e-9*initial {
			t.Fatalf("after %d steps gap = %v, want %v", n, got, want)
		}
	}
	if p.Gap() >= 0.01*initial {
		t.Errorf("gap after 30 steps = %v, want below 1%% of %v", p.Gap(), initial)
	}
}

func TestPointerStepAtTarget(t *testing.T) {
	p := PointerState{TargetX: 5, TargetY: 7, CurrentX: 5, CurrentY: 7}
	p.Step(Smoothing)
	if p.CurrentX != 5 || p.CurrentY != 7 {
		t.Errorf("current moved away from target: (%v, %v)", p.CurrentX, p.CurrentY)
	}
	if p.Gap() != 0 {
		t.Errorf("Gap() = %v, want 0", p.Gap())
	}
}
