package filter

import (
	"image"
	"image/color"
	"math"
	"testing"
)

const neutral = 128.0 / 255.0

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		sigma float64
		size  int
	}{
		{0, 1},
		{-1, 1},
		{1, 7},
		{3, 19},
		{0.4, 5},
	}
	for _, tt := range tests {
		k := GaussianKernel(tt.sigma)
		if len(k) != tt.size {
			t.Errorf("GaussianKernel(%v) size = %d, want %d", tt.sigma, len(k), tt.size)
		}
		sum := 0.0
		for i, v := range k {
			sum += v
			if !approx(v, k[len(k)-1-i], 1e-15) {
				t.Errorf("GaussianKernel(%v) not symmetric at %d", tt.sigma, i)
			}
		}
		if !approx(sum, 1, 1e-12) {
			t.Errorf("GaussianKernel(%v) sums to %v, want 1", tt.sigma, sum)
		}
	}
	if &CachedGaussianKernel(3)[0] != &CachedGaussianKernel(3)[0] {
		t.Error("CachedGaussianKernel should return the shared kernel")
	}
}

func TestGaussianBlurUniform(t *testing.T) {
	src := Flood(20, 20, neutral, neutral, neutral, 1)
	dst := GaussianBlur(src, 3, 3)
	for i, v := range dst.Pix {
		want := src.Pix[i]
		if !approx(v, want, 1e-12) {
			t.Fatalf("Pix[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestGaussianBlurSpreads(t *testing.T) {
	src := NewSurface(21, 21)
	src.Set(10, 10, 1, 1, 1, 1)
	dst := GaussianBlur(src, 2, 2)

	_, _, _, center := dst.At(10, 10)
	_, _, _, near := dst.At(11, 10)
	_, _, _, far := dst.At(16, 10)
	if !(center > near && near > far && far > 0) {
		t.Errorf("alpha falloff center=%v near=%v far=%v, want strictly decreasing and positive", center, near, far)
	}
	total := 0.0
	for i := 3; i < len(dst.Pix); i += 4 {
		total += dst.Pix[i]
	}
	if !approx(total, 1, 1e-9) {
		t.Errorf("blur total alpha = %v, want 1 (energy preserved)", total)
	}

	same := GaussianBlur(src, 0, 0)
	if _, _, _, a := same.At(10, 10); a != 1 {
		t.Error("zero blur should copy the surface")
	}
}

func TestComponentTransferNeutral(t *testing.T) {
	intercept := 0.5 - neutral
	fn := Transfer{Slope: 1, Intercept: intercept}
	src := Flood(4, 4, neutral, neutral, neutral, 1)
	dst := ComponentTransfer(src, [4]Transfer{fn, fn, fn, {Slope: 0, Intercept: 1}})

	r, g, b, a := dst.Straight(2, 2)
	for _, v := range []float64{r, g, b} {
		if !approx(v, 0.5, 1e-9) {
			t.Errorf("calibrated channel = %v, want 0.5", v)
		}
	}
	if a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}

	if got := (Transfer{Slope: 1, Intercept: 0.3}).Apply(0.9); got != 1 {
		t.Errorf("Apply clamps high: got %v", got)
	}
	if got := (Transfer{Slope: 1, Intercept: -0.3}).Apply(0.1); got != 0 {
		t.Errorf("Apply clamps low: got %v", got)
	}
	if got := IdentityTransfer.Apply(0.25); got != 0.25 {
		t.Errorf("IdentityTransfer.Apply(0.25) = %v", got)
	}
}

func TestColorMatrixBlackHoleThreshold(t *testing.T) {
	m := Matrix{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 20, -12, 0,
	}
	tests := []struct {
		name      string
		blue      float64
		wantAlpha float64
	}{
		{"background", 0.5, 0},
		{"lens", 0, 0},
		{"hole", 1, 1},
		{"threshold", 0.65, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Flood(1, 1, 0.5, 0.5, tt.blue, 1)
			r, g, b, a := ColorMatrix(src, m).At(0, 0)
			if a != tt.wantAlpha {
				t.Errorf("alpha = %v, want %v", a, tt.wantAlpha)
			}
			if r != 0 || g != 0 || b != 0 {
				t.Errorf("color = (%v, %v, %v), want black", r, g, b)
			}
		})
	}

	src := Flood(1, 1, 0.2, 0.4, 0.6, 1)
	r, g, b, a := ColorMatrix(src, IdentityMatrix).Straight(0, 0)
	if !approx(r, 0.2, 1e-12) || !approx(g, 0.4, 1e-12) || !approx(b, 0.6, 1e-12) || a != 1 {
		t.Errorf("identity matrix changed color: (%v, %v, %v, %v)", r, g, b, a)
	}
}

func TestDisplaceNeutralIsIdentity(t *testing.T) {
	src := NewSurface(8, 8)
	for y := range 8 {
		for x := range 8 {
			src.Set(x, y, float64(x)/8, float64(y)/8, 0, 1)
		}
	}
	dmap := Flood(8, 8, 0.5, 0.5, 0.5, 1)
	dst := Displace(src, dmap, 500, ChannelR, ChannelG)
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("Pix[%d] = %v, want %v", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestDisplaceShifts(t *testing.T) {
	src := NewSurface(8, 1)
	for x := range 8 {
		src.Set(x, 0, float64(x)/10, 0, 0, 1)
	}
	// XC = 0.75 with scale 8 samples 2 pixels to the right.
	dmap := Flood(8, 1, 0.75, 0.5, 0, 1)
	dst := Displace(src, dmap, 8, ChannelR, ChannelG)

	r, _, _, _ := dst.At(3, 0)
	if !approx(r, 0.5, 1e-12) {
		t.Errorf("pixel 3 = %v, want the value of pixel 5", r)
	}
	if _, _, _, a := dst.At(7, 0); a != 0 {
		t.Errorf("sample past the edge alpha = %v, want 0", a)
	}
}

func TestParseChannel(t *testing.T) {
	tests := map[string]Channel{"R": ChannelR, "G": ChannelG, "B": ChannelB, "A": ChannelA, "": ChannelA}
	for in, want := range tests {
		got, err := ParseChannel(in)
		if err != nil || got != want {
			t.Errorf("ParseChannel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseChannel("X"); err == nil {
		t.Error("ParseChannel(X) should fail")
	}
}

func TestOverAndMerge(t *testing.T) {
	bottom := Flood(1, 1, 0, 0, 1, 1)
	top := Flood(1, 1, 1, 0, 0, 0.5)
	r, g, b, a := Over(top, bottom).Straight(0, 0)
	if !approx(r, 0.5, 1e-12) || g != 0 || !approx(b, 0.5, 1e-12) || a != 1 {
		t.Errorf("Over = (%v, %v, %v, %v), want (0.5, 0, 0.5, 1)", r, g, b, a)
	}

	transparent := NewSurface(1, 1)
	m := Merge(1, 1, bottom, transparent)
	if r, g, b, a := m.At(0, 0); r != 0 || g != 0 || b != 1 || a != 1 {
		t.Errorf("Merge with transparent top = (%v, %v, %v, %v)", r, g, b, a)
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})

	out := FromImage(img).ToNRGBA()
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("opaque pixel = %v", got)
	}
	if got := out.NRGBAAt(1, 0); got.A != 0 {
		t.Errorf("transparent pixel alpha = %d, want 0", got.A)
	}
}
