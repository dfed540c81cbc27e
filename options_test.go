package horizon

import "testing"

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want options
	}{
		{"defaults", nil, defaultOptions()},
		{"debug", []Option{WithDebug(true)}, options{debug: true, textureSize: DefaultTextureSize, targetSelector: DefaultTargetClass, smoothing: Smoothing}},
		{"texture size", []Option{WithTextureSize(64)}, options{textureSize: 64, targetSelector: DefaultTargetClass, smoothing: Smoothing}},
		{"ignored texture size", []Option{WithTextureSize(0), WithTextureSize(-3)}, defaultOptions()},
		{"selector", []Option{WithTargetSelector("#app")}, options{textureSize: DefaultTextureSize, targetSelector: "#app", smoothing: Smoothing}},
		{"ignored selector", []Option{WithTargetSelector("")}, defaultOptions()},
		{"smoothing", []Option{WithSmoothing(1)}, options{textureSize: DefaultTextureSize, targetSelector: DefaultTargetClass, smoothing: 1}},
		{"ignored smoothing", []Option{WithSmoothing(0), WithSmoothing(1.5)}, defaultOptions()},
		{"last wins", []Option{WithTextureSize(64), WithTextureSize(128)}, options{textureSize: 128, targetSelector: DefaultTargetClass, smoothing: Smoothing}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o != tt.want {
				t.Errorf("options = %+v, want %+v", o, tt.want)
			}
		})
	}
}

func TestWithSmoothingControlsConvergence(t *testing.T) {
	f := newFixture(t, true, WithSmoothing(1))
	if err := f.c.Start(); err != nil {
		t.Fatal(err)
	}
	f.win.MoveMouse(300, 200)
	f.win.Step()
	if g := f.c.Pointer().Gap(); g != 0 {
		t.Errorf("gap after one frame with smoothing 1 = %v, want 0", g)
	}
}
