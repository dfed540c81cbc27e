package horizon

// Option configures a Controller during creation.
//
// Example:
//
//	c := horizon.New(doc, win,
//	    horizon.WithDebug(true),
//	    horizon.WithTargetSelector(".app"),
//	)
type Option func(*options)

type options struct {
	debug          bool
	textureSize    int
	targetSelector string
	smoothing      float64
}

func defaultOptions() options {
	return options{
		textureSize:    DefaultTextureSize,
		targetSelector: DefaultTargetClass,
		smoothing:      Smoothing,
	}
}

// WithDebug overlays the calibrated displacement map on the page.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithTextureSize sets the side length of the generated lens texture.
// Non-positive sizes are ignored. The texture is generated once, at install.
func WithTextureSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.textureSize = size
		}
	}
}

// WithTargetSelector sets the selector of the container the filter is
// applied to. Empty selectors are ignored.
func WithTargetSelector(selector string) Option {
	return func(o *options) {
		if selector != "" {
			o.targetSelector = selector
		}
	}
}

// WithSmoothing sets the per-frame smoothing factor, in (0, 1].
// Out-of-range values are ignored.
func WithSmoothing(factor float64) Option {
	return func(o *options) {
		if factor > 0 && factor <= 1 {
			o.smoothing = factor
		}
	}
}
