package horizon

import (
	"github.com/gogpu/horizon/dom"
)

// Phase is the lifecycle state of a Controller.
type Phase int

// Controller phases.
const (
	PhaseStopped Phase = iota
	PhaseStarting
	PhaseRunning
	// PhaseDisabled is running with the effect toggled off.
	PhaseDisabled
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseStarting:
		return "starting"
	case PhaseRunning:
		return "running"
	case PhaseDisabled:
		return "disabled"
	}
	return "unknown"
}

// Controller drives the lensing filter from pointer input.
//
// A Controller is not safe for concurrent use; all methods and the frame and
// event callbacks it registers are expected to run on the browser's single
// event loop. Only one Controller should manage a document.
type Controller struct {
	doc  dom.Document
	win  dom.Window
	opts options

	st      EffectState
	phase   Phase
	frameFn func(float64)
}

// New creates a stopped controller.
func New(doc dom.Document, win dom.Window, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{
		doc:  doc,
		win:  win,
		opts: o,
		st: EffectState{
			Enabled:        true,
			TargetSelector: o.targetSelector,
		},
	}
	c.frameFn = c.frame
	return c
}

// Init creates a controller and starts it.
func Init(doc dom.Document, win dom.Window, opts ...Option) (*Controller, error) {
	c := New(doc, win, opts...)
	if err := c.Start(); err != nil {
		return c, err
	}
	return c, nil
}

// Start (re)starts the effect: it stops any previous loop, recomputes the
// sizing, installs the filter graph if needed, applies it to the target,
// enables the effect and binds pointer and resize input.
//
// If the target container is missing, the graph is installed but no input
// is bound. If texture generation fails the error is returned and the
// controller stays stopped.
func (c *Controller) Start() error {
	c.Stop()
	c.phase = PhaseStarting

	c.st.Config = ConfigFor(c.win.InnerSize())
	err := EnsureInstalled(c.doc, &c.st, InstallOptions{
		TextureSize: c.opts.textureSize,
		Debug:       c.opts.debug,
	})
	if err != nil {
		c.phase = PhaseStopped
		return err
	}
	ApplyToTarget(c.doc, &c.st)
	c.SetEnabled(true)
	c.bindInput()

	c.phase = PhaseRunning
	return nil
}

// Stop cancels the frame loop and removes listeners. The filter graph and
// the target's filter style stay in place; the graph is rewired to the
// neutral map so the effect disappears without a layout shift.
// The enabled flag is left unchanged.
func (c *Controller) Stop() {
	c.unbindInput()
	CacheRefs(c.doc, &c.st)
	if c.st.Refs.Container != nil {
		wireInputs(&c.st, false)
	}
	c.phase = PhaseStopped
}

// SetEnabled switches the graph between the calibrated and the neutral map
// without touching listeners or the frame loop.
func (c *Controller) SetEnabled(enabled bool) {
	c.st.Enabled = enabled
	CacheRefs(c.doc, &c.st)
	if c.st.Refs.Container == nil {
		return
	}
	wireInputs(&c.st, enabled)
}

// IsEnabled reports the enabled flag.
func (c *Controller) IsEnabled() bool {
	return c.st.Enabled
}

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase {
	if c.phase == PhaseRunning && !c.st.Enabled {
		return PhaseDisabled
	}
	return c.phase
}

// Config returns the current lens sizing.
func (c *Controller) Config() EffectConfig {
	return c.st.Config
}

// Pointer returns the current pointer smoothing state.
func (c *Controller) Pointer() PointerState {
	return c.st.Pointer
}

// State exposes the controller-owned state, including cached node references.
func (c *Controller) State() *EffectState {
	return &c.st
}

func (c *Controller) bindInput() {
	CacheRefs(c.doc, &c.st)
	if c.st.Refs.Target == nil {
		return
	}

	c.st.Pointer = PointerState{}
	c.st.removeResize = c.win.AddEventListener(dom.EventResize, c.onResize)
	c.st.removeMove = c.win.AddEventListener(dom.EventMouseMove, c.onMouseMove)
	c.st.frameID = c.win.RequestAnimationFrame(c.frameFn)
}

func (c *Controller) unbindInput() {
	if c.st.frameID != 0 {
		c.win.CancelAnimationFrame(c.st.frameID)
		c.st.frameID = 0
	}
	if c.st.removeResize != nil {
		c.st.removeResize()
		c.st.removeResize = nil
	}
	if c.st.removeMove != nil {
		c.st.removeMove()
		c.st.removeMove = nil
	}
}

func (c *Controller) onResize(dom.Event) {
	c.st.Config = ConfigFor(c.win.InnerSize())
	if d := c.st.Refs.Displacement; d != nil {
		d.SetAttribute("scale", formatNumber(c.st.Config.Strength))
	}
	if l := c.st.Refs.Lens; l != nil {
		d := formatNumber(c.st.Config.Diameter)
		l.SetAttribute("width", d)
		l.SetAttribute("height", d)
	}
	Logger().Debug("horizon: resized", "diameter", c.st.Config.Diameter, "strength", c.st.Config.Strength)
}

func (c *Controller) onMouseMove(e dom.Event) {
	x, y := e.ClientX, e.ClientY
	if t := c.st.Refs.Target; t != nil {
		r := t.BoundingClientRect()
		x -= r.Left
		y -= r.Top
	}
	half := c.st.Config.Diameter / 2
	c.st.Pointer.TargetX = x - half
	c.st.Pointer.TargetY = y - half
}

func (c *Controller) frame(float64) {
	c.st.Pointer.Step(c.opts.smoothing)
	if l := c.st.Refs.Lens; l != nil {
		l.SetAttribute("x", formatNumber(c.st.Pointer.CurrentX))
		l.SetAttribute("y", formatNumber(c.st.Pointer.CurrentY))
	}
	c.st.frameID = c.win.RequestAnimationFrame(c.frameFn)
}
