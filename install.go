package horizon

import (
	"errors"
	"fmt"

	"github.com/gogpu/horizon/dom"
)

// Refs caches the live nodes the controller writes to each frame.
type Refs struct {
	Target       dom.Element // container the filter is applied to
	Container    dom.Element // zero-size svg holding the filter graph
	Lens         dom.Element // feImage
	Displacement dom.Element // feDisplacementMap
	BlackHole    dom.Element // black-hole feColorMatrix
}

// EffectState is everything the controller owns: sizing, the enabled flag,
// cached node references, pointer smoothing state and the handles needed
// to unbind the loop and listeners.
type EffectState struct {
	Config  EffectConfig
	Enabled bool
	Refs    Refs
	Pointer PointerState

	// TargetSelector locates the container; DefaultTargetClass when empty.
	TargetSelector string

	frameID      int
	removeMove   func()
	removeResize func()
}

// ErrNoBody is returned when the document has no body to attach the
// filter graph to.
var ErrNoBody = errors.New("horizon: document has no body")

// InstallOptions controls how EnsureInstalled builds the graph.
type InstallOptions struct {
	TextureSize int
	Debug       bool
}

func (st *EffectState) targetSelector() string {
	if st.TargetSelector == "" {
		return DefaultTargetClass
	}
	return st.TargetSelector
}

// CacheRefs resolves the target and filter container once, and re-reads the
// graph nodes from the container on every call.
func CacheRefs(doc dom.Document, st *EffectState) {
	if st.Refs.Target == nil {
		st.Refs.Target = doc.QuerySelector(st.targetSelector())
	}
	if st.Refs.Container == nil {
		st.Refs.Container = doc.GetElementByID(FilterContainerID)
	}
	if c := st.Refs.Container; c != nil {
		st.Refs.Lens = c.QuerySelector("feImage")
		st.Refs.Displacement = c.QuerySelector("#" + DisplacementID)
		st.Refs.BlackHole = c.QuerySelector("#" + BlackHoleID)
	}
}

// EnsureInstalled attaches the filter graph to the document body unless it
// is already present, then refreshes the cached references. Texture
// generation errors and ErrNoBody are returned and leave the document
// untouched.
func EnsureInstalled(doc dom.Document, st *EffectState, opts InstallOptions) error {
	CacheRefs(doc, st)
	if st.Refs.Container != nil {
		return nil
	}

	size := opts.TextureSize
	if size == 0 {
		size = DefaultTextureSize
	}
	lensURL, err := LensDataURI(size)
	if err != nil {
		return err
	}
	markup := BuildFilterMarkup(FilterParams{
		LensURL:          lensURL,
		NeutralIntercept: NeutralIntercept(),
		Diameter:         st.Config.Diameter,
		Strength:         st.Config.Strength,
		Debug:            opts.Debug,
	})

	body := doc.Body()
	if body == nil {
		return ErrNoBody
	}

	svg := doc.CreateElementNS(dom.SVGNamespace, "svg")
	svg.SetAttribute("id", FilterContainerID)
	svg.SetStyle("position", "absolute")
	svg.SetStyle("width", "0")
	svg.SetStyle("height", "0")
	svg.SetStyle("z-index", "-1")
	if err := svg.SetInnerMarkup(markup); err != nil {
		return fmt.Errorf("horizon: install filter: %w", err)
	}
	body.AppendChild(svg)
	st.Refs.Container = svg

	Logger().Debug("horizon: filter installed",
		"textureSize", size, "diameter", st.Config.Diameter, "strength", st.Config.Strength, "debug", opts.Debug)

	CacheRefs(doc, st)
	return nil
}

// ApplyToTarget points the target container at the filter. It reports
// whether a target was found; a missing target is not an error.
func ApplyToTarget(doc dom.Document, st *EffectState) bool {
	CacheRefs(doc, st)
	t := st.Refs.Target
	if t == nil {
		Logger().Warn("horizon: target container not found", "selector", st.targetSelector())
		return false
	}
	t.SetStyle("filter", "url(#"+FilterID+")")
	t.SetStyle("will-change", "filter")
	return true
}

// wireInputs points the displacement and black-hole nodes at the active or
// neutral map.
func wireInputs(st *EffectState, active bool) {
	in2, values := NeutralMap, BlackHoleMatrixDisabled
	if active {
		in2, values = CalibratedMap, BlackHoleMatrixEnabled
	}
	if d := st.Refs.Displacement; d != nil {
		d.SetAttribute("in2", in2)
	}
	if h := st.Refs.BlackHole; h != nil {
		h.SetAttribute("values", values)
	}
}
