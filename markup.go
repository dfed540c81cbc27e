package horizon

import (
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/gogpu/horizon/dom"
)

// BlankURL replaces image references that fail validation.
const BlankURL = "about:blank"

// FilterParams configures BuildFilterMarkup.
type FilterParams struct {
	// LensURL is the lens texture reference, normally from LensDataURI.
	LensURL string
	// NeutralIntercept calibrates the map; use NeutralIntercept().
	NeutralIntercept float64
	// Diameter is the rendered lens size.
	Diameter float64
	// Strength is the displacement scale.
	Strength float64
	// Debug adds a translucent overlay of the calibrated map.
	Debug bool
}

var safeURL = regexp.MustCompile(`(?i)^(data:image/[^;]+;base64,|data:image/svg\+xml;|/|https?://)`)

// ValidateURL returns the trimmed reference if it is a data image, a
// same-origin path or an http(s) URL, and BlankURL otherwise.
func ValidateURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if safeURL.MatchString(trimmed) {
		return trimmed
	}
	Logger().Warn("horizon: blocked potentially unsafe URL", "url", trimmed)
	return BlankURL
}

// formatNumber renders v for an attribute without exponent notation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var filterTemplate = template.Must(template.New("filter").Funcs(template.FuncMap{
	"attr": dom.EscapeAttr,
	"num":  formatNumber,
}).Parse(`<defs>
<filter id="{{.IDs.Filter}}" x="-50%" y="-50%" width="200%" height="200%" primitiveUnits="userSpaceOnUse" color-interpolation-filters="sRGB">
<feFlood id="{{.IDs.Backdrop}}" flood-color="#808080" flood-opacity="1" result="neutralBackground"/>
<feImage href="{{attr .LensURL}}" result="lensImage" x="0" y="0" width="{{num .Diameter}}" height="{{num .Diameter}}" preserveAspectRatio="none"/>
<feComposite in="lensImage" in2="neutralBackground" operator="over" result="mergedMap"/>
<feGaussianBlur in="mergedMap" stdDeviation="{{num .Blur}}" result="smoothMap"/>
<feComponentTransfer in="smoothMap" result="{{.Calibrated}}">
<feFuncR type="linear" slope="1" intercept="{{num .Intercept}}"/>
<feFuncG type="linear" slope="1" intercept="{{num .Intercept}}"/>
<feFuncB type="linear" slope="1" intercept="{{num .Intercept}}"/>
<feFuncA type="linear" slope="0" intercept="1"/>
</feComponentTransfer>
<feComponentTransfer in="neutralBackground" result="{{.Neutral}}">
<feFuncR type="linear" slope="1" intercept="{{num .Intercept}}"/>
<feFuncG type="linear" slope="1" intercept="{{num .Intercept}}"/>
<feFuncB type="linear" slope="1" intercept="{{num .Intercept}}"/>
<feFuncA type="linear" slope="0" intercept="1"/>
</feComponentTransfer>
<feDisplacementMap id="{{.IDs.Displacement}}" in="SourceGraphic" in2="{{.Calibrated}}" scale="{{num .Strength}}" xChannelSelector="R" yChannelSelector="G" result="distortedContent"/>
<feColorMatrix id="{{.IDs.BlackHole}}" in="{{.Calibrated}}" type="matrix" values="{{.HoleMatrix}}" result="blackHoleLayer"/>
{{- if .Debug}}
<feColorMatrix in="{{.Calibrated}}" type="matrix" values="1 0 0 0 0 0 1 0 0 0 0 0 1 0 0 0 0 0 0.8 0" result="debugLayer"/>
{{- end}}
<feMerge>
<feMergeNode in="distortedContent"/>
<feMergeNode in="blackHoleLayer"/>
{{- if .Debug}}
<feMergeNode in="debugLayer"/>
{{- end}}
</feMerge>
</filter>
</defs>`))

type filterIDs struct {
	Filter, Backdrop, Displacement, BlackHole string
}

type filterView struct {
	IDs        filterIDs
	LensURL    string
	Diameter   float64
	Strength   float64
	Blur       float64
	Intercept  float64
	Calibrated string
	Neutral    string
	HoleMatrix string
	Debug      bool
}

// BuildFilterMarkup returns the inner markup of the filter SVG: the flood,
// lens image, blur, calibration, displacement, black-hole and merge stages.
// The lens reference is validated and escaped.
func BuildFilterMarkup(p FilterParams) string {
	view := filterView{
		IDs: filterIDs{
			Filter:       FilterID,
			Backdrop:     NeutralBackdropID,
			Displacement: DisplacementID,
			BlackHole:    BlackHoleID,
		},
		LensURL:    ValidateURL(p.LensURL),
		Diameter:   p.Diameter,
		Strength:   p.Strength,
		Blur:       BlurStdDeviation,
		Intercept:  p.NeutralIntercept,
		Calibrated: CalibratedMap,
		Neutral:    NeutralMap,
		HoleMatrix: BlackHoleMatrixEnabled,
		Debug:      p.Debug,
	}

	var sb strings.Builder
	// filterView only holds strings and numbers, so Execute cannot fail.
	_ = filterTemplate.Execute(&sb, view)
	return sb.String()
}
