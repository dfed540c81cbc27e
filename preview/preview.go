// Package preview renders an image through the lensing filter graph in
// software, so the effect can be inspected and its numeric invariants
// tested without a browser.
package preview

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/png" // data URI decoding
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/horizon"
	"github.com/gogpu/horizon/dom"
	"github.com/gogpu/horizon/internal/filter"
)

// Errors returned by Render and RenderFilter.
var (
	ErrNoFilter             = errors.New("preview: markup contains no filter element")
	ErrUnsupportedPrimitive = errors.New("preview: unsupported filter primitive")
	ErrUnknownInput         = errors.New("preview: unknown filter input")
	ErrUnsupportedImage     = errors.New("preview: unsupported image reference")
)

const sourceGraphic = "SourceGraphic"

// Render parses filter markup and renders src through its first filter.
func Render(src image.Image, markup string) (*image.NRGBA, error) {
	nodes, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.TagName() == "filter" {
			return RenderFilter(src, n)
		}
		if f, ok := n.QuerySelector("filter").(*dom.Node); ok {
			return RenderFilter(src, f)
		}
	}
	return nil, ErrNoFilter
}

// RenderFilter renders src through the primitives of a filter element, in
// document order. The source image origin is the user-space origin.
func RenderFilter(src image.Image, f *dom.Node) (*image.NRGBA, error) {
	r := renderer{
		source:  filter.FromImage(src),
		results: make(map[string]*filter.Surface),
	}
	r.last = r.source

	for _, p := range f.Children() {
		out, err := r.eval(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.TagName(), err)
		}
		if name := p.Attr("result"); name != "" {
			r.results[name] = out
		}
		r.last = out
	}
	horizon.Logger().Debug("preview: rendered", "width", r.source.Width, "height", r.source.Height,
		"primitives", len(f.Children()))
	return r.last.ToNRGBA(), nil
}

type renderer struct {
	source  *filter.Surface
	last    *filter.Surface
	results map[string]*filter.Surface
}

func (r *renderer) input(name string) (*filter.Surface, error) {
	switch name {
	case "":
		return r.last, nil
	case sourceGraphic:
		return r.source, nil
	}
	if s, ok := r.results[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownInput, name)
}

func (r *renderer) eval(p *dom.Node) (*filter.Surface, error) {
	w, h := r.source.Width, r.source.Height

	switch p.TagName() {
	case "feFlood":
		c, err := colorful.Hex(p.Attr("flood-color"))
		if err != nil {
			return nil, fmt.Errorf("flood-color: %w", err)
		}
		return filter.Flood(w, h, c.R, c.G, c.B, number(p, "flood-opacity", 1)), nil

	case "feImage":
		return r.image(p)

	case "feComposite":
		if op := p.Attr("operator"); op != "" && op != "over" {
			return nil, fmt.Errorf("%w: operator %q", ErrUnsupportedPrimitive, op)
		}
		top, err := r.input(p.Attr("in"))
		if err != nil {
			return nil, err
		}
		bottom, err := r.input(p.Attr("in2"))
		if err != nil {
			return nil, err
		}
		return filter.Over(top, bottom), nil

	case "feGaussianBlur":
		in, err := r.input(p.Attr("in"))
		if err != nil {
			return nil, err
		}
		v := numbers(p.Attr("stdDeviation"))
		switch len(v) {
		case 0:
			return in.Clone(), nil
		case 1:
			return filter.GaussianBlur(in, v[0], v[0]), nil
		}
		return filter.GaussianBlur(in, v[0], v[1]), nil

	case "feComponentTransfer":
		in, err := r.input(p.Attr("in"))
		if err != nil {
			return nil, err
		}
		fn, err := transfers(p)
		if err != nil {
			return nil, err
		}
		return filter.ComponentTransfer(in, fn), nil

	case "feColorMatrix":
		in, err := r.input(p.Attr("in"))
		if err != nil {
			return nil, err
		}
		m, err := matrix(p)
		if err != nil {
			return nil, err
		}
		return filter.ColorMatrix(in, m), nil

	case "feDisplacementMap":
		in, err := r.input(p.Attr("in"))
		if err != nil {
			return nil, err
		}
		dmap, err := r.input(p.Attr("in2"))
		if err != nil {
			return nil, err
		}
		xc, err := filter.ParseChannel(p.Attr("xChannelSelector"))
		if err != nil {
			return nil, err
		}
		yc, err := filter.ParseChannel(p.Attr("yChannelSelector"))
		if err != nil {
			return nil, err
		}
		return filter.Displace(in, dmap, number(p, "scale", 0), xc, yc), nil

	case "feMerge":
		var layers []*filter.Surface
		for _, n := range p.Children() {
			if n.TagName() != "feMergeNode" {
				continue
			}
			l, err := r.input(n.Attr("in"))
			if err != nil {
				return nil, err
			}
			layers = append(layers, l)
		}
		return filter.Merge(w, h, layers...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, p.TagName())
}

// image evaluates feImage: a data URI scaled into its subregion, with
// preserveAspectRatio="none". A blank reference renders nothing.
func (r *renderer) image(p *dom.Node) (*filter.Surface, error) {
	out := filter.NewSurface(r.source.Width, r.source.Height)
	href := p.Attr("href")
	if href == "" {
		href = p.Attr("xlink:href")
	}
	if href == horizon.BlankURL || href == "" {
		return out, nil
	}
	img, err := decodeDataURI(href)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	width := int(math.Round(number(p, "width", float64(b.Dx()))))
	height := int(math.Round(number(p, "height", float64(b.Dy()))))
	if width <= 0 || height <= 0 {
		return out, nil
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)

	ox := int(math.Round(number(p, "x", 0)))
	oy := int(math.Round(number(p, "y", 0)))
	tile := filter.FromImage(scaled)
	for y := range height {
		for x := range width {
			cr, cg, cb, ca := tile.At(x, y)
			out.Set(ox+x, oy+y, cr, cg, cb, ca)
		}
	}
	return out, nil
}

func decodeDataURI(uri string) (image.Image, error) {
	head, data, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(strings.ToLower(head), "data:image/") || !strings.HasSuffix(strings.ToLower(head), ";base64") {
		return nil, fmt.Errorf("%w: %.32q", ErrUnsupportedImage, uri)
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return img, nil
}

func transfers(p *dom.Node) ([4]filter.Transfer, error) {
	fn := [4]filter.Transfer{filter.IdentityTransfer, filter.IdentityTransfer, filter.IdentityTransfer, filter.IdentityTransfer}
	for _, c := range p.Children() {
		var idx int
		switch c.TagName() {
		case "feFuncR":
			idx = 0
		case "feFuncG":
			idx = 1
		case "feFuncB":
			idx = 2
		case "feFuncA":
			idx = 3
		default:
			continue
		}
		switch c.Attr("type") {
		case "linear":
			fn[idx] = filter.Transfer{Slope: number(c, "slope", 1), Intercept: number(c, "intercept", 0)}
		case "identity", "":
		default:
			return fn, fmt.Errorf("%w: transfer type %q", ErrUnsupportedPrimitive, c.Attr("type"))
		}
	}
	return fn, nil
}

func matrix(p *dom.Node) (filter.Matrix, error) {
	if t := p.Attr("type"); t != "" && t != "matrix" {
		return filter.Matrix{}, fmt.Errorf("%w: color matrix type %q", ErrUnsupportedPrimitive, t)
	}
	v := numbers(p.Attr("values"))
	if len(v) == 0 {
		return filter.IdentityMatrix, nil
	}
	if len(v) != 20 {
		return filter.Matrix{}, fmt.Errorf("%w: color matrix with %d values", ErrUnsupportedPrimitive, len(v))
	}
	var m filter.Matrix
	copy(m[:], v)
	return m, nil
}

// number parses a numeric attribute, falling back to def when absent or invalid.
func number(n *dom.Node, name string, def float64) float64 {
	s, ok := n.GetAttribute(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// numbers parses a whitespace or comma separated list, skipping invalid entries.
func numbers(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
