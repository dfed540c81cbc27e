// Package horizon renders an interactive gravitational-lensing effect over a
// page container using an SVG filter graph and a pointer-driven lens.
//
// # Overview
//
// A lens texture is generated once per size: its red and green channels
// encode a radial displacement field (128 is neutral), its blue channel marks
// the event horizon and its alpha fades the square to a circle. The texture
// is embedded as a PNG data URI in a hidden, zero-size SVG filter that
// displaces the content of the target container and paints an opaque black
// disc over the horizon. An animation loop eases the lens toward the pointer
// every frame.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/horizon"
//		"github.com/gogpu/horizon/dom/jsdom"
//	)
//
//	c, err := horizon.Init(jsdom.NewDocument(), jsdom.NewWindow())
//	if err != nil {
//		return err
//	}
//	c.SetEnabled(false) // effect off, graph untouched
//	c.SetEnabled(true)
//	c.Stop()
//
// # Filter Graph
//
// The graph floods a neutral gray backdrop, composites the positioned lens
// image over it, blurs the result and calibrates it so that the neutral value
// maps to exactly 0.5. The displacement and black-hole stages read either the
// calibrated map or a neutral one; toggling the effect only rewires those two
// attributes. See BuildFilterMarkup.
//
// # DOM
//
// The controller talks to the page through the interfaces in package dom.
// Package dom/jsdom binds them to the browser via syscall/js; package dom
// itself provides an in-memory document and a manually stepped window for
// tests and offline rendering.
//
// # Preview
//
// Package preview evaluates the filter graph in software so the effect can be
// rendered to PNG without a browser, as the horizon command does:
//
//	horizon preview -o preview.png --lens-x 400 --lens-y 300
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger to see
// installation details and warnings about missing targets or blocked URLs.
package horizon
