// Package filter evaluates SVG filter primitives on float surfaces.
//
// It covers the primitives the lensing graph uses:
//   - feFlood and feComposite "over" ([Flood], [Over], [Merge])
//   - feGaussianBlur (separable, 3-sigma kernel, edge extension)
//   - feComponentTransfer with linear functions
//   - feColorMatrix type="matrix"
//   - feDisplacementMap
//
// Surfaces hold premultiplied RGBA in [0, 1] as float64, so values are not
// quantized between primitives. Color operations unpremultiply, transform,
// clamp and premultiply again, as the SVG filter model requires. Per-pixel
// stages run in row bands on the shared pool of package parallel.
package filter
