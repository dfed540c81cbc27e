package preview

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/horizon"
	"github.com/gogpu/horizon/dom"
)

const (
	sceneSize   = 300
	previewSize = 128
)

// installed sets up the effect on a sceneSize viewport, parks the lens at
// the viewport center and returns the document for rendering.
func installed(t *testing.T) (*dom.MemDocument, *horizon.Controller) {
	t.Helper()
	doc := dom.NewDocument()
	target := dom.NewNode("", "div")
	target.SetAttribute("class", "container")
	target.SetBoundingClientRect(dom.Rect{Width: sceneSize, Height: sceneSize})
	doc.Body().AppendChild(target)

	win := dom.NewManualWindow(sceneSize, sceneSize)
	c, err := horizon.Init(doc, win, horizon.WithTextureSize(previewSize))
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	win.MoveMouse(sceneSize/2, sceneSize/2)
	win.Steps(240)
	return doc, c
}

func countDiffs(a, b *image.NRGBA, keep func(x, y int) bool) int {
	n := 0
	for y := range a.Bounds().Dy() {
		for x := range a.Bounds().Dx() {
			if keep(x, y) && a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				n++
			}
		}
	}
	return n
}

func TestRenderLens(t *testing.T) {
	doc, c := installed(t)
	src := Checkerboard(sceneSize, sceneSize)
	out, err := RenderDocument(src, doc)
	if err != nil {
		t.Fatalf("RenderDocument() = %v", err)
	}

	d := c.Config().Diameter
	lo, hi := sceneSize/2-d/2-10, sceneSize/2+d/2+10
	outside := func(x, y int) bool {
		fx, fy := float64(x), float64(y)
		return fx < lo || fx > hi || fy < lo || fy > hi
	}
	if n := countDiffs(out, src, outside); n != 0 {
		t.Errorf("%d pixels changed away from the lens, want 0", n)
	}

	if got := out.NRGBAAt(sceneSize/2, sceneSize/2); got != (color.NRGBA{A: 255}) {
		t.Errorf("lens center = %v, want opaque black", got)
	}

	ring := func(x, y int) bool {
		r := math.Hypot(float64(x-sceneSize/2), float64(y-sceneSize/2))
		return r > 20 && r < 60
	}
	if n := countDiffs(out, src, ring); n < 100 {
		t.Errorf("only %d pixels displaced inside the lens", n)
	}
}

func TestRenderDisabled(t *testing.T) {
	doc, c := installed(t)
	c.SetEnabled(false)

	src := Checkerboard(sceneSize, sceneSize)
	out, err := RenderDocument(src, doc)
	if err != nil {
		t.Fatalf("RenderDocument() = %v", err)
	}
	all := func(int, int) bool { return true }
	if n := countDiffs(out, src, all); n != 0 {
		t.Errorf("disabled effect changed %d pixels, want 0", n)
	}

	c.SetEnabled(true)
	out, err = RenderDocument(src, doc)
	if err != nil {
		t.Fatalf("RenderDocument() = %v", err)
	}
	if n := countDiffs(out, src, all); n == 0 {
		t.Error("re-enabled effect changed nothing")
	}
}

func TestRenderBlockedLensURL(t *testing.T) {
	markup := horizon.BuildFilterMarkup(horizon.FilterParams{
		LensURL:          "javascript:alert(1)",
		NeutralIntercept: horizon.NeutralIntercept(),
		Diameter:         150,
		Strength:         15,
	})
	src := Checkerboard(64, 64)
	out, err := Render(src, markup)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if n := countDiffs(out, src, func(int, int) bool { return true }); n != 0 {
		t.Errorf("blank lens changed %d pixels, want 0", n)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   error
	}{
		{"no filter", `<g/>`, ErrNoFilter},
		{"primitive", `<filter><feTurbulence/></filter>`, ErrUnsupportedPrimitive},
		{"operator", `<filter><feComposite operator="xor"/></filter>`, ErrUnsupportedPrimitive},
		{"input", `<filter><feGaussianBlur in="missing" stdDeviation="1"/></filter>`, ErrUnknownInput},
		{"image", `<filter><feImage href="/lens.png"/></filter>`, ErrUnsupportedImage},
		{"matrix", `<filter><feColorMatrix type="matrix" values="1 0 0"/></filter>`, ErrUnsupportedPrimitive},
	}
	src := Checkerboard(8, 8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(src, tt.markup); !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Render(src, `<filter>`); !errors.Is(err, dom.ErrMalformedMarkup) {
		t.Errorf("malformed markup error = %v", err)
	}
}

func TestRenderDefaultInputs(t *testing.T) {
	// An unnamed input chains from the previous primitive.
	markup := `<filter>
<feFlood flood-color="#ff0000" flood-opacity="1"/>
<feColorMatrix type="matrix" values="0 0 0 0 0  0 0 0 0 0  1 0 0 0 0  0 0 0 1 0"/>
</filter>`
	out, err := Render(Checkerboard(4, 4), markup)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if got := out.NRGBAAt(1, 1); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel = %v, want opaque blue", got)
	}
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(64, 32)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("bounds = %v", b)
	}
	for y := range 32 {
		for x := range 64 {
			if a := img.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d, %d) alpha = %d, want 255", x, y, a)
			}
		}
	}
	if img.NRGBAAt(CellSize-1, 0) == img.NRGBAAt(CellSize, 0) {
		t.Error("adjacent cells should differ")
	}
}
