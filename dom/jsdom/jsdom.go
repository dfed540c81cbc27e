//go:build js && wasm

package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/horizon/dom"
)

var (
	_ dom.Element  = element{}
	_ dom.Document = (*Document)(nil)
	_ dom.Window   = (*Window)(nil)
)

type element struct {
	v js.Value
}

// wrap returns nil for null and undefined so callers can compare against nil.
func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return element{v: v}
}

// Value returns the underlying JS object of an element created by this
// package, or js.Null() for any other element.
func Value(e dom.Element) js.Value {
	if el, ok := e.(element); ok {
		return el.v
	}
	return js.Null()
}

func (e element) TagName() string { return e.v.Get("tagName").String() }

func (e element) ID() string { return e.v.Get("id").String() }

func (e element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

func (e element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e element) Style(property string) string {
	return e.v.Get("style").Call("getPropertyValue", property).String()
}

// SetInnerMarkup assigns innerHTML. A DOMException thrown by the browser is
// returned as dom.ErrMalformedMarkup.
func (e element) SetInnerMarkup(markup string) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		jsErr, ok := r.(js.Error)
		if !ok {
			panic(r)
		}
		err = fmt.Errorf("%w: %v", dom.ErrMalformedMarkup, jsErr)
	}()
	e.v.Set("innerHTML", markup)
	return nil
}

func (e element) AppendChild(child dom.Element) {
	if c, ok := child.(element); ok {
		e.v.Call("appendChild", c.v)
	}
}

func (e element) QuerySelector(selector string) dom.Element {
	return wrap(e.v.Call("querySelector", selector))
}

func (e element) BoundingClientRect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// Document wraps the browser document.
type Document struct {
	v js.Value
}

// NewDocument returns the global document.
func NewDocument() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) QuerySelector(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, element{v: list.Index(i)})
	}
	return out
}

func (d *Document) GetElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) CreateElementNS(namespace, tag string) dom.Element {
	return wrap(d.v.Call("createElementNS", namespace, tag))
}

func (d *Document) Body() dom.Element { return wrap(d.v.Get("body")) }

// Window wraps the browser window. Callbacks handed to the browser are
// released when they fire, are cancelled or are removed.
type Window struct {
	v      js.Value
	frames map[int]js.Func
}

// NewWindow returns the global window.
func NewWindow() *Window {
	return &Window{v: js.Global(), frames: make(map[int]js.Func)}
}

func (w *Window) InnerSize() (float64, float64) {
	return w.v.Get("innerWidth").Float(), w.v.Get("innerHeight").Float()
}

func (w *Window) RequestAnimationFrame(fn func(timestamp float64)) int {
	var (
		cb js.Func
		id int
	)
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		delete(w.frames, id)
		cb.Release()
		ts := 0.0
		if len(args) > 0 {
			ts = args[0].Float()
		}
		fn(ts)
		return nil
	})
	id = w.v.Call("requestAnimationFrame", cb).Int()
	w.frames[id] = cb
	return id
}

func (w *Window) CancelAnimationFrame(id int) {
	w.v.Call("cancelAnimationFrame", id)
	if cb, ok := w.frames[id]; ok {
		delete(w.frames, id)
		cb.Release()
	}
}

func (w *Window) AddEventListener(event string, fn func(dom.Event)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		e := dom.Event{Type: event}
		if len(args) > 0 {
			if x := args[0].Get("clientX"); x.Type() == js.TypeNumber {
				e.ClientX = x.Float()
				e.ClientY = args[0].Get("clientY").Float()
			}
		}
		fn(e)
		return nil
	})
	w.v.Call("addEventListener", event, cb)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		w.v.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

// UserAgent returns navigator.userAgent, or "" outside a browser.
func (w *Window) UserAgent() string {
	nav := w.v.Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return ""
	}
	return nav.Get("userAgent").String()
}
