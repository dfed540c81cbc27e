package dom

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFragment(t *testing.T) {
	nodes, err := ParseFragment(`
		<defs>
			<!-- comment -->
			<filter id="f">
				<feFlood result="bg"/>
				<feImage href="data:image/png;base64,AAAA" x="0"/>
			</filter>
		</defs>`)
	if err != nil {
		t.Fatalf("ParseFragment() error = %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("len(nodes) = %d, want 1", len(nodes))
	}
	defs := nodes[0]
	if defs.TagName() != "defs" {
		t.Errorf("TagName() = %q, want defs", defs.TagName())
	}
	if defs.Parent() != nil {
		t.Error("top-level node should be detached")
	}

	img, ok := defs.QuerySelector("feImage").(*Node)
	if !ok {
		t.Fatal("feImage not found")
	}
	if got := img.Attr("href"); got != "data:image/png;base64,AAAA" {
		t.Errorf("href = %q", got)
	}
	if defs.QuerySelector("#f") == nil {
		t.Error("#f not found")
	}
}

func TestParseFragmentTopLevel(t *testing.T) {
	nodes, err := ParseFragment(`<defs/><filter id="f"/>`)
	if err != nil {
		t.Fatal(err)
	}
	var tags []string
	for _, n := range nodes {
		tags = append(tags, n.TagName())
	}
	if got := strings.Join(tags, ","); got != "defs,filter" {
		t.Errorf("top-level tags = %q, want \"defs,filter\"", got)
	}

	if nodes, err := ParseFragment(""); err != nil || len(nodes) != 0 {
		t.Errorf("ParseFragment(\"\") = %v, %v; want no nodes", nodes, err)
	}
}

func TestParseFragmentMalformed(t *testing.T) {
	_, err := ParseFragment(`<filter><feFlood></filter>`)
	if !errors.Is(err, ErrMalformedMarkup) {
		t.Errorf("error = %v, want ErrMalformedMarkup", err)
	}
}

func TestQuerySelectorNilInterface(t *testing.T) {
	doc := NewDocument()
	if el := doc.QuerySelector(".missing"); el != nil {
		t.Errorf("QuerySelector(.missing) = %v, want nil interface", el)
	}
	if el := doc.GetElementByID("missing"); el != nil {
		t.Errorf("GetElementByID(missing) = %v, want nil interface", el)
	}
	if el := doc.GetElementByID(""); el != nil {
		t.Error("GetElementByID(\"\") should be nil")
	}
}

func TestSelectors(t *testing.T) {
	doc := NewDocument()
	div := NewNode("", "div")
	div.SetAttribute("class", "app container wide")
	div.SetAttribute("id", "main")
	doc.Body().AppendChild(div)

	tests := []struct {
		sel  string
		want bool
	}{
		{".container", true},
		{".wide", true},
		{".contain", false},
		{"#main", true},
		{"#other", false},
		{"div", true},
		{"span", false},
		{"", false},
	}
	for _, tt := range tests {
		got := doc.QuerySelector(tt.sel) != nil
		if got != tt.want {
			t.Errorf("QuerySelector(%q) found = %v, want %v", tt.sel, got, tt.want)
		}
	}
}

func TestSetInnerMarkupReplacesChildren(t *testing.T) {
	n := NewNode(SVGNamespace, "svg")
	if err := n.SetInnerMarkup(`<a/><b/>`); err != nil {
		t.Fatal(err)
	}
	if err := n.SetInnerMarkup(`<c/>`); err != nil {
		t.Fatal(err)
	}
	if len(n.Children()) != 1 || n.Children()[0].TagName() != "c" {
		t.Errorf("children = %v, want [c]", n.Children())
	}
	if err := n.SetInnerMarkup(`<broken>`); err == nil {
		t.Error("expected parse error")
	}
	if len(n.Children()) != 1 {
		t.Error("parse error should keep existing children")
	}
}

func TestAppendChildReparents(t *testing.T) {
	a := NewNode("", "a")
	b := NewNode("", "b")
	c := NewNode("", "c")
	a.AppendChild(c)
	b.AppendChild(c)
	if len(a.Children()) != 0 {
		t.Error("c should have been removed from a")
	}
	if c.Parent() != b {
		t.Error("c.Parent() should be b")
	}
}

func TestOuterMarkup(t *testing.T) {
	svg := NewNode(SVGNamespace, "svg")
	svg.SetAttribute("id", "x")
	svg.SetStyle("width", "0")
	svg.SetStyle("position", "absolute")
	if err := svg.SetInnerMarkup(`<feImage href="/a?b=1&amp;c=&quot;2&quot;"/>`); err != nil {
		t.Fatal(err)
	}
	got := svg.OuterMarkup()
	want := `<svg xmlns="http://www.w3.org/2000/svg" id="x" style="width: 0; position: absolute"><feImage href="/a?b=1&amp;c=&quot;2&quot;"/></svg>`
	if got != want {
		t.Errorf("OuterMarkup() =\n%s\nwant\n%s", got, want)
	}

	// Round trip.
	nodes, err := ParseFragment(got)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	img := nodes[0].QuerySelector("feImage").(*Node)
	if !strings.Contains(img.Attr("href"), `"2"`) {
		t.Errorf("href after round trip = %q", img.Attr("href"))
	}
}

func TestManualWindowFrames(t *testing.T) {
	w := NewManualWindow(800, 600)
	calls := 0
	var loop func(float64)
	loop = func(float64) {
		calls++
		w.RequestAnimationFrame(loop)
	}
	id := w.RequestAnimationFrame(loop)
	if id == 0 {
		t.Fatal("request id must be non-zero")
	}

	if ran := w.Steps(3); ran != 3 {
		t.Errorf("Steps(3) ran %d callbacks, want 3", ran)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if w.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, want 1", w.PendingFrames())
	}
}

func TestManualWindowCancel(t *testing.T) {
	w := NewManualWindow(800, 600)
	called := false
	id := w.RequestAnimationFrame(func(float64) { called = true })
	w.CancelAnimationFrame(id)
	w.CancelAnimationFrame(id)
	w.CancelAnimationFrame(12345)
	if ran := w.Step(); ran != 0 {
		t.Errorf("Step() ran %d, want 0", ran)
	}
	if called {
		t.Error("cancelled callback ran")
	}
}

func TestManualWindowListeners(t *testing.T) {
	w := NewManualWindow(800, 600)
	var got []Event
	remove := w.AddEventListener(EventMouseMove, func(e Event) { got = append(got, e) })
	w.AddEventListener(EventResize, func(Event) {})

	if n := w.ListenerCount(EventMouseMove); n != 1 {
		t.Errorf("ListenerCount(mousemove) = %d, want 1", n)
	}
	w.MoveMouse(10, 20)
	remove()
	remove()
	w.MoveMouse(30, 40)

	if len(got) != 1 || got[0].ClientX != 10 || got[0].ClientY != 20 {
		t.Errorf("events = %+v, want one at (10, 20)", got)
	}
	if n := w.ListenerCount(EventMouseMove); n != 0 {
		t.Errorf("ListenerCount(mousemove) after remove = %d, want 0", n)
	}

	w.Resize(1024, 768)
	if width, height := w.InnerSize(); width != 1024 || height != 768 {
		t.Errorf("InnerSize() = %v, %v", width, height)
	}
}
