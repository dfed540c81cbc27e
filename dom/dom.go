// Package dom is the narrow slice of the browser document model that the
// event-horizon effect talks to.
//
// Two implementations exist: the in-memory tree in this package ([MemDocument],
// [Node], [ManualWindow]), used by tests, the CLI and the software preview, and
// the syscall/js binding in dom/jsdom, used when compiled to WebAssembly.
//
// Lookup methods return a nil [Element] interface, never a typed nil, when
// nothing matches.
package dom

// SVGNamespace is the XML namespace for elements created with CreateElementNS.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Rect is an element's bounding box in viewport (client) coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Element is a document node that attributes and styles can be written to.
type Element interface {
	// TagName returns the local tag name, e.g. "feImage".
	TagName() string

	// ID returns the value of the id attribute, or "".
	ID() string

	// GetAttribute returns the attribute value and whether it is present.
	GetAttribute(name string) (string, bool)

	// SetAttribute sets an attribute, replacing any existing value.
	SetAttribute(name, value string)

	// SetStyle sets an inline style property (CSS property name, e.g. "will-change").
	SetStyle(property, value string)

	// Style returns an inline style property, or "".
	Style(property string) string

	// SetInnerMarkup replaces the element's children with parsed markup.
	SetInnerMarkup(markup string) error

	// AppendChild appends child as the last child of the element.
	AppendChild(child Element)

	// QuerySelector returns the first descendant matching selector, or nil.
	QuerySelector(selector string) Element

	// BoundingClientRect returns the element's box in client coordinates.
	BoundingClientRect() Rect
}

// Document is the root of an element tree.
type Document interface {
	// QuerySelector returns the first element matching selector, or nil.
	QuerySelector(selector string) Element

	// QuerySelectorAll returns every element matching selector in document order.
	QuerySelectorAll(selector string) []Element

	// GetElementByID returns the element with the given id, or nil.
	GetElementByID(id string) Element

	// CreateElementNS creates a detached element in the given namespace.
	CreateElementNS(namespace, tag string) Element

	// Body returns the document body, or nil.
	Body() Element
}

// Event is a window event delivered to listeners.
// ClientX and ClientY are set for pointer events.
type Event struct {
	Type    string
	ClientX float64
	ClientY float64
}

// Event types the effect listens for.
const (
	EventMouseMove = "mousemove"
	EventResize    = "resize"
)

// Window schedules frames and delivers global events.
type Window interface {
	// InnerSize returns the viewport width and height in CSS pixels.
	InnerSize() (width, height float64)

	// RequestAnimationFrame schedules fn for the next display refresh and
	// returns a non-zero request id.
	RequestAnimationFrame(fn func(timestamp float64)) int

	// CancelAnimationFrame cancels a pending request. Unknown ids are ignored.
	CancelAnimationFrame(id int)

	// AddEventListener registers fn for events of the given type and returns
	// a function that removes it. Calling the remover twice is a no-op.
	AddEventListener(event string, fn func(Event)) (remove func())
}
