package dom

import (
	"strings"
)

type attr struct {
	name  string
	value string
}

// Node is an element of the in-memory tree.
type Node struct {
	tag        string
	namespace  string
	attrs      []attr
	styleOrder []string
	style      map[string]string
	parent     *Node
	children   []*Node
	rect       Rect
}

// NewNode creates a detached element.
func NewNode(namespace, tag string) *Node {
	return &Node{tag: tag, namespace: namespace}
}

// element converts n to an Element without producing a typed nil.
func element(n *Node) Element {
	if n == nil {
		return nil
	}
	return n
}

// TagName returns the local tag name.
func (n *Node) TagName() string { return n.tag }

// Namespace returns the element namespace, or "" for plain elements.
func (n *Node) Namespace() string { return n.namespace }

// ID returns the id attribute.
func (n *Node) ID() string {
	v, _ := n.GetAttribute("id")
	return v
}

// GetAttribute returns the attribute value and whether it is set.
func (n *Node) GetAttribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(name string) string {
	v, _ := n.GetAttribute(name)
	return v
}

// SetAttribute sets an attribute; new attributes keep insertion order.
func (n *Node) SetAttribute(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attr{name: name, value: value})
}

// SetStyle sets an inline style property.
func (n *Node) SetStyle(property, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	if _, ok := n.style[property]; !ok {
		n.styleOrder = append(n.styleOrder, property)
	}
	n.style[property] = value
}

// Style returns an inline style property.
func (n *Node) Style(property string) string {
	return n.style[property]
}

// SetInnerMarkup parses markup and replaces the children of n with it.
// On a parse error the existing children are kept.
func (n *Node) SetInnerMarkup(markup string) error {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return err
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
	for _, c := range nodes {
		n.appendNode(c)
	}
	return nil
}

// AppendChild appends child, detaching it from any previous parent.
// Elements from other implementations are ignored.
func (n *Node) AppendChild(child Element) {
	c, ok := child.(*Node)
	if !ok || c == nil {
		return
	}
	n.appendNode(c)
}

func (n *Node) appendNode(c *Node) {
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) removeChild(c *Node) {
	for i, x := range n.children {
		if x == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// Children returns the direct children of n.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// QuerySelector returns the first matching descendant of n.
func (n *Node) QuerySelector(selector string) Element {
	return element(n.find(parseSelector(selector)))
}

// QuerySelectorAll returns every matching descendant in document order.
func (n *Node) QuerySelectorAll(selector string) []*Node {
	var out []*Node
	s := parseSelector(selector)
	n.walk(func(c *Node) bool {
		if s.matches(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

func (n *Node) find(s selector) *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if s.matches(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits descendants in pre-order until fn returns false.
func (n *Node) walk(fn func(*Node) bool) bool {
	for _, c := range n.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

// SetBoundingClientRect sets the box reported by BoundingClientRect.
func (n *Node) SetBoundingClientRect(r Rect) { n.rect = r }

// BoundingClientRect returns the box set with SetBoundingClientRect.
func (n *Node) BoundingClientRect() Rect { return n.rect }

// OuterMarkup serializes n and its subtree as XML.
func (n *Node) OuterMarkup() string {
	var sb strings.Builder
	n.writeMarkup(&sb)
	return sb.String()
}

func (n *Node) writeMarkup(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	if n.namespace != "" {
		if _, ok := n.GetAttribute("xmlns"); !ok && (n.parent == nil || n.parent.namespace != n.namespace) {
			writeAttr(sb, "xmlns", n.namespace)
		}
	}
	for _, a := range n.attrs {
		writeAttr(sb, a.name, a.value)
	}
	if len(n.styleOrder) > 0 {
		parts := make([]string, 0, len(n.styleOrder))
		for _, p := range n.styleOrder {
			parts = append(parts, p+": "+n.style[p])
		}
		writeAttr(sb, "style", strings.Join(parts, "; "))
	}
	if len(n.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.children {
		c.writeMarkup(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(EscapeAttr(value))
	sb.WriteByte('"')
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeAttr escapes s for use inside a double-quoted XML attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// selector is the supported subset of CSS selectors: "#id", ".class" or "tag".
type selector struct {
	kind  byte
	value string
}

func parseSelector(s string) selector {
	s = strings.TrimSpace(s)
	if s == "" {
		return selector{}
	}
	switch s[0] {
	case '#', '.':
		return selector{kind: s[0], value: s[1:]}
	}
	return selector{kind: 't', value: s}
}

func (s selector) matches(n *Node) bool {
	switch s.kind {
	case '#':
		return n.ID() == s.value
	case '.':
		for _, c := range strings.Fields(n.Attr("class")) {
			if c == s.value {
				return true
			}
		}
		return false
	case 't':
		return n.tag == s.value
	}
	return false
}
