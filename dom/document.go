package dom

// MemDocument is an in-memory [Document] with an html root and a body.
type MemDocument struct {
	root *Node
	body *Node
}

// NewDocument creates an empty document.
func NewDocument() *MemDocument {
	root := NewNode("", "html")
	body := NewNode("", "body")
	root.appendNode(body)
	return &MemDocument{root: root, body: body}
}

// Root returns the html element.
func (d *MemDocument) Root() *Node { return d.root }

// BodyNode returns the body as a *Node.
func (d *MemDocument) BodyNode() *Node { return d.body }

// Body returns the body element.
func (d *MemDocument) Body() Element { return d.body }

// QuerySelector returns the first matching element in the document.
func (d *MemDocument) QuerySelector(selector string) Element {
	return d.root.QuerySelector(selector)
}

// QuerySelectorAll returns every matching element in the document.
func (d *MemDocument) QuerySelectorAll(selector string) []Element {
	nodes := d.root.QuerySelectorAll(selector)
	out := make([]Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// GetElementByID returns the element with the given id.
func (d *MemDocument) GetElementByID(id string) Element {
	if id == "" {
		return nil
	}
	return d.root.QuerySelector("#" + id)
}

// CreateElementNS creates a detached element.
func (d *MemDocument) CreateElementNS(namespace, tag string) Element {
	return NewNode(namespace, tag)
}
