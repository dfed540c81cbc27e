package dom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedMarkup is returned when markup cannot be parsed as XML.
var ErrMalformedMarkup = errors.New("dom: malformed markup")

// ParseFragment parses a sequence of XML elements, as assigned to innerHTML
// of an SVG element. Comments and character data are dropped.
func ParseFragment(markup string) ([]*Node, error) {
	dec := xml.NewDecoder(strings.NewReader("<fragment>" + markup + "</fragment>"))
	dec.Strict = true

	root := NewNode("", "fragment")
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				// The wrapper element itself.
				stack = append(stack, root)
				continue
			}
			n := NewNode(t.Name.Space, t.Name.Local)
			for _, a := range t.Attr {
				name := a.Name.Local
				if a.Name.Space != "" {
					name = a.Name.Space + ":" + name
				}
				n.SetAttribute(name, a.Value)
			}
			stack[len(stack)-1].appendNode(n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	nodes := append([]*Node(nil), root.children...)
	for _, n := range nodes {
		n.parent = nil
	}
	return nodes, nil
}
