package pageaudit

import "strings"

// Node is a child of an Element. It is either an *Element or a Text fragment.
type Node interface {
	node()
}

// Text is a raw text fragment. Fragments are stored in the children of their
// element so that document order is preserved.
type Text string

func (Text) node() {}

// Element represents a markup node in the reconstructed document tree.
type Element struct {
	// Tag is the lowercase element name.
	Tag string

	// Attrs maps attribute names to values. On duplicate attributes the
	// last one in markup order wins.
	Attrs map[string]string

	// Children holds child elements and text fragments in document order.
	Children []Node

	// parent is a lookup reference for contextual rules; it does not own
	// the element.
	parent *Element
}

func (*Element) node() {}

// NewElement returns an element with the given tag and attributes.
func NewElement(tag string, attrs map[string]string) *Element {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Element{Tag: tag, Attrs: attrs}
}

// Parent returns the enclosing element, or nil for the document root.
func (e *Element) Parent() *Element {
	return e.parent
}

// AppendChild adds n as the last child of e.
func (e *Element) AppendChild(n Node) {
	if child, ok := n.(*Element); ok {
		child.parent = e
	}
	e.Children = append(e.Children, n)
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// HasAttr reports whether the named attribute is present, even if empty.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

// ClassTokens returns the lowercase tokens of the class attribute.
func (e *Element) ClassTokens() []string {
	return strings.Fields(strings.ToLower(e.Attrs["class"]))
}

// FindAll returns every descendant element with the given tag in document
// order. The receiver itself is never included.
func (e *Element) FindAll(tag string) []*Element {
	var results []*Element
	e.walk(func(el *Element) bool {
		if el.Tag == tag {
			results = append(results, el)
		}
		return true
	})
	return results
}

// FindFirst returns the first descendant element with the given tag, or nil.
func (e *Element) FindFirst(tag string) *Element {
	var match *Element
	e.walk(func(el *Element) bool {
		if el.Tag == tag {
			match = el
			return false
		}
		return true
	})
	return match
}

// walk visits descendants depth-first in pre-order until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	for _, child := range e.Children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		if !fn(el) || !el.walk(fn) {
			return false
		}
	}
	return true
}

// TextContent concatenates all descendant text in document order.
// A br element contributes a newline; no other element adds whitespace.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, child := range e.Children {
		switch c := child.(type) {
		case Text:
			b.WriteString(string(c))
		case *Element:
			if c.Tag == "br" {
				b.WriteByte('\n')
				continue
			}
			c.writeText(b)
		}
	}
}

// NormalizeSpace collapses runs of whitespace into single spaces and trims
// the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
