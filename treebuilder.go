package pageaudit

import "strings"

// RootTag is the tag of the synthetic element at the top of every tree.
const RootTag = "document"

// voidElements never receive children and are never left open.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether tag names a void element.
func IsVoid(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// Attribute is a name/value pair as it appears in markup.
type Attribute struct {
	Name  string
	Value string
}

// Parser turns raw HTML into an element tree rooted at a RootTag element.
// Malformed markup is tolerated, never rejected.
type Parser interface {
	Parse(html string) (*Element, error)
}

// TreeBuilder builds an element tree from a stream of markup events using an
// explicit open-element stack. Unmatched end tags are ignored.
type TreeBuilder struct {
	root  *Element
	stack []*Element
}

// NewTreeBuilder returns a TreeBuilder holding only the synthetic root.
func NewTreeBuilder() *TreeBuilder {
	root := NewElement(RootTag, nil)
	return &TreeBuilder{
		root:  root,
		stack: []*Element{root},
	}
}

// Root returns the synthetic document element.
func (b *TreeBuilder) Root() *Element {
	return b.root
}

// StartTag opens a new element under the current element. Void elements are
// appended but not left open.
func (b *TreeBuilder) StartTag(tag string, attrs []Attribute) {
	el := b.appendElement(tag, attrs)
	if !voidElements[el.Tag] {
		b.stack = append(b.stack, el)
	}
}

// SelfClosingTag appends an element that is never left open, whatever its tag.
func (b *TreeBuilder) SelfClosingTag(tag string, attrs []Attribute) {
	b.appendElement(tag, attrs)
}

// EndTag closes the nearest open element with the given tag together with
// everything opened after it. Without a match the event is ignored.
func (b *TreeBuilder) EndTag(tag string) {
	tag = strings.ToLower(tag)
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].Tag == tag {
			b.stack = b.stack[:i]
			return
		}
	}
}

// Text appends a text fragment to the current element. Whitespace-only
// fragments are kept; empty ones are dropped.
func (b *TreeBuilder) Text(s string) {
	if s == "" {
		return
	}
	b.current().AppendChild(Text(s))
}

func (b *TreeBuilder) current() *Element {
	return b.stack[len(b.stack)-1]
}

func (b *TreeBuilder) appendElement(tag string, attrs []Attribute) *Element {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[strings.ToLower(a.Name)] = a.Value
	}
	el := NewElement(strings.ToLower(tag), m)
	b.current().AppendChild(el)
	return el
}
