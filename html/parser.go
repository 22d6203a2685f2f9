// Package html provides a pageaudit.Parser backed by the golang.org/x/net/html
// tokenizer. Tokens are fed to a pageaudit.TreeBuilder as they are read; no
// HTML5 tree-construction rules are applied, so implied elements are never
// inserted and stray end tags are simply ignored.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/pageaudit"
	"golang.org/x/net/html"
)

// Ensure Parser implements pageaudit.Parser at compile time.
var _ pageaudit.Parser = (*Parser)(nil)

// Parser builds element trees from HTML source.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes src and returns the synthetic document root.
// Comments and doctype declarations are dropped. Only script and style
// contents are kept as raw text; markup inside elements such as noscript,
// iframe or title is tokenized like any other.
func (p *Parser) Parse(src string) (*pageaudit.Element, error) {
	b := pageaudit.NewTreeBuilder()
	z := html.NewTokenizer(strings.NewReader(src))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.Root(), nil
			}
			return nil, z.Err()
		case html.StartTagToken:
			name, attrs := readTag(z)
			if name != "script" && name != "style" {
				z.NextIsNotRawText()
			}
			b.StartTag(name, attrs)
		case html.SelfClosingTagToken:
			name, attrs := readTag(z)
			b.SelfClosingTag(name, attrs)
		case html.EndTagToken:
			name, _ := z.TagName()
			b.EndTag(string(name))
		case html.TextToken:
			b.Text(string(z.Text()))
		}
	}
}

// readTag copies the current tag name and attributes out of the tokenizer's
// reused buffers, keeping markup order.
func readTag(z *html.Tokenizer) (string, []pageaudit.Attribute) {
	name, hasAttr := z.TagName()
	tag := string(name)

	var attrs []pageaudit.Attribute
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs = append(attrs, pageaudit.Attribute{Name: string(key), Value: string(val)})
	}
	return tag, attrs
}
