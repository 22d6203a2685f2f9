package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pageaudit"
)

// ldJSONType is the script type of embedded JSON-LD blocks.
const ldJSONType = "application/ld+json"

// CollectMeta extracts SEO metadata from the head element. Meta elements
// without a content attribute are ignored.
func CollectMeta(head *pageaudit.Element) pageaudit.Meta {
	meta := pageaudit.Meta{
		OG:      make(map[string]string),
		Twitter: make(map[string]string),
	}

	if title := head.FindFirst("title"); title != nil {
		meta.Title = withLength(pageaudit.NormalizeSpace(title.TextContent()))
	}

	for _, el := range head.FindAll("meta") {
		if !el.HasAttr("content") {
			continue
		}
		name := strings.ToLower(el.Attr("name"))
		property := strings.ToLower(el.Attr("property"))
		content := el.Attr("content")

		switch {
		case name == "robots":
			meta.Robots = content
		case name == "description":
			meta.Description = withLength(pageaudit.NormalizeSpace(content))
		case name == "viewport":
			meta.Viewport = content
		case strings.HasPrefix(name, "twitter:"):
			meta.Twitter[name] = content
		}
		if strings.HasPrefix(property, "og:") {
			meta.OG[property] = content
		}
	}

	for _, el := range head.FindAll("link") {
		if strings.ToLower(el.Attr("rel")) != "canonical" {
			continue
		}
		if href := el.Attr("href"); href != "" {
			meta.Canonical = href
		}
	}

	return meta
}

// withLength appends the character count of s.
func withLength(s string) string {
	return fmt.Sprintf("%s (%d)", s, utf8.RuneCountInString(s))
}

// CollectStructuredData inspects every JSON-LD script in head and then body.
// A block that fails to parse is recorded as invalid; it never stops the
// remaining blocks from being inspected.
func CollectStructuredData(head, body *pageaudit.Element) []pageaudit.StructuredData {
	scripts := append(head.FindAll("script"), body.FindAll("script")...)

	items := []pageaudit.StructuredData{}
	for _, script := range scripts {
		if strings.ToLower(script.Attr("type")) != ldJSONType {
			continue
		}
		items = append(items, inspectJSONLD(strings.TrimSpace(script.TextContent())))
	}
	return items
}

func inspectJSONLD(raw string) pageaudit.StructuredData {
	item := pageaudit.StructuredData{ValidJSON: true, Errors: []string{}}

	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		item.ValidJSON = false
		item.Errors = append(item.Errors, err.Error())
		return item
	}

	doc, err := decodeJSON(json.NewDecoder(bytes.NewReader([]byte(raw))))
	if err != nil {
		item.ValidJSON = false
		item.Errors = append(item.Errors, err.Error())
		return item
	}
	if t, ok := doc.findType(); ok {
		item.Type = t.value()
	}
	return item
}

type jsonKind int

const (
	jsonScalar jsonKind = iota
	jsonObject
	jsonArray
)

// jsonNode is a decoded JSON value that keeps object members in source
// order, which map[string]any does not.
type jsonNode struct {
	kind    jsonKind
	scalar  any
	keys    []string
	members []*jsonNode
}

// findType returns the first "@type" member in a pre-order walk. An
// object's own "@type" is checked before its members are searched; nested
// matches with empty or false values are skipped.
func (n *jsonNode) findType() (*jsonNode, bool) {
	switch n.kind {
	case jsonObject:
		for i := len(n.keys) - 1; i >= 0; i-- {
			if n.keys[i] == "@type" {
				return n.members[i], true
			}
		}
		fallthrough
	case jsonArray:
		for _, m := range n.members {
			if t, ok := m.findType(); ok && t.truthy() {
				return t, true
			}
		}
	}
	return nil, false
}

func (n *jsonNode) truthy() bool {
	switch n.kind {
	case jsonObject, jsonArray:
		return len(n.members) > 0
	}
	switch v := n.scalar.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	}
	return true
}

// value converts the node back to a plain Go value for serialization.
func (n *jsonNode) value() any {
	switch n.kind {
	case jsonObject:
		m := make(map[string]any, len(n.keys))
		for i, k := range n.keys {
			m[k] = n.members[i].value()
		}
		return m
	case jsonArray:
		s := make([]any, len(n.members))
		for i, m := range n.members {
			s[i] = m.value()
		}
		return s
	}
	return n.scalar
}

func decodeJSON(dec *json.Decoder) (*jsonNode, error) {
	dec.UseNumber()
	node, err := decodeNode(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	return node, nil
}

func decodeNode(dec *json.Decoder) (*jsonNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return &jsonNode{kind: jsonScalar, scalar: tok}, nil
	}

	switch delim {
	case '{':
		node := &jsonNode{kind: jsonObject}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			member, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			node.keys = append(node.keys, key)
			node.members = append(node.members, member)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	case '[':
		node := &jsonNode{kind: jsonArray}
		for dec.More() {
			member, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			node.members = append(node.members, member)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}
