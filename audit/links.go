package audit

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pageaudit"
)

// ResolveBase returns the URL relative references on the page resolve
// against: the canonical URL, then og:url, then defaultBase, and finally
// the file URL of path.
func ResolveBase(meta pageaudit.Meta, path, defaultBase string) string {
	switch {
	case meta.Canonical != "":
		return meta.Canonical
	case meta.OG["og:url"] != "":
		return meta.OG["og:url"]
	case defaultBase != "":
		return defaultBase
	}
	return fileURL(path)
}

func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// ResolveRef resolves ref against base. It returns "" when ref is empty or
// either value cannot be parsed.
func ResolveRef(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return b.ResolveReference(r).String()
}

// IsInternal reports whether href stays on the site served from base.
// Fragment-only and host-less references are internal.
func IsInternal(href, base string) bool {
	if strings.HasPrefix(href, "#") {
		return true
	}
	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return true
	}
	b, err := url.Parse(base)
	if err != nil {
		return false
	}
	return u.Host == b.Host
}

// CollectLinks inventories every anchor in body, navigation included, and
// detects links to policy pages from their anchor text.
func CollectLinks(body *pageaudit.Element, base string) pageaudit.Links {
	links := pageaudit.Links{
		Internal: []pageaudit.Link{},
		External: []pageaudit.Link{},
	}

	for _, a := range body.FindAll("a") {
		href := a.Attr("href")
		resolved := ResolveRef(base, href)
		link := pageaudit.Link{
			Href:   resolved,
			Anchor: pageaudit.NormalizeSpace(a.TextContent()),
			Rel:    a.Attr("rel"),
			Target: a.Attr("target"),
		}

		target := resolved
		if target == "" {
			target = href
		}
		if IsInternal(target, base) {
			links.Internal = append(links.Internal, link)
		} else {
			links.External = append(links.External, link)
		}

		markPolicies(&links.PolicyPresence, strings.ToLower(link.Anchor), resolved)
	}

	return links
}

func markPolicies(p *pageaudit.PolicyPresence, anchor, href string) {
	found := pageaudit.PolicyLink{Found: true, Href: href, InStaticHTML: true}
	if strings.Contains(anchor, "privacy") {
		p.Privacy = found
	}
	if strings.Contains(anchor, "terms") && !strings.Contains(anchor, "determine") {
		p.Terms = found
	}
	if strings.Contains(anchor, "contact") || strings.Contains(anchor, "feedback") {
		p.Contact = found
	}
}

// CollectHeadings returns the non-empty h1-h6 elements of body in document
// order.
func CollectHeadings(body *pageaudit.Element) []pageaudit.Heading {
	headings := []pageaudit.Heading{}
	var visit func(el *pageaudit.Element)
	visit = func(el *pageaudit.Element) {
		for _, child := range el.Children {
			c, ok := child.(*pageaudit.Element)
			if !ok {
				continue
			}
			if isHeading(c.Tag) {
				if text := pageaudit.NormalizeSpace(c.TextContent()); text != "" {
					headings = append(headings, pageaudit.Heading{Level: strings.ToUpper(c.Tag), Text: text})
				}
			}
			visit(c)
		}
	}
	visit(body)
	return headings
}

func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}
