package audit

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pageaudit"
)

const (
	googleFontsHost = "fonts.googleapis.com"
	fontSource      = "google"
	unknownFamily   = "unknown"
	unknownSize     = "unknown"
)

// CollectImages inventories every img element in body.
func CollectImages(body *pageaudit.Element, base string) []pageaudit.Image {
	images := []pageaudit.Image{}
	for _, img := range body.FindAll("img") {
		dimensions := unknownSize
		if w, h := img.Attr("width"), img.Attr("height"); w != "" && h != "" {
			dimensions = w + "x" + h
		}
		images = append(images, pageaudit.Image{
			Src:        ResolveRef(base, img.Attr("src")),
			Alt:        img.Attr("alt"),
			Dimensions: dimensions,
			Role:       InferImageRole(img),
		})
	}
	return images
}

// InferImageRole classifies img from its own class list and its parent's.
// Hero wins over card on either element.
func InferImageRole(img *pageaudit.Element) pageaudit.ImageRole {
	own := img.ClassTokens()
	var parent []string
	if p := img.Parent(); p != nil {
		parent = p.ClassTokens()
	}

	switch {
	case anyContains(own, "hero"), anyContains(parent, "hero"):
		return pageaudit.ImageRoleHero
	case anyContains(parent, "card"), anyContains(own, "card"):
		return pageaudit.ImageRoleCard
	}
	return pageaudit.ImageRoleInline
}

func anyContains(tokens []string, sub string) bool {
	for _, t := range tokens {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// CollectScripts inventories script elements, head first.
func CollectScripts(head, body *pageaudit.Element, base string) []pageaudit.Script {
	scripts := []pageaudit.Script{}
	for _, parent := range []*pageaudit.Element{head, body} {
		for _, s := range parent.FindAll("script") {
			scripts = append(scripts, pageaudit.Script{
				Src:    ResolveRef(base, s.Attr("src")),
				Async:  s.HasAttr("async"),
				Defer:  s.HasAttr("defer"),
				Module: strings.ToLower(s.Attr("type")) == "module",
			})
		}
	}
	return scripts
}

// CollectStylesheets inventories linked stylesheets and then inline style
// blocks of the head.
func CollectStylesheets(head *pageaudit.Element, base string) []pageaudit.Stylesheet {
	sheets := []pageaudit.Stylesheet{}
	for _, link := range head.FindAll("link") {
		if !isStylesheet(link) {
			continue
		}
		sheets = append(sheets, pageaudit.Stylesheet{
			Href:  ResolveRef(base, link.Attr("href")),
			Media: link.Attr("media"),
		})
	}
	for _, style := range head.FindAll("style") {
		sheets = append(sheets, pageaudit.Stylesheet{
			InlineBytes: len(style.TextContent()),
			Media:       style.Attr("media"),
		})
	}
	return sheets
}

func isStylesheet(link *pageaudit.Element) bool {
	return strings.ToLower(link.Attr("rel")) == "stylesheet"
}

// CollectFonts lists the families requested by Google Fonts stylesheet links,
// de-duplicated by family and display.
func CollectFonts(head *pageaudit.Element) []pageaudit.Font {
	type key struct{ family, display string }

	fonts := []pageaudit.Font{}
	seen := make(map[key]bool)
	add := func(family, display string) {
		k := key{family, display}
		if seen[k] {
			return
		}
		seen[k] = true
		fonts = append(fonts, pageaudit.Font{Family: family, Source: fontSource, Display: display})
	}

	for _, link := range head.FindAll("link") {
		href := link.Attr("href")
		if !strings.Contains(href, googleFontsHost) || !isStylesheet(link) {
			continue
		}

		var query url.Values
		if u, err := url.Parse(href); err == nil {
			query = parseQuery(u.RawQuery)
		}
		display := firstNonEmpty(query["display"])

		var families []string
		for _, v := range query["family"] {
			if v != "" {
				families = append(families, v)
			}
		}
		if len(families) == 0 {
			add(unknownFamily, display)
			continue
		}
		for _, entry := range families {
			for _, part := range strings.Split(entry, "|") {
				name, _, _ := strings.Cut(part, ":")
				add(strings.ReplaceAll(name, "+", " "), display)
			}
		}
	}
	return fonts
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseQuery splits a raw query on "&" only. url.ParseQuery rejects pairs
// containing ";", which css2 axis lists such as "wght@400;700" use. Pairs
// without a value are dropped.
func parseQuery(raw string) url.Values {
	values := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if value == "" {
			continue
		}
		values.Add(unescape(key), unescape(value))
	}
	return values
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
