package audit

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pageaudit"
)

var (
	heroGradientRe = regexp.MustCompile(`(?i)hero[^{]+\{[^}]*gradient`)
	headRe         = regexp.MustCompile(`(?is)<head[^>]*>(.*)</head>`)
)

// DetectPerformanceHints applies the markup heuristics. Gradient and blur
// checks scan the raw source so inline CSS is included.
func DetectPerformanceHints(src string, body *pageaudit.Element) pageaudit.PerformanceHints {
	lower := strings.ToLower(src)
	hints := pageaudit.PerformanceHints{
		HeroHasLargeGradients:            heroGradientRe.MatchString(src),
		UsesBlurOrHeavyShadows:           strings.Contains(lower, "blur(") || strings.Contains(lower, "box-shadow"),
		CLSPlaceholdersForAsyncNavFooter: true,
	}
	for _, img := range body.FindAll("img") {
		if !img.HasAttr("width") || !img.HasAttr("height") {
			hints.CLSPlaceholdersForAsyncNavFooter = false
			break
		}
	}
	return hints
}

// ExtractHead returns the trimmed inner HTML of the head element exactly as
// written in src, or "" when there is none.
func ExtractHead(src string) string {
	m := headRe.FindStringSubmatch(src)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
