package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageaudit"
)

// Ensure Checker implements pageaudit.AccessibilityChecker at compile time.
var _ pageaudit.AccessibilityChecker = (*Checker)(nil)

// unlabeledExempt lists input types that need no label.
var unlabeledExempt = map[string]bool{
	"hidden": true,
	"submit": true,
	"button": true,
	"reset":  true,
	"image":  true,
}

// Checker collects accessibility spot-check facts with CSS selectors over
// an HTML5-parsed document.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check inspects html and reports what it finds.
func (c *Checker) Check(html string) (*pageaudit.AccessibilityReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pageaudit.Errorf(pageaudit.EINVALID, "failed to parse HTML: %v", err)
	}

	report := &pageaudit.AccessibilityReport{}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		report.HasLang = true
		report.Lang = strings.TrimSpace(lang)
	}

	doc.Find(`a[href^="#"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), "skip") {
			report.HasSkipLink = true
			return false
		}
		return true
	})

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if !hasAccessibleName(sel) {
			report.EmptyAnchors++
		}
	})

	report.ImagesMissing = doc.Find("img:not([alt])").Length()

	labelled := make(map[string]bool)
	doc.Find("label[for]").Each(func(_ int, sel *goquery.Selection) {
		if id, _ := sel.Attr("for"); id != "" {
			labelled[id] = true
		}
	})
	doc.Find("input, select, textarea").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "input" {
			typ, _ := sel.Attr("type")
			if unlabeledExempt[strings.ToLower(typ)] {
				return
			}
		}
		if !isLabelled(sel, labelled) {
			report.UnlabeledForm++
		}
	})

	return report, nil
}

// hasAccessibleName reports whether an anchor exposes text to assistive
// technology through its content, an aria attribute or an image alt.
func hasAccessibleName(sel *goquery.Selection) bool {
	if strings.TrimSpace(sel.Text()) != "" {
		return true
	}
	for _, attr := range []string{"aria-label", "aria-labelledby", "title"} {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return true
		}
	}
	named := false
	sel.Find("img[alt]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt, _ := img.Attr("alt")
		named = strings.TrimSpace(alt) != ""
		return !named
	})
	return named
}

func isLabelled(sel *goquery.Selection, labelled map[string]bool) bool {
	for _, attr := range []string{"aria-label", "aria-labelledby", "title"} {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return true
		}
	}
	if id, ok := sel.Attr("id"); ok && labelled[id] {
		return true
	}
	return sel.Closest("label").Length() > 0
}
