package fs

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fwojciec/pageaudit"
)

// Artifact suffixes appended to the page slug.
const (
	SuffixHead      = "_HEAD.html"
	SuffixText      = "_TEXT.txt"
	SuffixInventory = "_INVENTORY.json"
	SuffixIssues    = "_ISSUES.json"
	SuffixSummary   = "_AUDIT.md"
)

// FormatHead renders the head snapshot: the header as an HTML comment
// followed by the verbatim head content.
func FormatHead(a *pageaudit.Audit) string {
	var b strings.Builder
	b.WriteString("<!-- ")
	b.WriteString(a.Header)
	b.WriteString(" | HTTP headers: unavailable (file inspection) -->\n")
	b.WriteString("<head>\n")
	b.WriteString(a.HeadHTML)
	b.WriteString("\n</head>\n")
	return b.String()
}

// FormatText renders the flattened text with its statistics footer.
func FormatText(a *pageaudit.Audit) string {
	var b strings.Builder
	b.WriteString(a.Header)
	b.WriteString("\n\n")
	b.WriteString(a.Readability.Text)
	b.WriteString("\n\n---\nTotal words: ")
	b.WriteString(strconv.Itoa(a.Readability.Words))
	b.WriteString("\nFlesch reading ease: ")
	b.WriteString(FormatScore(a.Readability.Score))
	b.WriteString("\n")
	return b.String()
}

// FormatScore prints a readability score with at least one decimal place,
// so 70 prints as "70.0" and 64.25 as "64.25".
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

type inventoryPayload struct {
	Meta string               `json:"_meta"`
	Data *pageaudit.Inventory `json:"data"`
}

type issuesPayload struct {
	Meta   string            `json:"_meta"`
	Issues []pageaudit.Issue `json:"issues"`
}

// FormatInventory renders the inventory artifact.
func FormatInventory(a *pageaudit.Audit) ([]byte, error) {
	return encodeJSON(inventoryPayload{Meta: a.Header, Data: a.Inventory})
}

// FormatIssues renders the issues artifact.
func FormatIssues(a *pageaudit.Audit) ([]byte, error) {
	issues := a.Issues
	if issues == nil {
		issues = []pageaudit.Issue{}
	}
	return encodeJSON(issuesPayload{Meta: a.Header, Issues: issues})
}

// encodeJSON indents with two spaces and ends with a newline. Markup in
// values is written as is.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
