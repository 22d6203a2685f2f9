package pageaudit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
)

// DefaultBaseURL is the fallback base used when the caller supplies none.
const DefaultBaseURL = "https://thetankguide.com/"

// Page is one HTML input to audit.
type Page struct {
	// Path is the input file path as given by the caller.
	Path string

	// Slug names the output artifacts.
	Slug string

	// HTML is the full source of the page.
	HTML string

	// DefaultBase is used for URL resolution when the page declares neither
	// a canonical URL nor og:url.
	DefaultBase string
}

// Validate returns an error if the page cannot be audited.
func (p *Page) Validate() error {
	if p.Slug == "" {
		return Errorf(EINVALID, "page slug required")
	}
	if p.Path == "" {
		return Errorf(EINVALID, "page path required")
	}
	return nil
}

// Audit is the aggregate report for one page. It is built once and not
// modified after the extractors have run.
type Audit struct {
	Page *Page

	// Header is shared by every artifact of the audit.
	Header string

	// Commit is the source-control revision recorded in the header.
	Commit    string
	AuditedAt time.Time

	// HeadHTML is the verbatim inner HTML of the head element.
	HeadHTML string

	Inventory   *Inventory
	Issues      []Issue
	Readability Readability

	// Accessibility is nil when no checker was configured.
	Accessibility *AccessibilityReport
}

// Verdict returns the overall readiness of the page.
func (a *Audit) Verdict() Verdict {
	return VerdictFor(a.Issues)
}

// FormatHeader returns the header line shared by all artifacts of an audit.
func FormatHeader(t time.Time, commit, slug, path string) string {
	return fmt.Sprintf("Generated %s UTC | commit %s | source %s (%s)",
		t.UTC().Format("2006-01-02T15:04:05Z"), commit, slug, path)
}

// SlugTitle turns "home-page" into "Home Page".
func SlugTitle(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Auditor audits a single page.
type Auditor interface {
	// Audit builds the complete report for page.
	// Returns EINVALID if the page has no head or body element.
	// Returns ENOTFOUND if no source-control revision is available.
	Audit(ctx context.Context, page *Page) (*Audit, error)
}

// RevisionService resolves the source-control revision of a working tree.
type RevisionService interface {
	// Revision returns the commit identifier checked out at dir or any of
	// its parents. Returns ENOTFOUND when dir is not inside a repository.
	Revision(ctx context.Context, dir string) (string, error)
}

// ArtifactWriter persists the artifacts of a completed audit.
type ArtifactWriter interface {
	// WriteArtifacts writes every artifact and returns their paths.
	WriteArtifacts(ctx context.Context, audit *Audit) ([]string, error)
}

// SummaryRenderer renders the human-readable audit summary.
type SummaryRenderer interface {
	RenderSummary(w io.Writer, audit *Audit) error
}

// AccessibilityReport holds automated accessibility spot-check facts.
type AccessibilityReport struct {
	HasLang       bool
	Lang          string
	HasSkipLink   bool
	EmptyAnchors  int
	ImagesMissing int
	UnlabeledForm int
}

// AccessibilityChecker inspects raw HTML for accessibility facts.
type AccessibilityChecker interface {
	Check(html string) (*AccessibilityReport, error)
}

// PageLoader reads page sources.
type PageLoader interface {
	// LoadPage reads the HTML at path. Returns ENOTFOUND if the file does
	// not exist.
	LoadPage(ctx context.Context, path, slug, defaultBase string) (*Page, error)
}
