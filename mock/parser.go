package mock

import "github.com/fwojciec/pageaudit"

var (
	_ pageaudit.Parser               = (*Parser)(nil)
	_ pageaudit.AccessibilityChecker = (*AccessibilityChecker)(nil)
)

// Parser is a mock implementation of pageaudit.Parser.
type Parser struct {
	ParseFn func(html string) (*pageaudit.Element, error)
}

func (p *Parser) Parse(html string) (*pageaudit.Element, error) {
	return p.ParseFn(html)
}

// AccessibilityChecker is a mock implementation of pageaudit.AccessibilityChecker.
type AccessibilityChecker struct {
	CheckFn func(html string) (*pageaudit.AccessibilityReport, error)
}

func (c *AccessibilityChecker) Check(html string) (*pageaudit.AccessibilityReport, error) {
	return c.CheckFn(html)
}
