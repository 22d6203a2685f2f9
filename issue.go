package pageaudit

import "strings"

// Severity is the impact tier of an issue.
type Severity string

// Severity constants. Any blocker forces a Blocked verdict.
const (
	SeverityBlocker Severity = "blocker"
	SeverityWarn    Severity = "warn"
)

// Issue identifiers.
const (
	IssueRobotsNoindex        = "ROBOTS_NOINDEX"
	IssueMissingOGImage       = "MISSING_OG_IMAGE"
	IssuePrivacyPolicyMissing = "PRIVACY_POLICY_MISSING"
	IssueImageMissingAlt      = "IMAGE_MISSING_ALT"
	IssueHeroGradientHeavy    = "HERO_GRADIENT_HEAVY"
)

// Issue is a finding about the page. Issues are data, not execution errors.
type Issue struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Where    string   `json:"where"`
	Details  string   `json:"details"`
}

// Classify applies the fixed rule set to a completed inventory. The result
// depends only on the inventory and is always in rule order.
func Classify(inv *Inventory) []Issue {
	issues := []Issue{}

	if robots := inv.Meta.Robots; robots != "" && strings.Contains(strings.ToLower(robots), "noindex") {
		issues = append(issues, Issue{
			ID:       IssueRobotsNoindex,
			Severity: SeverityBlocker,
			Where:    "head>meta[name=robots]",
			Details:  robots,
		})
	}

	if inv.Meta.OG["og:image"] == "" {
		issues = append(issues, Issue{
			ID:       IssueMissingOGImage,
			Severity: SeverityWarn,
			Where:    "head",
			Details:  "No og:image present",
		})
	}

	if !inv.Links.PolicyPresence.Privacy.Found {
		issues = append(issues, Issue{
			ID:       IssuePrivacyPolicyMissing,
			Severity: SeverityBlocker,
			Where:    "links",
			Details:  "No privacy policy link detected",
		})
	}

	for _, img := range inv.Images {
		if img.Alt == "" {
			issues = append(issues, Issue{
				ID:       IssueImageMissingAlt,
				Severity: SeverityWarn,
				Where:    img.Src,
				Details:  "Image missing alt text",
			})
		}
	}

	if inv.PerformanceHints.HeroHasLargeGradients {
		issues = append(issues, Issue{
			ID:       IssueHeroGradientHeavy,
			Severity: SeverityWarn,
			Where:    "style",
			Details:  "Hero background uses large gradients that may impact LCP",
		})
	}

	return issues
}

// Verdict is the overall readiness of a page.
type Verdict string

// Verdict constants.
const (
	VerdictReady   Verdict = "Ready"
	VerdictBlocked Verdict = "Blocked"
)

// VerdictFor returns Ready when issues contain no blocker, else Blocked.
func VerdictFor(issues []Issue) Verdict {
	for _, issue := range issues {
		if issue.Severity == SeverityBlocker {
			return VerdictBlocked
		}
	}
	return VerdictReady
}

// FilterIssues returns the issues with the given severity, in order.
func FilterIssues(issues []Issue, severity Severity) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}
