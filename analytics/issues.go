package analytics

import (
	"strings"
	"time"
)

// IssueKind distinguishes anticipated risks from reported bugs.
type IssueKind string

const (
	KindRisk IssueKind = "risk"
	KindBug  IssueKind = "bug"
)

// Issue is one extracted risk or bug line.
type Issue struct {
	Kind        IssueKind
	Description string

	// SourceDocument and Timestamp are filled in during aggregation from the
	// document the issue came from.
	SourceDocument string
	Timestamp      time.Time
}

// bugKeywords flag a system-state line as a bug report. Matching is a
// case-insensitive substring check against the whole line.
var bugKeywords = []string{"broken", "bug", "issue", "error", "doesnt work"}

// ExtractIssues scans exactly two sections of a document: bulleted lines of
// "What Could Go Wrong" become risks, and bulleted lines of "Current System
// State" containing a bug keyword become bugs. Risks precede bugs in the
// result. A missing section contributes nothing.
func ExtractIssues(sections *SectionMap) []Issue {
	var issues []Issue

	for _, line := range strings.Split(sections.Body(SectionRisks), "\n") {
		trimmed := strings.TrimSpace(line)
		if desc, ok := stripBullet(trimmed); ok {
			issues = append(issues, Issue{Kind: KindRisk, Description: desc})
		}
	}

	for _, line := range strings.Split(sections.Body(SectionSystemState), "\n") {
		if !containsBugKeyword(line) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if desc, ok := stripBullet(trimmed); ok {
			issues = append(issues, Issue{Kind: KindBug, Description: desc})
		}
	}

	return issues
}

// stripBullet removes a single leading "-" or "*" and trims the remainder.
// The second return reports whether the line was bulleted at all.
func stripBullet(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*") {
		return "", false
	}
	return strings.TrimSpace(trimmed[1:]), true
}

func containsBugKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range bugKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
