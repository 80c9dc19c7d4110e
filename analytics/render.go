package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics/fileutils"
)

// Console rendering limits.
const (
	summaryTopSections = 10
	timelineLimit      = 20
	issuesPerKind      = 10
	timelineDescChars  = 50
	issueDescChars     = 70
)

// NoDescription is shown on timeline rows for documents without a Project
// Identity section.
const NoDescription = "No description"

const consoleRule = "======================================================================"

func header(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n  %s\n%s\n\n", consoleRule, title, consoleRule)
}

// RenderSummary renders the corpus overview: totals, time span, the ten most
// common sections with proportional bars, and issue counts by kind.
func RenderSummary(s *Snapshot) string {
	var b strings.Builder
	header(&b, "Handoff Analytics Summary")

	fmt.Fprintf(&b, "Total documents:       %d\n", s.TotalDocuments)
	fmt.Fprintf(&b, "Total issues found:    %d\n", len(s.Issues))

	if s.TimeSpan != nil {
		span := s.TimeSpan
		fmt.Fprintf(&b, "Time span:             %s to %s\n",
			span.Start.Format("2006-01-02"), span.End.Format("2006-01-02"))
		fmt.Fprintf(&b, "Duration:              %d days\n", span.DurationDays)
		if span.DurationDays > 0 {
			rate := float64(s.TotalDocuments) / float64(span.DurationDays)
			fmt.Fprintf(&b, "Frequency:             %.2f documents/day\n", rate)
		}
	}

	header(&b, "Most Common Sections")
	for _, heading := range s.sectionsByFrequency(summaryTopSections) {
		count := s.SectionFrequency[heading]
		bar := strings.Repeat("█", count*2)
		fmt.Fprintf(&b, "  %-30s %s (%d)\n", fileutils.Truncate(heading, 30), bar, count)
	}

	header(&b, "Issues Summary")
	for _, kind := range s.issueKindsByCount() {
		fmt.Fprintf(&b, "  %-15s %d\n", capitalize(string(kind.kind)), kind.count)
	}

	return b.String()
}

// RenderTimeline renders the 20 most recent documents, one line each, with a
// short description taken from the Project Identity section.
func RenderTimeline(s *Snapshot) string {
	var b strings.Builder
	header(&b, "Project Timeline")

	shown := s.Documents
	if len(shown) > timelineLimit {
		shown = shown[:timelineLimit]
	}
	for i, doc := range shown {
		fmt.Fprintf(&b, "%2d. [%s] %s\n", i+1,
			doc.ModifiedAt.Format("2006-01-02 15:04"), documentDescription(doc, timelineDescChars))
	}
	if rest := len(s.Documents) - timelineLimit; rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more\n", rest)
	}

	return b.String()
}

// RenderConfidence renders per-section confidence counts and percentages.
// Percentages are relative to the high+medium+low total for that section;
// sections without a tracked label never appear.
func RenderConfidence(s *Snapshot) string {
	var b strings.Builder
	header(&b, "Confidence Trends by Section")

	for _, heading := range s.trendOrder {
		counts := s.ConfidenceTrends[heading]
		total := counts.Total()
		if total == 0 {
			continue
		}
		pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
		fmt.Fprintf(&b, "%s:\n", heading)
		fmt.Fprintf(&b, "  ✅ High:   %3d (%5.1f%%)\n", counts.High, pct(counts.High))
		fmt.Fprintf(&b, "  ⚠️  Medium: %3d (%5.1f%%)\n", counts.Medium, pct(counts.Medium))
		fmt.Fprintf(&b, "  ❓ Low:    %3d (%5.1f%%)\n", counts.Low, pct(counts.Low))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderIssues renders issues grouped by kind, newest first within each
// group, capped at ten per group with a remainder count.
func RenderIssues(s *Snapshot) string {
	var b strings.Builder
	header(&b, fmt.Sprintf("Issues Extracted (%d total)", len(s.Issues)))

	for _, group := range s.issueGroups() {
		fmt.Fprintf(&b, "\n%s (%d)\n", strings.ToUpper(string(group.kind)), len(group.issues))
		b.WriteString(strings.Repeat("-", 70))
		b.WriteString("\n")

		shown := group.issues
		if len(shown) > issuesPerKind {
			shown = shown[:issuesPerKind]
		}
		for _, issue := range shown {
			fmt.Fprintf(&b, "  [%s] %s\n", issue.Timestamp.Format("2006-01-02"),
				fileutils.Truncate(issue.Description, issueDescChars))
		}
		if rest := len(group.issues) - issuesPerKind; rest > 0 {
			fmt.Fprintf(&b, "  ... and %d more\n", rest)
		}
	}

	return b.String()
}

// sectionsByFrequency returns up to limit headings ordered by document count
// descending; ties keep corpus-wide first-seen order. limit <= 0 means all.
func (s *Snapshot) sectionsByFrequency(limit int) []string {
	headings := s.SectionOrder()
	sort.SliceStable(headings, func(i, j int) bool {
		return s.SectionFrequency[headings[i]] > s.SectionFrequency[headings[j]]
	})
	if limit > 0 && len(headings) > limit {
		headings = headings[:limit]
	}
	return headings
}

type kindCount struct {
	kind  IssueKind
	count int
}

// issueKindsByCount tallies issues per kind, ordered by count descending with
// first-occurrence order breaking ties.
func (s *Snapshot) issueKindsByCount() []kindCount {
	var order []IssueKind
	counts := make(map[IssueKind]int)
	for _, issue := range s.Issues {
		if counts[issue.Kind] == 0 {
			order = append(order, issue.Kind)
		}
		counts[issue.Kind]++
	}
	out := make([]kindCount, len(order))
	for i, kind := range order {
		out[i] = kindCount{kind: kind, count: counts[kind]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

type issueGroup struct {
	kind   IssueKind
	issues []Issue
}

// issueGroups splits issues by kind (groups in first-occurrence order) and
// sorts each group newest first, keeping processing order on equal stamps.
func (s *Snapshot) issueGroups() []issueGroup {
	var order []IssueKind
	byKind := make(map[IssueKind][]Issue)
	for _, issue := range s.Issues {
		if _, ok := byKind[issue.Kind]; !ok {
			order = append(order, issue.Kind)
		}
		byKind[issue.Kind] = append(byKind[issue.Kind], issue)
	}
	out := make([]issueGroup, len(order))
	for i, kind := range order {
		issues := byKind[kind]
		sort.SliceStable(issues, func(a, b int) bool {
			return issues[a].Timestamp.After(issues[b].Timestamp)
		})
		out[i] = issueGroup{kind: kind, issues: issues}
	}
	return out
}

// documentDescription derives a one-line description from the first line of
// the Project Identity section.
func documentDescription(doc HandoffDocument, maxChars int) string {
	identity := doc.Sections.Body(SectionIdentity)
	if identity == "" {
		return NoDescription
	}
	return fileutils.Truncate(fileutils.FirstLine(identity), maxChars)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
