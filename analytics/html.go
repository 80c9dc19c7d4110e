package analytics

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics/fileutils"
)

// HTML report limits.
const (
	htmlIssueLimit    = 50
	htmlTimelineLimit = 30
	htmlDescChars     = 80
)

type htmlSectionRow struct {
	Name  string
	Count int
}

type htmlConfidenceRow struct {
	Name   string
	Counts TrendCounts
}

type htmlIssueRow struct {
	Kind        string
	Description string
	Date        string
}

type htmlTimelineRow struct {
	When        string
	Description string
}

type htmlReportData struct {
	GeneratedAt    string
	TotalDocuments int
	TotalIssues    int
	DurationDays   *int
	Sections       []htmlSectionRow
	Confidence     []htmlConfidenceRow
	Issues         []htmlIssueRow
	Timeline       []htmlTimelineRow
}

// RenderHTML renders the snapshot as a single self-contained HTML page with
// no external resources. generatedAt is stamped into the page header and is
// the only non-deterministic input.
func RenderHTML(s *Snapshot, generatedAt time.Time) (string, error) {
	data := htmlReportData{
		GeneratedAt:    generatedAt.Format("2006-01-02 15:04:05"),
		TotalDocuments: s.TotalDocuments,
		TotalIssues:    len(s.Issues),
	}
	if s.TimeSpan != nil {
		days := s.TimeSpan.DurationDays
		data.DurationDays = &days
	}

	for _, heading := range s.sectionsByFrequency(0) {
		data.Sections = append(data.Sections, htmlSectionRow{
			Name:  heading,
			Count: s.SectionFrequency[heading],
		})
	}

	for _, heading := range s.trendOrder {
		counts := s.ConfidenceTrends[heading]
		if counts.Total() == 0 {
			continue
		}
		data.Confidence = append(data.Confidence, htmlConfidenceRow{Name: heading, Counts: counts})
	}

	issues := append([]Issue(nil), s.Issues...)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Timestamp.After(issues[j].Timestamp)
	})
	if len(issues) > htmlIssueLimit {
		issues = issues[:htmlIssueLimit]
	}
	for _, issue := range issues {
		data.Issues = append(data.Issues, htmlIssueRow{
			Kind:        string(issue.Kind),
			Description: fileutils.Truncate(issue.Description, htmlDescChars),
			Date:        issue.Timestamp.Format("2006-01-02"),
		})
	}

	docs := s.Documents
	if len(docs) > htmlTimelineLimit {
		docs = docs[:htmlTimelineLimit]
	}
	for _, doc := range docs {
		data.Timeline = append(data.Timeline, htmlTimelineRow{
			When:        doc.ModifiedAt.Format("2006-01-02 15:04"),
			Description: documentDescription(doc, 60),
		})
	}

	var b strings.Builder
	if err := htmlReportTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("RenderHTML: execute template: %w", err)
	}
	return b.String(), nil
}

// WriteHTML renders and writes the HTML report to path.
func WriteHTML(path string, s *Snapshot, generatedAt time.Time) error {
	if path == "" {
		return fmt.Errorf("WriteHTML: path is empty")
	}
	page, err := RenderHTML(s, generatedAt)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomicSameDir(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("WriteHTML: write: %w", err)
	}
	return nil
}

var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Handoff Analytics Report</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
        h2 { color: #1e40af; margin-top: 30px; }
        .metric { display: inline-block; margin: 15px 30px 15px 0; }
        .metric-value { font-size: 32px; font-weight: bold; color: #2563eb; }
        .metric-label { font-size: 14px; color: #6b7280; text-transform: uppercase; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 12px; text-align: left; border-bottom: 1px solid #e5e7eb; }
        th { background: #f9fafb; font-weight: 600; }
        .confidence-high { color: #059669; }
        .confidence-medium { color: #d97706; }
        .confidence-low { color: #dc2626; }
        .issue-bug { border-left: 3px solid #dc2626; padding-left: 10px; }
        .issue-risk { border-left: 3px solid #d97706; padding-left: 10px; }
        .timestamp { color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Handoff Analytics Report</h1>
        <p class="timestamp">Generated: {{.GeneratedAt}}</p>

        <h2>Overview</h2>
        <div class="metric">
            <div class="metric-value">{{.TotalDocuments}}</div>
            <div class="metric-label">Total Documents</div>
        </div>
        <div class="metric">
            <div class="metric-value">{{.TotalIssues}}</div>
            <div class="metric-label">Issues Found</div>
        </div>
{{- if .DurationDays}}
        <div class="metric">
            <div class="metric-value">{{.DurationDays}}</div>
            <div class="metric-label">Days Active</div>
        </div>
{{- end}}

        <h2>Most Common Sections</h2>
        <table>
            <tr><th>Section</th><th>Frequency</th></tr>
{{- range .Sections}}
            <tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>
{{- end}}
        </table>

        <h2>Confidence Trends</h2>
        <table>
            <tr><th>Section</th><th>High</th><th>Medium</th><th>Low</th></tr>
{{- range .Confidence}}
            <tr><td>{{.Name}}</td><td class="confidence-high">{{.Counts.High}}</td><td class="confidence-medium">{{.Counts.Medium}}</td><td class="confidence-low">{{.Counts.Low}}</td></tr>
{{- end}}
        </table>
{{- if .Issues}}

        <h2>Issues</h2>
        <table>
            <tr><th>Type</th><th>Description</th><th>Found</th></tr>
{{- range .Issues}}
            <tr class="issue-{{.Kind}}"><td>{{.Kind}}</td><td>{{.Description}}</td><td>{{.Date}}</td></tr>
{{- end}}
        </table>
{{- end}}

        <h2>Timeline</h2>
        <table>
            <tr><th>When</th><th>Document</th></tr>
{{- range .Timeline}}
            <tr><td>{{.When}}</td><td>{{.Description}}</td></tr>
{{- end}}
        </table>
    </div>
</body>
</html>
`))
