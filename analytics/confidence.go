package analytics

import "strings"

// ConfidenceLevel labels how confident a section reads.
type ConfidenceLevel string

const (
	ConfidenceHigh    ConfidenceLevel = "high"
	ConfidenceMedium  ConfidenceLevel = "medium"
	ConfidenceLow     ConfidenceLevel = "low"
	ConfidenceUnknown ConfidenceLevel = "unknown"
)

// confidenceRule maps a marker symbol or keyword to a level. Symbol checks
// are exact character checks; keyword checks are case-insensitive substrings.
type confidenceRule struct {
	symbol  string
	keyword string
	level   ConfidenceLevel
}

// confidenceRules is evaluated top to bottom with short-circuit on the first
// match. The order is a preserved contract: a body carrying both the high and
// low markers classifies as high because that rule runs first. Do not reorder.
var confidenceRules = []confidenceRule{
	{symbol: "✅", keyword: "high confidence", level: ConfidenceHigh},
	{symbol: "❓", keyword: "low confidence", level: ConfidenceLow},
	{symbol: "⚠️", keyword: "medium confidence", level: ConfidenceMedium},
}

// ClassifyConfidence labels a single section body.
func ClassifyConfidence(body string) ConfidenceLevel {
	lower := strings.ToLower(body)
	for _, rule := range confidenceRules {
		if strings.Contains(body, rule.symbol) || strings.Contains(lower, rule.keyword) {
			return rule.level
		}
	}
	return ConfidenceUnknown
}

// ExtractConfidenceLevels labels every section of a document independently.
func ExtractConfidenceLevels(sections *SectionMap) map[string]ConfidenceLevel {
	levels := make(map[string]ConfidenceLevel, sections.Len())
	for _, heading := range sections.Headings() {
		levels[heading] = ClassifyConfidence(sections.Body(heading))
	}
	return levels
}
