package analytics

import (
	"time"
)

// TrendCounts holds the non-unknown confidence tallies for one section.
type TrendCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Total sums the three tracked levels.
func (c TrendCounts) Total() int {
	return c.High + c.Medium + c.Low
}

// TimeSpan covers the modification-time extremes of a corpus.
type TimeSpan struct {
	Start        time.Time
	End          time.Time
	DurationDays int
}

// Snapshot is the corpus-wide aggregation result. It is built once by
// Analyze and never mutated afterwards; renderers treat it as read-only.
type Snapshot struct {
	TotalDocuments int

	// TimeSpan is nil iff the corpus is empty.
	TimeSpan *TimeSpan

	// Documents in processing order (newest-modified first).
	Documents []HandoffDocument

	// Issues in processing order, risks before bugs within each document.
	Issues []Issue

	ConfidenceTrends map[string]TrendCounts
	SectionFrequency map[string]int

	// sectionOrder records the first-seen order of headings across the
	// corpus; renderers use it to break frequency ties deterministically.
	sectionOrder []string

	// trendOrder records the order in which headings first produced a
	// non-unknown confidence label.
	trendOrder []string
}

// SectionOrder returns headings in corpus-wide first-seen order.
func (s *Snapshot) SectionOrder() []string {
	out := make([]string, len(s.sectionOrder))
	copy(out, s.sectionOrder)
	return out
}

// TrendOrder returns the headings of ConfidenceTrends in the order they first
// produced a tracked confidence label.
func (s *Snapshot) TrendOrder() []string {
	out := make([]string, len(s.trendOrder))
	copy(out, s.trendOrder)
	return out
}

// Analyze parses every listed document (the listing is expected newest-first)
// and folds the results into a Snapshot. A document that cannot be read or
// parsed aborts the whole run with its error.
func Analyze(paths []string) (*Snapshot, error) {
	snap := &Snapshot{
		TotalDocuments:   len(paths),
		ConfidenceTrends: make(map[string]TrendCounts),
		SectionFrequency: make(map[string]int),
	}
	if len(paths) == 0 {
		return snap, nil
	}

	for _, path := range paths {
		doc, err := ParseHandoff(path)
		if err != nil {
			return nil, err
		}
		snap.fold(doc)
	}

	start, end := snap.Documents[0].ModifiedAt, snap.Documents[0].ModifiedAt
	for _, doc := range snap.Documents[1:] {
		if doc.ModifiedAt.Before(start) {
			start = doc.ModifiedAt
		}
		if doc.ModifiedAt.After(end) {
			end = doc.ModifiedAt
		}
	}
	snap.TimeSpan = &TimeSpan{
		Start:        start,
		End:          end,
		DurationDays: int(end.Sub(start) / (24 * time.Hour)),
	}

	return snap, nil
}

func (s *Snapshot) fold(doc HandoffDocument) {
	s.Documents = append(s.Documents, doc)

	for _, issue := range ExtractIssues(doc.Sections) {
		issue.SourceDocument = doc.Filename
		issue.Timestamp = doc.ModifiedAt
		s.Issues = append(s.Issues, issue)
	}

	levels := ExtractConfidenceLevels(doc.Sections)
	for _, heading := range doc.Sections.Headings() {
		// Unknown is tracked by extraction but excluded from aggregation;
		// a section only appears in the trends once it produced a real label.
		if level := levels[heading]; level != ConfidenceUnknown {
			counts, seen := s.ConfidenceTrends[heading]
			if !seen {
				s.trendOrder = append(s.trendOrder, heading)
			}
			switch level {
			case ConfidenceHigh:
				counts.High++
			case ConfidenceMedium:
				counts.Medium++
			case ConfidenceLow:
				counts.Low++
			}
			s.ConfidenceTrends[heading] = counts
		}

		if s.SectionFrequency[heading] == 0 {
			s.sectionOrder = append(s.sectionOrder, heading)
		}
		s.SectionFrequency[heading]++
	}
}
