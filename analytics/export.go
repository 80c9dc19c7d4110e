package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics/fileutils"
)

// ExportDocument is the JSON export shape of a Snapshot. Timestamps are
// ISO-8601 (RFC 3339) strings.
type ExportDocument struct {
	TotalDocuments   int                    `json:"total_documents"`
	Issues           []ExportIssue          `json:"issues"`
	ConfidenceTrends map[string]TrendCounts `json:"confidence_trends"`
	SectionFrequency map[string]int         `json:"section_frequency"`
	TimeSpan         *ExportTimeSpan        `json:"time_span,omitempty"`
}

// ExportIssue is one issue row in the JSON export.
type ExportIssue struct {
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	SourceDocument string `json:"source_document"`
	Timestamp      string `json:"timestamp"`
}

// ExportTimeSpan is the time_span object in the JSON export.
type ExportTimeSpan struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	DurationDays int    `json:"duration_days"`
}

// BuildExport converts a completed Snapshot into its export representation.
func BuildExport(s *Snapshot) ExportDocument {
	doc := ExportDocument{
		TotalDocuments:   s.TotalDocuments,
		Issues:           make([]ExportIssue, 0, len(s.Issues)),
		ConfidenceTrends: make(map[string]TrendCounts, len(s.ConfidenceTrends)),
		SectionFrequency: make(map[string]int, len(s.SectionFrequency)),
	}
	for _, issue := range s.Issues {
		doc.Issues = append(doc.Issues, ExportIssue{
			Kind:           string(issue.Kind),
			Description:    issue.Description,
			SourceDocument: issue.SourceDocument,
			Timestamp:      issue.Timestamp.Format(time.RFC3339),
		})
	}
	for heading, counts := range s.ConfidenceTrends {
		doc.ConfidenceTrends[heading] = counts
	}
	for heading, count := range s.SectionFrequency {
		doc.SectionFrequency[heading] = count
	}
	if s.TimeSpan != nil {
		doc.TimeSpan = &ExportTimeSpan{
			Start:        s.TimeSpan.Start.Format(time.RFC3339),
			End:          s.TimeSpan.End.Format(time.RFC3339),
			DurationDays: s.TimeSpan.DurationDays,
		}
	}
	return doc
}

// WriteJSON exports the snapshot to path as pretty-printed UTF-8 JSON.
func WriteJSON(path string, s *Snapshot) error {
	if path == "" {
		return fmt.Errorf("WriteJSON: path is empty")
	}
	if err := fileutils.WriteJSONFileAtomic(path, BuildExport(s), true); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	return nil
}

// ExportSchema reflects ExportDocument into a pretty-printed JSON schema so
// downstream consumers can validate export files.
func ExportSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(ExportDocument{})
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("ExportSchema: marshal: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("ExportSchema: reparse: %w", err)
	}
	pretty, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ExportSchema: indent: %w", err)
	}
	return pretty, nil
}

// WriteSchema writes the export schema to path.
func WriteSchema(path string) error {
	if path == "" {
		return fmt.Errorf("WriteSchema: path is empty")
	}
	b, err := ExportSchema()
	if err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomicSameDir(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("WriteSchema: write: %w", err)
	}
	return nil
}
