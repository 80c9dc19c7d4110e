package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Section names the extractors and renderers consume. Matching is exact
// (case-sensitive) against the parsed heading text.
const (
	SectionRisks       = "What Could Go Wrong"
	SectionSystemState = "Current System State"
	SectionIdentity    = "Project Identity"
)

// UnknownTimestamp is used when a filename carries no timestamp token.
const UnknownTimestamp = "Unknown"

// timestampTokenRe matches the display token embedded in handoff filenames,
// e.g. "05Jan2025-1430". The first match in the filename wins.
var timestampTokenRe = regexp.MustCompile(`\d{2}[A-Za-z]{3}\d{4}-\d{4}`)

// HandoffDocument is one parsed checkpoint file.
type HandoffDocument struct {
	Path     string
	Filename string

	// TimestampToken is display-only. All chronological ordering and
	// duration math uses ModifiedAt instead.
	TimestampToken string

	ModifiedAt time.Time
	Sections   *SectionMap
}

// ParseSections splits a document's full text into an ordered heading -> body
// mapping. A line starting with exactly "## " opens a new section; everything
// up to the next such line forms the body, joined with newlines and trimmed.
// Material before the first heading is discarded. A repeated heading replaces
// the earlier body (last write wins).
func ParseSections(content string) *SectionMap {
	sections := NewSectionMap()

	var (
		current    string
		hasCurrent bool
		body       []string
	)
	flush := func() {
		if hasCurrent {
			sections.Set(current, strings.TrimSpace(strings.Join(body, "\n")))
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			current = strings.TrimSpace(line[3:])
			hasCurrent = true
			body = body[:0]
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// TimestampToken extracts the first DD<Mon><YYYY>-HHMM token from a filename,
// or UnknownTimestamp when none is present.
func TimestampToken(filename string) string {
	if tok := timestampTokenRe.FindString(filename); tok != "" {
		return tok
	}
	return UnknownTimestamp
}

// ParseHandoff reads and parses one handoff document. The file handle is
// released before returning; documents are never re-read within a run.
func ParseHandoff(path string) (HandoffDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return HandoffDocument{}, fmt.Errorf("ParseHandoff: read %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return HandoffDocument{}, fmt.Errorf("ParseHandoff: stat %s: %w", path, err)
	}

	filename := filepath.Base(path)
	return HandoffDocument{
		Path:           path,
		Filename:       filename,
		TimestampToken: TimestampToken(filename),
		ModifiedAt:     info.ModTime(),
		Sections:       ParseSections(string(content)),
	}, nil
}
