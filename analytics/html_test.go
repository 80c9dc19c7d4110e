package analytics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	generated := time.Date(2025, 9, 1, 12, 30, 45, 0, time.UTC)
	page, err := RenderHTML(snap, generated)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Generated: 2025-09-01 12:30:45",
		"<td>Status</td><td>3</td>",
		`class="confidence-high">2</td>`,
		`class="issue-bug"`,
		"Days Active",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
}

func TestRenderHTML_EscapesDocumentText(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{
		TotalDocuments: 1,
		Issues: []Issue{{
			Kind:        KindRisk,
			Description: "<script>alert(1)</script>",
			Timestamp:   time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		}},
	}
	page, err := RenderHTML(snap, time.Now())
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Fatalf("issue text not escaped:\n%s", page)
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Fatalf("escaped issue text missing:\n%s", page)
	}
}

func TestRenderHTML_NoTimeSpanHidesDaysActive(t *testing.T) {
	t.Parallel()

	page, err := RenderHTML(&Snapshot{}, time.Now())
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(page, "Days Active") {
		t.Fatalf("empty snapshot still renders a duration metric:\n%s", page)
	}
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.html")
	if err := WriteHTML(path, sampleSnapshot(), time.Now()); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Handoff Analytics Report") {
		t.Fatalf("report missing title")
	}
}
