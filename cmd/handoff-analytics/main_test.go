package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics"
)

func setExportFlags(t *testing.T, format, out string, schema bool) {
	t.Helper()
	exportFormat, outPath, writeSchema = format, out, schema
	t.Cleanup(func() {
		exportFormat, outPath, writeSchema = "", "", false
	})
}

func TestMaybeExport_NoFormatDoesNothing(t *testing.T) {
	setExportFlags(t, "", "", false)

	handled, err := maybeExport(&analytics.Snapshot{})
	if err != nil {
		t.Fatalf("maybeExport: %v", err)
	}
	if handled {
		t.Fatalf("no format must not claim the run")
	}
}

func TestMaybeExport_JSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "export.json")
	setExportFlags(t, "json", out, false)

	handled, err := maybeExport(&analytics.Snapshot{TotalDocuments: 1})
	if err != nil {
		t.Fatalf("maybeExport: %v", err)
	}
	if !handled {
		t.Fatalf("json export must claim the run")
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"total_documents": 1`) {
		t.Fatalf("export content=%s", data)
	}
}

func TestMaybeExport_JSONWithSchema(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })
	setExportFlags(t, "json", "", true)

	handled, err := maybeExport(&analytics.Snapshot{})
	if err != nil {
		t.Fatalf("maybeExport: %v", err)
	}
	if !handled {
		t.Fatalf("json export must claim the run")
	}
	for _, name := range []string{defaultJSONOut, defaultSchemaOut} {
		if _, err := os.Stat(name); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func TestMaybeExport_UnknownFormat(t *testing.T) {
	setExportFlags(t, "yaml", "", false)

	handled, err := maybeExport(&analytics.Snapshot{})
	if !handled || err == nil {
		t.Fatalf("handled=%v err=%v, want claimed run with error", handled, err)
	}
}

func TestRunReport_RejectsUnknownExportFormat(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "AI_Continuation_Document-01Nov2025-0900.md")
	if err := os.WriteFile(doc, []byte("## Project Identity\nx\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	corpusDir = dir
	t.Cleanup(func() { corpusDir = "" })
	setExportFlags(t, "yaml", "", false)

	err := runReport(reportCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown export format") {
		t.Fatalf("err=%v, want unknown export format", err)
	}
}

func TestWriteReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	setExportFlags(t, "", out, false)

	snap := &analytics.Snapshot{
		TotalDocuments: 1,
		Issues: []analytics.Issue{{
			Kind:        analytics.KindRisk,
			Description: "something may slip",
			Timestamp:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		}},
	}
	if err := writeReport(snap); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "something may slip") {
		t.Fatalf("report missing issue row")
	}
}
