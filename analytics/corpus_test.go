package analytics

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeDoc creates one handoff file with a fixed modification time. Shared by
// the corpus and aggregation tests.
func writeDoc(t *testing.T, dir, name, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return path
}

func TestFindDir_SearchesAncestors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	corpus := filepath.Join(root, "docs", "handoffs")
	if err := os.MkdirAll(corpus, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(root, "src", "deep", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := NewLocator("").FindDir(nested)
	if got != corpus {
		t.Fatalf("FindDir=%q, want %q", got, corpus)
	}
}

func TestFindDir_PrefersNearestDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outer := filepath.Join(root, "docs", "handoffs")
	inner := filepath.Join(root, "sub", "docs", "handoffs")
	for _, dir := range []string{outer, inner} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	got := NewLocator("").FindDir(filepath.Join(root, "sub"))
	if got != inner {
		t.Fatalf("FindDir=%q, want nearest %q", got, inner)
	}
}

func TestFindDir_UnresolvedReturnsDefaultPath(t *testing.T) {
	t.Parallel()

	got := NewLocator("").FindDir(t.TempDir())
	if got != filepath.FromSlash(DefaultCorpusPath) {
		t.Fatalf("FindDir=%q, want unresolved default", got)
	}
}

func TestList_FiltersAndSortsNewestFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	old := writeDoc(t, dir, "AI_Continuation_Document-01Jan2025-1200.md", "## A\nx\n", base)
	fresh := writeDoc(t, dir, "AI_Continuation_Document-03Jan2025-1200.md", "## A\nx\n", base.Add(48*time.Hour))
	mid := writeDoc(t, dir, "AI_Continuation_Document-02Jan2025-1200.md", "## A\nx\n", base.Add(24*time.Hour))
	writeDoc(t, dir, "README.md", "not a handoff", base)
	if err := os.MkdirAll(filepath.Join(dir, "AI_Continuation_Document-sub.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := NewLocator("").List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{fresh, mid, old}
	if len(paths) != len(want) {
		t.Fatalf("len=%d, want %d: %v", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths[%d]=%q, want %q", i, paths[i], want[i])
		}
	}
}

func TestList_MissingDirectoryYieldsEmpty(t *testing.T) {
	t.Parallel()

	paths, err := NewLocator("").List(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("paths=%v, want empty", paths)
	}
}
