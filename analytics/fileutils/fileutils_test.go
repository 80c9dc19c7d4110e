package fileutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFirstLine(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"one\ntwo\nthree", "one"},
		{"  padded  \nrest", "padded"},
		{"single", "single"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FirstLine(tc.in); got != tc.want {
			t.Fatalf("FirstLine(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("short string changed: %q", got)
	}
	if got := Truncate("hello", 3); got != "hel" {
		t.Fatalf("Truncate=%q", got)
	}
	if got := Truncate("hello", 0); got != "hello" {
		t.Fatalf("non-positive max must be a no-op: %q", got)
	}
	// Rune-aware: multi-byte characters count as one.
	if got := Truncate("✅⚠️❓", 2); got != "✅⚠" {
		t.Fatalf("rune truncation=%q", got)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(path) {
		t.Fatalf("FileExists=false for existing file")
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Fatalf("FileExists=true for missing file")
	}
}

func TestWriteJSONFileAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteJSONFileAtomic(path, map[string]int{"a": 1}, true); err != nil {
		t.Fatalf("WriteJSONFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n  \"a\": 1\n}\n"
	if string(data) != want {
		t.Fatalf("content=%q, want %q", data, want)
	}
}

func TestWriteFileAtomicSameDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.txt")
	if err := WriteFileAtomicSameDir(path, []byte("payload"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomicSameDir: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("content=%q", data)
	}

	// Overwrite replaces the file and leaves no temp debris.
	if err := WriteFileAtomicSameDir(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".tmp_handoff_") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("content=%q", data)
	}
}
