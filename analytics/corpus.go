package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultCorpusPath is the conventional location of handoff documents,
// relative to a project root.
const DefaultCorpusPath = "docs/handoffs"

// handoffGlob selects handoff documents inside a corpus directory.
const handoffGlob = "AI_Continuation_Document-*.md"

// Locator resolves the handoff corpus directory and lists its documents.
// The relative subpath it searches for is fixed at construction time.
type Locator struct {
	relPath string
}

// NewLocator returns a Locator for the given relative corpus subpath.
// An empty relPath means DefaultCorpusPath.
func NewLocator(relPath string) *Locator {
	if relPath == "" {
		relPath = DefaultCorpusPath
	}
	return &Locator{relPath: filepath.FromSlash(relPath)}
}

// FindDir searches startDir and then each of its ancestors (nearest first)
// for the corpus subpath, returning the first directory that exists. When no
// ancestor contains it, the unresolved subpath is returned as-is; callers
// must treat a non-existent result as "no corpus found".
func (l *Locator) FindDir(startDir string) string {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}

	dir := startDir
	for {
		candidate := filepath.Join(dir, l.relPath)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return l.relPath
}

// List returns the paths of all handoff documents directly inside corpusDir,
// sorted by modification time descending (newest first). Subdirectories are
// not searched. A missing corpus directory yields an empty listing, not an
// error.
func (l *Locator) List(corpusDir string) ([]string, error) {
	entries, err := os.ReadDir(corpusDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("List: read corpus dir: %w", err)
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var files []candidate
	for _, entry := range entries {
		matched, err := filepath.Match(handoffGlob, entry.Name())
		if err != nil || !matched {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, candidate{
			path:    filepath.Join(corpusDir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	// Entries arrive name-sorted from ReadDir, so a stable sort keeps ties
	// deterministic.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].modTime > files[j].modTime
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}
