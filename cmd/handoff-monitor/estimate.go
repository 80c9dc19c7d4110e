package main

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// Estimation constants: roughly 4 bytes per token against a 200k window.
const (
	bytesPerToken = 4
	windowTokens  = 200_000
	barWidth      = 50
)

// Usage is one context-usage estimate.
type Usage struct {
	TokensUsed  int64   `json:"tokens_used"`
	TokensTotal int64   `json:"tokens_total"`
	Percentage  float64 `json:"percentage"`
	Status      string  `json:"status"`
	FileSize    int64   `json:"file_size"`
	ContextPath string  `json:"context_path"`
}

// contextFileCandidates lists known context storage locations, most specific
// first. The first existing file wins.
func contextFileCandidates(home string) []string {
	return []string{
		filepath.Join(home, ".claude", "context", "current.json"),
		filepath.Join(home, ".claude", "sessions", "current", "context.json"),
		filepath.Join(home, ".config", "claude-code", "context.json"),
		filepath.Join(home, "Library", "Application Support", "Claude Code", "context.json"),
	}
}

// sessionDirCandidates lists directories whose session files are summed when
// no single context file exists.
func sessionDirCandidates(home string) []string {
	return []string{
		filepath.Join(home, ".claude", "sessions"),
		filepath.Join(home, "Library", "Application Support", "Claude Code", "sessions"),
	}
}

// EstimateUsage infers context-window usage from file sizes under home.
// Exact token counts are not exposed anywhere, so this is a heuristic:
// bytes / 4 against a 200k-token window, capped at 100%.
func EstimateUsage(home string) Usage {
	var (
		size        int64
		contextPath = "Not found"
	)

	if path, ok := findContextFile(home); ok {
		contextPath = path
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}
	} else {
		for _, dir := range sessionDirCandidates(home) {
			size += sumJSONSizes(dir)
		}
	}

	tokens := size / bytesPerToken
	pct := math.Min(100, float64(tokens)/float64(windowTokens)*100)
	pct = math.Round(pct*10) / 10

	return Usage{
		TokensUsed:  tokens,
		TokensTotal: windowTokens,
		Percentage:  pct,
		Status:      statusFor(pct),
		FileSize:    size,
		ContextPath: contextPath,
	}
}

func findContextFile(home string) (string, bool) {
	for _, path := range contextFileCandidates(home) {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// sumJSONSizes totals the sizes of all .json files under dir, recursively.
// Unreadable entries are skipped rather than failing the estimate.
func sumJSONSizes(dir string) int64 {
	var total int64
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}

func statusFor(pct float64) string {
	switch {
	case pct >= 90:
		return "CRITICAL"
	case pct >= 80:
		return "WARNING"
	case pct >= 60:
		return "MODERATE"
	default:
		return "OK"
	}
}

// FormatBar renders a fixed-width usage bar, heavy-filled once the status is
// worth acting on.
func FormatBar(u Usage, width int) string {
	if width <= 0 {
		width = barWidth
	}
	filled := int(u.Percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}

	fillChar := "│"
	if u.Status == "CRITICAL" || u.Status == "WARNING" {
		fillChar = "█"
	}

	var b []byte
	for i := 0; i < filled; i++ {
		b = append(b, fillChar...)
	}
	for i := filled; i < width; i++ {
		b = append(b, "░"...)
	}
	return string(b)
}
