// Package settings reads and writes the persistent handoff tool settings.
//
// Settings live in a small YAML file, either per project
// (<project>/.handoff/config.yaml) or globally ($HOME/.handoff/config.yaml).
// The project file wins when both exist.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics/fileutils"
)

const (
	// Dir is the name of the settings directory inside a project root or
	// the user's home directory.
	Dir = ".handoff"

	fileName = "config.yaml"

	MethodCompact = "compact"
	MethodHandoff = "handoff"

	ModeClipboard = "clipboard"
	ModeAutoPaste = "auto-paste"

	defaultThreshold = 80
)

// Settings models the config.yaml contents.
type Settings struct {
	// ContinuationMethod selects how context is carried across a clear:
	// "compact" or "handoff".
	ContinuationMethod string `yaml:"continuation_method"`

	// HandoffMode selects resume-prompt delivery when the method is
	// "handoff": "clipboard" or "auto-paste".
	HandoffMode string `yaml:"handoff_mode"`

	// HandoffDir optionally overrides corpus discovery for the analytics CLI.
	HandoffDir string `yaml:"handoff_dir,omitempty"`

	// ContextThreshold is the usage percentage at which the monitor starts
	// recommending a handoff.
	ContextThreshold int `yaml:"context_threshold"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		ContinuationMethod: MethodHandoff,
		HandoffMode:        ModeClipboard,
		ContextThreshold:   defaultThreshold,
	}
}

func (s *Settings) applyDefaults() {
	if s.ContinuationMethod == "" {
		s.ContinuationMethod = MethodHandoff
	}
	if s.HandoffMode == "" {
		s.HandoffMode = ModeClipboard
	}
	if s.ContextThreshold == 0 {
		s.ContextThreshold = defaultThreshold
	}
}

func (s *Settings) normalize() {
	s.ContinuationMethod = strings.ToLower(strings.TrimSpace(s.ContinuationMethod))
	s.HandoffMode = strings.ToLower(strings.TrimSpace(s.HandoffMode))
	s.HandoffDir = strings.TrimSpace(s.HandoffDir)
}

// Validate rejects out-of-domain values.
func (s Settings) Validate() error {
	switch s.ContinuationMethod {
	case MethodCompact, MethodHandoff:
	default:
		return fmt.Errorf("continuation_method must be %q or %q", MethodCompact, MethodHandoff)
	}
	switch s.HandoffMode {
	case ModeClipboard, ModeAutoPaste:
	default:
		return fmt.Errorf("handoff_mode must be %q or %q", ModeClipboard, ModeAutoPaste)
	}
	if s.ContextThreshold < 1 || s.ContextThreshold > 100 {
		return fmt.Errorf("context_threshold must be between 1 and 100")
	}
	return nil
}

// ProjectPath returns the project-scope settings file path.
func ProjectPath(projectDir string) string {
	return filepath.Join(projectDir, Dir, fileName)
}

// GlobalPath returns the global-scope settings file path.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("settings: resolve home dir: %w", err)
	}
	return filepath.Join(home, Dir, fileName), nil
}

// Load resolves settings for a project: the project file if present, then the
// global file, then defaults. The second return names the file that supplied
// the values ("" when defaults were used).
func Load(projectDir string) (Settings, string, error) {
	projectPath := ProjectPath(projectDir)
	if fileutils.FileExists(projectPath) {
		s, err := LoadFile(projectPath)
		return s, projectPath, err
	}

	globalPath, err := GlobalPath()
	if err == nil && fileutils.FileExists(globalPath) {
		s, err := LoadFile(globalPath)
		return s, globalPath, err
	}

	return Default(), "", nil
}

// LoadFile reads one settings file. A missing file yields defaults.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	s.applyDefaults()
	s.normalize()
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings: %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings file at path atomically, creating the settings
// directory as needed.
func Save(path string, s Settings) error {
	s.applyDefaults()
	s.normalize()
	if err := s.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := fileutils.WriteFileAtomicSameDir(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}
