// Command handoff-config is the interactive settings wizard for the handoff
// tools. It walks through continuation method, resume-prompt delivery, and
// scope, then writes the YAML settings file for the chosen scope.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics/fileutils"
	"github.com/theimaginaryfoundation/handoff-analytics/settings"
)

const version = "1.0.0"

func main() {
	check := flag.Bool("check", false, "Show existing configuration without running the wizard")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("handoff-config v%s\n", version)
		return
	}
	if *check {
		if err := runCheck(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runWizard(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runWizard() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	existing, source, err := settings.Load(wd)
	if err != nil {
		return err
	}
	if source != "" {
		fmt.Printf("Existing configuration detected: %s\n", source)
	}

	final, err := tea.NewProgram(newWizard(existing)).Run()
	if err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}

	m, ok := final.(wizardModel)
	if !ok {
		return fmt.Errorf("unexpected wizard model %T", final)
	}

	switch m.outcome {
	case outcomeDeclined:
		fmt.Println("Exiting without making changes.")
		return nil
	case outcomeAborted:
		fmt.Println("Configuration cancelled.")
		os.Exit(1)
	}

	path := settings.ProjectPath(wd)
	if m.scope == ScopeGlobal {
		path, err = settings.GlobalPath()
		if err != nil {
			return err
		}
	}
	if err := settings.Save(path, m.result); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Configuration saved successfully.")
	fmt.Printf("Location: %s\n", path)
	fmt.Println()
	fmt.Printf("  continuation_method: %s\n", m.result.ContinuationMethod)
	fmt.Printf("  handoff_mode:        %s\n", m.result.HandoffMode)
	fmt.Println()
	fmt.Println("Run this wizard again anytime to change these settings.")
	return nil
}

// runCheck prints the settings files for both scopes without writing
// anything.
func runCheck() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	fmt.Println("Existing configuration:")
	printScope("Project", settings.ProjectPath(wd))

	globalPath, err := settings.GlobalPath()
	if err != nil {
		return err
	}
	printScope("Global", globalPath)
	return nil
}

func printScope(label, path string) {
	if !fileutils.FileExists(path) {
		fmt.Printf("  %-8s %s (not found)\n", label+":", path)
		return
	}
	s, err := settings.LoadFile(path)
	if err != nil {
		fmt.Printf("  %-8s %s (unreadable: %v)\n", label+":", path, err)
		return
	}
	fmt.Printf("  %-8s %s\n", label+":", path)
	fmt.Printf("           continuation_method: %s\n", s.ContinuationMethod)
	fmt.Printf("           handoff_mode:        %s\n", s.HandoffMode)
}
