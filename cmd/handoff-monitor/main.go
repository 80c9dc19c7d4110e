// Command handoff-monitor estimates context-window usage from session file
// sizes and recommends creating a handoff document when usage crosses the
// configured threshold.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theimaginaryfoundation/handoff-analytics/settings"
)

const checkInterval = 30 * time.Second

var statusStyles = map[string]lipgloss.Style{
	"OK":       lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77")),
	"MODERATE": lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD479")),
	"WARNING":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA552")),
	"CRITICAL": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
}

type config struct {
	Threshold   int
	Watch       bool
	JSON        bool
	InstallHook bool
}

func parseFlags(args []string) (config, error) {
	cfg := config{Threshold: defaultThreshold()}

	fs := flag.NewFlagSet("handoff-monitor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "Usage percentage that triggers the handoff recommendation")
	fs.BoolVar(&cfg.Watch, "watch", false, "Continuously monitor (update every 30s)")
	fs.BoolVar(&cfg.JSON, "json", false, "Output as JSON for scripting")
	fs.BoolVar(&cfg.InstallHook, "install-hook", false, "Show instructions for installing as a SessionStart hook")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.Threshold < 1 || cfg.Threshold > 100 {
		return config{}, fmt.Errorf("threshold must be between 1 and 100")
	}
	return cfg, nil
}

// defaultThreshold comes from the settings file when one exists.
func defaultThreshold() int {
	wd, err := os.Getwd()
	if err != nil {
		return settings.Default().ContextThreshold
	}
	s, _, err := settings.Load(wd)
	if err != nil {
		return settings.Default().ContextThreshold
	}
	return s.ContextThreshold
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("resolve home dir: %w", err).Error())
		os.Exit(2)
	}

	if cfg.InstallHook {
		printHookInstructions(cfg.Threshold)
		return
	}

	if cfg.Watch {
		watch(home, cfg.Threshold)
		return
	}

	usage := EstimateUsage(home)

	if cfg.JSON {
		out := struct {
			Usage
			Threshold     int  `json:"threshold"`
			ShouldHandoff bool `json:"should_handoff"`
		}{
			Usage:         usage,
			Threshold:     cfg.Threshold,
			ShouldHandoff: usage.Percentage >= float64(cfg.Threshold),
		}
		b, err := json.Marshal(out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
		fmt.Println(string(b))
	} else {
		printStatus(usage, cfg.Threshold)
	}

	if usage.Percentage >= float64(cfg.Threshold) {
		os.Exit(1)
	}
}

func printStatus(u Usage, threshold int) {
	rule := "============================================================"

	fmt.Printf("\n%s\n", rule)
	fmt.Println("  Context Monitor")
	fmt.Printf("  %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Printf("%s\n\n", rule)

	status := u.Status
	if style, ok := statusStyles[status]; ok {
		status = style.Render(status)
	}
	fmt.Printf("Status:         %s\n", status)
	fmt.Printf("Tokens Used:    %d / %d\n", u.TokensUsed, u.TokensTotal)
	fmt.Printf("Usage:          %.1f%%\n", u.Percentage)
	fmt.Printf("\n[%s] %.1f%%\n", FormatBar(u, barWidth), u.Percentage)

	switch {
	case u.Percentage >= float64(threshold):
		fmt.Printf("\n%s\n", rule)
		fmt.Println("  RECOMMENDATION: Run /handoff now")
		fmt.Printf("  Your context is at %.1f%% (threshold: %d%%)\n", u.Percentage, threshold)
		fmt.Printf("%s\n\n", rule)
	case u.Percentage >= float64(threshold)-10:
		fmt.Println("\n  Approaching threshold. Consider /handoff soon.")
	default:
		fmt.Println("\n  Context level is healthy.")
	}
}

// watch re-estimates every 30 seconds until interrupted. An interrupt during
// the sleep exits cleanly with no partial-output guarantee.
func watch(home string, threshold int) {
	fmt.Printf("Monitoring context usage (updating every %s)\n", checkInterval)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	printStatus(EstimateUsage(home), threshold)
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nMonitoring stopped.")
			return
		case <-ticker.C:
			printStatus(EstimateUsage(home), threshold)
		}
	}
}

func printHookInstructions(threshold int) {
	hook := map[string]map[string]string{
		"hooks": {
			"SessionStart": fmt.Sprintf("handoff-monitor -threshold %d", threshold),
		},
	}
	b, _ := json.MarshalIndent(hook, "", "  ")

	fmt.Println("\nHook Installation Instructions")
	fmt.Println("------------------------------")
	fmt.Println("Add the following to your ~/.claude/settings.json:")
	fmt.Println()
	fmt.Println(string(b))
	fmt.Println()
	fmt.Println("This runs the monitor at the start of each session and warns")
	fmt.Println("when context usage is above the threshold.")
}
