// Command handoff-analytics generates insights from AI continuation
// documents: summaries, timelines, confidence trends, and categorized
// issues, with JSON and HTML export.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics"
	"github.com/theimaginaryfoundation/handoff-analytics/settings"
)

// Default export targets, overridable with --out.
const (
	defaultJSONOut   = "handoff-analytics.json"
	defaultHTMLOut   = "handoff-report.html"
	defaultSchemaOut = "handoff-analytics.schema.json"
)

var (
	corpusDir    string
	exportFormat string
	outPath      string
	writeSchema  bool
	verbose      bool

	logger = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:   "handoff-analytics",
	Short: "Generate analytics from handoff documents",
	Long: `Analyze handoff history to identify trends, recurring issues,
confidence patterns, and project progression over time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zl, err := zap.NewDevelopment()
			if err == nil {
				logger = zl.Sugar()
			}
		}
	},
	RunE: runSummary,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&corpusDir, "dir", "d", "", "Handoff directory (default: discovered docs/handoffs)")
	rootCmd.PersistentFlags().StringVarP(&exportFormat, "export", "e", "", "Export format: json or html")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Export output path")
	rootCmd.PersistentFlags().BoolVar(&writeSchema, "schema", false, "With --export json, also write the export JSON schema")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose diagnostics")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSnapshot resolves the corpus, lists documents, and aggregates them.
// When no documents are found it prints the diagnostic and exits 1 itself,
// matching the CLI contract for an empty corpus.
func loadSnapshot() (*analytics.Snapshot, error) {
	dir := corpusDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		cfg, source, err := settings.Load(wd)
		if err != nil {
			return nil, err
		}
		if source != "" {
			logger.Debugw("loaded settings", "path", source)
		}
		if cfg.HandoffDir != "" {
			dir = cfg.HandoffDir
		} else {
			dir = analytics.NewLocator("").FindDir(wd)
		}
	}
	logger.Debugw("corpus directory", "dir", dir)

	paths, err := analytics.NewLocator("").List(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		fmt.Println("No handoff documents found.")
		fmt.Println("Create one with: /handoff")
		os.Exit(1)
	}
	logger.Debugw("documents listed", "count", len(paths))

	return analytics.Analyze(paths)
}

// maybeExport handles the --export flag. It reports whether an export ran in
// place of console rendering.
func maybeExport(snap *analytics.Snapshot) (bool, error) {
	switch exportFormat {
	case "":
		return false, nil
	case "json":
		out := outPath
		if out == "" {
			out = defaultJSONOut
		}
		if err := analytics.WriteJSON(out, snap); err != nil {
			return true, err
		}
		fmt.Printf("JSON export saved: %s\n", out)
		if writeSchema {
			if err := analytics.WriteSchema(defaultSchemaOut); err != nil {
				return true, err
			}
			fmt.Printf("Export schema saved: %s\n", defaultSchemaOut)
		}
		return true, nil
	case "html":
		return true, writeReport(snap)
	default:
		return true, fmt.Errorf("unknown export format %q (want json or html)", exportFormat)
	}
}
