package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theimaginaryfoundation/handoff-analytics/analytics"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show overall summary",
	RunE:  runSummary,
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show project timeline",
	RunE:  runTimeline,
}

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Show confidence trends",
	RunE:  runConfidence,
}

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Show extracted issues",
	RunE:  runIssues,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate full HTML report",
	RunE:  runReport,
}

func runSummary(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	if handled, err := maybeExport(snap); handled {
		return err
	}
	fmt.Print(analytics.RenderSummary(snap))
	return nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	if handled, err := maybeExport(snap); handled {
		return err
	}
	if len(snap.Documents) == 0 {
		fmt.Println("No documents to display.")
		os.Exit(1)
	}
	fmt.Print(analytics.RenderTimeline(snap))
	return nil
}

func runConfidence(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	if handled, err := maybeExport(snap); handled {
		return err
	}
	if len(snap.ConfidenceTrends) == 0 {
		fmt.Println("No confidence data found.")
		os.Exit(1)
	}
	fmt.Print(analytics.RenderConfidence(snap))
	return nil
}

func runIssues(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	if handled, err := maybeExport(snap); handled {
		return err
	}
	if len(snap.Issues) == 0 {
		fmt.Println("No issues found.")
		os.Exit(1)
	}
	fmt.Print(analytics.RenderIssues(snap))
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	if exportFormat != "" && exportFormat != "html" {
		handled, err := maybeExport(snap)
		if handled {
			return err
		}
	}
	return writeReport(snap)
}

func writeReport(snap *analytics.Snapshot) error {
	out := outPath
	if out == "" {
		out = defaultHTMLOut
	}
	if err := analytics.WriteHTML(out, snap, time.Now()); err != nil {
		return err
	}
	fmt.Printf("HTML report generated: %s\n", out)
	return nil
}
