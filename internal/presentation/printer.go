package presentation

import (
	"fmt"
	"io"
	"strings"

	"usbcopy/internal/app"
	"usbcopy/internal/domain"
)

const bytesPerMB = 1024 * 1024

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// PrintSimulation writes the full simulation report: the configured exclusion
// lists, one line per file that would be copied, the size summary, and the
// two per-extension tables.
func (p Printer) PrintSimulation(excl domain.ExclusionConfig, plan domain.CopyPlan) {
	fmt.Fprintln(p.Writer, "# Simulated Copy Log")
	fmt.Fprintln(p.Writer)

	p.printList("## Ignored Directories", excl.DirNames())
	p.printList("## Ignored Extensions", excl.Suffixes())
	p.printList("## Ignored Files", excl.FileNames())

	fmt.Fprintln(p.Writer, "## Files That Would Be Copied")
	fmt.Fprintln(p.Writer)
	for _, item := range plan.Items {
		fmt.Fprintf(p.Writer, "Would copy: %s -> %s\n", item.SourcePath, item.TargetPath)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "## Summary")
	fmt.Fprintf(p.Writer, "Total size to copy: %.2f MB\n", megabytes(plan.CopiedBytes))
	fmt.Fprintf(p.Writer, "Total size ignored: %.2f MB\n", megabytes(plan.IgnoredBytes))

	p.printExtTable("Copied Extensions", plan.CopiedStats)
	p.printExtTable("Ignored Extensions", plan.IgnoredStats)

	if p.Verbose && len(plan.Warnings) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "Warnings:")
		for _, warning := range plan.Warnings {
			fmt.Fprintln(p.Writer, "- "+warning)
		}
	}
}

// PrintExecution writes the post-copy summary.
func (p Printer) PrintExecution(plan domain.CopyPlan, res app.ExecResult) {
	fmt.Fprintf(p.Writer, "Copied %d files (%.2f MB) to %s.\n",
		res.Copied, megabytes(res.CopiedBytes), plan.TargetDir)
	if res.Failed > 0 {
		fmt.Fprintf(p.Writer, "%d files failed to copy; see the log above.\n", res.Failed)
	}
	fmt.Fprintf(p.Writer, "Ignored %.2f MB (%d pruned directories).\n",
		megabytes(plan.IgnoredBytes), len(plan.PrunedDirs))

	if p.Verbose && len(plan.Warnings) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "Warnings:")
		for _, warning := range plan.Warnings {
			fmt.Fprintln(p.Writer, "- "+warning)
		}
	}
}

func (p Printer) printList(title string, items []string) {
	fmt.Fprintln(p.Writer, title)
	for _, item := range items {
		fmt.Fprintln(p.Writer, "- "+item)
	}
	fmt.Fprintln(p.Writer)
}

func (p Printer) printExtTable(title string, stats domain.ExtStats) {
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "### %s\n", title)
	fmt.Fprintf(p.Writer, "%-12s%10s%15s\n", "Extension", "Count", "Size (MB)")
	fmt.Fprintln(p.Writer, strings.Repeat("-", 37))
	for _, row := range stats.Rows() {
		ext := row.Ext
		if ext == "" {
			ext = "[no ext]"
		}
		fmt.Fprintf(p.Writer, "%-12s%10d%15.2f\n", ext, row.Count, megabytes(row.Bytes))
	}
}

func megabytes(b int64) float64 {
	return float64(b) / bytesPerMB
}
