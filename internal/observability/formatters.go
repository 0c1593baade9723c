// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/progress"
	"github.com/jonathan/ae-qualify/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProgressReport outputs a human-readable completion summary for one form.
func (p *Printer) PrintProgressReport(form types.FormType, report progress.Report) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Completion: %d%%\n", report.Percentage))
	sb.WriteString(fmt.Sprintf("Filled:     %d of %d required fields\n",
		report.FilledFields, report.TotalRequiredFields))

	if len(report.MissingFields) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(report.MissingFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingFields[i].Label))
		}
		if len(report.MissingFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingFields)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("%s Progress", form), strings.TrimRight(sb.String(), "\n"))
}

// PrintBatchOutcome outputs a summary of one upload batch.
func (p *Printer) PrintBatchOutcome(batch autofill.BatchOutcome) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Files:  %d\n", len(batch.Outcomes)))
	sb.WriteString(fmt.Sprintf("Merged: %d\n", batch.Succeeded()))
	sb.WriteString(fmt.Sprintf("Failed: %d", batch.Failed()))

	for _, o := range batch.Outcomes {
		if o.Err != nil {
			sb.WriteString(fmt.Sprintf("\n  ✗ %s: %v", o.FileName, o.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("\n  ✓ %s → %s", o.FileName, o.Target))
		if o.Result != nil {
			sb.WriteString(fmt.Sprintf(" (%.0f%% confidence)", o.Result.Confidence*100))
		}
	}

	p.printBox("Document Extraction", sb.String())
}

// PrintStateSummary outputs a snapshot overview: projects, assets, and the
// active form.
func (p *Printer) PrintStateSummary(state types.DashboardState) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Active form:    %s\n", state.ActiveForm))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(state.Projects)))
	sb.WriteString(fmt.Sprintf("Uploaded files: %d", len(state.UploadedAssets)))

	for _, project := range state.Projects {
		marker := "  "
		if project.ID == state.ActiveProjectID {
			marker = "▸ "
		}
		sb.WriteString(fmt.Sprintf("\n%s%s", marker, project.Name))

		count := 0
		for _, a := range state.UploadedAssets {
			if a.ProjectID == project.ID {
				count++
			}
		}
		if count > 0 {
			sb.WriteString(fmt.Sprintf(" (%d files)", count))
		}
	}

	p.printBox("Dashboard State", sb.String())
}

// PrintExportResult outputs the outcome of one PDF export.
func (p *Printer) PrintExportResult(fileName string, size int) {
	p.printBox("Export", fmt.Sprintf("File: %s\nSize: %d bytes", fileName, size))
}
