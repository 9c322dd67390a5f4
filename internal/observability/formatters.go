// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of a parsed resume record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Header.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Header.Email))
	if record.Header.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", record.Header.Location))
	}
	sb.WriteString(fmt.Sprintf("Updated:  %s\n", record.Header.LastUpdated))
	sb.WriteString("\n")

	if record.Education.University != "" {
		sb.WriteString(fmt.Sprintf("Education: %s", record.Education.University))
		if record.Education.Degree != "" {
			sb.WriteString(fmt.Sprintf(" — %s", record.Education.Degree))
		}
		sb.WriteString("\n\n")
	}

	categories := record.Header.Skills.Categories()
	if len(categories) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(categories), maxItemsToShow)
		for i := 0; i < count; i++ {
			skills, _ := record.Header.Skills.Get(categories[i])
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", categories[i], len(skills)))
		}
		if len(categories) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(categories)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Project entries:    %d", len(record.Projects)))

	p.printBox("Parsed Resume", sb.String())
}

// PrintStage reports a completed pipeline stage with a short detail string.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStage(name, detail string) {
	if detail == "" {
		fmt.Fprintf(p.out, "✓ %s\n", name)
		return
	}
	fmt.Fprintf(p.out, "✓ %s: %s\n", name, detail)
}
