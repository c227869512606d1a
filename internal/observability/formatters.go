// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-layout-engine/internal/types"
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

// PrintSectionDimensions outputs the analyzed space requirements per section.
func (p *Printer) PrintSectionDimensions(sections []types.SectionDimensions) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed %d sections:\n\n", len(sections)))

	for i, section := range sections {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", section.SectionID, section.Priority))
		sb.WriteString(fmt.Sprintf("  min/pref/max: %.0f / %.0f / %.0f mm\n",
			section.MinHeight, section.PreferredHeight, section.MaxHeight))
		if section.CanSplit {
			sb.WriteString("  splittable\n")
		}
		if section.ItemCount > 0 {
			sb.WriteString(fmt.Sprintf("  items: %d\n", section.ItemCount))
		}
		if i < len(sections)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTION ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLayoutResult outputs a human-readable summary of the computed layout.
func (p *Printer) PrintLayoutResult(result *types.LayoutResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d/100\n", result.LayoutScore))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", result.TotalPages))

	if len(result.OverflowSections) > 0 {
		overflow := strings.Join(result.OverflowSections, ", ")
		if len(overflow) > 40 {
			overflow = overflow[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Overflow: %s\n", overflow))
	}

	for pageIdx, page := range result.Pages {
		sb.WriteString(fmt.Sprintf("\nPage %d:\n", pageIdx+1))
		count := min(len(page), maxItemsToShow)
		for i := 0; i < count; i++ {
			element := page[i]
			sb.WriteString(fmt.Sprintf("  %-20s y=%-6.1f h=%.1f\n",
				element.ElementID, element.Y, element.Height))
		}
		if len(page) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more elements\n", len(page)-maxItemsToShow))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(result.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("LAYOUT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
