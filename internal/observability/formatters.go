// Package observability provides formatted output utilities for the CLI
// inspection commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel/career-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
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

// PrintRoadmap outputs a human-readable summary of a roadmap.
func (p *Printer) PrintRoadmap(r *types.Roadmap) {
	if r == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:     %s\n", r.Title))
	sb.WriteString(fmt.Sprintf("Timeline:  %d months\n", r.EstimatedTimelineMonths))
	sb.WriteString(fmt.Sprintf("Difficulty: %d/10\n", r.DifficultyScore))
	sb.WriteString("\n")

	if len(r.TargetCompanies) > 0 {
		sb.WriteString("Targets:\n")
		count := min(len(r.TargetCompanies), 3)
		for i := 0; i < count; i++ {
			t := r.TargetCompanies[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", t.Company, t.Position))
		}
		if len(r.TargetCompanies) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.TargetCompanies)-3))
		}
		sb.WriteString("\n")
	}

	if len(r.Milestones) > 0 {
		sb.WriteString(fmt.Sprintf("Milestones (%d):\n", len(r.Milestones)))
		count := min(len(r.Milestones), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := r.Milestones[i]
			mark := " "
			if m.Completed {
				mark = "✓"
			}
			title := m.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", mark, title))
			sb.WriteString(fmt.Sprintf("      %s, %d %s\n", m.Type, m.TimeEstimate.Amount, m.TimeEstimate.Unit))
		}
		if len(r.Milestones) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Milestones)-maxItemsToShow))
		}
	}

	p.printBox("CAREER ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProgress outputs a progress report.
func (p *Printer) PrintProgress(report types.ProgressReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Completed:  %d of %d milestones (%d%%)\n",
		report.CompletedMilestones, report.TotalMilestones, report.CompletionPercentage))
	sb.WriteString(fmt.Sprintf("Timeline:   %d%% elapsed\n", report.TimeProgress))
	sb.WriteString(fmt.Sprintf("Skills:     %d%% of skill milestones done\n", report.SkillImprovementScore))
	sb.WriteString("\n")

	if report.IsOnTrack {
		sb.WriteString("Status:     ✅ on track\n")
	} else {
		sb.WriteString("Status:     ⚠ behind schedule\n")
	}
	sb.WriteString(fmt.Sprintf("Remaining:  %d days (~%d months)", report.RemainingTime.Days, report.RemainingTime.Months))

	p.printBox("PROGRESS REPORT", sb.String())
}

// PrintCompatibility outputs a compatibility report.
func (p *Printer) PrintCompatibility(report *types.CompatibilityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match score: %d/100", report.MatchScore))
	if report.Heuristic {
		sb.WriteString(" (heuristic)")
	}
	sb.WriteString("\n\n")

	if len(report.MatchingStrengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(report.MatchingStrengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MatchingStrengths[i]))
		}
		if len(report.MatchingStrengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MatchingStrengths)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		count := min(len(report.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", report.Gaps[i]))
		}
		if len(report.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Gaps)-maxItemsToShow))
		}
	}

	p.printBox("COMPATIBILITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
