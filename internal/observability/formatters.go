// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted terminal output
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

// PrintResumeSummary outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeSummary(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if resume.PersonalInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n", resume.PersonalInfo.Name))
	}
	if resume.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", resume.PersonalInfo.Email))
	}
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), 3)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-3))
		}
		sb.WriteString("\n")
	}

	if len(resume.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(resume.Projects)))
	}
	if len(resume.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education:      %d\n", len(resume.Education)))
	}
	if len(resume.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(resume.Certifications)))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs the job the interview targets.
func (p *Printer) PrintJob(job types.Job) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	}

	if job.Requirements != "" {
		sb.WriteString("\nRequirements:\n")
		lines := strings.Split(job.Requirements, "\n")
		count := min(len(lines), maxItemsToShow)
		for i := 0; i < count; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
		if len(lines) > maxItemsToShow {
			sb.WriteString("  ...\n")
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the scores and feedback for a finished interview.
func (p *Printer) PrintEvaluation(scores types.ScoreSet, feedback types.Feedback) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:        %3d / 100\n", scores.Overall))
	sb.WriteString(fmt.Sprintf("Technical:      %3d / 100\n", scores.Technical))
	sb.WriteString(fmt.Sprintf("Behavioral:     %3d / 100\n", scores.Behavioral))
	sb.WriteString(fmt.Sprintf("Communication:  %3d / 100\n", scores.Communication))

	writeList := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", header))
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}
	writeList("Strengths", feedback.Strengths)
	writeList("Weaknesses", feedback.Weaknesses)
	writeList("Suggestions", feedback.Suggestions)
	writeList("Per question", feedback.PerQuestion)

	p.printBox("INTERVIEW RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
