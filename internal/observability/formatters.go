// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-skill-mapper/internal/types"
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

// PrintJobs outputs a summary of a fetched jobs snapshot.
func (p *Printer) PrintJobs(file *types.JobsFile) {
	if file == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Board:    %s\n", file.BoardToken))
	sb.WriteString(fmt.Sprintf("Fetched:  %s\n", file.FetchedAt))
	sb.WriteString(fmt.Sprintf("Jobs:     %d\n", file.TotalJobs))

	if len(file.Jobs) > 0 {
		sb.WriteString("\n")
		count := min(len(file.Jobs), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := file.Jobs[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", job.Title, job.Location))
		}
		if len(file.Jobs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(file.Jobs)-maxItemsToShow))
		}
	}

	p.printBox("FETCHED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillRecord outputs a human-readable summary of a classified job.
func (p *Printer) PrintSkillRecord(jobTitle string, record *types.SkillRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", jobTitle))
	sb.WriteString("\n")

	if record.Technical.Len() > 0 {
		sb.WriteString("Technical:\n")
		keys := record.Technical.Keys()
		count := min(len(keys), maxItemsToShow)
		for i := 0; i < count; i++ {
			skills, _ := record.Technical.Get(keys[i])
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", keys[i], len(skills)))
		}
		if len(keys) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more categories\n", len(keys)-maxItemsToShow))
		}
	}

	buckets := []struct {
		label  string
		skills []string
	}{
		{"Soft skills", record.SoftSkills},
		{"Domains", record.Domains},
		{"Certifications", record.Certifications},
		{"Education", record.Education},
		{"Experience", record.ExperienceRequirements},
	}
	for _, bucket := range buckets {
		if len(bucket.skills) > 0 {
			sb.WriteString(fmt.Sprintf("%s: %d\n", bucket.label, len(bucket.skills)))
		}
	}

	p.printBox("CLASSIFIED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTree outputs a summary of a built skill tree: its size and the first
// few collected skills.
func (p *Printer) PrintTree(meta types.TreeMetadata, nodeCount int, skills []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s (#%d)\n", meta.JobTitle, meta.JobID))
	sb.WriteString(fmt.Sprintf("Nodes:    %d\n", nodeCount))
	sb.WriteString(fmt.Sprintf("Skills:   %d\n", len(skills)))

	if len(skills) > 0 {
		shown := skills
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		joined := strings.Join(shown, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("          %s\n", joined))
	}

	p.printBox("SKILL TREE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the outcome of a generate run.
func (p *Printer) PrintRunSummary(summary *types.RunSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("Processed:  %d\n", summary.TotalJobsProcessed))
	sb.WriteString(fmt.Sprintf("Successful: %d\n", summary.Successful))
	sb.WriteString(fmt.Sprintf("Failed:     %d", summary.Failed))

	p.printBox("RUN SUMMARY", sb.String())
}
