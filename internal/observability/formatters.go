package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-search-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display per pipeline column
	maxItemsToShow = 5
)

// Printer handles formatted terminal output for the CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are wrapped.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %-*s │\n", inner, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobs outputs search results with their ids, scores and status.
func (p *Printer) PrintJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		p.printBox("JOBS", "No jobs yet. Run a search first.")
		return
	}

	var sb strings.Builder
	for i, job := range jobs {
		sb.WriteString(fmt.Sprintf("[%s] %s — %s\n", job.ID, job.Company, job.Title))
		sb.WriteString(fmt.Sprintf("    %s · match %d%% · %s\n", job.Location, job.MatchScore, job.Status))
		if job.WhyMatch != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", job.WhyMatch))
		}
		if job.URL != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", job.URL))
		}
		if i < len(jobs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("JOBS (%d)", len(jobs)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPipeline outputs one section per status column.
func (p *Printer) PrintPipeline(columns []types.PipelineColumn) {
	var sb strings.Builder
	for i, column := range columns {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", strings.ToUpper(string(column.Status)), len(column.Jobs)))
		if len(column.Jobs) == 0 {
			sb.WriteString("  No jobs\n")
		}
		count := min(len(column.Jobs), maxItemsToShow)
		for _, job := range column.Jobs[:count] {
			sb.WriteString(fmt.Sprintf("  • [%s] %s — %s\n", job.ID, job.Company, job.Title))
		}
		if len(column.Jobs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(column.Jobs)-maxItemsToShow))
		}
		if i < len(columns)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PIPELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHiringManager outputs the hiring-manager guess and alternate contacts.
func (p *Printer) PrintHiringManager(result *types.HiringManagerResult) {
	if result == nil {
		return
	}

	hm := result.HiringManager
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", hm.Name))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", hm.Title))
	sb.WriteString(fmt.Sprintf("LinkedIn:   %s\n", hm.LinkedInURL))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", hm.Confidence))
	if hm.Reasoning != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", hm.Reasoning))
	}

	if len(result.AlternateContacts) > 0 {
		sb.WriteString("\nAlternate contacts:\n")
		for _, c := range result.AlternateContacts {
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", c.Name, c.Title, c.Role))
			if c.LinkedInURL != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", c.LinkedInURL))
			}
		}
	}

	if result.SearchTips != "" {
		sb.WriteString(fmt.Sprintf("\nTip: %s\n", result.SearchTips))
	}

	p.printBox("HIRING MANAGER (unverified guess)", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDraft outputs an outreach draft for a job.
func (p *Printer) PrintDraft(job types.Job, draft string) {
	title := fmt.Sprintf("OUTREACH · %s — %s", job.Company, job.Title)
	p.printBox(title, fmt.Sprintf("%s\n\n(%d characters)", strings.TrimSpace(draft), len([]rune(draft))))
}

// PrintProfile outputs the current search profile.
func (p *Printer) PrintProfile(profile types.Profile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Targets:   %s\n", strings.Join(profile.TargetTitles, ", ")))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	sb.WriteString(fmt.Sprintf("Keywords:  %s\n", strings.Join(profile.Keywords, ", ")))
	sb.WriteString(fmt.Sprintf("Resume:    %d characters", len([]rune(profile.ResumeText))))
	p.printBox("PROFILE", sb.String())
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// wrap breaks a line into chunks of at most width runes, preferring word boundaries.
func wrap(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}

	var lines []string
	var current []rune
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width {
			if len(current) > 0 {
				lines = append(lines, string(current))
				current = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(current) == 0:
			current = w
		case len(current)+1+len(w) <= width:
			current = append(append(current, ' '), w...)
		default:
			lines = append(lines, string(current))
			current = w
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
