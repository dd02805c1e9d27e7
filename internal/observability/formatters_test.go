package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-search-agent/internal/types"
)

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobs([]types.Job{
		{ID: "1", Company: "Okta", Title: "Principal PM, AI & Automation", Location: "San Francisco, CA", MatchScore: 80, Status: types.StatusNew, WhyMatch: "Automation focus"},
		{ID: "2", Company: "Rippling", Title: "Director of Product, AI Platform", Location: "San Francisco, CA", MatchScore: 75, Status: types.StatusApplied},
	})
	output := buf.String()

	assert.Contains(t, output, "JOBS (2)")
	assert.Contains(t, output, "[1] Okta")
	assert.Contains(t, output, "match 80%")
	assert.Contains(t, output, "Automation focus")
	assert.Contains(t, output, "applied")
}

func TestPrintJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobs(nil)
	assert.Contains(t, buf.String(), "No jobs yet")
}

func TestPrintPipeline(t *testing.T) {
	var buf bytes.Buffer
	jobs := []types.Job{{ID: "1", Company: "Okta", Status: types.StatusInterested}}
	for i := 0; i < 7; i++ {
		jobs = append(jobs, types.Job{ID: "n", Company: "Acme", Status: types.StatusNew})
	}

	NewPrinter(&buf).PrintPipeline(types.GroupByStatus(jobs))
	output := buf.String()

	assert.Contains(t, output, "NEW (7)")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "INTERESTED (1)")
	assert.Contains(t, output, "INTERVIEWING (0)")
	assert.Contains(t, output, "No jobs")
}

func TestPrintHiringManager(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHiringManager(&types.HiringManagerResult{
		HiringManager: types.HiringManager{Name: "Dana Lee", Title: "VP Product", Confidence: types.ConfidenceHigh, Reasoning: "Owns the AI org"},
		AlternateContacts: []types.AlternateContact{
			{Name: "Sam Ortiz", Title: "Recruiter", Role: "Recruiter", LinkedInURL: "https://linkedin.com/in/samortiz"},
		},
		SearchTips: "Check the team page",
	})
	output := buf.String()

	assert.Contains(t, output, "Dana Lee")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "Sam Ortiz")
	assert.Contains(t, output, "Tip: Check the team page")
}

func TestPrintHiringManager_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHiringManager(nil)
	assert.Empty(t, buf.String())
}

func TestPrintDraft_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	draft := strings.Repeat("word ", 60)
	NewPrinter(&buf).PrintDraft(types.Job{Company: "Stripe", Title: "PM"}, draft)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), boxWidth)
	}
	assert.Contains(t, buf.String(), "OUTREACH · Stripe — PM")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrap("aaa bbb ccc", 7))
	assert.Equal(t, []string{"abcde", "fgh"}, wrap("abcdefgh", 5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "hé", truncate("héllo", 2))
}
