package assistant

import (
	"strings"

	"github.com/jonathan/job-search-agent/internal/prompts"
	"github.com/jonathan/job-search-agent/internal/types"
)

// Resume prefix lengths, in runes, included in each prompt.
const (
	searchResumeLimit   = 1000
	outreachResumeLimit = 3000
)

// Substitutions used when a profile field is empty.
const (
	defaultTargetTitle   = "Product Manager"
	defaultLocation      = "San Francisco Bay Area"
	defaultKeywords      = "AI, ML"
	defaultResumeSummary = "Experienced product manager"
	defaultSeekerName    = "Job Seeker"
)

// BuildSearchJobsPrompt asks for five listings matching the profile.
func BuildSearchJobsPrompt(profile types.Profile) string {
	return prompts.Format(prompts.MustGet(prompts.AssistantFile, prompts.KeySearchJobs), map[string]string{
		"TargetTitles":  joinOr(profile.TargetTitles, defaultTargetTitle),
		"Location":      orDefault(profile.Location, defaultLocation),
		"Keywords":      joinOr(profile.Keywords, defaultKeywords),
		"ResumeSummary": orDefault(Truncate(profile.ResumeText, searchResumeLimit), defaultResumeSummary),
	})
}

// BuildHiringManagerPrompt asks for a likely hiring manager and alternate contacts for a job.
func BuildHiringManagerPrompt(job types.Job) string {
	return prompts.Format(prompts.MustGet(prompts.AssistantFile, prompts.KeyFindHiringManager), map[string]string{
		"Company":  job.Company,
		"Title":    job.Title,
		"Location": job.Location,
	})
}

// BuildOutreachPrompt asks for a LinkedIn-style outreach note about job, written for profile.
func BuildOutreachPrompt(job types.Job, profile types.Profile) string {
	resumeSection := ""
	if profile.ResumeText != "" {
		resumeSection = "\n## Resume\n" + Truncate(profile.ResumeText, outreachResumeLimit)
	}

	return prompts.Format(prompts.MustGet(prompts.AssistantFile, prompts.KeyDraftOutreach), map[string]string{
		"Company":       job.Company,
		"Title":         job.Title,
		"Location":      job.Location,
		"Name":          orDefault(profile.Name, defaultSeekerName),
		"TargetTitles":  joinOr(profile.TargetTitles, defaultTargetTitle),
		"Keywords":      joinOr(profile.Keywords, defaultKeywords),
		"ResumeSection": resumeSection,
	})
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinOr(items []string, fallback string) string {
	return orDefault(strings.Join(items, ", "), fallback)
}
