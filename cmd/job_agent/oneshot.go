package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-search-agent/internal/apiclient"
	"github.com/jonathan/job-search-agent/internal/observability"
	"github.com/jonathan/job-search-agent/internal/session"
	"github.com/jonathan/job-search-agent/internal/types"
)

// Flags shared by the one-shot commands.
var (
	serverURL  string
	jsonOutput bool

	profileName       string
	profileResumeFile string
	profileTitles     string
	profileLocation   string
	profileKeywords   string

	jobCompany  string
	jobTitle    string
	jobLocation string
	jobURL      string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Suggest five job openings for a profile",
	RunE:  runSearch,
}

var findManagerCmd = &cobra.Command{
	Use:   "find-manager",
	Short: "Guess the hiring manager for a role",
	RunE:  runFindManager,
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a LinkedIn outreach note for a role",
	RunE:  runDraft,
}

func init() {
	for _, cmd := range []*cobra.Command{searchCmd, findManagerCmd, draftCmd} {
		cmd.Flags().StringVar(&serverURL, "server", "", "Call a running server at this URL instead of the model directly")
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{searchCmd, draftCmd} {
		cmd.Flags().StringVar(&profileName, "name", "", "Your name")
		cmd.Flags().StringVar(&profileResumeFile, "resume", "", "Path to a plain-text resume")
		cmd.Flags().StringVar(&profileTitles, "titles", "", "Comma-separated target titles")
		cmd.Flags().StringVar(&profileLocation, "location", "", "Preferred location")
		cmd.Flags().StringVar(&profileKeywords, "keywords", "", "Comma-separated keywords")
	}

	for _, cmd := range []*cobra.Command{findManagerCmd, draftCmd} {
		cmd.Flags().StringVar(&jobCompany, "company", "", "Company name")
		cmd.Flags().StringVar(&jobTitle, "title", "", "Job title")
		cmd.Flags().StringVar(&jobLocation, "job-location", "", "Job location")
		cmd.Flags().StringVar(&jobURL, "url", "", "Job posting URL")
		_ = cmd.MarkFlagRequired("company")
		_ = cmd.MarkFlagRequired("title")
	}
}

// backend returns the remote API client when --server is set, else the in-process service.
func backend() session.Assistant {
	if serverURL != "" {
		return apiclient.New(serverURL)
	}
	return newService()
}

// profileFromFlags builds a profile from the command line, falling back to
// session defaults for titles, location and keywords.
func profileFromFlags() (types.Profile, error) {
	profile := types.DefaultProfile()
	profile.Name = profileName
	if profileResumeFile != "" {
		data, err := os.ReadFile(profileResumeFile)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to read resume: %w", err)
		}
		profile.ResumeText = session.ResumeFromUpload(profileResumeFile, "", data)
	}
	if profileTitles != "" {
		profile.TargetTitles = types.SplitList(profileTitles)
	}
	if profileLocation != "" {
		profile.Location = profileLocation
	}
	if profileKeywords != "" {
		profile.Keywords = types.SplitList(profileKeywords)
	}
	return profile, nil
}

func jobFromFlags() types.Job {
	return types.Job{
		ID:       "cli",
		Company:  jobCompany,
		Title:    jobTitle,
		Location: jobLocation,
		URL:      jobURL,
		Status:   types.StatusNew,
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	profile, err := profileFromFlags()
	if err != nil {
		return err
	}

	jobs, err := backend().SearchJobs(commandContext(cmd), profile)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(types.SearchJobsResponse{Jobs: jobs})
	}
	observability.NewPrinter(os.Stdout).PrintJobs(jobs)
	return nil
}

func runFindManager(cmd *cobra.Command, _ []string) error {
	result, err := backend().FindHiringManager(commandContext(cmd), jobFromFlags())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintHiringManager(result)
	return nil
}

func runDraft(cmd *cobra.Command, _ []string) error {
	profile, err := profileFromFlags()
	if err != nil {
		return err
	}

	job := jobFromFlags()
	message, err := backend().DraftOutreach(commandContext(cmd), job, profile)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(types.DraftOutreachResponse{Message: message})
	}
	observability.NewPrinter(os.Stdout).PrintDraft(job, message)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
