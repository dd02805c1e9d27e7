// Package session holds the interactive client's state machine. State is a plain
// value; Reduce computes the next State and the remote calls it requires, and the
// Controller runs those calls and feeds their results back in.
package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/job-search-agent/internal/types"
)

// Tab is a view of the main screen.
type Tab string

// Main screen tabs.
const (
	TabSearch   Tab = "search"
	TabPipeline Tab = "pipeline"
	TabOutreach Tab = "outreach"
)

// Tabs lists the main screen tabs in display order.
var Tabs = []Tab{TabSearch, TabPipeline, TabOutreach}

// Valid reports whether t is a main screen tab.
func (t Tab) Valid() bool {
	return slices.Contains(Tabs, t)
}

// Onboarding steps.
const (
	StepName        = 1
	StepResume      = 2
	StepPreferences = 3
)

// Minimum field lengths, in runes, for leaving an onboarding step.
const (
	MinNameLength   = 2
	MinResumeLength = 50
)

// ErrStepIncomplete is returned by CheckStep when the current onboarding field is too short.
var ErrStepIncomplete = errors.New("step incomplete")

// State is everything the interactive client shows. The zero value is not
// useful; start from Initial.
type State struct {
	Onboarding bool
	Step       int
	ActiveTab  Tab

	Profile types.Profile
	Jobs    []types.Job

	SelectedJobID string
	Draft         string
	DraftError    string
	HiringManager *types.HiringManagerResult
	ManagerError  string

	Searching       bool
	GeneratingDraft bool
	FindingManager  bool

	// Notice is a transient message for the user, cleared by DismissNotice.
	Notice string

	searchGen  uint64
	draftGen   uint64
	managerGen uint64
}

// Initial returns the state of a fresh session.
func Initial() State {
	return State{
		Onboarding: true,
		Step:       StepName,
		ActiveTab:  TabSearch,
		Profile:    types.DefaultProfile(),
	}
}

// SelectedJob returns the selected job, if it is still in the list.
func (s State) SelectedJob() (types.Job, bool) {
	if s.SelectedJobID == "" {
		return types.Job{}, false
	}
	i := s.jobIndex(s.SelectedJobID)
	if i < 0 {
		return types.Job{}, false
	}
	return s.Jobs[i], true
}

// Pipeline groups the session's jobs by status in board order.
func Pipeline(s State) []types.PipelineColumn {
	return types.GroupByStatus(s.Jobs)
}

// CheckStep reports whether onboarding may advance from the current step.
func CheckStep(s State) error {
	switch s.Step {
	case StepName:
		if utf8.RuneCountInString(strings.TrimSpace(s.Profile.Name)) < MinNameLength {
			return fmt.Errorf("%w: name must be at least %d characters", ErrStepIncomplete, MinNameLength)
		}
	case StepResume:
		if utf8.RuneCountInString(strings.TrimSpace(s.Profile.ResumeText)) < MinResumeLength {
			return fmt.Errorf("%w: resume must be at least %d characters", ErrStepIncomplete, MinResumeLength)
		}
	}
	return nil
}

// Reduce applies action to s. It never modifies s or anything s refers to;
// the returned effects are the remote calls the transition started.
func Reduce(s State, action Action) (State, []Effect) {
	next := s

	switch a := action.(type) {
	case NextStep:
		if !s.Onboarding {
			return s, nil
		}
		if err := CheckStep(s); err != nil {
			next.Notice = err.Error()
			return next, nil
		}
		if s.Step < StepPreferences {
			next.Step++
			next.Notice = ""
			return next, nil
		}
		next.Onboarding = false
		next.ActiveTab = TabSearch
		next.Notice = ""
		return startSearch(next)

	case PrevStep:
		if s.Onboarding && s.Step > StepName {
			next.Step--
			next.Notice = ""
		}
		return next, nil

	case SetName:
		next.Profile = s.Profile.Clone()
		next.Profile.Name = a.Name
		return next, nil

	case SetResume:
		next.Profile = s.Profile.Clone()
		next.Profile.ResumeText = a.Text
		return next, nil

	case UploadResume:
		next.Profile = s.Profile.Clone()
		next.Profile.ResumeText = ResumeFromUpload(a.Filename, a.ContentType, a.Data)
		return next, nil

	case SetTargetTitles:
		next.Profile = s.Profile.Clone()
		next.Profile.TargetTitles = append([]string(nil), a.Titles...)
		return next, nil

	case SetLocation:
		next.Profile = s.Profile.Clone()
		next.Profile.Location = a.Location
		return next, nil

	case SetKeywords:
		next.Profile = s.Profile.Clone()
		next.Profile.Keywords = append([]string(nil), a.Keywords...)
		return next, nil

	case Search:
		if s.Onboarding || s.Searching {
			return s, nil
		}
		return startSearch(next)

	case SearchCompleted:
		if !s.Searching || a.Generation != s.searchGen {
			return s, nil
		}
		next.Searching = false
		if a.Err != nil {
			next.Notice = "Search failed: " + a.Err.Error()
			return next, nil
		}
		next.Jobs = append([]types.Job(nil), a.Jobs...)
		return clearSelection(next), nil

	case MarkInterested:
		return setStatus(s, a.JobID, types.StatusInterested, types.StatusNew), nil

	case MarkApplied:
		return setStatus(s, a.JobID, types.StatusApplied, ""), nil

	case MarkInterviewing:
		return setStatus(s, a.JobID, types.StatusInterviewing, ""), nil

	case DraftOutreach:
		i := s.jobIndex(a.JobID)
		if i < 0 {
			return s, nil
		}
		next.SelectedJobID = a.JobID
		next.ActiveTab = TabOutreach
		var draft, manager Effect
		next, draft = startDraft(next, s.Jobs[i])
		next, manager = startManager(next, s.Jobs[i])
		return next, []Effect{draft, manager}

	case Regenerate:
		job, ok := s.SelectedJob()
		if !ok || s.GeneratingDraft {
			return s, nil
		}
		var draft Effect
		next, draft = startDraft(next, job)
		effects := []Effect{draft}
		if a.IncludeManager {
			var manager Effect
			next, manager = startManager(next, job)
			effects = append(effects, manager)
		}
		return next, effects

	case DraftGenerated:
		if !s.GeneratingDraft || a.Generation != s.draftGen || a.JobID != s.SelectedJobID {
			return s, nil
		}
		next.GeneratingDraft = false
		if a.Err != nil {
			next.DraftError = a.Err.Error()
			next.Notice = "Draft failed: " + a.Err.Error()
			return next, nil
		}
		next.Draft = a.Message
		return next, nil

	case ManagerFound:
		if !s.FindingManager || a.Generation != s.managerGen || a.JobID != s.SelectedJobID {
			return s, nil
		}
		next.FindingManager = false
		if a.Err != nil {
			next.ManagerError = a.Err.Error()
			return next, nil
		}
		next.HiringManager = a.Result
		return next, nil

	case EditDraft:
		next.Draft = a.Text
		return next, nil

	case SelectTab:
		if s.Onboarding || !a.Tab.Valid() {
			return s, nil
		}
		next.ActiveTab = a.Tab
		return next, nil

	case DismissNotice:
		next.Notice = ""
		return next, nil
	}

	return s, nil
}

// clearSelection drops the selected job with its draft and lookup. Ids are only
// unique within one result list, so in-flight results for the old list are
// superseded by bumping their generations.
func clearSelection(s State) State {
	s.draftGen++
	s.managerGen++
	s.SelectedJobID = ""
	s.Draft = ""
	s.DraftError = ""
	s.HiringManager = nil
	s.ManagerError = ""
	s.GeneratingDraft = false
	s.FindingManager = false
	return s
}

func startSearch(s State) (State, []Effect) {
	s.searchGen++
	s.Searching = true
	return s, []Effect{SearchEffect{Generation: s.searchGen, Profile: s.Profile.Clone()}}
}

func startDraft(s State, job types.Job) (State, Effect) {
	s.draftGen++
	s.GeneratingDraft = true
	s.Draft = ""
	s.DraftError = ""
	return s, DraftEffect{Generation: s.draftGen, Job: job, Profile: s.Profile.Clone()}
}

func startManager(s State, job types.Job) (State, Effect) {
	s.managerGen++
	s.FindingManager = true
	s.HiringManager = nil
	s.ManagerError = ""
	return s, ManagerEffect{Generation: s.managerGen, Job: job}
}

// setStatus moves a job to status; a non-empty from restricts the move to jobs currently in from.
func setStatus(s State, jobID string, status, from types.JobStatus) State {
	i := s.jobIndex(jobID)
	if i < 0 || (from != "" && s.Jobs[i].Status != from) {
		return s
	}
	s.Jobs = append([]types.Job(nil), s.Jobs...)
	s.Jobs[i].Status = status
	return s
}

func (s State) jobIndex(id string) int {
	for i, job := range s.Jobs {
		if job.ID == id {
			return i
		}
	}
	return -1
}
